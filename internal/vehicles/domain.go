package vehicles

// MinYear is the oldest model year the service accepts.
const MinYear = 1900

// Vehicle is a managed fleet record, independent of identity.
type Vehicle struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Brand string `json:"brand"`
	Year  int    `json:"year"`
}

// VehicleInput carries the caller-supplied fields for create and update.
// Updates replace all three fields atomically.
type VehicleInput struct {
	Name  string `json:"name"`
	Brand string `json:"brand"`
	Year  int    `json:"year"`
}

// Validate reports whether the input satisfies the vehicle constraints.
func (in VehicleInput) Validate() bool {
	return in.Name != "" && in.Brand != "" && in.Year >= MinYear
}
