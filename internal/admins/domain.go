package admins

import "github.com/veiculos-api/veiculos-api/internal/auth"

// Administrator is the management view of an administrator record. The
// credential secret never leaves the service layer.
type Administrator struct {
	ID    int64     `json:"id"`
	Email string    `json:"email"`
	Role  auth.Role `json:"role"`
}

// CreateAdministratorInput carries the fields for administrator creation.
type CreateAdministratorInput struct {
	Email    string
	Password string
	Role     string
}
