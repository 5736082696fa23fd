package shared

import (
	"net/http"
	"strconv"
)

// PageSize is the fixed number of records per listing page.
const PageSize = 10

// PageFromRequest reads the "pagina" query parameter, defaulting to 1 when
// absent or unparseable. Values below 1 are passed through unvalidated.
func PageFromRequest(r *http.Request) int {
	raw := r.URL.Query().Get("pagina")
	if raw == "" {
		return 1
	}
	page, err := strconv.Atoi(raw)
	if err != nil {
		return 1
	}
	return page
}

// Offset converts a page number into a listing offset. Negative offsets
// collapse to zero so out-of-range pages yield the first page rather than
// a store error.
func Offset(page int) int {
	offset := (page - 1) * PageSize
	if offset < 0 {
		return 0
	}
	return offset
}
