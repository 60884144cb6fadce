package api

import (
	"net/http"
	"strconv"

	"github.com/mytheresa/go-inventory/models"
)

// PathID parses a positive numeric path value.
func PathID(r *http.Request, name string) (uint, error) {
	raw := r.PathValue(name)
	id, err := strconv.ParseUint(raw, 10, 0)
	if err != nil || id == 0 {
		return 0, models.NewValidationError(name, "must be a positive integer")
	}
	return uint(id), nil
}
