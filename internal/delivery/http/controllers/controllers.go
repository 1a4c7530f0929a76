package controllers

import (
	"net/http"
	"strconv"
)

// parseIDParam parses the named path value as a positive int64 identifier.
func parseIDParam(r *http.Request, name string) (int64, bool) {
	raw := r.PathValue(name)
	if raw == "" {
		return 0, false
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}
