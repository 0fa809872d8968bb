package httputils

import (
	"encoding/json"
	"net/http"
	"strconv"
)

const (
	DefaultPerPage = 20
	MaxPerPage     = 100
)

// ParsePagination reads ?page= and ?per_page=, clamping to sane bounds. The
// storage layer gets offset/limit from these; nothing is paginated in memory.
func ParsePagination(r *http.Request) (page, perPage int) {
	page = 1
	perPage = DefaultPerPage
	if v, err := strconv.Atoi(r.URL.Query().Get("page")); err == nil && v > 0 {
		page = v
	}
	if v, err := strconv.Atoi(r.URL.Query().Get("per_page")); err == nil && v > 0 {
		perPage = v
		if perPage > MaxPerPage {
			perPage = MaxPerPage
		}
	}
	return page, perPage
}

func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
