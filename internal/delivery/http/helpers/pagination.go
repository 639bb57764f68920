package helpers

import (
	"fmt"
	"net/http"
	"strconv"

	"explorewithme/internal/domain"
)

// Pagination query parameter defaults and limits.
const (
	DefaultFrom = 0
	DefaultSize = 10
	MaxSize     = 1000
)

// ParsePagination reads from and size from the request query string and
// returns domain.PaginationParams. Missing values fall back to defaults;
// a negative from or a non-positive size is a validation error.
func ParsePagination(r *http.Request) (domain.PaginationParams, error) {
	from := DefaultFrom
	if s := r.URL.Query().Get("from"); s != "" {
		v, err := strconv.Atoi(s)
		if err != nil || v < 0 {
			return domain.PaginationParams{}, domain.Validation(fmt.Sprintf("Field: from. Error: must be greater than or equal to 0. Value: %s", s))
		}
		from = v
	}
	size := DefaultSize
	if s := r.URL.Query().Get("size"); s != "" {
		v, err := strconv.Atoi(s)
		if err != nil || v < 1 {
			return domain.PaginationParams{}, domain.Validation(fmt.Sprintf("Field: size. Error: must be greater than 0. Value: %s", s))
		}
		size = min(v, MaxSize)
	}
	return domain.PaginationParams{From: from, Size: size}, nil
}
