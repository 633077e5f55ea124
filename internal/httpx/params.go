package httpx

import (
	"net/http"
	"strconv"
)

const (
	defaultOffset = 0
	defaultLimit  = 25
)

// pageParams coerces offset/limit query values, falling back to the defaults
// when absent or non-numeric.
func pageParams(r *http.Request) (offset, limit int64) {
	offset, limit = defaultOffset, defaultLimit
	q := r.URL.Query()
	if v := q.Get("offset"); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil && n >= 0 {
			offset = n
		}
	}
	if v := q.Get("limit"); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil && n >= 0 {
			limit = n
		}
	}
	return offset, limit
}
