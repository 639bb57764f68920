package helpers

import (
	"fmt"
	"net"
	"net/http"
	"strconv"
	"strings"
	"time"

	"explorewithme/internal/domain"
)

// PathID parses a positive numeric path value.
func PathID(r *http.Request, name string) (int64, error) {
	raw := r.PathValue(name)
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id < 1 {
		return 0, domain.Validation(fmt.Sprintf("Field: %s. Error: must be a positive number. Value: %s", name, raw))
	}
	return id, nil
}

// QueryID parses a required positive numeric query parameter.
func QueryID(r *http.Request, name string) (int64, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return 0, domain.Validation("Incorrect data", fmt.Sprintf("Field: %s. Error: is required. Value: null", name))
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id < 1 {
		return 0, domain.Validation("Incorrect data", fmt.Sprintf("Field: %s. Error: must be a positive number. Value: %s", name, raw))
	}
	return id, nil
}

// QueryInt64s parses a list parameter given either repeated (?ids=1&ids=2) or comma separated (?ids=1,2).
func QueryInt64s(r *http.Request, name string) ([]int64, error) {
	var out []int64
	for _, raw := range r.URL.Query()[name] {
		for _, part := range strings.Split(raw, ",") {
			part = strings.TrimSpace(part)
			if part == "" {
				continue
			}
			v, err := strconv.ParseInt(part, 10, 64)
			if err != nil {
				return nil, domain.Validation(fmt.Sprintf("Field: %s. Error: must be a list of numbers. Value: %s", name, raw))
			}
			out = append(out, v)
		}
	}
	return out, nil
}

// QueryStrings parses a list parameter the same way as QueryInt64s.
func QueryStrings(r *http.Request, name string) []string {
	var out []string
	for _, raw := range r.URL.Query()[name] {
		for _, part := range strings.Split(raw, ",") {
			if part = strings.TrimSpace(part); part != "" {
				out = append(out, part)
			}
		}
	}
	return out
}

// QueryDateTime parses an optional timestamp in domain.DateTimeLayout.
func QueryDateTime(r *http.Request, name string) (*time.Time, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return nil, nil
	}
	t, err := domain.ParseDateTime(raw)
	if err != nil {
		return nil, domain.Validation(fmt.Sprintf("Field: %s. Error: must match %s. Value: %s", name, "yyyy-MM-dd HH:mm:ss", raw))
	}
	return &t, nil
}

// QueryBool parses an optional boolean parameter.
func QueryBool(r *http.Request, name string) (*bool, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return nil, domain.Validation(fmt.Sprintf("Field: %s. Error: must be true or false. Value: %s", name, raw))
	}
	return &v, nil
}

// ClientIP returns the host part of r.RemoteAddr, which the RealIP middleware
// has already replaced with the forwarded client address when present.
func ClientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
