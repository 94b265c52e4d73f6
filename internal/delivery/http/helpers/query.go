package helpers

import (
	"fmt"
	"net/http"
	"strconv"
)

// ParseOptionalInt64 reads an optional integer query parameter. It returns
// nil when the parameter is absent or empty, and an error when the value is
// present but not a valid integer.
func ParseOptionalInt64(r *http.Request, name string) (*int64, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return nil, nil
	}

	value, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid %s: %q is not an integer", name, raw)
	}

	return &value, nil
}

// ParseOptionalString reads an optional string query parameter, returning nil
// when the parameter is absent or empty.
func ParseOptionalString(r *http.Request, name string) *string {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return nil
	}

	return &raw
}
