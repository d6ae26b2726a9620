package validators

import (
	"net/http"
	"strconv"
	"strings"

	pkgerrors "github.com/greenlyfe/greenlyfe-backend/pkg/errors"
)

// ParseQueryInt reads an integer query parameter, falling back to
// defaultVal when the parameter is absent. Range checks stay with the
// catalog query pipeline; this rejects only non-numeric input.
func ParseQueryInt(r *http.Request, key string, defaultVal int) (int, error) {
	raw := strings.TrimSpace(r.URL.Query().Get(key))
	if raw == "" {
		return defaultVal, nil
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0, pkgerrors.New(pkgerrors.CodeInvalidQuery, "query parameter must be numeric").WithDetails(map[string]any{"field": key})
	}
	return value, nil
}

// ParseQueryString reads a query parameter with surrounding whitespace
// trimmed, falling back to defaultVal when absent or blank.
func ParseQueryString(r *http.Request, key, defaultVal string) string {
	raw := strings.TrimSpace(r.URL.Query().Get(key))
	if raw == "" {
		return defaultVal
	}
	return raw
}
