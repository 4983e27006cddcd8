package handlers

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/Mialde/Micheldekker/internal/common"
)

func decodeJSON(r *http.Request, dst any) error {
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(dst); err != nil {
		return common.NewError(common.CodeValidation, "invalid request body", err)
	}
	return nil
}

// idFromPath returns the path segment at the given index, counting from the
// leading slash. "/vacancies/abc" with index 1 yields "abc".
func idFromPath(r *http.Request, index int) (string, error) {
	segments := strings.Split(strings.Trim(r.URL.Path, "/"), "/")
	if index >= len(segments) || segments[index] == "" {
		return "", common.NewError(common.CodeValidation, "missing id in path", nil)
	}
	return segments[index], nil
}

func errUnauthorized() error {
	return common.NewError(common.CodeUnauthorized, "authentication required", nil)
}

func bearerToken(r *http.Request) (string, bool) {
	parts := strings.SplitN(r.Header.Get("Authorization"), " ", 2)
	if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
		return "", false
	}
	return parts[1], true
}
