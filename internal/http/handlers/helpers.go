package handlers

import (
	"encoding/json"
	"net/http"
	"strings"

	"hrsuite/internal/common"
)

func decodeJSON(r *http.Request, target interface{}) error {
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(target); err != nil {
		return common.NewError(common.CodeValidation, "invalid json body", err)
	}
	return nil
}

// pathSegment returns the n-th path element, zero-based, or "" when absent.
func pathSegment(r *http.Request, n int) string {
	parts := strings.Split(strings.Trim(r.URL.Path, "/"), "/")
	if n < 0 || n >= len(parts) {
		return ""
	}
	return parts[n]
}

func idFromPath(r *http.Request, n int) (common.UUID, error) {
	raw := pathSegment(r, n)
	id, err := common.ParseUUID(raw)
	if err != nil {
		return "", common.NewValidationError("invalid id", map[string]string{"id": "id must be a uuid"})
	}
	return id, nil
}

func errUnauthorized() error {
	return common.NewError(common.CodeUnauthorized, "authentication required", nil)
}
