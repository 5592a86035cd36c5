// Package shared centralizes JSON envelope helpers so every handler renders
// errors and payloads the same way.
package shared

import (
	"encoding/json"
	"net/http"

	dErrors "avsar/pkg/domain-errors"
)

// WriteJSON renders v with the given status.
func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// WriteError translates a domain error into the JSON error envelope. Unknown
// errors collapse to a generic internal error so details never leak.
func WriteError(w http.ResponseWriter, err error) {
	code := dErrors.CodeOf(err)
	WriteJSON(w, dErrors.ToHTTPStatus(code), map[string]string{
		"error":  string(code),
		"detail": dErrors.MessageOf(err),
	})
}
