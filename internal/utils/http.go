package utils

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// WriteJSON marshals payload and writes it to w with the given status code
// and an "application/json" content type.
//
// The payload is marshalled before any header is written, so a marshalling
// failure still produces a clean 500 instead of a half-sent response. Every
// operation resolver and middleware goes through this helper; nothing else
// in the application writes a response body directly.
//
// Returns the number of body bytes written and a non-nil error only when
// marshalling fails.
func WriteJSON(w http.ResponseWriter, payload any, statusCode int) (int, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		http.Error(w, "error encoding response", http.StatusInternalServerError)
		return 0, fmt.Errorf("error encoding response to JSON: %w", err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	return w.Write(body)
}
