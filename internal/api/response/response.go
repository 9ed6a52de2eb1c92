// Package response defines the uniform JSON envelope every API response
// uses, success and error alike.
package response

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// Envelope is the wire shape of every JSON response.
type Envelope struct {
	Message string `json:"message"`
	Code    int    `json:"code"`
}

// WriteJSON writes an arbitrary JSON body with the given status.
func WriteJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}

// Success writes a 200 envelope carrying msg.
func Success(w http.ResponseWriter, msg string) {
	WriteJSON(w, http.StatusOK, Envelope{Message: msg, Code: http.StatusOK})
}

// Error writes an error envelope; the envelope code always matches the
// HTTP status line.
func Error(w http.ResponseWriter, status int, msg string) {
	WriteJSON(w, status, Envelope{Message: msg, Code: status})
}

// Decode reads a JSON request body into v.
func Decode(r *http.Request, v any) error {
	if r.Body == nil {
		return fmt.Errorf("empty request body")
	}
	return json.NewDecoder(r.Body).Decode(v)
}
