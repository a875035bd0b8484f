package response

import (
	"encoding/json"
	"net/http"
)

// Envelope is the standard JSON response structure.
type Envelope struct {
	Success bool   `json:"success"`
	Status  int    `json:"status"`
	Message string `json:"message,omitempty"`
	Error   string `json:"error,omitempty"`
	Data    any    `json:"data,omitempty"`
}

func write(w http.ResponseWriter, status int, body Envelope) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

// JSON writes a success envelope with the given payload.
func JSON(w http.ResponseWriter, status int, data any) {
	write(w, status, Envelope{
		Success: true,
		Status:  status,
		Data:    data,
	})
}

// OK writes a 200 success envelope with the given payload.
func OK(w http.ResponseWriter, data any) {
	JSON(w, http.StatusOK, data)
}

// Message writes a success envelope carrying only a human-readable message.
func Message(w http.ResponseWriter, status int, message string) {
	write(w, status, Envelope{
		Success: true,
		Status:  status,
		Message: message,
	})
}

// Fail writes a failure envelope with the user-facing error message.
func Fail(w http.ResponseWriter, status int, errMsg string) {
	write(w, status, Envelope{
		Success: false,
		Status:  status,
		Error:   errMsg,
	})
}

// InternalError writes the opaque 500 envelope. Store and provider failures
// never leak their details to the client.
func InternalError(w http.ResponseWriter) {
	Fail(w, http.StatusInternalServerError, "An unexpected error occurred.")
}
