package backend

import (
	"errors"
	"fmt"
)

// Sentinel errors the rest of the gateway matches on with errors.Is.
var (
	ErrNotFound     = errors.New("requested resource not found")
	ErrUnauthorized = errors.New("credentials rejected by the backend")
	ErrUnavailable  = errors.New("backend is unreachable")
)

// APIError carries an HTTP error status together with the server-provided
// message, when the backend sent one. Message falls back to a generic
// string so callers can always surface something readable.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("backend returned %d: %s", e.StatusCode, e.Message)
}

// UserMessage returns the text an operator should see for this error.
func (e *APIError) UserMessage() string {
	if e.Message != "" {
		return e.Message
	}
	return "the server could not process the request"
}

// errorEnvelope is the backend's JSON error body. Some endpoints use
// "error", older ones use "message"; both are tolerated.
type errorEnvelope struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}
