package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
)

// ErrUnavailable marks transport-level failures: the request never produced
// an HTTP response. Callers show a generic message for these.
var ErrUnavailable = errors.New("server unavailable")

// RequestError is a non-2xx HTTP response. Message carries the
// server-provided "message" field when the body is JSON and has one, the
// raw body otherwise, or the HTTP status text when the body is empty.
type RequestError struct {
	Status  int
	Message string
}

func (e *RequestError) Error() string { return e.Message }

// Unauthorized reports whether the response rejected the current credentials.
func (e *RequestError) Unauthorized() bool {
	return e.Status == http.StatusUnauthorized || e.Status == http.StatusForbidden
}

func newRequestError(status int, statusText string, body []byte) *RequestError {
	msg := strings.TrimSpace(string(body))
	var envelope struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body, &envelope); err == nil && envelope.Message != "" {
		msg = envelope.Message
	}
	if msg == "" {
		msg = statusText
	}
	return &RequestError{Status: status, Message: msg}
}
