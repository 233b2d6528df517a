// Package errors defines the failure taxonomy for the transcript
// pipeline. Every error a handler sees is an AppError carrying an HTTP
// status, a client-safe message and the operation that produced it.
package errors

import (
	"fmt"
	"net/http"
)

// AppError is the one error shape the response assembly understands.
// Message is safe to surface to a client; Err keeps the underlying
// cause for the logs and the reporting sink.
type AppError struct {
	Code    int    `json:"-"`
	Message string `json:"error"`
	Op      string `json:"-"`
	Err     error  `json:"-"`
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// InvalidInput reports malformed client input (HTTP 400).
func InvalidInput(op string, err error, message string) *AppError {
	return &AppError{
		Code:    http.StatusBadRequest,
		Message: message,
		Op:      op,
		Err:     err,
	}
}

// NotFound reports valid input with nothing behind it (HTTP 404).
func NotFound(op string, err error, message string) *AppError {
	return &AppError{
		Code:    http.StatusNotFound,
		Message: message,
		Op:      op,
		Err:     err,
	}
}

// RateLimited reports an exhausted request quota (HTTP 429). The
// message is the violated quota's description.
func RateLimited(op string, message string) *AppError {
	return &AppError{
		Code:    http.StatusTooManyRequests,
		Message: message,
		Op:      op,
	}
}

// Internal reports an unexpected failure (HTTP 500). Callers pass a
// generic message; the cause stays server-side.
func Internal(op string, err error, message string) *AppError {
	return &AppError{
		Code:    http.StatusInternalServerError,
		Message: message,
		Op:      op,
		Err:     err,
	}
}
