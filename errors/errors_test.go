package errors

import (
	"fmt"
	"net/http"
	"testing"
)

func TestConstructors(t *testing.T) {
	cause := fmt.Errorf("underlying failure")

	tests := []struct {
		name string
		err  *AppError
		code int
	}{
		{"invalid input", InvalidInput("op", cause, "bad input"), http.StatusBadRequest},
		{"not found", NotFound("op", cause, "missing"), http.StatusNotFound},
		{"rate limited", RateLimited("op", "10 per 1m0s"), http.StatusTooManyRequests},
		{"internal", Internal("op", cause, "boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.err.Code != tt.code {
				t.Errorf("Code = %d, want %d", tt.err.Code, tt.code)
			}
			if tt.err.Op != "op" {
				t.Errorf("Op = %q, want %q", tt.err.Op, "op")
			}
		})
	}
}

func TestErrorString(t *testing.T) {
	err := Internal("op", fmt.Errorf("cause error"), "test message")

	expected := "test message: cause error"
	if err.Error() != expected {
		t.Errorf("expected '%s', got '%s'", expected, err.Error())
	}

	bare := RateLimited("op", "test message")
	if bare.Error() != "test message" {
		t.Errorf("expected 'test message', got '%s'", bare.Error())
	}
}

func TestUnwrap(t *testing.T) {
	cause := fmt.Errorf("cause error")
	err := NotFound("op", cause, "missing")

	if err.Unwrap() != cause {
		t.Errorf("Unwrap() = %v, want %v", err.Unwrap(), cause)
	}
}
