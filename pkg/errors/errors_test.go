package errors

import (
	"errors"
	"fmt"
	"testing"
)

func TestNew(t *testing.T) {
	err := New(ErrCodeConstruction, "bad base URL: %s", "value")

	if err.Code != ErrCodeConstruction {
		t.Errorf("Code = %v, want %v", err.Code, ErrCodeConstruction)
	}

	if err.Message != "bad base URL: value" {
		t.Errorf("Message = %v, want %v", err.Message, "bad base URL: value")
	}

	expected := "CONSTRUCTION_ERROR: bad base URL: value"
	if err.Error() != expected {
		t.Errorf("Error() = %v, want %v", err.Error(), expected)
	}
}

func TestWrap(t *testing.T) {
	cause := errors.New("underlying error")
	err := Wrap(ErrCodeNetwork, cause, "failed to fetch")

	if err.Code != ErrCodeNetwork {
		t.Errorf("Code = %v, want %v", err.Code, ErrCodeNetwork)
	}

	if err.Cause != cause {
		t.Errorf("Cause = %v, want %v", err.Cause, cause)
	}

	unwrapped := errors.Unwrap(err)
	if unwrapped != cause {
		t.Errorf("Unwrap() = %v, want %v", unwrapped, cause)
	}

	if !errors.Is(err, cause) {
		t.Error("errors.Is(err, cause) = false, want true")
	}
}

func TestIs(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		code     Code
		expected bool
	}{
		{
			name:     "matching code",
			err:      New(ErrCodeInvalidInput, "test"),
			code:     ErrCodeInvalidInput,
			expected: true,
		},
		{
			name:     "non-matching code",
			err:      New(ErrCodeInvalidInput, "test"),
			code:     ErrCodeNetwork,
			expected: false,
		},
		{
			name:     "wrapped error",
			err:      Wrap(ErrCodeNetwork, New(ErrCodeInvalidInput, "inner"), "outer"),
			code:     ErrCodeNetwork,
			expected: true,
		},
		{
			name:     "inner code of wrapped error",
			err:      Wrap(ErrCodeConstruction, New(ErrCodeInvalidInput, "inner"), "outer"),
			code:     ErrCodeInvalidInput,
			expected: true,
		},
		{
			name:     "typed http error",
			err:      &HTTPError{Status: 403, StatusText: "Forbidden"},
			code:     ErrCodeHTTP,
			expected: true,
		},
		{
			name:     "http error inside fan-out",
			err:      &FanOutError{Index: 1, URL: "u2", Err: &HTTPError{Status: 500}},
			code:     ErrCodeHTTP,
			expected: true,
		},
		{
			name:     "fmt wrapped decode error",
			err:      fmt.Errorf("search: %w", &DecodeError{URL: "u", Err: errors.New("eof")}),
			code:     ErrCodeDecode,
			expected: true,
		},
		{
			name:     "non-Error type",
			err:      errors.New("plain error"),
			code:     ErrCodeInvalidInput,
			expected: false,
		},
		{
			name:     "nil error",
			err:      nil,
			code:     ErrCodeInvalidInput,
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Is(tt.err, tt.code); got != tt.expected {
				t.Errorf("Is() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestGetCode(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected Code
	}{
		{
			name:     "Error type",
			err:      New(ErrCodeConstruction, "test"),
			expected: ErrCodeConstruction,
		},
		{
			name:     "fan-out wins over its cause",
			err:      &FanOutError{Err: &HTTPError{Status: 404}},
			expected: ErrCodeFanOut,
		},
		{
			name:     "decode error behind fmt wrap",
			err:      fmt.Errorf("fetch: %w", &DecodeError{Err: errors.New("bad")}),
			expected: ErrCodeDecode,
		},
		{
			name:     "plain error",
			err:      errors.New("plain"),
			expected: "",
		},
		{
			name:     "nil",
			err:      nil,
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := GetCode(tt.err); got != tt.expected {
				t.Errorf("GetCode() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestUserMessage(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected string
	}{
		{
			name:     "Error type",
			err:      New(ErrCodeInvalidInput, "friendly message"),
			expected: "friendly message",
		},
		{
			name:     "plain error",
			err:      errors.New("plain error"),
			expected: "plain error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := UserMessage(tt.err); got != tt.expected {
				t.Errorf("UserMessage() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestHTTPError(t *testing.T) {
	t.Run("with status text", func(t *testing.T) {
		err := &HTTPError{Status: 403, StatusText: "Forbidden"}
		expected := "response not ok: 403 Forbidden"
		if err.Error() != expected {
			t.Errorf("Error() = %v, want %v", err.Error(), expected)
		}
	})

	t.Run("falls back to standard text", func(t *testing.T) {
		err := &HTTPError{Status: 503}
		expected := "response not ok: 503 Service Unavailable"
		if err.Error() != expected {
			t.Errorf("Error() = %v, want %v", err.Error(), expected)
		}
	})

	t.Run("code method", func(t *testing.T) {
		err := &HTTPError{}
		if err.Code() != ErrCodeHTTP {
			t.Errorf("Code() = %v, want %v", err.Code(), ErrCodeHTTP)
		}
	})
}

func TestFanOutError(t *testing.T) {
	cause := &HTTPError{Status: 500, StatusText: "Internal Server Error"}
	err := &FanOutError{Index: 1, URL: "https://api.github.com/users/u2", Err: cause}

	var httpErr *HTTPError
	if !errors.As(err, &httpErr) {
		t.Fatal("errors.As should find the wrapped HTTPError")
	}
	if httpErr.Status != 500 {
		t.Errorf("Status = %d, want 500", httpErr.Status)
	}

	expected := "fetch 1 (https://api.github.com/users/u2) failed: response not ok: 500 Internal Server Error"
	if err.Error() != expected {
		t.Errorf("Error() = %v, want %v", err.Error(), expected)
	}
}
