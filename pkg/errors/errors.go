// Package errors provides structured error types for githot.
//
// This package defines error codes and types that enable:
//   - Consistent error handling across the query layer, the refresh flows and the CLI
//   - Machine-readable error codes for programmatic handling
//   - User-friendly error messages
//   - Error wrapping with context preservation
//
// # Error Codes
//
// Every failure a refresh cycle can surface maps to one code:
//   - CONSTRUCTION_ERROR: invalid query configuration at startup
//   - HTTP_ERROR: the API answered with a non-2xx status ([HTTPError])
//   - DECODE_ERROR: the response body was not valid JSON ([DecodeError])
//   - FAN_OUT_ERROR: a user-detail fetch in a batch failed ([FanOutError])
//   - NETWORK_ERROR: the request never produced a response
//
// # Usage
//
//	err := errors.New(errors.ErrCodeConstruction, "base URL %q is not absolute", raw)
//	if errors.Is(err, errors.ErrCodeConstruction) {
//	    // Refuse to start
//	}
//
//	// Wrap existing errors
//	err := errors.Wrap(errors.ErrCodeNetwork, origErr, "GET %s", url)
package errors

import (
	"errors"
	"fmt"
)

// Code represents a machine-readable error code.
type Code string

// Error codes for different error categories.
const (
	// Input validation errors
	ErrCodeInvalidInput  Code = "INVALID_INPUT"
	ErrCodeInvalidConfig Code = "INVALID_CONFIG"
	ErrCodeConstruction  Code = "CONSTRUCTION_ERROR"

	// Remote call errors
	ErrCodeNetwork Code = "NETWORK_ERROR"
	ErrCodeHTTP    Code = "HTTP_ERROR"
	ErrCodeDecode  Code = "DECODE_ERROR"
	ErrCodeFanOut  Code = "FAN_OUT_ERROR"
)

// Error is a structured error with a code and optional cause.
type Error struct {
	Code    Code   // Machine-readable error code
	Message string // Human-readable message
	Cause   error  // Underlying error (optional)
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause for errors.Is/As compatibility.
func (e *Error) Unwrap() error {
	return e.Cause
}

// New creates a new Error with the given code and formatted message.
func New(code Code, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

// Wrap creates a new Error wrapping an existing error.
func Wrap(code Code, cause error, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Cause:   cause,
	}
}

// coder is implemented by the typed errors that carry a fixed code.
type coder interface {
	Code() Code
}

// codeOf returns the code of a single error value, ignoring its chain.
func codeOf(err error) (Code, bool) {
	switch e := err.(type) {
	case *Error:
		return e.Code, true
	case coder:
		return e.Code(), true
	}
	return "", false
}

// Is reports whether any error in err's chain carries the given code.
func Is(err error, code Code) bool {
	for ; err != nil; err = errors.Unwrap(err) {
		if c, ok := codeOf(err); ok && c == code {
			return true
		}
	}
	return false
}

// GetCode extracts the outermost error code from an error chain.
// Returns empty string if no error in the chain carries a code.
func GetCode(err error) Code {
	for ; err != nil; err = errors.Unwrap(err) {
		if c, ok := codeOf(err); ok {
			return c
		}
	}
	return ""
}

// UserMessage returns a user-friendly message for the error.
// For *Error types, returns the message without the code prefix.
// For other errors, returns the error string as-is.
func UserMessage(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Message
	}
	return err.Error()
}
