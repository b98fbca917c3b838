package errors

import (
	"fmt"
	"net/http"
)

// HTTPError is returned when the API answers with a non-2xx status.
// The response body is never decoded.
type HTTPError struct {
	Status     int    // HTTP status code
	StatusText string // Reason phrase, e.g. "Forbidden"
}

// Error implements the error interface.
func (e *HTTPError) Error() string {
	text := e.StatusText
	if text == "" {
		text = http.StatusText(e.Status)
	}
	return fmt.Sprintf("response not ok: %d %s", e.Status, text)
}

// Code returns the error code for this error type.
func (e *HTTPError) Code() Code { return ErrCodeHTTP }

// DecodeError is returned when a 2xx response body is not valid JSON.
type DecodeError struct {
	URL string
	Err error
}

// Error implements the error interface.
func (e *DecodeError) Error() string {
	return fmt.Sprintf("decode %s: %v", e.URL, e.Err)
}

// Unwrap returns the underlying decoder error.
func (e *DecodeError) Unwrap() error { return e.Err }

// Code returns the error code for this error type.
func (e *DecodeError) Code() Code { return ErrCodeDecode }

// FanOutError reports the first failed fetch of a concurrent batch.
// Index is the position of the failed item in the batch.
type FanOutError struct {
	Index int
	URL   string
	Err   error
}

// Error implements the error interface.
func (e *FanOutError) Error() string {
	return fmt.Sprintf("fetch %d (%s) failed: %v", e.Index, e.URL, e.Err)
}

// Unwrap returns the first failure.
func (e *FanOutError) Unwrap() error { return e.Err }

// Code returns the error code for this error type.
func (e *FanOutError) Code() Code { return ErrCodeFanOut }
