package errors

import (
	"net/url"
	"strings"
	"unicode"
)

// ValidateURL validates that rawURL is an absolute http or https URL with a host.
// Query strings and fragments are rejected because the request builder appends
// its own path and query.
func ValidateURL(rawURL string) error {
	if rawURL == "" {
		return New(ErrCodeInvalidInput, "URL cannot be empty")
	}

	u, err := url.Parse(rawURL)
	if err != nil {
		return Wrap(ErrCodeInvalidInput, err, "URL %q is malformed", rawURL)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return New(ErrCodeInvalidInput, "URL must use http or https scheme")
	}
	if u.Host == "" {
		return New(ErrCodeInvalidInput, "URL %q has no host", rawURL)
	}
	if u.RawQuery != "" || u.Fragment != "" {
		return New(ErrCodeInvalidInput, "URL %q must not carry a query or fragment", rawURL)
	}

	return nil
}

// ValidateParamKey validates a query parameter name.
//
// Validation rules:
//   - Key cannot be empty
//   - Maximum length of 64 characters
//   - No whitespace or control characters
func ValidateParamKey(key string) error {
	if key == "" {
		return New(ErrCodeInvalidInput, "parameter name cannot be empty")
	}

	const maxKeyLength = 64
	if len(key) > maxKeyLength {
		return New(ErrCodeInvalidInput, "parameter name too long (max %d characters)", maxKeyLength)
	}

	if strings.IndexFunc(key, func(r rune) bool { return unicode.IsSpace(r) || unicode.IsControl(r) }) >= 0 {
		return New(ErrCodeInvalidInput, "parameter name %q contains whitespace or control characters", key)
	}

	return nil
}
