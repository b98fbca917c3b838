package github

import (
	apperr "github.com/matzehuels/githot/pkg/errors"
)

const (
	// DefaultBaseURL is the public GitHub REST API endpoint.
	DefaultBaseURL = "https://api.github.com/"

	// MediaTypeMercyPreview is the Accept media type that makes the search
	// API populate repository topics and related preview fields.
	MediaTypeMercyPreview = "application/vnd.github.mercy-preview+json"
)

// DefaultParams returns the process-wide default search parameters:
// the first page with five results per page.
func DefaultParams() []Param {
	return []Param{
		{Key: "page", Value: "1"},
		{Key: "per_page", Value: "5"},
	}
}

// Config is the immutable query configuration shared by every request a
// [Client] issues. The zero value is invalid; build one with [NewConfig].
type Config struct {
	baseURL string
	params  []Param
}

// NewConfig validates baseURL and the default params and returns a Config.
//
// baseURL must be an absolute http(s) URL without query or fragment. params
// keys must be valid and unique; a nil params is treated as no defaults.
// Any violation yields an error with code CONSTRUCTION_ERROR.
func NewConfig(baseURL string, params []Param) (Config, error) {
	if err := apperr.ValidateURL(baseURL); err != nil {
		return Config{}, apperr.Wrap(apperr.ErrCodeConstruction, err, "could not create query config")
	}

	seen := make(map[string]bool, len(params))
	for _, p := range params {
		if err := apperr.ValidateParamKey(p.Key); err != nil {
			return Config{}, apperr.Wrap(apperr.ErrCodeConstruction, err, "could not create query config")
		}
		if seen[p.Key] {
			return Config{}, apperr.New(apperr.ErrCodeConstruction, "could not create query config: duplicate default parameter %q", p.Key)
		}
		seen[p.Key] = true
	}

	return Config{
		baseURL: baseURL,
		params:  append([]Param{}, params...),
	}, nil
}

// DefaultConfig returns the configuration for the public API with [DefaultParams].
func DefaultConfig() Config {
	cfg, err := NewConfig(DefaultBaseURL, DefaultParams())
	if err != nil {
		panic(err)
	}
	return cfg
}

// BaseURL returns the API base URL.
func (c Config) BaseURL() string { return c.baseURL }

// Params returns a copy of the default parameters, never nil.
func (c Config) Params() []Param { return append([]Param{}, c.params...) }

func (c Config) valid() bool { return c.baseURL != "" && c.params != nil }
