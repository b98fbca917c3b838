// Package config loads githot settings from a TOML file.
//
// A missing file is not an error; every field has a default. Command-line
// flags are applied on top of the loaded values by the cli package.
package config

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"

	apperr "github.com/matzehuels/githot/pkg/errors"
	"github.com/matzehuels/githot/pkg/integrations/github"
)

const appName = "githot"

// Config is the effective githot configuration.
type Config struct {
	GitHub  GitHub  `toml:"github"`
	Refresh Refresh `toml:"refresh"`
	Board   Board   `toml:"board"`
	Server  Server  `toml:"server"`
}

// GitHub configures the query service.
type GitHub struct {
	BaseURL string            `toml:"base_url"`
	Params  map[string]string `toml:"params"`
}

// Refresh configures the scheduler.
type Refresh struct {
	Interval     Duration `toml:"interval"`
	SingleFlight bool     `toml:"single_flight"`
}

// Board configures the display tables.
type Board struct {
	Rows int `toml:"rows"`
}

// Server configures the JSON API.
type Server struct {
	Addr         string   `toml:"addr"`
	ReadTimeout  Duration `toml:"read_timeout"`
	WriteTimeout Duration `toml:"write_timeout"`
}

// Default returns the built-in configuration.
func Default() Config {
	params := make(map[string]string)
	for _, p := range github.DefaultParams() {
		params[p.Key] = p.Value
	}
	return Config{
		GitHub: GitHub{
			BaseURL: github.DefaultBaseURL,
			Params:  params,
		},
		Refresh: Refresh{Interval: Duration(2 * time.Minute)},
		Board:   Board{Rows: 5},
		Server: Server{
			Addr:         "127.0.0.1:8080",
			ReadTimeout:  Duration(10 * time.Second),
			WriteTimeout: Duration(10 * time.Second),
		},
	}
}

// Path returns the default config file location:
// $XDG_CONFIG_HOME/githot/config.toml, or ~/.config/githot/config.toml.
func Path() (string, error) {
	if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
		return filepath.Join(dir, appName, "config.toml"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", appName, "config.toml"), nil
}

// Load reads path over the defaults. A missing file yields the defaults.
// Keys in the file replace the default values; the [github.params] table
// replaces the default params as a whole.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return Config{}, apperr.Wrap(apperr.ErrCodeInvalidConfig, err, "read %s", path)
	}

	var file Config
	md, err := toml.Decode(string(data), &file)
	if err != nil {
		return Config{}, apperr.Wrap(apperr.ErrCodeInvalidConfig, err, "parse %s", path)
	}
	if undec := md.Undecoded(); len(undec) > 0 {
		return Config{}, apperr.New(apperr.ErrCodeInvalidConfig, "%s: unknown key %q", path, undec[0].String())
	}
	cfg.merge(file, md)

	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

func (c *Config) merge(f Config, md toml.MetaData) {
	if md.IsDefined("github", "base_url") {
		c.GitHub.BaseURL = f.GitHub.BaseURL
	}
	if md.IsDefined("github", "params") {
		c.GitHub.Params = f.GitHub.Params
	}
	if md.IsDefined("refresh", "interval") {
		c.Refresh.Interval = f.Refresh.Interval
	}
	if md.IsDefined("refresh", "single_flight") {
		c.Refresh.SingleFlight = f.Refresh.SingleFlight
	}
	if md.IsDefined("board", "rows") {
		c.Board.Rows = f.Board.Rows
	}
	if md.IsDefined("server", "addr") {
		c.Server.Addr = f.Server.Addr
	}
	if md.IsDefined("server", "read_timeout") {
		c.Server.ReadTimeout = f.Server.ReadTimeout
	}
	if md.IsDefined("server", "write_timeout") {
		c.Server.WriteTimeout = f.Server.WriteTimeout
	}
}

// Validate checks ranges and builds the query config once to surface
// URL and parameter errors.
func (c Config) Validate() error {
	if c.Refresh.Interval <= 0 {
		return apperr.New(apperr.ErrCodeInvalidConfig, "refresh.interval must be positive")
	}
	if c.Board.Rows <= 0 {
		return apperr.New(apperr.ErrCodeInvalidConfig, "board.rows must be positive")
	}
	if c.Server.Addr == "" {
		return apperr.New(apperr.ErrCodeInvalidConfig, "server.addr is required")
	}
	if _, err := c.QueryConfig(); err != nil {
		return err
	}
	return nil
}

// QueryConfig builds the immutable query configuration.
func (c Config) QueryConfig() (github.Config, error) {
	return github.NewConfig(c.GitHub.BaseURL, github.ParamsFromMap(c.GitHub.Params))
}

// Encode writes c as TOML.
func (c Config) Encode(w io.Writer) error {
	enc := toml.NewEncoder(w)
	enc.Indent = ""
	return enc.Encode(c)
}
