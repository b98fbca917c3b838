// Package cli implements the githot command-line interface.
package cli

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/githot/internal/config"
	"github.com/matzehuels/githot/pkg/board"
	"github.com/matzehuels/githot/pkg/buildinfo"
	"github.com/matzehuels/githot/pkg/integrations/github"
	"github.com/matzehuels/githot/pkg/refresh"
)

// =============================================================================
// Constants
// =============================================================================

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger

	configPath string
	baseURL    string
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level)}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          "githot",
		Short:        "githot shows trending GitHub repositories and users",
		Long:         `githot queries the GitHub search API for last month's most starred repositories and the most followed accounts created within the last year, and renders them as fixed-size tables.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			installLogHooks(c.Logger)
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
			return nil
		},
	}

	root.SetVersionTemplate(buildinfo.Template())

	flags := root.PersistentFlags()
	flags.StringVar(&c.configPath, "config", "", "config file (default $XDG_CONFIG_HOME/githot/config.toml)")
	flags.StringVar(&c.baseURL, "base-url", "", "GitHub API base URL")

	root.AddCommand(c.reposCommand())
	root.AddCommand(c.usersCommand())
	root.AddCommand(c.refreshCommand())
	root.AddCommand(c.watchCommand())
	root.AddCommand(c.serveCommand())
	root.AddCommand(c.configCommand())

	return root
}

// =============================================================================
// App Wiring
// =============================================================================

// app bundles the components one command run needs.
type app struct {
	cfg   config.Config
	board *board.Board
	orch  *refresh.Orchestrator
}

// loadConfig reads the config file and applies flag overrides.
func (c *CLI) loadConfig() (config.Config, error) {
	path := c.configPath
	if path == "" {
		p, err := config.Path()
		if err != nil {
			return config.Default(), nil
		}
		path = p
	}

	cfg, err := config.Load(path)
	if err != nil {
		return config.Config{}, err
	}
	if c.baseURL != "" {
		cfg.GitHub.BaseURL = c.baseURL
		if err := cfg.Validate(); err != nil {
			return config.Config{}, err
		}
	}
	c.Logger.Debug("config loaded", "path", path, "base_url", cfg.GitHub.BaseURL)
	return cfg, nil
}

// newApp builds the query client, board and orchestrator from the config.
func (c *CLI) newApp(opts ...refresh.Option) (*app, error) {
	cfg, err := c.loadConfig()
	if err != nil {
		return nil, err
	}
	qc, err := cfg.QueryConfig()
	if err != nil {
		return nil, err
	}
	client, err := github.NewClient(qc)
	if err != nil {
		return nil, err
	}

	b := board.New(cfg.Board.Rows)
	base := []refresh.Option{refresh.WithLogger(c.Logger)}
	if cfg.Refresh.SingleFlight {
		base = append(base, refresh.WithSingleFlight())
	}

	return &app{
		cfg:   cfg,
		board: b,
		orch:  refresh.New(client, b, append(base, opts...)...),
	}, nil
}
