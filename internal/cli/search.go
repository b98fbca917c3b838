package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/githot/pkg/refresh"
)

// reposCommand runs the repository flow once and prints the table.
func (c *CLI) reposCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "repos",
		Short: "Show last month's most starred repositories",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runOnce(cmd, refresh.Repos)
		},
	}
}

// usersCommand runs the user flow once and prints the table.
func (c *CLI) usersCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "users",
		Short: "Show the most followed accounts created within the last year",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runOnce(cmd, refresh.Users)
		},
	}
}

// refreshCommand runs both flows once and prints both tables.
func (c *CLI) refreshCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "refresh",
		Short: "Refresh both tables once",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runOnce(cmd, refresh.Flows...)
		},
	}
}

// runOnce refreshes the given flows concurrently and prints the tables of
// those that succeeded. Any failure makes the command fail.
func (c *CLI) runOnce(cmd *cobra.Command, flows ...refresh.Flow) error {
	ctx := cmd.Context()
	logger := loggerFromContext(ctx)

	failed := make(map[refresh.Flow]error)
	a, err := c.newApp(refresh.WithErrorHandler(func(f refresh.Flow, err error) {
		logger.Debug("flow failed", "flow", f, "err", err)
	}))
	if err != nil {
		return err
	}

	prog := newProgress(logger)
	spinner := newSpinner(ctx, cmd.ErrOrStderr(), "Querying GitHub...")
	spinner.Start()

	errs := a.orch.RefreshEach(ctx, flows...)
	spinner.Stop()

	out := cmd.OutOrStdout()
	snap := a.board.Snapshot()
	for i, f := range flows {
		if errs[i] != nil {
			failed[f] = errs[i]
			printError(out, "%s: %v", f, errs[i])
			continue
		}
		switch f {
		case refresh.Repos:
			fmt.Fprintln(out, StyleTitle.Render("Repositories"))
			fmt.Fprintln(out, renderRepoTable(snap.Repos))
		case refresh.Users:
			fmt.Fprintln(out, StyleTitle.Render("Users"))
			fmt.Fprintln(out, renderUserTable(snap.Users))
		}
	}

	if len(failed) > 0 {
		return fmt.Errorf("%d of %d flows failed", len(failed), len(flows))
	}
	prog.done(fmt.Sprintf("Refreshed %d flows", len(flows)))
	return nil
}
