package cli

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/githot/pkg/board"
	"github.com/matzehuels/githot/pkg/refresh"
)

// watchCommand runs the live board: both flows on start, then every
// interval, with manual triggers from the keyboard.
func (c *CLI) watchCommand() *cobra.Command {
	var interval time.Duration

	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Show a live board that refreshes periodically",
		Long: `Show a live board that refreshes periodically.

Keys:
  r  refresh repositories
  u  refresh users
  a  refresh both
  q  quit`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithCancel(cmd.Context())
			defer cancel()

			var p *tea.Program
			onError := func(f refresh.Flow, err error) {
				if p != nil {
					p.Send(flowErrorMsg{flow: f, err: err})
				}
			}

			quiet := screenLogger()
			a, err := c.newApp(refresh.WithErrorHandler(onError), refresh.WithLogger(quiet))
			if err != nil {
				return err
			}
			if interval <= 0 {
				interval = a.cfg.Refresh.Interval.Std()
			}

			m := newWatchModel(ctx, a.board, a.orch, interval)
			p = tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx))
			a.board.Subscribe(func(t board.Table) { p.Send(boardChangedMsg{table: t}) })

			runDone := make(chan struct{})
			go func() {
				defer close(runDone)
				_ = a.orch.Run(ctx, interval)
			}()

			_, err = p.Run()
			cancel()
			<-runDone
			a.orch.Wait()
			if err != nil && ctx.Err() == nil {
				return err
			}
			return nil
		},
	}

	cmd.Flags().DurationVar(&interval, "interval", 0, "refresh interval (default from config, 2m)")
	return cmd
}

// screenLogger returns a logger that discards everything and points the
// observability hooks at it. The alternate screen owns the terminal, so
// flows report through the model instead.
func screenLogger() *log.Logger {
	quiet := log.New(io.Discard)
	installLogHooks(quiet)
	return quiet
}

// =============================================================================
// watchModel - Live board
// =============================================================================

type boardChangedMsg struct {
	table board.Table
}

type flowErrorMsg struct {
	flow refresh.Flow
	err  error
}

// watchModel is the bubbletea model for the live board.
type watchModel struct {
	ctx      context.Context
	board    *board.Board
	orch     *refresh.Orchestrator
	interval time.Duration

	snap    board.Snapshot
	errs    map[refresh.Flow]error
	pending map[refresh.Flow]bool
}

func newWatchModel(ctx context.Context, b *board.Board, o *refresh.Orchestrator, interval time.Duration) watchModel {
	return watchModel{
		ctx:      ctx,
		board:    b,
		orch:     o,
		interval: interval,
		snap:     b.Snapshot(),
		errs:     make(map[refresh.Flow]error),
		pending:  map[refresh.Flow]bool{refresh.Repos: true, refresh.Users: true},
	}
}

func (m watchModel) Init() tea.Cmd {
	return nil
}

func (m watchModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "r":
			m.trigger(refresh.Repos)
		case "u":
			m.trigger(refresh.Users)
		case "a":
			for _, f := range refresh.Flows {
				m.pending[f] = true
			}
			m.orch.TriggerAll(m.ctx)
		}
	case boardChangedMsg:
		m.snap = m.board.Snapshot()
		f := flowOf(msg.table)
		delete(m.errs, f)
		m.pending[f] = false
	case flowErrorMsg:
		m.errs[msg.flow] = msg.err
		m.pending[msg.flow] = false
	}
	return m, nil
}

func (m watchModel) trigger(f refresh.Flow) {
	m.pending[f] = true
	_ = m.orch.Trigger(m.ctx, f)
}

func flowOf(t board.Table) refresh.Flow {
	if t == board.UserTable {
		return refresh.Users
	}
	return refresh.Repos
}

func (m watchModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("githot"))
	b.WriteString(StyleDim.Render(fmt.Sprintf("  every %s", m.interval)))
	b.WriteString("\n\n")

	b.WriteString(m.section("Repositories", refresh.Repos, m.snap.ReposAt))
	b.WriteString(renderRepoTable(m.snap.Repos))
	b.WriteString("\n\n")

	b.WriteString(m.section("Users", refresh.Users, m.snap.UsersAt))
	b.WriteString(renderUserTable(m.snap.Users))
	b.WriteString("\n\n")

	b.WriteString(StyleDim.Render("r repos  u users  a all  q quit"))
	return b.String()
}

// section renders a table heading with its status.
func (m watchModel) section(title string, f refresh.Flow, at time.Time) string {
	status := StyleDim.Render("never")
	switch {
	case m.pending[f]:
		status = StyleDim.Render("refreshing…")
	case m.errs[f] != nil:
		status = styleIconError.Render(iconError) + " " + StyleWarning.Render(m.errs[f].Error())
	case !at.IsZero():
		status = styleIconSuccess.Render(iconSuccess) + " " + StyleDim.Render(at.Format("15:04:05"))
	}
	return StyleTitle.Render(title) + "  " + status + "\n"
}
