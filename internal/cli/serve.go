package cli

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/spf13/cobra"

	"github.com/matzehuels/githot/pkg/board"
	"github.com/matzehuels/githot/pkg/integrations/github"
	"github.com/matzehuels/githot/pkg/refresh"
)

const shutdownTimeout = 10 * time.Second

// serveCommand runs the scheduler behind a JSON API.
func (c *CLI) serveCommand() *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the board as JSON and refresh it periodically",
		Long: `Serve the board as JSON and refresh it periodically.

Routes:
  GET  /api/repos             repository slots
  GET  /api/users             user slots
  POST /api/refresh/{flow}    trigger repos or users
  GET  /healthz               liveness`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithCancel(cmd.Context())
			defer cancel()

			a, err := c.newApp()
			if err != nil {
				return err
			}
			if addr != "" {
				a.cfg.Server.Addr = addr
			}

			srv := newServer(ctx, a.board, a.orch, c.Logger)
			runDone := make(chan struct{})
			go func() {
				defer close(runDone)
				_ = a.orch.Run(ctx, a.cfg.Refresh.Interval.Std())
			}()

			err = srv.Serve(ctx, a.cfg.Server.Addr, a.cfg.Server.ReadTimeout.Std(), a.cfg.Server.WriteTimeout.Std())
			cancel()
			<-runDone
			a.orch.Wait()
			return err
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "listen address (default from config, 127.0.0.1:8080)")
	return cmd
}

// =============================================================================
// Server
// =============================================================================

// server exposes a board and manual triggers over HTTP.
type server struct {
	ctx    context.Context
	board  *board.Board
	orch   *refresh.Orchestrator
	logger *log.Logger
}

func newServer(ctx context.Context, b *board.Board, o *refresh.Orchestrator, logger *log.Logger) *server {
	return &server{ctx: ctx, board: b, orch: o, logger: logger}
}

// Routes returns the HTTP handler.
func (s *server) Routes() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(s.logRequests)

	r.Get("/healthz", s.handleHealth)
	r.Route("/api", func(r chi.Router) {
		r.Get("/repos", s.handleRepos)
		r.Get("/users", s.handleUsers)
		r.Post("/refresh/{flow}", s.handleRefresh)
	})
	return r
}

// Serve listens on addr until ctx is cancelled, then shuts down gracefully.
func (s *server) Serve(ctx context.Context, addr string, readTimeout, writeTimeout time.Duration) error {
	hs := &http.Server{
		Addr:         addr,
		Handler:      s.Routes(),
		ReadTimeout:  readTimeout,
		WriteTimeout: writeTimeout,
		IdleTimeout:  60 * time.Second,
	}

	errc := make(chan error, 1)
	go func() {
		s.logger.Info("serving", "addr", addr)
		errc <- hs.ListenAndServe()
	}()

	select {
	case err := <-errc:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	s.logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := hs.Shutdown(shutdownCtx); err != nil {
		return err
	}
	return ctx.Err()
}

func (s *server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)
		s.logger.Debug("http", "method", r.Method, "path", r.URL.Path, "status", ww.Status(), "took", time.Since(start).Round(time.Microsecond))
	})
}

type tableResponse[T any] struct {
	Rows      []*T      `json:"rows"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (s *server) handleRepos(w http.ResponseWriter, r *http.Request) {
	snap := s.board.Snapshot()
	writeJSON(w, http.StatusOK, tableResponse[github.RepoSummary]{Rows: snap.Repos, UpdatedAt: snap.ReposAt})
}

func (s *server) handleUsers(w http.ResponseWriter, r *http.Request) {
	snap := s.board.Snapshot()
	writeJSON(w, http.StatusOK, tableResponse[github.UserDetail]{Rows: snap.Users, UpdatedAt: snap.UsersAt})
}

func (s *server) handleRefresh(w http.ResponseWriter, r *http.Request) {
	flow, err := refresh.ParseFlow(chi.URLParam(r, "flow"))
	if err != nil {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": err.Error()})
		return
	}
	// Triggered cycles outlive the request.
	if err := s.orch.Trigger(s.ctx, flow); err != nil {
		writeJSON(w, http.StatusServiceUnavailable, map[string]string{"error": err.Error()})
		return
	}
	writeJSON(w, http.StatusAccepted, map[string]string{"flow": string(flow), "status": "triggered"})
}

func (s *server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
