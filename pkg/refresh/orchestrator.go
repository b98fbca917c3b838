package refresh

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"golang.org/x/sync/singleflight"

	"github.com/matzehuels/githot/pkg/integrations/github"
	"github.com/matzehuels/githot/pkg/observability"
)

// Flow names one of the two independent refresh flows.
type Flow string

const (
	Repos Flow = "repos"
	Users Flow = "users"
)

// Flows lists every flow in display order.
var Flows = []Flow{Repos, Users}

// ParseFlow converts a flow name to a Flow.
func ParseFlow(s string) (Flow, error) {
	switch f := Flow(s); f {
	case Repos, Users:
		return f, nil
	}
	return "", fmt.Errorf("unknown flow %q: use repos or users", s)
}

// View receives the rows produced by a successful flow. Implementations
// must be safe for concurrent use; both flows may render at the same time.
type View interface {
	RenderRepoTable(items []github.RepoSummary)
	RenderUserTable(details []github.UserDetail)
}

// Searcher is the subset of the query service the flows need.
// *github.Client implements it.
type Searcher interface {
	SearchRepositories(ctx context.Context, q, sort string, order github.Order) (*github.SearchResult[github.RepoSummary], error)
	SearchUsers(ctx context.Context, q, sort string, order github.Order) (*github.SearchResult[github.UserSummary], error)
	FetchUser(ctx context.Context, url string) (*github.UserDetail, error)
}

// ErrorHandler receives every error a flow produces.
type ErrorHandler func(flow Flow, err error)

// Option configures an Orchestrator.
type Option func(*Orchestrator)

// WithClock sets the clock used to compute the date-bounded queries.
func WithClock(now func() time.Time) Option {
	return func(o *Orchestrator) {
		if now != nil {
			o.now = now
		}
	}
}

// WithErrorHandler replaces the default handler, which logs the error.
func WithErrorHandler(h ErrorHandler) Option {
	return func(o *Orchestrator) {
		if h != nil {
			o.onError = h
		}
	}
}

// WithLogger sets the logger for cycle events.
func WithLogger(l *log.Logger) Option {
	return func(o *Orchestrator) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithSingleFlight makes concurrent calls of the same flow share one
// in-flight execution. Without it, overlapping cycles run independently.
func WithSingleFlight() Option {
	return func(o *Orchestrator) { o.group = &singleflight.Group{} }
}

// Orchestrator runs the repository and user flows against a Searcher and
// hands successful results to a View.
type Orchestrator struct {
	search  Searcher
	view    View
	now     func() time.Time
	onError ErrorHandler
	logger  *log.Logger
	group   *singleflight.Group

	wg sync.WaitGroup
}

// New creates an Orchestrator.
func New(search Searcher, view View, opts ...Option) *Orchestrator {
	o := &Orchestrator{
		search: search,
		view:   view,
		now:    time.Now,
		logger: log.Default(),
	}
	for _, opt := range opts {
		opt(o)
	}
	if o.onError == nil {
		o.onError = func(flow Flow, err error) {
			o.logger.Error("refresh failed", "flow", flow, "err", err)
		}
	}
	return o
}

// RefreshRepositories runs the repository flow once: repositories created in
// the previous calendar month, by stars descending. On failure the view is
// not touched and the error is passed to the error handler and returned.
func (o *Orchestrator) RefreshRepositories(ctx context.Context) error {
	return o.run(ctx, Repos, o.refreshRepos)
}

// RefreshUsers runs the user flow once: accounts created within the last
// year, by followers descending, followed by one detail fetch per result.
// The view only sees the details when every fetch succeeded.
func (o *Orchestrator) RefreshUsers(ctx context.Context) error {
	return o.run(ctx, Users, o.refreshUsers)
}

// Refresh runs a single flow by name.
func (o *Orchestrator) Refresh(ctx context.Context, flow Flow) error {
	switch flow {
	case Repos:
		return o.RefreshRepositories(ctx)
	case Users:
		return o.RefreshUsers(ctx)
	}
	return fmt.Errorf("unknown flow %q", flow)
}

// RefreshAll runs both flows concurrently and waits for both. The returned
// error joins the failures of either flow.
func (o *Orchestrator) RefreshAll(ctx context.Context) error {
	return errors.Join(o.RefreshEach(ctx, Flows...)...)
}

// RefreshEach runs the given flows concurrently and waits for all of them.
// errs[i] is the error of flows[i], or nil.
func (o *Orchestrator) RefreshEach(ctx context.Context, flows ...Flow) []error {
	errs := make([]error, len(flows))
	var wg sync.WaitGroup
	for i, f := range flows {
		wg.Add(1)
		go func() {
			defer wg.Done()
			errs[i] = o.Refresh(ctx, f)
		}()
	}
	wg.Wait()
	return errs
}

func (o *Orchestrator) run(ctx context.Context, flow Flow, fn func(context.Context) (int, error)) error {
	if o.group == nil {
		return o.cycle(ctx, flow, fn)
	}
	_, err, shared := o.group.Do(string(flow), func() (any, error) {
		return nil, o.cycle(ctx, flow, fn)
	})
	if shared {
		o.logger.Debug("joined in-flight refresh", "flow", flow)
	}
	return err
}

func (o *Orchestrator) cycle(ctx context.Context, flow Flow, fn func(context.Context) (int, error)) error {
	id := uuid.NewString()[:8]
	logger := o.logger.With("flow", flow, "cycle", id)
	hooks := observability.Refresh()

	hooks.OnRefreshStart(ctx, string(flow))
	logger.Debug("refresh started")

	start := time.Now()
	n, err := fn(ctx)
	elapsed := time.Since(start)

	hooks.OnRefreshComplete(ctx, string(flow), n, elapsed, err)
	if err != nil {
		o.onError(flow, err)
		return err
	}
	logger.Info("refreshed", "items", n, "took", elapsed.Round(time.Millisecond))
	return nil
}

func (o *Orchestrator) refreshRepos(ctx context.Context) (int, error) {
	res, err := o.search.SearchRepositories(ctx, RepoQuery(o.now()), "stars", github.Desc)
	if err != nil {
		return 0, err
	}
	o.view.RenderRepoTable(res.Items)
	return len(res.Items), nil
}

func (o *Orchestrator) refreshUsers(ctx context.Context) (int, error) {
	res, err := o.search.SearchUsers(ctx, UserQuery(o.now()), "followers", github.Desc)
	if err != nil {
		return 0, err
	}
	details, err := o.fetchDetails(ctx, res.Items)
	if err != nil {
		return 0, err
	}
	o.view.RenderUserTable(details)
	return len(details), nil
}
