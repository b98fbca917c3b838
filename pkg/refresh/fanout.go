package refresh

import (
	"context"

	apperr "github.com/matzehuels/githot/pkg/errors"
	"github.com/matzehuels/githot/pkg/integrations/github"
)

type detailResult struct {
	index  int
	detail *github.UserDetail
	err    error
}

// fetchDetails fetches every user's profile concurrently and returns them in
// input order. The first failure to arrive aborts the join with a
// FanOutError; fetches still in flight finish into the buffered channel and
// are discarded.
func (o *Orchestrator) fetchDetails(ctx context.Context, users []github.UserSummary) ([]github.UserDetail, error) {
	results := make(chan detailResult, len(users))
	for i, u := range users {
		go func() {
			d, err := o.search.FetchUser(ctx, u.URL)
			results <- detailResult{index: i, detail: d, err: err}
		}()
	}

	details := make([]github.UserDetail, len(users))
	for range users {
		select {
		case r := <-results:
			if r.err != nil {
				return nil, &apperr.FanOutError{Index: r.index, URL: users[r.index].URL, Err: r.err}
			}
			details[r.index] = *r.detail
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	return details, nil
}
