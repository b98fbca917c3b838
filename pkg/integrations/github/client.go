package github

import (
	"context"
	"fmt"

	"github.com/matzehuels/githot/pkg/buildinfo"
	apperr "github.com/matzehuels/githot/pkg/errors"
	"github.com/matzehuels/githot/pkg/integrations"
)

// Client runs searches and resource fetches against the GitHub REST API.
// Its only state is the immutable [Config]; it is safe for concurrent use.
type Client struct {
	*integrations.Client
	config Config
}

// NewClient creates a GitHub API client for cfg.
// A zero Config fails with CONSTRUCTION_ERROR.
func NewClient(cfg Config) (*Client, error) {
	if !cfg.valid() {
		return nil, apperr.New(apperr.ErrCodeConstruction, "could not create GitHub client: config not initialized, use NewConfig")
	}

	headers := map[string]string{
		"Accept":     MediaTypeMercyPreview,
		"User-Agent": buildinfo.UserAgent(),
	}

	return &Client{
		Client: integrations.NewClient(headers),
		config: cfg,
	}, nil
}

// Config returns the client's query configuration.
func (c *Client) Config() Config { return c.config }

// SearchURL returns the URL Search would request for req.
func (c *Client) SearchURL(req SearchRequest) string {
	return BuildURL(c.config.baseURL, req.Type, MergeParams(req.Params(), c.config.params))
}

// Search runs req and decodes the response into v.
// q, sort and order are always sent, even when empty; the configured
// defaults are appended after them and can never replace them.
func (c *Client) Search(ctx context.Context, req SearchRequest, v any) error {
	if err := req.Validate(); err != nil {
		return err
	}
	return c.Get(ctx, c.SearchURL(req), v)
}

// SearchRepositories searches repositories. The returned Items is never nil.
func (c *Client) SearchRepositories(ctx context.Context, q, sort string, order Order) (*SearchResult[RepoSummary], error) {
	return search[RepoSummary](ctx, c, SearchRequest{Type: Repositories, Query: q, Sort: sort, Order: order})
}

// SearchUsers searches user accounts. The returned Items is never nil.
func (c *Client) SearchUsers(ctx context.Context, q, sort string, order Order) (*SearchResult[UserSummary], error) {
	return search[UserSummary](ctx, c, SearchRequest{Type: Users, Query: q, Sort: sort, Order: order})
}

func search[T any](ctx context.Context, c *Client, req SearchRequest) (*SearchResult[T], error) {
	var res SearchResult[T]
	if err := c.Search(ctx, req, &res); err != nil {
		return nil, fmt.Errorf("search %s: %w", req.Type, err)
	}
	if res.Items == nil {
		res.Items = []T{}
	}
	return &res, nil
}

// Fetch requests an absolute resource URL verbatim and decodes it into v.
// No parameters are merged.
func (c *Client) Fetch(ctx context.Context, url string, v any) error {
	return c.Get(ctx, url, v)
}

// FetchUser fetches a full user profile from a UserSummary.URL.
func (c *Client) FetchUser(ctx context.Context, url string) (*UserDetail, error) {
	var u UserDetail
	if err := c.Fetch(ctx, url, &u); err != nil {
		return nil, err
	}
	return &u, nil
}
