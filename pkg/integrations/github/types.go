package github

import "time"

// ResourceType is the search category, injected as a path segment.
type ResourceType string

// Supported search categories.
const (
	Repositories ResourceType = "repositories"
	Users        ResourceType = "users"
)

// Order is the sort direction of a search.
type Order string

// Sort directions.
const (
	Asc  Order = "asc"
	Desc Order = "desc"
)

// SearchRequest describes one search call. It is built per call and not
// modified afterwards.
type SearchRequest struct {
	Type  ResourceType
	Query string // qualifier expression, e.g. "created:>2024-01-01"
	Sort  string // e.g. "stars", "followers"
	Order Order
}

// Params returns the reserved search parameters in q, sort, order order.
// All three are present even when empty.
func (r SearchRequest) Params() []Param {
	return []Param{
		{Key: ParamQuery, Value: r.Query},
		{Key: ParamSort, Value: r.Sort},
		{Key: ParamOrder, Value: string(r.Order)},
	}
}

// SearchResult is the envelope returned by the search endpoints.
type SearchResult[T any] struct {
	TotalCount        int  `json:"total_count"`
	IncompleteResults bool `json:"incomplete_results"`
	Items             []T  `json:"items"`
}

// Owner is the account that owns a repository.
type Owner struct {
	Login     string `json:"login"`
	HTMLURL   string `json:"html_url"`
	AvatarURL string `json:"avatar_url"`
}

// RepoSummary is one item of a repository search.
type RepoSummary struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	FullName    string    `json:"full_name"`
	HTMLURL     string    `json:"html_url"`
	Description string    `json:"description"`
	Stars       int       `json:"stargazers_count"`
	Forks       int       `json:"forks_count"`
	Language    string    `json:"language"`
	Topics      []string  `json:"topics"` // populated by the mercy preview
	CreatedAt   time.Time `json:"created_at"`
	Owner       Owner     `json:"owner"`
}

// UserSummary is one item of a user search. URL points at the full profile.
type UserSummary struct {
	ID        int64  `json:"id"`
	Login     string `json:"login"`
	URL       string `json:"url"`
	HTMLURL   string `json:"html_url"`
	AvatarURL string `json:"avatar_url"`
	Type      string `json:"type"`
}

// UserDetail is the full user profile fetched from UserSummary.URL.
type UserDetail struct {
	UserSummary
	Name        string    `json:"name"`
	Company     string    `json:"company"`
	Location    string    `json:"location"`
	Bio         string    `json:"bio"`
	PublicRepos int       `json:"public_repos"`
	Followers   int       `json:"followers"`
	Following   int       `json:"following"`
	CreatedAt   time.Time `json:"created_at"`
}
