package github

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"

	apperr "github.com/matzehuels/githot/pkg/errors"
)

func testClient(t *testing.T, baseURL string, params []Param) *Client {
	t.Helper()
	cfg, err := NewConfig(baseURL, params)
	if err != nil {
		t.Fatalf("NewConfig(%q) error: %v", baseURL, err)
	}
	c, err := NewClient(cfg)
	if err != nil {
		t.Fatalf("NewClient() error: %v", err)
	}
	return c
}

func TestNewClient_ZeroConfig(t *testing.T) {
	_, err := NewClient(Config{})
	if err == nil {
		t.Fatal("NewClient(Config{}) expected error")
	}
	if !apperr.Is(err, apperr.ErrCodeConstruction) {
		t.Errorf("code = %s, want %s", apperr.GetCode(err), apperr.ErrCodeConstruction)
	}
}

func TestClient_SearchUsers(t *testing.T) {
	var gotQuery, gotAccept, gotPath, gotUA string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotUA = r.Header.Get("User-Agent")
		gotQuery = r.URL.RawQuery
		gotAccept = r.Header.Get("Accept")
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"total_count":2,"incomplete_results":false,"items":[
			{"id":1,"login":"alice","url":"https://api.example.com/users/alice"},
			{"id":2,"login":"bob","url":"https://api.example.com/users/bob"}]}`)
	}))
	defer server.Close()

	c := testClient(t, server.URL+"/", DefaultParams())
	res, err := c.SearchUsers(context.Background(), "created:>2024-03-15", "followers", Desc)
	if err != nil {
		t.Fatalf("SearchUsers() error: %v", err)
	}

	if gotPath != "/search/users" {
		t.Errorf("path = %q, want /search/users", gotPath)
	}
	wantQuery := "q=created%3A%3E2024-03-15&sort=followers&order=desc&page=1&per_page=5"
	if gotQuery != wantQuery {
		t.Errorf("query = %q, want %q", gotQuery, wantQuery)
	}
	if gotAccept != MediaTypeMercyPreview {
		t.Errorf("Accept = %q, want %q", gotAccept, MediaTypeMercyPreview)
	}
	if !strings.HasPrefix(gotUA, "githot/") {
		t.Errorf("User-Agent = %q, want githot/<version>", gotUA)
	}
	if res.TotalCount != 2 || len(res.Items) != 2 {
		t.Fatalf("got total=%d items=%d, want 2/2", res.TotalCount, len(res.Items))
	}
	if res.Items[0].Login != "alice" || res.Items[1].URL != "https://api.example.com/users/bob" {
		t.Errorf("unexpected items: %+v", res.Items)
	}
}

func TestClient_SearchRepositories(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/search/repositories" {
			http.NotFound(w, r)
			return
		}
		fmt.Fprint(w, `{"total_count":1,"items":[{"id":7,"name":"tower","full_name":"o/tower",
			"stargazers_count":42,"topics":["go","cli"],"owner":{"login":"o"}}]}`)
	}))
	defer server.Close()

	c := testClient(t, server.URL, nil)
	res, err := c.SearchRepositories(context.Background(), "created:2024-02-01..2024-03-01", "stars", Desc)
	if err != nil {
		t.Fatalf("SearchRepositories() error: %v", err)
	}
	if len(res.Items) != 1 {
		t.Fatalf("items = %d, want 1", len(res.Items))
	}
	r := res.Items[0]
	if r.FullName != "o/tower" || r.Stars != 42 || r.Owner.Login != "o" || len(r.Topics) != 2 {
		t.Errorf("unexpected repo: %+v", r)
	}
}

func TestClient_SearchEmptyItems(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"total_count":0,"incomplete_results":false}`)
	}))
	defer server.Close()

	c := testClient(t, server.URL, nil)
	res, err := c.SearchRepositories(context.Background(), "", "", "")
	if err != nil {
		t.Fatalf("SearchRepositories() error: %v", err)
	}
	if res.Items == nil {
		t.Error("Items should be empty, not nil")
	}
}

func TestClient_SearchReservedAlwaysSent(t *testing.T) {
	var gotQuery string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.RawQuery
		fmt.Fprint(w, `{"items":[]}`)
	}))
	defer server.Close()

	// A reserved default never reaches the wire, even with empty explicit values.
	c := testClient(t, server.URL, []Param{{Key: "sort", Value: "stars"}, {Key: "page", Value: "2"}})
	if _, err := c.SearchUsers(context.Background(), "", "", ""); err != nil {
		t.Fatalf("SearchUsers() error: %v", err)
	}
	if want := "q=&sort=&order=&page=2"; gotQuery != want {
		t.Errorf("query = %q, want %q", gotQuery, want)
	}
}

func TestClient_SearchForbidden(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		fmt.Fprint(w, `{"message":"API rate limit exceeded"}`)
	}))
	defer server.Close()

	c := testClient(t, server.URL, DefaultParams())
	res, err := c.SearchUsers(context.Background(), "q", "followers", Desc)
	if err == nil {
		t.Fatal("expected error for 403")
	}
	if res != nil {
		t.Errorf("result = %+v, want nil", res)
	}

	var httpErr *apperr.HTTPError
	if !errors.As(err, &httpErr) {
		t.Fatalf("error = %v, want *HTTPError", err)
	}
	if httpErr.Status != http.StatusForbidden || httpErr.StatusText != "Forbidden" {
		t.Errorf("got %d %q, want 403 Forbidden", httpErr.Status, httpErr.StatusText)
	}
}

func TestClient_SearchInvalidRequest(t *testing.T) {
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
	}))
	defer server.Close()

	c := testClient(t, server.URL, nil)
	tests := []struct {
		name string
		req  SearchRequest
	}{
		{"missing type", SearchRequest{Query: "x"}},
		{"unknown type", SearchRequest{Type: "issues"}},
		{"bad order", SearchRequest{Type: Users, Order: "sideways"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var v any
			err := c.Search(context.Background(), tt.req, &v)
			if !apperr.Is(err, apperr.ErrCodeInvalidInput) {
				t.Errorf("Search() error = %v, want INVALID_INPUT", err)
			}
		})
	}
	if n := calls.Load(); n != 0 {
		t.Errorf("server called %d times, want 0", n)
	}
}

func TestClient_FetchVerbatim(t *testing.T) {
	var gotURI string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotURI = r.URL.RequestURI()
		fmt.Fprint(w, `{"id":1,"login":"alice","name":"Alice","followers":12,"public_repos":3}`)
	}))
	defer server.Close()

	c := testClient(t, server.URL, DefaultParams())
	u, err := c.FetchUser(context.Background(), server.URL+"/users/alice")
	if err != nil {
		t.Fatalf("FetchUser() error: %v", err)
	}
	if gotURI != "/users/alice" {
		t.Errorf("request URI = %q, want /users/alice (no merged params)", gotURI)
	}
	if u.Login != "alice" || u.Name != "Alice" || u.Followers != 12 || u.PublicRepos != 3 {
		t.Errorf("unexpected user: %+v", u)
	}
}

func TestClient_FetchUserDecodeError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"login":`)
	}))
	defer server.Close()

	c := testClient(t, server.URL, nil)
	_, err := c.FetchUser(context.Background(), server.URL+"/users/x")
	var decErr *apperr.DecodeError
	if !errors.As(err, &decErr) {
		t.Fatalf("error = %v, want *DecodeError", err)
	}
}

func TestClient_SearchURL(t *testing.T) {
	c := testClient(t, "https://api.github.com/", DefaultParams())
	got := c.SearchURL(SearchRequest{Type: Repositories, Query: "a b&c", Sort: "stars", Order: Desc})
	want := "https://api.github.com/search/repositories?q=a%20b%26c&sort=stars&order=desc&page=1&per_page=5"
	if got != want {
		t.Errorf("SearchURL() = %q, want %q", got, want)
	}
}
