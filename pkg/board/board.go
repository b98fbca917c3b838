// Package board holds the two fixed-size tables shown by githot.
//
// A [Board] has Rows slots per table, indexed 0..Rows-1. Rendering writes the
// first n slots for n results and leaves the rest as they were: a shorter
// result never clears older rows, and results beyond Rows are ignored.
// Board implements refresh.View and is safe for concurrent use.
package board

import (
	"sync"
	"time"

	"github.com/matzehuels/githot/pkg/integrations/github"
)

// DefaultRows is the number of slots per table.
const DefaultRows = 5

// Board is the shared display state written by the refresh flows and read
// by the terminal UI and the HTTP server.
type Board struct {
	mu    sync.RWMutex
	repos []*github.RepoSummary
	users []*github.UserDetail

	reposAt time.Time
	usersAt time.Time

	subs []func(Table)
}

// Table identifies one of the board's tables.
type Table string

const (
	RepoTable Table = "repos"
	UserTable Table = "users"
)

// New creates a Board with rows slots per table. rows <= 0 uses DefaultRows.
func New(rows int) *Board {
	if rows <= 0 {
		rows = DefaultRows
	}
	return &Board{
		repos: make([]*github.RepoSummary, rows),
		users: make([]*github.UserDetail, rows),
	}
}

// Rows returns the number of slots per table.
func (b *Board) Rows() int { return len(b.repos) }

// RenderRepoTable writes items into the repository slots.
func (b *Board) RenderRepoTable(items []github.RepoSummary) {
	b.mu.Lock()
	for i := range min(len(items), len(b.repos)) {
		r := items[i]
		b.repos[i] = &r
	}
	b.reposAt = time.Now()
	subs := b.subs
	b.mu.Unlock()
	notify(subs, RepoTable)
}

// RenderUserTable writes details into the user slots.
func (b *Board) RenderUserTable(details []github.UserDetail) {
	b.mu.Lock()
	for i := range min(len(details), len(b.users)) {
		u := details[i]
		b.users[i] = &u
	}
	b.usersAt = time.Now()
	subs := b.subs
	b.mu.Unlock()
	notify(subs, UserTable)
}

// Subscribe registers fn to be called after every render with the table
// that changed. fn runs on the rendering goroutine and must not block.
func (b *Board) Subscribe(fn func(Table)) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.subs = append(b.subs, fn)
}

func notify(subs []func(Table), t Table) {
	for _, fn := range subs {
		fn(t)
	}
}

// Snapshot is a point-in-time copy of a board. Empty slots are nil.
type Snapshot struct {
	Repos   []*github.RepoSummary `json:"repos"`
	Users   []*github.UserDetail  `json:"users"`
	ReposAt time.Time             `json:"repos_updated_at"`
	UsersAt time.Time             `json:"users_updated_at"`
}

// Snapshot copies the current slots.
func (b *Board) Snapshot() Snapshot {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return Snapshot{
		Repos:   append([]*github.RepoSummary(nil), b.repos...),
		Users:   append([]*github.UserDetail(nil), b.users...),
		ReposAt: b.reposAt,
		UsersAt: b.usersAt,
	}
}

// Repos returns the filled repository slots in slot order.
func (b *Board) Repos() []github.RepoSummary {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return filled(b.repos)
}

// Users returns the filled user slots in slot order.
func (b *Board) Users() []github.UserDetail {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return filled(b.users)
}

func filled[T any](slots []*T) []T {
	out := make([]T, 0, len(slots))
	for _, s := range slots {
		if s != nil {
			out = append(out, *s)
		}
	}
	return out
}
