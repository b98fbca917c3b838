package cli

import (
	"bytes"
	"strings"
	"testing"

	"github.com/matzehuels/githot/pkg/integrations/github"
)

func TestRepoRows(t *testing.T) {
	slots := []*github.RepoSummary{
		{FullName: "acme/rocket", Stars: 900, Language: "Go", Description: "fast"},
		nil,
	}
	rows := repoRows(slots)

	if len(rows) != 2 {
		t.Fatalf("rows = %d, want 2", len(rows))
	}
	want := []string{"1", "acme/rocket", "900", "Go", "fast"}
	for i, w := range want {
		if rows[0][i] != w {
			t.Errorf("rows[0][%d] = %q, want %q", i, rows[0][i], w)
		}
	}
	if rows[1][0] != "2" || rows[1][1] != iconEmpty {
		t.Errorf("empty slot row = %v", rows[1])
	}
}

func TestUserRows(t *testing.T) {
	slots := []*github.UserDetail{
		{UserSummary: github.UserSummary{Login: "alice"}, Followers: 12, PublicRepos: 3},
	}
	rows := userRows(slots)
	want := []string{"1", "alice", iconEmpty, "12", "3"}
	for i, w := range want {
		if rows[0][i] != w {
			t.Errorf("rows[0][%d] = %q, want %q", i, rows[0][i], w)
		}
	}
}

func TestRenderRepoTable(t *testing.T) {
	out := renderRepoTable([]*github.RepoSummary{{FullName: "acme/rocket"}, nil, nil})
	for _, want := range []string{"Repository", "Stars", "acme/rocket"} {
		if !strings.Contains(out, want) {
			t.Errorf("table missing %q:\n%s", want, out)
		}
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		in   string
		n    int
		want string
	}{
		{"short", 10, "short"},
		{"  padded  ", 10, "padded"},
		{"abcdefghij", 5, "abcd…"},
		{"héllo wörld", 6, "héllo…"},
	}
	for _, tt := range tests {
		if got := truncate(tt.in, tt.n); got != tt.want {
			t.Errorf("truncate(%q, %d) = %q, want %q", tt.in, tt.n, got, tt.want)
		}
	}
}

func TestPrintHelpers(t *testing.T) {
	var buf bytes.Buffer
	printError(&buf, "failed %s", "x")
	printKeyValue(&buf, "config", "/tmp/c.toml")

	out := buf.String()
	for _, want := range []string{"failed x", "/tmp/c.toml"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}
