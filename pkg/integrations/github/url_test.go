package github

import "testing"

func TestBuildURL(t *testing.T) {
	tests := []struct {
		name   string
		base   string
		typ    ResourceType
		params []Param
		want   string
	}{
		{
			name:   "trailing slash",
			base:   "https://api.github.com/",
			typ:    Users,
			params: []Param{{"q", "x"}, {"page", "1"}},
			want:   "https://api.github.com/search/users?q=x&page=1",
		},
		{
			name:   "no trailing slash",
			base:   "https://api.github.com",
			typ:    Repositories,
			params: []Param{{"q", "x"}},
			want:   "https://api.github.com/search/repositories?q=x",
		},
		{
			name:   "several trailing slashes",
			base:   "http://localhost:8080/api//",
			typ:    Users,
			params: []Param{{"q", "x"}},
			want:   "http://localhost:8080/api/search/users?q=x",
		},
		{
			name: "no params",
			base: "https://api.github.com/",
			typ:  Users,
			want: "https://api.github.com/search/users",
		},
		{
			name:   "reserved characters encoded",
			base:   "https://api.github.com/",
			typ:    Repositories,
			params: []Param{{"q", "a b&c=d"}, {"sort", "stars"}},
			want:   "https://api.github.com/search/repositories?q=a%20b%26c%3Dd&sort=stars",
		},
		{
			name:   "qualifier expression",
			base:   "https://api.github.com/",
			typ:    Repositories,
			params: []Param{{"q", "created:2024-02-01..2024-03-01"}},
			want:   "https://api.github.com/search/repositories?q=created%3A2024-02-01..2024-03-01",
		},
		{
			name:   "empty values emitted",
			base:   "https://api.github.com/",
			typ:    Users,
			params: []Param{{"q", ""}, {"sort", ""}, {"order", ""}},
			want:   "https://api.github.com/search/users?q=&sort=&order=",
		},
		{
			name:   "keys encoded",
			base:   "https://api.github.com/",
			typ:    Users,
			params: []Param{{"a&b", "1"}},
			want:   "https://api.github.com/search/users?a%26b=1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := BuildURL(tt.base, tt.typ, tt.params); got != tt.want {
				t.Errorf("BuildURL() = %q, want %q", got, tt.want)
			}
		})
	}
}
