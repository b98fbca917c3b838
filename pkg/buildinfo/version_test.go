package buildinfo

import (
	"strings"
	"testing"
)

func TestUserAgent(t *testing.T) {
	old := Version
	t.Cleanup(func() { Version = old })

	Version = "v1.2.3"
	if got := UserAgent(); got != "githot/v1.2.3" {
		t.Errorf("UserAgent() = %q", got)
	}
}

func TestTemplate(t *testing.T) {
	got := Template()
	if !strings.HasPrefix(got, "{{.Name}} version ") || !strings.Contains(got, "commit: "+Commit) {
		t.Errorf("Template() = %q", got)
	}
	if !strings.Contains(String(), "built: "+Date) {
		t.Errorf("String() = %q", String())
	}
}
