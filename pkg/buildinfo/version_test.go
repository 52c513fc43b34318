package buildinfo

import (
	"strings"
	"testing"
)

func TestTemplate(t *testing.T) {
	old := [3]string{Version, Commit, Date}
	defer func() { Version, Commit, Date = old[0], old[1], old[2] }()

	Version, Commit, Date = "v0.3.0", "abc123", "2026-01-02T03:04:05Z"

	if got, want := String(), "version: v0.3.0\ncommit: abc123\nbuilt: 2026-01-02T03:04:05Z"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
	if got := Template(); !strings.HasPrefix(got, "{{.Name}} version v0.3.0\n") {
		t.Errorf("Template() = %q", got)
	}
}
