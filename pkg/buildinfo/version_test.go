package buildinfo

import (
	"runtime"
	"strings"
	"testing"
)

func TestStrings(t *testing.T) {
	defer func(v, c, d string) { Version, Commit, Date = v, c, d }(Version, Commit, Date)
	Version, Commit, Date = "v1.2.3", "abc123", "2026-01-02"

	want := "version: v1.2.3\ncommit: abc123\nbuilt: 2026-01-02\ngo: " + runtime.Version()
	if got := String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
	if got := Template(); !strings.HasPrefix(got, "{{.Name}} v1.2.3 (abc123, 2026-01-02, go") {
		t.Errorf("Template() = %q", got)
	}
	if got := ServerHeader(); got != "livecharts/v1.2.3" {
		t.Errorf("ServerHeader() = %q", got)
	}
}
