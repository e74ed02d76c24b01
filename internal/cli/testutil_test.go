package cli

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"
)

const testDefinition = `{
  "title": "cli",
  "width": 100,
  "height": 100,
  "margin": {"left": 0, "top": 0, "right": 0, "bottom": 0},
  "animation": {"easing": "linear", "duration": "500ms"},
  "y_axis": {"min": 0, "max": 10},
  "series": [{"name": "a", "values": [5]}],
  "frames": [{"at": "1s", "values": [[10]]}]
}`

// writeDefinition writes testDefinition into a fresh directory.
func writeDefinition(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "chart.json")
	if err := os.WriteFile(path, []byte(testDefinition), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

// runCommand executes the root command with args and returns its stdout.
func runCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()
	root := New(io.Discard, LogInfo).RootCommand()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(io.Discard)
	root.SetArgs(args)
	err := root.ExecuteContext(context.Background())
	return out.String(), err
}
