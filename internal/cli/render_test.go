package cli

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/pchuan98/livecharts/pkg/errors"
)

func TestParseFormats(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{"empty defaults to svg", "", []string{"svg"}},
		{"single format", "png", []string{"png"}},
		{"multiple formats", "svg,pdf,json", []string{"svg", "pdf", "json"}},
		{"spaces and blanks", " svg , ,json", []string{"svg", "json"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if diff := cmp.Diff(tt.want, parseFormats(tt.input)); diff != "" {
				t.Errorf("parseFormats(%q) mismatch (-want +got):\n%s", tt.input, diff)
			}
		})
	}
}

func TestBasePath(t *testing.T) {
	tests := []struct {
		name   string
		output string
		input  string
		want   string
	}{
		{"from input", "", "charts/sales.toml", "charts/sales"},
		{"output with format ext", "out/chart.svg", "sales.toml", "out/chart"},
		{"output without ext", "out/chart", "sales.toml", "out/chart"},
		{"output with other ext", "out/chart.v2", "sales.toml", "out/chart.v2"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := basePath(tt.output, tt.input); got != tt.want {
				t.Errorf("basePath(%q, %q) = %q, want %q", tt.output, tt.input, got, tt.want)
			}
		})
	}
}

func TestWriteArtifacts(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "chart.json")
	artifacts := map[string][]byte{
		"svg":  []byte("<svg/>"),
		"json": []byte("{}"),
	}

	t.Run("next to input", func(t *testing.T) {
		paths, err := writeArtifacts(artifacts, []string{"svg", "json"}, input, "")
		if err != nil {
			t.Fatalf("writeArtifacts: %v", err)
		}
		want := []string{filepath.Join(dir, "chart.svg"), filepath.Join(dir, "chart.layout.json")}
		if diff := cmp.Diff(want, paths); diff != "" {
			t.Errorf("paths mismatch (-want +got):\n%s", diff)
		}
		data, err := os.ReadFile(want[0])
		if err != nil || string(data) != "<svg/>" {
			t.Errorf("svg content = %q, %v", data, err)
		}
	})

	t.Run("single explicit output", func(t *testing.T) {
		out := filepath.Join(dir, "custom.svg")
		paths, err := writeArtifacts(artifacts, []string{"svg"}, input, out)
		if err != nil {
			t.Fatalf("writeArtifacts: %v", err)
		}
		if len(paths) != 1 || paths[0] != out {
			t.Errorf("paths = %v, want [%s]", paths, out)
		}
	})

	t.Run("missing directory", func(t *testing.T) {
		_, err := writeArtifacts(artifacts, []string{"svg"}, input, filepath.Join(dir, "nope", "x.svg"))
		if err == nil {
			t.Error("expected error for missing directory")
		}
	})
}

func TestSampleFlagsOptions(t *testing.T) {
	f := sampleFlags{at: "300ms", width: 200, locale: "de-DE", refresh: true}
	opts, err := f.options("chart.toml")
	if err != nil {
		t.Fatalf("options: %v", err)
	}
	if opts.At == nil || *opts.At != 300*time.Millisecond {
		t.Errorf("At = %v, want 300ms", opts.At)
	}
	if opts.Path != "chart.toml" || opts.Width != 200 || opts.Locale != "de-DE" || !opts.Refresh {
		t.Errorf("options = %+v", opts)
	}

	settled, err := (&sampleFlags{}).options("chart.toml")
	if err != nil || settled.At != nil {
		t.Errorf("empty --at: At = %v, err = %v", settled.At, err)
	}

	_, err = (&sampleFlags{at: "soon"}).options("chart.toml")
	if !errors.Is(err, errors.ErrCodeInvalidInput) {
		t.Errorf("bad --at: got %v, want %s", err, errors.ErrCodeInvalidInput)
	}
}

func TestRenderCommand(t *testing.T) {
	path := writeDefinition(t)
	dir := filepath.Dir(path)

	if _, err := runCommand(t, "render", path, "-f", "svg,json", "--no-cache"); err != nil {
		t.Fatalf("render: %v", err)
	}

	svg, err := os.ReadFile(filepath.Join(dir, "chart.svg"))
	if err != nil {
		t.Fatalf("read svg: %v", err)
	}
	if !strings.HasPrefix(string(svg), "<svg") {
		t.Errorf("svg output starts with %q", svg[:min(len(svg), 16)])
	}
	layout, err := os.ReadFile(filepath.Join(dir, "chart.layout.json"))
	if err != nil {
		t.Fatalf("read layout: %v", err)
	}
	if !strings.Contains(string(layout), `"title": "cli"`) {
		t.Errorf("layout json missing title:\n%s", layout)
	}

	def, _ := os.ReadFile(path)
	if string(def) != testDefinition {
		t.Error("definition was overwritten")
	}
}

func TestRenderCommandErrors(t *testing.T) {
	path := writeDefinition(t)

	tests := []struct {
		name string
		args []string
		code errors.Code
	}{
		{"missing file", []string{"render", filepath.Join(t.TempDir(), "nope.toml"), "--no-cache"}, errors.ErrCodeFileNotFound},
		{"bad format", []string{"render", path, "-f", "gif", "--no-cache"}, errors.ErrCodeInvalidFormat},
		{"bad time", []string{"render", path, "--at", "later", "--no-cache"}, errors.ErrCodeInvalidInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := runCommand(t, tt.args...)
			if !errors.Is(err, tt.code) {
				t.Errorf("got %v, want code %s", err, tt.code)
			}
		})
	}
}
