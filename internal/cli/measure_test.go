package cli

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/pchuan98/livecharts/pkg/core/drawing"
	"github.com/pchuan98/livecharts/pkg/render"
)

func TestMeasureCommand(t *testing.T) {
	path := writeDefinition(t)

	tests := []struct {
		name  string
		args  []string
		wants []string
	}{
		{"settled", nil, []string{"cli", "settled", "35.0,0.0 30.0x100.0"}},
		{"mid animation", []string{"--at", "250ms"}, []string{"at 250ms", "animating"}},
		{"after first pass", []string{"--at", "900ms"}, []string{"35.0,50.0 30.0x50.0", "settled"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			args := append([]string{"measure", path, "--no-cache"}, tt.args...)
			out, err := runCommand(t, args...)
			if err != nil {
				t.Fatalf("measure: %v", err)
			}
			for _, want := range tt.wants {
				if !strings.Contains(out, want) {
					t.Errorf("output missing %q:\n%s", want, out)
				}
			}
		})
	}
}

func TestMeasureCommandJSON(t *testing.T) {
	path := writeDefinition(t)

	out, err := runCommand(t, "measure", path, "--no-cache", "--json", "--width", "200")
	if err != nil {
		t.Fatalf("measure: %v", err)
	}

	var got struct {
		Title string `json:"title"`
		render.Layout
	}
	if err := json.Unmarshal([]byte(out), &got); err != nil {
		t.Fatalf("decode: %v\n%s", err, out)
	}
	if got.Title != "cli" || got.Width != 200 {
		t.Errorf("title = %q, width = %g", got.Title, got.Width)
	}
	if len(got.Series) != 1 || len(got.Series[0].Points) != 1 {
		t.Fatalf("series = %+v", got.Series)
	}
	if p := got.Series[0].Points[0]; p.State != "settled" || p.Rect.Height != 100 {
		t.Errorf("point = %+v", p)
	}
}

func TestLayoutTable(t *testing.T) {
	l := render.Layout{
		Series: []render.SeriesLayout{{
			Name: "revenue",
			Points: []render.PointLayout{
				{Index: 0, Y: 12.5, Rect: drawing.Rect{X: 1, Y: 2, Width: 3, Height: 4}, State: "settled"},
				{Index: 1, Y: -3, State: "animating"},
			},
		}},
	}

	out := layoutTable(l)
	for _, want := range []string{"Series", "Target", "revenue", "12.5", "-3", "1.0,2.0 3.0x4.0", "settled", "animating"} {
		if !strings.Contains(out, want) {
			t.Errorf("table missing %q:\n%s", want, out)
		}
	}
}
