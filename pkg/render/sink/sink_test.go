package sink

import (
	"context"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"golang.org/x/text/language"

	"github.com/pchuan98/livecharts/pkg/core/animation"
	"github.com/pchuan98/livecharts/pkg/core/chart"
	"github.com/pchuan98/livecharts/pkg/core/drawing"
	"github.com/pchuan98/livecharts/pkg/core/scale"
	"github.com/pchuan98/livecharts/pkg/core/series"
	"github.com/pchuan98/livecharts/pkg/render"
)

// newChart builds a 100x100 chart with one red column spanning the full
// height between x=35 and x=65.
func newChart() *chart.Chart {
	s := series.NewColumnSeries([]float64{10})
	s.Fill = drawing.NewSolidFill("#ff0000")
	s.Stroke = drawing.NewStroke("#000000", 1)
	c := chart.New(scale.Size{Width: 100, Height: 100},
		chart.WithClock(&animation.ManualClock{}),
		chart.WithDrawMargin(scale.Margin{}),
		chart.WithAnimation(animation.Linear, 100*time.Millisecond),
	)
	lo, hi := 0.0, 10.0
	c.YAxes[0].MinLimit, c.YAxes[0].MaxLimit = &lo, &hi
	c.AddSeries(s)
	c.Update(context.Background())
	return c
}

func TestRenderSVG(t *testing.T) {
	svg := string(RenderSVG(newChart(), render.Settled, WithTitle("A & B"), WithBackground("#ffffff")))

	for _, want := range []string{
		`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 100.0 100.0" width="100" height="100">`,
		`<rect x="35.00" y="0.00" width="30.00" height="100.00" fill="#ff0000"/>`,
		`<rect x="35.00" y="0.00" width="30.00" height="100.00" fill="none" stroke="#000000" stroke-width="1.00"/>`,
		`class="background"`,
		`<g class="grid">`,
		`A &amp; B`,
	} {
		if !strings.Contains(svg, want) {
			t.Errorf("SVG missing %q", want)
		}
	}
	if !strings.HasSuffix(svg, "</svg>\n") {
		t.Error("SVG should end with </svg>")
	}
	if strings.Index(svg, `fill="#ff0000"`) > strings.Index(svg, `stroke="#000000"`) {
		t.Error("fill should be drawn before stroke")
	}
}

func TestRenderSVGAtStart(t *testing.T) {
	svg := string(RenderSVG(newChart(), 0, WithoutGrid()))

	if !strings.Contains(svg, `<rect x="35.00" y="100.00" width="30.00" height="0.00" fill="#ff0000"/>`) {
		t.Errorf("column at t=0 should be flat on the pivot:\n%s", svg)
	}
	if strings.Contains(svg, `class="grid"`) {
		t.Error("WithoutGrid should omit the grid")
	}
}

func TestFormatter(t *testing.T) {
	tests := []struct {
		name   string
		locale language.Tag
		step   float64
		v      float64
		want   string
	}{
		{"english grouping", language.English, 1000, 5000, "5,000"},
		{"german grouping", language.German, 1000, 5000, "5.000"},
		{"fraction digits", language.English, 0.5, 1.5, "1.5"},
		{"padded fraction", language.English, 0.05, 0.1, "0.10"},
		{"integer step", language.English, 2, 4, "4"},
		{"negative zero", language.English, 1, -0.0, "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := svgRenderer{locale: tt.locale}
			if got := r.formatter(tt.step)(tt.v); got != tt.want {
				t.Errorf("format(%v) = %q, want %q", tt.v, got, tt.want)
			}
		})
	}
}

func TestRenderJSON(t *testing.T) {
	l := render.Snapshot(newChart(), render.Settled)

	data, err := RenderJSON(l, WithJSONTitle("revenue"))
	if err != nil {
		t.Fatalf("RenderJSON() error: %v", err)
	}

	var out struct {
		Title  string  `json:"title"`
		Width  float64 `json:"width"`
		Series []struct {
			Points []struct {
				Rect drawing.Rect `json:"rect"`
			} `json:"points"`
		} `json:"series"`
	}
	if err := json.Unmarshal(data, &out); err != nil {
		t.Fatalf("json.Unmarshal() error: %v", err)
	}
	if out.Title != "revenue" || out.Width != 100 {
		t.Errorf("title, width = %q, %v", out.Title, out.Width)
	}
	if len(out.Series) != 1 || len(out.Series[0].Points) != 1 {
		t.Fatalf("series = %+v", out.Series)
	}
	if got := out.Series[0].Points[0].Rect; got != (drawing.Rect{X: 35, Y: 0, Width: 30, Height: 100}) {
		t.Errorf("rect = %+v", got)
	}

	compact, err := RenderJSON(l, WithJSONCompact())
	if err != nil {
		t.Fatal(err)
	}
	if strings.Contains(string(compact), "\n") {
		t.Error("compact JSON should be a single line")
	}
}

func TestRasterize(t *testing.T) {
	g := Rasterize(newChart(), render.Settled, 10, 10)

	if n := g.Filled(); n != 30 {
		t.Errorf("Filled() = %d, want 30", n)
	}
	for _, col := range []int{3, 4, 5} {
		for row := 0; row < 10; row++ {
			if got := g.At(col, row); got != "#ff0000" {
				t.Fatalf("At(%d, %d) = %q, want #ff0000", col, row, got)
			}
		}
	}
	if g.At(2, 5) != "" || g.At(6, 5) != "" {
		t.Error("cells outside the column should be empty")
	}
	if g.At(-1, 0) != "" || g.At(10, 0) != "" {
		t.Error("out of range cells should be empty")
	}

	lines := strings.Split(g.String(), "\n")
	if len(lines) != 10 {
		t.Fatalf("String() has %d lines, want 10", len(lines))
	}
	if n := strings.Count(g.String(), "█"); n != 30 {
		t.Errorf("String() has %d blocks, want 30", n)
	}
}

func TestRasterizeEmpty(t *testing.T) {
	if g := Rasterize(newChart(), render.Settled, 0, 5); g.Filled() != 0 || g.String() != "" {
		t.Errorf("zero width grid = %+v", g)
	}
	if g := Rasterize(newChart(), 0, 10, 10); g.Filled() != 0 {
		t.Errorf("Filled() at t=0 = %d, want 0 (flat column)", g.Filled())
	}
}
