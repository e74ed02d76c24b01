package sink

import (
	"bytes"
	"fmt"
	"html"
	"math"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"

	"github.com/pchuan98/livecharts/pkg/core/chart"
	"github.com/pchuan98/livecharts/pkg/core/drawing"
	"github.com/pchuan98/livecharts/pkg/render"
)

const (
	gridColor  = "#e5e7eb"
	axisColor  = "#6b7280"
	labelStyle = `font-family="sans-serif" font-size="11" fill="#374151"`
)

// SVGOption configures SVG rendering via [RenderSVG].
type SVGOption func(*svgRenderer)

type svgRenderer struct {
	title      string
	background string
	locale     language.Tag
	grid       bool
}

// WithTitle draws a title above the plot area.
func WithTitle(s string) SVGOption { return func(r *svgRenderer) { r.title = s } }

// WithBackground fills the whole control with color.
func WithBackground(color string) SVGOption { return func(r *svgRenderer) { r.background = color } }

// WithLocale formats numeric tick labels for tag.
func WithLocale(tag language.Tag) SVGOption { return func(r *svgRenderer) { r.locale = tag } }

// WithoutGrid omits gridlines and axis labels.
func WithoutGrid() SVGOption { return func(r *svgRenderer) { r.grid = false } }

// RenderSVG draws c as it looks at time at. c must have been updated.
func RenderSVG(c *chart.Chart, at time.Duration, opts ...SVGOption) []byte {
	r := svgRenderer{locale: language.English, grid: true}
	for _, opt := range opts {
		opt(&r)
	}

	w, h := c.ControlSize.Width, c.ControlSize.Height
	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.1f %.1f" width="%.0f" height="%.0f">`+"\n",
		w, h, w, h)

	if r.background != "" {
		fmt.Fprintf(&buf, `  <rect class="background" x="0" y="0" width="%.1f" height="%.1f" fill="%s"/>`+"\n",
			w, h, html.EscapeString(r.background))
	}
	if r.grid {
		r.renderGrid(&buf, c)
	}

	buf.WriteString("  <g class=\"series\">\n")
	c.Canvas.Draw(&svgContext{buf: &buf}, at)
	buf.WriteString("  </g>\n")

	if r.title != "" {
		fmt.Fprintf(&buf, `  <text class="title" x="%.1f" y="%.1f" text-anchor="middle" font-family="sans-serif" font-size="14">%s</text>`+"\n",
			w/2, math.Max(c.DrawMargin.Top-4, 12), html.EscapeString(r.title))
	}

	buf.WriteString("</svg>\n")
	return buf.Bytes()
}

func (r *svgRenderer) renderGrid(buf *bytes.Buffer, c *chart.Chart) {
	loc, size := c.DrawMarginLocation(), c.DrawMarginSize()
	left, right := loc.X, loc.X+size.Width
	top, bottom := loc.Y, loc.Y+size.Height

	buf.WriteString("  <g class=\"grid\">\n")
	if len(c.YAxes) > 0 {
		a := c.YAxes[0]
		format := r.formatter(a.Tick(c.ControlSize, a.VisibleBounds()))
		for _, t := range render.AxisTicks(c, a, format) {
			fmt.Fprintf(buf, `    <line x1="%.1f" y1="%.1f" x2="%.1f" y2="%.1f" stroke="%s"/>`+"\n",
				left, t.Pixel, right, t.Pixel, gridColor)
			fmt.Fprintf(buf, `    <text x="%.1f" y="%.1f" text-anchor="end" %s>%s</text>`+"\n",
				left-6, t.Pixel+4, labelStyle, html.EscapeString(t.Label))
		}
	}
	if len(c.XAxes) > 0 {
		a := c.XAxes[0]
		for _, t := range render.AxisTicks(c, a, r.formatter(1)) {
			fmt.Fprintf(buf, `    <text x="%.1f" y="%.1f" text-anchor="middle" %s>%s</text>`+"\n",
				t.Pixel, bottom+16, labelStyle, html.EscapeString(t.Label))
		}
	}
	fmt.Fprintf(buf, `    <line x1="%.1f" y1="%.1f" x2="%.1f" y2="%.1f" stroke="%s"/>`+"\n",
		left, bottom, right, bottom, axisColor)
	fmt.Fprintf(buf, `    <line x1="%.1f" y1="%.1f" x2="%.1f" y2="%.1f" stroke="%s"/>`+"\n",
		left, top, left, bottom, axisColor)
	buf.WriteString("  </g>\n")
}

// formatter returns a locale-aware formatter showing as many fraction
// digits as step needs.
func (r *svgRenderer) formatter(step float64) func(float64) string {
	digits := 0
	if step > 0 && step < 1 {
		digits = int(math.Ceil(-math.Log10(step)))
	}
	p := message.NewPrinter(r.locale)
	return func(v float64) string {
		if v == 0 {
			v = 0 // normalise -0
		}
		return p.Sprint(number.Decimal(v, number.MaxFractionDigits(digits), number.MinFractionDigits(digits)))
	}
}

// svgContext is a drawing.Context that writes SVG rect elements.
type svgContext struct {
	buf *bytes.Buffer
}

func (s *svgContext) DrawRect(r drawing.Rect, radius float64, st drawing.Style) {
	fmt.Fprintf(s.buf, `    <rect x="%.2f" y="%.2f" width="%.2f" height="%.2f"`, r.X, r.Y, math.Abs(r.Width), math.Abs(r.Height))
	if radius > 0 {
		fmt.Fprintf(s.buf, ` rx="%.2f"`, radius)
	}
	color := html.EscapeString(st.Color)
	if st.Kind == drawing.Stroke {
		fmt.Fprintf(s.buf, ` fill="none" stroke="%s" stroke-width="%.2f"`, color, st.StrokeWidth)
	} else {
		fmt.Fprintf(s.buf, ` fill="%s"`, color)
	}
	if st.Opacity > 0 && st.Opacity < 1 {
		fmt.Fprintf(s.buf, ` opacity="%.2f"`, st.Opacity)
	}
	s.buf.WriteString("/>\n")
}
