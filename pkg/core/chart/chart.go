package chart

import (
	"context"
	"slices"
	"time"

	"github.com/charmbracelet/log"

	"github.com/pchuan98/livecharts/pkg/core/animation"
	"github.com/pchuan98/livecharts/pkg/core/drawing"
	"github.com/pchuan98/livecharts/pkg/core/scale"
	"github.com/pchuan98/livecharts/pkg/observability"
)

// DefaultDrawMargin leaves room for axis labels.
var DefaultDrawMargin = scale.Margin{Left: 48, Top: 16, Right: 16, Bottom: 32}

// Chart is a cartesian chart. A chart is not safe for concurrent updates;
// once Update returns its geometry may be read from several goroutines.
type Chart struct {
	ControlSize scale.Size
	DrawMargin  scale.Margin

	XAxes  []*Axis
	YAxes  []*Axis
	Series []Series

	Canvas          *drawing.Canvas
	EasingFunction  animation.EasingFunc
	AnimationsSpeed time.Duration

	// MeasuredDrawables holds the visuals measured in the last pass.
	MeasuredDrawables map[drawing.Geometry]struct{}
	SeriesContext     *SeriesContext

	Logger *log.Logger
}

// Option configures a Chart.
type Option func(*Chart)

// WithClock sets the clock geometries animate against.
func WithClock(clock animation.Clock) Option {
	return func(c *Chart) { c.Canvas = drawing.NewCanvas(clock) }
}

// WithLogger sets the chart logger.
func WithLogger(l *log.Logger) Option { return func(c *Chart) { c.Logger = l } }

// WithDrawMargin sets the padding between the control edge and the plot area.
func WithDrawMargin(m scale.Margin) Option { return func(c *Chart) { c.DrawMargin = m } }

// WithAnimation sets the default easing and duration of transitions.
func WithAnimation(easing animation.EasingFunc, speed time.Duration) Option {
	return func(c *Chart) {
		c.EasingFunction = easing
		c.AnimationsSpeed = speed
	}
}

// WithAxes replaces the default axes.
func WithAxes(x, y []*Axis) Option {
	return func(c *Chart) { c.XAxes, c.YAxes = x, y }
}

// New creates a chart of the given control size with one X and one Y axis.
func New(size scale.Size, opts ...Option) *Chart {
	c := &Chart{
		ControlSize:       size,
		DrawMargin:        DefaultDrawMargin,
		XAxes:             []*Axis{NewAxis(scale.X)},
		YAxes:             []*Axis{NewAxis(scale.Y)},
		EasingFunction:    animation.CubicOut,
		AnimationsSpeed:   animation.DefaultSpeed,
		MeasuredDrawables: make(map[drawing.Geometry]struct{}),
		SeriesContext:     NewSeriesContext(nil),
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.Canvas == nil {
		c.Canvas = drawing.NewCanvas(nil)
	}
	if c.Logger == nil {
		c.Logger = log.Default()
	}
	return c
}

// AddSeries appends series in registration order.
func (c *Chart) AddSeries(s ...Series) { c.Series = append(c.Series, s...) }

// RemoveSeries removes s. Its visuals stop drawing after the next Update.
func (c *Chart) RemoveSeries(s Series) {
	c.Series = slices.DeleteFunc(c.Series, func(x Series) bool { return x == s })
}

// DrawMarginLocation returns the top-left corner of the plot area.
func (c *Chart) DrawMarginLocation() scale.Point {
	return scale.Point{X: c.DrawMargin.Left, Y: c.DrawMargin.Top}
}

// DrawMarginSize returns the size of the plot area.
func (c *Chart) DrawMarginSize() scale.Size {
	return scale.Size{
		Width:  max(c.ControlSize.Width-c.DrawMargin.Left-c.DrawMargin.Right, 0),
		Height: max(c.ControlSize.Height-c.DrawMargin.Top-c.DrawMargin.Bottom, 0),
	}
}

// Scaler builds the scaler for a for the current pass.
func (c *Chart) Scaler(a *Axis) *scale.Scaler {
	return scale.New(c.DrawMarginLocation(), c.DrawMarginSize(), a.Orientation, a.VisibleBounds())
}

// Animation returns the chart's default transition.
func (c *Chart) Animation() *animation.Animation {
	return animation.New(c.EasingFunction, c.AnimationsSpeed, 1)
}

// AddDrawable registers g as measured in the current pass.
func (c *Chart) AddDrawable(g drawing.Geometry) {
	c.MeasuredDrawables[g] = struct{}{}
}

// Clock returns the canvas clock.
func (c *Chart) Clock() animation.Clock { return c.Canvas.Clock() }

// AxesFor returns the axes s scales on. Out of range indexes fall back to
// the first axis.
func (c *Chart) AxesFor(s Series) (*Axis, *Axis) {
	return pick(c.XAxes, s.ScalesXAt()), pick(c.YAxes, s.ScalesYAt())
}

func pick(axes []*Axis, i int) *Axis {
	if i < 0 || i >= len(axes) {
		i = 0
	}
	return axes[i]
}

// Update runs one full layout pass.
func (c *Chart) Update(ctx context.Context) {
	start := time.Now()
	observability.Chart().OnUpdateStart(ctx, len(c.Series))

	for _, a := range c.XAxes {
		a.DataBounds = scale.EmptyBounds()
	}
	for _, a := range c.YAxes {
		a.DataBounds = scale.EmptyBounds()
	}
	for _, s := range c.Series {
		x, y := c.AxesFor(s)
		b := s.GetBounds(c, x, y)
		x.DataBounds.Union(b.XAxisBounds)
		y.DataBounds.Union(b.YAxisBounds)
	}

	c.SeriesContext = NewSeriesContext(c.Series)
	c.MeasuredDrawables = make(map[drawing.Geometry]struct{}, len(c.MeasuredDrawables))
	for _, s := range c.Series {
		x, y := c.AxesFor(s)
		s.Measure(c, x, y)
	}
	removed := c.prune()

	elapsed := time.Since(start)
	c.Logger.Debug("chart updated",
		"series", len(c.Series),
		"drawables", len(c.MeasuredDrawables),
		"removed", removed,
		"duration", elapsed)
	observability.Chart().OnUpdateComplete(ctx, len(c.MeasuredDrawables), elapsed)
}

// prune detaches visuals that were not measured in the last pass.
func (c *Chart) prune() int {
	removed := 0
	for _, p := range c.Canvas.PaintTasks() {
		for _, g := range slices.Clone(p.Geometries()) {
			if _, ok := c.MeasuredDrawables[g]; !ok {
				p.RemoveGeometry(g)
				removed++
			}
		}
	}
	return removed
}
