package series

import (
	"math"

	"github.com/pchuan98/livecharts/pkg/core/animation"
	"github.com/pchuan98/livecharts/pkg/core/chart"
	"github.com/pchuan98/livecharts/pkg/core/drawing"
	"github.com/pchuan98/livecharts/pkg/core/scale"
)

// DefaultMaxColumnWidth is the default bar width cap in pixels.
const DefaultMaxColumnWidth = 30

// bounceFactor stretches the vertical transition relative to the chart's.
const bounceFactor = 1.5

// TransitionsSetter attaches transitions to a newly created visual.
type TransitionsSetter func(g drawing.Geometry, defaultAnimation *animation.Animation)

// ColumnSeries plots values as vertical columns.
type ColumnSeries struct {
	chart.SeriesBase

	// Pivot is the value columns grow from.
	Pivot float64
	// MaxColumnWidth caps the column width in pixels.
	MaxColumnWidth float64
	// IgnoresColumnPosition makes the series take the full category width,
	// overlapping other series that do the same.
	IgnoresColumnPosition bool
	// TransitionsSetter overrides DefaultTransitions when set.
	TransitionsSetter TransitionsSetter
	// Visual creates the geometry of new points. Defaults to rectangles.
	Visual drawing.Factory
}

// NewColumnSeries creates a column series over values.
func NewColumnSeries(values []float64) *ColumnSeries {
	return &ColumnSeries{
		SeriesBase:     chart.NewSeriesBase(chart.Bar|chart.VerticalOrientation, values),
		MaxColumnWidth: DefaultMaxColumnWidth,
		Visual:         drawing.NewRectangleGeometry,
	}
}

// ColumnPositionIgnored implements [chart.ColumnPositioner].
func (s *ColumnSeries) ColumnPositionIgnored() bool { return s.IgnoresColumnPosition }

// StackGroup returns 0: columns do not stack.
func (s *ColumnSeries) StackGroup() int { return 0 }

// Measure lays out one column per fetched point.
func (s *ColumnSeries) Measure(c *chart.Chart, xAxis, yAxis *chart.Axis) {
	xScale := c.Scaler(xAxis)
	yScale := c.Scaler(yAxis)

	uw := xScale.UnitWidth()
	uwm := 0.5 * uw
	p := yScale.ToPixel(s.Pivot)

	pos := c.SeriesContext.ColumnPosition(s)
	count := c.SeriesContext.ColumnCount(s)
	cp := 0.0

	if !s.IgnoresColumnPosition && count > 1 {
		uw /= float64(count)
		uwm = 0.5 * uw
		cp = (float64(pos)-float64(count)/2)*uw + uwm
	}

	// cp keeps the unclamped slot so clamped columns stay centered in it.
	if uw > s.MaxColumnWidth {
		uw = s.MaxColumnWidth
		uwm = uw / 2
	}

	c.Canvas.AddPaintTask(s.Fill)
	c.Canvas.AddPaintTask(s.Stroke)

	anim := c.Animation()
	ts := s.TransitionsSetter
	if ts == nil {
		ts = DefaultTransitions
	}

	for point := range s.Fetch(c) {
		x := xScale.ToPixel(point.X)
		y := yScale.ToPixel(point.Y)
		b := math.Abs(y - p)

		if point.Visual == nil {
			r := s.newVisual(c)
			r.SetX(x - uwm + cp)
			r.SetY(p)
			r.SetWidth(uw)
			r.SetHeight(0)

			ts(r, anim)

			point.HoverArea = &chart.HoverArea{}
			point.Visual = r
		}
		g := point.Visual
		s.attach(g)

		cy := y - b
		if point.Y > s.Pivot {
			cy = y
		}

		g.SetX(x - uwm + cp)
		g.SetY(cy)
		g.SetWidth(uw)
		g.SetHeight(b)

		point.HoverArea.SetDimensions(x-uwm+cp, cy, uw, b)
		s.PointMeasured(point, g)
		c.AddDrawable(g)
	}

	c.Canvas.AddPaintTask(s.HighlightFill)
	c.Canvas.AddPaintTask(s.HighlightStroke)
}

// GetBounds pads the raw data bounds: half a category on each side of X,
// and one Y tick above and below.
func (s *ColumnSeries) GetBounds(c *chart.Chart, x, y *chart.Axis) scale.CartesianBounds {
	base := s.DataBounds(c)
	tick := y.Tick(c.ControlSize, base.YAxisBounds)

	return scale.CartesianBounds{
		XAxisBounds: base.XAxisBounds.Pad(0.5),
		YAxisBounds: base.YAxisBounds.Pad(tick),
	}
}

// DefaultTransitions eases X and Width with the chart animation and Y and
// Height with a bounce lasting 1.5x as long. Both groups are completed right
// away so the values the visual was created with are the starting point of
// the first move.
func DefaultTransitions(g drawing.Geometry, defaultAnimation *animation.Animation) {
	horizontal := []drawing.Property{drawing.PropX, drawing.PropWidth}
	g.SetPropertyTransition(defaultAnimation, horizontal...)
	g.CompleteTransition(horizontal...)

	vertical := []drawing.Property{drawing.PropY, drawing.PropHeight}
	g.SetPropertyTransition(defaultAnimation.Scaled(animation.BounceOut, bounceFactor), vertical...)
	g.CompleteTransition(vertical...)
}

func (s *ColumnSeries) newVisual(c *chart.Chart) drawing.Geometry {
	if s.Visual == nil {
		return drawing.NewRectangle(c.Clock())
	}
	return s.Visual(c.Clock())
}

// attach adds g to the series paints. A prune in an earlier pass may have
// detached it.
func (s *ColumnSeries) attach(g drawing.Geometry) {
	if s.Fill != nil {
		s.Fill.AddGeometry(g)
	}
	if s.Stroke != nil {
		s.Stroke.AddGeometry(g)
	}
}

var (
	_ chart.Series           = (*ColumnSeries)(nil)
	_ chart.ColumnPositioner = (*ColumnSeries)(nil)
)
