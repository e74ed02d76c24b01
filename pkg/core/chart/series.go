package chart

import (
	"iter"

	"github.com/pchuan98/livecharts/pkg/core/drawing"
	"github.com/pchuan98/livecharts/pkg/core/scale"
)

// Properties flags what kind of series a series is.
type Properties uint

const (
	Bar Properties = 1 << iota
	Line
	Stacked
	VerticalOrientation
	HorizontalOrientation
)

// Has reports whether all flags in f are set.
func (p Properties) Has(f Properties) bool { return p&f == f }

// Series is a plottable data series.
type Series interface {
	Name() string
	Properties() Properties
	ScalesXAt() int
	ScalesYAt() int

	// GetBounds returns the axis bounds the series needs.
	GetBounds(c *Chart, x, y *Axis) scale.CartesianBounds
	// Measure lays out the series' visuals for the current pass.
	Measure(c *Chart, x, y *Axis)
	// StackGroup identifies the stacking group; 0 means none.
	StackGroup() int
}

// ColumnPositioner is implemented by bar series that can opt out of
// sharing the category width with their siblings.
type ColumnPositioner interface {
	ColumnPositionIgnored() bool
}

// PointMeasuredFunc is called after a point's geometry has been assigned.
type PointMeasuredFunc func(p *DataPoint, g drawing.Geometry)

// SeriesBase implements the data side of a series. Point i maps to
// X = i, Y = values[i].
type SeriesBase struct {
	Title      string
	XAxisIndex int
	YAxisIndex int

	Fill            *drawing.Paint
	Stroke          *drawing.Paint
	HighlightFill   *drawing.Paint
	HighlightStroke *drawing.Paint

	OnPointMeasured PointMeasuredFunc

	props  Properties
	values []float64
	points []*DataPoint
}

// NewSeriesBase creates a base with the given properties and values.
func NewSeriesBase(props Properties, values []float64) SeriesBase {
	b := SeriesBase{props: props}
	b.SetValues(values)
	return b
}

func (s *SeriesBase) Name() string           { return s.Title }
func (s *SeriesBase) Properties() Properties { return s.props }
func (s *SeriesBase) ScalesXAt() int         { return s.XAxisIndex }
func (s *SeriesBase) ScalesYAt() int         { return s.YAxisIndex }

// Values returns a copy of the series values.
func (s *SeriesBase) Values() []float64 {
	return append([]float64(nil), s.values...)
}

// SetValues replaces the series values. Points at indexes that still exist
// keep their visuals; points beyond the new length are dropped.
func (s *SeriesBase) SetValues(values []float64) {
	s.values = append(s.values[:0], values...)
	if len(s.points) > len(s.values) {
		clear(s.points[len(s.values):])
		s.points = s.points[:len(s.values)]
	}
}

// Points returns the points created so far.
func (s *SeriesBase) Points() []*DataPoint { return s.points }

// Fetch returns the sequence of visible points. Each call starts a fresh
// pass over the current values; point identity is stable across calls.
func (s *SeriesBase) Fetch(c *Chart) iter.Seq[*DataPoint] {
	return func(yield func(*DataPoint) bool) {
		for i, v := range s.values {
			if i >= len(s.points) {
				s.points = append(s.points, &DataPoint{Index: i})
			}
			p := s.points[i]
			p.X, p.Y = float64(i), v
			if !yield(p) {
				return
			}
		}
	}
}

// DataBounds returns the raw bounds of the fetched points.
func (s *SeriesBase) DataBounds(c *Chart) scale.CartesianBounds {
	b := scale.EmptyCartesianBounds()
	for p := range s.Fetch(c) {
		b.XAxisBounds.Append(p.X)
		b.YAxisBounds.Append(p.Y)
	}
	return b
}

// PointMeasured invokes OnPointMeasured if set.
func (s *SeriesBase) PointMeasured(p *DataPoint, g drawing.Geometry) {
	if s.OnPointMeasured != nil {
		s.OnPointMeasured(p, g)
	}
}
