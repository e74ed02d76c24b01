package render

import (
	"math"
	"time"

	"github.com/pchuan98/livecharts/pkg/core/chart"
	"github.com/pchuan98/livecharts/pkg/core/drawing"
	"github.com/pchuan98/livecharts/pkg/core/scale"
)

// Settled samples geometry after every transition has finished.
const Settled = time.Duration(math.MaxInt64)

// Layout is the geometry of a chart at one instant.
type Layout struct {
	Width  float64      `json:"width"`
	Height float64      `json:"height"`
	Plot   drawing.Rect `json:"plot"`
	// At is the sampled time; omitted when the layout is settled.
	At     string         `json:"at,omitempty"`
	Series []SeriesLayout `json:"series"`
	XTicks []Tick         `json:"x_ticks,omitempty"`
	YTicks []Tick         `json:"y_ticks,omitempty"`
}

// SeriesLayout is the geometry of one series.
type SeriesLayout struct {
	Name   string        `json:"name"`
	Points []PointLayout `json:"points"`
}

// PointLayout is the geometry of one data point.
type PointLayout struct {
	Index  int          `json:"index"`
	X      float64      `json:"x"`
	Y      float64      `json:"y"`
	Rect   drawing.Rect `json:"rect"`
	Target drawing.Rect `json:"target"`
	State  string       `json:"state"`
}

// Tick is one gridline.
type Tick struct {
	Value float64 `json:"value"`
	Pixel float64 `json:"pixel"`
	Label string  `json:"label,omitempty"`
}

// PointSource is implemented by series that expose their data points.
// Every series embedding [chart.SeriesBase] does.
type PointSource interface {
	Points() []*chart.DataPoint
}

// Snapshot samples c at time at. Points whose visual was not measured in
// the last update are skipped.
func Snapshot(c *chart.Chart, at time.Duration) Layout {
	loc, size := c.DrawMarginLocation(), c.DrawMarginSize()
	l := Layout{
		Width:  c.ControlSize.Width,
		Height: c.ControlSize.Height,
		Plot:   drawing.Rect{X: loc.X, Y: loc.Y, Width: size.Width, Height: size.Height},
	}
	if at != Settled {
		l.At = at.String()
	}

	for _, s := range c.Series {
		sl := SeriesLayout{Name: s.Name(), Points: []PointLayout{}}
		if src, ok := s.(PointSource); ok {
			for _, p := range src.Points() {
				if p.Visual == nil {
					continue
				}
				if _, ok := c.MeasuredDrawables[p.Visual]; !ok {
					continue
				}
				sl.Points = append(sl.Points, PointLayout{
					Index:  p.Index,
					X:      p.X,
					Y:      p.Y,
					Rect:   p.Visual.At(at),
					Target: p.Visual.Target(),
					State:  stateAt(p.Visual, at),
				})
			}
		}
		l.Series = append(l.Series, sl)
	}

	if len(c.XAxes) > 0 {
		l.XTicks = AxisTicks(c, c.XAxes[0], nil)
	}
	if len(c.YAxes) > 0 {
		l.YTicks = AxisTicks(c, c.YAxes[0], nil)
	}
	return l
}

// AxisTicks lists the gridlines of a with their pixel positions. An X axis
// with category labels gets one tick per category; other axes use
// [chart.Axis.Ticks] labelled by format, which may be nil.
func AxisTicks(c *chart.Chart, a *chart.Axis, format func(float64) string) []Tick {
	sc := c.Scaler(a)
	var ticks []Tick
	if a.Orientation == scale.X && len(a.Labels) > 0 {
		b := a.VisibleBounds()
		for i := int(math.Ceil(b.Min)); float64(i) <= b.Max; i++ {
			ticks = append(ticks, Tick{Value: float64(i), Pixel: sc.ToPixel(float64(i)), Label: a.Label(i)})
		}
		return ticks
	}
	for _, v := range a.Ticks(c.ControlSize) {
		t := Tick{Value: v, Pixel: sc.ToPixel(v)}
		if format != nil {
			t.Label = format(v)
		}
		ticks = append(ticks, t)
	}
	return ticks
}

// stateAt reports the lifecycle state as it would be at time at.
func stateAt(g drawing.Geometry, at time.Duration) string {
	st := g.State()
	if st == drawing.Animating && g.At(at) == g.Target() {
		return drawing.Settled.String()
	}
	return st.String()
}
