package pipeline

import (
	"cmp"
	"context"
	"slices"
	"time"

	"github.com/charmbracelet/log"

	"github.com/pchuan98/livecharts/pkg/core/animation"
	"github.com/pchuan98/livecharts/pkg/core/chart"
	"github.com/pchuan98/livecharts/pkg/core/series"
	"github.com/pchuan98/livecharts/pkg/render"
	"github.com/pchuan98/livecharts/pkg/source"
)

// Measured is a chart after its update passes, ready to be sampled.
type Measured struct {
	Chart   *chart.Chart
	Columns []*series.ColumnSeries
	Clock   *animation.ManualClock
}

// Measure builds the chart of d and replays it on a manual clock up to at:
// an initial update at t=0, then one update per frame whose time is not
// after at, in time order. Transitions started by a frame begin at the
// frame's time, so sampling between frames shows the retargeting move.
func Measure(ctx context.Context, d *source.Definition, at time.Duration, logger *log.Logger) (*Measured, error) {
	clock := &animation.ManualClock{}
	c, columns, err := d.Build(logger, chart.WithClock(clock))
	if err != nil {
		return nil, err
	}
	c.Update(ctx)

	frames := slices.Clone(d.Frames)
	slices.SortStableFunc(frames, func(a, b source.FrameValues) int {
		return cmp.Compare(a.At, b.At)
	})
	for _, f := range frames {
		if f.At.Std() > at {
			break
		}
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		clock.Set(f.At.Std())
		f.Apply(columns)
		c.Update(ctx)
	}
	if at != render.Settled {
		clock.Set(at)
	}
	return &Measured{Chart: c, Columns: columns, Clock: clock}, nil
}

// Snapshot samples m at at.
func (m *Measured) Snapshot(at time.Duration) render.Layout {
	return render.Snapshot(m.Chart, at)
}

// PointCount returns the number of points across all series.
func (m *Measured) PointCount() int {
	n := 0
	for _, s := range m.Columns {
		n += len(s.Points())
	}
	return n
}
