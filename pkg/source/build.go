package source

import (
	"github.com/charmbracelet/log"

	"github.com/pchuan98/livecharts/pkg/core/animation"
	"github.com/pchuan98/livecharts/pkg/core/chart"
	"github.com/pchuan98/livecharts/pkg/core/drawing"
	"github.com/pchuan98/livecharts/pkg/core/scale"
	"github.com/pchuan98/livecharts/pkg/core/series"
	"github.com/pchuan98/livecharts/pkg/errors"
)

// Build creates a chart from d. The chart is not updated yet. opts are
// applied after the definition's own settings, so a caller can override
// the clock or logger.
func (d *Definition) Build(logger *log.Logger, opts ...chart.Option) (*chart.Chart, []*series.ColumnSeries, error) {
	if err := d.Validate(); err != nil {
		return nil, nil, err
	}
	easing, _ := animation.EasingByName(d.Animation.Easing)

	base := []chart.Option{
		chart.WithAnimation(easing, d.Speed()),
		chart.WithAxes([]*chart.Axis{d.XAxis.axis(scale.X)}, []*chart.Axis{d.YAxis.axis(scale.Y)}),
	}
	if d.Margin != nil {
		base = append(base, chart.WithDrawMargin(scale.Margin{
			Left: d.Margin.Left, Top: d.Margin.Top, Right: d.Margin.Right, Bottom: d.Margin.Bottom,
		}))
	}
	if logger != nil {
		base = append(base, chart.WithLogger(logger))
	}

	c := chart.New(scale.Size{Width: d.Width, Height: d.Height}, append(base, opts...)...)

	columns := make([]*series.ColumnSeries, 0, len(d.Series))
	for _, sd := range d.Series {
		s, err := sd.build()
		if err != nil {
			return nil, nil, err
		}
		columns = append(columns, s)
		c.AddSeries(s)
	}
	return c, columns, nil
}

func (a AxisDef) axis(o scale.Orientation) *chart.Axis {
	ax := chart.NewAxis(o)
	ax.Name = a.Name
	ax.Labels = a.Labels
	ax.MinLimit, ax.MaxLimit = a.Min, a.Max
	ax.MinStep = a.MinStep
	if a.TickSpacing > 0 {
		ax.TickSpacing = a.TickSpacing
	}
	return ax
}

func (sd SeriesDef) build() (*series.ColumnSeries, error) {
	if sd.Kind != SeriesKindColumn {
		return nil, errors.New(errors.ErrCodeInvalidSeriesKind, "unknown series kind %q", sd.Kind)
	}
	s := series.NewColumnSeries(sd.Values)
	s.Title = sd.Name
	s.Pivot = sd.Pivot
	s.IgnoresColumnPosition = sd.IgnoreColumnPosition
	if sd.MaxColumnWidth > 0 {
		s.MaxColumnWidth = sd.MaxColumnWidth
	}
	if sd.Radius > 0 {
		s.Visual = drawing.RoundedFactory(sd.Radius)
	}
	if sd.Fill != "" {
		s.Fill = drawing.NewSolidFill(sd.Fill)
	}
	if sd.Stroke != "" {
		s.Stroke = drawing.NewStroke(sd.Stroke, sd.StrokeWidth)
		s.Stroke.ZIndex = 1
	}
	return s, nil
}

// Apply replaces the values of the series it has a list for. Lists beyond
// len(columns) are ignored.
func (f FrameValues) Apply(columns []*series.ColumnSeries) {
	for i, values := range f.Values {
		if i >= len(columns) || values == nil {
			continue
		}
		columns[i].SetValues(values)
	}
}
