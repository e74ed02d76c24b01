package source

import (
	"encoding/json"
	"fmt"
	"math"
	"time"

	"github.com/pchuan98/livecharts/pkg/core/animation"
	"github.com/pchuan98/livecharts/pkg/errors"
)

// Default control size.
const (
	DefaultWidth  = 640
	DefaultHeight = 360
)

// SeriesKindColumn is the only series kind so far.
const SeriesKindColumn = "column"

// Palette colours series without an explicit fill, by series index.
var Palette = []string{
	"#1f77b4", "#ff7f0e", "#2ca02c", "#d62728", "#9467bd",
	"#8c564b", "#e377c2", "#7f7f7f", "#bcbd22", "#17becf",
}

// Definition is a declarative chart.
type Definition struct {
	Title     string        `toml:"title" yaml:"title" json:"title,omitempty"`
	Width     float64       `toml:"width" yaml:"width" json:"width,omitempty"`
	Height    float64       `toml:"height" yaml:"height" json:"height,omitempty"`
	Margin    *Margin       `toml:"margin" yaml:"margin" json:"margin,omitempty"`
	Animation AnimationDef  `toml:"animation" yaml:"animation" json:"animation"`
	XAxis     AxisDef       `toml:"x_axis" yaml:"x_axis" json:"x_axis"`
	YAxis     AxisDef       `toml:"y_axis" yaml:"y_axis" json:"y_axis"`
	Series    []SeriesDef   `toml:"series" yaml:"series" json:"series"`
	Locale    string        `toml:"locale" yaml:"locale" json:"locale,omitempty"`
	Frames    []FrameValues `toml:"frames" yaml:"frames" json:"frames,omitempty"`
}

// Margin is the padding around the plot area in pixels.
type Margin struct {
	Left   float64 `toml:"left" yaml:"left" json:"left"`
	Top    float64 `toml:"top" yaml:"top" json:"top"`
	Right  float64 `toml:"right" yaml:"right" json:"right"`
	Bottom float64 `toml:"bottom" yaml:"bottom" json:"bottom"`
}

// AnimationDef sets the chart's default transition.
type AnimationDef struct {
	Easing   string   `toml:"easing" yaml:"easing" json:"easing,omitempty"`
	Duration Duration `toml:"duration" yaml:"duration" json:"duration,omitempty"`
}

// AxisDef configures an axis.
type AxisDef struct {
	Name        string   `toml:"name" yaml:"name" json:"name,omitempty"`
	Labels      []string `toml:"labels" yaml:"labels" json:"labels,omitempty"`
	LabelsFrom  *DataRef `toml:"labels_from" yaml:"labels_from" json:"labels_from,omitempty"`
	Min         *float64 `toml:"min" yaml:"min" json:"min,omitempty"`
	Max         *float64 `toml:"max" yaml:"max" json:"max,omitempty"`
	MinStep     float64  `toml:"min_step" yaml:"min_step" json:"min_step,omitempty"`
	TickSpacing float64  `toml:"tick_spacing" yaml:"tick_spacing" json:"tick_spacing,omitempty"`
}

// SeriesDef configures one series.
type SeriesDef struct {
	Name                 string    `toml:"name" yaml:"name" json:"name"`
	Kind                 string    `toml:"kind" yaml:"kind" json:"kind,omitempty"`
	Values               []float64 `toml:"values" yaml:"values" json:"values,omitempty"`
	Data                 *DataRef  `toml:"data" yaml:"data" json:"data,omitempty"`
	Pivot                float64   `toml:"pivot" yaml:"pivot" json:"pivot,omitempty"`
	MaxColumnWidth       float64   `toml:"max_column_width" yaml:"max_column_width" json:"max_column_width,omitempty"`
	IgnoreColumnPosition bool      `toml:"ignore_column_position" yaml:"ignore_column_position" json:"ignore_column_position,omitempty"`
	Fill                 string    `toml:"fill" yaml:"fill" json:"fill,omitempty"`
	Stroke               string    `toml:"stroke" yaml:"stroke" json:"stroke,omitempty"`
	StrokeWidth          float64   `toml:"stroke_width" yaml:"stroke_width" json:"stroke_width,omitempty"`
	Radius               float64   `toml:"radius" yaml:"radius" json:"radius,omitempty"`
}

// DataRef points at a spreadsheet column.
type DataRef struct {
	File   string `toml:"file" yaml:"file" json:"file"`
	Sheet  string `toml:"sheet" yaml:"sheet" json:"sheet,omitempty"`
	Column string `toml:"column" yaml:"column" json:"column"`
	Header bool   `toml:"header" yaml:"header" json:"header,omitempty"`
}

// FrameValues replaces series values at a point in time. The animate
// command and time-sampled renders play frames in order to show
// retargeting transitions.
type FrameValues struct {
	At     Duration    `toml:"at" yaml:"at" json:"at"`
	Values [][]float64 `toml:"values" yaml:"values" json:"values"`
}

// SetDefaults fills zero fields with their defaults.
func (d *Definition) SetDefaults() {
	if d.Width <= 0 {
		d.Width = DefaultWidth
	}
	if d.Height <= 0 {
		d.Height = DefaultHeight
	}
	if d.Animation.Easing == "" {
		d.Animation.Easing = "cubic-out"
	}
	if d.Animation.Duration <= 0 {
		d.Animation.Duration = Duration(animation.DefaultSpeed)
	}
	for i := range d.Series {
		s := &d.Series[i]
		if s.Kind == "" {
			s.Kind = SeriesKindColumn
		}
		if s.Fill == "" {
			s.Fill = Palette[i%len(Palette)]
		}
		if s.Stroke != "" && s.StrokeWidth <= 0 {
			s.StrokeWidth = 1
		}
	}
}

// Validate checks that d can be built. Data references must have been
// resolved.
func (d *Definition) Validate() error {
	if len(d.Series) == 0 {
		return errors.New(errors.ErrCodeInvalidDefinition, "chart has no series")
	}
	if _, ok := animation.EasingByName(d.Animation.Easing); !ok {
		return errors.New(errors.ErrCodeInvalidEasing, "unknown easing %q", d.Animation.Easing)
	}
	if err := d.validateFinite(); err != nil {
		return err
	}
	for i, s := range d.Series {
		if s.Kind != SeriesKindColumn {
			return errors.New(errors.ErrCodeInvalidSeriesKind, "series %d: unknown kind %q", i, s.Kind)
		}
		if s.Data != nil {
			return errors.New(errors.ErrCodeInvalidDefinition, "series %d: data reference not resolved", i)
		}
		for _, c := range []string{s.Fill, s.Stroke} {
			if err := errors.ValidateColor(c); err != nil {
				return err
			}
		}
	}
	for i, f := range d.Frames {
		if len(f.Values) > len(d.Series) {
			return errors.New(errors.ErrCodeInvalidDefinition, "frame %d: %d value lists for %d series", i, len(f.Values), len(d.Series))
		}
	}
	return nil
}

// validateFinite rejects NaN and infinite numbers, which TOML and YAML
// can spell but the layout engine cannot place.
func (d *Definition) validateFinite() error {
	if err := finite("width", d.Width); err != nil {
		return err
	}
	if err := finite("height", d.Height); err != nil {
		return err
	}
	if m := d.Margin; m != nil {
		if err := finite("margin", m.Left, m.Top, m.Right, m.Bottom); err != nil {
			return err
		}
	}
	if err := d.XAxis.validateFinite("x_axis"); err != nil {
		return err
	}
	if err := d.YAxis.validateFinite("y_axis"); err != nil {
		return err
	}
	for i, s := range d.Series {
		name := fmt.Sprintf("series %d", i)
		if err := finite(name+": values", s.Values...); err != nil {
			return err
		}
		if err := finite(name+": pivot", s.Pivot); err != nil {
			return err
		}
		if err := finite(name+": max_column_width", s.MaxColumnWidth); err != nil {
			return err
		}
		if err := finite(name+": stroke_width", s.StrokeWidth, s.Radius); err != nil {
			return err
		}
	}
	for i, f := range d.Frames {
		for j, vs := range f.Values {
			if err := finite(fmt.Sprintf("frame %d: series %d", i, j), vs...); err != nil {
				return err
			}
		}
	}
	return nil
}

func (a AxisDef) validateFinite(name string) error {
	for _, p := range []*float64{a.Min, a.Max} {
		if p == nil {
			continue
		}
		if err := finite(name+": limit", *p); err != nil {
			return err
		}
	}
	return finite(name+": step", a.MinStep, a.TickSpacing)
}

func finite(name string, vs ...float64) error {
	for _, v := range vs {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return errors.New(errors.ErrCodeInvalidDefinition, "%s: %v is not a finite number", name, v)
		}
	}
	return nil
}

// Speed returns the animation duration.
func (d *Definition) Speed() time.Duration { return d.Animation.Duration.Std() }

// Canonical returns a stable JSON encoding of d, used for cache keys.
func (d *Definition) Canonical() ([]byte, error) {
	return json.Marshal(d)
}
