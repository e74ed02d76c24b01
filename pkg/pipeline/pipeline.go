// Package pipeline provides the load → measure → render pipeline for
// livecharts.
//
// The CLI and the API server both go through a [Runner] so caching, frame
// playback and format handling behave the same everywhere.
//
// # Stages
//
//  1. Load: read a chart definition from a file or from request bytes
//  2. Measure: build the chart, run update passes on a manual clock while
//     playing the definition's frames, and snapshot the geometry at At
//  3. Render: produce SVG, JSON, PNG or PDF artifacts concurrently
//
// # Usage
//
//	runner := pipeline.NewRunner(c, nil, logger)
//	result, err := runner.Execute(ctx, pipeline.Options{
//	    Path:    "revenue.toml",
//	    Formats: []string{"svg"},
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	svg := result.Artifacts["svg"]
package pipeline

import (
	"io"
	"math"
	"time"

	"github.com/charmbracelet/log"

	"github.com/pchuan98/livecharts/pkg/cache"
	"github.com/pchuan98/livecharts/pkg/errors"
	"github.com/pchuan98/livecharts/pkg/render"
	"github.com/pchuan98/livecharts/pkg/source"
)

// Format constants for output formats.
const (
	FormatSVG  = "svg"
	FormatPNG  = "png"
	FormatPDF  = "pdf"
	FormatJSON = "json"
)

// DefaultPNGScale renders PNGs at 2x.
const DefaultPNGScale = 2.0

// Options configures one pipeline run.
type Options struct {
	// Path is a definition file. Spreadsheet references resolve relative
	// to its directory.
	Path string `json:"-"`
	// Definition holds raw definition bytes in DefinitionFormat. Used when
	// Path is empty; spreadsheet references are rejected.
	Definition       []byte        `json:"-"`
	DefinitionFormat source.Format `json:"-"`

	// At is the sampled animation time. Nil samples the settled chart.
	At *time.Duration `json:"at,omitempty"`

	// Width and Height override the definition's control size when set.
	Width  float64 `json:"width,omitempty"`
	Height float64 `json:"height,omitempty"`
	// Locale overrides the definition's tick label locale.
	Locale string `json:"locale,omitempty"`

	Formats  []string `json:"formats,omitempty"`
	PNGScale float64  `json:"png_scale,omitempty"`
	Refresh  bool     `json:"refresh,omitempty"`

	Logger *log.Logger `json:"-"`
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// Definition is the loaded definition with overrides applied.
	Definition *source.Definition

	// DefinitionHash is the content hash used in cache keys.
	DefinitionHash string

	// Layout is the sampled geometry.
	Layout render.Layout

	// Artifacts contains rendered outputs keyed by format.
	Artifacts map[string][]byte

	Stats     Stats
	CacheInfo CacheInfo
}

// Stats contains pipeline execution statistics.
type Stats struct {
	SeriesCount int
	PointCount  int
	LoadTime    time.Duration
	MeasureTime time.Duration
	RenderTime  time.Duration
}

// CacheInfo tracks cache hits for each pipeline stage.
type CacheInfo struct {
	LayoutHit bool // Whether the layout came from cache
	RenderHit bool // Whether all artifacts came from cache
}

// SetDefaults fills zero fields with their defaults.
func (o *Options) SetDefaults() {
	if len(o.Formats) == 0 {
		o.Formats = []string{FormatSVG}
	}
	if o.PNGScale <= 0 {
		o.PNGScale = DefaultPNGScale
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
}

// Validate checks the options after SetDefaults.
func (o *Options) Validate() error {
	if o.Path == "" && len(o.Definition) == 0 {
		return errors.New(errors.ErrCodeInvalidInput, "a definition path or definition bytes are required")
	}
	if o.Path == "" && o.DefinitionFormat == "" {
		return errors.New(errors.ErrCodeInvalidFormat, "definition format is required with definition bytes")
	}
	for _, f := range o.Formats {
		if err := errors.ValidateFormat(f); err != nil {
			return err
		}
	}
	if o.At != nil && *o.At < 0 {
		return errors.New(errors.ErrCodeInvalidInput, "sample time cannot be negative")
	}
	for _, v := range []float64{o.Width, o.Height, o.PNGScale} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return errors.New(errors.ErrCodeInvalidInput, "%v is not a finite size", v)
		}
	}
	if o.Width < 0 || o.Height < 0 {
		return errors.New(errors.ErrCodeInvalidInput, "size cannot be negative")
	}
	return nil
}

// SampleAt returns the sampled time, [render.Settled] when At is nil.
func (o *Options) SampleAt() time.Duration {
	if o.At == nil {
		return render.Settled
	}
	return *o.At
}

// LayoutKeyOpts returns cache key options for the measure stage.
func (o *Options) LayoutKeyOpts(d *source.Definition) cache.LayoutKeyOpts {
	return cache.LayoutKeyOpts{
		Width:  d.Width,
		Height: d.Height,
		At:     o.SampleAt(),
	}
}

// ArtifactKeyOpts returns cache key options for one rendered format.
func (o *Options) ArtifactKeyOpts(d *source.Definition, format string) cache.ArtifactKeyOpts {
	return cache.ArtifactKeyOpts{
		Format: format,
		Width:  d.Width,
		Height: d.Height,
		At:     o.SampleAt(),
		Locale: d.Locale,
		Scale:  scaleFor(format, o.PNGScale),
	}
}

func scaleFor(format string, scale float64) float64 {
	if format == FormatPNG {
		return scale
	}
	return 0
}
