package pipeline

import (
	"context"
	"encoding/json"
	"time"

	"github.com/charmbracelet/log"

	"github.com/pchuan98/livecharts/pkg/cache"
	"github.com/pchuan98/livecharts/pkg/observability"
	"github.com/pchuan98/livecharts/pkg/render"
	"github.com/pchuan98/livecharts/pkg/source"
)

// Runner encapsulates pipeline execution with caching.
// Both CLI and API use it to avoid duplicating caching logic.
//
// The Runner is stateless except for the cache and logger. Multiple
// goroutines can safely use the same Runner with different options.
type Runner struct {
	Cache  cache.Cache
	Keyer  cache.Keyer
	Logger *log.Logger
}

// NewRunner creates a runner with the given cache and keyer.
// If keyer is nil, a DefaultKeyer is used.
// If cache is nil, a NullCache is used (caching disabled).
func NewRunner(c cache.Cache, keyer cache.Keyer, logger *log.Logger) *Runner {
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{
		Cache:  c,
		Keyer:  keyer,
		Logger: logger,
	}
}

// Execute runs the complete load → measure → render pipeline with caching.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	r.applyLogger(&opts)
	opts.SetDefaults()
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	at := opts.SampleAt()

	// Stage 1: Load
	name := sourceName(opts)
	observability.Pipeline().OnLoadStart(ctx, name)
	loadStart := time.Now()
	d, hash, err := Load(opts)
	result := &Result{Definition: d, DefinitionHash: hash}
	result.Stats.LoadTime = time.Since(loadStart)
	if err != nil {
		observability.Pipeline().OnLoadComplete(ctx, name, 0, result.Stats.LoadTime, err)
		return nil, err
	}
	result.Stats.SeriesCount = len(d.Series)
	observability.Pipeline().OnLoadComplete(ctx, name, len(d.Series), result.Stats.LoadTime, nil)

	r.Logger.Info("loaded definition",
		"source", name,
		"series", len(d.Series),
		"duration", result.Stats.LoadTime)

	// All artifacts and the layout cached: nothing to measure.
	if !opts.Refresh {
		layout, layoutHit := r.cachedLayout(ctx, d, hash, opts)
		artifacts, renderHit := r.cachedArtifacts(ctx, d, hash, opts)
		if layoutHit && renderHit {
			result.Layout = layout
			result.Artifacts = artifacts
			result.CacheInfo = CacheInfo{LayoutHit: true, RenderHit: true}
			r.Logger.Debug("served from cache", "hash", cache.ShortHash(hash))
			return result, nil
		}
	}

	// Stage 2: Measure
	measureStart := time.Now()
	m, err := Measure(ctx, d, at, opts.Logger)
	if err != nil {
		return nil, err
	}
	result.Layout = m.Snapshot(at)
	result.Stats.MeasureTime = time.Since(measureStart)
	result.Stats.PointCount = m.PointCount()
	if data, err := json.Marshal(result.Layout); err == nil {
		_ = r.Cache.Set(ctx, r.Keyer.LayoutKey(hash, opts.LayoutKeyOpts(d)), data, cache.TTLLayout)
	}

	r.Logger.Info("measured chart",
		"points", result.Stats.PointCount,
		"frames", len(d.Frames),
		"duration", result.Stats.MeasureTime)

	// Stage 3: Render
	observability.Pipeline().OnRenderStart(ctx, opts.Formats)
	renderStart := time.Now()
	artifacts, err := Render(ctx, m, d, result.Layout, opts.Formats, at, opts.PNGScale)
	result.Stats.RenderTime = time.Since(renderStart)
	observability.Pipeline().OnRenderComplete(ctx, opts.Formats, result.Stats.RenderTime, err)
	if err != nil {
		return nil, err
	}
	result.Artifacts = artifacts
	for format, data := range artifacts {
		_ = r.Cache.Set(ctx, r.Keyer.ArtifactKey(hash, opts.ArtifactKeyOpts(d, format)), data, cache.TTLArtifact)
	}

	r.Logger.Info("rendered outputs",
		"formats", opts.Formats,
		"duration", result.Stats.RenderTime)

	return result, nil
}

// MeasureLayout loads and measures without rendering. The layout is served
// from the cache when possible.
func (r *Runner) MeasureLayout(ctx context.Context, opts Options) (*Result, error) {
	opts.Formats = nil
	r.applyLogger(&opts)
	opts.SetDefaults()
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	d, hash, err := Load(opts)
	if err != nil {
		return nil, err
	}
	result := &Result{Definition: d, DefinitionHash: hash, Stats: Stats{SeriesCount: len(d.Series)}}

	if !opts.Refresh {
		if layout, hit := r.cachedLayout(ctx, d, hash, opts); hit {
			result.Layout = layout
			result.CacheInfo.LayoutHit = true
			return result, nil
		}
	}

	start := time.Now()
	at := opts.SampleAt()
	m, err := Measure(ctx, d, at, opts.Logger)
	if err != nil {
		return nil, err
	}
	result.Layout = m.Snapshot(at)
	result.Stats.MeasureTime = time.Since(start)
	result.Stats.PointCount = m.PointCount()
	if data, err := json.Marshal(result.Layout); err == nil {
		_ = r.Cache.Set(ctx, r.Keyer.LayoutKey(hash, opts.LayoutKeyOpts(d)), data, cache.TTLLayout)
	}
	return result, nil
}

func (r *Runner) cachedLayout(ctx context.Context, d *source.Definition, hash string, opts Options) (render.Layout, bool) {
	var l render.Layout
	data, hit, err := r.Cache.Get(ctx, r.Keyer.LayoutKey(hash, opts.LayoutKeyOpts(d)))
	if err != nil || !hit {
		return l, false
	}
	if err := json.Unmarshal(data, &l); err != nil {
		return l, false
	}
	return l, true
}

// cachedArtifacts reports a hit only when every requested format is cached.
func (r *Runner) cachedArtifacts(ctx context.Context, d *source.Definition, hash string, opts Options) (map[string][]byte, bool) {
	artifacts := make(map[string][]byte, len(opts.Formats))
	for _, format := range opts.Formats {
		data, hit, err := r.Cache.Get(ctx, r.Keyer.ArtifactKey(hash, opts.ArtifactKeyOpts(d, format)))
		if err != nil || !hit {
			return nil, false
		}
		artifacts[format] = data
	}
	return artifacts, true
}

// Close releases resources held by the runner (primarily the cache).
func (r *Runner) Close() error {
	if r.Cache != nil {
		return r.Cache.Close()
	}
	return nil
}

// applyLogger sets the runner's logger on options if not already set.
func (r *Runner) applyLogger(opts *Options) {
	if opts.Logger == nil {
		opts.Logger = r.Logger
	}
}
