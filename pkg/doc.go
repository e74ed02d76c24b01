// Package pkg provides the core libraries for livecharts.
//
// # Overview
//
// livecharts lays out animated column charts. Every column is a rectangle
// whose position and size move from their current value to a new target
// whenever the data changes, so a chart can be sampled at any instant of a
// transition. The pkg directory is organized into these areas:
//
//  1. [core] - Domain logic (scales, motion, drawing, chart, series)
//  2. [source] - Declarative chart definitions in TOML, YAML or JSON
//  3. [pipeline] - Orchestration (load → measure → render)
//  4. [render] - Layout snapshots and output sinks
//  5. [cache] - Layout and artifact caching (file, Redis, MongoDB)
//
// # Architecture
//
//	chart definition (TOML/YAML/JSON, optional xlsx columns)
//	         ↓
//	    [source] package (decode, resolve, validate, build)
//	         ↓
//	    [core/chart] update pass (bounds → axes → series measure)
//	         ↓
//	    [render] Snapshot and [render/sink] at a point in time
//	         ↓
//	    SVG/PDF/PNG/JSON output
//
// # Quick Start
//
// Build a chart by hand and render it after every transition has settled:
//
//	c := chart.New(scale.Size{Width: 640, Height: 360})
//	c.AddSeries(series.NewColumnSeries([]float64{3, 5, 2}))
//	c.Update(ctx)
//	svg := sink.RenderSVG(c, render.Settled)
//
// Or run the whole pipeline over a definition file:
//
//	runner := pipeline.NewRunner(cache.NewNullCache(), nil, logger)
//	result, err := runner.Execute(ctx, pipeline.Options{
//	    Path:    "revenue.toml",
//	    Formats: []string{pipeline.FormatSVG, pipeline.FormatJSON},
//	})
//
// # Main Packages
//
// [core/animation] - Easing curves, transitions and the clocks that drive
// them. A motion's value is a pure function of time.
//
// [core/scale] - Axis bounds, draw margins and the data-to-pixel mapping.
//
// [core/drawing] - Animatable geometries, paints and the canvas that owns
// them between update passes.
//
// [core/chart] - The cartesian chart, its axes and the update pass.
//
// [core/series] - Column series measurement.
//
// [errors] - Coded errors shared by the CLI and the HTTP API.
//
// [observability] - Hooks for pipeline, HTTP and cache events.
//
// [core]: https://pkg.go.dev/github.com/pchuan98/livecharts/pkg/core
// [core/animation]: https://pkg.go.dev/github.com/pchuan98/livecharts/pkg/core/animation
// [core/scale]: https://pkg.go.dev/github.com/pchuan98/livecharts/pkg/core/scale
// [core/drawing]: https://pkg.go.dev/github.com/pchuan98/livecharts/pkg/core/drawing
// [core/chart]: https://pkg.go.dev/github.com/pchuan98/livecharts/pkg/core/chart
// [core/series]: https://pkg.go.dev/github.com/pchuan98/livecharts/pkg/core/series
// [source]: https://pkg.go.dev/github.com/pchuan98/livecharts/pkg/source
// [pipeline]: https://pkg.go.dev/github.com/pchuan98/livecharts/pkg/pipeline
// [render]: https://pkg.go.dev/github.com/pchuan98/livecharts/pkg/render
// [render/sink]: https://pkg.go.dev/github.com/pchuan98/livecharts/pkg/render/sink
// [cache]: https://pkg.go.dev/github.com/pchuan98/livecharts/pkg/cache
// [errors]: https://pkg.go.dev/github.com/pchuan98/livecharts/pkg/errors
// [observability]: https://pkg.go.dev/github.com/pchuan98/livecharts/pkg/observability
package pkg
