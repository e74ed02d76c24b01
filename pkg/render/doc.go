// Package render turns a measured chart into output.
//
// # Overview
//
// A chart is rendered at a point in time. Geometries are sampled with
// [drawing.Geometry.At], which is a pure function of time, so several
// formats can be produced concurrently from the same update pass.
//
//   - [Snapshot] captures the geometry of every point as a [Layout]
//   - the [sink] subpackage writes SVG, JSON, PNG, PDF and terminal frames
//   - [ToPDF] and [ToPNG] convert SVG with the external rsvg-convert tool
//
// Use [Settled] as the time to sample geometry after every transition
// has finished.
//
//	c.Update(ctx)
//	l := render.Snapshot(c, render.Settled)
//	svg := sink.RenderSVG(c, render.Settled)
//	png, err := render.ToPNG(svg, 2.0)
//
// [sink]: github.com/pchuan98/livecharts/pkg/render/sink
package render
