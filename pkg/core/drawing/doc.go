// Package drawing defines the drawable geometry that chart series lay out and
// the paint tasks and canvas that draw it.
//
// # Geometry
//
// [Geometry] is the capability set a series needs from a visual: settable
// X, Y, Width and Height, per-property transitions, and the ability to draw
// itself through a backend [Context]. Two variants are provided:
//
//   - [Rectangle]: a plain axis-aligned rectangle
//   - [RoundedRectangle]: a rectangle with rounded corners
//
// Property setters record a target; reads sample the animated value at the
// geometry's clock time. Once bound to a data point a geometry is mutated in
// place for the rest of its life, which is what lets an in-flight transition
// bend toward a new target instead of restarting.
//
// # Paint tasks
//
// A [Paint] is a fill or stroke operation applied to a set of geometries in
// one render pass. Paints are identified by a UUID; a [Canvas] keeps them in
// a set keyed by that identity so registering the same paint repeatedly is a
// no-op.
//
// # Backends
//
// Rendering backends implement [Context]. The SVG and terminal sinks live in
// the render/sink package.
package drawing
