// Package sink provides output format renderers for measured charts.
//
// # Overview
//
// A "sink" samples a chart at one instant and writes it in a final format:
//
//   - SVG: gridlines, axis labels and every paint task on the canvas
//   - JSON: the [render.Layout] of every point, for tooling and the API
//   - PDF: print-ready output (requires rsvg-convert)
//   - PNG: raster image output (requires rsvg-convert)
//   - Grid: a coloured character raster for terminals
//
// # SVG Output
//
// [RenderSVG] draws the chart's canvas through a [drawing.Context] that
// emits SVG elements, so paints are drawn in z-index order exactly as any
// other backend would draw them. Tick labels are formatted for a locale
// with golang.org/x/text:
//
//	svg := sink.RenderSVG(c, render.Settled,
//	    sink.WithTitle("Revenue"),
//	    sink.WithLocale(language.German),
//	)
//
// [render.Layout]: github.com/pchuan98/livecharts/pkg/render.Layout
// [drawing.Context]: github.com/pchuan98/livecharts/pkg/core/drawing.Context
package sink
