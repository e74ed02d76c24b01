// Package source loads chart definitions.
//
// A [Definition] describes one chart: its size, axes, animation and a list
// of series. Definitions are read from TOML, YAML or JSON, chosen by file
// extension:
//
//	title = "Quarterly revenue"
//	width = 640
//	height = 360
//
//	[animation]
//	easing = "cubic-out"
//	duration = "800ms"
//
//	[[series]]
//	name = "2025"
//	values = [120, 80, -40, 210]
//	fill = "#1f77b4"
//
// Series values may instead come from a spreadsheet column:
//
//	[[series]]
//	name = "2026"
//	data = { file = "revenue.xlsx", sheet = "Q", column = "C", header = true }
//
// [Definition.Build] turns a loaded definition into a [chart.Chart].
//
// [chart.Chart]: github.com/pchuan98/livecharts/pkg/core/chart.Chart
package source
