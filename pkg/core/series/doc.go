// Package series implements concrete chart series.
//
// [ColumnSeries] plots one vertical bar per data point. Bars grow from a
// pivot value (zero by default) to the point value, share the width of a
// category with the other column series on the same category axis, and are
// capped at a maximum pixel width.
//
// # Layout
//
// For every pass the unit width uw is the pixel distance between two
// adjacent category values. With n sibling columns the width is divided by
// n and each series is shifted by
//
//	cp = (position - n/2) * uw + uw/2
//
// so the n bars tile the category from left to right. The width is clamped
// to MaxColumnWidth after cp is computed, which keeps narrow bars centered on
// the slots the unclamped layout gave them.
//
// # Transitions
//
// A new bar is created flat on the pivot line and handed to the transitions
// setter before its final rectangle is assigned, so the first assignment is
// observed as an animated move out of the pivot. [DefaultTransitions] eases
// X and Width with the chart animation and drops Y and Height in with a
// bounce at 1.5x the chart duration.
package series
