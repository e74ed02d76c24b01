package chart

import "github.com/pchuan98/livecharts/pkg/core/drawing"

// DataPoint is one plotted value. A point owns its Visual for the lifetime
// of the series once the visual is assigned.
type DataPoint struct {
	Index     int
	X, Y      float64
	Visual    drawing.Geometry
	HoverArea *HoverArea
}

// HoverArea is the pixel rectangle hit-testing associates with a point.
type HoverArea struct {
	X, Y          float64
	Width, Height float64
}

// SetDimensions replaces the area's rectangle.
func (h *HoverArea) SetDimensions(x, y, width, height float64) {
	h.X, h.Y, h.Width, h.Height = x, y, width, height
}

// Contains reports whether the pixel (px, py) lies inside the area.
func (h *HoverArea) Contains(px, py float64) bool {
	return px >= h.X && px <= h.X+h.Width && py >= h.Y && py <= h.Y+h.Height
}
