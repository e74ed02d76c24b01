package chart

import "github.com/pchuan98/livecharts/pkg/core/scale"

// Hit is a measured point under the pointer.
type Hit struct {
	Series Series
	Point  *DataPoint
}

// pointLister is implemented by series that keep their points, such as
// those built on SeriesBase.
type pointLister interface {
	Points() []*DataPoint
}

// HitTest returns the points whose hover area contains the pixel (px, py),
// in series registration order. Hover areas follow the targets of the last
// Update, not the animated geometry.
func (c *Chart) HitTest(px, py float64) []Hit {
	var hits []Hit
	for _, s := range c.Series {
		pl, ok := s.(pointLister)
		if !ok {
			continue
		}
		for _, p := range pl.Points() {
			if p.HoverArea != nil && p.HoverArea.Contains(px, py) {
				hits = append(hits, Hit{Series: s, Point: p})
			}
		}
	}
	return hits
}

// ValueAt maps the pixel (px, py) to data coordinates on the first X and
// Y axes.
func (c *Chart) ValueAt(px, py float64) scale.Point {
	return scale.Point{
		X: c.Scaler(c.XAxes[0]).ToValue(px),
		Y: c.Scaler(c.YAxes[0]).ToValue(py),
	}
}
