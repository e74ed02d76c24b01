package drawing

import (
	"time"

	"github.com/google/uuid"
)

// PaintKind selects how a paint applies to its geometries.
type PaintKind int

const (
	Fill PaintKind = iota
	Stroke
)

func (k PaintKind) String() string {
	if k == Stroke {
		return "stroke"
	}
	return "fill"
}

// Style is the backend-facing description of a paint.
type Style struct {
	Kind        PaintKind
	Color       string
	StrokeWidth float64
	Opacity     float64
}

// Paint is a fill or stroke task applied to a set of geometries.
// Geometries are kept in insertion order; adding one twice is a no-op.
type Paint struct {
	ID          uuid.UUID
	Kind        PaintKind
	Color       string
	StrokeWidth float64
	Opacity     float64
	ZIndex      int

	index map[Geometry]int
	geoms []Geometry
}

// NewSolidFill creates a fill paint of the given color.
func NewSolidFill(color string) *Paint {
	return &Paint{ID: uuid.New(), Kind: Fill, Color: color, Opacity: 1}
}

// NewStroke creates a stroke paint of the given color and width.
func NewStroke(color string, width float64) *Paint {
	return &Paint{ID: uuid.New(), Kind: Stroke, Color: color, StrokeWidth: width, Opacity: 1}
}

// Style returns the paint's style description.
func (p *Paint) Style() Style {
	return Style{Kind: p.Kind, Color: p.Color, StrokeWidth: p.StrokeWidth, Opacity: p.Opacity}
}

// AddGeometry attaches g to the paint.
func (p *Paint) AddGeometry(g Geometry) {
	if p.index == nil {
		p.index = make(map[Geometry]int)
	}
	if _, ok := p.index[g]; ok {
		return
	}
	p.index[g] = len(p.geoms)
	p.geoms = append(p.geoms, g)
}

// RemoveGeometry detaches g from the paint.
func (p *Paint) RemoveGeometry(g Geometry) {
	i, ok := p.index[g]
	if !ok {
		return
	}
	delete(p.index, g)
	p.geoms = append(p.geoms[:i], p.geoms[i+1:]...)
	for j := i; j < len(p.geoms); j++ {
		p.index[p.geoms[j]] = j
	}
}

// HasGeometry reports whether g is attached.
func (p *Paint) HasGeometry(g Geometry) bool {
	_, ok := p.index[g]
	return ok
}

// Geometries returns the attached geometries in insertion order.
// The returned slice must not be modified.
func (p *Paint) Geometries() []Geometry { return p.geoms }

// Draw renders every attached geometry at time t.
func (p *Paint) Draw(ctx Context, t time.Duration) {
	for _, g := range p.geoms {
		g.Draw(ctx, p, t)
	}
}
