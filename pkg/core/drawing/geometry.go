package drawing

import (
	"time"

	"github.com/pchuan98/livecharts/pkg/core/animation"
)

// Property names an animatable geometry property.
type Property int

const (
	PropX Property = iota
	PropY
	PropWidth
	PropHeight
)

var propertyNames = [...]string{"X", "Y", "Width", "Height"}

func (p Property) String() string {
	if p < 0 || int(p) >= len(propertyNames) {
		return "Property(?)"
	}
	return propertyNames[p]
}

// State is the transition lifecycle of a geometry.
type State int

const (
	// Unbound geometries have no transitions attached.
	Unbound State = iota
	// Bound geometries have transitions attached but have not moved yet.
	Bound
	// Animating geometries have at least one property still in motion.
	Animating
	// Settled geometries have finished every move they were given.
	Settled
)

func (s State) String() string {
	switch s {
	case Unbound:
		return "unbound"
	case Bound:
		return "bound"
	case Animating:
		return "animating"
	case Settled:
		return "settled"
	}
	return "unknown"
}

// Rect is an axis-aligned rectangle in pixel coordinates.
type Rect struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// Right returns the x coordinate of the right edge.
func (r Rect) Right() float64 { return r.X + r.Width }

// Bottom returns the y coordinate of the bottom edge.
func (r Rect) Bottom() float64 { return r.Y + r.Height }

// Geometry is a sized, animatable shape.
type Geometry interface {
	SetX(v float64)
	SetY(v float64)
	SetWidth(v float64)
	SetHeight(v float64)

	// Current samples the geometry at its clock's current time.
	Current() Rect
	// At samples the geometry at time t.
	At(t time.Duration) Rect
	// Target returns the last assigned rectangle.
	Target() Rect

	SetPropertyTransition(a *animation.Animation, props ...Property)
	CompleteTransition(props ...Property)
	IsCompleted() bool
	State() State

	// Draw renders the geometry as it looks at time t using paint p.
	Draw(ctx Context, p *Paint, t time.Duration)
}

// Factory creates a geometry whose setters are stamped with clock.
type Factory func(clock animation.Clock) Geometry

// sized holds the animated state shared by the rectangle variants.
type sized struct {
	clock animation.Clock
	props [4]animation.Motion
	bound bool
	moved bool
}

func newSized(clock animation.Clock) sized {
	if clock == nil {
		clock = &animation.ManualClock{}
	}
	return sized{clock: clock}
}

func (g *sized) set(p Property, v float64) {
	m := &g.props[p]
	if m.Animation() != nil {
		g.moved = true
	}
	m.Set(v, g.clock.Now())
}

func (g *sized) SetX(v float64)      { g.set(PropX, v) }
func (g *sized) SetY(v float64)      { g.set(PropY, v) }
func (g *sized) SetWidth(v float64)  { g.set(PropWidth, v) }
func (g *sized) SetHeight(v float64) { g.set(PropHeight, v) }

func (g *sized) Current() Rect { return g.At(g.clock.Now()) }

func (g *sized) At(t time.Duration) Rect {
	return Rect{
		X:      g.props[PropX].Value(t),
		Y:      g.props[PropY].Value(t),
		Width:  g.props[PropWidth].Value(t),
		Height: g.props[PropHeight].Value(t),
	}
}

func (g *sized) Target() Rect {
	return Rect{
		X:      g.props[PropX].Target(),
		Y:      g.props[PropY].Target(),
		Width:  g.props[PropWidth].Target(),
		Height: g.props[PropHeight].Target(),
	}
}

func (g *sized) SetPropertyTransition(a *animation.Animation, props ...Property) {
	g.bound = true
	for _, p := range props {
		g.props[p].SetAnimation(a)
	}
}

func (g *sized) CompleteTransition(props ...Property) {
	for _, p := range props {
		g.props[p].Complete()
	}
}

func (g *sized) IsCompleted() bool {
	now := g.clock.Now()
	for i := range g.props {
		if !g.props[i].Done(now) {
			return false
		}
	}
	return true
}

func (g *sized) State() State {
	switch {
	case !g.bound:
		return Unbound
	case !g.IsCompleted():
		return Animating
	case g.moved:
		return Settled
	default:
		return Bound
	}
}

// Rectangle is a plain rectangle geometry.
type Rectangle struct {
	sized
}

// NewRectangle creates a rectangle at rest at the origin.
func NewRectangle(clock animation.Clock) *Rectangle {
	return &Rectangle{sized: newSized(clock)}
}

// NewRectangleGeometry is a [Factory] for rectangles.
func NewRectangleGeometry(clock animation.Clock) Geometry { return NewRectangle(clock) }

// Draw renders the rectangle.
func (r *Rectangle) Draw(ctx Context, p *Paint, t time.Duration) {
	ctx.DrawRect(r.At(t), 0, p.Style())
}

// RoundedRectangle is a rectangle with rounded corners. The radius is
// clamped to half of the shorter side when drawn.
type RoundedRectangle struct {
	sized
	Radius float64
}

// NewRoundedRectangle creates a rounded rectangle with the given corner radius.
func NewRoundedRectangle(clock animation.Clock, radius float64) *RoundedRectangle {
	return &RoundedRectangle{sized: newSized(clock), Radius: radius}
}

// RoundedFactory returns a [Factory] producing rounded rectangles of radius.
func RoundedFactory(radius float64) Factory {
	return func(clock animation.Clock) Geometry { return NewRoundedRectangle(clock, radius) }
}

// Draw renders the rounded rectangle.
func (r *RoundedRectangle) Draw(ctx Context, p *Paint, t time.Duration) {
	rect := r.At(t)
	radius := min(r.Radius, abs(rect.Width)/2, abs(rect.Height)/2)
	ctx.DrawRect(rect, max(radius, 0), p.Style())
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}

var (
	_ Geometry = (*Rectangle)(nil)
	_ Geometry = (*RoundedRectangle)(nil)
)
