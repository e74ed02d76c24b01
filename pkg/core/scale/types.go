// Package scale maps data coordinates to pixel coordinates.
//
// A [Scaler] is built once per axis per measure pass from the draw-margin
// rectangle, the axis orientation and the axis bounds. It is immutable and
// performs a single affine transform.
//
// Pixel coordinates follow the screen convention: the origin is the top-left
// corner, x grows to the right and y grows downward. The Y orientation
// therefore maps larger data values to smaller pixel values.
package scale

import "math"

// Orientation selects which direction an axis runs in.
type Orientation int

const (
	X Orientation = iota
	Y
)

func (o Orientation) String() string {
	if o == Y {
		return "y"
	}
	return "x"
}

// Point is a pixel location.
type Point struct {
	X, Y float64
}

// Size is a pixel extent.
type Size struct {
	Width, Height float64
}

// Margin is padding around the draw area.
type Margin struct {
	Left, Top, Right, Bottom float64
}

// Bounds is a closed data interval on one axis.
type Bounds struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// EmptyBounds returns bounds that contain nothing; appending a value
// makes them the degenerate interval [v, v].
func EmptyBounds() Bounds {
	return Bounds{Min: math.Inf(1), Max: math.Inf(-1)}
}

// IsEmpty reports whether no value has been appended.
func (b Bounds) IsEmpty() bool { return b.Min > b.Max }

// Range returns Max - Min, or 0 for empty bounds.
func (b Bounds) Range() float64 {
	if b.IsEmpty() {
		return 0
	}
	return b.Max - b.Min
}

// Append extends b to include v.
func (b *Bounds) Append(v float64) {
	if v < b.Min {
		b.Min = v
	}
	if v > b.Max {
		b.Max = v
	}
}

// Union extends b to include o.
func (b *Bounds) Union(o Bounds) {
	if o.IsEmpty() {
		return
	}
	b.Append(o.Min)
	b.Append(o.Max)
}

// Pad returns b widened by d on each side.
func (b Bounds) Pad(d float64) Bounds {
	return Bounds{Min: b.Min - d, Max: b.Max + d}
}

// CartesianBounds pairs the bounds of both axes.
type CartesianBounds struct {
	XAxisBounds Bounds `json:"x"`
	YAxisBounds Bounds `json:"y"`
}

// EmptyCartesianBounds returns empty bounds for both axes.
func EmptyCartesianBounds() CartesianBounds {
	return CartesianBounds{XAxisBounds: EmptyBounds(), YAxisBounds: EmptyBounds()}
}
