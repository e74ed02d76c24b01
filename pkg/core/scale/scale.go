package scale

// Scaler is an immutable data-to-pixel mapping for one axis.
type Scaler struct {
	minPx, maxPx   float64
	minVal, maxVal float64
	m              float64
	inverted       bool
}

// New builds a scaler for the draw area at origin with the given size.
// An X scaler maps [b.Min, b.Max] to [origin.X, origin.X+size.Width];
// a Y scaler maps it to [origin.Y+size.Height, origin.Y].
func New(origin Point, size Size, o Orientation, b Bounds) *Scaler {
	s := &Scaler{minVal: b.Min, maxVal: b.Max}
	if o == Y {
		s.minPx, s.maxPx = origin.Y, origin.Y+size.Height
		s.inverted = true
	} else {
		s.minPx, s.maxPx = origin.X, origin.X+size.Width
	}
	if dv := b.Max - b.Min; dv != 0 {
		s.m = (s.maxPx - s.minPx) / dv
	}
	return s
}

// ToPixel maps a data value to a pixel coordinate.
func (s *Scaler) ToPixel(v float64) float64 {
	d := (v - s.minVal) * s.m
	if s.inverted {
		return s.maxPx - d
	}
	return s.minPx + d
}

// ToValue maps a pixel coordinate back to a data value. It returns the
// lower bound when the scaler has a zero data range.
func (s *Scaler) ToValue(px float64) float64 {
	if s.m == 0 {
		return s.minVal
	}
	if s.inverted {
		return s.minVal + (s.maxPx-px)/s.m
	}
	return s.minVal + (px-s.minPx)/s.m
}

// UnitWidth returns the pixel distance between data values 0 and 1.
func (s *Scaler) UnitWidth() float64 {
	return s.ToPixel(1) - s.ToPixel(0)
}
