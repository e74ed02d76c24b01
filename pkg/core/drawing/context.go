package drawing

// Context is a rendering backend.
type Context interface {
	// DrawRect draws r with corner radius and style s.
	DrawRect(r Rect, radius float64, s Style)
}

// Recorder is a Context that records draw calls. It is useful for tests and
// for backends that post-process a frame.
type Recorder struct {
	Calls []DrawCall
}

// DrawCall is one recorded DrawRect invocation.
type DrawCall struct {
	Rect   Rect
	Radius float64
	Style  Style
}

// DrawRect records the call.
func (r *Recorder) DrawRect(rect Rect, radius float64, s Style) {
	r.Calls = append(r.Calls, DrawCall{Rect: rect, Radius: radius, Style: s})
}
