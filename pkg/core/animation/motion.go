package animation

import "time"

// Motion is the animated state of a single float property.
//
// The zero value is a property resting at 0 with no animation attached.
type Motion struct {
	from, to  float64
	start     time.Duration
	anim      *Animation
	completed bool
}

// NewMotion returns a motion resting at v.
func NewMotion(v float64) Motion {
	return Motion{from: v, to: v, completed: true}
}

// SetAnimation attaches the animation used by subsequent calls to Set.
func (m *Motion) SetAnimation(a *Animation) { m.anim = a }

// Animation returns the attached animation, or nil.
func (m *Motion) Animation() *Animation { return m.anim }

// Complete marks the current move as finished, making the target the
// readable value immediately.
func (m *Motion) Complete() {
	m.from = m.to
	m.completed = true
}

// Set assigns a new target at time now. If an animation is attached the
// property moves from its value at now toward v; otherwise it jumps.
func (m *Motion) Set(v float64, now time.Duration) {
	if m.anim == nil {
		m.from, m.to, m.completed = v, v, true
		return
	}
	m.from = m.Value(now)
	m.to = v
	m.start = now
	m.completed = false
}

// Target returns the last assigned value.
func (m *Motion) Target() float64 { return m.to }

// Value returns the property value at time now. It does not modify m.
func (m *Motion) Value(now time.Duration) float64 {
	if m.completed || m.anim == nil {
		return m.to
	}
	p, done := m.anim.progress(now - m.start)
	if done {
		return m.to
	}
	return m.from + p*(m.to-m.from)
}

// Done reports whether the motion has reached its target at time now.
func (m *Motion) Done(now time.Duration) bool {
	if m.completed || m.anim == nil {
		return true
	}
	return now-m.start >= m.anim.Window()
}
