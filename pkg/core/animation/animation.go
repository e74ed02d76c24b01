package animation

import "time"

// DefaultSpeed is the default duration of a chart animation.
const DefaultSpeed = 800 * time.Millisecond

// Animation describes how a property moves toward a new target.
type Animation struct {
	Easing      EasingFunc
	Duration    time.Duration
	RepeatTimes int
}

// New creates an animation. A repeat count below 1 is treated as 1.
func New(easing EasingFunc, duration time.Duration, repeat int) *Animation {
	if repeat < 1 {
		repeat = 1
	}
	return &Animation{Easing: easing, Duration: duration, RepeatTimes: repeat}
}

// Window returns the total time the animation runs, including repeats.
func (a *Animation) Window() time.Duration {
	if a == nil {
		return 0
	}
	r := a.RepeatTimes
	if r < 1 {
		r = 1
	}
	return a.Duration * time.Duration(r)
}

// Scaled returns a copy of a with the duration multiplied by f and the
// easing replaced by easing. The repeat count is preserved.
func (a *Animation) Scaled(easing EasingFunc, f float64) *Animation {
	return New(easing, time.Duration(float64(a.Duration)*f), a.RepeatTimes)
}

// progress returns the eased progress of the animation at elapsed,
// and whether the animation window has fully elapsed.
func (a *Animation) progress(elapsed time.Duration) (float64, bool) {
	if a.Duration <= 0 || elapsed >= a.Window() {
		return 1, true
	}
	if elapsed <= 0 {
		return 0, false
	}
	p := float64(elapsed%a.Duration) / float64(a.Duration)
	ease := a.Easing
	if ease == nil {
		ease = Linear
	}
	return ease(p), false
}
