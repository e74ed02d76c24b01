// Package animation provides the transition primitives used to animate chart
// geometry between layout passes.
//
// # Overview
//
// An [Animation] bundles an easing curve, a duration and a repeat count. A
// [Motion] is the per-property state record that an animation drives: it holds
// the value a property is moving from, the value it is moving to, and the
// moment the move started. Reading a motion is a pure function of a point in
// time, so any number of readers may sample it once a layout pass is done.
//
// # Retargeting
//
// Assigning a new target while a move is in flight does not restart it from
// its original start value. The motion first samples its current value and
// uses that as the new start, so the property bends smoothly toward the new
// target:
//
//	m := animation.NewMotion(0)
//	m.SetAnimation(animation.New(animation.CubicOut, 500*time.Millisecond, 1))
//	m.Set(100, 0)                    // 0 -> 100 starting at t=0
//	m.Set(40, 250*time.Millisecond)  // from wherever it is at t=250ms -> 40
//
// # Time
//
// Motions never read the wall clock themselves. Callers pass the current time
// as a [time.Duration] offset, usually obtained from a [Clock]. [ManualClock]
// is used by tests and frame-stepped renderers; [WallClock] by interactive
// views.
package animation
