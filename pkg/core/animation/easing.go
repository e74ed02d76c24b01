package animation

import (
	"math"
	"sort"
	"strings"
)

// EasingFunc maps linear progress p in [0, 1] to eased progress.
// Implementations must return 0 for p=0 and 1 for p=1.
type EasingFunc func(p float64) float64

// Linear returns p unchanged.
func Linear(p float64) float64 { return p }

// QuadraticOut decelerates toward the end.
func QuadraticOut(p float64) float64 { return p * (2 - p) }

// CubicIn accelerates from zero velocity.
func CubicIn(p float64) float64 { return p * p * p }

// CubicOut decelerates to zero velocity.
func CubicOut(p float64) float64 {
	p--
	return p*p*p + 1
}

// CubicInOut accelerates until halfway, then decelerates.
func CubicInOut(p float64) float64 {
	if p < 0.5 {
		return 4 * p * p * p
	}
	p = 2*p - 2
	return 0.5*p*p*p + 1
}

// BounceOut reaches the target early, then rebounds below it with decaying
// bounces, like an object dropped onto a floor. It never exceeds 1.
func BounceOut(p float64) float64 {
	const n, d = 7.5625, 2.75
	switch {
	case p < 1/d:
		return n * p * p
	case p < 2/d:
		p -= 1.5 / d
		return n*p*p + 0.75
	case p < 2.5/d:
		p -= 2.25 / d
		return n*p*p + 0.9375
	default:
		p -= 2.625 / d
		return n*p*p + 0.984375
	}
}

// ElasticOut springs past the target and oscillates into place.
func ElasticOut(p float64) float64 {
	if p == 0 || p == 1 {
		return p
	}
	const c = (2 * math.Pi) / 3
	return math.Pow(2, -10*p)*math.Sin((p*10-0.75)*c) + 1
}

var easings = map[string]EasingFunc{
	"linear":        Linear,
	"quadratic-out": QuadraticOut,
	"cubic-in":      CubicIn,
	"cubic-out":     CubicOut,
	"cubic-in-out":  CubicInOut,
	"bounce-out":    BounceOut,
	"elastic-out":   ElasticOut,
}

// EasingByName looks up an easing function by its kebab-case name
// (e.g. "cubic-out"). Lookup is case-insensitive.
func EasingByName(name string) (EasingFunc, bool) {
	fn, ok := easings[strings.ToLower(strings.TrimSpace(name))]
	return fn, ok
}

// EasingNames returns the registered easing names in sorted order.
func EasingNames() []string {
	names := make([]string, 0, len(easings))
	for n := range easings {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}
