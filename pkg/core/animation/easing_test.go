package animation

import (
	"math"
	"testing"
)

func TestEasingEndpoints(t *testing.T) {
	for _, name := range EasingNames() {
		t.Run(name, func(t *testing.T) {
			fn, ok := EasingByName(name)
			if !ok {
				t.Fatalf("EasingByName(%q) not found", name)
			}
			if got := fn(0); math.Abs(got) > 1e-9 {
				t.Errorf("%s(0) = %v, want 0", name, got)
			}
			if got := fn(1); math.Abs(got-1) > 1e-9 {
				t.Errorf("%s(1) = %v, want 1", name, got)
			}
		})
	}
}

func TestEasingByNameCaseInsensitive(t *testing.T) {
	if _, ok := EasingByName("  Bounce-Out "); !ok {
		t.Error("EasingByName should ignore case and surrounding space")
	}
	if _, ok := EasingByName("wobble"); ok {
		t.Error("EasingByName(wobble) should not be found")
	}
}

func TestBounceOutStaysInRange(t *testing.T) {
	for i := 0; i <= 100; i++ {
		p := float64(i) / 100
		if v := BounceOut(p); v < 0 || v > 1+1e-9 {
			t.Errorf("BounceOut(%v) = %v, outside [0,1]", p, v)
		}
	}

	// The first drop lands on the target, the first rebound peaks below it.
	if v := BounceOut(1 / 2.75); math.Abs(v-1) > 1e-9 {
		t.Errorf("BounceOut(1/2.75) = %v, want 1", v)
	}
	if v := BounceOut(1.5 / 2.75); math.Abs(v-0.75) > 1e-9 {
		t.Errorf("BounceOut(1.5/2.75) = %v, want 0.75", v)
	}
}
