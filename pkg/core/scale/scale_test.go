package scale

import (
	"math"
	"testing"
)

func TestScalerX(t *testing.T) {
	s := New(Point{X: 50, Y: 10}, Size{Width: 500, Height: 300}, X, Bounds{Min: -0.5, Max: 4.5})

	tests := []struct {
		name  string
		value float64
		want  float64
	}{
		{"min", -0.5, 50},
		{"max", 4.5, 550},
		{"zero", 0, 100},
		{"one", 1, 200},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := s.ToPixel(tt.value); math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("ToPixel(%v) = %v, want %v", tt.value, got, tt.want)
			}
		})
	}
	if uw := s.UnitWidth(); math.Abs(uw-100) > 1e-9 {
		t.Errorf("UnitWidth = %v, want 100", uw)
	}
}

func TestScalerYIsInverted(t *testing.T) {
	s := New(Point{X: 0, Y: 0}, Size{Width: 100, Height: 400}, Y, Bounds{Min: -10, Max: 10})

	if got := s.ToPixel(10); got != 0 {
		t.Errorf("ToPixel(max) = %v, want 0 (top)", got)
	}
	if got := s.ToPixel(-10); got != 400 {
		t.Errorf("ToPixel(min) = %v, want 400 (bottom)", got)
	}
	if s.ToPixel(5) >= s.ToPixel(0) {
		t.Error("larger values should map to smaller pixel coordinates")
	}
}

func TestScalerRoundTrip(t *testing.T) {
	for _, o := range []Orientation{X, Y} {
		s := New(Point{X: 20, Y: 30}, Size{Width: 640, Height: 480}, o, Bounds{Min: 3, Max: 17})
		for _, v := range []float64{3, 5.5, 10, 17} {
			if got := s.ToValue(s.ToPixel(v)); math.Abs(got-v) > 1e-9 {
				t.Errorf("%v: ToValue(ToPixel(%v)) = %v", o, v, got)
			}
		}
	}
}

func TestScalerZeroRange(t *testing.T) {
	s := New(Point{}, Size{Width: 100, Height: 100}, X, Bounds{Min: 2, Max: 2})
	if got := s.ToPixel(2); got != 0 {
		t.Errorf("ToPixel = %v, want 0", got)
	}
	if got := s.ToValue(50); got != 2 {
		t.Errorf("ToValue = %v, want 2", got)
	}
}

func TestBounds(t *testing.T) {
	b := EmptyBounds()
	if !b.IsEmpty() || b.Range() != 0 {
		t.Fatal("EmptyBounds should be empty with zero range")
	}
	b.Append(3)
	b.Append(-1)
	b.Union(Bounds{Min: 0, Max: 8})
	b.Union(EmptyBounds())
	if b.Min != -1 || b.Max != 8 {
		t.Errorf("bounds = %+v, want {-1 8}", b)
	}
	if p := b.Pad(0.5); p.Min != -1.5 || p.Max != 8.5 {
		t.Errorf("Pad = %+v", p)
	}
}
