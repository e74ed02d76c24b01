package chart

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/pchuan98/livecharts/pkg/core/scale"
)

func TestAxisTick(t *testing.T) {
	size := scale.Size{Width: 700, Height: 400}
	tests := []struct {
		name string
		axis *Axis
		b    scale.Bounds
		want float64
	}{
		{name: "y unit step", axis: NewAxis(scale.Y), b: scale.Bounds{Min: -2, Max: 7}, want: 1},
		{name: "y rounds to five", axis: NewAxis(scale.Y), b: scale.Bounds{Min: 0, Max: 40}, want: 5},
		{name: "y rounds to two", axis: NewAxis(scale.Y), b: scale.Bounds{Min: 0, Max: 15}, want: 2},
		{name: "x uses width", axis: NewAxis(scale.X), b: scale.Bounds{Min: 0, Max: 100}, want: 10},
		{name: "min step wins", axis: &Axis{Orientation: scale.Y, TickSpacing: 40, MinStep: 3}, b: scale.Bounds{Min: 0, Max: 10}, want: 3},
		{name: "flat range", axis: NewAxis(scale.Y), b: scale.Bounds{Min: 50, Max: 50}, want: 5},
		{name: "flat negative range", axis: NewAxis(scale.Y), b: scale.Bounds{Min: -30, Max: -30}, want: 5},
		{name: "flat range below one", axis: NewAxis(scale.Y), b: scale.Bounds{Min: 0.5, Max: 0.5}, want: 0.1},
		{name: "empty", axis: NewAxis(scale.Y), b: scale.EmptyBounds(), want: 0.1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.axis.Tick(size, tt.b)
			if !cmp.Equal(got, tt.want, cmpopts.EquateApprox(0, 1e-12)) {
				t.Errorf("Tick() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestAxisVisibleBounds(t *testing.T) {
	lo, hi := -10.0, 25.0
	tests := []struct {
		name string
		axis Axis
		want scale.Bounds
	}{
		{name: "empty", axis: Axis{DataBounds: scale.EmptyBounds()}, want: scale.Bounds{Min: 0, Max: 1}},
		{name: "data", axis: Axis{DataBounds: scale.Bounds{Min: 2, Max: 9}}, want: scale.Bounds{Min: 2, Max: 9}},
		{name: "limits", axis: Axis{DataBounds: scale.Bounds{Min: 2, Max: 9}, MinLimit: &lo, MaxLimit: &hi}, want: scale.Bounds{Min: -10, Max: 25}},
		{name: "min only", axis: Axis{DataBounds: scale.Bounds{Min: 2, Max: 9}, MinLimit: &lo}, want: scale.Bounds{Min: -10, Max: 9}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.axis.VisibleBounds(); got != tt.want {
				t.Errorf("VisibleBounds() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestAxisTicks(t *testing.T) {
	a := NewAxis(scale.Y)
	a.DataBounds = scale.Bounds{Min: -3, Max: 8}

	got := a.Ticks(scale.Size{Width: 100, Height: 400})
	want := []float64{-2, 0, 2, 4, 6, 8}
	if diff := cmp.Diff(want, got, cmpopts.EquateApprox(0, 1e-9)); diff != "" {
		t.Errorf("Ticks() mismatch (-want +got):\n%s", diff)
	}
}

func TestAxisLabel(t *testing.T) {
	a := &Axis{Labels: []string{"Mon", "Tue"}}
	for i, want := range []string{"Mon", "Tue", ""} {
		if got := a.Label(i); got != want {
			t.Errorf("Label(%d) = %q, want %q", i, got, want)
		}
	}
	if got := a.Label(-1); got != "" {
		t.Errorf("Label(-1) = %q, want empty", got)
	}
}
