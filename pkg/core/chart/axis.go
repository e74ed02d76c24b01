package chart

import (
	"math"

	"github.com/pchuan98/livecharts/pkg/core/scale"
)

// Default pixel distance between ticks.
const (
	DefaultXTickSpacing = 70
	DefaultYTickSpacing = 40
)

// maxTicks caps Ticks so a degenerate step can never spin.
const maxTicks = 1000

// Axis is one chart axis.
type Axis struct {
	Name        string
	Orientation scale.Orientation

	// DataBounds is rebuilt from the series on every update.
	DataBounds scale.Bounds

	// MinLimit and MaxLimit override the data bounds when set.
	MinLimit, MaxLimit *float64

	// MinStep is the smallest tick step Tick will return.
	MinStep float64

	// TickSpacing is the target pixel distance between ticks.
	TickSpacing float64

	// Labels names the categories of a category axis, by index.
	Labels []string
}

// NewAxis creates an axis with default tick spacing for its orientation.
func NewAxis(o scale.Orientation) *Axis {
	a := &Axis{Orientation: o, DataBounds: scale.EmptyBounds(), TickSpacing: DefaultXTickSpacing}
	if o == scale.Y {
		a.TickSpacing = DefaultYTickSpacing
	}
	return a
}

// VisibleBounds returns the data bounds with MinLimit/MaxLimit applied.
// Empty bounds become [0, 1].
func (a *Axis) VisibleBounds() scale.Bounds {
	b := a.DataBounds
	if b.IsEmpty() {
		b = scale.Bounds{Min: 0, Max: 1}
	}
	if a.MinLimit != nil {
		b.Min = *a.MinLimit
	}
	if a.MaxLimit != nil {
		b.Max = *a.MaxLimit
	}
	return b
}

// Tick returns the gridline step for bounds b when the chart control has
// size controlSize. The step is a 1, 2 or 5 multiple of a power of ten
// chosen so that roughly one tick fits every TickSpacing pixels. A flat
// range is treated as spanning max(|b.Max|, 1) before it is divided, so
// [50, 50] on a 10-separation axis steps by 5.
func (a *Axis) Tick(controlSize scale.Size, b scale.Bounds) float64 {
	length := controlSize.Width
	if a.Orientation == scale.Y {
		length = controlSize.Height
	}
	spacing := a.TickSpacing
	if spacing <= 0 {
		spacing = DefaultYTickSpacing
	}
	separations := math.Max(1, math.Round(length/spacing))

	r := b.Range()
	if r <= 0 {
		r = 1
		if !b.IsEmpty() {
			r = math.Max(math.Abs(b.Max), 1)
		}
	}

	step := niceStep(r / separations)
	if step < a.MinStep {
		step = a.MinStep
	}
	return step
}

// Ticks lists the tick values inside the visible bounds.
func (a *Axis) Ticks(controlSize scale.Size) []float64 {
	b := a.VisibleBounds()
	step := a.Tick(controlSize, b)
	if step <= 0 || math.IsInf(step, 0) || math.IsNaN(step) {
		return nil
	}
	var out []float64
	for v := math.Ceil(b.Min/step) * step; v <= b.Max+step*1e-9 && len(out) < maxTicks; v += step {
		out = append(out, v)
	}
	return out
}

// Label returns the category label at index i, or "" when none is set.
func (a *Axis) Label(i int) string {
	if i < 0 || i >= len(a.Labels) {
		return ""
	}
	return a.Labels[i]
}

func niceStep(raw float64) float64 {
	if raw <= 0 || math.IsInf(raw, 0) || math.IsNaN(raw) {
		return 1
	}
	mag := math.Pow(10, math.Floor(math.Log10(raw)))
	switch res := raw / mag; {
	case res > 5:
		return 10 * mag
	case res > 2:
		return 5 * mag
	case res > 1:
		return 2 * mag
	default:
		return mag
	}
}
