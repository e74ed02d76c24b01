package drawing

import (
	"cmp"
	"slices"
	"time"

	"github.com/google/uuid"

	"github.com/pchuan98/livecharts/pkg/core/animation"
)

// Canvas owns the paint tasks of a chart and the clock its geometries
// animate against.
type Canvas struct {
	clock  animation.Clock
	paints map[uuid.UUID]*Paint
	order  []*Paint
}

// NewCanvas creates an empty canvas. A nil clock defaults to a
// [animation.ManualClock] at zero.
func NewCanvas(clock animation.Clock) *Canvas {
	if clock == nil {
		clock = &animation.ManualClock{}
	}
	return &Canvas{clock: clock, paints: make(map[uuid.UUID]*Paint)}
}

// Clock returns the canvas clock.
func (c *Canvas) Clock() animation.Clock { return c.clock }

// AddPaintTask registers p. Registering a paint that is already present, or
// a nil paint, does nothing. It reports whether p was newly added.
func (c *Canvas) AddPaintTask(p *Paint) bool {
	if p == nil {
		return false
	}
	if _, ok := c.paints[p.ID]; ok {
		return false
	}
	c.paints[p.ID] = p
	c.order = append(c.order, p)
	return true
}

// RemovePaintTask unregisters p.
func (c *Canvas) RemovePaintTask(p *Paint) {
	if p == nil {
		return
	}
	if _, ok := c.paints[p.ID]; !ok {
		return
	}
	delete(c.paints, p.ID)
	c.order = slices.DeleteFunc(c.order, func(q *Paint) bool { return q.ID == p.ID })
}

// PaintTasks returns the registered paints ordered by z-index, then by
// registration order.
func (c *Canvas) PaintTasks() []*Paint {
	out := slices.Clone(c.order)
	slices.SortStableFunc(out, func(a, b *Paint) int { return cmp.Compare(a.ZIndex, b.ZIndex) })
	return out
}

// Draw renders every paint task at time t.
func (c *Canvas) Draw(ctx Context, t time.Duration) {
	for _, p := range c.PaintTasks() {
		p.Draw(ctx, t)
	}
}

// IsAnimating reports whether any attached geometry is still moving.
func (c *Canvas) IsAnimating() bool {
	for _, p := range c.order {
		for _, g := range p.geoms {
			if !g.IsCompleted() {
				return true
			}
		}
	}
	return false
}
