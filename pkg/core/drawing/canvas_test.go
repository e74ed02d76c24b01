package drawing

import (
	"testing"

	"github.com/pchuan98/livecharts/pkg/core/animation"
)

func TestCanvasAddPaintTaskIsIdempotent(t *testing.T) {
	c := NewCanvas(nil)
	fill := NewSolidFill("#1f77b4")

	if !c.AddPaintTask(fill) {
		t.Fatal("first AddPaintTask should add")
	}
	for i := 0; i < 3; i++ {
		if c.AddPaintTask(fill) {
			t.Error("repeated AddPaintTask should not add")
		}
	}
	if c.AddPaintTask(nil) {
		t.Error("AddPaintTask(nil) should not add")
	}
	if n := len(c.PaintTasks()); n != 1 {
		t.Errorf("PaintTasks = %d, want 1", n)
	}
}

func TestCanvasOrdersByZIndex(t *testing.T) {
	c := NewCanvas(nil)
	stroke := NewStroke("#000", 1)
	stroke.ZIndex = 1
	fill := NewSolidFill("#fff")

	c.AddPaintTask(stroke)
	c.AddPaintTask(fill)

	tasks := c.PaintTasks()
	if tasks[0] != fill || tasks[1] != stroke {
		t.Error("PaintTasks should be ordered by z-index")
	}

	c.RemovePaintTask(fill)
	if n := len(c.PaintTasks()); n != 1 {
		t.Errorf("PaintTasks after remove = %d, want 1", n)
	}
}

func TestPaintGeometrySet(t *testing.T) {
	p := NewSolidFill("#fff")
	a, b, c := NewRectangle(nil), NewRectangle(nil), NewRectangle(nil)

	p.AddGeometry(a)
	p.AddGeometry(b)
	p.AddGeometry(a)
	p.AddGeometry(c)
	if n := len(p.Geometries()); n != 3 {
		t.Fatalf("Geometries = %d, want 3", n)
	}

	p.RemoveGeometry(b)
	got := p.Geometries()
	if len(got) != 2 || got[0] != Geometry(a) || got[1] != Geometry(c) {
		t.Errorf("Geometries after remove = %v", got)
	}
	if p.HasGeometry(b) {
		t.Error("HasGeometry(b) = true after remove")
	}
	p.RemoveGeometry(c)
	if !p.HasGeometry(a) || p.HasGeometry(c) {
		t.Error("index should be maintained after removals")
	}
}

func TestCanvasDrawAndAnimating(t *testing.T) {
	clock := &animation.ManualClock{}
	c := NewCanvas(clock)
	fill := NewSolidFill("#fff")
	c.AddPaintTask(fill)

	r := NewRectangle(clock)
	r.SetPropertyTransition(animation.New(animation.Linear, 100, 1), PropHeight)
	r.SetHeight(10)
	fill.AddGeometry(r)

	if !c.IsAnimating() {
		t.Error("IsAnimating = false while geometry moves")
	}
	clock.Advance(100)
	if c.IsAnimating() {
		t.Error("IsAnimating = true after window")
	}

	var rec Recorder
	c.Draw(&rec, clock.Now())
	if len(rec.Calls) != 1 || rec.Calls[0].Rect.Height != 10 {
		t.Errorf("Draw calls = %+v", rec.Calls)
	}
}
