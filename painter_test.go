package treeview

import "testing"

func texts(shapes []Shape) []string {
	out := make([]string, len(shapes))
	for i, s := range shapes {
		out[i] = s.Text
	}
	return out
}

func TestPainterOrdersByLayerThenInsertion(t *testing.T) {
	p := NewPainter()
	p.Add(LayerTooltip, TextShape(Rect{}, "tip", ColorWhite))
	p.Add(LayerMiddle, TextShape(Rect{}, "m1", ColorWhite))
	p.Add(LayerBackground, TextShape(Rect{}, "bg", ColorWhite))
	p.Add(LayerMiddle, TextShape(Rect{}, "m2", ColorWhite))
	p.Add(LayerForeground, TextShape(Rect{}, "fg", ColorWhite))

	got := texts(p.Shapes())
	want := []string{"bg", "m1", "m2", "fg", "tip"}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("got %v, want %v", got, want)
		}
	}
}

func TestPainterSetKeepsSlot(t *testing.T) {
	p := NewPainter()
	slot := p.Add(LayerMiddle, Shape{})
	p.Add(LayerMiddle, TextShape(Rect{}, "after", ColorWhite))
	if n := len(p.Shapes()); n != 1 {
		t.Fatalf("noop slot drawn: %d shapes", n)
	}

	p.Set(slot, Shape{Kind: ShapeText, Text: "before", Layer: LayerTooltip})
	got := texts(p.Shapes())
	if len(got) != 2 || got[0] != "before" || got[1] != "after" {
		t.Errorf("got %v, want [before after]", got)
	}
	if p.Get(slot).Layer != LayerMiddle {
		t.Error("Set changed the slot's layer")
	}

	p.Set(99, RectShape(Rect{}, 0, ColorWhite))
	p.Set(-1, RectShape(Rect{}, 0, ColorWhite))
	if p.Len() != 2 {
		t.Errorf("out-of-range Set added slots: Len = %d", p.Len())
	}
}

func TestPainterTranslateRange(t *testing.T) {
	p := NewPainter()
	a := p.Add(LayerMiddle, RectShape(Rect{X: 1, Y: 1, Width: 2, Height: 2}, 0, ColorWhite))
	from := p.Next()
	b := p.Add(LayerTooltip, LineShape(Vec2{0, 0}, Vec2{10, 0}, Stroke{Width: 1, Color: ColorWhite}))
	c := p.Add(LayerTooltip, RectShape(Rect{X: 5, Y: 5, Width: 1, Height: 1}, 0, ColorWhite))
	to := p.Next()
	d := p.Add(LayerTooltip, RectShape(Rect{X: 7, Y: 7, Width: 1, Height: 1}, 0, ColorWhite))

	p.Translate(from, to, Vec2{100, 50})

	if r := p.Get(a).Rect; r.X != 1 || r.Y != 1 {
		t.Errorf("shape before range moved: %v", r)
	}
	if pts := p.Get(b).Points; pts[0] != (Vec2{100, 50}) || pts[1] != (Vec2{110, 50}) {
		t.Errorf("line points = %v", pts)
	}
	if r := p.Get(c).Rect; r.X != 105 || r.Y != 55 {
		t.Errorf("rect in range = %v", r)
	}
	if r := p.Get(d).Rect; r.X != 7 || r.Y != 7 {
		t.Errorf("shape after range moved: %v", r)
	}
}

func TestTranslatedCopiesPoints(t *testing.T) {
	s := LineShape(Vec2{1, 1}, Vec2{2, 2}, Stroke{})
	moved := s.Translated(Vec2{1, 0})
	if s.Points[0] != (Vec2{1, 1}) {
		t.Error("Translated mutated the original points")
	}
	if moved.Points[0] != (Vec2{2, 1}) {
		t.Errorf("moved point = %v", moved.Points[0])
	}
}

func TestPainterReset(t *testing.T) {
	p := NewPainter()
	p.Add(LayerMiddle, RectShape(Rect{}, 0, ColorWhite))
	p.Reset()
	if p.Len() != 0 || len(p.Shapes()) != 0 || p.Next() != 0 {
		t.Error("Reset left shapes behind")
	}
}

func TestShapesSortReusesBuffers(t *testing.T) {
	p := NewPainter()
	for i := 0; i < 300; i++ {
		p.Add(Layer(i%4), RectShape(Rect{X: float64(i)}, 0, ColorWhite))
	}
	p.mergeSort()
	if allocs := testing.AllocsPerRun(10, p.mergeSort); allocs != 0 {
		t.Errorf("mergeSort allocated %v times per run", allocs)
	}
	for i := 1; i < len(p.sortBuf); i++ {
		if !shapeLessOrEqual(&p.sortBuf[i-1], &p.sortBuf[i]) {
			t.Fatalf("sortBuf out of order at %d", i)
		}
	}
}
