package treeview

import "testing"

func frame(in *Input, raw RawInput) {
	in.begin(raw, 1.0/60)
}

func at(x, y float64, down bool) RawInput {
	return RawInput{Pointer: Vec2{x, y}, PointerPresent: true, PrimaryDown: down}
}

func TestInputPressReleaseEdges(t *testing.T) {
	in := NewInput()
	frame(in, at(10, 10, true))
	if !in.Pressed() || !in.Down() || in.Released() {
		t.Fatalf("press frame: pressed=%v down=%v released=%v", in.Pressed(), in.Down(), in.Released())
	}
	if in.PressOrigin() != (Vec2{10, 10}) {
		t.Errorf("press origin = %v", in.PressOrigin())
	}

	frame(in, at(11, 10, true))
	if in.Pressed() {
		t.Error("pressed should only be true on the first frame")
	}

	frame(in, at(11, 10, false))
	if !in.Released() || in.Down() {
		t.Errorf("release frame: released=%v down=%v", in.Released(), in.Down())
	}
}

func TestInputClick(t *testing.T) {
	in := NewInput()
	r := Rect{X: 0, Y: 0, Width: 50, Height: 20}

	frame(in, at(10, 10, true))
	if in.Interact(r).Clicked {
		t.Error("click must not fire on press")
	}
	frame(in, at(12, 11, false))
	if !in.Interact(r).Clicked {
		t.Error("expected click on release inside the rect")
	}
	if in.Interact(Rect{X: 100, Width: 10, Height: 10}).Clicked {
		t.Error("click reported for a rect that was not hovered")
	}
}

func TestInputDragSuppressesClick(t *testing.T) {
	in := NewInput()
	r := Rect{X: 0, Y: 0, Width: 100, Height: 100}

	frame(in, at(10, 10, true))
	frame(in, at(12, 10, true))
	if in.Dragging() {
		t.Fatal("movement inside the dead zone started a drag")
	}
	frame(in, at(30, 10, true))
	if !in.Dragging() || !in.Interact(r).DragStarted {
		t.Fatal("expected drag start once past the dead zone")
	}
	frame(in, at(40, 10, true))
	if in.Interact(r).DragStarted {
		t.Error("DragStarted must only be set for one frame")
	}

	frame(in, at(40, 10, false))
	if !in.Dragging() {
		t.Error("Dragging should stay true on the release frame")
	}
	if in.Interact(r).Clicked {
		t.Error("releasing a drag must not click")
	}
	frame(in, at(40, 10, false))
	if in.Dragging() {
		t.Error("Dragging should end after the release frame")
	}
}

func TestInputDoubleClick(t *testing.T) {
	in := NewInput()
	r := Rect{Width: 100, Height: 100}

	frame(in, at(10, 10, true))
	frame(in, at(10, 10, false))
	if in.Interact(r).DoubleClicked {
		t.Fatal("single click reported as double")
	}
	frame(in, at(11, 10, true))
	frame(in, at(11, 10, false))
	if !in.Interact(r).DoubleClicked {
		t.Fatal("expected double click")
	}

	// A third click starts a new pair.
	frame(in, at(11, 10, true))
	frame(in, at(11, 10, false))
	if in.Interact(r).DoubleClicked {
		t.Error("third click reported as double")
	}
}

func TestInputDoubleClickTimeout(t *testing.T) {
	in := NewInput()
	r := Rect{Width: 100, Height: 100}

	frame(in, at(10, 10, true))
	frame(in, at(10, 10, false))
	in.begin(at(10, 10, false), doubleClickTime+0.1)
	frame(in, at(10, 10, true))
	frame(in, at(10, 10, false))
	if in.Interact(r).DoubleClicked {
		t.Error("clicks further apart than the double click time")
	}
}

func TestInputSecondaryClick(t *testing.T) {
	in := NewInput()
	r := Rect{Width: 100, Height: 100}

	frame(in, RawInput{Pointer: Vec2{5, 5}, PointerPresent: true, SecondaryDown: true})
	if in.SecondaryClicked() {
		t.Error("secondary click on press")
	}
	frame(in, RawInput{Pointer: Vec2{5, 5}, PointerPresent: true})
	if !in.SecondaryClicked() || !in.Interact(r).SecondaryClicked {
		t.Error("expected secondary click on release")
	}
}

func TestInputPointerAbsent(t *testing.T) {
	in := NewInput()
	frame(in, RawInput{Pointer: Vec2{5, 5}})
	if in.Interact(Rect{Width: 100, Height: 100}).Hovered {
		t.Error("absent pointer hovers")
	}
	if _, ok := in.Pos(); ok {
		t.Error("Pos reports a present pointer")
	}
}

func TestInputKeys(t *testing.T) {
	in := NewInput()
	frame(in, RawInput{Keys: []Key{KeyDown, KeyEnter}})
	if !in.KeyPressed(KeyDown) || !in.KeyPressed(KeyEnter) || in.KeyPressed(KeyUp) {
		t.Error("unexpected key state")
	}
	frame(in, RawInput{})
	if in.KeyPressed(KeyDown) {
		t.Error("keys must not carry over to the next frame")
	}
}

func TestRawInputButtons(t *testing.T) {
	var raw RawInput
	raw.SetButton(MouseButtonRight, true)
	if !raw.SecondaryDown || raw.PrimaryDown {
		t.Fatalf("raw = %+v, want secondary only", raw)
	}
	if !raw.ButtonDown(MouseButtonRight) || raw.ButtonDown(MouseButtonLeft) {
		t.Error("ButtonDown disagrees with SetButton")
	}
	raw.SetButton(MouseButtonLeft, true)
	raw.SetButton(MouseButtonRight, false)
	if !raw.ButtonDown(MouseButtonLeft) || raw.ButtonDown(MouseButtonRight) {
		t.Errorf("raw = %+v, want primary only", raw)
	}
	if raw.ButtonDown(MouseButton(7)) {
		t.Error("unknown button reported down")
	}
}
