package treeview

import "math"

// --- Constants ---

const (
	defaultDragDeadZone = 4.0 // pixels of travel before a press becomes a drag
	doubleClickTime     = 0.3 // seconds between clicks of a double click
	doubleClickDistance = 6.0 // max pixels between clicks of a double click
)

// MouseButton identifies a mouse button the tree view reacts to.
type MouseButton uint8

const (
	MouseButtonLeft  MouseButton = iota // primary (left) mouse button
	MouseButtonRight                    // secondary (right) mouse button
)

// Key identifies a keyboard key the tree view reacts to.
type Key uint8

const (
	KeyUp Key = iota
	KeyDown
	KeyLeft
	KeyRight
	KeyEnter
	KeyEscape
	KeySpace
)

// RawInput is the state a backend polls from the platform once per frame.
type RawInput struct {
	Pointer        Vec2
	PointerPresent bool  // false when the pointer left the window
	PrimaryDown    bool  // left button held
	SecondaryDown  bool  // right button held
	Keys           []Key // keys pressed this frame
}

// SetButton records whether b is held. Backends map their own button
// codes through it.
func (r *RawInput) SetButton(b MouseButton, down bool) {
	switch b {
	case MouseButtonLeft:
		r.PrimaryDown = down
	case MouseButtonRight:
		r.SecondaryDown = down
	}
}

// ButtonDown reports whether b is held.
func (r RawInput) ButtonDown(b MouseButton) bool {
	switch b {
	case MouseButtonLeft:
		return r.PrimaryDown
	case MouseButtonRight:
		return r.SecondaryDown
	}
	return false
}

// Interaction reports how the pointer relates to one rectangle this frame.
type Interaction struct {
	Hovered          bool
	Clicked          bool // primary press and release inside the rect without dragging
	DoubleClicked    bool
	SecondaryClicked bool
	DragStarted      bool // a drag began this frame from a press inside the rect
}

// Input runs the pointer state machine across frames. Backends feed it a
// RawInput per frame; widgets query edges and per-rect interactions.
type Input struct {
	// DragDeadZone is the minimum movement in pixels before a press turns
	// into a drag.
	DragDeadZone float64

	pos     Vec2
	present bool

	down        bool
	pressed     bool
	released    bool
	pressOrigin Vec2
	dragging    bool
	dragStarted bool
	wasDragging bool

	clicked       bool
	doubleClicked bool
	lastClickTime float64
	lastClickPos  Vec2

	secondaryDown    bool
	secondaryClicked bool

	keys []Key
	time float64

	injectQueue []syntheticEvent
}

// NewInput returns an input tracker with default thresholds.
func NewInput() *Input {
	return &Input{
		DragDeadZone:  defaultDragDeadZone,
		lastClickTime: math.Inf(-1),
	}
}

// begin advances the state machine by one frame. A queued synthetic event,
// if any, replaces raw.
func (in *Input) begin(raw RawInput, dt float64) {
	if evt, ok := in.popInjected(); ok {
		raw = evt.resolve(in)
	}
	in.time += dt
	in.pos = raw.Pointer
	in.present = raw.PointerPresent

	in.clicked = false
	in.doubleClicked = false
	in.dragStarted = false
	in.wasDragging = false

	wasDown := in.down
	in.down = raw.PrimaryDown
	in.pressed = in.down && !wasDown
	in.released = !in.down && wasDown

	if in.pressed {
		in.pressOrigin = in.pos
		in.dragging = false
	}
	if in.down && !in.dragging && in.pos.Distance(in.pressOrigin) > in.DragDeadZone {
		in.dragging = true
		in.dragStarted = true
	}
	if in.released {
		if !in.dragging {
			in.registerClick()
		}
		in.wasDragging = in.dragging
		in.dragging = false
	}

	wasSecondary := in.secondaryDown
	in.secondaryDown = raw.SecondaryDown
	in.secondaryClicked = wasSecondary && !in.secondaryDown

	in.keys = append(in.keys[:0], raw.Keys...)
}

func (in *Input) registerClick() {
	in.clicked = true
	if in.time-in.lastClickTime <= doubleClickTime && in.pos.Distance(in.lastClickPos) <= doubleClickDistance {
		in.doubleClicked = true
		in.lastClickTime = math.Inf(-1)
		return
	}
	in.lastClickTime = in.time
	in.lastClickPos = in.pos
}

// Interact hit-tests r against this frame's pointer state.
func (in *Input) Interact(r Rect) Interaction {
	hovered := in.present && r.ContainsPoint(in.pos)
	fromInside := r.ContainsPoint(in.pressOrigin)
	return Interaction{
		Hovered:          hovered,
		Clicked:          in.clicked && hovered && fromInside,
		DoubleClicked:    in.doubleClicked && hovered && fromInside,
		SecondaryClicked: in.secondaryClicked && hovered,
		DragStarted:      in.dragStarted && fromInside,
	}
}

// Pos returns the pointer position and whether the pointer is over the window.
func (in *Input) Pos() (Vec2, bool) { return in.pos, in.present }

// Down reports whether the primary button is held.
func (in *Input) Down() bool { return in.down }

// Pressed reports whether the primary button went down this frame.
func (in *Input) Pressed() bool { return in.pressed }

// Released reports whether the primary button went up this frame.
func (in *Input) Released() bool { return in.released }

// PressOrigin returns where the current or last press started.
func (in *Input) PressOrigin() Vec2 { return in.pressOrigin }

// Dragging reports whether the pointer is held and has left the dead zone.
// It stays true on the release frame of a drag.
func (in *Input) Dragging() bool { return in.dragging || in.wasDragging }

// SecondaryClicked reports whether the right button was released this frame.
func (in *Input) SecondaryClicked() bool { return in.secondaryClicked }

// KeyPressed reports whether k was pressed this frame.
func (in *Input) KeyPressed(k Key) bool {
	for _, pressed := range in.keys {
		if pressed == k {
			return true
		}
	}
	return false
}

// Time returns the accumulated frame time in seconds.
func (in *Input) Time() float64 { return in.time }
