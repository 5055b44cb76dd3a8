package termview

import (
	"github.com/gdamore/tcell/v2"

	"github.com/phanxgames/treeview"
)

var buttonMap = [...]struct {
	tcell tcell.ButtonMask
	tree  treeview.MouseButton
}{
	{tcell.Button1, treeview.MouseButtonLeft},
	{tcell.Button2, treeview.MouseButtonRight},
}

// InputState accumulates tcell events into the RawInput of the next
// frame. tcell reports button changes as events, so the held state is
// kept between frames.
type InputState struct {
	raw  treeview.RawInput
	keys []treeview.Key
}

// HandleEvent folds ev into the pending input. It reports whether ev was
// an input event.
func (s *InputState) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventMouse:
		x, y := ev.Position()
		s.raw.Pointer = treeview.Vec2{
			X: (float64(x) + 0.5) * CellSize.X,
			Y: (float64(y) + 0.5) * CellSize.Y,
		}
		s.raw.PointerPresent = true
		btn := ev.Buttons()
		for _, m := range buttonMap {
			s.raw.SetButton(m.tree, btn&m.tcell != 0)
		}
		return true
	case *tcell.EventKey:
		if k, ok := translateKey(ev); ok {
			s.keys = append(s.keys, k)
		}
		return true
	}
	return false
}

// Frame returns the input for one frame and clears the pressed keys.
func (s *InputState) Frame() treeview.RawInput {
	raw := s.raw
	raw.Keys = append([]treeview.Key(nil), s.keys...)
	s.keys = s.keys[:0]
	return raw
}

func translateKey(ev *tcell.EventKey) (treeview.Key, bool) {
	switch ev.Key() {
	case tcell.KeyUp:
		return treeview.KeyUp, true
	case tcell.KeyDown:
		return treeview.KeyDown, true
	case tcell.KeyLeft:
		return treeview.KeyLeft, true
	case tcell.KeyRight:
		return treeview.KeyRight, true
	case tcell.KeyEnter:
		return treeview.KeyEnter, true
	case tcell.KeyEscape:
		return treeview.KeyEscape, true
	case tcell.KeyRune:
		if ev.Rune() == ' ' {
			return treeview.KeySpace, true
		}
	}
	return 0, false
}
