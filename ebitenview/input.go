package ebitenview

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/phanxgames/treeview"
)

var keyMap = [...]struct {
	ebiten ebiten.Key
	tree   treeview.Key
}{
	{ebiten.KeyArrowUp, treeview.KeyUp},
	{ebiten.KeyArrowDown, treeview.KeyDown},
	{ebiten.KeyArrowLeft, treeview.KeyLeft},
	{ebiten.KeyArrowRight, treeview.KeyRight},
	{ebiten.KeyEnter, treeview.KeyEnter},
	{ebiten.KeyEscape, treeview.KeyEscape},
	{ebiten.KeySpace, treeview.KeySpace},
}

var buttonMap = [...]struct {
	ebiten ebiten.MouseButton
	tree   treeview.MouseButton
}{
	{ebiten.MouseButtonLeft, treeview.MouseButtonLeft},
	{ebiten.MouseButtonRight, treeview.MouseButtonRight},
}

// PollInput reads the current mouse and keyboard state. Call it from
// ebiten.Game.Update.
func PollInput() treeview.RawInput {
	x, y := ebiten.CursorPosition()
	w, h := ebiten.WindowSize()
	raw := treeview.RawInput{
		Pointer:        treeview.Vec2{X: float64(x), Y: float64(y)},
		PointerPresent: w == 0 || (x >= 0 && y >= 0 && x < w && y < h),
	}
	for _, b := range buttonMap {
		raw.SetButton(b.tree, ebiten.IsMouseButtonPressed(b.ebiten))
	}
	for _, k := range keyMap {
		if inpututil.IsKeyJustPressed(k.ebiten) {
			raw.Keys = append(raw.Keys, k.tree)
		}
	}
	return raw
}

// CursorShape maps a cursor hint to the closest Ebitengine cursor. Ebiten
// has no alias cursor, so dragging shows the move cursor.
func CursorShape(icon treeview.CursorIcon) ebiten.CursorShapeType {
	switch icon {
	case treeview.CursorPointingHand:
		return ebiten.CursorShapePointer
	case treeview.CursorAlias:
		return ebiten.CursorShapeMove
	}
	return ebiten.CursorShapeDefault
}

// ApplyCursor sets the window cursor for a frame's output.
func ApplyCursor(out treeview.Output) {
	ebiten.SetCursorShape(CursorShape(out.Cursor))
}
