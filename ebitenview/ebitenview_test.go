package ebitenview

import (
	"math"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/phanxgames/treeview"
)

func TestSanitizeLabel(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"tree", "tree"},
		{"after-drop.2", "after-drop.2"},
		{"src/main.go", "src_main.go"},
		{"  menu open ", "menu_open"},
		{"ünï", "___"},
		{"", "unlabeled"},
		{"\t", "unlabeled"},
	}
	for _, tt := range tests {
		if got := sanitizeLabel(tt.in); got != tt.want {
			t.Errorf("sanitizeLabel(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestCursorShape(t *testing.T) {
	tests := []struct {
		icon treeview.CursorIcon
		want ebiten.CursorShapeType
	}{
		{treeview.CursorDefault, ebiten.CursorShapeDefault},
		{treeview.CursorPointingHand, ebiten.CursorShapePointer},
		{treeview.CursorAlias, ebiten.CursorShapeMove},
	}
	for _, tt := range tests {
		if got := CursorShape(tt.icon); got != tt.want {
			t.Errorf("CursorShape(%d) = %v, want %v", tt.icon, got, tt.want)
		}
	}
}

func TestRoundedRectPoints(t *testing.T) {
	r := treeview.Rect{X: 10, Y: 20, Width: 40, Height: 10}
	pts := roundedRectPoints(r, 8)
	if len(pts) != 4*(cornerSegments+1) {
		t.Fatalf("got %d points", len(pts))
	}
	// The radius is clamped to half the height.
	if first := pts[0]; math.Abs(first.X-10) > 1e-9 || math.Abs(first.Y-25) > 1e-9 {
		t.Errorf("first point = %v, want (10, 25)", first)
	}
	for _, p := range pts {
		if p.X < r.Left()-1e-9 || p.X > r.Right()+1e-9 || p.Y < r.Top()-1e-9 || p.Y > r.Bottom()+1e-9 {
			t.Errorf("point %v outside %v", p, r)
		}
	}
}

func TestRoundedRectPointsSquare(t *testing.T) {
	r := treeview.Rect{Width: 4, Height: 4}
	for _, p := range roundedRectPoints(r, 0) {
		onCorner := (p.X == 0 || math.Abs(p.X-4) < 1e-9) && (math.Abs(p.Y) < 1e-9 || math.Abs(p.Y-4) < 1e-9)
		if !onCorner {
			t.Errorf("point %v is not a corner", p)
		}
	}
}
