package treeview

import (
	"testing"

	"pgregory.net/rapid"
)

func TestDropQuarterZones(t *testing.T) {
	r := Range{Min: 100, Max: 120}
	tests := []struct {
		y    float64
		want DropQuarter
	}{
		{100, QuarterTop},
		{104.9, QuarterTop},
		{105, QuarterMiddleTop},
		{109.9, QuarterMiddleTop},
		{110, QuarterMiddleBottom},
		{114.9, QuarterMiddleBottom},
		{115, QuarterBottom},
		{119.9, QuarterBottom},
	}
	for _, tt := range tests {
		got, ok := NewDropQuarter(r, tt.y)
		if !ok || got != tt.want {
			t.Errorf("y=%v: got %v,%v want %v", tt.y, got, ok, tt.want)
		}
	}
	for _, y := range []float64{99.9, 120, 200} {
		if q, ok := NewDropQuarter(r, y); ok {
			t.Errorf("y=%v outside the row gave %v", y, q)
		}
	}
	if _, ok := NewDropQuarter(Range{Min: 5, Max: 5}, 5); ok {
		t.Error("empty range gave a zone")
	}
}

func TestDropQuarterProperty(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		top := rapid.Float64Range(-1000, 1000).Draw(t, "top")
		h := rapid.Float64Range(2*DropLineHoverHeight+0.5, 400).Draw(t, "height")
		r := Range{Min: top, Max: top + h}
		y := rapid.Float64Range(top-50, top+h+50).Draw(t, "y")

		q, ok := NewDropQuarter(r, y)
		if y < r.Min || y >= r.Max {
			if ok {
				t.Fatalf("y=%v outside [%v, %v) gave %v", y, r.Min, r.Max, q)
			}
			return
		}
		if !ok {
			t.Fatalf("y=%v inside [%v, %v) gave no zone", y, r.Min, r.Max)
		}
		var want DropQuarter
		switch {
		case y < r.Min+DropLineHoverHeight:
			want = QuarterTop
		case y < r.Mid():
			want = QuarterMiddleTop
		case y < r.Max-DropLineHoverHeight:
			want = QuarterMiddleBottom
		default:
			want = QuarterBottom
		}
		if q != want {
			t.Fatalf("y=%v in [%v, %v): got %v, want %v", y, r.Min, r.Max, q, want)
		}
	})
}

func TestResolveDropPosition(t *testing.T) {
	parent := "P"
	tests := []struct {
		name        string
		dropAllowed bool
		isOpen      bool
		hasParent   bool
		q           DropQuarter
		want        DropTarget[string]
		wantOK      bool
	}{
		{"top with parent", true, true, true, QuarterTop, DropTarget[string]{"P", Before("X")}, true},
		{"top root dir", true, true, false, QuarterTop, DropTarget[string]{"X", Last[string]()}, true},
		{"top root leaf", false, true, false, QuarterTop, DropTarget[string]{}, false},
		{"middle top into dir", true, false, true, QuarterMiddleTop, DropTarget[string]{"X", Last[string]()}, true},
		{"middle top leaf", false, true, true, QuarterMiddleTop, DropTarget[string]{"P", Before("X")}, true},
		{"middle bottom into dir", true, true, true, QuarterMiddleBottom, DropTarget[string]{"X", Last[string]()}, true},
		{"middle bottom leaf", false, true, true, QuarterMiddleBottom, DropTarget[string]{"P", After("X")}, true},
		{"middle bottom root leaf", false, true, false, QuarterMiddleBottom, DropTarget[string]{}, false},
		{"bottom open dir", true, true, true, QuarterBottom, DropTarget[string]{"X", First[string]()}, true},
		{"bottom closed dir", true, false, true, QuarterBottom, DropTarget[string]{"P", After("X")}, true},
		{"bottom closed root dir", true, false, false, QuarterBottom, DropTarget[string]{"X", Last[string]()}, true},
		{"bottom leaf", false, true, true, QuarterBottom, DropTarget[string]{"P", After("X")}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var p *string
			if tt.hasParent {
				p = &parent
			}
			got, ok := resolveDropPosition("X", tt.dropAllowed, tt.isOpen, p, tt.q)
			if ok != tt.wantOK || got != tt.want {
				t.Errorf("got %v,%v want %v,%v", got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestDropMarkerRect(t *testing.T) {
	row := Rect{X: 0, Y: 20, Width: 100, Height: 20}
	if r := dropMarkerRect(row, DropBefore); r.Y != 20-dropLineHeight/2 || r.Height != dropLineHeight {
		t.Errorf("before marker = %v", r)
	}
	if r := dropMarkerRect(row, DropAfter); r.Y != 40-dropLineHeight/2 || r.Height != dropLineHeight {
		t.Errorf("after marker = %v", r)
	}
	if r := dropMarkerRect(row, DropFirst); r != dropMarkerRect(row, DropAfter) {
		t.Errorf("first marker = %v, want the after line", r)
	}
	if r := dropMarkerRect(row, DropLast); r != row {
		t.Errorf("last marker = %v, want the whole row", r)
	}
}

func TestDropPositionString(t *testing.T) {
	if s := Before(3).String(); s != "before(3)" {
		t.Errorf("Before(3) = %q", s)
	}
	if s := Last[int]().String(); s != "last" {
		t.Errorf("Last = %q", s)
	}
}
