package treeview

import "fmt"

// DropLineHoverHeight is the height of the bands at the top and bottom of a
// row that mean "insert as a sibling" rather than "insert inside".
const DropLineHoverHeight = 5.0

// dropLineHeight is the thickness of the marker bar painted for sibling drops.
const dropLineHeight = 3.0

// DropQuarter is one of the four vertical zones of a row.
type DropQuarter uint8

const (
	QuarterTop          DropQuarter = iota // band at the very top
	QuarterMiddleTop                       // upper half of the interior
	QuarterMiddleBottom                    // lower half of the interior
	QuarterBottom                          // band at the very bottom
)

func (q DropQuarter) String() string {
	switch q {
	case QuarterTop:
		return "top"
	case QuarterMiddleTop:
		return "middle-top"
	case QuarterMiddleBottom:
		return "middle-bottom"
	case QuarterBottom:
		return "bottom"
	}
	return fmt.Sprintf("DropQuarter(%d)", uint8(q))
}

// NewDropQuarter maps y to the zone of the row spanning r. The second result
// is false when y is outside [r.Min, r.Max) or the range is empty.
func NewDropQuarter(r Range, y float64) (DropQuarter, bool) {
	if !(r.Max > r.Min) {
		return 0, false
	}
	h0 := r.Min
	h1 := r.Min + DropLineHoverHeight
	h2 := r.Mid()
	h3 := r.Max - DropLineHoverHeight
	h4 := r.Max

	switch {
	case y >= h0 && y < h1:
		return QuarterTop, true
	case y >= h1 && y < h2:
		return QuarterMiddleTop, true
	case y >= h2 && y < h3:
		return QuarterMiddleBottom, true
	case y >= h3 && y < h4:
		return QuarterBottom, true
	}
	return 0, false
}

// DropKind distinguishes the four places a node can be dropped relative to a
// directory.
type DropKind uint8

const (
	DropBefore DropKind = iota // before Node, inside the target directory
	DropAfter                  // after Node, inside the target directory
	DropFirst                  // first child of the target directory
	DropLast                   // last child of the target directory
)

func (k DropKind) String() string {
	switch k {
	case DropBefore:
		return "before"
	case DropAfter:
		return "after"
	case DropFirst:
		return "first"
	case DropLast:
		return "last"
	}
	return fmt.Sprintf("DropKind(%d)", uint8(k))
}

// DropPosition says where inside a target directory the dragged node should
// be inserted. Node is only meaningful for DropBefore and DropAfter.
type DropPosition[N comparable] struct {
	Kind DropKind
	Node N
}

// Before returns the position directly in front of id.
func Before[N comparable](id N) DropPosition[N] { return DropPosition[N]{Kind: DropBefore, Node: id} }

// After returns the position directly behind id.
func After[N comparable](id N) DropPosition[N] { return DropPosition[N]{Kind: DropAfter, Node: id} }

// First returns the position at the start of the target directory.
func First[N comparable]() DropPosition[N] { return DropPosition[N]{Kind: DropFirst} }

// Last returns the position at the end of the target directory.
func Last[N comparable]() DropPosition[N] { return DropPosition[N]{Kind: DropLast} }

func (p DropPosition[N]) String() string {
	switch p.Kind {
	case DropBefore, DropAfter:
		return fmt.Sprintf("%s(%v)", p.Kind, p.Node)
	}
	return p.Kind.String()
}

// DropTarget names the directory receiving a drop and the position inside it.
type DropTarget[N comparable] struct {
	Parent   N
	Position DropPosition[N]
}

// resolveDropPosition applies the quarter rules: the two middle quarters
// prefer dropping inside the hovered node, the edge bands prefer inserting
// next to it in its parent.
func resolveDropPosition[N comparable](id N, dropAllowed, isOpen bool, parent *N, q DropQuarter) (DropTarget[N], bool) {
	inside := func(p DropPosition[N]) (DropTarget[N], bool) {
		return DropTarget[N]{Parent: id, Position: p}, true
	}
	sibling := func(p DropPosition[N]) (DropTarget[N], bool) {
		return DropTarget[N]{Parent: *parent, Position: p}, true
	}

	switch q {
	case QuarterTop:
		if parent != nil {
			return sibling(Before(id))
		}
		if dropAllowed {
			return inside(Last[N]())
		}
	case QuarterMiddleTop:
		if dropAllowed {
			return inside(Last[N]())
		}
		if parent != nil {
			return sibling(Before(id))
		}
	case QuarterMiddleBottom:
		if dropAllowed {
			return inside(Last[N]())
		}
		if parent != nil {
			return sibling(After(id))
		}
	case QuarterBottom:
		if dropAllowed && isOpen {
			return inside(First[N]())
		}
		if parent != nil {
			return sibling(After(id))
		}
		if dropAllowed {
			return inside(Last[N]())
		}
	}
	return DropTarget[N]{}, false
}

// dropMarkerRect returns the area highlighted for a drop position on row.
func dropMarkerRect(row Rect, kind DropKind) Rect {
	var y Range
	switch kind {
	case DropBefore:
		y = RangePoint(row.Top(), dropLineHeight*0.5)
	case DropFirst, DropAfter:
		y = RangePoint(row.Bottom(), dropLineHeight*0.5)
	default:
		y = row.YRange()
	}
	return RectFromRanges(row.XRange(), y)
}
