package treeview

// Layer orders shapes: every shape of a lower layer is drawn before any
// shape of a higher layer. Inside a layer, insertion order is kept.
type Layer uint8

const (
	LayerBackground Layer = iota // panel fills
	LayerMiddle                  // regular widget content
	LayerForeground              // content drawn over widgets
	LayerTooltip                 // floating overlays: drag previews, popups
)

// ShapeKind identifies what a Shape draws.
type ShapeKind uint8

const (
	ShapeNoop    ShapeKind = iota // placeholder slot, draws nothing
	ShapeRect                     // filled rounded rectangle
	ShapeLine                     // stroked segment Points[0]..Points[1]
	ShapePolygon                  // filled convex polygon
	ShapeText                     // single line of text with its top-left at Rect.Min
)

// Stroke describes a line's width and color.
type Stroke struct {
	Width float64
	Color Color
}

// Shape is a single draw instruction recorded during a frame. Backends
// receive shapes already sorted and translated.
type Shape struct {
	Kind     ShapeKind
	Layer    Layer
	Rect     Rect
	Rounding float64
	Fill     Color
	Stroke   Stroke
	Points   []Vec2
	Text     string

	order int // insertion order within the frame, used for stable sort
}

// RectShape returns a filled rounded rectangle.
func RectShape(r Rect, rounding float64, fill Color) Shape {
	return Shape{Kind: ShapeRect, Rect: r, Rounding: rounding, Fill: fill}
}

// LineShape returns a stroked segment from a to b.
func LineShape(a, b Vec2, stroke Stroke) Shape {
	return Shape{Kind: ShapeLine, Points: []Vec2{a, b}, Stroke: stroke}
}

// PolygonShape returns a filled convex polygon.
func PolygonShape(points []Vec2, fill Color) Shape {
	return Shape{Kind: ShapePolygon, Points: points, Fill: fill}
}

// TextShape returns a text run whose bounds are r.
func TextShape(r Rect, text string, c Color) Shape {
	return Shape{Kind: ShapeText, Rect: r, Text: text, Fill: c}
}

// Translated returns a copy of s moved by d.
func (s Shape) Translated(d Vec2) Shape {
	if d == (Vec2{}) {
		return s
	}
	s.Rect = s.Rect.Translate(d)
	if len(s.Points) > 0 {
		pts := make([]Vec2, len(s.Points))
		for i, p := range s.Points {
			pts[i] = p.Add(d)
		}
		s.Points = pts
	}
	return s
}

// ShapeIdx addresses a shape slot so it can be replaced later in the frame.
type ShapeIdx int

// Painter records the shapes of one frame.
type Painter struct {
	shapes      []Shape
	sortBuf     []Shape
	sortScratch []Shape
	next        int
}

const defaultShapeCap = 256

// NewPainter creates an empty painter.
func NewPainter() *Painter {
	return &Painter{
		shapes:  make([]Shape, 0, defaultShapeCap),
		sortBuf: make([]Shape, 0, defaultShapeCap),
	}
}

// Reset clears all shapes for a new frame.
func (p *Painter) Reset() {
	for i := range p.shapes {
		p.shapes[i] = Shape{}
	}
	p.shapes = p.shapes[:0]
	p.next = 0
}

// Len returns the number of recorded slots, including no-ops.
func (p *Painter) Len() int { return len(p.shapes) }

// Add appends s on the given layer and returns its slot.
func (p *Painter) Add(layer Layer, s Shape) ShapeIdx {
	s.Layer = layer
	s.order = p.next
	p.next++
	p.shapes = append(p.shapes, s)
	return ShapeIdx(len(p.shapes) - 1)
}

// Set replaces the shape in slot idx, keeping the slot's layer and position.
// Out of range slots are ignored.
func (p *Painter) Set(idx ShapeIdx, s Shape) {
	if idx < 0 || int(idx) >= len(p.shapes) {
		return
	}
	old := p.shapes[idx]
	s.Layer = old.Layer
	s.order = old.order
	p.shapes[idx] = s
}

// Get returns the shape in slot idx.
func (p *Painter) Get(idx ShapeIdx) Shape {
	if idx < 0 || int(idx) >= len(p.shapes) {
		return Shape{}
	}
	return p.shapes[idx]
}

// Next returns the slot the next Add will use. Together with Translate it
// lets a caller move everything it painted after the fact.
func (p *Painter) Next() ShapeIdx { return ShapeIdx(len(p.shapes)) }

// Translate moves the shapes in slots [from, to) by d.
func (p *Painter) Translate(from, to ShapeIdx, d Vec2) {
	from = max(from, 0)
	to = min(to, ShapeIdx(len(p.shapes)))
	for i := from; i < to; i++ {
		p.shapes[i] = p.shapes[i].Translated(d)
	}
}

// Shapes returns the frame's drawable shapes sorted by (layer, insertion
// order). No-op slots are dropped.
func (p *Painter) Shapes() []Shape {
	p.mergeSort()
	out := make([]Shape, 0, len(p.sortBuf))
	for _, s := range p.sortBuf {
		if s.Kind == ShapeNoop {
			continue
		}
		out = append(out, s)
	}
	return out
}

// --- Merge sort ---

// shapeLessOrEqual returns true if a should sort before or at the same position as b.
// Using <= for order ensures stability.
func shapeLessOrEqual(a, b *Shape) bool {
	if a.Layer != b.Layer {
		return a.Layer < b.Layer
	}
	return a.order <= b.order
}

// mergeSort copies p.shapes into p.sortBuf and sorts it there, leaving the
// slot indices of p.shapes untouched. Bottom-up merge sort: zero allocations
// after the scratch buffers reach their high-water mark.
func (p *Painter) mergeSort() {
	n := len(p.shapes)
	if cap(p.sortBuf) < n {
		p.sortBuf = make([]Shape, n)
	}
	p.sortBuf = p.sortBuf[:n]
	copy(p.sortBuf, p.shapes)
	if n <= 1 {
		return
	}

	if cap(p.sortScratch) < n {
		p.sortScratch = make([]Shape, n)
	}
	scratch := p.sortScratch[:n]
	a := p.sortBuf
	b := scratch
	swapped := false

	for width := 1; width < n; width *= 2 {
		for i := 0; i < n; i += 2 * width {
			lo := i
			mid := min(lo+width, n)
			hi := min(lo+2*width, n)
			mergeRun(a, b, lo, mid, hi)
		}
		a, b = b, a
		swapped = !swapped
	}

	if swapped {
		copy(p.sortBuf, scratch)
	}
}

// mergeRun merges two sorted runs [lo, mid) and [mid, hi) from src into dst.
func mergeRun(src, dst []Shape, lo, mid, hi int) {
	i, j, k := lo, mid, lo
	for i < mid && j < hi {
		if shapeLessOrEqual(&src[i], &src[j]) {
			dst[k] = src[i]
			i++
		} else {
			dst[k] = src[j]
			j++
		}
		k++
	}
	for i < mid {
		dst[k] = src[i]
		i++
		k++
	}
	for j < hi {
		dst[k] = src[j]
		j++
		k++
	}
}

// LayerPainter records shapes on one layer of a Painter.
type LayerPainter struct {
	p     *Painter
	layer Layer
}

// Layer returns the layer shapes are recorded on.
func (lp LayerPainter) Layer() Layer { return lp.layer }

// Add appends s and returns its slot.
func (lp LayerPainter) Add(s Shape) ShapeIdx { return lp.p.Add(lp.layer, s) }

// Set replaces the shape in slot idx.
func (lp LayerPainter) Set(idx ShapeIdx, s Shape) { lp.p.Set(idx, s) }

// Rect paints a filled rounded rectangle.
func (lp LayerPainter) Rect(r Rect, rounding float64, fill Color) ShapeIdx {
	return lp.Add(RectShape(r, rounding, fill))
}

// Line paints a segment from a to b.
func (lp LayerPainter) Line(a, b Vec2, stroke Stroke) ShapeIdx {
	return lp.Add(LineShape(a, b, stroke))
}

// ConvexPolygon paints a filled convex polygon.
func (lp LayerPainter) ConvexPolygon(points []Vec2, fill Color) ShapeIdx {
	return lp.Add(PolygonShape(points, fill))
}

// Text paints a line of text inside r.
func (lp LayerPainter) Text(r Rect, text string, c Color) ShapeIdx {
	return lp.Add(TextShape(r, text, c))
}
