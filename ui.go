package treeview

import "math"

// Ui is a layout region inside a frame. It places widgets one after another,
// top to bottom or (inside Horizontal) left to right, separated by the item
// spacing. Child regions share the parent's Context.
type Ui struct {
	ctx         *Context
	layer       Layer
	maxRect     Rect
	cursor      Vec2
	horizontal  bool
	rowHeight   float64
	itemSpacing Vec2

	used    Rect
	hasUsed bool

	menuClosed *bool // set while drawing a popup menu
}

func (c *Context) newUi(maxRect Rect, layer Layer, horizontal bool) *Ui {
	return &Ui{
		ctx:         c,
		layer:       layer,
		maxRect:     maxRect,
		cursor:      maxRect.Min(),
		horizontal:  horizontal,
		rowHeight:   c.rowHeight(),
		itemSpacing: c.Style.Spacing.ItemSpacing,
	}
}

// rowHeight is the height of a horizontal strip: enough for a line of text
// and never below the interact height.
func (c *Context) rowHeight() float64 {
	h := c.Style.Spacing.InteractHeight
	if c.Font != nil {
		h = math.Max(h, c.Font.LineHeight())
	}
	return h
}

func (u *Ui) child(maxRect Rect, horizontal bool) *Ui {
	ch := u.ctx.newUi(maxRect, u.layer, horizontal)
	ch.itemSpacing = u.itemSpacing
	ch.menuClosed = u.menuClosed
	return ch
}

// Ctx returns the owning context.
func (u *Ui) Ctx() *Context { return u.ctx }

// Style returns the context style. Changes apply to the whole context.
func (u *Ui) Style() *Style { return &u.ctx.Style }

// Input returns the context's input tracker.
func (u *Ui) Input() *Input { return u.ctx.input }

// Layer returns the layer this region paints on.
func (u *Ui) Layer() Layer { return u.layer }

// MaxRect returns the full area this region may use.
func (u *Ui) MaxRect() Rect { return u.maxRect }

// Cursor returns where the next widget will be placed.
func (u *Ui) Cursor() Vec2 { return u.cursor }

// ItemSpacing returns the gap inserted after every allocation.
func (u *Ui) ItemSpacing() Vec2 { return u.itemSpacing }

// SetItemSpacing changes the gap for subsequent allocations in this region.
func (u *Ui) SetItemSpacing(s Vec2) { u.itemSpacing = s }

// MinRect returns the bounding box of everything allocated so far. It is a
// zero-size rect at the cursor when nothing was allocated.
func (u *Ui) MinRect() Rect {
	if !u.hasUsed {
		return Rect{X: u.cursor.X, Y: u.cursor.Y}
	}
	return u.used
}

// AvailableRect returns the space between the cursor and the region's
// bottom-right corner.
func (u *Ui) AvailableRect() Rect {
	return Rect{
		X:      u.cursor.X,
		Y:      u.cursor.Y,
		Width:  math.Max(0, u.maxRect.Right()-u.cursor.X),
		Height: math.Max(0, u.maxRect.Bottom()-u.cursor.Y),
	}
}

// AvailableWidth returns AvailableRect().Width.
func (u *Ui) AvailableWidth() float64 { return u.AvailableRect().Width }

func (u *Ui) expandUsed(r Rect) {
	if !u.hasUsed {
		u.used = r
		u.hasUsed = true
		return
	}
	minX := math.Min(u.used.X, r.X)
	minY := math.Min(u.used.Y, r.Y)
	maxX := math.Max(u.used.Right(), r.Right())
	maxY := math.Max(u.used.Bottom(), r.Bottom())
	u.used = Rect{X: minX, Y: minY, Width: maxX - minX, Height: maxY - minY}
}

// advance records r as allocated and moves the cursor past it.
func (u *Ui) advance(r Rect) {
	u.expandUsed(r)
	if u.horizontal {
		u.cursor.X = r.Right() + u.itemSpacing.X
	} else {
		u.cursor.Y = r.Bottom() + u.itemSpacing.Y
	}
}

// AddSpace moves the cursor along the layout direction without item spacing.
func (u *Ui) AddSpace(amount float64) {
	if u.horizontal {
		u.expandUsed(Rect{X: u.cursor.X, Y: u.cursor.Y, Width: amount, Height: u.rowHeight})
		u.cursor.X += amount
		return
	}
	u.expandUsed(Rect{X: u.cursor.X, Y: u.cursor.Y, Height: amount})
	u.cursor.Y += amount
}

// Allocate reserves size at the cursor. In a horizontal region, shorter
// widgets are centred vertically in the row.
func (u *Ui) Allocate(size Vec2) Rect {
	r := Rect{X: u.cursor.X, Y: u.cursor.Y, Width: size.X, Height: size.Y}
	if u.horizontal && size.Y < u.rowHeight {
		r.Y += (u.rowHeight - size.Y) / 2
	}
	u.advance(r)
	return r
}

// AllocateAt runs fn in a vertical child region covering r and advances
// past it. The returned rect is r grown to whatever fn allocated.
func (u *Ui) AllocateAt(r Rect, fn func(ui *Ui)) Rect {
	ch := u.child(r, false)
	if fn != nil {
		fn(ch)
	}
	res := r
	if ch.hasUsed {
		res = res.Union(ch.used)
	}
	u.advance(res)
	return res
}

// Horizontal lays out fn's widgets left to right in a strip one row high
// and returns the strip's rect.
func (u *Ui) Horizontal(fn func(ui *Ui)) Rect {
	start := u.cursor
	strip := Rect{X: start.X, Y: start.Y, Width: math.Max(0, u.maxRect.Right()-start.X), Height: u.rowHeight}
	ch := u.child(strip, true)
	fn(ch)
	right, bottom := start.X, start.Y+u.rowHeight
	if ch.hasUsed {
		right = math.Max(right, ch.used.Right())
		bottom = math.Max(bottom, ch.used.Bottom())
	}
	r := RectFromMinMax(start, Vec2{right, bottom})
	u.advance(r)
	return r
}

// Scope runs fn in a child region continuing at the cursor with the same
// direction. Spacing changes made inside fn do not leak out.
func (u *Ui) Scope(fn func(ui *Ui)) Rect {
	ch := u.child(u.AvailableRect(), u.horizontal)
	ch.rowHeight = u.rowHeight
	fn(ch)
	r := ch.MinRect()
	u.advance(r)
	return r
}

// WithLayer runs fn in a region painting on layer, starting at the cursor.
// The parent cursor does not move.
func (u *Ui) WithLayer(layer Layer, fn func(ui *Ui)) Rect {
	ch := u.child(u.AvailableRect(), u.horizontal)
	ch.layer = layer
	fn(ch)
	return ch.MinRect()
}

// Painter returns a painter bound to this region's layer.
func (u *Ui) Painter() LayerPainter {
	return LayerPainter{p: u.ctx.painter, layer: u.layer}
}

// Interact hit-tests r against the frame's pointer state. Regions below
// LayerTooltip see nothing while the pointer is over an open popup.
func (u *Ui) Interact(r Rect) Interaction {
	if u.layer < LayerTooltip && u.ctx.pointerOverPopup() {
		return Interaction{}
	}
	return u.ctx.input.Interact(r)
}

// SetCursorIcon requests a cursor glyph for this frame.
func (u *Ui) SetCursorIcon(icon CursorIcon) { u.ctx.SetCursorIcon(icon) }

// AnimateBool returns a value easing between 0 and 1 following value.
func (u *Ui) AnimateBool(key any, value bool) float64 { return u.ctx.AnimateBool(key, value) }

// IconRectangles returns the inner glyph rect and the outer icon square for
// an icon placed at the left edge of r, centred vertically.
func (u *Ui) IconRectangles(r Rect) (small, big Rect) {
	sp := u.ctx.Style.Spacing
	big = RectFromCenterSize(Vec2{r.Left() + sp.IconWidth/2, r.Center().Y}, Vec2{sp.IconWidth, sp.IconWidth})
	small = RectFromCenterSize(big.Center(), Vec2{sp.IconWidthInner, sp.IconWidthInner})
	return small, big
}

// Label allocates and paints one line of text.
func (u *Ui) Label(text string) Rect {
	w, h := u.ctx.Font.MeasureString(text)
	r := u.Allocate(Vec2{w, h})
	u.Painter().Text(r, text, u.ctx.Style.Visuals.TextColor)
	return r
}

// Button is a label that highlights on hover and reports a click.
func (u *Ui) Button(text string) bool {
	w, h := u.ctx.Font.MeasureString(text)
	pad := Vec2{4, 2}
	bgIdx := u.Painter().Add(Shape{})
	r := u.Allocate(Vec2{w + 2*pad.X, h + 2*pad.Y})
	in := u.Interact(r)
	vis := u.ctx.Style.Visuals
	if in.Hovered {
		u.SetCursorIcon(CursorPointingHand)
		u.Painter().Set(bgIdx, RectShape(r, vis.Hovered.Rounding, vis.Hovered.WeakBgFill))
	}
	u.Painter().Text(Rect{X: r.X + pad.X, Y: r.Y + pad.Y, Width: w, Height: h}, text, vis.TextColor)
	return in.Clicked
}

// CloseMenu closes the popup menu this region belongs to. Outside a menu it
// does nothing.
func (u *Ui) CloseMenu() {
	if u.menuClosed != nil {
		*u.menuClosed = true
	}
}
