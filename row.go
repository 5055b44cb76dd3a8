package treeview

import "math"

// rowConfig is everything needed to lay out one row.
type rowConfig[N comparable] struct {
	treeID        ID
	id            N
	dropOnAllowed bool
	isOpen        bool
	isDir         bool
	indent        float64 // pixels
	isSelected    bool
	isFocused     bool
}

// rowRects are the rectangles produced by drawing a row. closer and icon are
// nil when the slot was not drawn.
type rowRects struct {
	row    Rect
	closer *Rect
	icon   *Rect
	label  Rect
}

// closerAnimKey keys the open/close animation of a directory's closer.
type closerAnimKey[N comparable] struct {
	tree ID
	id   N
}

// draw lays out the closer, icon and label of one row in a horizontal strip
// and returns the row rect stretched over the available width.
func (rc *rowConfig[N]) draw(ui *Ui, settings Settings, nb *NodeBuilder[N], addLabel func(ui *Ui)) rowRects {
	reserveCloser, drawCloser, reserveIcon, drawIcon := settings.RowLayout.slots(rc.isDir, nb.icon != nil)
	sp := ui.Style().Spacing

	var out rowRects
	strip := ui.Horizontal(func(ui *Ui) {
		// Row content is packed tightly; the label gets the spacing back.
		itemSpacing := ui.ItemSpacing()
		ui.SetItemSpacing(Vec2{})

		ui.AddSpace(itemSpacing.X)
		ui.AddSpace(rc.indent)

		if drawCloser {
			small, big := ui.IconRectangles(ui.AvailableRect())
			r := ui.AllocateAt(big, func(ui *Ui) {
				in := ui.Interact(ui.MaxRect())
				if in.Hovered {
					ui.SetCursorIcon(CursorPointingHand)
				}
				if nb.closer != nil {
					nb.closer.DrawCloser(ui, CloserState{IsOpen: rc.isOpen, IsHovered: in.Hovered})
					return
				}
				openness := ui.AnimateBool(closerAnimKey[N]{tree: rc.treeID, id: rc.id}, rc.isOpen)
				paintDefaultCloser(ui, openness, small, in.Hovered)
			})
			out.closer = &r
		}
		if out.closer == nil && reserveCloser {
			ui.AddSpace(sp.IconWidth)
		}

		if drawIcon && nb.icon != nil {
			_, big := ui.IconRectangles(ui.AvailableRect())
			r := ui.AllocateAt(big, nb.icon.DrawIcon)
			out.icon = &r
		}
		if out.icon == nil && reserveIcon {
			ui.AddSpace(sp.IconWidth)
		}

		ui.AddSpace(2)
		out.label = ui.Scope(func(ui *Ui) {
			ui.SetItemSpacing(itemSpacing)
			if addLabel != nil {
				addLabel(ui)
			}
		})
		ui.AddSpace(itemSpacing.X)
	})

	row := strip.Expand2(Vec2{0, ui.ItemSpacing().Y * 0.5})
	row.Width = ui.AvailableWidth()
	out.row = row
	return out
}

// drawDragged renders the row again as a floating overlay that follows the
// pointer, keeping the offset between the press and the row corner.
func (rc *rowConfig[N]) drawDragged(ui *Ui, settings Settings, nb *NodeBuilder[N], addLabel func(ui *Ui), drag *DragState[N]) {
	ui.SetCursorIcon(CursorAlias)

	painter := ui.ctx.painter
	first := painter.Next()
	var row Rect
	ui.WithLayer(LayerTooltip, func(ui *Ui) {
		bg := ui.Painter().Add(Shape{})
		row = rc.draw(ui, settings, nb, addLabel).row
		vis := ui.Style().Visuals
		ui.Painter().Set(bg, RectShape(row, vis.Active.Rounding, vis.SelectionBg.Multiply(0.4)))
	})

	if pos, ok := ui.Input().Pos(); ok {
		delta := pos.Add(drag.RowOffset).Sub(row.Min())
		painter.Translate(first, painter.Next(), delta)
	}
}

// paintDefaultCloser paints a triangle pointing down when open and right
// when closed, rotating in between as openness goes from 1 to 0.
func paintDefaultCloser(ui *Ui, openness float64, r Rect, hovered bool) {
	vis := ui.Style().Visuals.Inactive
	if hovered {
		vis = ui.Style().Visuals.Hovered
	}

	r = RectFromCenterSize(r.Center(), r.Size().Scale(0.75)).Expand(vis.Expansion)
	c := r.Center()
	points := []Vec2{r.Min(), {r.Right(), r.Top()}, r.CenterBottom()}
	angle := (openness - 1) * math.Pi / 2
	for i, p := range points {
		points[i] = c.Add(p.Sub(c).Rotate(angle))
	}
	ui.Painter().ConvexPolygon(points, vis.FgStroke.Color)
}
