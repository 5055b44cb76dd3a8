package treeview

// TreeView shows a tree of nodes identified by N. Configure it with the
// setters, then call Show once per frame.
type TreeView[N comparable] struct {
	name     string
	id       ID
	settings Settings
	sink     EventSink
}

// New creates a tree view. name identifies the tree's state in the context
// memory, so it must be unique among the trees shown with one Context.
func New[N comparable](name string) *TreeView[N] {
	return &TreeView[N]{name: name, id: MakeID("treeview", name)}
}

// ID returns the memory key of the tree's state.
func (tv *TreeView[N]) ID() ID { return tv.id }

// OverrideIndent sets the indent per level in pixels. nil uses the style's
// indent.
func (tv *TreeView[N]) OverrideIndent(indent *float64) *TreeView[N] {
	tv.settings.OverrideIndent = indent
	return tv
}

// VLineStyle sets the connector line style.
func (tv *TreeView[N]) VLineStyle(style VLineStyle) *TreeView[N] {
	tv.settings.VLineStyle = style
	return tv
}

// RowLayout sets the row layout.
func (tv *TreeView[N]) RowLayout(layout RowLayout) *TreeView[N] {
	tv.settings.RowLayout = layout
	return tv
}

// Settings replaces all settings at once.
func (tv *TreeView[N]) Settings(s Settings) *TreeView[N] {
	tv.settings = s
	return tv
}

// EventSink sets the bridge that receives tree events.
func (tv *TreeView[N]) EventSink(sink EventSink) *TreeView[N] {
	tv.sink = sink
	return tv
}

// Show builds the tree for this frame using the state kept in the context
// memory.
func (tv *TreeView[N]) Show(ui *Ui, build func(b *Builder[N])) Response[N] {
	state := memoryOrInit(ui.Ctx(), tv.id, NewState[N])
	return tv.ShowState(ui, state, build)
}

// ShowState builds the tree for this frame using a caller-owned state.
func (tv *TreeView[N]) ShowState(ui *Ui, state *State[N], build func(b *Builder[N])) Response[N] {
	input := ui.Input()

	if input.Pressed() && !ui.Ctx().pointerOverPopup() {
		pos, ok := input.Pos()
		state.hasFocus = ok && state.lastRect.ContainsPoint(pos)
	}
	if state.hasFocus {
		tv.navigate(ui, state)
	}

	state.drop = nil
	state.nodeInfos = make([]NodeInfo[N], 0, len(state.nodeInfos))
	state.dropMarkerIdx = ui.Painter().Add(Shape{})

	avail := ui.AvailableRect()
	used := ui.Scope(func(ui *Ui) {
		build(newBuilder(ui, state, tv.settings, tv.id, tv.name, tv.sink))
	})
	rect := Rect{X: avail.X, Y: avail.Y, Width: avail.Width, Height: used.Bottom() - avail.Y}
	state.lastRect = rect

	if input.SecondaryClicked() {
		tv.openContextMenu(ui, state)
	}

	resp := Response[N]{Rect: rect, state: state}
	if !input.Down() && state.dragged != nil {
		d := state.dragged
		if d.Valid && state.drop != nil {
			action := DragDropAction[N]{Source: d.NodeID, Target: state.drop.Parent, Position: state.drop.Position}
			resp.action = &action
			logger.Debug("treeview: drop", "tree", tv.name, "source", action.Source, "target", action.Target, "position", action.Position)
			ev := TreeEvent{Type: EventDrop, Tree: tv.name, Node: action.Source, Target: action.Target, Position: action.Position.Kind}
			if k := action.Position.Kind; k == DropBefore || k == DropAfter {
				ev.Anchor = action.Position.Node
			}
			emit(tv.sink, ev)
		}
		state.dragged = nil
	}
	return resp
}

func (tv *TreeView[N]) openContextMenu(ui *Ui, state *State[N]) {
	pos, ok := ui.Input().Pos()
	if !ok || ui.Ctx().pointerOverPopup() {
		return
	}
	for _, info := range state.nodeInfos {
		if info.Visible && info.Rect.ContainsPoint(pos) {
			state.menu = &contextMenu[N]{node: info.NodeID, pos: pos}
			logger.Debug("treeview: context menu", "tree", tv.name, "node", info.NodeID)
			emit(tv.sink, TreeEvent{Type: EventContextMenu, Tree: tv.name, Node: info.NodeID})
			return
		}
	}
}

// navigate moves the selection with the arrow keys over the rows visible
// in the previous frame.
func (tv *TreeView[N]) navigate(ui *Ui, state *State[N]) {
	in := ui.Input()
	var visible []NodeInfo[N]
	var at []int // index of each visible record in state.nodeInfos
	for i, info := range state.nodeInfos {
		if info.Visible {
			visible = append(visible, info)
			at = append(at, i)
		}
	}
	if len(visible) == 0 {
		return
	}

	idx := -1
	if sel, ok := state.Selected(); ok {
		for i, info := range visible {
			if info.NodeID == sel {
				idx = i
			}
		}
	}

	switch {
	case in.KeyPressed(KeyDown):
		if idx < 0 {
			state.selectNode(visible[0].NodeID, tv.name, tv.sink)
		} else if idx+1 < len(visible) {
			state.selectNode(visible[idx+1].NodeID, tv.name, tv.sink)
		}
	case in.KeyPressed(KeyUp):
		if idx < 0 {
			state.selectNode(visible[len(visible)-1].NodeID, tv.name, tv.sink)
		} else if idx > 0 {
			state.selectNode(visible[idx-1].NodeID, tv.name, tv.sink)
		}
	case in.KeyPressed(KeyRight):
		if idx < 0 || !visible[idx].IsDir {
			return
		}
		cur := visible[idx]
		if open, _ := state.IsOpen(cur.NodeID); !open {
			state.toggle(cur.NodeID, true, tv.name, tv.sink)
		} else if idx+1 < len(visible) && visible[idx+1].Depth > cur.Depth {
			state.selectNode(visible[idx+1].NodeID, tv.name, tv.sink)
		}
	case in.KeyPressed(KeyLeft):
		if idx < 0 {
			return
		}
		cur := visible[idx]
		if open, _ := state.IsOpen(cur.NodeID); cur.IsDir && open {
			state.toggle(cur.NodeID, false, tv.name, tv.sink)
			return
		}
		// Flattened directories have no row; skip to the next visible
		// ancestor. A parent is always recorded before its children, so
		// the walk only moves backwards.
		for info, i := cur, at[idx]; info.HasParent; {
			parent, pi, ok := state.nodeInfoBefore(info.ParentID, i)
			if !ok {
				return
			}
			if parent.Visible {
				state.selectNode(parent.NodeID, tv.name, tv.sink)
				return
			}
			info, i = parent, pi
		}
	}
}

// DragDropAction asks the caller to move Source into Target at Position.
// The tree never changes the caller's data itself.
type DragDropAction[N comparable] struct {
	Source   N
	Target   N
	Position DropPosition[N]
}

// Response is the outcome of one Show call.
type Response[N comparable] struct {
	// Rect is the area the tree occupies.
	Rect Rect

	state  *State[N]
	action *DragDropAction[N]
}

// Selected returns the selected node.
func (r Response[N]) Selected() (N, bool) { return r.state.Selected() }

// DragDrop returns the drop performed this frame, if any.
func (r Response[N]) DragDrop() (DragDropAction[N], bool) {
	if r.action == nil {
		return DragDropAction[N]{}, false
	}
	return *r.action, true
}

// DropTarget returns where the dragged node would land if released now.
func (r Response[N]) DropTarget() (DropTarget[N], bool) { return r.state.DropTarget() }

// NodeInfos returns a record for every node passed to the builder this
// frame, in call order.
func (r Response[N]) NodeInfos() []NodeInfo[N] { return r.state.NodeInfos() }

// VisibleNodes returns the records of the rows drawn this frame.
func (r Response[N]) VisibleNodes() []NodeInfo[N] {
	var out []NodeInfo[N]
	for _, info := range r.state.nodeInfos {
		if info.Visible {
			out = append(out, info)
		}
	}
	return out
}

// ContextMenu shows the popup opened by a right click on a row. fn fills
// the popup for the clicked node. The popup closes on Escape, on a press
// outside it, or when fn calls ui.CloseMenu.
func (r Response[N]) ContextMenu(ui *Ui, fn func(ui *Ui, id N)) {
	m := r.state.menu
	if m == nil || fn == nil {
		return
	}
	ctx := ui.Ctx()
	margin := ctx.Style.Spacing.MenuMargin
	screen := ctx.Screen()
	area := Rect{
		X:      m.pos.X + margin,
		Y:      m.pos.Y + margin,
		Width:  max(0, screen.Right()-m.pos.X-2*margin),
		Height: max(0, screen.Bottom()-m.pos.Y-2*margin),
	}

	closed := false
	menu := ctx.newUi(area, LayerTooltip, false)
	menu.menuClosed = &closed
	bg := menu.Painter().Add(Shape{})
	fn(menu, m.node)

	popup := menu.MinRect().Expand(margin)
	vis := ctx.Style.Visuals
	menu.Painter().Set(bg, Shape{
		Kind:     ShapeRect,
		Rect:     popup,
		Rounding: vis.Noninteractive.Rounding,
		Fill:     vis.MenuFill,
		Stroke:   vis.Noninteractive.BgStroke,
	})
	ctx.registerPopup(popup)

	in := ui.Input()
	if in.KeyPressed(KeyEscape) {
		closed = true
	}
	if in.Pressed() {
		if pos, ok := in.Pos(); !ok || !popup.ContainsPoint(pos) {
			closed = true
		}
	}
	if closed {
		r.state.menu = nil
	}
}
