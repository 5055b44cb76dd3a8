package treeview

// dirFrame is pushed for every directory while its children are built.
type dirFrame[N comparable] struct {
	id            N
	isOpen        bool
	dropForbidden bool
	rowRect       Rect
	closerRect    Rect
	// left-centre points of the children's labels, for hook lines
	childPositions []Vec2
	indentLevel    int
	flattened      bool
}

// Builder receives the tree's structure for one frame. Directories opened
// with Dir or Node must be closed with CloseDir; a missing CloseDir at the
// end of the frame is tolerated.
type Builder[N comparable] struct {
	ui       *Ui
	state    *State[N]
	settings Settings
	treeID   ID
	name     string
	sink     EventSink

	stack         []dirFrame[N]
	backgroundIdx ShapeIdx
}

func newBuilder[N comparable](ui *Ui, state *State[N], settings Settings, treeID ID, name string, sink EventSink) *Builder[N] {
	return &Builder[N]{
		ui:            ui,
		state:         state,
		settings:      settings,
		treeID:        treeID,
		name:          name,
		sink:          sink,
		backgroundIdx: ui.Painter().Add(Shape{}),
	}
}

// Ui returns the region rows are placed in.
func (b *Builder[N]) Ui() *Ui { return b.ui }

// SetSelected selects id.
func (b *Builder[N]) SetSelected(id N) { b.state.SetSelected(id) }

// Leaf adds a leaf with a text label.
func (b *Builder[N]) Leaf(id N, label string) {
	b.Node(NewLeaf(id), textLabel(label))
}

// Dir opens a directory with a text label. Close it with CloseDir.
func (b *Builder[N]) Dir(id N, label string) {
	b.Node(NewDir(id), textLabel(label))
}

func textLabel(text string) func(ui *Ui) {
	return func(ui *Ui) { ui.Label(text) }
}

// Node adds the node described by nb. addLabel draws the label into the
// row; it is called again for the drag overlay while the node is dragged.
func (b *Builder[N]) Node(nb NodeBuilder[N], addLabel func(ui *Ui)) {
	parent, hasParent := b.parentID()
	depth := b.indentLevel()

	var rect Rect
	var visible bool
	if nb.isDir {
		rect, visible = b.dir(&nb, addLabel)
	} else {
		rect, visible = b.leaf(&nb, addLabel)
	}

	b.state.nodeInfos = append(b.state.nodeInfos, NodeInfo[N]{
		Depth:     depth,
		NodeID:    nb.id,
		IsDir:     nb.isDir,
		Visible:   visible,
		Rect:      rect,
		ParentID:  parent,
		HasParent: hasParent,
	})
}

// CloseDir closes the innermost open directory. Without one it does nothing.
func (b *Builder[N]) CloseDir() {
	n := len(b.stack)
	if n == 0 {
		return
	}
	dir := b.stack[n-1]
	b.stack = b.stack[:n-1]

	vis := b.ui.Style().Visuals
	spacing := b.ui.ItemSpacing()
	cursorY := b.ui.Cursor().Y

	// A drop at the end of this directory highlights everything it spans.
	if drop := b.state.drop; drop != nil && drop.Parent == dir.id && drop.Position.Kind == DropLast && !dir.flattened {
		r := dir.rowRect.WithBottom(cursorY - spacing.Y*0.5)
		b.ui.Painter().Set(b.state.dropMarkerIdx, RectShape(r, vis.Active.Rounding, vis.SelectionBg.Multiply(0.5)))
	}

	if dir.isOpen && !dir.flattened {
		b.drawConnectors(&dir, cursorY-spacing.Y, vis.Noninteractive.BgStroke)
	}

	// Children of a flattened directory hook into the grandparent.
	if dir.flattened && len(b.stack) > 0 {
		parent := &b.stack[len(b.stack)-1]
		parent.childPositions = append(parent.childPositions, dir.childPositions...)
	}
}

// drawConnectors paints the lines linking an open directory to its
// children. cursorBottom is the bottom of the last row built.
func (b *Builder[N]) drawConnectors(dir *dirFrame[N], cursorBottom float64, stroke Stroke) {
	top := dir.closerRect.CenterBottom().Add(Vec2{0, 2})
	bottom := top
	switch b.settings.VLineStyle {
	case VLineNone:
		return
	case VLineVLine:
		bottom.Y = cursorBottom
	case VLineHook:
		if k := len(dir.childPositions); k > 0 {
			bottom.Y = dir.childPositions[k-1].Y
		}
	}

	painter := b.ui.Painter()
	if bottom.Y > top.Y {
		painter.Line(top, bottom, stroke)
	}
	if b.settings.VLineStyle == VLineHook {
		for _, child := range dir.childPositions {
			painter.Line(Vec2{top.X, child.Y}, child.Add(Vec2{-2, 0}), stroke)
		}
	}
}

func (b *Builder[N]) leaf(nb *NodeBuilder[N], addLabel func(ui *Ui)) (Rect, bool) {
	if !b.parentOpen() {
		return RectNothing, false
	}
	rc := rowConfig[N]{
		treeID:        b.treeID,
		id:            nb.id,
		dropOnAllowed: nb.dropAllowed,
		isOpen:        true,
		isDir:         false,
		indent:        b.indentPixels(),
		isSelected:    b.state.IsSelected(nb.id),
		isFocused:     b.state.hasFocus,
	}
	rows := b.row(&rc, nb, addLabel)
	return rows.row, true
}

func (b *Builder[N]) dir(nb *NodeBuilder[N], addLabel func(ui *Ui)) (Rect, bool) {
	level := b.indentLevel()
	if !b.parentOpen() {
		b.stack = append(b.stack, dirFrame[N]{
			id:            nb.id,
			isOpen:        false,
			dropForbidden: true,
			indentLevel:   level,
		})
		return RectNothing, false
	}
	if nb.flatten {
		b.stack = append(b.stack, dirFrame[N]{
			id:            nb.id,
			isOpen:        true,
			dropForbidden: b.parentDropForbidden(),
			indentLevel:   level,
			flattened:     true,
		})
		return RectNothing, false
	}

	open, known := b.state.dirOpen[nb.id]
	if !known {
		open = nb.defaultOpen
	}
	wasOpen := open

	rc := rowConfig[N]{
		treeID:        b.treeID,
		id:            nb.id,
		dropOnAllowed: nb.dropAllowed,
		isOpen:        open,
		isDir:         true,
		indent:        b.indentPixels(),
		isSelected:    b.state.IsSelected(nb.id),
		isFocused:     b.state.hasFocus,
	}
	rows := b.row(&rc, nb, addLabel)
	if rows.closer == nil {
		panic("treeview: directory row has no closer rect")
	}

	if b.ui.Interact(*rows.closer).Clicked {
		open = !open
		b.selectNode(nb.id)
	}
	if b.ui.Interact(rows.row).DoubleClicked {
		open = !open
	}
	if open != wasOpen {
		b.state.toggle(nb.id, open, b.name, b.sink)
	}
	b.state.dirOpen[nb.id] = open

	b.stack = append(b.stack, dirFrame[N]{
		id:            nb.id,
		isOpen:        open,
		dropForbidden: b.parentDropForbidden() || b.state.isDragged(nb.id),
		rowRect:       rows.row,
		closerRect:    *rows.closer,
		indentLevel:   level + 1,
	})
	return rows.row, true
}

// row draws a visible row and runs the interaction shared by leaves and
// directories: selection, drag start, drag overlay and drop resolution.
func (b *Builder[N]) row(rc *rowConfig[N], nb *NodeBuilder[N], addLabel func(ui *Ui)) rowRects {
	rows := rc.draw(b.ui, b.settings, nb, addLabel)
	in := b.ui.Interact(rows.row)
	input := b.ui.Input()

	if in.Clicked {
		b.selectNode(rc.id)
		rc.isSelected = true
	}
	if rc.isSelected {
		vis := b.ui.Style().Visuals
		fill := vis.Inactive.WeakBgFill.Multiply(0.3)
		if rc.isFocused {
			fill = vis.SelectionBg
		}
		b.ui.Painter().Set(b.backgroundIdx, RectShape(rows.row, vis.Active.Rounding, fill))
	}

	if in.DragStarted {
		press := input.PressOrigin()
		b.state.dragged = &DragState[N]{
			NodeID:    rc.id,
			RowOffset: rows.row.Min().Sub(press),
			StartPos:  press,
		}
		logger.Debug("treeview: drag start", "tree", b.name, "node", rc.id)
	}
	if d := b.state.dragged; d != nil {
		if !d.Valid {
			if pos, ok := input.Pos(); ok && pos.Distance(d.StartPos) > DragThreshold {
				d.Valid = true
				emit(b.sink, TreeEvent{Type: EventDragStart, Tree: b.name, Node: d.NodeID})
			}
		}
		if d.Valid && d.NodeID == rc.id {
			rc.drawDragged(b.ui, b.settings, nb, addLabel, d)
		}
	}

	if pos, ok := input.Pos(); ok && rows.row.ContainsPoint(pos) && !b.ui.Ctx().pointerOverPopup() {
		if q, ok := NewDropQuarter(rows.row.YRange(), pos.Y); ok {
			b.doDrop(rc, rows.row, q)
		}
	}

	b.pushChildPosition(rows.label.LeftCenter())
	return rows
}

// doDrop resolves the drop under the pointer, paints its marker and commits
// it as the frame's drop target. The dragged node's own row only gets the
// marker.
func (b *Builder[N]) doDrop(rc *rowConfig[N], row Rect, q DropQuarter) {
	if !b.state.dragValid() || !b.ui.Input().Dragging() {
		return
	}
	if b.parentDropForbidden() {
		return
	}

	var parent *N
	if len(b.stack) > 0 {
		parent = &b.stack[len(b.stack)-1].id
	}
	target, ok := resolveDropPosition(rc.id, rc.dropOnAllowed, rc.isOpen, parent, q)

	marker := Shape{}
	if ok {
		vis := b.ui.Style().Visuals
		marker = RectShape(dropMarkerRect(row, target.Position.Kind), vis.Active.Rounding, vis.SelectionBg.Multiply(0.6))
	}
	b.ui.Painter().Set(b.state.dropMarkerIdx, marker)

	if b.state.isDragged(rc.id) {
		return
	}
	if ok {
		b.state.drop = &target
	} else {
		b.state.drop = nil
	}
}

func (b *Builder[N]) selectNode(id N) {
	b.state.selectNode(id, b.name, b.sink)
}

func (b *Builder[N]) parentID() (N, bool) {
	if len(b.stack) == 0 {
		var zero N
		return zero, false
	}
	return b.stack[len(b.stack)-1].id, true
}

func (b *Builder[N]) parentOpen() bool {
	return len(b.stack) == 0 || b.stack[len(b.stack)-1].isOpen
}

func (b *Builder[N]) parentDropForbidden() bool {
	return len(b.stack) > 0 && b.stack[len(b.stack)-1].dropForbidden
}

func (b *Builder[N]) pushChildPosition(p Vec2) {
	if len(b.stack) > 0 {
		top := &b.stack[len(b.stack)-1]
		top.childPositions = append(top.childPositions, p)
	}
}

func (b *Builder[N]) indentLevel() int {
	if len(b.stack) == 0 {
		return 0
	}
	return b.stack[len(b.stack)-1].indentLevel
}

func (b *Builder[N]) indentPixels() float64 {
	return float64(b.indentLevel()) * b.settings.Indent(b.ui.Style().Spacing.Indent)
}
