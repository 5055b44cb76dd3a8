package treeview

// DragThreshold is how far in pixels the pointer has to travel from the
// press before a drag is confirmed and drop targets are resolved.
const DragThreshold = 5.0

// DragState describes the node being dragged.
type DragState[N comparable] struct {
	NodeID N
	// RowOffset is the dragged row's top-left corner relative to the press
	// position, so the overlay keeps the grab point under the pointer.
	RowOffset Vec2
	StartPos  Vec2
	// Valid is set once the pointer moved more than DragThreshold.
	Valid bool
}

// NodeInfo is the record kept for every node passed to the builder in the
// last frame, in call order.
type NodeInfo[N comparable] struct {
	Depth     int
	NodeID    N
	IsDir     bool
	Visible   bool
	Rect      Rect // RectNothing when not visible
	ParentID  N
	HasParent bool
}

type contextMenu[N comparable] struct {
	node N
	pos  Vec2
}

// State is the part of a tree view that survives between frames. The
// builder needs exclusive access to it while a frame is built.
type State[N comparable] struct {
	selected    N
	hasSelected bool
	dirOpen     map[N]bool
	dragged     *DragState[N]

	// rebuilt every frame
	drop      *DropTarget[N]
	nodeInfos []NodeInfo[N]

	hasFocus      bool
	lastRect      Rect
	menu          *contextMenu[N]
	dropMarkerIdx ShapeIdx
}

// NewState returns an empty state.
func NewState[N comparable]() *State[N] {
	return &State[N]{dirOpen: make(map[N]bool), dropMarkerIdx: -1}
}

// Selected returns the selected node.
func (s *State[N]) Selected() (N, bool) { return s.selected, s.hasSelected }

// SetSelected selects id.
func (s *State[N]) SetSelected(id N) {
	s.selected = id
	s.hasSelected = true
}

// ClearSelected removes the selection.
func (s *State[N]) ClearSelected() {
	var zero N
	s.selected = zero
	s.hasSelected = false
}

// IsSelected reports whether id is the selected node.
func (s *State[N]) IsSelected(id N) bool { return s.hasSelected && s.selected == id }

// IsOpen returns the stored open flag of a directory. known is false for
// directories not seen yet.
func (s *State[N]) IsOpen(id N) (open, known bool) {
	open, known = s.dirOpen[id]
	return open, known
}

// SetOpen stores the open flag of a directory.
func (s *State[N]) SetOpen(id N, open bool) { s.dirOpen[id] = open }

// Dragged returns the current drag, if any.
func (s *State[N]) Dragged() (DragState[N], bool) {
	if s.dragged == nil {
		return DragState[N]{}, false
	}
	return *s.dragged, true
}

// CancelDrag drops the current drag without producing a drop.
func (s *State[N]) CancelDrag() { s.dragged = nil }

func (s *State[N]) isDragged(id N) bool { return s.dragged != nil && s.dragged.NodeID == id }

func (s *State[N]) dragValid() bool { return s.dragged != nil && s.dragged.Valid }

// DropTarget returns the drop target committed in the last frame.
func (s *State[N]) DropTarget() (DropTarget[N], bool) {
	if s.drop == nil {
		return DropTarget[N]{}, false
	}
	return *s.drop, true
}

// NodeInfos returns the node records of the last frame.
func (s *State[N]) NodeInfos() []NodeInfo[N] { return s.nodeInfos }

// HasFocus reports whether the tree takes keyboard input.
func (s *State[N]) HasFocus() bool { return s.hasFocus }

// SetFocus gives or takes keyboard focus.
func (s *State[N]) SetFocus(focus bool) { s.hasFocus = focus }

// nodeInfoBefore finds the last record for id at an index below before.
func (s *State[N]) nodeInfoBefore(id N, before int) (NodeInfo[N], int, bool) {
	for i := min(before, len(s.nodeInfos)) - 1; i >= 0; i-- {
		if s.nodeInfos[i].NodeID == id {
			return s.nodeInfos[i], i, true
		}
	}
	return NodeInfo[N]{}, -1, false
}

// selectNode selects id and reports the change.
func (s *State[N]) selectNode(id N, tree string, sink EventSink) {
	if s.IsSelected(id) {
		return
	}
	s.SetSelected(id)
	logger.Debug("treeview: select", "tree", tree, "node", id)
	emit(sink, TreeEvent{Type: EventSelect, Tree: tree, Node: id})
}

// toggle stores a directory's new open flag and reports it.
func (s *State[N]) toggle(id N, open bool, tree string, sink EventSink) {
	s.dirOpen[id] = open
	logger.Debug("treeview: toggle", "tree", tree, "node", id, "open", open)
	emit(sink, TreeEvent{Type: EventToggle, Tree: tree, Node: id, Open: open})
}
