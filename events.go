package treeview

import "fmt"

// EventType identifies a kind of tree event.
type EventType uint8

const (
	EventSelect      EventType = iota // the selection moved to Node
	EventToggle                       // directory Node was opened or closed; see Open
	EventDragStart                    // a drag of Node passed the drag threshold
	EventDrop                         // Node was dropped into Target at Position
	EventContextMenu                  // a context menu opened for Node
)

func (t EventType) String() string {
	switch t {
	case EventSelect:
		return "select"
	case EventToggle:
		return "toggle"
	case EventDragStart:
		return "drag-start"
	case EventDrop:
		return "drop"
	case EventContextMenu:
		return "context-menu"
	}
	return fmt.Sprintf("EventType(%d)", uint8(t))
}

// TreeEvent carries one interaction outcome to an EventSink. Node ids are
// boxed so one sink can serve trees of different id types.
type TreeEvent struct {
	Type EventType
	Tree string // the name given to New
	Node any
	// Toggle fields
	Open bool
	// Drop fields
	Target   any
	Position DropKind
	Anchor   any // sibling for DropBefore and DropAfter, nil otherwise
}

// EventSink is the optional bridge for forwarding tree events elsewhere,
// e.g. into an ECS world. Events are emitted synchronously while the tree
// is shown.
type EventSink interface {
	EmitEvent(event TreeEvent)
}

// emit forwards ev to sink when one is set.
func emit(sink EventSink, ev TreeEvent) {
	if sink != nil {
		sink.EmitEvent(ev)
	}
}
