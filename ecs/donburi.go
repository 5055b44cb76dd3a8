package ecs

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
	"github.com/yohamta/donburi/filter"

	"github.com/phanxgames/treeview"
)

// TreeEventType is the Donburi event type for tree view events.
// Events are queued until ProcessEvents runs.
var TreeEventType = events.NewEventType[treeview.TreeEvent]()

type donburiSink struct {
	world donburi.World
}

// NewDonburiSink creates an EventSink that publishes to TreeEventType in
// world.
func NewDonburiSink(world donburi.World) treeview.EventSink {
	return &donburiSink{world: world}
}

func (s *donburiSink) EmitEvent(event treeview.TreeEvent) {
	TreeEventType.Publish(s.world, event)
}

// Selection is the selected node of one tree.
type Selection struct {
	Tree string
	Node any
}

// SelectionComponent holds a Selection. TrackSelection keeps one entity
// with it per tree.
var SelectionComponent = donburi.NewComponentType[Selection]()

var selectionQuery = donburi.NewQuery(filter.Contains(SelectionComponent))

// TrackSelection subscribes to select events and stores the latest
// selection of each tree on its own entity.
func TrackSelection(world donburi.World) {
	TreeEventType.Subscribe(world, func(w donburi.World, ev treeview.TreeEvent) {
		if ev.Type != treeview.EventSelect {
			return
		}
		entry, ok := SelectionEntry(w, ev.Tree)
		if !ok {
			entry = w.Entry(w.Create(SelectionComponent))
		}
		SelectionComponent.SetValue(entry, Selection{Tree: ev.Tree, Node: ev.Node})
	})
}

// SelectionEntry finds the entity tracking tree's selection.
func SelectionEntry(world donburi.World, tree string) (*donburi.Entry, bool) {
	var found *donburi.Entry
	selectionQuery.Each(world, func(e *donburi.Entry) {
		if SelectionComponent.Get(e).Tree == tree {
			found = e
		}
	})
	return found, found != nil
}
