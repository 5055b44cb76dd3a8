// Package ecs bridges tree view events into a [Donburi] world.
//
// [NewDonburiSink] publishes every [treeview.TreeEvent] as a typed Donburi
// event. Subscribe to [TreeEventType] in your systems, or call
// [TrackSelection] to mirror each tree's selection into a component.
//
// Usage:
//
//	sink := ecs.NewDonburiSink(world)
//	tree := treeview.New[int]("scene").EventSink(sink)
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
