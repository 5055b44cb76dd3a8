// Package treeview is an immediate-mode tree view widget.
//
// The caller describes the tree every frame through a [Builder]: directories
// are opened with [Builder.Dir] or [Builder.Node] and closed with
// [Builder.CloseDir], leaves are added with [Builder.Leaf]. Only selection,
// open/closed flags and drag state survive between frames; everything else
// is recomputed from the calls.
//
// # Quick start
//
// A frame starts on a [Context], which hands out the root [Ui]. The shapes
// recorded during the frame are drawn by a backend such as
// treeview/ebitenview or treeview/termview:
//
//	ctx := treeview.NewContext(font)
//	tree := treeview.New[int]("files").VLineStyle(treeview.VLineHook)
//
//	ui := ctx.BeginFrame(raw, screen, dt)
//	resp := tree.Show(ui, func(b *treeview.Builder[int]) {
//		b.Dir(1, "src")
//		b.Leaf(2, "main.go")
//		b.CloseDir()
//	})
//	out := ctx.EndFrame()
//
// # Drag and drop
//
// Rows can be dragged onto other rows. Where a node lands depends on the
// vertical zone of the hovered row ([DropQuarter]): the edge bands insert
// next to the row, the middle inserts into it when it accepts drops. When
// the pointer is released over a valid target, [Response.DragDrop] reports
// the move; applying it to the data is up to the caller.
//
// # Configuration
//
// [Settings] and [Style] can be set in code or loaded from YAML with
// [LoadSettings] and [LoadStyle]. Tree events can be forwarded elsewhere
// through an [EventSink]; treeview/ecs publishes them into a [Donburi]
// world. The closer animation uses [gween].
//
// [gween]: https://github.com/tanema/gween
// [Donburi]: https://github.com/yohamta/donburi
package treeview
