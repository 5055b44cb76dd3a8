package treeview

// IconDrawer paints a node's icon into the square region it is given.
type IconDrawer interface {
	DrawIcon(ui *Ui)
}

// IconFunc adapts a function to IconDrawer.
type IconFunc func(ui *Ui)

// DrawIcon calls f(ui).
func (f IconFunc) DrawIcon(ui *Ui) { f(ui) }

// CloserState is passed to custom closers.
type CloserState struct {
	IsOpen    bool // the directory is expanded
	IsHovered bool // the pointer is over the closer
}

// CloserDrawer paints a directory's expand/collapse affordance.
type CloserDrawer interface {
	DrawCloser(ui *Ui, state CloserState)
}

// CloserFunc adapts a function to CloserDrawer.
type CloserFunc func(ui *Ui, state CloserState)

// DrawCloser calls f(ui, state).
func (f CloserFunc) DrawCloser(ui *Ui, state CloserState) { f(ui, state) }

// NodeBuilder describes how one node is rendered. Build a fresh one every
// frame with NewLeaf or NewDir and hand it to Builder.Node.
type NodeBuilder[N comparable] struct {
	id          N
	isDir       bool
	flatten     bool
	defaultOpen bool
	dropAllowed bool
	icon        IconDrawer
	closer      CloserDrawer
}

// NewLeaf starts a leaf node. Leaves do not accept drops by default.
func NewLeaf[N comparable](id N) NodeBuilder[N] {
	return NodeBuilder[N]{id: id, defaultOpen: true}
}

// NewDir starts a directory node. Directories start open and accept drops.
func NewDir[N comparable](id N) NodeBuilder[N] {
	return NodeBuilder[N]{id: id, isDir: true, defaultOpen: true, dropAllowed: true}
}

// ID returns the node id.
func (nb NodeBuilder[N]) ID() N { return nb.id }

// IsDir reports whether the node is a directory.
func (nb NodeBuilder[N]) IsDir() bool { return nb.isDir }

// Flatten folds a directory into its parent: it gets no row of its own and
// its children are shown at the directory's own level. It cannot be
// selected or navigated to.
func (nb NodeBuilder[N]) Flatten(flatten bool) NodeBuilder[N] {
	nb.flatten = flatten
	return nb
}

// DefaultOpen sets the open state used the first time the id is seen.
func (nb NodeBuilder[N]) DefaultOpen(open bool) NodeBuilder[N] {
	nb.defaultOpen = open
	return nb
}

// DropAllowed sets whether nodes may be dropped onto this one.
func (nb NodeBuilder[N]) DropAllowed(allowed bool) NodeBuilder[N] {
	nb.dropAllowed = allowed
	return nb
}

// Icon sets the icon drawer. A later call replaces an earlier one.
func (nb NodeBuilder[N]) Icon(icon IconDrawer) NodeBuilder[N] {
	nb.icon = icon
	return nb
}

// Closer replaces the default triangle closer. Leaves never show a closer.
func (nb NodeBuilder[N]) Closer(closer CloserDrawer) NodeBuilder[N] {
	nb.closer = closer
	return nb
}
