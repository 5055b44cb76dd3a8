// Package sample holds the editable tree shown by the example apps.
package sample

import (
	"errors"
	"fmt"

	"github.com/phanxgames/treeview"
)

var (
	ErrUnknownNode = errors.New("sample: unknown node")
	ErrNotDir      = errors.New("sample: target is not a directory")
	ErrCycle       = errors.New("sample: cannot move a directory into itself")
)

// Node is one entry of the tree.
type Node struct {
	ID       int
	Name     string
	IsDir    bool
	Flatten  bool
	Children []*Node
}

// Tree is a rooted tree with id lookup. The root itself is not shown.
type Tree struct {
	root   *Node
	byID   map[int]*Node
	parent map[int]*Node
	nextID int
}

// New returns an empty tree.
func New() *Tree {
	t := &Tree{
		root:   &Node{ID: 0, Name: "/", IsDir: true},
		byID:   make(map[int]*Node),
		parent: make(map[int]*Node),
		nextID: 1,
	}
	t.byID[0] = t.root
	return t
}

// Files returns a small project layout. The "internal" directory is
// flattened so its children appear at its parent's level.
func Files() *Tree {
	t := New()
	src := t.AddDir(0, "src")
	t.AddLeaf(src, "main.go")
	t.AddLeaf(src, "tree.go")
	internal := t.AddDir(src, "internal")
	t.Find(internal).Flatten = true
	t.AddLeaf(internal, "layout.go")
	t.AddLeaf(internal, "paint.go")
	assets := t.AddDir(0, "assets")
	icons := t.AddDir(assets, "icons")
	t.AddLeaf(icons, "folder.png")
	t.AddLeaf(icons, "file.png")
	t.AddLeaf(assets, "font.ttf")
	t.AddLeaf(0, "README.md")
	t.AddLeaf(0, "go.mod")
	return t
}

// Root returns the hidden root directory. Its id is 0.
func (t *Tree) Root() *Node { return t.root }

// Find returns the node with id or nil.
func (t *Tree) Find(id int) *Node { return t.byID[id] }

// Parent returns the directory holding id.
func (t *Tree) Parent(id int) (*Node, bool) {
	p, ok := t.parent[id]
	return p, ok
}

// Len returns the number of nodes below the root.
func (t *Tree) Len() int { return len(t.byID) - 1 }

// AddDir appends a directory to parent and returns its id.
func (t *Tree) AddDir(parent int, name string) int { return t.add(parent, name, true) }

// AddLeaf appends a leaf to parent and returns its id.
func (t *Tree) AddLeaf(parent int, name string) int { return t.add(parent, name, false) }

func (t *Tree) add(parent int, name string, isDir bool) int {
	p := t.byID[parent]
	if p == nil || !p.IsDir {
		panic(fmt.Sprintf("sample: add %q under %d: not a directory", name, parent))
	}
	n := &Node{ID: t.nextID, Name: name, IsDir: isDir}
	t.nextID++
	p.Children = append(p.Children, n)
	t.byID[n.ID] = n
	t.parent[n.ID] = p
	return n.ID
}

// Remove deletes id and its subtree.
func (t *Tree) Remove(id int) error {
	n, p := t.byID[id], t.parent[id]
	if n == nil || p == nil {
		return fmt.Errorf("%w: %d", ErrUnknownNode, id)
	}
	p.Children = removeChild(p.Children, n)
	t.forget(n)
	return nil
}

func (t *Tree) forget(n *Node) {
	delete(t.byID, n.ID)
	delete(t.parent, n.ID)
	for _, c := range n.Children {
		t.forget(c)
	}
}

// Move applies a drop reported by the tree view.
func (t *Tree) Move(a treeview.DragDropAction[int]) error {
	src, dst := t.byID[a.Source], t.byID[a.Target]
	oldParent := t.parent[a.Source]
	if src == nil || oldParent == nil || dst == nil {
		return fmt.Errorf("%w: move %d into %d", ErrUnknownNode, a.Source, a.Target)
	}
	if !dst.IsDir {
		return fmt.Errorf("%w: %q", ErrNotDir, dst.Name)
	}
	for n := dst; n != nil; n = t.parent[n.ID] {
		if n == src {
			return fmt.Errorf("%w: %q into %q", ErrCycle, src.Name, dst.Name)
		}
	}

	var anchor *Node
	switch a.Position.Kind {
	case treeview.DropBefore, treeview.DropAfter:
		anchor = t.byID[a.Position.Node]
		if anchor == nil || t.parent[anchor.ID] != dst {
			return fmt.Errorf("%w: anchor %v in %q", ErrUnknownNode, a.Position.Node, dst.Name)
		}
		if anchor == src {
			return nil
		}
	}

	oldParent.Children = removeChild(oldParent.Children, src)
	idx := len(dst.Children)
	switch a.Position.Kind {
	case treeview.DropFirst:
		idx = 0
	case treeview.DropBefore:
		idx = indexOf(dst.Children, anchor)
	case treeview.DropAfter:
		idx = indexOf(dst.Children, anchor) + 1
	}
	dst.Children = append(dst.Children, nil)
	copy(dst.Children[idx+1:], dst.Children[idx:])
	dst.Children[idx] = src
	t.parent[src.ID] = dst
	return nil
}

// Build emits the tree below the root into b.
func (t *Tree) Build(b *treeview.Builder[int]) {
	for _, c := range t.root.Children {
		build(b, c)
	}
}

func build(b *treeview.Builder[int], n *Node) {
	if !n.IsDir {
		b.Leaf(n.ID, n.Name)
		return
	}
	nb := treeview.NewDir(n.ID).Flatten(n.Flatten)
	b.Node(nb, func(ui *treeview.Ui) { ui.Label(n.Name) })
	for _, c := range n.Children {
		build(b, c)
	}
	b.CloseDir()
}

// Names returns the names of dir's children in order, for tests and logs.
func (t *Tree) Names(dir int) []string {
	n := t.byID[dir]
	if n == nil {
		return nil
	}
	out := make([]string, len(n.Children))
	for i, c := range n.Children {
		out[i] = c.Name
	}
	return out
}

func indexOf(children []*Node, n *Node) int {
	for i, c := range children {
		if c == n {
			return i
		}
	}
	return -1
}

func removeChild(children []*Node, n *Node) []*Node {
	i := indexOf(children, n)
	if i < 0 {
		return children
	}
	return append(children[:i], children[i+1:]...)
}
