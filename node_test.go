package treeview

import "testing"

func TestNodeBuilderDefaults(t *testing.T) {
	leaf := NewLeaf(1)
	if leaf.IsDir() || leaf.dropAllowed || !leaf.defaultOpen {
		t.Errorf("leaf defaults = %+v", leaf)
	}
	dir := NewDir(2)
	if !dir.IsDir() || !dir.dropAllowed || !dir.defaultOpen || dir.flatten {
		t.Errorf("dir defaults = %+v", dir)
	}
}

func TestNodeBuilderSettersCopy(t *testing.T) {
	base := NewDir("d")
	changed := base.Flatten(true).DefaultOpen(false).DropAllowed(false)
	if base.flatten || !base.defaultOpen || !base.dropAllowed {
		t.Error("setters mutated the receiver")
	}
	if !changed.flatten || changed.defaultOpen || changed.dropAllowed || changed.ID() != "d" {
		t.Errorf("changed = %+v", changed)
	}
}

func TestNodeBuilderIconReplaced(t *testing.T) {
	var drawn string
	nb := NewLeaf(0).
		Icon(IconFunc(func(*Ui) { drawn = "first" })).
		Icon(IconFunc(func(*Ui) { drawn = "second" }))
	nb.icon.DrawIcon(nil)
	if drawn != "second" {
		t.Errorf("drew %q", drawn)
	}
}
