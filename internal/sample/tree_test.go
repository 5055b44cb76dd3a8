package sample

import (
	"errors"
	"reflect"
	"testing"

	"github.com/phanxgames/treeview"
)

func id(t *testing.T, tr *Tree, dir int, name string) int {
	t.Helper()
	for _, c := range tr.Find(dir).Children {
		if c.Name == name {
			return c.ID
		}
	}
	t.Fatalf("no %q under %d", name, dir)
	return -1
}

func TestMovePositions(t *testing.T) {
	tr := Files()
	readme := id(t, tr, 0, "README.md")
	gomod := id(t, tr, 0, "go.mod")
	src := id(t, tr, 0, "src")
	assets := id(t, tr, 0, "assets")

	tests := []struct {
		name   string
		action treeview.DragDropAction[int]
		dir    int
		want   []string
	}{
		{"first", treeview.DragDropAction[int]{Source: gomod, Target: 0, Position: treeview.First[int]()}, 0,
			[]string{"go.mod", "src", "assets", "README.md"}},
		{"after", treeview.DragDropAction[int]{Source: src, Target: 0, Position: treeview.After(readme)}, 0,
			[]string{"assets", "README.md", "src", "go.mod"}},
		{"before", treeview.DragDropAction[int]{Source: readme, Target: 0, Position: treeview.Before(src)}, 0,
			[]string{"README.md", "src", "assets", "go.mod"}},
		{"last into dir", treeview.DragDropAction[int]{Source: readme, Target: assets, Position: treeview.Last[int]()}, assets,
			[]string{"icons", "font.ttf", "README.md"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tr := Files()
			if err := tr.Move(tt.action); err != nil {
				t.Fatalf("Move: %v", err)
			}
			if got := tr.Names(tt.dir); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("children = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestMoveRejects(t *testing.T) {
	tr := Files()
	src := id(t, tr, 0, "src")
	mainGo := id(t, tr, src, "main.go")
	internal := id(t, tr, src, "internal")

	if err := tr.Move(treeview.DragDropAction[int]{Source: src, Target: internal, Position: treeview.Last[int]()}); !errors.Is(err, ErrCycle) {
		t.Errorf("move into own subtree: err = %v, want ErrCycle", err)
	}
	if err := tr.Move(treeview.DragDropAction[int]{Source: src, Target: mainGo, Position: treeview.Last[int]()}); !errors.Is(err, ErrNotDir) {
		t.Errorf("move into leaf: err = %v, want ErrNotDir", err)
	}
	if err := tr.Move(treeview.DragDropAction[int]{Source: 999, Target: 0, Position: treeview.Last[int]()}); !errors.Is(err, ErrUnknownNode) {
		t.Errorf("unknown source: err = %v, want ErrUnknownNode", err)
	}
	if err := tr.Move(treeview.DragDropAction[int]{Source: src, Target: 0, Position: treeview.Before(mainGo)}); !errors.Is(err, ErrUnknownNode) {
		t.Errorf("anchor outside target: err = %v, want ErrUnknownNode", err)
	}
}

func TestRemove(t *testing.T) {
	tr := Files()
	before := tr.Len()
	assets := id(t, tr, 0, "assets")
	if err := tr.Remove(assets); err != nil {
		t.Fatalf("Remove: %v", err)
	}
	// assets, icons, folder.png, file.png, font.ttf
	if got := tr.Len(); got != before-5 {
		t.Errorf("Len = %d, want %d", got, before-5)
	}
	if tr.Find(assets) != nil {
		t.Error("removed node still found")
	}
	if err := tr.Remove(assets); !errors.Is(err, ErrUnknownNode) {
		t.Errorf("second Remove: err = %v, want ErrUnknownNode", err)
	}
}

func TestBuildFlattensInternal(t *testing.T) {
	tr := Files()
	ctx := treeview.NewContext(treeview.NewMonoFont(8, 16))
	tree := treeview.New[int]("sample")

	ui := ctx.BeginFrame(treeview.RawInput{}, treeview.Rect{Width: 300, Height: 600}, 1.0/60)
	resp := tree.Show(ui, tr.Build)
	ctx.EndFrame()

	if got := len(resp.NodeInfos()); got != tr.Len() {
		t.Fatalf("node infos = %d, want %d", got, tr.Len())
	}
	src := id(t, tr, 0, "src")
	internal := id(t, tr, src, "internal")
	layout := id(t, tr, internal, "layout.go")
	mainGo := id(t, tr, src, "main.go")

	var depthLayout, depthMain int
	for _, info := range resp.NodeInfos() {
		switch info.NodeID {
		case internal:
			if info.Visible {
				t.Error("flattened directory has a row")
			}
		case layout:
			depthLayout = info.Depth
		case mainGo:
			depthMain = info.Depth
		}
	}
	if depthLayout != depthMain {
		t.Errorf("flattened child depth = %d, want sibling depth %d", depthLayout, depthMain)
	}
}
