package watch

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/phanxgames/treeview"
)

func writeFile(t *testing.T, path, data string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

func TestSettingsReload(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "tree.yaml")
	writeFile(t, path, "vline_style: none\n")

	w, err := Settings(path, 20*time.Millisecond, nil)
	if err != nil {
		t.Fatalf("Settings: %v", err)
	}
	defer w.Close()

	writeFile(t, path, "vline_style: hook\nrow_layout: aligned_icons\n")

	select {
	case s := <-w.Updates():
		if s.VLineStyle != treeview.VLineHook || s.RowLayout != treeview.RowAlignedIcons {
			t.Errorf("reloaded = %+v, want hook/aligned_icons", s)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("no reload within 5s")
	}
}

func TestSettingsIgnoresInvalidAndOtherFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "tree.yaml")
	writeFile(t, path, "vline_style: none\n")

	w, err := Settings(path, 20*time.Millisecond, nil)
	if err != nil {
		t.Fatalf("Settings: %v", err)
	}
	defer w.Close()

	writeFile(t, filepath.Join(dir, "other.yaml"), "vline_style: hook\n")
	writeFile(t, path, "vline_style: zigzag\n")
	time.Sleep(300 * time.Millisecond)

	if s, ok := w.Poll(); ok {
		t.Errorf("unexpected reload: %+v", s)
	}
}

func TestSettingsMissingDir(t *testing.T) {
	if _, err := Settings(filepath.Join(t.TempDir(), "nope", "tree.yaml"), 0, nil); err == nil {
		t.Fatal("expected error for missing directory")
	}
}
