package treeview

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestParseSettings(t *testing.T) {
	s, err := ParseSettings([]byte("override_indent: 12\nvline_style: hook\nrow_layout: aligned_icons_and_labels\n"))
	if err != nil {
		t.Fatalf("ParseSettings: %v", err)
	}
	if s.OverrideIndent == nil || *s.OverrideIndent != 12 {
		t.Errorf("OverrideIndent = %v, want 12", s.OverrideIndent)
	}
	if s.VLineStyle != VLineHook {
		t.Errorf("VLineStyle = %v, want hook", s.VLineStyle)
	}
	if s.RowLayout != RowAlignedIconsAndLabels {
		t.Errorf("RowLayout = %v, want aligned_icons_and_labels", s.RowLayout)
	}
	if got := s.Indent(18); got != 12 {
		t.Errorf("Indent = %v, want 12", got)
	}
}

func TestParseSettingsZeroValue(t *testing.T) {
	s, err := ParseSettings([]byte("{}"))
	if err != nil {
		t.Fatalf("ParseSettings: %v", err)
	}
	if s.OverrideIndent != nil || s.VLineStyle != VLineNone || s.RowLayout != RowCompact {
		t.Errorf("zero settings = %+v", s)
	}
	if got := s.Indent(18); got != 18 {
		t.Errorf("Indent = %v, want ambient 18", got)
	}
}

func TestParseSettingsRejects(t *testing.T) {
	for _, data := range []string{
		"vline_style: zigzag",
		"row_layout: spread",
		"override_indent: -3",
	} {
		_, err := ParseSettings([]byte(data))
		if !errors.Is(err, ErrInvalidSettings) {
			t.Errorf("%q: err = %v, want ErrInvalidSettings", data, err)
		}
	}
	if _, err := ParseSettings([]byte("vline_style: [")); err == nil {
		t.Error("malformed yaml accepted")
	}
}

func TestSettingsRoundTrip(t *testing.T) {
	indent := 7.5
	in := Settings{OverrideIndent: &indent, VLineStyle: VLineVLine, RowLayout: RowCompactAlignedLabels}
	data, err := MarshalSettings(in)
	if err != nil {
		t.Fatalf("MarshalSettings: %v", err)
	}
	if !strings.Contains(string(data), "vline_style: vline") {
		t.Errorf("yaml lacks the enum name:\n%s", data)
	}
	out, err := ParseSettings(data)
	if err != nil {
		t.Fatalf("ParseSettings: %v", err)
	}
	if *out.OverrideIndent != indent || out.VLineStyle != in.VLineStyle || out.RowLayout != in.RowLayout {
		t.Errorf("round trip = %+v, want %+v", out, in)
	}
}

func TestMarshalSettingsInvalid(t *testing.T) {
	if _, err := MarshalSettings(Settings{VLineStyle: 9}); !errors.Is(err, ErrInvalidSettings) {
		t.Errorf("err = %v, want ErrInvalidSettings", err)
	}
}

func TestLoadSettings(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tree.yaml")
	if err := os.WriteFile(path, []byte("vline_style: vline\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	s, err := LoadSettings(path)
	if err != nil {
		t.Fatalf("LoadSettings: %v", err)
	}
	if s.VLineStyle != VLineVLine {
		t.Errorf("VLineStyle = %v", s.VLineStyle)
	}
	if _, err := LoadSettings(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("missing file accepted")
	}
}

func TestRowLayoutSlots(t *testing.T) {
	type slots struct{ reserveCloser, drawCloser, reserveIcon, drawIcon bool }
	tests := []struct {
		layout  RowLayout
		isDir   bool
		hasIcon bool
		want    slots
	}{
		{RowCompact, true, true, slots{true, true, false, false}},
		{RowCompact, false, true, slots{false, false, false, false}},
		{RowCompactAlignedLabels, true, false, slots{true, true, false, false}},
		{RowCompactAlignedLabels, false, true, slots{false, false, true, true}},
		{RowCompactAlignedLabels, false, false, slots{false, false, true, false}},
		{RowAlignedIcons, false, false, slots{true, false, false, false}},
		{RowAlignedIcons, true, true, slots{true, true, true, true}},
		{RowAlignedIconsAndLabels, false, false, slots{true, false, true, false}},
		{RowAlignedIconsAndLabels, true, true, slots{true, true, true, true}},
	}
	for _, tt := range tests {
		var got slots
		got.reserveCloser, got.drawCloser, got.reserveIcon, got.drawIcon = tt.layout.slots(tt.isDir, tt.hasIcon)
		if got != tt.want {
			t.Errorf("%v dir=%v icon=%v: got %+v, want %+v", tt.layout, tt.isDir, tt.hasIcon, got, tt.want)
		}
	}
}
