package treeview

import (
	"math"
	"testing"
)

func TestParseHex(t *testing.T) {
	c, err := ParseHex("#005c80")
	if err != nil {
		t.Fatalf("ParseHex: %v", err)
	}
	if c.A != 1 || math.Abs(c.G-92.0/255) > 1e-9 || math.Abs(c.B-128.0/255) > 1e-9 {
		t.Errorf("ParseHex = %+v", c)
	}
	if c.Hex() != "#005c80" {
		t.Errorf("Hex = %q", c.Hex())
	}

	c, err = ParseHex("#ffffff40")
	if err != nil {
		t.Fatalf("ParseHex with alpha: %v", err)
	}
	if math.Abs(c.A-64.0/255) > 1e-9 {
		t.Errorf("alpha = %v", c.A)
	}
	if c.Hex() != "#ffffff40" {
		t.Errorf("Hex = %q", c.Hex())
	}

	for _, bad := range []string{"", "red", "#gg0000", "#ffffffzz"} {
		if _, err := ParseHex(bad); err == nil {
			t.Errorf("ParseHex(%q) succeeded", bad)
		}
	}
}

func TestColorMultiply(t *testing.T) {
	c := Color{0.2, 0.4, 0.6, 0.8}.Multiply(0.5)
	if c.R != 0.2 || c.G != 0.4 || c.B != 0.6 {
		t.Errorf("Multiply changed rgb: %+v", c)
	}
	if math.Abs(c.A-0.4) > 1e-9 {
		t.Errorf("A = %v, want 0.4", c.A)
	}
	if c := ColorWhite.Multiply(3); c.A != 1 {
		t.Errorf("alpha not clamped: %v", c.A)
	}
}

func TestColorLerpEndpoints(t *testing.T) {
	a := Color{1, 0, 0, 1}
	b := Color{0, 0, 1, 0}
	if got := a.Lerp(b, 0); math.Abs(got.R-1) > 1e-3 || got.A != 1 {
		t.Errorf("Lerp(0) = %+v", got)
	}
	if got := a.Lerp(b, 1); math.Abs(got.B-1) > 1e-3 || got.A != 0 {
		t.Errorf("Lerp(1) = %+v", got)
	}
	if got := a.Lerp(b, 0.5); math.Abs(got.A-0.5) > 1e-9 {
		t.Errorf("Lerp(0.5) alpha = %v", got.A)
	}
}

func TestColorNRGBA(t *testing.T) {
	n := Color{1, 0.5, 0, 0.25}.NRGBA()
	if n.R != 255 || n.G != 128 || n.B != 0 || n.A != 64 {
		t.Errorf("NRGBA = %+v", n)
	}
}
