package treeview

import (
	"math"
	"testing"
)

func TestAnimateBoolFirstCallSnaps(t *testing.T) {
	a := NewAnimations()
	if v := a.AnimateBool("open", true); v != 1 {
		t.Errorf("first true = %f, want 1", v)
	}
	if v := a.AnimateBool("closed", false); v != 0 {
		t.Errorf("first false = %f, want 0", v)
	}
	if a.IsAnimating() {
		t.Error("snapped values should not animate")
	}
}

func TestAnimateBoolEasesToTarget(t *testing.T) {
	a := NewAnimations()
	a.AnimateBool("k", true)

	if v := a.AnimateBool("k", false); v != 1 {
		t.Errorf("value right after flip = %f, want 1", v)
	}
	if !a.IsAnimating() {
		t.Fatal("expected a running tween after flip")
	}

	a.Update(AnimationTime / 2)
	mid := a.AnimateBool("k", false)
	if mid <= 0 || mid >= 1 {
		t.Errorf("midway value = %f, want in (0, 1)", mid)
	}

	a.Update(AnimationTime)
	if v := a.AnimateBool("k", false); math.Abs(v) > 1e-6 {
		t.Errorf("final value = %f, want 0", v)
	}
	if a.IsAnimating() {
		t.Error("tween should be finished")
	}
}

func TestAnimateBoolReverseMidway(t *testing.T) {
	a := NewAnimations()
	a.AnimateBool("k", false)
	a.AnimateBool("k", true)
	a.Update(AnimationTime / 2)
	mid := a.AnimateBool("k", true)

	// Reversing starts from the current value, not from the end.
	if v := a.AnimateBool("k", false); math.Abs(v-mid) > 1e-6 {
		t.Errorf("value after reverse = %f, want %f", v, mid)
	}
	a.Update(AnimationTime)
	if v := a.AnimateBool("k", false); math.Abs(v) > 1e-6 {
		t.Errorf("final value = %f, want 0", v)
	}
}

func TestAnimateBoolKeysIndependent(t *testing.T) {
	a := NewAnimations()
	a.AnimateBool(1, true)
	a.AnimateBool(2, true)
	a.AnimateBool(1, false)
	a.Update(AnimationTime * 2)

	if v := a.AnimateBool(2, true); v != 1 {
		t.Errorf("untouched key = %f, want 1", v)
	}
}
