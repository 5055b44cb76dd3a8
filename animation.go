package treeview

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// AnimationTime is how long a full 0→1 transition of an animated bool takes,
// in seconds.
const AnimationTime float32 = 1.0 / 12.0

// boolAnim tracks one animated bool. The tween runs from the value at the
// moment the target flipped to the new target.
type boolAnim struct {
	target bool
	value  float32
	tween  *gween.Tween
}

// Animations stores smoothly interpolated values keyed by any comparable
// key. Values advance once per frame in Context.BeginFrame; there is no
// global animation manager.
type Animations struct {
	entries map[any]*boolAnim
}

// NewAnimations creates an empty animation store.
func NewAnimations() *Animations {
	return &Animations{entries: make(map[any]*boolAnim)}
}

// AnimateBool returns a value in [0, 1] that follows value: 1 for true, 0 for
// false. The first call for a key snaps to the target; later flips ease over
// AnimationTime, scaled by the remaining distance.
func (a *Animations) AnimateBool(key any, value bool) float64 {
	target := float32(0)
	if value {
		target = 1
	}
	e, ok := a.entries[key]
	if !ok {
		a.entries[key] = &boolAnim{target: value, value: target}
		return float64(target)
	}
	if e.target != value {
		e.target = value
		dist := target - e.value
		if dist < 0 {
			dist = -dist
		}
		if dist == 0 {
			e.tween = nil
		} else {
			e.tween = gween.New(e.value, target, AnimationTime*dist, ease.OutQuad)
		}
	}
	return float64(e.value)
}

// IsAnimating reports whether any tween is still running.
func (a *Animations) IsAnimating() bool {
	for _, e := range a.entries {
		if e.tween != nil {
			return true
		}
	}
	return false
}

// Update advances all tweens by dt seconds.
func (a *Animations) Update(dt float32) {
	for _, e := range a.entries {
		if e.tween == nil {
			continue
		}
		val, finished := e.tween.Update(dt)
		e.value = val
		if finished {
			e.tween = nil
		}
	}
}
