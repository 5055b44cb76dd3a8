package treeview

// syntheticEvent is a single injected frame of input. Each queued event is
// consumed by exactly one frame, in place of the backend's real input.
type syntheticEvent struct {
	pos       Vec2
	primary   bool
	secondary bool
	keys      []Key
	// keepPointer reuses the previous frame's pointer state, so key presses
	// can be injected without disturbing an ongoing press or drag.
	keepPointer bool
}

func (e syntheticEvent) resolve(in *Input) RawInput {
	if e.keepPointer {
		return RawInput{
			Pointer:        in.pos,
			PointerPresent: in.present,
			PrimaryDown:    in.down,
			SecondaryDown:  in.secondaryDown,
			Keys:           e.keys,
		}
	}
	return RawInput{
		Pointer:        e.pos,
		PointerPresent: true,
		PrimaryDown:    e.primary,
		SecondaryDown:  e.secondary,
		Keys:           e.keys,
	}
}

func (in *Input) popInjected() (syntheticEvent, bool) {
	if len(in.injectQueue) == 0 {
		return syntheticEvent{}, false
	}
	evt := in.injectQueue[0]
	copy(in.injectQueue, in.injectQueue[1:])
	in.injectQueue = in.injectQueue[:len(in.injectQueue)-1]
	return evt, true
}

// Pending returns the number of injected frames not yet consumed.
func (in *Input) Pending() int { return len(in.injectQueue) }

// InjectHover queues a frame with the pointer at (x, y) and no button held.
func (in *Input) InjectHover(x, y float64) {
	in.injectQueue = append(in.injectQueue, syntheticEvent{pos: Vec2{x, y}})
}

// InjectPress queues a frame with the primary button held at (x, y).
func (in *Input) InjectPress(x, y float64) {
	in.injectQueue = append(in.injectQueue, syntheticEvent{pos: Vec2{x, y}, primary: true})
}

// InjectMove queues a frame with the pointer moved to (x, y) while the
// primary button stays held. Use between InjectPress and InjectRelease.
func (in *Input) InjectMove(x, y float64) {
	in.InjectPress(x, y)
}

// InjectRelease queues a frame releasing the primary button at (x, y).
func (in *Input) InjectRelease(x, y float64) {
	in.InjectHover(x, y)
}

// InjectClick queues a press followed by a release at the same
// coordinates. Consumes two frames.
func (in *Input) InjectClick(x, y float64) {
	in.InjectPress(x, y)
	in.InjectRelease(x, y)
}

// InjectDoubleClick queues two clicks. Consumes four frames.
func (in *Input) InjectDoubleClick(x, y float64) {
	in.InjectClick(x, y)
	in.InjectClick(x, y)
}

// InjectSecondaryClick queues a right-button press and release at (x, y).
func (in *Input) InjectSecondaryClick(x, y float64) {
	in.injectQueue = append(in.injectQueue,
		syntheticEvent{pos: Vec2{x, y}, secondary: true},
		syntheticEvent{pos: Vec2{x, y}},
	)
}

// InjectKey queues a frame pressing k without changing the pointer.
func (in *Input) InjectKey(k Key) {
	in.injectQueue = append(in.injectQueue, syntheticEvent{keys: []Key{k}, keepPointer: true})
}

// InjectDrag queues a full drag sequence: press at (fromX, fromY),
// linearly interpolated moves over frames-2 intermediate frames, and
// release at (toX, toY). The total sequence consumes `frames` frames.
// Minimum frames is 2 (press + release).
func (in *Input) InjectDrag(fromX, fromY, toX, toY float64, frames int) {
	if frames < 2 {
		frames = 2
	}
	in.InjectPress(fromX, fromY)
	steps := frames - 2
	for i := 1; i <= steps; i++ {
		t := float64(i) / float64(steps+1)
		x := fromX + (toX-fromX)*t
		y := fromY + (toY-fromY)*t
		in.InjectMove(x, y)
	}
	in.InjectRelease(toX, toY)
}
