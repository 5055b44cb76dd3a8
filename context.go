package treeview

import (
	"fmt"
	"hash/fnv"
)

// CursorIcon is the pointer glyph a frame asks the backend to show.
type CursorIcon uint8

const (
	CursorDefault      CursorIcon = iota // platform arrow
	CursorPointingHand                   // hovering something clickable
	CursorAlias                          // carrying a dragged node
)

// ID is a persistent identity used as a key into Context memory.
type ID uint64

// MakeID derives a stable ID from a source string and a caller key.
func MakeID(source string, key any) ID {
	h := fnv.New64a()
	_, _ = fmt.Fprintf(h, "%s\x00%v", source, key)
	return ID(h.Sum64())
}

// With derives a child ID.
func (id ID) With(key any) ID {
	return MakeID(fmt.Sprintf("%016x", uint64(id)), key)
}

// Output is what a frame hands to a backend.
type Output struct {
	Shapes    []Shape
	Cursor    CursorIcon
	Animating bool // true while a tween still needs frames
}

// Context owns everything that lives longer than a frame: style, font,
// input state, animations and per-widget memory. One Context serves one
// window; it is not safe for concurrent use.
type Context struct {
	Style Style
	Font  Font

	input   *Input
	painter *Painter
	anims   *Animations
	memory  map[ID]any
	cursor  CursorIcon
	screen  Rect
	inFrame bool

	// popup rects of the current and the previous frame; widgets below
	// LayerTooltip ignore the pointer while it is over one
	popups     []Rect
	prevPopups []Rect
}

// NewContext creates a context using DefaultStyle and the given font.
func NewContext(font Font) *Context {
	return &Context{
		Style:   DefaultStyle(),
		Font:    font,
		input:   NewInput(),
		painter: NewPainter(),
		anims:   NewAnimations(),
		memory:  make(map[ID]any),
	}
}

// Input returns the input tracker, e.g. for injecting synthetic events.
func (c *Context) Input() *Input { return c.input }

// Painter returns the frame's shape recorder.
func (c *Context) Painter() *Painter { return c.painter }

// Screen returns the rect passed to the current BeginFrame.
func (c *Context) Screen() Rect { return c.screen }

// BeginFrame starts a frame and returns the root Ui covering screen.
// dt is the time since the previous frame in seconds.
func (c *Context) BeginFrame(raw RawInput, screen Rect, dt float64) *Ui {
	if c.inFrame {
		panic("treeview: BeginFrame called twice without EndFrame")
	}
	c.inFrame = true
	c.screen = screen
	c.cursor = CursorDefault
	c.prevPopups, c.popups = c.popups, c.prevPopups[:0]
	c.painter.Reset()
	c.input.begin(raw, dt)
	c.anims.Update(float32(dt))
	return c.newUi(screen, LayerMiddle, false)
}

// EndFrame finishes the frame and returns its drawing output.
func (c *Context) EndFrame() Output {
	c.inFrame = false
	return Output{
		Shapes:    c.painter.Shapes(),
		Cursor:    c.cursor,
		Animating: c.anims.IsAnimating(),
	}
}

// registerPopup marks r as covered by a floating popup.
func (c *Context) registerPopup(r Rect) { c.popups = append(c.popups, r) }

// pointerOverPopup reports whether the pointer is over a popup drawn in
// the previous frame.
func (c *Context) pointerOverPopup() bool {
	pos, ok := c.input.Pos()
	if !ok {
		return false
	}
	for _, r := range c.prevPopups {
		if r.ContainsPoint(pos) {
			return true
		}
	}
	return false
}

// SetCursorIcon requests a cursor glyph for this frame. The last call wins.
func (c *Context) SetCursorIcon(icon CursorIcon) { c.cursor = icon }

// CursorIcon returns the glyph requested so far this frame.
func (c *Context) CursorIcon() CursorIcon { return c.cursor }

// AnimateBool forwards to the context's animation store.
func (c *Context) AnimateBool(key any, value bool) float64 {
	return c.anims.AnimateBool(key, value)
}

// Memory returns the value stored under id.
func (c *Context) Memory(id ID) (any, bool) {
	v, ok := c.memory[id]
	return v, ok
}

// SetMemory stores v under id, replacing any previous value.
func (c *Context) SetMemory(id ID, v any) { c.memory[id] = v }

// ForgetMemory removes the value stored under id.
func (c *Context) ForgetMemory(id ID) { delete(c.memory, id) }

// memoryOrInit returns the *T stored under id, creating it with init on
// first use or when the stored value has another type.
func memoryOrInit[T any](c *Context, id ID, init func() *T) *T {
	if v, ok := c.memory[id]; ok {
		if t, ok := v.(*T); ok {
			return t
		}
	}
	t := init()
	c.memory[id] = t
	return t
}
