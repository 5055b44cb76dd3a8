package treeview

import "github.com/mattn/go-runewidth"

// Font is the interface for text measurement and layout.
type Font interface {
	MeasureString(text string) (width, height float64)
	LineHeight() float64
}

// MonoFont measures text on a fixed cell grid: every rune occupies one or
// two cells depending on its East Asian width. Used by the terminal backend
// and by headless tests.
type MonoFont struct {
	CellWidth  float64
	CellHeight float64
}

// NewMonoFont creates a monospace font with the given cell size.
func NewMonoFont(cellWidth, cellHeight float64) MonoFont {
	return MonoFont{CellWidth: cellWidth, CellHeight: cellHeight}
}

// MeasureString returns the width and height of the rendered text.
func (f MonoFont) MeasureString(s string) (width, height float64) {
	return float64(runewidth.StringWidth(s)) * f.CellWidth, f.CellHeight
}

// LineHeight returns the vertical distance between baselines.
func (f MonoFont) LineHeight() float64 {
	return f.CellHeight
}
