// Package termview draws tree view frames into a terminal through tcell.
//
// Layout still runs in pixels: every terminal cell stands for a virtual
// cell of CellSize pixels, and shapes are sampled at cell centres. Use
// Style for spacing that keeps rows on cell boundaries.
package termview

import (
	"math"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/phanxgames/treeview"
)

// CellSize is the virtual pixel size of one terminal cell.
var CellSize = treeview.Vec2{X: 8, Y: 16}

// Font returns a monospace font measuring in virtual cells.
func Font() treeview.MonoFont {
	return treeview.NewMonoFont(CellSize.X, CellSize.Y)
}

// Style returns the default style resized so that one row is one cell
// high and the indent is two cells wide.
func Style() treeview.Style {
	st := treeview.DefaultStyle()
	st.Spacing.ItemSpacing = treeview.Vec2{X: CellSize.X, Y: 0}
	st.Spacing.Indent = 2 * CellSize.X
	st.Spacing.IconWidth = CellSize.X
	st.Spacing.IconWidthInner = CellSize.X
	st.Spacing.InteractHeight = CellSize.Y
	st.Spacing.MenuMargin = CellSize.X
	st.Visuals.Hovered.Expansion = 0
	return st
}

// Rasterizer converts shapes to cells.
type Rasterizer struct {
	// Background is blended under translucent fills where a cell has no
	// background yet.
	Background treeview.Color
}

// Draw clears s and paints shapes onto it. It does not call s.Show.
func (r *Rasterizer) Draw(s tcell.Screen, shapes []treeview.Shape) {
	s.Clear()
	for i := range shapes {
		sh := &shapes[i]
		switch sh.Kind {
		case treeview.ShapeRect:
			r.fillRect(s, sh.Rect, sh.Fill)
		case treeview.ShapeLine:
			if len(sh.Points) == 2 {
				r.line(s, sh.Points[0], sh.Points[1], sh.Stroke.Color)
			}
		case treeview.ShapePolygon:
			r.triangle(s, sh.Points, sh.Fill)
		case treeview.ShapeText:
			r.text(s, sh.Rect, sh.Text, sh.Fill)
		}
	}
}

// cellSpan returns the cells whose centres lie in [lo, hi).
func cellSpan(lo, hi, size float64) (int, int) {
	first := int(math.Ceil(lo/size - 0.5))
	last := int(math.Ceil(hi/size-0.5)) - 1
	return first, last
}

func cellOf(p treeview.Vec2) (int, int) {
	return int(math.Floor(p.X / CellSize.X)), int(math.Floor(p.Y / CellSize.Y))
}

func (r *Rasterizer) fillRect(s tcell.Screen, rect treeview.Rect, fill treeview.Color) {
	if fill.A <= 0 {
		return
	}
	w, h := s.Size()
	x0, x1 := cellSpan(rect.Left(), rect.Right(), CellSize.X)
	y0, y1 := cellSpan(rect.Top(), rect.Bottom(), CellSize.Y)
	for y := max(y0, 0); y <= min(y1, h-1); y++ {
		for x := max(x0, 0); x <= min(x1, w-1); x++ {
			ch, comb, st, _ := s.GetContent(x, y)
			_, bg, _ := st.Decompose()
			s.SetContent(x, y, ch, comb, st.Background(r.blend(bg, fill)))
		}
	}
}

func (r *Rasterizer) line(s tcell.Screen, a, b treeview.Vec2, c treeview.Color) {
	switch {
	case a.X == b.X:
		x, _ := cellOf(a)
		y0, y1 := cellSpan(math.Min(a.Y, b.Y), math.Max(a.Y, b.Y)+CellSize.Y*0.5, CellSize.Y)
		for y := y0; y <= y1; y++ {
			r.glyph(s, x, y, '│', c)
		}
	case a.Y == b.Y:
		_, y := cellOf(a)
		x0, x1 := cellSpan(math.Min(a.X, b.X), math.Max(a.X, b.X), CellSize.X)
		for x := x0; x <= x1; x++ {
			ch, _, _, _ := s.GetContent(x, y)
			glyph := '─'
			if ch == '│' {
				glyph = '├'
				if below, _, _, _ := s.GetContent(x, y+1); below != '│' {
					glyph = '└'
				}
			}
			r.glyph(s, x, y, glyph, c)
		}
	}
}

// triangle draws a closer as an arrow glyph pointing from the centroid to
// the last vertex.
func (r *Rasterizer) triangle(s tcell.Screen, pts []treeview.Vec2, c treeview.Color) {
	if len(pts) < 3 {
		return
	}
	var centroid treeview.Vec2
	for _, p := range pts {
		centroid = centroid.Add(p)
	}
	centroid = centroid.Scale(1 / float64(len(pts)))
	dir := pts[len(pts)-1].Sub(centroid)

	glyph := '▸'
	switch {
	case math.Abs(dir.Y) >= math.Abs(dir.X) && dir.Y > 0:
		glyph = '▾'
	case math.Abs(dir.Y) >= math.Abs(dir.X):
		glyph = '▴'
	case dir.X < 0:
		glyph = '◂'
	}
	x, y := cellOf(centroid)
	r.glyph(s, x, y, glyph, c)
}

func (r *Rasterizer) text(s tcell.Screen, rect treeview.Rect, text string, c treeview.Color) {
	x, y := cellOf(rect.Min().Add(CellSize.Scale(0.5)))
	for _, ch := range text {
		r.glyph(s, x, y, ch, c)
		x += max(runewidth.RuneWidth(ch), 1)
	}
}

// glyph sets the rune and foreground of one cell, keeping its background.
func (r *Rasterizer) glyph(s tcell.Screen, x, y int, ch rune, c treeview.Color) {
	w, h := s.Size()
	if x < 0 || y < 0 || x >= w || y >= h {
		return
	}
	_, _, st, _ := s.GetContent(x, y)
	_, bg, _ := st.Decompose()
	fg := r.blend(bg, c)
	s.SetContent(x, y, ch, nil, st.Foreground(fg))
}

// blend composites src over the cell color dst.
func (r *Rasterizer) blend(dst tcell.Color, src treeview.Color) tcell.Color {
	base := r.Background
	if dst != tcell.ColorDefault && dst.Valid() {
		cr, cg, cb := dst.RGB()
		base = treeview.Color{R: float64(cr) / 255, G: float64(cg) / 255, B: float64(cb) / 255, A: 1}
	}
	a := math.Max(0, math.Min(1, src.A))
	out := treeview.Color{
		R: base.R + (src.R-base.R)*a,
		G: base.G + (src.G-base.G)*a,
		B: base.B + (src.B-base.B)*a,
		A: 1,
	}
	n := out.NRGBA()
	return tcell.NewRGBColor(int32(n.R), int32(n.G), int32(n.B))
}
