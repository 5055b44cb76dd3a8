// Package ebitenview draws treeview frames with Ebitengine and feeds it
// Ebitengine's mouse and keyboard state.
package ebitenview

import (
	"image"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/phanxgames/treeview"
)

// cornerSegments is the number of segments used per rounded corner.
const cornerSegments = 4

// Renderer draws treeview shapes onto an ebiten image.
type Renderer struct {
	font *TTFFont

	white *ebiten.Image
	verts []ebiten.Vertex
	inds  []uint16
}

// NewRenderer creates a renderer drawing text with font.
func NewRenderer(font *TTFFont) *Renderer {
	white := ebiten.NewImage(3, 3)
	white.Fill(color.White)
	return &Renderer{
		font:  font,
		white: white.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image),
	}
}

// Draw paints shapes in order.
func (r *Renderer) Draw(dst *ebiten.Image, shapes []treeview.Shape) {
	for i := range shapes {
		s := &shapes[i]
		switch s.Kind {
		case treeview.ShapeRect:
			r.drawRect(dst, s)
		case treeview.ShapeLine:
			if len(s.Points) == 2 && s.Stroke.Width > 0 {
				a, b := s.Points[0], s.Points[1]
				vector.StrokeLine(dst, float32(a.X), float32(a.Y), float32(b.X), float32(b.Y),
					float32(s.Stroke.Width), s.Stroke.Color.NRGBA(), true)
			}
		case treeview.ShapePolygon:
			r.fillPolygon(dst, s.Points, s.Fill)
		case treeview.ShapeText:
			r.drawText(dst, s)
		}
	}
}

func (r *Renderer) drawRect(dst *ebiten.Image, s *treeview.Shape) {
	rect := s.Rect
	if rect.IsEmpty() {
		return
	}
	if s.Fill.A > 0 {
		if s.Rounding > 0 {
			r.fillPolygon(dst, roundedRectPoints(rect, s.Rounding), s.Fill)
		} else {
			vector.DrawFilledRect(dst, float32(rect.X), float32(rect.Y), float32(rect.Width), float32(rect.Height),
				s.Fill.NRGBA(), true)
		}
	}
	if s.Stroke.Width > 0 && s.Stroke.Color.A > 0 {
		vector.StrokeRect(dst, float32(rect.X), float32(rect.Y), float32(rect.Width), float32(rect.Height),
			float32(s.Stroke.Width), s.Stroke.Color.NRGBA(), true)
	}
}

// fillPolygon draws a convex polygon as a triangle fan.
func (r *Renderer) fillPolygon(dst *ebiten.Image, pts []treeview.Vec2, c treeview.Color) {
	if len(pts) < 3 || c.A <= 0 {
		return
	}
	r.verts = r.verts[:0]
	r.inds = r.inds[:0]
	cr, cg, cb, ca := float32(c.R), float32(c.G), float32(c.B), float32(c.A)
	for _, p := range pts {
		r.verts = append(r.verts, ebiten.Vertex{
			DstX: float32(p.X), DstY: float32(p.Y),
			SrcX: 1, SrcY: 1,
			ColorR: cr, ColorG: cg, ColorB: cb, ColorA: ca,
		})
	}
	for i := 1; i+1 < len(pts); i++ {
		r.inds = append(r.inds, 0, uint16(i), uint16(i+1))
	}
	op := &ebiten.DrawTrianglesOptions{AntiAlias: true}
	dst.DrawTriangles(r.verts, r.inds, r.white, op)
}

func (r *Renderer) drawText(dst *ebiten.Image, s *treeview.Shape) {
	if r.font == nil || s.Text == "" {
		return
	}
	op := &text.DrawOptions{}
	op.GeoM.Translate(s.Rect.X, s.Rect.Y)
	op.ColorScale.ScaleWithColor(s.Fill.NRGBA())
	op.LineSpacing = r.font.lh
	text.Draw(dst, s.Text, r.font.face, op)
}

// roundedRectPoints returns the outline of a rounded rectangle, clockwise
// from the top-left arc.
func roundedRectPoints(r treeview.Rect, rounding float64) []treeview.Vec2 {
	rad := math.Min(rounding, math.Min(r.Width, r.Height)/2)
	centers := [4]treeview.Vec2{
		{X: r.Left() + rad, Y: r.Top() + rad},
		{X: r.Right() - rad, Y: r.Top() + rad},
		{X: r.Right() - rad, Y: r.Bottom() - rad},
		{X: r.Left() + rad, Y: r.Bottom() - rad},
	}
	pts := make([]treeview.Vec2, 0, 4*(cornerSegments+1))
	for corner, c := range centers {
		start := math.Pi + float64(corner)*math.Pi/2
		for i := 0; i <= cornerSegments; i++ {
			a := start + float64(i)*(math.Pi/2)/cornerSegments
			pts = append(pts, treeview.Vec2{X: c.X + rad*math.Cos(a), Y: c.Y + rad*math.Sin(a)})
		}
	}
	return pts
}
