// Package snapshot renders a frame's shapes to PNG or SVG without a
// window, for docs, golden tests and bug reports.
package snapshot

import (
	"fmt"
	"io"
	"math"

	"git.sr.ht/~sbinet/gg"
	svg "github.com/ajstarks/svgo"

	"github.com/phanxgames/treeview"
)

// Options controls the canvas.
type Options struct {
	Width, Height int
	Background    treeview.Color
}

// WritePNG rasterises shapes and encodes the result as PNG.
func WritePNG(w io.Writer, shapes []treeview.Shape, opts Options) error {
	dc := gg.NewContext(opts.Width, opts.Height)
	setColor(dc, opts.Background)
	dc.Clear()

	for i := range shapes {
		s := &shapes[i]
		switch s.Kind {
		case treeview.ShapeRect:
			setColor(dc, s.Fill)
			if s.Rounding > 0 {
				dc.DrawRoundedRectangle(s.Rect.X, s.Rect.Y, s.Rect.Width, s.Rect.Height, s.Rounding)
			} else {
				dc.DrawRectangle(s.Rect.X, s.Rect.Y, s.Rect.Width, s.Rect.Height)
			}
			dc.Fill()
			if s.Stroke.Width > 0 && s.Stroke.Color.A > 0 {
				setColor(dc, s.Stroke.Color)
				dc.SetLineWidth(s.Stroke.Width)
				dc.DrawRectangle(s.Rect.X, s.Rect.Y, s.Rect.Width, s.Rect.Height)
				dc.Stroke()
			}
		case treeview.ShapeLine:
			if len(s.Points) != 2 {
				continue
			}
			setColor(dc, s.Stroke.Color)
			dc.SetLineWidth(math.Max(s.Stroke.Width, 1))
			dc.DrawLine(s.Points[0].X, s.Points[0].Y, s.Points[1].X, s.Points[1].Y)
			dc.Stroke()
		case treeview.ShapePolygon:
			if len(s.Points) < 3 {
				continue
			}
			setColor(dc, s.Fill)
			dc.MoveTo(s.Points[0].X, s.Points[0].Y)
			for _, p := range s.Points[1:] {
				dc.LineTo(p.X, p.Y)
			}
			dc.ClosePath()
			dc.Fill()
		case treeview.ShapeText:
			setColor(dc, s.Fill)
			dc.DrawStringAnchored(s.Text, s.Rect.X, s.Rect.Center().Y, 0, 0.5)
		}
	}

	if err := dc.EncodePNG(w); err != nil {
		return fmt.Errorf("snapshot: encode png: %w", err)
	}
	return nil
}

func setColor(dc *gg.Context, c treeview.Color) {
	dc.SetRGBA(c.R, c.G, c.B, c.A)
}

// WriteSVG writes shapes as an SVG document. Coordinates are rounded to
// whole pixels.
func WriteSVG(w io.Writer, shapes []treeview.Shape, opts Options) {
	canvas := svg.New(w)
	canvas.Start(opts.Width, opts.Height)
	canvas.Rect(0, 0, opts.Width, opts.Height, fillStyle(opts.Background))

	for i := range shapes {
		s := &shapes[i]
		switch s.Kind {
		case treeview.ShapeRect:
			x, y, rw, rh := px(s.Rect.X), px(s.Rect.Y), px(s.Rect.Width), px(s.Rect.Height)
			style := fillStyle(s.Fill)
			if s.Stroke.Width > 0 && s.Stroke.Color.A > 0 {
				style += ";" + strokeStyle(s.Stroke)
			}
			if r := px(s.Rounding); r > 0 {
				canvas.Roundrect(x, y, rw, rh, r, r, style)
			} else {
				canvas.Rect(x, y, rw, rh, style)
			}
		case treeview.ShapeLine:
			if len(s.Points) != 2 {
				continue
			}
			a, b := s.Points[0], s.Points[1]
			canvas.Line(px(a.X), px(a.Y), px(b.X), px(b.Y), strokeStyle(s.Stroke))
		case treeview.ShapePolygon:
			xs := make([]int, len(s.Points))
			ys := make([]int, len(s.Points))
			for j, p := range s.Points {
				xs[j], ys[j] = px(p.X), px(p.Y)
			}
			canvas.Polygon(xs, ys, fillStyle(s.Fill))
		case treeview.ShapeText:
			canvas.Text(px(s.Rect.X), px(s.Rect.Bottom()), s.Text,
				fillStyle(s.Fill)+";font-family:sans-serif;font-size:"+fmt.Sprint(px(s.Rect.Height))+"px")
		}
	}
	canvas.End()
}

func px(v float64) int { return int(math.Round(v)) }

func fillStyle(c treeview.Color) string {
	n := c.NRGBA()
	return fmt.Sprintf("fill:rgb(%d,%d,%d);fill-opacity:%.3g", n.R, n.G, n.B, c.A)
}

func strokeStyle(s treeview.Stroke) string {
	n := s.Color.NRGBA()
	return fmt.Sprintf("stroke:rgb(%d,%d,%d);stroke-opacity:%.3g;stroke-width:%.3g",
		n.R, n.G, n.B, s.Color.A, math.Max(s.Width, 1))
}
