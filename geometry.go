package treeview

import "math"

// Vec2 is a 2D vector used for positions, offsets and sizes throughout the API.
type Vec2 struct {
	X, Y float64
}

// Add returns v + o.
func (v Vec2) Add(o Vec2) Vec2 { return Vec2{v.X + o.X, v.Y + o.Y} }

// Sub returns v - o.
func (v Vec2) Sub(o Vec2) Vec2 { return Vec2{v.X - o.X, v.Y - o.Y} }

// Scale returns v * s.
func (v Vec2) Scale(s float64) Vec2 { return Vec2{v.X * s, v.Y * s} }

// Distance returns the Euclidean distance between v and o.
func (v Vec2) Distance(o Vec2) float64 {
	return math.Hypot(v.X-o.X, v.Y-o.Y)
}

// Rotate rotates v by angle radians around the origin.
func (v Vec2) Rotate(angle float64) Vec2 {
	sin, cos := math.Sincos(angle)
	return Vec2{v.X*cos - v.Y*sin, v.X*sin + v.Y*cos}
}

// Range is a general-purpose min/max range. Used for the vertical extent of rows.
type Range struct {
	Min, Max float64
}

// Mid returns the midpoint of the range.
func (r Range) Mid() float64 { return (r.Min + r.Max) / 2 }

// Contains reports whether v lies in [Min, Max).
func (r Range) Contains(v float64) bool { return v >= r.Min && v < r.Max }

// RangePoint returns a range of the given half-width centred on p.
func RangePoint(p, halfWidth float64) Range {
	return Range{Min: p - halfWidth, Max: p + halfWidth}
}

// Rect is an axis-aligned rectangle. The coordinate system has its origin at
// the top-left, with Y increasing downward.
type Rect struct {
	X, Y, Width, Height float64
}

// RectNothing is the rectangle recorded for nodes that were not drawn.
var RectNothing = Rect{}

// RectFromMinMax builds a rect from two corners.
func RectFromMinMax(minPt, maxPt Vec2) Rect {
	return Rect{X: minPt.X, Y: minPt.Y, Width: maxPt.X - minPt.X, Height: maxPt.Y - minPt.Y}
}

// RectFromCenterSize builds a rect of the given size centred on c.
func RectFromCenterSize(c, size Vec2) Rect {
	return Rect{X: c.X - size.X/2, Y: c.Y - size.Y/2, Width: size.X, Height: size.Y}
}

// RectFromRanges builds a rect from horizontal and vertical ranges.
func RectFromRanges(x, y Range) Rect {
	return Rect{X: x.Min, Y: y.Min, Width: x.Max - x.Min, Height: y.Max - y.Min}
}

func (r Rect) Left() float64   { return r.X }
func (r Rect) Right() float64  { return r.X + r.Width }
func (r Rect) Top() float64    { return r.Y }
func (r Rect) Bottom() float64 { return r.Y + r.Height }

// Min returns the top-left corner.
func (r Rect) Min() Vec2 { return Vec2{r.X, r.Y} }

// Max returns the bottom-right corner.
func (r Rect) Max() Vec2 { return Vec2{r.Right(), r.Bottom()} }

// Size returns the width and height as a vector.
func (r Rect) Size() Vec2 { return Vec2{r.Width, r.Height} }

// Center returns the centre point.
func (r Rect) Center() Vec2 { return Vec2{r.X + r.Width/2, r.Y + r.Height/2} }

// LeftCenter returns the midpoint of the left edge.
func (r Rect) LeftCenter() Vec2 { return Vec2{r.X, r.Y + r.Height/2} }

// CenterBottom returns the midpoint of the bottom edge.
func (r Rect) CenterBottom() Vec2 { return Vec2{r.X + r.Width/2, r.Bottom()} }

// XRange returns the horizontal extent.
func (r Rect) XRange() Range { return Range{r.X, r.Right()} }

// YRange returns the vertical extent.
func (r Rect) YRange() Range { return Range{r.Y, r.Bottom()} }

// IsEmpty reports whether the rect has no area.
func (r Rect) IsEmpty() bool { return r.Width <= 0 || r.Height <= 0 }

// Contains reports whether (x, y) lies inside the rectangle. The right and
// bottom edges are exclusive so that adjacent rows never both claim a point.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x < r.X+r.Width &&
		y >= r.Y && y < r.Y+r.Height
}

// ContainsPoint is Contains for a Vec2.
func (r Rect) ContainsPoint(p Vec2) bool { return r.Contains(p.X, p.Y) }

// Expand grows the rect by d on every side.
func (r Rect) Expand(d float64) Rect { return r.Expand2(Vec2{d, d}) }

// Expand2 grows the rect by d.X horizontally and d.Y vertically on each side.
func (r Rect) Expand2(d Vec2) Rect {
	return Rect{X: r.X - d.X, Y: r.Y - d.Y, Width: r.Width + 2*d.X, Height: r.Height + 2*d.Y}
}

// Translate moves the rect by d.
func (r Rect) Translate(d Vec2) Rect {
	r.X += d.X
	r.Y += d.Y
	return r
}

// Union returns the smallest rect containing both r and o. An empty r is ignored.
func (r Rect) Union(o Rect) Rect {
	if r == (Rect{}) {
		return o
	}
	minX := math.Min(r.X, o.X)
	minY := math.Min(r.Y, o.Y)
	maxX := math.Max(r.Right(), o.Right())
	maxY := math.Max(r.Bottom(), o.Bottom())
	return Rect{X: minX, Y: minY, Width: maxX - minX, Height: maxY - minY}
}

// WithBottom returns r with its bottom edge moved to y, keeping the top.
func (r Rect) WithBottom(y float64) Rect {
	r.Height = y - r.Y
	return r
}
