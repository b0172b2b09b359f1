package geom

import "math"

// Point is a world-space coordinate. Origin is top-left, y grows downward.
type Point struct {
	X, Y float64
}

// Add returns p+q.
func (p Point) Add(q Point) Point {
	return Point{p.X + q.X, p.Y + q.Y}
}

// Sub returns p-q.
func (p Point) Sub(q Point) Point {
	return Point{p.X - q.X, p.Y - q.Y}
}

// Scale returns p multiplied by s.
func (p Point) Scale(s float64) Point {
	return Point{p.X * s, p.Y * s}
}

// Len returns the length of p as a vector.
func (p Point) Len() float64 {
	return math.Hypot(p.X, p.Y)
}

// Unit returns p normalized to length 1. A zero vector is divided by 1
// instead, so callers never see NaN.
func (p Point) Unit() Point {
	l := p.Len()
	if l == 0 {
		l = 1
	}
	return Point{p.X / l, p.Y / l}
}

// Perp returns p rotated by 90 degrees: (-y, x).
func (p Point) Perp() Point {
	return Point{-p.Y, p.X}
}

func dot(a, b Point) float64 {
	return a.X*b.X + a.Y*b.Y
}

// Rect is an axis-aligned rectangle anchored at its top-left corner.
type Rect struct {
	X, Y float64
	W, H float64
}

// RectAround returns the rectangle of size w x h centred on c.
func RectAround(c Point, w, h float64) Rect {
	return Rect{X: c.X - w/2, Y: c.Y - h/2, W: w, H: h}
}

// Right returns the x coordinate of the right edge.
func (r Rect) Right() float64 {
	return r.X + r.W
}

// Bottom returns the y coordinate of the bottom edge.
func (r Rect) Bottom() float64 {
	return r.Y + r.H
}

// Intersects reports whether r and other share interior area.
// Rectangles that only touch along an edge do not intersect.
func (r Rect) Intersects(other Rect) bool {
	return r.X < other.Right() && other.X < r.Right() &&
		r.Y < other.Bottom() && other.Y < r.Bottom()
}

// Contains reports whether p lies inside r, edges included.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.X && p.X <= r.Right() && p.Y >= r.Y && p.Y <= r.Bottom()
}

// Corners returns the four corners clockwise from top-left.
func (r Rect) Corners() Quad {
	return Quad{
		{r.X, r.Y},
		{r.Right(), r.Y},
		{r.Right(), r.Bottom()},
		{r.X, r.Bottom()},
	}
}

// Quad is a convex quadrilateral given by its corners in order.
type Quad [4]Point

// OrientedRect returns the rectangle centred on c whose length runs along
// dir and whose breadth runs along the perpendicular of dir.
func OrientedRect(c, dir Point, length, breadth float64) Quad {
	u := dir.Unit()
	n := u.Perp()
	hl := u.Scale(length / 2)
	hb := n.Scale(breadth / 2)
	return Quad{
		c.Sub(hl).Sub(hb),
		c.Add(hl).Sub(hb),
		c.Add(hl).Add(hb),
		c.Sub(hl).Add(hb),
	}
}

// Bounds returns the smallest axis-aligned rectangle containing q.
func (q Quad) Bounds() Rect {
	minX, minY := q[0].X, q[0].Y
	maxX, maxY := minX, minY
	for _, p := range q[1:] {
		minX = math.Min(minX, p.X)
		minY = math.Min(minY, p.Y)
		maxX = math.Max(maxX, p.X)
		maxY = math.Max(maxY, p.Y)
	}
	return Rect{X: minX, Y: minY, W: maxX - minX, H: maxY - minY}
}

// Overlaps reports whether the convex quads q and other share interior
// area, using the separating axis test over the edge normals of both.
func (q Quad) Overlaps(other Quad) bool {
	for _, poly := range [2]Quad{q, other} {
		for i := range poly {
			axis := poly[(i+1)%4].Sub(poly[i]).Perp()
			if axis.X == 0 && axis.Y == 0 {
				continue
			}
			minA, maxA := project(q, axis)
			minB, maxB := project(other, axis)
			if maxA <= minB || maxB <= minA {
				return false
			}
		}
	}
	return true
}

// OverlapsRect reports whether q shares interior area with r.
func (q Quad) OverlapsRect(r Rect) bool {
	if !q.Bounds().Intersects(r) {
		return false
	}
	return q.Overlaps(r.Corners())
}

func project(q Quad, axis Point) (float64, float64) {
	lo := dot(q[0], axis)
	hi := lo
	for _, p := range q[1:] {
		v := dot(p, axis)
		lo = math.Min(lo, v)
		hi = math.Max(hi, v)
	}
	return lo, hi
}

// ClampF restricts v to [lo, hi].
func ClampF(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
