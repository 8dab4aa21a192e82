package core

import "math"

// intersectEpsilon is the determinant tolerance below which two segments
// are treated as parallel (defined no-hit, never a fault).
const intersectEpsilon = 1e-8

// Vec2 is a 2D vector in world space. Y grows downward, matching screen
// coordinates, so gravity is a positive Y acceleration.
type Vec2 struct {
	X, Y float64
}

// Add returns the component-wise sum of two vectors.
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{v.X + o.X, v.Y + o.Y}
}

// Sub returns the component-wise difference of two vectors.
func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{v.X - o.X, v.Y - o.Y}
}

// Scale returns the vector multiplied by a scalar.
func (v Vec2) Scale(f float64) Vec2 {
	return Vec2{v.X * f, v.Y * f}
}

// Len returns the Euclidean length of the vector.
func (v Vec2) Len() float64 {
	return math.Hypot(v.X, v.Y)
}

// Rotate returns p rotated about center by angleDeg degrees.
// With Y growing downward a positive angle is a clockwise turn on screen.
func Rotate(p, center Vec2, angleDeg float64) Vec2 {
	a := angleDeg * math.Pi / 180
	s, c := math.Sin(a), math.Cos(a)
	dx, dy := p.X-center.X, p.Y-center.Y
	return Vec2{
		X: dx*c - dy*s + center.X,
		Y: dx*s + dy*c + center.Y,
	}
}

// SegmentIntersect tests segments a-b and c-d for intersection using the
// parametric line equations. Parallel or near-parallel segments (determinant
// below intersectEpsilon) report no hit. The intersection must fall within
// both segments, endpoints included.
func SegmentIntersect(a, b, c, d Vec2) (Vec2, bool) {
	den := (a.X-b.X)*(c.Y-d.Y) - (a.Y-b.Y)*(c.X-d.X)
	if math.Abs(den) < intersectEpsilon {
		return Vec2{}, false
	}

	t := ((a.X-c.X)*(c.Y-d.Y) - (a.Y-c.Y)*(c.X-d.X)) / den
	u := ((a.X-c.X)*(a.Y-b.Y) - (a.Y-c.Y)*(a.X-b.X)) / den
	if t < 0 || t > 1 || u < 0 || u > 1 {
		return Vec2{}, false
	}

	return Vec2{
		X: a.X + t*(b.X-a.X),
		Y: a.Y + t*(b.Y-a.Y),
	}, true
}

// RectF is an axis-aligned rectangle in world space.
type RectF struct {
	X, Y float64 // Top-left corner
	W, H float64
}

// NewRectF creates a world-space rectangle.
func NewRectF(x, y, w, h float64) RectF {
	return RectF{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r RectF) Right() float64 {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r RectF) Bottom() float64 {
	return r.Y + r.H
}

// CenterX returns the x-coordinate of the rectangle's center.
func (r RectF) CenterX() float64 {
	return r.X + r.W/2
}

// ContainsX reports whether x lies within the rectangle's horizontal
// extent, edges included.
func (r RectF) ContainsX(x float64) bool {
	return x >= r.X && x <= r.Right()
}
