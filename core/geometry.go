package core

import "math"

// Vec2 is a 2D vector in viewport space (cell units, float for sub-cell layout math)
type Vec2 struct {
	X, Y float64
}

// Add returns the component-wise sum
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{v.X + o.X, v.Y + o.Y}
}

// Sub returns the component-wise difference
func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{v.X - o.X, v.Y - o.Y}
}

// Scale multiplies both components by f
func (v Vec2) Scale(f float64) Vec2 {
	return Vec2{v.X * f, v.Y * f}
}

// IsFinite reports whether both components are finite numbers
func (v Vec2) IsFinite() bool {
	return !math.IsNaN(v.X) && !math.IsInf(v.X, 0) &&
		!math.IsNaN(v.Y) && !math.IsInf(v.Y, 0)
}

// ClampMin replaces negative components with zero
func (v Vec2) ClampMin() Vec2 {
	return Vec2{math.Max(v.X, 0), math.Max(v.Y, 0)}
}

// Rect is an axis-aligned rectangle, Min inclusive, Max exclusive
type Rect struct {
	Min, Max Vec2
}

// NewRect builds a rect from origin and size
func NewRect(x, y, w, h float64) Rect {
	return Rect{Min: Vec2{x, y}, Max: Vec2{x + w, y + h}}
}

// Width returns the horizontal extent (never negative)
func (r Rect) Width() float64 {
	return math.Max(r.Max.X-r.Min.X, 0)
}

// Height returns the vertical extent (never negative)
func (r Rect) Height() float64 {
	return math.Max(r.Max.Y-r.Min.Y, 0)
}

// Size returns width and height as a Vec2
func (r Rect) Size() Vec2 {
	return Vec2{r.Width(), r.Height()}
}

// IsEmpty reports whether the rect has zero area
func (r Rect) IsEmpty() bool {
	return r.Max.X <= r.Min.X || r.Max.Y <= r.Min.Y
}

// Contains reports whether p lies inside the rect ([Min, Max) per axis)
func (r Rect) Contains(p Vec2) bool {
	return p.X >= r.Min.X && p.X < r.Max.X && p.Y >= r.Min.Y && p.Y < r.Max.Y
}

// Intersect returns the overlap of two rects
// Disjoint rects produce an empty rect anchored at the clamp point
func (r Rect) Intersect(o Rect) Rect {
	out := Rect{
		Min: Vec2{math.Max(r.Min.X, o.Min.X), math.Max(r.Min.Y, o.Min.Y)},
		Max: Vec2{math.Min(r.Max.X, o.Max.X), math.Min(r.Max.Y, o.Max.Y)},
	}
	if out.Max.X < out.Min.X {
		out.Max.X = out.Min.X
	}
	if out.Max.Y < out.Min.Y {
		out.Max.Y = out.Min.Y
	}
	return out
}

// Union returns the smallest rect containing both
func (r Rect) Union(o Rect) Rect {
	return Rect{
		Min: Vec2{math.Min(r.Min.X, o.Min.X), math.Min(r.Min.Y, o.Min.Y)},
		Max: Vec2{math.Max(r.Max.X, o.Max.X), math.Max(r.Max.Y, o.Max.Y)},
	}
}

// Inflate grows the rect outward by d on every side (negative d shrinks)
func (r Rect) Inflate(d float64) Rect {
	out := Rect{
		Min: Vec2{r.Min.X - d, r.Min.Y - d},
		Max: Vec2{r.Max.X + d, r.Max.Y + d},
	}
	if out.Max.X < out.Min.X || out.Max.Y < out.Min.Y {
		c := Vec2{(r.Min.X + r.Max.X) / 2, (r.Min.Y + r.Max.Y) / 2}
		return Rect{Min: c, Max: c}
	}
	return out
}

// Unbounded is the starting clip for root nodes before viewport bounding
var Unbounded = Rect{
	Min: Vec2{math.Inf(-1), math.Inf(-1)},
	Max: Vec2{math.Inf(1), math.Inf(1)},
}
