// Package collision provides axis-aligned overlap tests and contact side
// resolution. Everything here is pure arithmetic on rectangles; nothing
// allocates or fails.
package collision

import (
	"math"

	"github.com/jakecoffman/cp"
)

// ContactEpsilon is the penetration depth at or below which two rectangles
// are considered touching rather than overlapping. It absorbs the rounding
// left behind by snapping a body onto an edge.
const ContactEpsilon = 1e-9

// Rect is an axis-aligned rectangle. X, Y is the top-left corner; Y grows
// downward, matching screen space.
type Rect struct {
	X, Y float64
	W, H float64
}

// NewRect creates a rectangle from its top-left corner and dimensions.
func NewRect(x, y, w, h float64) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// RectFrom derives bounds from a position and a size.
func RectFrom(pos, size cp.Vector) Rect {
	return Rect{X: pos.X, Y: pos.Y, W: size.X, H: size.Y}
}

// Left returns the x-coordinate of the left edge.
func (r Rect) Left() float64 { return r.X }

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() float64 { return r.X + r.W }

// Top returns the y-coordinate of the top edge.
func (r Rect) Top() float64 { return r.Y }

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() float64 { return r.Y + r.H }

// Center returns the center point of the rectangle.
func (r Rect) Center() cp.Vector {
	return cp.Vector{X: r.X + r.W/2, Y: r.Y + r.H/2}
}

// Empty reports whether the rectangle has no area.
// NaN dimensions count as empty.
func (r Rect) Empty() bool {
	return !(r.W > 0) || !(r.H > 0)
}

// Area returns W*H, or 0 for an empty rectangle.
func (r Rect) Area() float64 {
	if r.Empty() {
		return 0
	}
	return r.W * r.H
}

// Intersection returns the overlapping region of r and o.
// The result is empty when they do not overlap.
func (r Rect) Intersection(o Rect) Rect {
	x0 := math.Max(r.Left(), o.Left())
	y0 := math.Max(r.Top(), o.Top())
	x1 := math.Min(r.Right(), o.Right())
	y1 := math.Min(r.Bottom(), o.Bottom())
	if x1 <= x0 || y1 <= y0 {
		return Rect{X: x0, Y: y0}
	}
	return Rect{X: x0, Y: y0, W: x1 - x0, H: y1 - y0}
}

// Overlaps reports whether a and b intersect with positive area on both
// axes. Rectangles that only share an edge do not overlap, and a
// zero-area rectangle never overlaps anything. Overlaps(a, b) always equals
// Overlaps(b, a).
func Overlaps(a, b Rect) bool {
	if a.Empty() || b.Empty() {
		return false
	}
	dx := math.Min(a.Right(), b.Right()) - math.Max(a.Left(), b.Left())
	if !(dx > ContactEpsilon) {
		return false
	}
	dy := math.Min(a.Bottom(), b.Bottom()) - math.Max(a.Top(), b.Top())
	return dy > ContactEpsilon
}
