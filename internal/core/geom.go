// Package core provides fundamental types and utilities for the block breaker.
// It contains no external dependencies (especially no Bubble Tea) to keep game
// logic pure and testable.
package core

import "math"

// Rect represents an axis-aligned box in screen cells.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Bounds is the playfield rectangle. It is built once per session and
// shared read-only by the ball and the paddle.
type Bounds struct {
	Left, Top, Right, Bottom float64
}

// NewBounds creates bounds anchored at the origin.
func NewBounds(width, height float64) Bounds {
	return Bounds{Left: 0, Top: 0, Right: width, Bottom: height}
}

// Width returns the horizontal extent.
func (b Bounds) Width() float64 {
	return b.Right - b.Left
}

// Height returns the vertical extent.
func (b Bounds) Height() float64 {
	return b.Bottom - b.Top
}

// RectF is an axis-aligned rectangle in playfield coordinates.
type RectF struct {
	X, Y float64 // Top-left corner
	W, H float64
}

// Right returns the x-coordinate of the right edge.
func (r RectF) Right() float64 {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r RectF) Bottom() float64 {
	return r.Y + r.H
}

// ClosestPoint clamps (px, py) into the rectangle.
func (r RectF) ClosestPoint(px, py float64) (float64, float64) {
	return ClampF(px, r.X, r.Right()), ClampF(py, r.Y, r.Bottom())
}

// IntersectsCircle reports whether a circle touches the rectangle.
// Touching at exactly the radius counts as contact.
func (r RectF) IntersectsCircle(cx, cy, radius float64) bool {
	nx, ny := r.ClosestPoint(cx, cy)
	dx := cx - nx
	dy := cy - ny
	return dx*dx+dy*dy <= radius*radius
}

// Vec2 is a 2D vector. Y grows downward, matching screen coordinates.
type Vec2 struct {
	X, Y float64
}

// Len returns the vector magnitude.
func (v Vec2) Len() float64 {
	return math.Hypot(v.X, v.Y)
}

// VecFromAngle builds a vector of the given length pointing at angleDeg.
// Negative angles point up because y grows downward.
func VecFromAngle(angleDeg, length float64) Vec2 {
	rad := DegToRad(angleDeg)
	return Vec2{X: math.Cos(rad) * length, Y: math.Sin(rad) * length}
}

// DegToRad converts degrees to radians.
func DegToRad(deg float64) float64 {
	return deg * math.Pi / 180
}

// Clamp restricts a value to be within [min, max].
func Clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// ClampF restricts a float64 value to be within [min, max].
func ClampF(val, min, max float64) float64 {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}
