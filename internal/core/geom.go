// Package core provides fundamental types and utilities shared by the match
// engine and its hosts. It contains no external dependencies (especially no
// Bubble Tea or Ebiten) to keep game logic pure and testable.
package core

// Box is an axis-aligned bounding box in arena coordinates.
// X, Y is the top-left corner; the arena's y axis grows downward.
type Box struct {
	X, Y float64
	W, H float64
}

// NewBox creates a box with the given top-left corner and dimensions.
func NewBox(x, y, w, h float64) Box {
	return Box{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (b Box) Right() float64 {
	return b.X + b.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (b Box) Bottom() float64 {
	return b.Y + b.H
}

// CenterX returns the horizontal center.
func (b Box) CenterX() float64 {
	return (b.X + b.Right()) / 2
}

// CenterY returns the vertical center.
func (b Box) CenterY() float64 {
	return (b.Y + b.Bottom()) / 2
}

// Translate returns the box moved by (dx, dy).
func (b Box) Translate(dx, dy float64) Box {
	b.X += dx
	b.Y += dy
	return b
}

// Overlaps reports whether two boxes overlap.
// Boxes are separated only when one lies strictly beyond the other on some
// axis, so boxes whose edges exactly touch count as overlapping.
func (b Box) Overlaps(other Box) bool {
	return !(b.Right() < other.X || b.X > other.Right() ||
		b.Bottom() < other.Y || b.Y > other.Bottom())
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
