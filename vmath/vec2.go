// Package vmath provides the integer vector math used by the grid.
package vmath

// Vec2 is an integer 2D vector. Used for both positions and dimensions;
// cells are integral so there is no float variant.
type Vec2 struct {
	X, Y int
}

// XY constructs a vector from components
func XY(x, y int) Vec2 {
	return Vec2{X: x, Y: y}
}

// Zero returns the zero vector
func Zero() Vec2 {
	return Vec2{}
}

// Add returns v + other
func (v Vec2) Add(other Vec2) Vec2 {
	return Vec2{X: v.X + other.X, Y: v.Y + other.Y}
}

// Sub returns v - other
func (v Vec2) Sub(other Vec2) Vec2 {
	return Vec2{X: v.X - other.X, Y: v.Y - other.Y}
}

// Mul returns v scaled by factor
func (v Vec2) Mul(factor int) Vec2 {
	return Vec2{X: v.X * factor, Y: v.Y * factor}
}

// Area returns X*Y. Negative components clamp to zero so a degenerate
// dimension yields an empty area rather than a negative allocation size.
func (v Vec2) Area() int {
	x, y := v.X, v.Y
	if x < 0 {
		x = 0
	}
	if y < 0 {
		y = 0
	}
	return x * y
}

// Clamp limits each component to [min, max] of the corresponding bounds
func (v Vec2) Clamp(min, max Vec2) Vec2 {
	out := v
	if out.X < min.X {
		out.X = min.X
	}
	if out.X > max.X {
		out.X = max.X
	}
	if out.Y < min.Y {
		out.Y = min.Y
	}
	if out.Y > max.Y {
		out.Y = max.Y
	}
	return out
}
