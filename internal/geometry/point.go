// Package geometry provides the integer 2D point type used throughout the
// toolkit for both positions and sizes.
package geometry

import "fmt"

// Point is an immutable pair of signed integers. Depending on context it is a
// screen position (column, row) or a size (width, height). Methods return new
// values; a Point is never mutated in place.
type Point struct {
	X, Y int
}

// Pt is shorthand for Point{X: x, Y: y}.
func Pt(x, y int) Point {
	return Point{X: x, Y: y}
}

// Add returns the component-wise sum of p and q.
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Mul returns the component-wise product of p and q.
// Multiplying by a 0/1 mask projects p onto a single axis.
func (p Point) Mul(q Point) Point {
	return Point{X: p.X * q.X, Y: p.Y * q.Y}
}

// Equals returns true if both components match.
func (p Point) Equals(q Point) bool {
	return p == q
}

// String returns "(x, y)".
func (p Point) String() string {
	return fmt.Sprintf("(%d, %d)", p.X, p.Y)
}
