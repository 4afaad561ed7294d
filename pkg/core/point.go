// pkg/core/point.go
package core

import "math"

// Point is an immutable 2D coordinate pair (horizontal x, vertical y).
// All arithmetic is pure; methods return new values.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Add returns the componentwise sum p + q.
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns the componentwise difference p - q.
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// Scale returns p scaled by c.
func (p Point) Scale(c float64) Point {
	return Point{X: c * p.X, Y: c * p.Y}
}

// Mag returns the Euclidean magnitude of p.
func (p Point) Mag() float64 {
	return math.Sqrt(p.X*p.X + p.Y*p.Y)
}

// Axis selects one of the two coordinate axes.
type Axis int

const (
	AxisX Axis = iota
	AxisY
)

// Other returns the opposite axis.
func (a Axis) Other() Axis {
	if a == AxisX {
		return AxisY
	}
	return AxisX
}

// Component returns the coordinate of p along axis a.
func (p Point) Component(a Axis) float64 {
	if a == AxisX {
		return p.X
	}
	return p.Y
}

// Sum returns the componentwise sum of pts.
func Sum(pts ...Point) Point {
	var s Point
	for _, p := range pts {
		s.X += p.X
		s.Y += p.Y
	}
	return s
}
