// Package entity defines domain entities for focus navigation.
package entity

import "math"

// Point is a position in a navigation context's coordinate space.
// X grows to the right, Y grows downward.
type Point struct {
	X, Y float64
}

// Vector is a displacement between two points.
type Vector struct {
	DX, DY float64
}

// Sub returns the vector from q to p.
func (p Point) Sub(q Point) Vector {
	return Vector{DX: p.X - q.X, DY: p.Y - q.Y}
}

// Add returns p displaced by v.
func (p Point) Add(v Vector) Point {
	return Point{X: p.X + v.DX, Y: p.Y + v.DY}
}

// Len returns the magnitude of the vector.
func (v Vector) Len() float64 {
	return math.Hypot(v.DX, v.DY)
}

// Sub returns v - w.
func (v Vector) Sub(w Vector) Vector {
	return Vector{DX: v.DX - w.DX, DY: v.DY - w.DY}
}

// IsZero reports whether the vector has no length.
func (v Vector) IsZero() bool {
	return v.DX == 0 && v.DY == 0
}

// Angle returns the direction of v in degrees within [0, 360).
// 0 is up (negative Y) and angles increase clockwise, so right is 90,
// down is 180 and left is 270. The zero vector has angle 0.
func (v Vector) Angle() float64 {
	if v.IsZero() {
		return 0
	}
	// atan2(dx, -dy) measures clockwise from the negative Y axis.
	deg := math.Atan2(v.DX, -v.DY) * 180 / math.Pi
	return NormalizeAngle(deg)
}

// VectorFromAngle builds a vector of the given length pointing at angle
// degrees, using the same convention as Vector.Angle.
func VectorFromAngle(deg, radius float64) Vector {
	rad := deg * math.Pi / 180
	return Vector{
		DX: radius * math.Sin(rad),
		DY: -radius * math.Cos(rad),
	}
}

// NormalizeAngle maps any angle in degrees to [0, 360).
func NormalizeAngle(deg float64) float64 {
	deg = math.Mod(deg, 360)
	if deg < 0 {
		deg += 360
	}
	if deg >= 360 {
		deg = 0
	}
	return deg
}

// AngleDelta returns the smallest angular distance between a and b in
// degrees, within [0, 180].
func AngleDelta(a, b float64) float64 {
	d := math.Abs(NormalizeAngle(a) - NormalizeAngle(b))
	return math.Min(d, 360-d)
}

// Rect is an axis-aligned rectangle in context space.
type Rect struct {
	X, Y float64 // Top-left corner
	W, H float64
}

// Center returns the center point of the rectangle.
func (r Rect) Center() Point {
	return Point{X: r.X + r.W/2, Y: r.Y + r.H/2}
}

// Contains reports whether p lies inside the rectangle (edges included).
func (r Rect) Contains(p Point) bool {
	return p.X >= r.X && p.X <= r.X+r.W && p.Y >= r.Y && p.Y <= r.Y+r.H
}
