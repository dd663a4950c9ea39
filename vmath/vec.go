// Package vmath provides double-precision vector and matrix math for
// graphics-style transforms. Matrices are column-major.
package vmath

import "math"

// Pi is the circle constant used by the angle helpers.
const Pi = math.Pi

// Vec2 is a 2D vector.
type Vec2 struct {
	X, Y float64
}

// Vec3 is a 3D vector.
type Vec3 struct {
	X, Y, Z float64
}

// Deg2Rad converts degrees to radians.
func Deg2Rad(v float64) float64 {
	return (Pi / 180.0) * v
}

// Rad2Deg converts radians to degrees.
func Rad2Deg(v float64) float64 {
	return (180.0 / Pi) * v
}

// Add returns a + b.
func (a Vec2) Add(b Vec2) Vec2 {
	return Vec2{a.X + b.X, a.Y + b.Y}
}

// Sub returns a - b.
func (a Vec2) Sub(b Vec2) Vec2 {
	return Vec2{a.X - b.X, a.Y - b.Y}
}

// Mul returns the component-wise product of a and b.
func (a Vec2) Mul(b Vec2) Vec2 {
	return Vec2{a.X * b.X, a.Y * b.Y}
}

// Scale returns a scaled by x.
func (a Vec2) Scale(x float64) Vec2 {
	return Vec2{a.X * x, a.Y * x}
}

// Dot returns the dot product of a and b.
func (a Vec2) Dot(b Vec2) float64 {
	return a.X*b.X + a.Y*b.Y
}

// Length returns the euclidean length of a.
func (a Vec2) Length() float64 {
	return math.Sqrt(a.X*a.X + a.Y*a.Y)
}

// Normalized returns a scaled to unit length.
func (a Vec2) Normalized() Vec2 {
	l := a.Length()
	return Vec2{a.X / l, a.Y / l}
}

// Add returns a + b.
func (a Vec3) Add(b Vec3) Vec3 {
	return Vec3{a.X + b.X, a.Y + b.Y, a.Z + b.Z}
}

// Sub returns a - b.
func (a Vec3) Sub(b Vec3) Vec3 {
	return Vec3{a.X - b.X, a.Y - b.Y, a.Z - b.Z}
}

// Mul returns the component-wise product of a and b.
func (a Vec3) Mul(b Vec3) Vec3 {
	return Vec3{a.X * b.X, a.Y * b.Y, a.Z * b.Z}
}

// Scale returns a scaled by x.
func (a Vec3) Scale(x float64) Vec3 {
	return Vec3{a.X * x, a.Y * x, a.Z * x}
}

// Dot returns the dot product of a and b.
func (a Vec3) Dot(b Vec3) float64 {
	return a.X*b.X + a.Y*b.Y + a.Z*b.Z
}

// Cross returns the cross product of a and b.
func (a Vec3) Cross(b Vec3) Vec3 {
	return Vec3{
		a.Y*b.Z - a.Z*b.Y,
		a.Z*b.X - a.X*b.Z,
		a.X*b.Y - a.Y*b.X,
	}
}

// Length returns the euclidean length of a.
func (a Vec3) Length() float64 {
	return math.Sqrt(a.X*a.X + a.Y*a.Y + a.Z*a.Z)
}

// Normalized returns a scaled to unit length.
func (a Vec3) Normalized() Vec3 {
	l := a.Length()
	return Vec3{a.X / l, a.Y / l, a.Z / l}
}
