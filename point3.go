package cucoqu

import (
	"fmt"
	"math"
)

// Point3 is a point in homogeneous coordinates. It represents the 2D point
// (X/Z, Y/Z). Rational curves become polynomial in this space, which lets
// weighted control points be interpolated linearly.
type Point3 struct {
	X float64
	Y float64
	Z float64
}

func (p Point3) String() string {
	return fmt.Sprintf("(%g, %g, %g)", p.X, p.Y, p.Z)
}

func (p Point3) Add(o Point3) Point3 {
	return Point3{p.X + o.X, p.Y + o.Y, p.Z + o.Z}
}

func (p Point3) Sub(o Point3) Point3 {
	return Point3{p.X - o.X, p.Y - o.Y, p.Z - o.Z}
}

func (p Point3) Mul(f float64) Point3 {
	return Point3{p.X * f, p.Y * f, p.Z * f}
}

func (p Point3) Div(f float64) Point3 {
	return Point3{p.X / f, p.Y / f, p.Z / f}
}

// Dot returns the dot product of p and o.
func (p Point3) Dot(o Point3) float64 {
	return p.X*o.X + p.Y*o.Y + p.Z*o.Z
}

// Hypot2 returns the squared magnitude of p.
func (p Point3) Hypot2() float64 {
	return p.Dot(p)
}

// Lerp linearly interpolates between two homogeneous points.
func (p Point3) Lerp(o Point3, t float64) Point3 {
	return p.Add(o.Sub(p).Mul(t))
}

// Project returns the 2D point represented by p, dividing x and y by z.
//
// The result is not finite when z is zero.
func (p Point3) Project() Point {
	return Point{X: p.X / p.Z, Y: p.Y / p.Z}
}

// IsFinite reports whether all three coordinates are finite.
func (p Point3) IsFinite() bool {
	return !math.IsInf(p.X, 0) && !math.IsNaN(p.X) &&
		!math.IsInf(p.Y, 0) && !math.IsNaN(p.Y) &&
		!math.IsInf(p.Z, 0) && !math.IsNaN(p.Z)
}
