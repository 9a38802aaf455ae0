package cucoqu

import (
	"iter"
	"math"
)

// Ellipse is an affine image of the unit circle.
type Ellipse struct {
	inner Affine
}

// NewEllipse creates an ellipse with a given center, radii, and rotation.
//
// The ellipse is the result of stretching a unit circle by radii along the x
// and y axes, rotating it by xRotation radians and finally translating it to
// center.
func NewEllipse(center Point, radii Vec2, xRotation float64) Ellipse {
	// The circle is symmetric about both axes, so the sign of the radii
	// doesn't matter.
	return Ellipse{
		inner: Translate(Vec2(center)).
			Mul(Rotate(xRotation)).
			Mul(Scale(math.Abs(radii.X), math.Abs(radii.Y))),
	}
}

// NewEllipseFromAffine creates an ellipse from an affine transformation of the unit
// circle.
func NewEllipseFromAffine(aff Affine) Ellipse {
	return Ellipse{inner: aff}
}

func NewEllipseFromCircle(c Circle) Ellipse {
	return NewEllipse(c.Center, Vec(c.Radius, c.Radius), 0)
}

// Conics returns the ellipse as four conics, the images of the quarter
// circles of the unit circle returned by [Circle.Conics].
func (e Ellipse) Conics() [4]Conic {
	out := Circle{Radius: 1}.Conics()
	for i := range out {
		out[i] = out[i].Transform(e.inner)
	}
	return out
}

// PathElements returns the ellipse as a closed path of four ConicTo elements.
func (e Ellipse) PathElements() iter.Seq[PathElement] {
	return conicsPath(e.Conics())
}

func (e Ellipse) IsInf() bool {
	return e.inner.IsInf()
}

func (e Ellipse) IsNaN() bool {
	return e.inner.IsNaN()
}

// Center returns the center of the ellipse.
func (e Ellipse) Center() Point {
	return Point(e.inner.Translation())
}

// RadiiRotation returns the two radii of the ellipse, before rotation, and
// its rotation in radians.
func (e Ellipse) RadiiRotation() (Vec2, float64) {
	return e.inner.svd()
}

func (e Ellipse) Transform(aff Affine) Ellipse {
	return Ellipse{
		inner: aff.Mul(e.inner),
	}
}
