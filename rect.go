package cucoqu

import "math"

// Rect is an axis-aligned rectangle.
type Rect struct {
	X0, Y0 float64
	X1, Y1 float64
}

// NewRectFromPoints returns a rectangle with the extents of p0 and p1, ensuring that
// width and height are non-negative.
func NewRectFromPoints(p0, p1 Point) Rect {
	return Rect{
		X0: min(p0.X, p1.X),
		Y0: min(p0.Y, p1.Y),
		X1: max(p0.X, p1.X),
		Y1: max(p0.Y, p1.Y),
	}
}

// Width returns the rectangle's width, defined as X1 − X0. It may be negative.
func (r Rect) Width() float64 {
	return r.X1 - r.X0
}

// Height returns the rectangle's heigth, defined as Y1 − Y0. It may be negative.
func (r Rect) Height() float64 {
	return r.Y1 - r.Y0
}

// Contains reports whether pt lies inside the rectangle or on its boundary.
func (r Rect) Contains(pt Point) bool {
	return pt.X >= r.X0 &&
		pt.X <= r.X1 &&
		pt.Y >= r.Y0 &&
		pt.Y <= r.Y1
}

// Union returns the smallest rectangle enclosing r and o.
//
// Results are valid only if width and height are non-negative.
func (r Rect) Union(o Rect) Rect {
	return Rect{
		X0: min(r.X0, o.X0),
		Y0: min(r.Y0, o.Y0),
		X1: max(r.X1, o.X1),
		Y1: max(r.Y1, o.Y1),
	}
}

// UnionPoint computes the union with one point.
//
// This method includes the perimeter of zero-area rectangles.
// Thus, a succession of UnionPoint operations on a series of
// points yields their enclosing rectangle.
func (r Rect) UnionPoint(pt Point) Rect {
	return Rect{
		X0: min(r.X0, pt.X),
		Y0: min(r.Y0, pt.Y),
		X1: max(r.X1, pt.X),
		Y1: max(r.Y1, pt.Y),
	}
}

// Expand returns the smallest rectangle with integer coordinates that
// encloses r. r must have non-negative width and height.
func (r Rect) Expand() Rect {
	return Rect{
		X0: math.Floor(r.X0),
		Y0: math.Floor(r.Y0),
		X1: math.Ceil(r.X1),
		Y1: math.Ceil(r.Y1),
	}
}

// boundingBox returns the smallest rectangle enclosing the curve in the range
// [0, 1].
func boundingBox(c interface {
	Eval(t float64) Point
	Extrema() ([MaxExtrema]float64, int)
}) Rect {
	bbox := NewRectFromPoints(c.Eval(0), c.Eval(1))
	ex, n := c.Extrema()
	for _, t := range ex[:n] {
		bbox = bbox.UnionPoint(c.Eval(t))
	}
	return bbox
}

// BoundingBox returns the smallest rectangle enclosing the conic.
func (cn Conic) BoundingBox() Rect { return boundingBox(cn) }

// BoundingBox returns the smallest rectangle enclosing the quadratic.
func (q QuadBez) BoundingBox() Rect { return q.Conic().BoundingBox() }

// BoundingBox returns the smallest rectangle enclosing the cubic.
func (c CubicBez) BoundingBox() Rect { return boundingBox(c) }

// BoundingBox returns the smallest rectangle enclosing all quadratics of the
// spline. s must not be empty.
func (s QuadSpline) BoundingBox() Rect {
	bbox := s[0].BoundingBox()
	for _, q := range s[1:] {
		bbox = bbox.Union(q.BoundingBox())
	}
	return bbox
}

func (c Circle) BoundingBox() Rect {
	r := math.Abs(c.Radius)
	return NewRectFromPoints(
		c.Center.Translate(Vec(-r, -r)),
		c.Center.Translate(Vec(r, r)),
	)
}

func (e Ellipse) BoundingBox() Rect {
	cns := e.Conics()
	bbox := cns[0].BoundingBox()
	for _, cn := range cns[1:] {
		bbox = bbox.Union(cn.BoundingBox())
	}
	return bbox
}
