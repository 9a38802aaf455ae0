package cucoqu

import (
	"fmt"
	"iter"
	"sort"
)

type CubicBez struct {
	P0 Point
	P1 Point
	P2 Point
	P3 Point
}

func (c CubicBez) IsInf() bool {
	return c.P0.IsInf() || c.P1.IsInf() || c.P2.IsInf() || c.P3.IsInf()
}

func (c CubicBez) IsNaN() bool {
	return c.P0.IsNaN() || c.P1.IsNaN() || c.P2.IsNaN() || c.P3.IsNaN()
}

func (c CubicBez) PathElements() iter.Seq[PathElement] {
	return func(yield func(PathElement) bool) {
		_ = yield(MoveTo(c.P0)) &&
			yield(CubicTo(c.P1, c.P2, c.P3))
	}
}

func (c CubicBez) Eval(t float64) Point {
	mt := 1.0 - t
	a := Vec2(c.P0).Mul(mt * mt * mt)
	b := Vec2(c.P1).Mul(mt * mt * 3.0)
	cc := Vec2(c.P2).Mul(mt * 3.0)
	d := Vec2(c.P3)
	v := a.Add(b.Add(cc.Add(d.Mul(t)).Mul(t)).Mul(t))
	return Point(v)
}

// Subdivide subdivides the cubic into halves, using de Casteljau.
func (c CubicBez) Subdivide() (CubicBez, CubicBez) {
	pm := c.Eval(0.5)
	return CubicBez{
			c.P0,
			c.P0.Midpoint(c.P1),
			Point(Vec2(c.P0).Add(Vec2(c.P1).Mul(2.0)).Add(Vec2(c.P2)).Mul(0.25)),
			pm,
		},
		CubicBez{
			pm,
			Point(Vec2(c.P1).Add(Vec2(c.P2).Mul(2.0)).Add(Vec2(c.P3)).Mul(0.25)),
			c.P2.Midpoint(c.P3),
			c.P3,
		}
}

func (c CubicBez) Start() Point {
	return c.P0
}

func (c CubicBez) End() Point {
	return c.P3
}

func (c CubicBez) Transform(aff Affine) CubicBez {
	return CubicBez{
		P0: c.P0.Transform(aff),
		P1: c.P1.Transform(aff),
		P2: c.P2.Transform(aff),
		P3: c.P3.Transform(aff),
	}
}

// Extrema returns the parameters in (0, 1) at which the cubic has a
// horizontal or vertical tangent, sorted in ascending order.
func (c CubicBez) Extrema() ([MaxExtrema]float64, int) {
	var out [MaxExtrema]float64
	var outN int
	// The derivative of each coordinate is a quadratic with up to two roots.
	oneCoord := func(d0, d1, d2 float64) {
		roots, n := SolveQuadratic(d0, 2*(d1-d0), d0-2*d1+d2)
		for _, t := range roots[:n] {
			if t > 0 && t < 1 {
				out[outN] = t
				outN++
			}
		}
	}
	d0 := c.P1.Sub(c.P0)
	d1 := c.P2.Sub(c.P1)
	d2 := c.P3.Sub(c.P2)
	oneCoord(d0.X, d1.X, d2.X)
	oneCoord(d0.Y, d1.Y, d2.Y)
	sort.Float64s(out[:outN])
	return out, outN
}

// SplitIntoN splits the cubic into n cubics covering equal parameter
// intervals. n may be any positive integer.
//
// Each piece is computed directly from the cubic's polynomial form rather
// than by repeated subdivision.
func (c CubicBez) SplitIntoN(n int) []CubicBez {
	if n < 1 {
		panic(fmt.Sprintf("can't split cubic into %d pieces", n))
	}
	cc := c.coeffs()
	a, b, cv, d := cc.a, cc.b, cc.c, cc.d
	dt := 1.0 / float64(n)
	delta2 := dt * dt
	delta3 := dt * delta2
	out := make([]CubicBez, n)
	for i := range n {
		t1 := float64(i) * dt
		t1_2 := t1 * t1
		// Substitute t = t1 + dt·u and collect the powers of u. Multiplication
		// isn't associative in floating point; the order matches fontTools.
		a1 := a.Mul(delta3)
		b1 := a.Mul(3.0).Mul(t1).Add(b).Mul(delta2)
		c1 := b.Mul(2.0).Mul(t1).Add(cv).Add(a.Mul(3.0).Mul(t1_2)).Mul(dt)
		d1 := a.Mul(t1).Mul(t1_2).Add(b.Mul(t1_2)).Add(cv.Mul(t1)).Add(d)
		out[i] = cubicCoeffs{a1, b1, c1, d1}.points()
	}
	return out
}

// FitsInside reports whether the cubic stays within the given squared distance
// of the origin.
//
// The test is conservative: it may reject curves that do fit, but never
// accepts one that doesn't.
//
// This is cu2qu's [cubic_farthest_fit_inside].
//
// [cubic_farthest_fit_inside]: https://github.com/fonttools/fonttools/blob/3b9a73ff8379ab49d3ce35aaaaf04b3a7d9d1655/Lib/fontTools/cu2qu/cu2qu.py#L281
func (c CubicBez) FitsInside(tolerance float64) bool {
	if Vec2(c.P2).Hypot2() <= tolerance && Vec2(c.P1).Hypot2() <= tolerance {
		return true
	}
	p0, p1, p2, p3 := Vec2(c.P0), Vec2(c.P1), Vec2(c.P2), Vec2(c.P3)
	mid := p0.Add(p1.Add(p2).Mul(3)).Add(p3).Mul(0.125)
	// NaN compares false both ways; treat it as not fitting.
	if !(mid.Hypot2() <= tolerance) {
		return false
	}
	deriv3 := p3.Add(p2).Sub(p1).Sub(p0).Mul(0.125)
	return CubicBez{c.P0, c.P0.Midpoint(c.P1), Point(mid.Sub(deriv3)), Point(mid)}.FitsInside(tolerance) &&
		CubicBez{Point(mid), Point(mid.Add(deriv3)), c.P2.Midpoint(c.P3), c.P3}.FitsInside(tolerance)
}

// ApproxControl estimates the control point of a quadratic approximating the
// cubic. The tangents at both ends are extended by half their length and t
// interpolates between the two extended points.
func (c CubicBez) ApproxControl(t float64) Point {
	p1 := c.P0.Translate(c.P1.Sub(c.P0).Mul(1.5))
	p2 := c.P3.Translate(c.P2.Sub(c.P3).Mul(1.5))
	return p1.Lerp(p2, t)
}

// ApproxQuadratic approximates the cubic with a single quadratic that keeps
// the endpoint tangents. Its control point is where the tangents cross.
//
// It returns [ErrApproxNotFound] if the tangents are parallel or the quadratic
// deviates from the cubic by more than tolerance.
func (c CubicBez) ApproxQuadratic(tolerance float64) (QuadBez, error) {
	q1, ok := Line{c.P0, c.P1}.CrossingPoint(Line{c.P2, c.P3})
	if !ok {
		return QuadBez{}, ErrApproxNotFound
	}

	// The difference between the cubic and the quadratic raised to a cubic.
	c1 := c.P0.Lerp(q1, 2.0/3.0)
	c2 := c.P3.Lerp(q1, 2.0/3.0)
	residual := CubicBez{
		Point{},
		Point(c1.Sub(c.P1)),
		Point(c2.Sub(c.P2)),
		Point{},
	}
	if !residual.FitsInside(tolerance) {
		return QuadBez{}, ErrApproxNotFound
	}
	return QuadBez{c.P0, q1, c.P3}, nil
}

// ApproxSpline approximates the cubic with a spline of exactly n quadratics.
//
// Adjacent segments share the on-curve point halfway between their control
// points, making the spline G1 continuous. It returns [ErrApproxNotFound] if
// any segment deviates from the cubic by more than tolerance.
func (c CubicBez) ApproxSpline(n int, tolerance float64) (QuadSpline, error) {
	if n == 1 {
		q, err := c.ApproxQuadratic(tolerance)
		if err != nil {
			return nil, err
		}
		return QuadSpline{q}, nil
	}

	cubics := c.SplitIntoN(n)
	nextCubic := cubics[0]
	nextQ1 := nextCubic.ApproxControl(0)
	q2 := c.P0
	var d1 Vec2
	spline := make(QuadBSpline, 0, n+2)
	spline = append(spline, c.P0, nextQ1)
	for i := 1; i <= n; i++ {
		current := nextCubic
		q0 := q2
		q1 := nextQ1
		if i < n {
			nextCubic = cubics[i]
			nextQ1 = nextCubic.ApproxControl(float64(i) / float64(n-1))
			spline = append(spline, nextQ1)
			q2 = q1.Midpoint(nextQ1)
		} else {
			q2 = current.P3
		}
		d0 := d1
		d1 = q2.Sub(current.P3)

		if !(d1.Hypot2() <= tolerance) {
			return nil, ErrApproxNotFound
		}
		residual := CubicBez{
			Point(d0),
			Point(q0.Lerp(q1, 2.0/3.0).Sub(current.P1)),
			Point(q2.Lerp(q1, 2.0/3.0).Sub(current.P2)),
			Point(d1),
		}
		if !residual.FitsInside(tolerance) {
			return nil, ErrApproxNotFound
		}
	}
	spline = append(spline, c.P3)
	return spline.Spline(), nil
}

// ToQuadSpline approximates the cubic with the shortest quadratic spline, of
// at most [MaxSplineSegments] segments, that is within maxErr of it.
//
// Like all tolerances of the cubic conversions, maxErr is a squared
// distance.
func (c CubicBez) ToQuadSpline(maxErr float64) (QuadSpline, error) {
	for n := 1; n <= MaxSplineSegments; n++ {
		if spline, err := c.ApproxSpline(n, maxErr); err == nil {
			Logger().Debug("converted cubic to quadratics",
				"tolerance", maxErr, "segments", n)
			return spline, nil
		}
	}
	return nil, ErrApproxNotFound
}
