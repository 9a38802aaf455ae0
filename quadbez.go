package cucoqu

import "iter"

type QuadBez struct {
	P0 Point
	P1 Point
	P2 Point
}

func (q QuadBez) PathElements() iter.Seq[PathElement] {
	return func(yield func(PathElement) bool) {
		_ = yield(MoveTo(q.P0)) &&
			yield(QuadTo(q.P1, q.P2))
	}
}

// Raise raises the order by 1.
//
// It returns a cubic Bézier segment that exactly represents this quadratic.
func (q QuadBez) Raise() CubicBez {
	return CubicBez{
		q.P0,
		q.P0.Translate(q.P1.Sub(q.P0).Mul(2.0 / 3.0)),
		q.P2.Translate(q.P1.Sub(q.P2).Mul(2.0 / 3.0)),
		q.P2,
	}
}

func (q QuadBez) IsInf() bool {
	return q.P0.IsInf() || q.P1.IsInf() || q.P2.IsInf()
}

func (q QuadBez) IsNaN() bool {
	return q.P0.IsNaN() || q.P1.IsNaN() || q.P2.IsNaN()
}

func (q QuadBez) isFinite() bool {
	return !q.IsInf() && !q.IsNaN()
}

func (q QuadBez) Eval(t float64) Point {
	mt := 1.0 - t
	a := Vec2(q.P0).Mul(mt * mt)
	b := Vec2(q.P1).Mul(mt * 2.0)
	c := Vec2(q.P2).Mul(t)
	d := b.Add(c)
	return Point(a.Add(d.Mul(t)))
}

func (q QuadBez) Subdivide() (QuadBez, QuadBez) {
	pm := q.Eval(0.5)
	return QuadBez{q.P0, q.P0.Midpoint(q.P1), pm},
		QuadBez{pm, q.P1.Midpoint(q.P2), q.P2}
}

func (q QuadBez) Start() Point {
	return q.P0
}

func (q QuadBez) End() Point {
	return q.P2
}

func (q QuadBez) Transform(aff Affine) QuadBez {
	return QuadBez{
		P0: q.P0.Transform(aff),
		P1: q.P1.Transform(aff),
		P2: q.P2.Transform(aff),
	}
}

// Conic returns the quadratic as a conic of weight 1.
func (q QuadBez) Conic() Conic {
	return Conic{Start: q.P0, Control: q.P1, End: q.P2, Weight: 1}
}
