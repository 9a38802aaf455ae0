package cucoqu

// cubicCoeffs is the monomial form a·t³ + b·t² + c·t + d of a cubic Bézier.
type cubicCoeffs struct {
	a, b, c, d Vec2
}

func (cb CubicBez) coeffs() cubicCoeffs {
	c := cb.P1.Sub(cb.P0).Mul(3.0)
	b := cb.P2.Sub(cb.P1).Mul(3.0).Sub(c)
	d := Vec2(cb.P0)
	a := Vec2(cb.P3).Sub(d).Sub(c).Sub(b)
	return cubicCoeffs{a, b, c, d}
}

// points converts the coefficients back to control points.
func (cc cubicCoeffs) points() CubicBez {
	// This mirrors fontTools' calc_cubic_points, including its operation order.
	p0 := Point(cc.d)
	p1 := Point(cc.c.Div(3)).Translate(cc.d)
	p2 := Point(cc.b.Add(cc.c).Div(3)).Translate(Vec2(p1))
	p3 := Point(cc.a.Add(cc.d).Add(cc.c).Add(cc.b))
	return CubicBez{p0, p1, p2, p3}
}

func (cc cubicCoeffs) eval(t float64) Point {
	return Point(cc.a.Mul(t).Add(cc.b).Mul(t).Add(cc.c).Mul(t).Add(cc.d))
}

// quadCoeffs is the monomial form a·t² + b·t + c of a quadratic Bézier.
type quadCoeffs struct {
	a, b, c Vec2
}

func (q QuadBez) coeffs() quadCoeffs {
	return quadCoeffs{
		a: Vec2(q.P2).Sub(Vec2(q.P1).Mul(2)).Add(Vec2(q.P0)),
		b: q.P1.Sub(q.P0).Mul(2),
		c: Vec2(q.P0),
	}
}

func (qc quadCoeffs) points() QuadBez {
	p0 := Point(qc.c)
	p1 := Point(qc.b.Div(2).Add(qc.c))
	p2 := Point(qc.a.Add(qc.b).Add(qc.c))
	return QuadBez{p0, p1, p2}
}

func (qc quadCoeffs) eval(t float64) Vec2 {
	return qc.a.Mul(t).Add(qc.b).Mul(t).Add(qc.c)
}

// conicCoeffs is a conic written as the ratio of two quadratic polynomials:
// the weighted numerator in x and y, and the scalar denominator shared by both.
type conicCoeffs struct {
	numer quadCoeffs
	// denom holds a, b, c of a·t² + b·t + c.
	denom [3]float64
}

func (cn Conic) coeffs() conicCoeffs {
	p1w := Vec2(cn.Control).Mul(cn.Weight)
	p0 := Vec2(cn.Start)
	p2 := Vec2(cn.End)
	db := 2 * (cn.Weight - 1)
	return conicCoeffs{
		numer: quadCoeffs{
			a: p2.Sub(p1w.Mul(2)).Add(p0),
			b: p1w.Sub(p0).Mul(2),
			c: p0,
		},
		denom: [3]float64{-db, db, 1},
	}
}

// evalNumer returns the numerator at t.
func (cc conicCoeffs) evalNumer(t float64) Vec2 {
	return cc.numer.eval(t)
}

// evalDenom returns the denominator at t.
func (cc conicCoeffs) evalDenom(t float64) float64 {
	return (cc.denom[0]*t+cc.denom[1])*t + cc.denom[2]
}

// eval returns the point on the conic at t.
func (cc conicCoeffs) eval(t float64) Point {
	return Point(cc.evalNumer(t).Div(cc.evalDenom(t)))
}
