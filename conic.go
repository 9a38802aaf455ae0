package cucoqu

import (
	"fmt"
	"math"
	"sort"
)

// chopEpsilon is the distance from 0 and 1 below which a chop parameter is
// treated as lying on the boundary.
const chopEpsilon = 10 * 0x1p-52

// Conic is a rational quadratic Bézier: a quadratic Bézier whose control point
// carries a weight. The weight determines the kind of conic section the
// segment is part of, see [ConicKind].
//
// Weights must be positive. Conics with other weights are accepted but
// produce meaningless results.
type Conic struct {
	Start   Point
	Control Point
	End     Point
	Weight  float64
}

// ConicKind classifies a conic by its weight.
type ConicKind int

const (
	// The weight is less than 1.
	EllipticConic ConicKind = iota + 1
	// The weight is 1, within epsilon. The conic is an ordinary quadratic Bézier.
	ParabolicConic
	// The weight is greater than 1.
	HyperbolicConic
)

func (k ConicKind) String() string {
	switch k {
	case EllipticConic:
		return "ellipse"
	case ParabolicConic:
		return "parabola"
	case HyperbolicConic:
		return "hyperbola"
	default:
		return fmt.Sprintf("ConicKind(%d)", int(k))
	}
}

// Kind returns the kind of conic section described by the weight.
func (cn Conic) Kind() ConicKind {
	switch {
	case math.Abs(cn.Weight-1) <= chopEpsilon:
		return ParabolicConic
	case cn.Weight < 1:
		return EllipticConic
	default:
		return HyperbolicConic
	}
}

func (cn Conic) IsInf() bool {
	return cn.Start.IsInf() || cn.Control.IsInf() || cn.End.IsInf()
}

func (cn Conic) IsNaN() bool {
	return cn.Start.IsNaN() || cn.Control.IsNaN() || cn.End.IsNaN()
}

func (cn Conic) isFinite() bool {
	return !cn.IsInf() && !cn.IsNaN()
}

// Eval returns the point on the conic at t.
func (cn Conic) Eval(t float64) Point {
	switch t {
	case 0:
		return cn.Start
	case 1:
		return cn.End
	}
	return cn.coeffs().eval(t)
}

// Tangent returns a vector pointing in the direction of the conic at t. Its
// magnitude is not that of the derivative.
func (cn Conic) Tangent(t float64) Vec2 {
	// The derivative is zero at an end whose control point coincides with it.
	// Fall back to the chord.
	if (t == 0 && cn.Start == cn.Control) || (t == 1 && cn.Control == cn.End) {
		return cn.End.Sub(cn.Start)
	}
	p20 := cn.End.Sub(cn.Start)
	p10 := cn.Control.Sub(cn.Start)
	c := p10.Mul(cn.Weight)
	a := p20.Mul(cn.Weight).Sub(p20)
	b := p20.Sub(c).Sub(c)
	return quadCoeffs{a, b, c}.eval(t)
}

// derivCoeffs returns the coefficients of the numerator of the derivative of
// one coordinate, given that coordinate's values at the three control points.
func derivCoeffs(p0, p1, p2, w float64) (a, b, c float64) {
	p20 := p2 - p0
	p10 := p1 - p0
	wp10 := w * p10
	return w*p20 - p20, p20 - 2*wp10, wp10
}

// Extrema returns the parameters in (0, 1) at which the conic has a horizontal
// or vertical tangent, sorted in ascending order.
func (cn Conic) Extrema() ([MaxExtrema]float64, int) {
	var out [MaxExtrema]float64
	var outN int
	oneCoord := func(p0, p1, p2 float64) {
		a, b, c := derivCoeffs(p0, p1, p2, cn.Weight)
		roots, n := SolveQuadratic(c, b, a)
		for _, t := range roots[:n] {
			if t > 0 && t < 1 {
				out[outN] = t
				outN++
			}
		}
	}
	oneCoord(cn.Start.X, cn.Control.X, cn.End.X)
	oneCoord(cn.Start.Y, cn.Control.Y, cn.End.Y)
	sort.Float64s(out[:outN])
	return out, outN
}

// Transform applies an affine transformation. Affine maps preserve conic
// sections, so the weight is unchanged.
func (cn Conic) Transform(aff Affine) Conic {
	return Conic{
		Start:   cn.Start.Transform(aff),
		Control: cn.Control.Transform(aff),
		End:     cn.End.Transform(aff),
		Weight:  cn.Weight,
	}
}

// ChopResult is the result of chopping a conic in two.
type ChopResult struct {
	// Left and Right are the halves before and after the chop parameter. Both
	// are the zero value if the chop is degenerate.
	Left, Right Conic
	// Degenerate reports that chopping produced a non-finite coordinate. This
	// happens for extreme weights and is not an error.
	Degenerate bool
}

// ChopAt splits the conic at t by interpolating the control points in
// homogeneous coordinates.
func (cn Conic) ChopAt(t float64) ChopResult {
	p0 := cn.Start.Lift(1)
	p1 := cn.Control.Lift(cn.Weight)
	p2 := cn.End.Lift(1)

	ab := p0.Lerp(p1, t)
	bc := p1.Lerp(p2, t)
	mid := ab.Lerp(bc, t)

	root := math.Sqrt(mid.Z)
	left := Conic{
		Start:   cn.Start,
		Control: ab.Project(),
		End:     mid.Project(),
		Weight:  ab.Z / root,
	}
	right := Conic{
		Start:   left.End,
		Control: bc.Project(),
		End:     cn.End,
		Weight:  bc.Z / root,
	}
	if !left.isFinite() || !right.isFinite() {
		return ChopResult{Degenerate: true}
	}
	return ChopResult{Left: left, Right: right}
}

// Subsegment returns the part of the conic between t1 and t2.
//
// Intervals touching either end are computed with a single [Conic.ChopAt].
// Interior intervals are computed directly from the polynomial form, which
// avoids compounding the error of two chops.
func (cn Conic) Subsegment(t1, t2 float64) Conic {
	atStart := t1 < chopEpsilon
	atEnd := t2 > 1-chopEpsilon
	if atStart && atEnd {
		return cn
	}
	if atStart || atEnd {
		t := t1
		if atStart {
			t = t2
		}
		if res := cn.ChopAt(t); !res.Degenerate {
			if atStart {
				return res.Left
			}
			return res.Right
		}
	}
	return cn.subsegmentPoly(t1, t2)
}

// subsegmentPoly computes the part of the conic between t1 and t2 from its
// polynomial form.
func (cn Conic) subsegmentPoly(t1, t2 float64) Conic {
	cc := cn.coeffs()
	a, az := cc.evalNumer(t1), cc.evalDenom(t1)
	mid := (t1 + t2) * 0.5
	d, dz := cc.evalNumer(mid), cc.evalDenom(mid)
	c, cz := cc.evalNumer(t2), cc.evalDenom(t2)

	// The sub-curve's homogeneous control point is the one whose quadratic
	// passes through d at the interval's midpoint.
	b := d.Mul(2).Sub(a.Add(c).Mul(0.5))
	bz := 2*dz - (az+cz)*0.5

	return Conic{
		Start:   Point(a.Div(az)),
		Control: Point(b.Div(bz)),
		End:     Point(c.Div(cz)),
		Weight:  bz / math.Sqrt(az*cz),
	}
}

// Chop splits the conic into the halves [0, 0.5] and [0.5, 1].
func (cn Conic) Chop() (Conic, Conic) {
	return cn.Subsegment(0, 0.5), cn.Subsegment(0.5, 1)
}

// Subdivide splits the conic into 2^level conics of equal parameter length,
// ordered from start to end. Level 0 returns the conic itself.
func (cn Conic) Subdivide(level int) []Conic {
	if level < 0 {
		panic(fmt.Sprintf("negative subdivision level %d", level))
	}
	out := make([]Conic, 1, 1<<level)
	out[0] = cn
	for range level {
		n := len(out)
		out = out[:2*n]
		// Fill from the back so that unprocessed conics aren't overwritten.
		for i := n - 1; i >= 0; i-- {
			l, r := out[i].Chop()
			out[2*i] = l
			out[2*i+1] = r
		}
	}
	return out
}
