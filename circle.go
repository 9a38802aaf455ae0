package cucoqu

import (
	"iter"
	"math"
)

// quarterWeight is the weight of a conic tracing a quarter of a circle, cos(π/4).
const quarterWeight = math.Sqrt2 / 2

type Circle struct {
	Center Point
	Radius float64
}

// Conics returns the circle as four quarter-circle conics, starting at angle
// zero and proceeding towards positive Y. Each conic starts where the
// previous one ends and the last one ends at the start of the first.
func (c Circle) Conics() [4]Conic {
	x, y := c.Center.Splat()
	r := c.Radius
	p := [...]Point{
		Pt(x+r, y), Pt(x+r, y+r),
		Pt(x, y+r), Pt(x-r, y+r),
		Pt(x-r, y), Pt(x-r, y-r),
		Pt(x, y-r), Pt(x+r, y-r),
	}
	var out [4]Conic
	for i := range out {
		out[i] = Conic{
			Start:   p[2*i],
			Control: p[2*i+1],
			End:     p[(2*i+2)%len(p)],
			Weight:  quarterWeight,
		}
	}
	return out
}

// PathElements returns the circle as a closed path of four ConicTo elements.
func (c Circle) PathElements() iter.Seq[PathElement] {
	return conicsPath(c.Conics())
}

func conicsPath(cns [4]Conic) iter.Seq[PathElement] {
	return func(yield func(PathElement) bool) {
		if !yield(MoveTo(cns[0].Start)) {
			return
		}
		for _, cn := range cns {
			if !yield(ConicTo(cn.Control, cn.End, cn.Weight)) {
				return
			}
		}
		yield(ClosePath())
	}
}

func (c Circle) IsInf() bool {
	return c.Center.IsInf() || math.IsInf(c.Radius, 0)
}

func (c Circle) IsNaN() bool {
	return c.Center.IsNaN() || math.IsNaN(c.Radius)
}

func (c Circle) Translate(v Vec2) Circle {
	return Circle{
		Center: c.Center.Translate(v),
		Radius: c.Radius,
	}
}

// Transform returns the ellipse that aff maps the circle to.
func (c Circle) Transform(aff Affine) Ellipse {
	return NewEllipseFromCircle(c).Transform(aff)
}
