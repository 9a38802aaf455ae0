package cucoqu

import (
	"io"
	"iter"
	"strings"
)

// QuadSpline is a sequence of quadratic Béziers where each segment starts at
// the end of the previous one. Conversions in this package produce such
// splines by construction; the invariant isn't checked.
type QuadSpline []QuadBez

// Start returns the first point of the spline. It panics if the spline is
// empty.
func (s QuadSpline) Start() Point { return s[0].P0 }

// End returns the last point of the spline. It panics if the spline is empty.
func (s QuadSpline) End() Point { return s[len(s)-1].P2 }

func (s QuadSpline) IsInf() bool {
	for _, q := range s {
		if q.IsInf() {
			return true
		}
	}
	return false
}

func (s QuadSpline) IsNaN() bool {
	for _, q := range s {
		if q.IsNaN() {
			return true
		}
	}
	return false
}

func (s QuadSpline) isFinite() bool {
	return !s.IsInf() && !s.IsNaN()
}

// pin makes the spline run from start to end with every point in between
// replaced by pt.
func (s QuadSpline) pin(start, pt, end Point) {
	for i := range s {
		s[i] = QuadBez{pt, pt, pt}
	}
	s[0].P0 = start
	s[len(s)-1].P2 = end
}

func (s QuadSpline) Transform(aff Affine) QuadSpline {
	out := make(QuadSpline, len(s))
	for i, q := range s {
		out[i] = q.Transform(aff)
	}
	return out
}

// PathElements returns the spline as a MoveTo followed by one QuadTo per
// segment.
func (s QuadSpline) PathElements() iter.Seq[PathElement] {
	return func(yield func(PathElement) bool) {
		if len(s) == 0 {
			return
		}
		if !yield(MoveTo(s[0].P0)) {
			return
		}
		for _, q := range s {
			if !yield(QuadTo(q.P1, q.P2)) {
				return
			}
		}
	}
}

// SVG returns the spline as SVG path data.
func (s QuadSpline) SVG(opts SVGOptions) string {
	sb := &strings.Builder{}
	s.WriteSVG(sb, opts)
	return sb.String()
}

// WriteSVG writes the spline as SVG path data to w.
func (s QuadSpline) WriteSVG(w io.Writer, opts SVGOptions) error {
	return WriteSVG(w, s.PathElements(), opts)
}

// BSpline encodes the spline in the on/off-curve form used by TrueType. The
// on-curve points between segments are dropped. This is lossless only when
// each of them lies halfway between its neighbouring control points, which is
// the case for splines produced from cubics.
func (s QuadSpline) BSpline() QuadBSpline {
	if len(s) == 0 {
		return nil
	}
	out := make(QuadBSpline, 0, len(s)+2)
	out = append(out, s[0].P0)
	for _, q := range s {
		out = append(out, q.P1)
	}
	return append(out, s[len(s)-1].P2)
}

// QuadBSpline is a quadratic B-spline. It is encoded as [P₁, C₁, C₂, C₃, C₄, ..., Pₙ],
// where Pᵢ are on-curve points and Cᵢ are off-curve control points. Only the first and
// last on-curve points are explicit. All other on-curve points are implicit and defined
// as Pᵢ = (Cᵢ₋₁ + Cᵢ) / 2. For example, P₂ lies halfway between C₁ and C₂. This format
// matches the one used by glyf tables in TrueType fonts.
type QuadBSpline []Point

// Quads returns an iterator over the implied sequence of quadratic Bézier segments. The
// returned segments are guaranteed to be G1 continuous.
func (q QuadBSpline) Quads() iter.Seq[QuadBez] {
	return func(yield func(QuadBez) bool) {
		var idx int
		for len(q[idx:]) >= 3 {
			p0, p1, p2 := q[idx], q[idx+1], q[idx+2]

			if idx != 0 {
				p0 = p0.Midpoint(p1)
			}
			if idx+2 < len(q)-1 {
				p2 = p1.Midpoint(p2)
			}

			idx++

			if !yield(QuadBez{p0, p1, p2}) {
				break
			}
		}
	}
}

// Spline returns the segments of the B-spline.
func (q QuadBSpline) Spline() QuadSpline {
	out := make(QuadSpline, 0, max(len(q)-2, 0))
	for quad := range q.Quads() {
		out = append(out, quad)
	}
	return out
}
