package cucoqu

import (
	"fmt"
	"io"
	"iter"
	"slices"
)

type PathElementKind int

const (
	// Move directly to the point without drawing anything, starting a new
	// subpath.
	MoveToKind PathElementKind = iota + 1
	// Draw a line from the current location to the point.
	LineToKind
	// Draw a quadratic Bézier using the current location and the two points.
	QuadToKind
	// Draw a conic using the current location, the two points and the
	// element's weight.
	ConicToKind
	// Draw a cubic Bézier using the current location and the three points.
	CubicToKind
	// Close off the path.
	ClosePathKind
)

func (k PathElementKind) String() string {
	switch k {
	case MoveToKind:
		return "MoveTo"
	case LineToKind:
		return "LineTo"
	case QuadToKind:
		return "QuadTo"
	case ConicToKind:
		return "ConicTo"
	case CubicToKind:
		return "CubicTo"
	case ClosePathKind:
		return "ClosePath"
	default:
		return "InvalidPathElement"
	}
}

// PathElement is the element of a Bézier path.
//
// A valid path has MoveTo at the beginning of each subpath. Weight is only
// meaningful for [ConicToKind].
type PathElement struct {
	Kind   PathElementKind
	P0     Point
	P1     Point
	P2     Point
	Weight float64
}

func (el PathElement) String() string {
	if el.Kind == ConicToKind {
		return fmt.Sprintf("%s(%s, %s, %g)", el.Kind, el.P0, el.P1, el.Weight)
	}
	return fmt.Sprintf("%s(%s, %s, %s)", el.Kind, el.P0, el.P1, el.P2)
}

func (el PathElement) Transform(aff Affine) PathElement {
	switch el.Kind {
	case MoveToKind:
		return MoveTo(el.P0.Transform(aff))
	case LineToKind:
		return LineTo(el.P0.Transform(aff))
	case QuadToKind:
		return QuadTo(el.P0.Transform(aff), el.P1.Transform(aff))
	case ConicToKind:
		return ConicTo(el.P0.Transform(aff), el.P1.Transform(aff), el.Weight)
	case CubicToKind:
		return CubicTo(el.P0.Transform(aff), el.P1.Transform(aff), el.P2.Transform(aff))
	case ClosePathKind:
		return ClosePath()
	default:
		return PathElement{}
	}
}

func (el PathElement) IsInf() bool {
	return el.P0.IsInf() ||
		el.P1.IsInf() ||
		el.P2.IsInf()
}

func (el PathElement) IsNaN() bool {
	return el.P0.IsNaN() ||
		el.P1.IsNaN() ||
		el.P2.IsNaN() ||
		(el.Kind == ConicToKind && el.Weight != el.Weight)
}

// EndPoint returns the end point of the path element, or false if none exists. It exists
// for all kinds except for [ClosePathKind].
func (el PathElement) EndPoint() (Point, bool) {
	switch el.Kind {
	case MoveToKind, LineToKind:
		return el.P0, true
	case QuadToKind, ConicToKind:
		return el.P1, true
	case CubicToKind:
		return el.P2, true
	default:
		return Point{}, false
	}
}

func MoveTo(pt Point) PathElement {
	return PathElement{Kind: MoveToKind, P0: pt}
}

func LineTo(pt Point) PathElement {
	return PathElement{Kind: LineToKind, P0: pt}
}

func QuadTo(p0, p1 Point) PathElement {
	return PathElement{Kind: QuadToKind, P0: p0, P1: p1}
}

// ConicTo returns an element drawing a conic from the current location with
// control point p0, end point p1 and weight w.
func ConicTo(p0, p1 Point, w float64) PathElement {
	return PathElement{Kind: ConicToKind, P0: p0, P1: p1, Weight: w}
}

func CubicTo(p0, p1, p2 Point) PathElement {
	return PathElement{Kind: CubicToKind, P0: p0, P1: p1, P2: p2}
}

func ClosePath() PathElement {
	return PathElement{Kind: ClosePathKind}
}

// BezPath is a Bézier path built from path elements.
type BezPath []PathElement

// Transform returns a new path with an affine transformation applied to each
// element.
func (p BezPath) Transform(aff Affine) BezPath {
	els := make([]PathElement, len(p))
	for i := range p {
		els[i] = p[i].Transform(aff)
	}
	return els
}

// Push adds an element to the path.
func (p *BezPath) Push(el PathElement) {
	*p = append(*p, el)
}

// MoveTo pushes a "move to" element onto the path.
func (p *BezPath) MoveTo(pt Point) { p.Push(MoveTo(pt)) }

// LineTo pushes a "line to" element onto the path.
func (p *BezPath) LineTo(pt Point) { p.Push(LineTo(pt)) }

// QuadTo pushes a "quad to" element onto the path.
func (p *BezPath) QuadTo(p1, p2 Point) { p.Push(QuadTo(p1, p2)) }

// ConicTo pushes a "conic to" element onto the path.
func (p *BezPath) ConicTo(p1, p2 Point, w float64) { p.Push(ConicTo(p1, p2, w)) }

// CubicTo pushes a "curve to" element onto the path.
func (p *BezPath) CubicTo(p1, p2, p3 Point) { p.Push(CubicTo(p1, p2, p3)) }

// ClosePath pushes a "close path" element onto the path.
func (p *BezPath) ClosePath() { p.Push(ClosePath()) }

// Elements returns an iterator over the path's elements.
func (p BezPath) Elements() iter.Seq[PathElement] { return slices.Values(p) }

func (p BezPath) IsInf() bool {
	for _, el := range p {
		if el.IsInf() {
			return true
		}
	}
	return false
}

func (p BezPath) IsNaN() bool {
	for _, el := range p {
		if el.IsNaN() {
			return true
		}
	}
	return false
}

// SVG converts the path to SVG path data. Conics are approximated as
// described in [WriteSVG].
func (p BezPath) SVG(opts SVGOptions) string {
	return SVG(p.Elements(), opts)
}

func (p BezPath) WriteSVG(w io.Writer, opts SVGOptions) error {
	return WriteSVG(w, p.Elements(), opts)
}

// Quadratics rewrites a sequence of path elements so that it contains no
// curves other than quadratic Béziers. Conics are approximated with
// [Conic.ToQuadSpline] and cubics with [CubicBez.ToQuadSpline], both within
// tolerance, which is a plain distance. Every other element is copied as is.
//
// The only possible error wraps [ErrApproxNotFound], reported when a cubic
// cannot be approximated with at most [MaxSplineSegments] quadratics.
func Quadratics(seq iter.Seq[PathElement], tolerance float64) (BezPath, error) {
	var (
		out      BezPath
		last     Point
		subStart Point
		idx      int
	)
	for el := range seq {
		switch el.Kind {
		case MoveToKind:
			out.Push(el)
			last = el.P0
			subStart = el.P0
		case LineToKind, QuadToKind:
			out.Push(el)
			last, _ = el.EndPoint()
		case ConicToKind:
			cn := Conic{Start: last, Control: el.P0, End: el.P1, Weight: el.Weight}
			for _, q := range cn.ToQuadSpline(tolerance) {
				out.QuadTo(q.P1, q.P2)
			}
			last = el.P1
		case CubicToKind:
			c := CubicBez{last, el.P0, el.P1, el.P2}
			spline, err := c.ToQuadSpline(tolerance * tolerance)
			if err != nil {
				return nil, fmt.Errorf("element %d: %w", idx, err)
			}
			for _, q := range spline {
				out.QuadTo(q.P1, q.P2)
			}
			last = el.P2
		case ClosePathKind:
			out.Push(el)
			last = subStart
		default:
			panic(fmt.Sprintf("unhandled case %v", el.Kind))
		}
		idx++
	}
	return out, nil
}
