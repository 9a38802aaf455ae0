package cucoqu

import (
	"errors"
	"math"
	"strings"
	"testing"
)

func testPath() BezPath {
	var p BezPath
	p.MoveTo(Pt(0, 0))
	p.LineTo(Pt(10, 0))
	p.ConicTo(Pt(10, 10), Pt(0, 10), math.Sqrt2/2)
	p.ClosePath()
	p.MoveTo(testCubic.P0)
	p.CubicTo(testCubic.P1, testCubic.P2, testCubic.P3)
	p.ClosePath()
	return p
}

func TestQuadratics(t *testing.T) {
	got, err := Quadratics(testPath().Elements(), 5)
	if err != nil {
		t.Fatal(err)
	}
	kinds := make([]PathElementKind, len(got))
	for i, el := range got {
		kinds[i] = el.Kind
	}
	wantKinds := []PathElementKind{
		MoveToKind, LineToKind, QuadToKind, ClosePathKind,
		MoveToKind, QuadToKind, QuadToKind, QuadToKind, QuadToKind, QuadToKind, QuadToKind, ClosePathKind,
	}
	diff(t, wantKinds, kinds)

	// The quarter circle is within tolerance as is.
	diff(t, QuadTo(Pt(10, 10), Pt(0, 10)), got[2])
	diff(t, Pt(673.5, 314), got[5].P0, pointComparer)
	diff(t, testCubic.P3, got[10].P1)
}

func TestQuadraticsFollowsClosePath(t *testing.T) {
	var p BezPath
	p.MoveTo(Pt(0, 0))
	p.LineTo(Pt(10, 0))
	p.ClosePath()
	p.ConicTo(Pt(0, 10), Pt(10, 10), 1)
	got, err := Quadratics(p.Elements(), 1)
	if err != nil {
		t.Fatal(err)
	}
	// After ClosePath the current point is the start of the subpath.
	diff(t, QuadTo(Pt(0, 10), Pt(10, 10)), got[3])
}

func TestQuadraticsError(t *testing.T) {
	_, err := Quadratics(testPath().Elements(), 1e-6)
	if !errors.Is(err, ErrApproxNotFound) {
		t.Fatalf("got error %v, want %v", err, ErrApproxNotFound)
	}
	if !strings.Contains(err.Error(), "element 5") {
		t.Errorf("error %q doesn't name the failing element", err)
	}
}

func TestPathElementConic(t *testing.T) {
	el := ConicTo(Pt(1, 2), Pt(3, 4), 0.5)
	diff(t, "ConicTo((1, 2), (3, 4), 0.5)", el.String())
	if pt, ok := el.EndPoint(); !ok || pt != Pt(3, 4) {
		t.Errorf("got end point %s, %t", pt, ok)
	}
	diff(t, ConicTo(Pt(2, 3), Pt(4, 5), 0.5), el.Transform(Translate(Vec(1, 1))))
	if _, ok := ClosePath().EndPoint(); ok {
		t.Error("ClosePath has an end point")
	}
	if !ConicTo(Pt(1, 2), Pt(3, 4), math.NaN()).IsNaN() {
		t.Error("NaN weight not detected")
	}
}

func TestSVGConics(t *testing.T) {
	c := Circle{Radius: 1}
	p := BezPath{}
	for el := range c.PathElements() {
		p.Push(el)
	}
	diff(t, "M1,0 Q1,1 0,1 Q-1,1 -1,0 Q-1,-1 0,-1 Q1,-1 1,0 Z", p.SVG(SVGOptions{Tolerance: 1}))

	svg := p.SVG(SVGOptions{MaxPrecision: 3, Tolerance: 0.05})
	if n := strings.Count(svg, "Q"); n != 8 {
		t.Errorf("got %d quadratics in %q, want 8", n, svg)
	}
	if !strings.HasPrefix(svg, "M1,0 Q1,0.414 0.707,0.707 Q0.414,1 0,1 ") {
		t.Errorf("unexpected SVG %q", svg)
	}
}

func TestSVGLinesAndCubics(t *testing.T) {
	var p BezPath
	p.MoveTo(Pt(10, 10))
	p.CubicTo(Pt(20, 20), Pt(30, 30), Pt(40, 40))
	p.MoveTo(Pt(50, 50))
	p.LineTo(Pt(10.26, 10))
	p.ClosePath()
	diff(t, "M10,10 C20,20 30,30 40,40 M50,50 L10.26,10 Z", p.SVG(SVGOptions{}))
	diff(t, "M10,10 C20,20 30,30 40,40 M50,50 L10.3,10 Z", p.SVG(SVGOptions{MaxPrecision: 1}))
}
