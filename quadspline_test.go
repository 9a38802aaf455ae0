package cucoqu

import (
	"slices"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestQuadBSplineQuads(t *testing.T) {
	p1 := Pt(1, 1)
	p2 := Pt(2, 2)
	p3 := Pt(3, 3)
	p5 := Pt(5, 5)
	p8 := Pt(8, 8)
	tests := []struct {
		in  QuadBSpline
		out []QuadBez
	}{
		{make(QuadBSpline, 0), nil},
		{make(QuadBSpline, 1), nil},
		{make(QuadBSpline, 2), nil},
		{QuadBSpline{p1, p2, p3}, []QuadBez{{p1, p2, p3}}},
		{QuadBSpline{p1, p3, p5, p8}, []QuadBez{
			{p1, p3, p3.Midpoint(p5)},
			{p3.Midpoint(p5), p5, p8},
		}},
	}

	for _, tt := range tests {
		got := slices.Collect(tt.in.Quads())
		diff(t, tt.out, got, cmpopts.EquateEmpty())
		diff(t, QuadSpline(tt.out), tt.in.Spline(), cmpopts.EquateEmpty())
	}
}

func TestQuadSplineBSpline(t *testing.T) {
	spline, err := testCubic.ToQuadSpline(25)
	if err != nil {
		t.Fatal(err)
	}
	bs := spline.BSpline()
	if len(bs) != len(spline)+2 {
		t.Fatalf("got %d points, want %d", len(bs), len(spline)+2)
	}
	diff(t, spline, bs.Spline())

	diff(t, QuadBSpline(nil), QuadSpline(nil).BSpline())
}

func TestQuadSplinePathElements(t *testing.T) {
	s := QuadSpline{
		{Pt(0, 0), Pt(1, 2), Pt(3, 4)},
		{Pt(3, 4), Pt(5, 6), Pt(7, 8)},
	}
	want := []PathElement{
		MoveTo(Pt(0, 0)),
		QuadTo(Pt(1, 2), Pt(3, 4)),
		QuadTo(Pt(5, 6), Pt(7, 8)),
	}
	diff(t, want, slices.Collect(s.PathElements()))
	diff(t, "M0,0 Q1,2 3,4 Q5,6 7,8", s.SVG(SVGOptions{}))

	var sb strings.Builder
	if err := s.Transform(Translate(Vec(1, 1))).WriteSVG(&sb, SVGOptions{}); err != nil {
		t.Fatal(err)
	}
	diff(t, "M1,1 Q2,3 4,5 Q6,7 8,9", sb.String())

	if got := slices.Collect(QuadSpline(nil).PathElements()); len(got) != 0 {
		t.Errorf("got %v for empty spline", got)
	}
}

func TestQuadSplinePin(t *testing.T) {
	s := make(QuadSpline, 3)
	s.pin(Pt(0, 0), Pt(1, 1), Pt(2, 0))
	want := QuadSpline{
		{Pt(0, 0), Pt(1, 1), Pt(1, 1)},
		{Pt(1, 1), Pt(1, 1), Pt(1, 1)},
		{Pt(1, 1), Pt(1, 1), Pt(2, 0)},
	}
	diff(t, want, s)
}
