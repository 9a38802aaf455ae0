package cucoqu

import (
	"errors"
	"math"
	"testing"
)

var testCubic = CubicBez{
	Pt(550.0, 258.0),
	Pt(1044.0, 482.0),
	Pt(2029.0, 1841.0),
	Pt(1934.0, 1554.0),
}

func TestCubicBezSplitIntoN(t *testing.T) {
	for n := 1; n <= 10; n++ {
		cubics := testCubic.SplitIntoN(n)
		if len(cubics) != n {
			t.Fatalf("got %d cubics, want %d", len(cubics), n)
		}
		assertNear(t, cubics[0].P0, testCubic.P0, 1e-9)
		assertNear(t, cubics[n-1].P3, testCubic.P3, 1e-9)
		for i, c := range cubics {
			if i > 0 {
				assertNear(t, c.P0, cubics[i-1].P3, 1e-9)
			}
			for j := range 5 {
				u := float64(j) / 4
				assertNear(t, c.Eval(u), testCubic.Eval((float64(i)+u)/float64(n)), 1e-9)
			}
		}
	}

	diff(t, []CubicBez{testCubic}, testCubic.SplitIntoN(1), pointComparer)
	mustPanic(t, func() { testCubic.SplitIntoN(0) })
}

func TestCubicBezSplitIntoNMatchesSubdivide(t *testing.T) {
	l, r := testCubic.Subdivide()
	diff(t, []CubicBez{l, r}, testCubic.SplitIntoN(2), pointComparer)
}

func TestCubicBezFitsInside(t *testing.T) {
	tests := []struct {
		c    CubicBez
		tol  float64
		want bool
	}{
		{CubicBez{Pt(0, 0), Pt(1, 0), Pt(1, 1), Pt(0, 1)}, 4, true},
		{CubicBez{Pt(0, 0), Pt(1, 0), Pt(1, 1), Pt(0, 1)}, 0.1, false},
		{CubicBez{Pt(0, 0), Pt(0, 0), Pt(0, 0), Pt(0, 0)}, 0, true},
		// The control points are far away, but the curve stays close to the
		// origin.
		{CubicBez{Pt(0, 0), Pt(3, 0), Pt(-3, 0), Pt(0, 0)}, 1, true},
		{CubicBez{Pt(0, 0), Pt(30, 0), Pt(30, 0), Pt(0, 0)}, 100, false},
		{CubicBez{Pt(0, 0), Pt(math.NaN(), 0), Pt(1, 1), Pt(0, 1)}, 4, false},
		{CubicBez{Pt(0, 0), Pt(1, 0), Pt(1, 1), Pt(0, 1)}, math.NaN(), false},
	}
	for i, tt := range tests {
		if got := tt.c.FitsInside(tt.tol); got != tt.want {
			t.Errorf("%d: got %t, want %t", i, got, tt.want)
		}
	}
}

func TestCubicBezApproxControl(t *testing.T) {
	c := CubicBez{Pt(0, 0), Pt(10, 0), Pt(20, 10), Pt(20, 20)}
	diff(t, Pt(15, 0), c.ApproxControl(0))
	diff(t, Pt(20, 5), c.ApproxControl(1))
	diff(t, Pt(17.5, 2.5), c.ApproxControl(0.5))
}

func TestCubicBezApproxQuadratic(t *testing.T) {
	{
		q, err := testCubic.ApproxQuadratic(344.0 * 344.0)
		if err != nil {
			t.Fatal(err)
		}
		want := QuadBez{
			Pt(550.0, 258.0),
			Pt(1673.665720592873, 767.5164401068898),
			Pt(1934.0, 1554.0),
		}
		diff(t, want, q, pointComparer)
	}

	{
		_, err := testCubic.ApproxQuadratic(343.0 * 343.0)
		if !errors.Is(err, ErrApproxNotFound) {
			t.Errorf("got error %v, want %v", err, ErrApproxNotFound)
		}
	}

	parallel := []CubicBez{
		{Pt(0, 0), Pt(1, 0), Pt(2, 1), Pt(3, 1)},
		{Pt(0, 0), Pt(1, 1), Pt(2, 2), Pt(3, 3)},
	}
	for _, c := range parallel {
		if _, err := c.ApproxQuadratic(1e6); !errors.Is(err, ErrApproxNotFound) {
			t.Errorf("%v: got error %v, want %v", c, err, ErrApproxNotFound)
		}
	}
}

func TestCubicBezApproxSpline(t *testing.T) {
	{
		spline, err := testCubic.ApproxSpline(2, 343.0*343.0)
		if err != nil {
			t.Fatal(err)
		}
		want := QuadBSpline{
			Pt(550.0, 258.0),
			Pt(920.5, 426.0),
			Pt(2005.25, 1769.25),
			Pt(1934.0, 1554.0),
		}
		diff(t, want, spline.BSpline(), pointComparer)
	}

	{
		spline, err := testCubic.ToQuadSpline(5.0 * 5.0)
		if err != nil {
			t.Fatal(err)
		}
		want := QuadBSpline{
			Pt(550.0, 258.0),
			Pt(673.5, 314.0),
			Pt(88639.0/90.0, 52584.0/90.0),
			Pt(1312.6305555555557, 927.825),
			Pt(1613.1194444444443, 1267.425),
			Pt(1842.7055555555555, 1525.8166666666666),
			Pt(1957.75, 1625.75),
			Pt(1934.0, 1554.0),
		}
		diff(t, want, spline.BSpline(), pointComparer)
		if spline.Start() != testCubic.P0 || spline.End() != testCubic.P3 {
			t.Errorf("spline runs from %s to %s", spline.Start(), spline.End())
		}
	}
}

func TestCubicBezToQuadSplineMatchesFontTools(t *testing.T) {
	cubic := CubicBez{
		Pt(408.0, 321.0),
		Pt(408.0, 452.0),
		Pt(342.0, 560.0),
		Pt(260.0, 560.0),
	}
	spline, err := cubic.ToQuadSpline(1.0)
	if err != nil {
		t.Fatal(err)
	}
	want := QuadBSpline{
		Pt(408.0, 321.0),
		Pt(408.0, 386.5),
		Pt(368.16666666666663, 495.0833333333333),
		Pt(301.0, 560.0),
		Pt(260.0, 560.0),
	}
	diff(t, want, spline.BSpline(), pointComparer)

	// from https://github.com/googlefonts/fontmake-rs/issues/217
	cubic = CubicBez{
		Pt(796.0, 319.0),
		Pt(727.0, 314.0),
		Pt(242.0, 303.0),
		Pt(106.0, 303.0),
	}
	if _, err := cubic.ApproxSpline(7, 1.0); err != nil {
		t.Errorf("could not approximate curve in 7 splits: %s", err)
	}
	if _, err := cubic.ToQuadSpline(1e-6); err != nil {
		t.Errorf("could not approximate curve with 1e-6 tolerance: %s", err)
	}
}

func TestCubicBezToQuadSplineTolerance(t *testing.T) {
	spline, err := testCubic.ToQuadSpline(1e6)
	if err != nil {
		t.Fatal(err)
	}
	if len(spline) != 1 {
		t.Errorf("got %d quadratics, want 1", len(spline))
	}

	if _, err := testCubic.ToQuadSpline(1e-12); !errors.Is(err, ErrApproxNotFound) {
		t.Errorf("got error %v, want %v", err, ErrApproxNotFound)
	}
}

func TestCubicBezToQuadSplineNonFinite(t *testing.T) {
	tests := []struct {
		c   CubicBez
		tol float64
	}{
		// Finite input whose error terms overflow.
		{CubicBez{Pt(0, 0), Pt(1e308, -1e308), Pt(-1e308, 1e308), Pt(1e308, 1e308)}, 1},
		{CubicBez{Pt(0, 0), Pt(math.NaN(), 0), Pt(1, 1), Pt(0, 1)}, 1},
		{testCubic, math.NaN()},
	}
	for i, tt := range tests {
		if _, err := tt.c.ToQuadSpline(tt.tol); !errors.Is(err, ErrApproxNotFound) {
			t.Errorf("%d: got error %v, want %v", i, err, ErrApproxNotFound)
		}
	}
}

func TestCubicBezToQuadSplineDegenerate(t *testing.T) {
	// All points coincide, so the tangents are undefined.
	c := CubicBez{Pt(1, 1), Pt(1, 1), Pt(1, 1), Pt(1, 1)}
	spline, err := c.ToQuadSpline(1.0)
	if err != nil {
		t.Fatal(err)
	}
	for _, q := range spline {
		diff(t, QuadBez{Pt(1, 1), Pt(1, 1), Pt(1, 1)}, q)
	}
}
