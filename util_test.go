package cucoqu

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func diff(t *testing.T, want, got any, opts ...cmp.Option) {
	t.Helper()
	if d := cmp.Diff(want, got, opts...); d != "" {
		t.Error(d)
	}
}

func assertNear(t *testing.T, p0 Point, p1 Point, epsilon float64) {
	t.Helper()
	if d := p1.Sub(p0).Hypot(); d > epsilon {
		t.Fatalf("got %s, expected %s", p0, p1)
	}
}

// quarterCircles returns a circle of radius 50 around (50, 0) as four conics,
// starting at the origin and running clockwise in a y-up coordinate system.
func quarterCircles() [4]Conic {
	const w = 0.7071067811865476
	return [4]Conic{
		{Pt(0, 0), Pt(0, 50), Pt(50, 50), w},
		{Pt(50, 50), Pt(100, 50), Pt(100, 0), w},
		{Pt(100, 0), Pt(100, -50), Pt(50, -50), w},
		{Pt(50, -50), Pt(0, -50), Pt(0, 0), w},
	}
}

var pointComparer = cmp.Comparer(func(p1, p2 Point) bool {
	return p1.Distance(p2) <= 1e-9
})

// onCircle fails the test if pt isn't on the circle around center with
// radius r.
func onCircle(t *testing.T, pt, center Point, r float64) {
	t.Helper()
	if d := pt.Distance(center); math.Abs(d-r) > 1e-9 {
		t.Errorf("%s is %v away from %s, want %v", pt, d, center, r)
	}
}

func mustPanic(t *testing.T, f func()) {
	t.Helper()
	defer func() {
		t.Helper()
		if recover() == nil {
			t.Error("expected panic")
		}
	}()
	f()
}
