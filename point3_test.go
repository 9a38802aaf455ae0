package cucoqu

import "testing"

func TestPoint3Project(t *testing.T) {
	tests := []struct {
		pt   Point
		w    float64
		want Point
	}{
		{Pt(3, 4), 1, Pt(3, 4)},
		{Pt(3, 4), 0.5, Pt(3, 4)},
		{Pt(-2, 8), 7, Pt(-2, 8)},
	}
	for _, tt := range tests {
		diff(t, tt.pt.Lift(tt.w).Project(), tt.want)
	}

	if (Point3{1, 1, 0}).Project().IsFinite() {
		t.Error("projecting z=0 produced a finite point")
	}
}

func TestPoint3Lerp(t *testing.T) {
	a := Point3{0, 0, 1}
	b := Point3{10, 20, 3}
	diff(t, a.Lerp(b, 0.5), Point3{5, 10, 2})
	diff(t, a.Lerp(b, 0), a)
	diff(t, a.Lerp(b, 1), b)
	if got := b.Sub(a).Hypot2(); got != 100+400+4 {
		t.Errorf("got squared magnitude %v, want 504", got)
	}
}
