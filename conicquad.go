package cucoqu

import (
	"log/slog"
	"math"
)

// MaxQuadPow2 is the deepest subdivision level [Conic.QuadPow2] returns. A
// conic is never approximated by more than 2^MaxQuadPow2 quadratics.
const MaxQuadPow2 = 5

// nearlyZero is the per-axis distance below which two points are considered
// the same when detecting degenerate subdivisions.
const nearlyZero = 1.0 / (1 << 12)

// QuadError returns the per-axis error of reading the conic's points directly
// as a quadratic Bézier.
func (cn Conic) QuadError() Vec2 {
	a := cn.Weight - 1
	k := a / (4 * (2 + a))
	return Vec2(cn.Start).Sub(Vec2(cn.Control).Mul(2)).Add(Vec2(cn.End)).Mul(k)
}

// BelowQuadTolerance reports whether the conic's points, read as a quadratic
// Bézier, are within tol of the conic.
func (cn Conic) BelowQuadTolerance(tol float64) bool {
	return cn.QuadError().Hypot2() <= tol*tol
}

// QuadPow2 returns the subdivision level needed for the conic to be
// approximated within tol by 2^level quadratic Béziers. Each level reduces the
// error by a factor of four. The result is capped at [MaxQuadPow2], and is 0 if
// the error can't be computed.
func (cn Conic) QuadPow2(tol float64) int {
	err := cn.QuadError().Hypot()
	if math.IsNaN(err) {
		return 0
	}
	var pow2 int
	for ; pow2 < MaxQuadPow2; pow2++ {
		if err <= tol {
			break
		}
		err *= 0.25
	}
	return pow2
}

// ToQuadSpline approximates the conic with quadratic Béziers, using as many
// as [Conic.QuadPow2] calls for.
//
// The conversion always succeeds. If extreme weights produce non-finite
// coordinates, all interior points of the spline are pinned to the conic's
// control point. The result keeps the conic's endpoints but may be visually
// degenerate.
func (cn Conic) ToQuadSpline(tol float64) QuadSpline {
	pow2 := cn.QuadPow2(tol)
	quads, collapsed := cn.quadsPow2(pow2)
	if !quads.isFinite() {
		quads.pin(cn.Start, cn.Control, cn.End)
		Logger().Warn("conic subdivision produced non-finite points",
			slog.Any("conic", cn), slog.Float64("tolerance", tol))
	}
	if collapsed {
		Logger().Warn("conic collapsed to lines",
			slog.Any("conic", cn), slog.Float64("tolerance", tol))
	} else {
		Logger().Debug("converted conic to quadratics",
			slog.Float64("tolerance", tol), slog.Int("pow2", pow2), slog.Int("quads", len(quads)))
	}
	return quads
}

func (cn Conic) quadsPow2(pow2 int) (quads QuadSpline, collapsed bool) {
	if pow2 == MaxQuadPow2 {
		// An extreme weight may chop into a pair of lines, in which case
		// subdividing further would only produce a fan of degenerate quads.
		l, r := cn.Chop()
		if nearlyEqual(l.Control, l.End) && nearlyEqual(r.Start, r.Control) {
			mid := l.Control
			return QuadSpline{
				{cn.Start, mid, mid},
				{mid, mid, r.End},
			}, true
		}
	}

	conics := cn.Subdivide(pow2)
	quads = make(QuadSpline, len(conics))
	for i, c := range conics {
		quads[i] = QuadBez{c.Start, c.Control, c.End}
	}
	return quads, false
}

func nearlyEqual(a, b Point) bool {
	return math.Abs(a.X-b.X) <= nearlyZero && math.Abs(a.Y-b.Y) <= nearlyZero
}
