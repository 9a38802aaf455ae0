package cucoqu

import (
	"fmt"
	"log/slog"
)

// ringState tracks the progress of [CubicsToQuadSplines] around the ring of
// curves.
type ringState struct {
	// curve is the index of the curve being fitted.
	curve int
	// lastChanged is the index of the curve that last required more segments.
	// Once the ring gets back to it, every curve fits with the current count.
	lastChanged int
	// segments is the segment count every curve is fitted with.
	segments int
	// len is the number of curves in the ring.
	len int
}

// advance moves on to the next curve and reports whether the ring has been
// completed without any further changes.
func (st *ringState) advance() bool {
	st.curve = (st.curve + 1) % st.len
	return st.curve == st.lastChanged
}

// grow increases the segment count on behalf of the current curve. It returns
// false if the count is already at its maximum.
func (st *ringState) grow() bool {
	if st.segments >= MaxSplineSegments {
		return false
	}
	st.segments++
	st.lastChanged = st.curve
	return true
}

// CubicsToQuadSplines approximates multiple cubics with quadratic splines, the
// i-th cubic within tolerances[i]. All resulting splines have the same number
// of segments, which keeps them compatible for interpolation, for example
// between the masters of a variable font.
//
// It returns an [*ApproxNotFoundError] if some cubic would need more than
// [MaxSplineSegments] segments. It panics if the lengths of curves and
// tolerances differ.
func CubicsToQuadSplines(curves []CubicBez, tolerances []float64) ([]QuadSpline, error) {
	if len(curves) != len(tolerances) {
		panic(fmt.Sprintf("got %d curves but %d tolerances", len(curves), len(tolerances)))
	}
	splines := make([]QuadSpline, len(curves))
	if len(curves) == 0 {
		return splines, nil
	}

	st := ringState{segments: 1, len: len(curves)}
	for {
		spline, err := curves[st.curve].ApproxSpline(st.segments, tolerances[st.curve])
		if err != nil {
			if !st.grow() {
				Logger().Warn("no compatible quadratic approximation",
					slog.Int("curves", len(curves)), slog.Int("curve", st.curve))
				return nil, &ApproxNotFoundError{Index: st.curve, Segments: st.segments}
			}
			continue
		}
		splines[st.curve] = spline
		if st.advance() {
			Logger().Debug("converted cubics to quadratics",
				slog.Int("curves", len(curves)), slog.Int("segments", st.segments))
			return splines, nil
		}
	}
}

// CubicsToQuadSplinesTol is like [CubicsToQuadSplines] but uses the same
// tolerance for all curves.
func CubicsToQuadSplinesTol(curves []CubicBez, tolerance float64) ([]QuadSpline, error) {
	tolerances := make([]float64, len(curves))
	for i := range tolerances {
		tolerances[i] = tolerance
	}
	return CubicsToQuadSplines(curves, tolerances)
}
