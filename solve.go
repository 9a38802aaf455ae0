package cucoqu

import "math"

// MaxExtrema is the maximum number of extrema reported by [Conic.Extrema] and
// [CubicBez.Extrema]. Each coordinate contributes at most two.
const MaxExtrema = 4

// SolveQuadratic finds real roots of a quadratic equation.
//
// Returns values of x for which c0 + c1 x + c2 x² = 0.0
//
// If the equation is nearly linear, the root of the linear part is returned
// and the other root, which may be out of representable range, is dropped. In
// the degenerate case where all coefficients are zero, a single 0.0 is
// returned.
func SolveQuadratic(c0, c1, c2 float64) ([2]float64, int) {
	sc0 := c0 / c2
	sc1 := c1 / c2
	if math.IsInf(sc0, 0) || math.IsInf(sc1, 0) {
		// c2 is zero or very small, treat as linear eqn
		root := -c0 / c1
		switch {
		case !math.IsInf(root, 0) && !math.IsNaN(root):
			return [2]float64{root}, 1
		case c0 == 0 && c1 == 0:
			return [2]float64{0}, 1
		default:
			return [2]float64{}, 0
		}
	}
	arg := sc1*sc1 - 4*sc0
	var root1 float64
	if math.IsInf(arg, 0) {
		// sc1² overflowed. Find one root using sc1 x + x² = 0, the other as
		// sc0 / root1.
		root1 = -sc1
	} else {
		if arg < 0 {
			return [2]float64{}, 0
		} else if arg == 0 {
			return [2]float64{-0.5 * sc1}, 1
		}
		// See https://math.stackexchange.com/questions/866331
		root1 = -0.5 * (sc1 + math.Copysign(math.Sqrt(arg), sc1))
	}
	root2 := sc0 / root1
	if math.IsInf(root2, 0) || math.IsNaN(root2) {
		return [2]float64{root1}, 1
	}
	if root2 > root1 {
		return [2]float64{root1, root2}, 2
	}
	return [2]float64{root2, root1}, 2
}
