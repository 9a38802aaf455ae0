// Package cucoqu converts conic sections and cubic Béziers to quadratic
// Béziers. It was designed to serve the needs of font tooling and 2D
// rasterizers that only understand quadratic curves, such as TrueType glyph
// outlines.
//
// # Conics
//
// A [Conic] is a rational quadratic Bézier: a start point, a control point, an
// end point and a weight. Depending on the weight it describes an ellipse
// (weight < 1), a parabola (weight = 1) or a hyperbola (weight > 1). Conics
// represent circular and elliptical arcs exactly, which cubic Béziers cannot.
//
// [Conic.ToQuadSpline] approximates a conic with 2ⁿ quadratic Béziers, choosing
// n with [Conic.QuadPow2] so that the approximation stays within a tolerance.
// The result is always finite: degenerate conics collapse to lines, and
// conics whose subdivision overflows are replaced by their control polygon.
//
// [Circle] and [Ellipse] can represent themselves as four quarter-arc conics.
//
// # Cubic Béziers
//
// [CubicBez.ToQuadSpline] approximates a cubic Bézier with the smallest number
// of quadratic Béziers whose control points stay within a tolerance of the
// cubic. [CubicsToQuadSplines] does the same for a set of cubics that must be
// converted to the same number of quadratics, such as the masters of a variable
// font. Unlike conics, tolerances for cubics are squared distances.
//
// When no approximation with at most [MaxSplineSegments] quadratics exists,
// these functions return an error matching [ErrApproxNotFound].
//
// # Quadratic splines
//
// A [QuadSpline] is a sequence of connected quadratic Béziers. Its
// [QuadSpline.BSpline] method returns the TrueType encoding, which omits
// on-curve points that lie halfway between two off-curve points.
//
// # Paths
//
// [BezPath] is a slice of [PathElement] values akin to the drawing commands of
// PostScript or SVG, extended by [ConicTo]. [Quadratics] rewrites any sequence
// of path elements into one that only contains lines and quadratic Béziers.
//
// # Logging
//
// The package doesn't log by default. Use [SetLogger] to observe subdivision
// levels and degenerate input.
//
// # Literature
//
// This package makes use of the following ideas:
//   - [A Primer on Bézier Curves]
//   - The conic support in [Skia]
//   - The cu2qu module of [fontTools]
//
// [A Primer on Bézier Curves]: https://pomax.github.io/bezierinfo/
// [Skia]: https://skia.org/
// [fontTools]: https://github.com/fonttools/fonttools
package cucoqu
