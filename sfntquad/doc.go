// Package sfntquad converts the cubic segments of glyph outlines loaded with
// [golang.org/x/image/font/sfnt] to quadratic segments, as required by
// TrueType and by rasterizers that only support quadratic Béziers.
//
// [Convert] converts a single outline. [ConvertCompatible] converts the same
// glyph from several masters of a variable font so that the results remain
// interpolation compatible: every cubic is replaced by the same number of
// quadratics in every master.
package sfntquad
