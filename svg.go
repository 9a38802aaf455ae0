package cucoqu

import (
	"fmt"
	"io"
	"iter"
	"strconv"
	"strings"
)

// DefaultSVGTolerance is the tolerance used to approximate conics in SVG
// output when [SVGOptions.Tolerance] is zero.
const DefaultSVGTolerance = 0.1

// SVGOptions specifies optional settings for [SVG] and [WriteSVG].
type SVGOptions struct {
	// The maximum precision with which to format coordinates. A value of 0
	// chooses the highest precision necessary to unambiguously represent any
	// given coordinate.
	MaxPrecision int
	// Tolerance for approximating conics, which SVG can't express, with
	// quadratic Béziers. Zero selects DefaultSVGTolerance.
	Tolerance float64
}

// SVG converts a sequence of path elements to a string of SVG path commands.
//
// See [WriteSVG] for a version that writes to an [io.Writer] instead of
// returning a string.
func SVG(seq iter.Seq[PathElement], opts SVGOptions) string {
	sb := &strings.Builder{}
	WriteSVG(sb, seq, opts)
	return sb.String()
}

// WriteSVG converts a sequence of path elements to a string of SVG path
// commands and writes it to w. ConicTo elements are written as one Q command
// per quadratic of [Conic.ToQuadSpline].
//
// The current implementation doesn't take any special care to produce a
// short string (reducing precision, using relative movement).
func WriteSVG(w io.Writer, seq iter.Seq[PathElement], opts SVGOptions) error {
	tol := opts.Tolerance
	if tol <= 0 {
		tol = DefaultSVGTolerance
	}
	var err error
	write := func(s string) {
		if err != nil {
			return
		}
		_, err = io.WriteString(w, s)
	}
	writef := func(s string, v ...any) {
		if err != nil {
			return
		}
		_, err = fmt.Fprintf(w, s, v...)
	}
	format := func(n float64) string {
		if opts.MaxPrecision <= 0 {
			return strconv.FormatFloat(n, 'f', -1, 64)
		}
		s := strconv.FormatFloat(n, 'f', opts.MaxPrecision, 64)
		if strings.ContainsRune(s, '.') {
			s = strings.TrimRight(strings.TrimRight(s, "0"), ".")
		}
		return s
	}
	quad := func(p1, p2 Point) {
		writef("Q%s,%s %s,%s",
			format(p1.X), format(p1.Y),
			format(p2.X), format(p2.Y))
	}

	var last, subStart Point
	first := true
	for el := range seq {
		if err != nil {
			return err
		}
		if !first {
			write(" ")
		}
		first = false
		switch el.Kind {
		case MoveToKind:
			writef("M%s,%s", format(el.P0.X), format(el.P0.Y))
			subStart = el.P0
		case LineToKind:
			writef("L%s,%s", format(el.P0.X), format(el.P0.Y))
		case QuadToKind:
			quad(el.P0, el.P1)
		case ConicToKind:
			cn := Conic{Start: last, Control: el.P0, End: el.P1, Weight: el.Weight}
			for i, q := range cn.ToQuadSpline(tol) {
				if i > 0 {
					write(" ")
				}
				quad(q.P1, q.P2)
			}
		case CubicToKind:
			writef("C%s,%s %s,%s %s,%s",
				format(el.P0.X), format(el.P0.Y),
				format(el.P1.X), format(el.P1.Y),
				format(el.P2.X), format(el.P2.Y))
		case ClosePathKind:
			write("Z")
		default:
			panic(fmt.Sprintf("unhandled case %v", el.Kind))
		}
		if pt, ok := el.EndPoint(); ok {
			last = pt
		} else {
			last = subStart
		}
	}
	return err
}
