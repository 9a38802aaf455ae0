package sfntquad

import (
	"errors"
	"fmt"
	"log/slog"
	"math"

	"honnef.co/go/cucoqu"

	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
)

// ErrIncompatible is returned by [ConvertCompatible] when the masters don't
// share the same sequence of segment ops.
var ErrIncompatible = errors.New("sfntquad: incompatible masters")

func (cfg config) point(p fixed.Point26_6) cucoqu.Point {
	return cucoqu.Pt(
		float64(p.X)/64*cfg.scale,
		float64(p.Y)/64*cfg.scale,
	)
}

func fixedPoint(p cucoqu.Point) fixed.Point26_6 {
	return fixed.Point26_6{
		X: fixed.Int26_6(math.Round(p.X * 64)),
		Y: fixed.Int26_6(math.Round(p.Y * 64)),
	}
}

// maxErr returns the squared tolerance expected by the cubic conversion.
func (cfg config) maxErr() float64 {
	return cfg.tolerance * cfg.tolerance
}

// cubic returns the cubic described by a CubeTo segment starting at start.
func (cfg config) cubic(start fixed.Point26_6, seg sfnt.Segment) cucoqu.CubicBez {
	return cucoqu.CubicBez{
		P0: cfg.point(start),
		P1: cfg.point(seg.Args[0]),
		P2: cfg.point(seg.Args[1]),
		P3: cfg.point(seg.Args[2]),
	}
}

// copySegment scales the points of a MoveTo, LineTo or QuadTo segment.
func (cfg config) copySegment(seg sfnt.Segment) sfnt.Segment {
	out := sfnt.Segment{Op: seg.Op}
	n := 1
	if seg.Op == sfnt.SegmentOpQuadTo {
		n = 2
	}
	for i := range n {
		out.Args[i] = fixedPoint(cfg.point(seg.Args[i]))
	}
	return out
}

func appendQuads(segs sfnt.Segments, spline cucoqu.QuadSpline) sfnt.Segments {
	for _, q := range spline {
		segs = append(segs, sfnt.Segment{
			Op:   sfnt.SegmentOpQuadTo,
			Args: [3]fixed.Point26_6{fixedPoint(q.P1), fixedPoint(q.P2)},
		})
	}
	return segs
}

// endPoint returns the point a segment ends at.
func endPoint(seg sfnt.Segment) fixed.Point26_6 {
	switch seg.Op {
	case sfnt.SegmentOpQuadTo:
		return seg.Args[1]
	case sfnt.SegmentOpCubeTo:
		return seg.Args[2]
	default:
		return seg.Args[0]
	}
}

// Convert returns a copy of segs in which every CubeTo segment has been
// replaced by one or more QuadTo segments. Coordinates are rounded to 26.6
// fixed point.
//
// If a cubic cannot be approximated within the tolerance, the returned error
// matches [cucoqu.ErrApproxNotFound].
func Convert(segs sfnt.Segments, opts ...Option) (sfnt.Segments, error) {
	cfg := newConfig(opts)
	out := make(sfnt.Segments, 0, len(segs))
	var last fixed.Point26_6
	for i, seg := range segs {
		switch seg.Op {
		case sfnt.SegmentOpMoveTo, sfnt.SegmentOpLineTo, sfnt.SegmentOpQuadTo:
			out = append(out, cfg.copySegment(seg))
		case sfnt.SegmentOpCubeTo:
			spline, err := cfg.cubic(last, seg).ToQuadSpline(cfg.maxErr())
			if err != nil {
				return nil, fmt.Errorf("sfntquad: segment %d: %w", i, err)
			}
			out = appendQuads(out, spline)
		default:
			return nil, fmt.Errorf("sfntquad: segment %d: invalid op %d", i, seg.Op)
		}
		last = endPoint(seg)
	}
	cucoqu.Logger().Debug("converted outline to quadratics",
		slog.Int("in", len(segs)), slog.Int("out", len(out)))
	return out, nil
}

func checkCompatible(masters []sfnt.Segments) error {
	for i, m := range masters[1:] {
		if len(m) != len(masters[0]) {
			return fmt.Errorf("%w: master %d has %d segments, master 0 has %d",
				ErrIncompatible, i+1, len(m), len(masters[0]))
		}
		for j, seg := range m {
			if op := masters[0][j].Op; seg.Op != op {
				return fmt.Errorf("%w: segment %d of master %d has op %d, master 0 has %d",
					ErrIncompatible, j, i+1, seg.Op, op)
			}
		}
	}
	return nil
}

// ConvertCompatible is like [Convert] but converts the same outline from
// several masters at once. All masters must consist of the same sequence of
// segment ops, otherwise the returned error matches [ErrIncompatible]. Cubics
// at the same position are converted together with
// [cucoqu.CubicsToQuadSplines], so the outputs share the same sequence of
// segment ops, too.
func ConvertCompatible(masters []sfnt.Segments, opts ...Option) ([]sfnt.Segments, error) {
	out := make([]sfnt.Segments, len(masters))
	if len(masters) == 0 {
		return out, nil
	}
	if err := checkCompatible(masters); err != nil {
		return nil, err
	}

	cfg := newConfig(opts)
	for i := range out {
		out[i] = make(sfnt.Segments, 0, len(masters[0]))
	}
	lasts := make([]fixed.Point26_6, len(masters))
	curves := make([]cucoqu.CubicBez, len(masters))
	for j, seg := range masters[0] {
		switch seg.Op {
		case sfnt.SegmentOpMoveTo, sfnt.SegmentOpLineTo, sfnt.SegmentOpQuadTo:
			for i, m := range masters {
				out[i] = append(out[i], cfg.copySegment(m[j]))
			}
		case sfnt.SegmentOpCubeTo:
			for i, m := range masters {
				curves[i] = cfg.cubic(lasts[i], m[j])
			}
			splines, err := cucoqu.CubicsToQuadSplinesTol(curves, cfg.maxErr())
			if err != nil {
				return nil, fmt.Errorf("sfntquad: segment %d: %w", j, err)
			}
			for i, spline := range splines {
				out[i] = appendQuads(out[i], spline)
			}
		default:
			return nil, fmt.Errorf("sfntquad: segment %d: invalid op %d", j, seg.Op)
		}
		for i, m := range masters {
			lasts[i] = endPoint(m[j])
		}
	}
	return out, nil
}
