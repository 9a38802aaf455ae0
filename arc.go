package cucoqu

import (
	"iter"
	"math"
)

// Arc is a section of an ellipse. Angles are in radians. A positive sweep
// proceeds from the positive X axis towards the positive Y axis.
type Arc struct {
	Center     Point
	Radii      Vec2
	StartAngle float64
	SweepAngle float64
	XRotation  float64
}

// Conics returns the arc as a sequence of conics, each spanning at most a
// quarter turn. Unlike cubic Béziers, the conics describe the arc exactly.
// An arc with zero sweep has no conics.
func (a Arc) Conics() []Conic {
	n := int(math.Ceil(math.Abs(a.SweepAngle)/(math.Pi/2) - 1e-9))
	if n <= 0 {
		return nil
	}
	step := a.SweepAngle / float64(n)
	half := math.Cos(step / 2)
	out := make([]Conic, n)
	angle0 := a.StartAngle
	p0 := a.Center.Translate(sampleEllipse(a.Radii, a.XRotation, angle0))
	for i := range out {
		angle1 := a.StartAngle + float64(i+1)*step
		if i == n-1 {
			angle1 = a.StartAngle + a.SweepAngle
		}
		ctrl := sampleEllipse(a.Radii, a.XRotation, angle0+step/2).Div(half)
		p1 := a.Center.Translate(sampleEllipse(a.Radii, a.XRotation, angle1))
		out[i] = Conic{
			Start:   p0,
			Control: a.Center.Translate(ctrl),
			End:     p1,
			Weight:  half,
		}
		angle0, p0 = angle1, p1
	}
	return out
}

// PathElements returns the arc as an open path of ConicTo elements.
func (a Arc) PathElements() iter.Seq[PathElement] {
	return func(yield func(PathElement) bool) {
		start := a.Center.Translate(sampleEllipse(a.Radii, a.XRotation, a.StartAngle))
		if !yield(MoveTo(start)) {
			return
		}
		for _, cn := range a.Conics() {
			if !yield(ConicTo(cn.Control, cn.End, cn.Weight)) {
				return
			}
		}
	}
}

func (a Arc) BoundingBox() Rect {
	cns := a.Conics()
	start := a.Center.Translate(sampleEllipse(a.Radii, a.XRotation, a.StartAngle))
	bbox := NewRectFromPoints(start, start)
	for _, cn := range cns {
		bbox = bbox.Union(cn.BoundingBox())
	}
	return bbox
}

// sampleEllipse returns the point at angle on the ellipse with the given
// radii, rotated by xRotation, relative to its center.
func sampleEllipse(radii Vec2, xRotation float64, angle float64) Vec2 {
	sin, cos := math.Sincos(angle)
	return Vec2(Pt(radii.X*cos, radii.Y*sin).Transform(Rotate(xRotation)))
}
