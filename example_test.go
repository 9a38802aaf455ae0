package cucoqu_test

import (
	"fmt"
	"math"

	"honnef.co/go/cucoqu"
)

func ExampleConic_ToQuadSpline() {
	// A quarter of a circle of radius 50 centered at (50, 0).
	cn := cucoqu.Conic{
		Start:   cucoqu.Pt(0, 0),
		Control: cucoqu.Pt(0, 50),
		End:     cucoqu.Pt(50, 50),
		Weight:  math.Sqrt2 / 2,
	}
	spline := cn.ToQuadSpline(1.0)
	fmt.Println(len(spline))
	fmt.Println(spline.SVG(cucoqu.SVGOptions{MaxPrecision: 3}))
	// Output:
	// 2
	// M0,0 Q0,20.711 14.645,35.355 Q29.289,50 50,50
}

func ExampleCubicBez_ToQuadSpline() {
	c := cucoqu.CubicBez{
		P0: cucoqu.Pt(408, 321),
		P1: cucoqu.Pt(408, 452),
		P2: cucoqu.Pt(342, 560),
		P3: cucoqu.Pt(260, 560),
	}
	// The tolerance is a squared distance.
	spline, err := c.ToQuadSpline(1.0)
	if err != nil {
		panic(err)
	}
	fmt.Println(spline.SVG(cucoqu.SVGOptions{MaxPrecision: 2}))
	// Output:
	// M408,321 Q408,386.5 388.08,440.79 Q368.17,495.08 334.58,527.54 Q301,560 260,560
}

func ExampleCubicsToQuadSplines() {
	// The same stroke in three masters of a variable font.
	light := cucoqu.CubicBez{P0: cucoqu.Pt(378, 608), P1: cucoqu.Pt(378, 524), P2: cucoqu.Pt(355, 455), P3: cucoqu.Pt(266, 455)}
	regular := cucoqu.CubicBez{P0: cucoqu.Pt(367, 607), P1: cucoqu.Pt(367, 511), P2: cucoqu.Pt(338, 472), P3: cucoqu.Pt(243, 472)}
	bold := cucoqu.CubicBez{P0: cucoqu.Pt(372.425, 593.05), P1: cucoqu.Pt(372.425, 524.95), P2: cucoqu.Pt(355.05, 485.95), P3: cucoqu.Pt(274, 485.95)}

	splines, err := cucoqu.CubicsToQuadSplinesTol([]cucoqu.CubicBez{light, regular, bold}, 1)
	if err != nil {
		panic(err)
	}
	fmt.Println(len(splines[0]), len(splines[1]), len(splines[2]))
	// Output:
	// 3 3 3
}

func ExampleQuadratics() {
	c := cucoqu.Circle{Radius: 1}
	p, err := cucoqu.Quadratics(c.PathElements(), 0.01)
	if err != nil {
		panic(err)
	}
	fmt.Println(len(p))
	fmt.Println(p[0].Kind, p[0].P0)
	fmt.Println(p[1].Kind, p[len(p)-1].Kind)
	// Output:
	// 18
	// MoveTo (1, 0)
	// QuadTo ClosePath
}
