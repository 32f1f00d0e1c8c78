package storyview

import "math"

// CubicBezier is a CSS-style timing function through (0,0), (X1,Y1),
// (X2,Y2), (1,1). X1 and X2 must lie in [0, 1].
type CubicBezier struct {
	X1, Y1, X2, Y2 float64
}

// EaseStandard is the curve used for the card transition.
var EaseStandard = CubicBezier{X1: 0.4, Y1: 0, X2: 0.2, Y2: 1}

const bezierEpsilon = 1e-6

// At returns the eased progress for linear progress t, clamped to [0, 1].
func (c CubicBezier) At(t float64) float64 {
	if t <= 0 {
		return 0
	}
	if t >= 1 {
		return 1
	}
	return bezier(c.Y1, c.Y2, c.solveX(t))
}

// solveX finds the curve parameter whose x coordinate is t.
func (c CubicBezier) solveX(t float64) float64 {
	// Newton first, it converges in a few steps for well-behaved curves.
	s := t
	for i := 0; i < 8; i++ {
		x := bezier(c.X1, c.X2, s) - t
		if math.Abs(x) < bezierEpsilon {
			return s
		}
		d := bezierSlope(c.X1, c.X2, s)
		if math.Abs(d) < bezierEpsilon {
			break
		}
		s -= x / d
		if s < 0 || s > 1 {
			break
		}
	}

	lo, hi := 0.0, 1.0
	s = t
	for i := 0; i < 64; i++ {
		x := bezier(c.X1, c.X2, s)
		if math.Abs(x-t) < bezierEpsilon {
			break
		}
		if x < t {
			lo = s
		} else {
			hi = s
		}
		s = (lo + hi) / 2
	}
	return s
}

func bezier(a1, a2, s float64) float64 {
	inv := 1 - s
	return 3*inv*inv*s*a1 + 3*inv*s*s*a2 + s*s*s
}

func bezierSlope(a1, a2, s float64) float64 {
	inv := 1 - s
	return 3*inv*inv*a1 + 6*inv*s*(a2-a1) + 3*s*s*(1-a2)
}
