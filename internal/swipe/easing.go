package swipe

import "math"

// Easing maps linear progress in [0, 1] to eased progress.
type Easing func(t float64) float64

// Linear is the identity easing.
func Linear(t float64) float64 {
	return clamp(t, 0, 1)
}

// CubicOut decelerates along 1-(1-t)^3.
func CubicOut(t float64) float64 {
	t = clamp(t, 0, 1)
	u := 1 - t
	return 1 - u*u*u
}

// ease is the standard inertial curve, cubic-bezier(0.42, 0, 1, 1).
var ease = CubicBezier(0.42, 0, 1, 1)

// EaseOut is the time-reversed ease curve.
func EaseOut(t float64) float64 {
	t = clamp(t, 0, 1)
	return 1 - ease(1-t)
}

// CubicBezier returns the easing of a CSS-style cubic-bezier(x1, y1, x2, y2)
// timing curve with fixed end points (0,0) and (1,1).
func CubicBezier(x1, y1, x2, y2 float64) Easing {
	cx := 3 * x1
	bx := 3*(x2-x1) - cx
	ax := 1 - cx - bx

	cy := 3 * y1
	by := 3*(y2-y1) - cy
	ay := 1 - cy - by

	sampleX := func(s float64) float64 { return ((ax*s+bx)*s + cx) * s }
	sampleY := func(s float64) float64 { return ((ay*s+by)*s + cy) * s }
	slopeX := func(s float64) float64 { return (3*ax*s+2*bx)*s + cx }

	const epsilon = 1e-7

	solve := func(x float64) float64 {
		// Newton first, bisection if the slope flattens out.
		s := x
		for i := 0; i < 8; i++ {
			dx := sampleX(s) - x
			if math.Abs(dx) < epsilon {
				return s
			}
			d := slopeX(s)
			if math.Abs(d) < 1e-6 {
				break
			}
			s -= dx / d
		}

		lo, hi := 0.0, 1.0
		s = x
		for i := 0; i < 64 && lo < hi; i++ {
			v := sampleX(s)
			if math.Abs(v-x) < epsilon {
				return s
			}
			if x > v {
				lo = s
			} else {
				hi = s
			}
			s = (lo + hi) / 2
		}
		return s
	}

	return func(t float64) float64 {
		t = clamp(t, 0, 1)
		if t == 0 || t == 1 {
			return t
		}
		return sampleY(solve(t))
	}
}
