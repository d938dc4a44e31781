// Package swipe holds the gesture side of a swipeable card: the release
// decision, the visual transforms derived from the drag offset, and the
// motions that carry a card off screen or back to rest.
//
// Nothing in this package touches the GUI toolkit. Every visual property is a
// pure function of the horizontal offset so it can be tested without a canvas.
package swipe

import "math"

// Interpolate maps x through the piecewise-linear function defined by the
// breakpoints in and the values out. in must be ascending and the same length
// as out. Inputs outside [in[0], in[len-1]] are clamped to the end values.
func Interpolate(x float64, in, out []float64) float64 {
	n := len(in)
	if n == 0 || n != len(out) {
		return 0
	}
	if n == 1 || x <= in[0] {
		return out[0]
	}
	if x >= in[n-1] {
		return out[n-1]
	}

	for i := 0; i < n-1; i++ {
		lo, hi := in[i], in[i+1]
		if x > hi {
			continue
		}
		if hi == lo {
			return out[i+1]
		}
		t := (x - lo) / (hi - lo)
		return out[i] + t*(out[i+1]-out[i])
	}

	return out[n-1]
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}
