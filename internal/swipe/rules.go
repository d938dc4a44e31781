package swipe

import "time"

// Rules holds the tunables of a swipe surface.
type Rules struct {
	// ThresholdRatio is the fraction of the viewport width a drag must
	// exceed to count as a swipe on distance alone.
	ThresholdRatio float64

	// VelocityThreshold is the release speed (px/s) that counts as a swipe
	// regardless of distance, subject to MinDistance.
	VelocityThreshold float64

	// MinDistance guards against fast flicks on tiny drags.
	MinDistance float64

	ExitDistanceRatio float64       // exit target as a multiple of the viewport width
	ExitLift          float64       // vertical drift added in the swipe direction
	ExitDuration      time.Duration // duration of the exit motion

	StackScaleStep float64 // scale lost per position behind the top card
	StackOffset    float64 // vertical offset per position behind the top card

	Spring Spring
}

// DefaultRules returns the stock tuning.
func DefaultRules() Rules {
	return Rules{
		ThresholdRatio:    0.25,
		VelocityThreshold: 800,
		MinDistance:       50,
		ExitDistanceRatio: 1.5,
		ExitLift:          100,
		ExitDuration:      400 * time.Millisecond,
		StackScaleStep:    0.05,
		StackOffset:       10,
		Spring:            DefaultSpring(),
	}
}

// Threshold returns the swipe distance threshold for a viewport width.
func (r Rules) Threshold(width float64) float64 {
	return r.ThresholdRatio * width
}
