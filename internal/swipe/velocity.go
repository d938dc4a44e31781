package swipe

import "time"

// DefaultVelocityWindow is how far back VelocityTracker looks.
const DefaultVelocityWindow = 100 * time.Millisecond

type sample struct {
	at   time.Time
	x, y float64
}

// VelocityTracker estimates pointer velocity from timestamped positions.
// Drag events from the toolkit only carry deltas, so the release velocity is
// reconstructed from the most recent samples.
type VelocityTracker struct {
	window  time.Duration
	samples []sample
}

// NewVelocityTracker creates a tracker with the default window.
func NewVelocityTracker() *VelocityTracker {
	return &VelocityTracker{window: DefaultVelocityWindow}
}

// Add records the cumulative position at a point in time.
func (v *VelocityTracker) Add(at time.Time, x, y float64) {
	v.samples = append(v.samples, sample{at: at, x: x, y: y})

	// Keep the newest sample at or before the window start as the anchor.
	cutoff := at.Add(-v.window)
	i := 0
	for i < len(v.samples)-1 && !v.samples[i+1].at.After(cutoff) {
		i++
	}
	if i > 0 {
		v.samples = append(v.samples[:0], v.samples[i:]...)
	}
}

// Velocity returns the velocity in px/s over the retained samples.
func (v *VelocityTracker) Velocity() (vx, vy float64) {
	if len(v.samples) < 2 {
		return 0, 0
	}
	first, last := v.samples[0], v.samples[len(v.samples)-1]
	dt := last.at.Sub(first.at).Seconds()
	if dt <= 0 {
		return 0, 0
	}
	return (last.x - first.x) / dt, (last.y - first.y) / dt
}

// VelocityAt is Velocity as seen at time now: a pointer that stopped moving
// longer than the window ago has no velocity.
func (v *VelocityTracker) VelocityAt(now time.Time) (vx, vy float64) {
	if len(v.samples) == 0 {
		return 0, 0
	}
	if now.Sub(v.samples[len(v.samples)-1].at) > v.window {
		return 0, 0
	}
	return v.Velocity()
}

// Reset drops all samples.
func (v *VelocityTracker) Reset() {
	v.samples = v.samples[:0]
}
