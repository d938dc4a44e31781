package swipe

import (
	"math"
	"time"

	"github.com/charmbracelet/harmonica"
)

const (
	restDisplacement = 0.01 // px
	restSpeed        = 2.0  // px/s
	maxSettle        = 10 * time.Second
	settleFPS        = 240
)

// Spring is a damped harmonic oscillator pulling toward zero displacement,
// described by its physical constants. The motion itself is solved by
// harmonica.
type Spring struct {
	Damping   float64
	Stiffness float64
	Mass      float64
}

// DefaultSpring is slightly underdamped: it overshoots rest by about ten
// percent of the starting displacement and then settles.
func DefaultSpring() Spring {
	return Spring{Damping: 20, Stiffness: 300, Mass: 1}
}

// AngularFrequency returns the undamped angular frequency sqrt(k/m).
func (s Spring) AngularFrequency() float64 {
	if s.Mass <= 0 || s.Stiffness <= 0 {
		return 0
	}
	return math.Sqrt(s.Stiffness / s.Mass)
}

// DampingRatio returns zeta; below 1 the spring overshoots.
func (s Spring) DampingRatio() float64 {
	if s.Mass <= 0 || s.Stiffness <= 0 {
		return 0
	}
	return s.Damping / (2 * math.Sqrt(s.Stiffness*s.Mass))
}

func (s Spring) valid() bool {
	return s.Mass > 0 && s.Stiffness > 0 && s.Damping >= 0
}

// stepper returns a harmonica spring advancing dt seconds per Update.
func (s Spring) stepper(dt float64) harmonica.Spring {
	return harmonica.NewSpring(dt, s.AngularFrequency(), s.DampingRatio())
}

// Position returns the displacement and velocity t seconds after release
// from displacement x0 with velocity v0. harmonica's step coefficients are
// the closed-form solution, so a single step of length t is exact.
func (s Spring) Position(t, x0, v0 float64) (x, v float64) {
	if !s.valid() {
		return 0, 0
	}
	if t <= 0 {
		return x0, v0
	}
	return s.stepper(t).Update(x0, v0, 0)
}

// SettleTime returns the first frame, at 240 frames per second, on which the
// spring is at rest: within restDisplacement of zero and slower than
// restSpeed.
func (s Spring) SettleTime(x0, v0 float64) time.Duration {
	if !s.valid() {
		return 0
	}

	step := s.stepper(harmonica.FPS(settleFPS))
	frame := time.Second / settleFPS
	x, v := x0, v0
	for t := time.Duration(0); t < maxSettle; t += frame {
		if atRest(x, v) {
			return t
		}
		x, v = step.Update(x, v, 0)
	}
	return maxSettle
}

func atRest(x, v float64) bool {
	return math.Abs(x) < restDisplacement && math.Abs(v) < restSpeed
}
