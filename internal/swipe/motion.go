package swipe

import (
	"time"

	"github.com/charmbracelet/harmonica"
)

// Motion is an animation of the card offset sampled by elapsed time.
type Motion interface {
	// At returns the offset after elapsed and whether the motion is done.
	At(elapsed time.Duration) (Offset, bool)

	// Duration is the total run time of the motion.
	Duration() time.Duration
}

// ExitMotion eases the card from its release point to an off-screen target.
// X follows CubicOut and Y follows EaseOut over the same duration.
type ExitMotion struct {
	From    Offset
	To      Offset
	Length  time.Duration
	EasingX Easing
	EasingY Easing
}

// NewExitMotion builds the committed exit animation.
func NewExitMotion(from, to Offset, d time.Duration) *ExitMotion {
	return &ExitMotion{
		From:    from,
		To:      to,
		Length:  d,
		EasingX: CubicOut,
		EasingY: EaseOut,
	}
}

// At implements Motion.
func (m *ExitMotion) At(elapsed time.Duration) (Offset, bool) {
	if m.Length <= 0 || elapsed >= m.Length {
		return m.To, true
	}
	if elapsed < 0 {
		elapsed = 0
	}

	p := float64(elapsed) / float64(m.Length)
	return Offset{
		X: m.From.X + (m.To.X-m.From.X)*m.EasingX(p),
		Y: m.From.Y + (m.To.Y-m.From.Y)*m.EasingY(p),
	}, false
}

// Duration implements Motion.
func (m *ExitMotion) Duration() time.Duration {
	return m.Length
}

// ReturnMotion springs the card back to the origin. Each axis runs the same
// spring independently and the motion lasts until both are at rest. The
// axes are stepped frame by frame with harmonica from the last sampled
// frame, so sampling forward in time costs only the frames in between.
type ReturnMotion struct {
	Spring Spring
	From   Offset
	VX, VY float64
	settle time.Duration

	step   harmonica.Spring
	frame  time.Duration
	t      time.Duration
	x, vx  float64
	y, vy  float64
}

// NewReturnMotion builds the cancel animation.
func NewReturnMotion(s Spring, from Offset, vx, vy float64) *ReturnMotion {
	settle := s.SettleTime(from.X, vx)
	if sy := s.SettleTime(from.Y, vy); sy > settle {
		settle = sy
	}
	m := &ReturnMotion{
		Spring: s,
		From:   from,
		VX:     vx,
		VY:     vy,
		settle: settle,
		step:   s.stepper(harmonica.FPS(settleFPS)),
		frame:  time.Second / settleFPS,
	}
	m.rewind()
	return m
}

func (m *ReturnMotion) rewind() {
	m.t = 0
	m.x, m.vx = m.From.X, m.VX
	m.y, m.vy = m.From.Y, m.VY
}

// At implements Motion.
func (m *ReturnMotion) At(elapsed time.Duration) (Offset, bool) {
	if elapsed >= m.settle {
		return Offset{}, true
	}
	if elapsed < 0 {
		elapsed = 0
	}
	if elapsed < m.t {
		m.rewind()
	}

	for m.t+m.frame <= elapsed {
		m.x, m.vx = m.step.Update(m.x, m.vx, 0)
		m.y, m.vy = m.step.Update(m.y, m.vy, 0)
		m.t += m.frame
	}

	rest := (elapsed - m.t).Seconds()
	x, _ := m.Spring.Position(rest, m.x, m.vx)
	y, _ := m.Spring.Position(rest, m.y, m.vy)
	return Offset{X: x, Y: y}, false
}

// Duration implements Motion.
func (m *ReturnMotion) Duration() time.Duration {
	return m.settle
}
