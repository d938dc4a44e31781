package swipe

import "time"

// Phase is the gesture state of a Surface.
type Phase int

const (
	Idle Phase = iota
	Dragging
	ExitingLeft
	ExitingRight
	Returning

	// Gone is terminal: the exit has finished and the card only awaits
	// removal by the controller. Neither a drag nor a dismissal leaves it.
	Gone
)

// String returns the phase name.
func (p Phase) String() string {
	switch p {
	case Idle:
		return "idle"
	case Dragging:
		return "dragging"
	case ExitingLeft:
		return "exiting-left"
	case ExitingRight:
		return "exiting-right"
	case Returning:
		return "returning"
	case Gone:
		return "gone"
	default:
		return "unknown"
	}
}

// Surface is the gesture state of one card in the stack. Only an interactive
// surface accepts drags; the rest render statically at their depth.
//
// A Surface is not safe for concurrent use; it is driven from the UI thread.
type Surface struct {
	rules       Rules
	interactive bool
	depth       int

	phase  Phase
	offset Offset
	motion Motion

	// Invoked synchronously from End or Dismiss when the card leaves.
	OnSwipeLeft  func()
	OnSwipeRight func()
}

// NewSurface creates an idle surface at the given stack depth.
func NewSurface(rules Rules, interactive bool, depth int) *Surface {
	return &Surface{
		rules:       rules,
		interactive: interactive,
		depth:       depth,
	}
}

// Rules returns the surface tuning.
func (s *Surface) Rules() Rules { return s.rules }

// Phase returns the current gesture phase.
func (s *Surface) Phase() Phase { return s.phase }

// Offset returns the current translation.
func (s *Surface) Offset() Offset { return s.offset }

// Interactive reports whether the surface accepts gestures.
func (s *Surface) Interactive() bool { return s.interactive }

// SetInteractive grants or revokes gesture handling.
func (s *Surface) SetInteractive(interactive bool) { s.interactive = interactive }

// Depth returns the position behind the top card.
func (s *Surface) Depth() int { return s.depth }

// SetDepth moves the surface within the stack.
func (s *Surface) SetDepth(depth int) { s.depth = depth }

// Motion returns the running animation, or nil.
func (s *Surface) Motion() Motion { return s.motion }

// Begin starts a drag. It fails unless the surface is interactive and idle.
func (s *Surface) Begin() bool {
	if !s.interactive || s.phase != Idle {
		return false
	}
	s.phase = Dragging
	s.offset = Offset{}
	s.motion = nil
	return true
}

// Update sets the offset to the cumulative translation since Begin.
func (s *Surface) Update(tx, ty float64) bool {
	if s.phase != Dragging {
		return false
	}
	s.offset = Offset{X: tx, Y: ty}
	return true
}

// End releases the drag at (tx, ty) with horizontal velocity vx on a viewport
// of the given width. A completed swipe starts the exit motion and calls the
// matching callback before returning; anything else springs back to rest.
// End outside a drag is ignored and reports Cancelled.
func (s *Surface) End(width, tx, ty, vx float64) Outcome {
	if s.phase != Dragging {
		return Cancelled
	}
	s.offset = Offset{X: tx, Y: ty}

	outcome := s.rules.Decide(width, tx, vx)
	dir, ok := outcome.Direction()
	if !ok {
		s.phase = Returning
		s.motion = NewReturnMotion(s.rules.Spring, s.offset, 0, 0)
		return outcome
	}

	s.exit(width, dir)
	return outcome
}

// Dismiss sends an idle interactive card off screen in direction dir as if it
// had been swiped, e.g. from a keyboard shortcut.
func (s *Surface) Dismiss(width float64, dir Direction) bool {
	if !s.interactive || s.phase != Idle {
		return false
	}
	s.exit(width, dir)
	return true
}

func (s *Surface) exit(width float64, dir Direction) {
	if dir == Right {
		s.phase = ExitingRight
	} else {
		s.phase = ExitingLeft
	}
	target := s.rules.ExitTarget(width, s.offset.Y, dir)
	s.motion = NewExitMotion(s.offset, target, s.rules.ExitDuration)

	if dir == Right {
		if s.OnSwipeRight != nil {
			s.OnSwipeRight()
		}
	} else if s.OnSwipeLeft != nil {
		s.OnSwipeLeft()
	}
}

// Advance samples the running motion at elapsed time since it started and
// reports whether the motion has finished. A finished return leaves the
// surface idle at the origin. A finished exit leaves it Gone, the terminal
// state in which the card sits off-screen awaiting removal.
func (s *Surface) Advance(elapsed time.Duration) bool {
	if s.motion == nil {
		return true
	}

	off, done := s.motion.At(elapsed)
	s.offset = off
	if !done {
		return false
	}

	s.motion = nil
	switch s.phase {
	case Returning:
		s.phase = Idle
		s.offset = Offset{}
	case ExitingLeft, ExitingRight:
		s.phase = Gone
	}
	return true
}

// Visuals returns the drawing parameters for the current state.
func (s *Surface) Visuals(width float64) Visuals {
	return s.rules.Visuals(width, s.offset, s.interactive, s.depth)
}
