package swipe

import "math"

// Direction is the side a card leaves through.
type Direction int

const (
	Left  Direction = -1 // Nope
	Right Direction = 1  // Like
)

// String returns "left" or "right".
func (d Direction) String() string {
	if d == Right {
		return "right"
	}
	return "left"
}

// Label returns the stamp text shown while dragging toward d.
func (d Direction) Label() string {
	if d == Right {
		return "LIKE"
	}
	return "NOPE"
}

// Outcome classifies a released drag.
type Outcome int

const (
	Cancelled Outcome = iota
	CompletedLeft
	CompletedRight
)

// String returns a short name for the outcome.
func (o Outcome) String() string {
	switch o {
	case CompletedLeft:
		return "completed-left"
	case CompletedRight:
		return "completed-right"
	default:
		return "cancelled"
	}
}

// Completed reports whether the outcome dismisses the card.
func (o Outcome) Completed() bool {
	return o == CompletedLeft || o == CompletedRight
}

// Direction returns the exit direction of a completed outcome.
func (o Outcome) Direction() (Direction, bool) {
	switch o {
	case CompletedLeft:
		return Left, true
	case CompletedRight:
		return Right, true
	default:
		return 0, false
	}
}

// Decide classifies a release at cumulative translation tx with horizontal
// velocity vx on a viewport of the given width.
//
// A drag is eligible when it passes the distance threshold or the velocity
// threshold, and completes only if it also moved further than MinDistance.
// A fast flick under MinDistance is cancelled.
func (r Rules) Decide(width, tx, vx float64) Outcome {
	threshold := r.Threshold(width)
	shouldSwipe := math.Abs(tx) > threshold || math.Abs(vx) > r.VelocityThreshold

	if !shouldSwipe || math.Abs(tx) <= r.MinDistance {
		return Cancelled
	}
	if tx > 0 {
		return CompletedRight
	}
	return CompletedLeft
}

// ExitTarget returns where a card released at vertical offset ty ends up
// after leaving in direction dir.
func (r Rules) ExitTarget(width, ty float64, dir Direction) Offset {
	d := float64(dir)
	return Offset{
		X: d * r.ExitDistanceRatio * width,
		Y: ty + d*r.ExitLift,
	}
}
