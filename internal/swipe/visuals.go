package swipe

import "math"

const (
	maxCardRotation = 20.0 // degrees at half the viewport width
)

// Stamp describes the LIKE or NOPE overlay.
type Stamp struct {
	Opacity  float64
	Scale    float64
	Rotation float64 // degrees
}

// Offset is a 2D translation in device-independent pixels.
type Offset struct {
	X, Y float64
}

// Visuals is everything needed to draw one card of the stack.
type Visuals struct {
	Offset   Offset
	Rotation float64 // degrees
	Scale    float64
	Opacity  float64
	Like     Stamp
	Nope     Stamp

	// StackY is the static vertical offset from the card's stack depth.
	StackY float64
}

// Rotation maps tx from [-W/2, W/2] to [-20°, 20°], clamped.
func Rotation(width, tx float64) float64 {
	half := width / 2
	return Interpolate(tx,
		[]float64{-half, 0, half},
		[]float64{-maxCardRotation, 0, maxCardRotation})
}

// CardOpacity fades the dragged card out from 1 at rest to 0 at twice the
// threshold in either direction.
func CardOpacity(threshold, tx float64) float64 {
	return Interpolate(math.Abs(tx),
		[]float64{0, threshold * 2},
		[]float64{1, 0})
}

// StackScale is the static scale of a card depth positions behind the top.
func StackScale(step float64, depth int) float64 {
	return math.Max(0, 1-float64(depth)*step)
}

// LikeStamp returns the LIKE overlay for a drag to the right.
func LikeStamp(threshold, tx float64) Stamp {
	return Stamp{
		Opacity: Interpolate(tx,
			[]float64{0, threshold / 3, threshold},
			[]float64{0, 0.8, 1}),
		Scale: math.Max(0, Interpolate(tx,
			[]float64{0, threshold / 2, threshold},
			[]float64{0.5, 1.1, 1})),
		Rotation: Interpolate(tx,
			[]float64{0, threshold},
			[]float64{-30, -15}),
	}
}

// NopeStamp mirrors LikeStamp for a drag to the left.
func NopeStamp(threshold, tx float64) Stamp {
	return Stamp{
		Opacity: Interpolate(tx,
			[]float64{-threshold, -threshold / 3, 0},
			[]float64{1, 0.8, 0}),
		Scale: math.Max(0, Interpolate(tx,
			[]float64{-threshold, -threshold / 2, 0},
			[]float64{1, 1.1, 0.5})),
		Rotation: Interpolate(tx,
			[]float64{-threshold, 0},
			[]float64{30, 15}),
	}
}

// Visuals derives the drawing parameters of a card. Cards behind the top
// ignore the offset and render at their static stack position.
func (r Rules) Visuals(width float64, off Offset, interactive bool, depth int) Visuals {
	threshold := r.Threshold(width)
	stackY := float64(depth) * r.StackOffset

	if !interactive {
		return Visuals{
			Scale:   StackScale(r.StackScaleStep, depth),
			Opacity: 1,
			Like:    LikeStamp(threshold, 0),
			Nope:    NopeStamp(threshold, 0),
			StackY:  stackY,
		}
	}

	return Visuals{
		Offset:   off,
		Rotation: Rotation(width, off.X),
		Scale:    1,
		Opacity:  CardOpacity(threshold, off.X),
		Like:     LikeStamp(threshold, off.X),
		Nope:     NopeStamp(threshold, off.X),
		StackY:   stackY,
	}
}
