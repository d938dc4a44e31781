package swipe

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSurface() (*Surface, *[]Direction) {
	var swiped []Direction
	s := NewSurface(DefaultRules(), true, 0)
	s.OnSwipeLeft = func() { swiped = append(swiped, Left) }
	s.OnSwipeRight = func() { swiped = append(swiped, Right) }
	return s, &swiped
}

func TestSurface_CompletedSwipeRight(t *testing.T) {
	s, swiped := newTestSurface()

	require.True(t, s.Begin())
	assert.Equal(t, Dragging, s.Phase())

	s.Update(120, 10)
	assert.Equal(t, Offset{X: 120, Y: 10}, s.Offset())
	s.Update(300, 20)

	outcome := s.End(testWidth, 300, 20, 0)
	assert.Equal(t, CompletedRight, outcome)
	assert.Equal(t, ExitingRight, s.Phase())
	assert.Equal(t, []Direction{Right}, *swiped, "callback fires before End returns")

	require.NotNil(t, s.Motion())
	assert.Equal(t, 400*time.Millisecond, s.Motion().Duration())

	assert.False(t, s.Advance(200*time.Millisecond))
	assert.True(t, s.Advance(400*time.Millisecond))
	assert.Equal(t, Gone, s.Phase())
	assert.Equal(t, Offset{X: 1500, Y: 120}, s.Offset())
	assert.Nil(t, s.Motion())

	assert.False(t, s.Begin(), "a card that left cannot be dragged again")
}

func TestSurface_CompletedSwipeLeft(t *testing.T) {
	s, swiped := newTestSurface()

	require.True(t, s.Begin())
	assert.Equal(t, CompletedLeft, s.End(testWidth, -300, 0, 0))
	assert.Equal(t, ExitingLeft, s.Phase())
	assert.Equal(t, []Direction{Left}, *swiped)
}

func TestSurface_CancelledSpringsBack(t *testing.T) {
	s, swiped := newTestSurface()

	require.True(t, s.Begin())
	s.Update(100, 40)
	assert.Equal(t, Cancelled, s.End(testWidth, 100, 40, 0))
	assert.Equal(t, Returning, s.Phase())
	assert.Empty(t, *swiped)

	d := s.Motion().Duration()
	overshot := false
	for e := time.Duration(0); e < d; e += 5 * time.Millisecond {
		s.Advance(e)
		if s.Offset().X < 0 {
			overshot = true
		}
	}
	assert.True(t, overshot, "return spring should overshoot the origin")

	assert.True(t, s.Advance(d))
	assert.Equal(t, Idle, s.Phase())
	assert.Equal(t, Offset{}, s.Offset())
	assert.True(t, s.Begin(), "a returned card can be dragged again")
}

func TestSurface_FlickUnderDistanceGuard(t *testing.T) {
	s, swiped := newTestSurface()

	require.True(t, s.Begin())
	assert.Equal(t, Cancelled, s.End(testWidth, 40, 0, 900))
	assert.Equal(t, Returning, s.Phase())
	assert.Empty(t, *swiped)
}

func TestSurface_BeginOnlyFromIdle(t *testing.T) {
	s, _ := newTestSurface()

	require.True(t, s.Begin())
	assert.False(t, s.Begin(), "already dragging")

	s.End(testWidth, 100, 0, 0)
	assert.False(t, s.Begin(), "still returning")

	s.Advance(s.Motion().Duration())
	assert.True(t, s.Begin())
}

func TestSurface_NonInteractiveIgnoresInput(t *testing.T) {
	var calls int
	s := NewSurface(DefaultRules(), false, 1)
	s.OnSwipeRight = func() { calls++ }

	assert.False(t, s.Begin())
	assert.False(t, s.Update(300, 0))
	assert.Equal(t, Cancelled, s.End(testWidth, 300, 0, 0))
	assert.False(t, s.Dismiss(testWidth, Right))
	assert.Equal(t, Idle, s.Phase())
	assert.Zero(t, calls)

	v := s.Visuals(testWidth)
	assert.InDelta(t, 0.95, v.Scale, 1e-9)

	s.SetInteractive(true)
	s.SetDepth(0)
	assert.True(t, s.Begin())
}

func TestSurface_Dismiss(t *testing.T) {
	s, swiped := newTestSurface()

	require.True(t, s.Dismiss(testWidth, Left))
	assert.Equal(t, ExitingLeft, s.Phase())
	assert.Equal(t, []Direction{Left}, *swiped)
	assert.False(t, s.Dismiss(testWidth, Left), "already leaving")

	s.Advance(time.Second)
	assert.Equal(t, Offset{X: -1500, Y: -100}, s.Offset())
}

func TestSurface_AdvanceWithoutMotion(t *testing.T) {
	s, _ := newTestSurface()
	assert.True(t, s.Advance(time.Second))
	assert.Equal(t, Idle, s.Phase())
}

func TestSurface_GoneIsTerminal(t *testing.T) {
	s, swiped := newTestSurface()

	require.True(t, s.Dismiss(testWidth, Left))
	require.True(t, s.Advance(time.Hour))
	require.Equal(t, Gone, s.Phase())
	at := s.Offset()

	assert.False(t, s.Begin())
	assert.False(t, s.Update(10, 10))
	assert.Equal(t, Cancelled, s.End(testWidth, 500, 0, 2000))
	assert.False(t, s.Dismiss(testWidth, Right))
	assert.True(t, s.Advance(time.Hour))

	s.SetInteractive(true)
	s.SetDepth(0)
	assert.Equal(t, Gone, s.Phase())
	assert.Equal(t, at, s.Offset())
	assert.Equal(t, []Direction{Left}, *swiped)
}
