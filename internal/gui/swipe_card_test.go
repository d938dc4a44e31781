package gui

import (
	"testing"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ramonehamilton/swipedeck/internal/deck"
	"github.com/ramonehamilton/swipedeck/internal/metrics"
	"github.com/ramonehamilton/swipedeck/internal/swipe"
)

// fakeAnimator records started animations instead of running them.
type fakeAnimator struct {
	durations []time.Duration
	ticks     []func(float32)
	stopped   int
}

func (f *fakeAnimator) animate(d time.Duration, tick func(float32)) func() {
	f.durations = append(f.durations, d)
	f.ticks = append(f.ticks, tick)
	return func() { f.stopped++ }
}

// finish runs the latest animation to its end.
func (f *fakeAnimator) finish() {
	if n := len(f.ticks); n > 0 {
		f.ticks[n-1](0.5)
		f.ticks[n-1](1)
	}
}

// fakeTime is a manually advanced wall clock.
type fakeTime struct {
	t time.Time
}

func (f *fakeTime) now() time.Time { return f.t }

func (f *fakeTime) advance(d time.Duration) { f.t = f.t.Add(d) }

type swipeRecorder struct {
	cards []deck.Card
	dirs  []swipe.Direction
}

func (r *swipeRecorder) onSwipe(card deck.Card, dir swipe.Direction) {
	r.cards = append(r.cards, card)
	r.dirs = append(r.dirs, dir)
}

func newTestCard(t *testing.T) (*SwipeCard, *fakeAnimator, *fakeTime, *swipeRecorder) {
	t.Helper()
	test.NewTempApp(t)

	anim := &fakeAnimator{}
	clock := &fakeTime{t: time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)}
	rec := &swipeRecorder{}

	c := NewSwipeCard(deck.DefaultCards()[0], swipe.DefaultRules(), rec.onSwipe)
	c.animate = anim.animate
	c.now = clock.now
	c.Resize(fyne.NewSize(480, 800))
	c.SetStackPosition(true, 0)
	return c, anim, clock, rec
}

// drag moves the pointer from the card centre by (dx, dy) in steps, spending
// d in total.
func drag(c *SwipeCard, clock *fakeTime, dx, dy float32, steps int, d time.Duration) {
	pos := fyne.NewPos(240, 400)
	for i := 0; i < steps; i++ {
		clock.advance(d / time.Duration(steps))
		step := fyne.Delta{DX: dx / float32(steps), DY: dy / float32(steps)}
		pos = pos.AddXY(step.DX, step.DY)
		c.Dragged(&fyne.DragEvent{
			PointEvent: fyne.PointEvent{Position: pos},
			Dragged:    step,
		})
	}
}

func TestSwipeCard_DragPastThresholdSwipesRight(t *testing.T) {
	c, anim, clock, rec := newTestCard(t)

	drag(c, clock, 200, 20, 10, time.Second)
	assert.Equal(t, swipe.Dragging, c.Phase())
	assert.InDelta(t, 200, c.surface.Offset().X, 1e-3)

	c.DragEnd()

	require.Len(t, rec.dirs, 1)
	assert.Equal(t, swipe.Right, rec.dirs[0])
	assert.Equal(t, "1", rec.cards[0].ID)
	assert.Equal(t, swipe.ExitingRight, c.Phase())

	require.Len(t, anim.durations, 1)
	assert.Equal(t, 400*time.Millisecond, anim.durations[0])

	anim.finish()
	assert.Equal(t, swipe.Gone, c.Phase())
	assert.InDelta(t, 720, c.surface.Offset().X, 1e-3)

	// A gone card ignores further drags.
	drag(c, clock, -300, 0, 3, 100*time.Millisecond)
	c.DragEnd()
	assert.Len(t, rec.dirs, 1)
}

func TestSwipeCard_ShortDragSpringsBack(t *testing.T) {
	c, anim, clock, rec := newTestCard(t)
	m := metrics.NewGestureMetrics()
	c.metrics = m

	drag(c, clock, -60, 10, 6, 600*time.Millisecond)
	clock.advance(300 * time.Millisecond)
	c.DragEnd()

	assert.Empty(t, rec.dirs)
	assert.Equal(t, swipe.Returning, c.Phase())
	require.Len(t, anim.durations, 1)
	assert.Positive(t, anim.durations[0])

	anim.finish()
	assert.Equal(t, swipe.Idle, c.Phase())
	assert.Equal(t, swipe.Offset{}, c.surface.Offset())

	s := m.Snapshot()
	assert.Equal(t, uint64(1), s.Drags)
	assert.Equal(t, uint64(1), s.Cancelled)
	assert.InDelta(t, 800, s.MeanDragMs, 1e-6)
}

func TestSwipeCard_FlingSwipesLeft(t *testing.T) {
	c, anim, clock, rec := newTestCard(t)

	// 80px in 50ms is 1600 px/s, past the velocity threshold.
	drag(c, clock, -80, 0, 4, 50*time.Millisecond)
	c.DragEnd()

	require.Len(t, rec.dirs, 1)
	assert.Equal(t, swipe.Left, rec.dirs[0])
	assert.Equal(t, swipe.ExitingLeft, c.Phase())
	anim.finish()
	assert.InDelta(t, -720, c.surface.Offset().X, 1e-3)
}

func TestSwipeCard_FlingWithinDeadZoneIsCancelled(t *testing.T) {
	c, _, clock, rec := newTestCard(t)

	drag(c, clock, 40, 0, 2, 20*time.Millisecond)
	c.DragEnd()

	assert.Empty(t, rec.dirs)
	assert.Equal(t, swipe.Returning, c.Phase())
}

func TestSwipeCard_IgnoresDragsWhenNotOnTop(t *testing.T) {
	c, anim, clock, rec := newTestCard(t)
	c.SetStackPosition(false, 1)

	drag(c, clock, 300, 0, 5, 100*time.Millisecond)
	c.DragEnd()

	assert.Equal(t, swipe.Idle, c.Phase())
	assert.Empty(t, rec.dirs)
	assert.Empty(t, anim.durations)
	assert.False(t, c.Dismiss(swipe.Right))
}

func TestSwipeCard_IgnoresDragsStartingOffCard(t *testing.T) {
	c, _, _, _ := newTestCard(t)

	c.Dragged(&fyne.DragEvent{
		PointEvent: fyne.PointEvent{Position: fyne.NewPos(6, 6)},
		Dragged:    fyne.Delta{DX: 4, DY: 4},
	})
	assert.Equal(t, swipe.Idle, c.Phase())

	// Moving onto the card does not start the drag that missed it.
	c.Dragged(&fyne.DragEvent{
		PointEvent: fyne.PointEvent{Position: fyne.NewPos(240, 400)},
		Dragged:    fyne.Delta{DX: 234, DY: 394},
	})
	assert.Equal(t, swipe.Idle, c.Phase())
	c.DragEnd()
	assert.Equal(t, swipe.Idle, c.Phase())
}

func TestSwipeCard_NewDragInterruptsNothingWhileReturning(t *testing.T) {
	c, anim, clock, _ := newTestCard(t)

	drag(c, clock, 30, 0, 3, 600*time.Millisecond)
	clock.advance(200 * time.Millisecond)
	c.DragEnd()
	require.Equal(t, swipe.Returning, c.Phase())

	drag(c, clock, 30, 0, 3, 100*time.Millisecond)
	c.DragEnd()
	assert.Equal(t, swipe.Returning, c.Phase())

	anim.finish()
	drag(c, clock, 30, 0, 3, 100*time.Millisecond)
	assert.Equal(t, swipe.Dragging, c.Phase())
	assert.InDelta(t, 30, c.surface.Offset().X, 1e-3)
}

func TestSwipeCard_RejectedDragStaysRejectedAfterReturn(t *testing.T) {
	c, anim, clock, rec := newTestCard(t)

	drag(c, clock, 30, 0, 3, 600*time.Millisecond)
	clock.advance(200 * time.Millisecond)
	c.DragEnd()
	require.Equal(t, swipe.Returning, c.Phase())

	// Pressed while returning: the same drag carries on after the spring
	// has settled, and must not pick up the card half way through.
	drag(c, clock, 30, 0, 3, 100*time.Millisecond)
	anim.finish()
	require.Equal(t, swipe.Idle, c.Phase())

	drag(c, clock, 300, 0, 5, 100*time.Millisecond)
	assert.Equal(t, swipe.Idle, c.Phase())
	assert.Equal(t, swipe.Offset{}, c.surface.Offset())
	c.DragEnd()
	assert.Empty(t, rec.dirs)
	assert.Equal(t, swipe.Idle, c.Phase())

	// The next drag begins normally.
	drag(c, clock, 300, 0, 5, 100*time.Millisecond)
	assert.Equal(t, swipe.Dragging, c.Phase())
	c.DragEnd()
	assert.Equal(t, []swipe.Direction{swipe.Right}, rec.dirs)
}

func TestSwipeCard_Dismiss(t *testing.T) {
	c, anim, _, rec := newTestCard(t)

	assert.True(t, c.Dismiss(swipe.Left))
	assert.Equal(t, []swipe.Direction{swipe.Left}, rec.dirs)
	assert.Equal(t, swipe.ExitingLeft, c.Phase())
	assert.False(t, c.Dismiss(swipe.Right))

	anim.finish()
	assert.Equal(t, swipe.Gone, c.Phase())
}

func TestSwipeCard_Renders(t *testing.T) {
	c, _, clock, _ := newTestCard(t)
	w := test.NewTempWindow(t, c)
	w.Resize(fyne.NewSize(480, 800))

	r := test.TempWidgetRenderer(t, c).(*swipeCardRenderer)
	assert.Equal(t, "Sarah, 24", r.title.Text)
	assert.True(t, r.like.Hidden)
	assert.True(t, r.nope.Hidden)

	drag(c, clock, 120, 0, 4, time.Second)
	assert.False(t, r.like.Hidden)
	assert.True(t, r.nope.Hidden)
	assert.InDelta(t, 1, r.spec.Like.Opacity, 1e-9)
}
