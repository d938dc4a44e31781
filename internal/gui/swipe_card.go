package gui

import (
	"image"
	"image/color"
	"log/slog"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/widget"
	"golang.org/x/time/rate"

	"github.com/ramonehamilton/swipedeck/internal/deck"
	"github.com/ramonehamilton/swipedeck/internal/metrics"
	"github.com/ramonehamilton/swipedeck/internal/swipe"
)

// animateFunc plays tick over d with linear progress and returns a function
// that stops it.
type animateFunc func(d time.Duration, tick func(progress float32)) (stop func())

func fyneAnimate(d time.Duration, tick func(progress float32)) func() {
	anim := fyne.NewAnimation(d, tick)
	anim.Curve = fyne.AnimationLinear
	anim.Start()
	return anim.Stop
}

// SwipeCard is one card of the stack. The top card is draggable; the rest
// render statically behind it.
type SwipeCard struct {
	widget.BaseWidget

	card    deck.Card
	surface *swipe.Surface
	tracker *swipe.VelocityTracker
	onSwipe func(deck.Card, swipe.Direction)

	metrics *metrics.GestureMetrics
	logger  *slog.Logger
	dragLog *rate.Sometimes
	now     func() time.Time
	animate animateFunc

	// pressed is set from the first event of a pointer drag until DragEnd;
	// rejected marks a drag that could not begin the gesture.
	pressed, rejected bool
	dragStart         time.Time
	dragX, dragY      float64
	stopAnim          func()
}

var _ fyne.Draggable = (*SwipeCard)(nil)

// NewSwipeCard creates a non-interactive card. onSwipe is called when the
// card is swiped away, before its exit animation starts playing.
func NewSwipeCard(card deck.Card, rules swipe.Rules, onSwipe func(deck.Card, swipe.Direction)) *SwipeCard {
	c := &SwipeCard{
		card:    card,
		surface: swipe.NewSurface(rules, false, 0),
		tracker: swipe.NewVelocityTracker(),
		onSwipe: onSwipe,
		logger:  slog.Default(),
		dragLog: &rate.Sometimes{Interval: 250 * time.Millisecond},
		now:     time.Now,
		animate: fyneAnimate,
	}
	c.surface.OnSwipeLeft = func() { c.swiped(swipe.Left) }
	c.surface.OnSwipeRight = func() { c.swiped(swipe.Right) }
	c.ExtendBaseWidget(c)
	return c
}

// Card returns the card shown.
func (c *SwipeCard) Card() deck.Card {
	return c.card
}

// Phase returns the gesture phase of the card.
func (c *SwipeCard) Phase() swipe.Phase {
	return c.surface.Phase()
}

func (c *SwipeCard) swiped(dir swipe.Direction) {
	if c.onSwipe != nil {
		c.onSwipe(c.card, dir)
	}
}

// SetStackPosition marks the card as the interactive top card or places it
// depth positions behind it.
func (c *SwipeCard) SetStackPosition(interactive bool, depth int) {
	if c.surface.Interactive() == interactive && c.surface.Depth() == depth {
		return
	}
	c.surface.SetInteractive(interactive)
	c.surface.SetDepth(depth)
	c.Refresh()
}

func (c *SwipeCard) viewportWidth() float64 {
	return float64(c.Size().Width)
}

func (c *SwipeCard) frame() cardFrame {
	size := c.Size()
	return newCardFrame(float64(size.Width), float64(size.Height), c.surface.Visuals(float64(size.Width)))
}

// Dragged implements fyne.Draggable. The first event of a drag begins the
// gesture; later events update the offset with the cumulative translation.
// A drag that cannot begin, because the card is busy or the press missed it,
// is ignored until it ends.
func (c *SwipeCard) Dragged(ev *fyne.DragEvent) {
	if !c.pressed {
		c.pressed = true
		c.rejected = !c.begin(float64(ev.Position.X-ev.Dragged.DX), float64(ev.Position.Y-ev.Dragged.DY))
	}
	if c.rejected || c.surface.Phase() != swipe.Dragging {
		return
	}

	c.dragX += float64(ev.Dragged.DX)
	c.dragY += float64(ev.Dragged.DY)
	c.surface.Update(c.dragX, c.dragY)
	c.tracker.Add(c.now(), c.dragX, c.dragY)

	c.dragLog.Do(func() {
		c.logger.Debug("dragging", "card", c.card.Name, "tx", c.dragX, "ty", c.dragY)
	})
	c.Refresh()
}

// begin starts the gesture for a press at (x, y).
func (c *SwipeCard) begin(x, y float64) bool {
	if c.surface.Phase() != swipe.Idle {
		return false
	}
	// The drag must start on the card itself.
	if !c.frame().contains(x, y) || !c.surface.Begin() {
		return false
	}
	c.dragX, c.dragY = 0, 0
	c.dragStart = c.now()
	c.tracker.Reset()
	c.tracker.Add(c.dragStart, 0, 0)
	c.logger.Debug("drag began", "card", c.card.Name)
	return true
}

// DragEnd implements fyne.Draggable.
func (c *SwipeCard) DragEnd() {
	c.pressed, c.rejected = false, false
	if c.surface.Phase() != swipe.Dragging {
		return
	}

	now := c.now()
	vx, _ := c.tracker.VelocityAt(now)
	outcome := c.surface.End(c.viewportWidth(), c.dragX, c.dragY, vx)

	if c.metrics != nil {
		c.metrics.RecordGesture(outcome, now.Sub(c.dragStart), vx)
	}
	c.logger.Debug("drag ended", "card", c.card.Name, "outcome", outcome.String(), "tx", c.dragX, "vx", vx)

	c.play()
}

// Dismiss swipes the card away without a drag. It only works on an idle top
// card.
func (c *SwipeCard) Dismiss(dir swipe.Direction) bool {
	if !c.surface.Dismiss(c.viewportWidth(), dir) {
		return false
	}
	c.play()
	return true
}

func (c *SwipeCard) play() {
	c.stop()

	motion := c.surface.Motion()
	if motion == nil {
		c.Refresh()
		return
	}

	total := motion.Duration()
	c.stopAnim = c.animate(total, func(progress float32) {
		c.surface.Advance(time.Duration(float64(progress) * float64(total)))
		c.Refresh()
	})
}

func (c *SwipeCard) stop() {
	if c.stopAnim != nil {
		c.stopAnim()
		c.stopAnim = nil
	}
}

// CreateRenderer implements fyne.Widget.
func (c *SwipeCard) CreateRenderer() fyne.WidgetRenderer {
	r := &swipeCardRenderer{
		card:  c,
		title: canvas.NewText(c.card.Title(), titleColor),
		bio:   canvas.NewText(c.card.Bio, bioColor),
		like:  canvas.NewText(swipe.Right.Label(), likeColor),
		nope:  canvas.NewText(swipe.Left.Label(), nopeColor),
	}
	r.title.TextStyle = fyne.TextStyle{Bold: true}
	r.like.TextStyle = fyne.TextStyle{Bold: true}
	r.nope.TextStyle = fyne.TextStyle{Bold: true}
	r.body = canvas.NewRaster(r.generate)
	r.objects = []fyne.CanvasObject{r.body, r.title, r.bio, r.like, r.nope}
	r.update()
	return r
}

type swipeCardRenderer struct {
	card *SwipeCard

	body  *canvas.Raster
	title *canvas.Text
	bio   *canvas.Text
	like  *canvas.Text
	nope  *canvas.Text

	spec    paintSpec
	objects []fyne.CanvasObject
}

func (r *swipeCardRenderer) generate(w, h int) image.Image {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	size := r.card.Size()
	if size.Width <= 0 || w <= 0 {
		return img
	}
	paintCard(img, r.spec, float64(w)/float64(size.Width))
	return img
}

// update recomputes the paint spec and lays out the text for the current
// gesture state.
func (r *swipeCardRenderer) update() {
	c := r.card
	size := c.Size()
	v := c.surface.Visuals(float64(size.Width))
	f := newCardFrame(float64(size.Width), float64(size.Height), v)

	r.spec = paintSpec{Frame: f, Fill: c.card.Color(), Like: v.Like, Nope: v.Nope}

	scale := float32(f.Scale)
	r.title.TextSize = 28 * scale
	r.title.Color = withAlpha(titleColor, f.Opacity)
	r.bio.TextSize = 15 * scale
	r.bio.Color = withAlpha(bioColor, f.Opacity)

	top := f.HalfH - infoHeight
	placeText(r.title, f, -f.HalfW+infoPadding, top+20)
	placeText(r.bio, f, -f.HalfW+infoPadding, top+64)

	lx, ly := f.likeCenter()
	placeStamp(r.like, f, lx, ly, v.Like, likeColor)
	nx, ny := f.nopeCenter()
	placeStamp(r.nope, f, nx, ny, v.Nope, nopeColor)
}

func placeText(t *canvas.Text, f cardFrame, lx, ly float64) {
	x, y := f.toCanvas(lx, ly)
	t.Resize(t.MinSize())
	t.Move(fyne.NewPos(float32(x), float32(y)))
}

func placeStamp(t *canvas.Text, f cardFrame, lx, ly float64, s swipe.Stamp, col color.NRGBA) {
	t.TextSize = float32(36 * s.Scale * f.Scale)
	t.Color = withAlpha(col, s.Opacity*f.Opacity)
	t.Hidden = s.Opacity <= 0

	x, y := f.toCanvas(lx, ly)
	size := t.MinSize()
	t.Resize(size)
	t.Move(fyne.NewPos(float32(x)-size.Width/2, float32(y)-size.Height/2))
}

func (r *swipeCardRenderer) Layout(size fyne.Size) {
	r.body.Resize(size)
	r.body.Move(fyne.NewPos(0, 0))
	r.update()
}

func (r *swipeCardRenderer) MinSize() fyne.Size {
	return fyne.NewSize(240, 360)
}

func (r *swipeCardRenderer) Refresh() {
	r.update()
	for _, o := range r.objects {
		o.Refresh()
	}
}

func (r *swipeCardRenderer) Objects() []fyne.CanvasObject {
	return r.objects
}

func (r *swipeCardRenderer) Destroy() {
	r.card.stop()
}
