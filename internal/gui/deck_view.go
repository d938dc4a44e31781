package gui

import (
	"fmt"
	"log/slog"
	"sync/atomic"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/ramonehamilton/swipedeck/internal/deck"
	"github.com/ramonehamilton/swipedeck/internal/events"
	"github.com/ramonehamilton/swipedeck/internal/metrics"
	"github.com/ramonehamilton/swipedeck/internal/swipe"
)

// DeckView renders the controller's active cards as a stack, top card in
// front, and shows an empty state once every card has been swiped.
type DeckView struct {
	widget.BaseWidget

	controller *deck.Controller
	rules      swipe.Rules
	metrics    *metrics.GestureMetrics
	logger     *slog.Logger
	animate    animateFunc

	cards   map[string]*SwipeCard
	order   []*SwipeCard
	rebuild atomic.Bool // replace every widget: the cards were restored
	retune  atomic.Bool // replace the widgets of cards still in play

	stack  *fyne.Container
	empty  *fyne.Container
	status *widget.Label
}

// NewDeckView creates a view of c. When dispatcher is non-nil the view
// rebuilds its cards on deck resets and reloads published there.
func NewDeckView(c *deck.Controller, rules swipe.Rules, m *metrics.GestureMetrics, dispatcher *events.EventDispatcher, logger *slog.Logger) *DeckView {
	if logger == nil {
		logger = slog.Default()
	}
	v := &DeckView{
		controller: c,
		rules:      rules,
		metrics:    m,
		logger:     logger,
		animate:    fyneAnimate,
		cards:      make(map[string]*SwipeCard),
		stack:      container.NewStack(),
		status:     widget.NewLabel(""),
	}
	v.status.Alignment = fyne.TextAlignCenter

	title := widget.NewLabelWithStyle("No more cards!", fyne.TextAlignCenter, fyne.TextStyle{Bold: true})
	v.empty = container.NewCenter(container.NewVBox(
		title,
		widget.NewButton("Reset Cards", v.Reset),
	))
	v.empty.Hide()

	if dispatcher != nil {
		dispatcher.Register(events.NewFuncObserver("DeckView", func(events.Event) error {
			v.rebuild.Store(true)
			return nil
		}, events.DeckReset, events.DeckReloaded))
	}
	c.OnChange(func() {
		fyne.Do(v.Sync)
	})

	v.ExtendBaseWidget(v)
	v.Sync()
	return v
}

// SetRules changes the gesture tuning and rebuilds the cards still in play
// with it. Cards already swiped finish leaving with the old tuning.
func (v *DeckView) SetRules(rules swipe.Rules) {
	v.rules = rules
	v.retune.Store(true)
	v.Sync()
}

// Reset restores the full deck, replacing every card widget.
func (v *DeckView) Reset() {
	v.rebuild.Store(true)
	v.controller.Reset()
}

// Sync brings the stack in line with the controller. Existing card widgets
// are kept by id so a card keeps its gesture state while others leave.
func (v *DeckView) Sync() {
	switch {
	case v.rebuild.Swap(false):
		v.retune.Store(false)
		v.dropCards(func(*SwipeCard) bool { return true })
	case v.retune.Swap(false):
		// A card that was swiped keeps its widget until the controller
		// removes it, so it cannot be swiped a second time.
		v.dropCards(func(c *SwipeCard) bool { return !leaving(c.Phase()) })
	}

	active := v.controller.Cards()
	keep := make(map[string]bool, len(active))
	order := make([]*SwipeCard, 0, len(active))

	for i, card := range active {
		keep[card.ID] = true
		sc, ok := v.cards[card.ID]
		if !ok {
			sc = v.newCard(card)
			v.cards[card.ID] = sc
		}
		sc.SetStackPosition(i == 0, i)
		order = append(order, sc)
	}
	for id, sc := range v.cards {
		if !keep[id] {
			sc.stop()
			delete(v.cards, id)
		}
	}
	v.order = order

	// Back to front: the top card is drawn last and receives the drags.
	objects := make([]fyne.CanvasObject, len(order))
	for i, sc := range order {
		objects[len(order)-1-i] = sc
	}
	v.stack.Objects = objects
	v.stack.Refresh()

	if len(order) == 0 {
		v.empty.Show()
	} else {
		v.empty.Hide()
	}

	likes, nopes := v.controller.Counts()
	v.status.SetText(fmt.Sprintf("%d left · %d liked · %d passed", len(order), likes, nopes))
}

func (v *DeckView) dropCards(replace func(*SwipeCard) bool) {
	for id, c := range v.cards {
		if replace(c) {
			c.stop()
			delete(v.cards, id)
		}
	}
}

func leaving(p swipe.Phase) bool {
	switch p {
	case swipe.ExitingLeft, swipe.ExitingRight, swipe.Gone:
		return true
	}
	return false
}

func (v *DeckView) newCard(card deck.Card) *SwipeCard {
	sc := NewSwipeCard(card, v.rules, v.controller.Swiped)
	sc.metrics = v.metrics
	sc.logger = v.logger
	sc.animate = v.animate
	return sc
}

// Top returns the widget of the interactive card.
func (v *DeckView) Top() (*SwipeCard, bool) {
	if len(v.order) == 0 {
		return nil, false
	}
	return v.order[0], true
}

// SwipeTop dismisses the top card in dir, as if it had been flung.
func (v *DeckView) SwipeTop(dir swipe.Direction) bool {
	top, ok := v.Top()
	if !ok {
		return false
	}
	return top.Dismiss(dir)
}

// CreateRenderer implements fyne.Widget.
func (v *DeckView) CreateRenderer() fyne.WidgetRenderer {
	body := container.NewStack(v.stack, v.empty)
	return widget.NewSimpleRenderer(container.NewBorder(nil, v.status, nil, nil, body))
}
