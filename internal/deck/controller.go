// Package deck holds the card stack: the ordered list of cards still in play,
// the history of swipe decisions, and the seed deck a reset restores.
package deck

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/ramonehamilton/swipedeck/internal/events"
	"github.com/ramonehamilton/swipedeck/internal/swipe"
)

// DefaultRemovalDelay lets the exit animation play before the card leaves
// the layout.
const DefaultRemovalDelay = 300 * time.Millisecond

// Clock schedules deferred work.
type Clock interface {
	AfterFunc(d time.Duration, f func())
}

type realClock struct{}

func (realClock) AfterFunc(d time.Duration, f func()) {
	time.AfterFunc(d, f)
}

// Controller owns the active card list and the decision history.
// All operations are total: unknown ids and repeated calls are no-ops.
type Controller struct {
	mu sync.RWMutex

	seed    []Card
	active  []Card
	history []Decision
	source  string

	delay      time.Duration
	clock      Clock
	now        func() time.Time
	dispatcher *events.EventDispatcher
	logger     *slog.Logger

	listenersMu sync.Mutex
	listeners   []func()
}

// Option configures a Controller.
type Option func(*Controller)

// WithRemovalDelay sets the delay between a swipe and the card's removal.
func WithRemovalDelay(d time.Duration) Option {
	return func(c *Controller) {
		if d >= 0 {
			c.delay = d
		}
	}
}

// WithClock replaces the timer source used for delayed removals.
func WithClock(clock Clock) Option {
	return func(c *Controller) {
		if clock != nil {
			c.clock = clock
		}
	}
}

// WithNow replaces the wall clock used to stamp decisions.
func WithNow(now func() time.Time) Option {
	return func(c *Controller) {
		if now != nil {
			c.now = now
		}
	}
}

// WithDispatcher publishes deck events to d.
func WithDispatcher(d *events.EventDispatcher) Option {
	return func(c *Controller) {
		c.dispatcher = d
	}
}

// WithSource records the seed file the initial deck came from.
func WithSource(path string) Option {
	return func(c *Controller) {
		c.source = path
	}
}

// WithLogger sets the controller logger.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Controller) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// NewController creates a controller whose active list starts as seed.
// Cards repeating an earlier id are dropped.
func NewController(seed []Card, opts ...Option) *Controller {
	c := &Controller{
		delay:  DefaultRemovalDelay,
		clock:  realClock{},
		now:    time.Now,
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}

	c.seed = c.dedupe(seed)
	c.active = cloneCards(c.seed)
	return c
}

func (c *Controller) dedupe(cards []Card) []Card {
	seen := make(map[string]bool, len(cards))
	out := make([]Card, 0, len(cards))
	for _, card := range cards {
		if seen[card.ID] {
			c.logger.Warn("dropping duplicate card", "id", card.ID, "name", card.Name)
			continue
		}
		seen[card.ID] = true
		out = append(out, card)
	}
	return out
}

// OnChange registers fn to run after every change to the active list or
// the history. fn runs on the goroutine that made the change.
func (c *Controller) OnChange(fn func()) {
	c.listenersMu.Lock()
	defer c.listenersMu.Unlock()
	c.listeners = append(c.listeners, fn)
}

func (c *Controller) notify() {
	c.listenersMu.Lock()
	listeners := make([]func(), len(c.listeners))
	copy(listeners, c.listeners)
	c.listenersMu.Unlock()

	for _, fn := range listeners {
		fn()
	}
}

func (c *Controller) dispatch(eventType string, data any) {
	c.dispatcher.Dispatch(events.NewTypedEvent(context.Background(), eventType, data))
}

// Cards returns a copy of the active list, top card first.
func (c *Controller) Cards() []Card {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return cloneCards(c.active)
}

// Top returns the interactive card.
func (c *Controller) Top() (Card, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if len(c.active) == 0 {
		return Card{}, false
	}
	return c.active[0], true
}

// Len returns the number of cards left.
func (c *Controller) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.active)
}

// IsEmpty reports whether every card has been swiped away.
func (c *Controller) IsEmpty() bool {
	return c.Len() == 0
}

// Source returns the seed file the current deck was loaded from, if any.
func (c *Controller) Source() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.source
}

// History returns a copy of the decisions in swipe order.
func (c *Controller) History() []Decision {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]Decision, len(c.history))
	copy(out, c.history)
	return out
}

// Counts returns the number of right and left swipes so far.
func (c *Controller) Counts() (likes, nopes int) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return countDecisions(c.history)
}

func countDecisions(history []Decision) (likes, nopes int) {
	for _, d := range history {
		if d.Liked() {
			likes++
		} else {
			nopes++
		}
	}
	return likes, nopes
}

// RemoveCard drops the card with the given id from the active list. Removing
// an id that is not present does nothing.
func (c *Controller) RemoveCard(id string) {
	c.mu.Lock()
	idx := -1
	for i, card := range c.active {
		if card.ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		c.mu.Unlock()
		c.logger.Debug("remove ignored, card not in play", "id", id)
		return
	}

	c.active = append(c.active[:idx:idx], c.active[idx+1:]...)
	remaining := len(c.active)
	likes, nopes := countDecisions(c.history)
	c.mu.Unlock()

	c.logger.Debug("card removed", "id", id, "remaining", remaining)
	c.dispatch(events.CardRemoved, events.CardRemovedEvent{CardID: id, Remaining: remaining})
	if remaining == 0 {
		c.dispatch(events.DeckEmpty, events.DeckEmptyEvent{Likes: likes, Nopes: nopes})
	}
	c.notify()
}

// ScheduleRemoval removes the card after the removal delay. The timer cannot
// be cancelled; if the deck is reset first the removal still happens.
func (c *Controller) ScheduleRemoval(id string) {
	c.clock.AfterFunc(c.delay, func() {
		c.RemoveCard(id)
	})
}

// RecordDecision appends a decision to the history.
func (c *Controller) RecordDecision(card Card, dir swipe.Direction) {
	c.mu.Lock()
	c.history = append(c.history, Decision{Card: card, Direction: dir, At: c.now()})
	n := len(c.history)
	c.mu.Unlock()

	c.logger.Info("swiped", "direction", dir.String(), "label", dir.Label(), "id", card.ID, "name", card.Name)
	c.dispatch(events.CardSwiped, events.CardSwipedEvent{
		CardID:    card.ID,
		Name:      card.Name,
		Direction: dir.String(),
		Decisions: n,
	})
	c.notify()
}

// Swiped is the completion callback of a swipe surface: it records the
// decision and schedules the card's removal.
func (c *Controller) Swiped(card Card, dir swipe.Direction) {
	c.RecordDecision(card, dir)
	c.ScheduleRemoval(card.ID)
}

// Reset restores the seed deck and clears the history.
func (c *Controller) Reset() {
	c.mu.Lock()
	c.active = cloneCards(c.seed)
	c.history = nil
	n := len(c.active)
	c.mu.Unlock()

	c.logger.Info("deck reset", "cards", n)
	c.dispatch(events.DeckReset, events.DeckResetEvent{Cards: n})
	c.notify()
}

// ReplaceSeed installs a new seed deck and resets to it.
func (c *Controller) ReplaceSeed(cards []Card, source string) {
	seed := c.dedupe(cards)

	c.mu.Lock()
	c.seed = seed
	c.source = source
	c.active = cloneCards(seed)
	c.history = nil
	c.mu.Unlock()

	c.logger.Info("seed deck replaced", "cards", len(seed), "source", source)
	c.dispatch(events.DeckReloaded, events.DeckReloadedEvent{Cards: len(seed), Source: source})
	c.notify()
}

func cloneCards(cards []Card) []Card {
	out := make([]Card, len(cards))
	copy(out, cards)
	return out
}
