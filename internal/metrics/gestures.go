package metrics

import (
	"math"
	"sync/atomic"
	"time"

	"github.com/ramonehamilton/swipedeck/internal/events"
	"github.com/ramonehamilton/swipedeck/internal/swipe"
)

// GestureMetrics tracks how the card stack is being used.
type GestureMetrics struct {
	// Drag length from first move to release (ms) and release speed (px/s).
	DragDuration *Histogram
	ReleaseSpeed *Histogram

	// Gesture outcomes, including cancelled drags.
	Drags     atomic.Uint64
	Cancelled atomic.Uint64

	// Decisions seen on the event bus; covers keyboard dismissals too.
	Likes  atomic.Uint64
	Nopes  atomic.Uint64
	Resets atomic.Uint64

	startTime time.Time
}

// NewGestureMetrics creates a new metrics collector.
func NewGestureMetrics() *GestureMetrics {
	return &GestureMetrics{
		DragDuration: NewHistogram(1000),
		ReleaseSpeed: NewHistogram(1000),
		startTime:    time.Now(),
	}
}

// RecordGesture records a released drag.
func (m *GestureMetrics) RecordGesture(outcome swipe.Outcome, d time.Duration, vx float64) {
	m.Drags.Add(1)
	if !outcome.Completed() {
		m.Cancelled.Add(1)
	}
	m.DragDuration.Record(d)
	m.ReleaseSpeed.Observe(math.Abs(vx))
}

// OnEvent counts decisions and resets. Implements events.Observer.
func (m *GestureMetrics) OnEvent(event events.Event) error {
	switch event.Type {
	case events.CardSwiped:
		data, ok := events.GetTypedData[events.CardSwipedEvent](event)
		if !ok {
			return nil
		}
		if data.Direction == swipe.Right.String() {
			m.Likes.Add(1)
		} else {
			m.Nopes.Add(1)
		}
	case events.DeckReset, events.DeckReloaded:
		m.Resets.Add(1)
	}
	return nil
}

// GetName implements events.Observer.
func (m *GestureMetrics) GetName() string {
	return "GestureMetrics"
}

// ShouldHandle implements events.Observer.
func (m *GestureMetrics) ShouldHandle(eventType string) bool {
	switch eventType {
	case events.CardSwiped, events.DeckReset, events.DeckReloaded:
		return true
	default:
		return false
	}
}

// Snapshot is a point-in-time copy of the metrics.
type Snapshot struct {
	Drags      uint64
	Cancelled  uint64
	Likes      uint64
	Nopes      uint64
	Resets     uint64
	MeanDragMs float64
	P95DragMs  float64
	MaxSpeed   float64
	Uptime     time.Duration
}

// Snapshot returns the current metrics.
func (m *GestureMetrics) Snapshot() Snapshot {
	return Snapshot{
		Drags:      m.Drags.Load(),
		Cancelled:  m.Cancelled.Load(),
		Likes:      m.Likes.Load(),
		Nopes:      m.Nopes.Load(),
		Resets:     m.Resets.Load(),
		MeanDragMs: m.DragDuration.Mean(),
		P95DragMs:  m.DragDuration.Percentile(95),
		MaxSpeed:   m.ReleaseSpeed.Max(),
		Uptime:     time.Since(m.startTime),
	}
}
