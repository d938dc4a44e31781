package main

import (
	"bytes"
	"testing"

	colorize "github.com/fatih/color"
	"github.com/stretchr/testify/assert"

	"github.com/ramonehamilton/swipedeck/internal/deck"
	"github.com/ramonehamilton/swipedeck/internal/metrics"
	"github.com/ramonehamilton/swipedeck/internal/swipe"
)

func TestPrintSummary(t *testing.T) {
	old := colorize.NoColor
	colorize.NoColor = true
	t.Cleanup(func() { colorize.NoColor = old })

	c := deck.NewController(deck.DefaultCards())
	cards := c.Cards()
	c.RecordDecision(cards[0], swipe.Right)
	c.RecordDecision(cards[1], swipe.Left)
	c.RemoveCard(cards[0].ID)
	c.RemoveCard(cards[1].ID)

	var buf bytes.Buffer
	printSummary(&buf, c, metrics.Snapshot{Drags: 3, Cancelled: 1, MeanDragMs: 250, P95DragMs: 400})
	out := buf.String()

	assert.Contains(t, out, "Liked:     1")
	assert.Contains(t, out, "Passed:    1")
	assert.Contains(t, out, "Remaining: 3")
	assert.Contains(t, out, "Drags:     3 (1 sprang back), mean 250ms, p95 400ms")
	assert.NotContains(t, out, "Resets:")
	assert.Contains(t, out, "♥ Sarah, 24")
	assert.Contains(t, out, "✗ Emma, 26")
}

func TestLoadDeck(t *testing.T) {
	cards, source, err := loadDeck("")
	assert.NoError(t, err)
	assert.Empty(t, source)
	assert.Equal(t, deck.DefaultCards(), cards)

	cards, source, err = loadDeck("/does/not/exist.toml")
	assert.Error(t, err)
	assert.Empty(t, source)
	assert.Len(t, cards, 5)
}
