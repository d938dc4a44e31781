package swipe

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDecide(t *testing.T) {
	rules := DefaultRules()

	tests := []struct {
		name string
		tx   float64
		vx   float64
		want Outcome
	}{
		{"past threshold to the right", 260, 0, CompletedRight},
		{"fast flick under the distance guard", 40, 900, Cancelled},
		{"past threshold to the left", -300, 0, CompletedLeft},
		{"short slow drag", 100, 0, Cancelled},
		{"fast flick past the distance guard", 60, 900, CompletedRight},
		{"fast flick left", -80, -1200, CompletedLeft},
		{"exactly at threshold", 250, 0, Cancelled},
		{"exactly at velocity threshold", 100, 800, Cancelled},
		{"velocity against the drag", 120, -900, CompletedRight},
		{"no movement", 0, 0, Cancelled},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, rules.Decide(testWidth, tt.tx, tt.vx))
		})
	}
}

func TestOutcomeDirection(t *testing.T) {
	dir, ok := CompletedRight.Direction()
	assert.True(t, ok)
	assert.Equal(t, Right, dir)

	dir, ok = CompletedLeft.Direction()
	assert.True(t, ok)
	assert.Equal(t, Left, dir)

	_, ok = Cancelled.Direction()
	assert.False(t, ok)
	assert.False(t, Cancelled.Completed())
}

func TestExitTarget(t *testing.T) {
	rules := DefaultRules()

	assert.Equal(t, Offset{X: 1500, Y: 130}, rules.ExitTarget(testWidth, 30, Right))
	assert.Equal(t, Offset{X: -1500, Y: -70}, rules.ExitTarget(testWidth, 30, Left))
}

func TestDirectionLabels(t *testing.T) {
	assert.Equal(t, "LIKE", Right.Label())
	assert.Equal(t, "NOPE", Left.Label())
	assert.Equal(t, "right", Right.String())
	assert.Equal(t, "left", Left.String())
}
