package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ramonehamilton/swipedeck/internal/swipe"
)

func TestDefaultConfig_MatchesDefaultRules(t *testing.T) {
	cfg := DefaultConfig()
	require.NoError(t, cfg.Validate())

	rules, err := cfg.Rules()
	require.NoError(t, err)
	assert.Equal(t, swipe.DefaultRules(), rules)

	delay, err := cfg.GetRemovalDelay()
	require.NoError(t, err)
	assert.Equal(t, 300*time.Millisecond, delay)
}

func TestLoad_MissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "config.toml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoad_PartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
[gesture]
threshold_ratio = 0.3
exit_duration = "250ms"

[app]
debug_mode = true
`), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 0.3, cfg.Gesture.ThresholdRatio)
	assert.True(t, cfg.App.DebugMode)
	assert.Equal(t, 800.0, cfg.Gesture.VelocityThreshold)
	assert.Equal(t, "300ms", cfg.Deck.RemovalDelay)

	rules, err := cfg.Rules()
	require.NoError(t, err)
	assert.Equal(t, 250*time.Millisecond, rules.ExitDuration)
}

func TestLoad_InvalidTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("[gesture\n"), 0o644))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestSaveAndLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.toml")

	cfg := DefaultConfig()
	cfg.Deck.SeedFile = "/decks/friends.toml"
	cfg.Window.Width = 600
	require.NoError(t, cfg.Save(path))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero width", func(c *Config) { c.Window.Width = 0 }},
		{"zero threshold", func(c *Config) { c.Gesture.ThresholdRatio = 0 }},
		{"threshold above one", func(c *Config) { c.Gesture.ThresholdRatio = 1.5 }},
		{"negative velocity", func(c *Config) { c.Gesture.VelocityThreshold = -1 }},
		{"negative min distance", func(c *Config) { c.Gesture.MinDistance = -1 }},
		{"bad exit duration", func(c *Config) { c.Gesture.ExitDuration = "soon" }},
		{"zero exit duration", func(c *Config) { c.Gesture.ExitDuration = "0s" }},
		{"stack step of one", func(c *Config) { c.Gesture.StackScaleStep = 1 }},
		{"massless spring", func(c *Config) { c.Spring.Mass = 0 }},
		{"bad removal delay", func(c *Config) { c.Deck.RemovalDelay = "later" }},
		{"negative removal delay", func(c *Config) { c.Deck.RemovalDelay = "-1s" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}
