package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/pelletier/go-toml/v2"

	"github.com/ramonehamilton/swipedeck/internal/swipe"
)

// Config represents the application configuration.
type Config struct {
	// Window configuration
	Window WindowConfig `toml:"window"`

	// Gesture tuning
	Gesture GestureConfig `toml:"gesture"`

	// Return spring
	Spring SpringConfig `toml:"spring"`

	// Card deck configuration
	Deck DeckConfig `toml:"deck"`

	// Application configuration
	App AppConfig `toml:"app"`
}

// WindowConfig contains the initial window size.
type WindowConfig struct {
	Width  int `toml:"width"`
	Height int `toml:"height"`
}

// GestureConfig contains swipe recognition settings.
type GestureConfig struct {
	ThresholdRatio    float64 `toml:"threshold_ratio"`    // Fraction of viewport width
	VelocityThreshold float64 `toml:"velocity_threshold"` // px/s
	MinDistance       float64 `toml:"min_distance"`       // px
	ExitDistanceRatio float64 `toml:"exit_distance_ratio"`
	ExitLift          float64 `toml:"exit_lift"`
	ExitDuration      string  `toml:"exit_duration"` // e.g. "400ms"
	StackScaleStep    float64 `toml:"stack_scale_step"`
	StackOffset       float64 `toml:"stack_offset"`
}

// SpringConfig contains the cancel-return spring parameters.
type SpringConfig struct {
	Damping   float64 `toml:"damping"`
	Stiffness float64 `toml:"stiffness"`
	Mass      float64 `toml:"mass"`
}

// DeckConfig contains card deck settings.
type DeckConfig struct {
	SeedFile     string `toml:"seed_file"`     // Optional TOML deck; built-in deck if empty
	WatchSeed    bool   `toml:"watch_seed"`    // Reload the deck when the seed file changes
	RemovalDelay string `toml:"removal_delay"` // e.g. "300ms"
}

// AppConfig contains general application settings.
type AppConfig struct {
	DebugMode bool `toml:"debug_mode"` // Enable debug logging
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	rules := swipe.DefaultRules()
	return &Config{
		Window: WindowConfig{
			Width:  480,
			Height: 800,
		},
		Gesture: GestureConfig{
			ThresholdRatio:    rules.ThresholdRatio,
			VelocityThreshold: rules.VelocityThreshold,
			MinDistance:       rules.MinDistance,
			ExitDistanceRatio: rules.ExitDistanceRatio,
			ExitLift:          rules.ExitLift,
			ExitDuration:      rules.ExitDuration.String(),
			StackScaleStep:    rules.StackScaleStep,
			StackOffset:       rules.StackOffset,
		},
		Spring: SpringConfig{
			Damping:   rules.Spring.Damping,
			Stiffness: rules.Spring.Stiffness,
			Mass:      rules.Spring.Mass,
		},
		Deck: DeckConfig{
			SeedFile:     "",
			WatchSeed:    true,
			RemovalDelay: "300ms",
		},
		App: AppConfig{
			DebugMode: false,
		},
	}
}

// DefaultPath returns ~/.swipedeck/config.toml.
func DefaultPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("get home directory: %w", err)
	}
	return filepath.Join(homeDir, ".swipedeck", "config.toml"), nil
}

// Load loads the configuration from path, or from DefaultPath if path is
// empty. Returns the default config if the file doesn't exist. Keys missing
// from the file keep their default values.
func Load(path string) (*Config, error) {
	if path == "" {
		p, err := DefaultPath()
		if err != nil {
			return nil, err
		}
		path = p
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return DefaultConfig(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	config := DefaultConfig()
	if err := toml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("parse config file: %w", err)
	}

	return config, nil
}

// Save writes the configuration to path, creating its directory.
func (c *Config) Save(path string) error {
	if path == "" {
		p, err := DefaultPath()
		if err != nil {
			return err
		}
		path = p
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}

	data, err := toml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write config file: %w", err)
	}

	return nil
}

// Validate validates the configuration values.
func (c *Config) Validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("window size must be positive: %dx%d", c.Window.Width, c.Window.Height)
	}

	g := c.Gesture
	if g.ThresholdRatio <= 0 || g.ThresholdRatio > 1 {
		return fmt.Errorf("threshold ratio must be in (0, 1]: %v", g.ThresholdRatio)
	}
	if g.VelocityThreshold < 0 {
		return fmt.Errorf("velocity threshold cannot be negative: %v", g.VelocityThreshold)
	}
	if g.MinDistance < 0 {
		return fmt.Errorf("min distance cannot be negative: %v", g.MinDistance)
	}
	if g.ExitDistanceRatio <= 0 {
		return fmt.Errorf("exit distance ratio must be positive: %v", g.ExitDistanceRatio)
	}
	if g.StackScaleStep < 0 || g.StackScaleStep >= 1 {
		return fmt.Errorf("stack scale step must be in [0, 1): %v", g.StackScaleStep)
	}
	if d, err := time.ParseDuration(g.ExitDuration); err != nil {
		return fmt.Errorf("invalid exit duration %q: %w", g.ExitDuration, err)
	} else if d <= 0 {
		return fmt.Errorf("exit duration must be positive: %s", g.ExitDuration)
	}

	if c.Spring.Mass <= 0 || c.Spring.Stiffness <= 0 || c.Spring.Damping < 0 {
		return fmt.Errorf("invalid spring: damping=%v stiffness=%v mass=%v",
			c.Spring.Damping, c.Spring.Stiffness, c.Spring.Mass)
	}

	if d, err := time.ParseDuration(c.Deck.RemovalDelay); err != nil {
		return fmt.Errorf("invalid removal delay %q: %w", c.Deck.RemovalDelay, err)
	} else if d < 0 {
		return fmt.Errorf("removal delay cannot be negative: %s", c.Deck.RemovalDelay)
	}

	return nil
}

// Rules returns the swipe tuning described by the configuration.
func (c *Config) Rules() (swipe.Rules, error) {
	exit, err := time.ParseDuration(c.Gesture.ExitDuration)
	if err != nil {
		return swipe.Rules{}, fmt.Errorf("invalid exit duration %q: %w", c.Gesture.ExitDuration, err)
	}

	return swipe.Rules{
		ThresholdRatio:    c.Gesture.ThresholdRatio,
		VelocityThreshold: c.Gesture.VelocityThreshold,
		MinDistance:       c.Gesture.MinDistance,
		ExitDistanceRatio: c.Gesture.ExitDistanceRatio,
		ExitLift:          c.Gesture.ExitLift,
		ExitDuration:      exit,
		StackScaleStep:    c.Gesture.StackScaleStep,
		StackOffset:       c.Gesture.StackOffset,
		Spring: swipe.Spring{
			Damping:   c.Spring.Damping,
			Stiffness: c.Spring.Stiffness,
			Mass:      c.Spring.Mass,
		},
	}, nil
}

// GetRemovalDelay returns the card removal delay as a duration.
func (c *Config) GetRemovalDelay() (time.Duration, error) {
	return time.ParseDuration(c.Deck.RemovalDelay)
}
