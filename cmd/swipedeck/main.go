package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/ramonehamilton/swipedeck/internal/config"
	"github.com/ramonehamilton/swipedeck/internal/deck"
	"github.com/ramonehamilton/swipedeck/internal/events"
	"github.com/ramonehamilton/swipedeck/internal/gui"
	"github.com/ramonehamilton/swipedeck/internal/metrics"
	"github.com/ramonehamilton/swipedeck/internal/version"
)

var (
	configPath     = flag.String("config", "", "Path to config file (default ~/.swipedeck/config.toml)")
	deckPath       = flag.String("deck", "", "Path to a TOML seed deck (overrides deck.seed_file)")
	debugMode      = flag.Bool("debug-mode", false, "Enable verbose debug logging")
	debugModeShort = flag.Bool("d", false, "Enable debug logging (shorthand for -debug-mode)")
	width          = flag.Int("width", 0, "Window width (overrides window.width)")
	height         = flag.Int("height", 0, "Window height (overrides window.height)")
	showVersion    = flag.Bool("version", false, "Print version and exit")
)

func main() {
	flag.Parse()

	if *showVersion {
		fmt.Println("swipedeck", version.String())
		return
	}
	if *debugModeShort {
		*debugMode = true
	}

	var warnings []error

	cfg, err := loadConfig(*configPath)
	if err != nil {
		warnings = append(warnings, err)
	}
	applyFlags(cfg)

	logger := newLogger(cfg.App.DebugMode)
	slog.SetDefault(logger)
	for _, w := range warnings {
		logger.Warn("using default configuration", "error", w)
	}

	rules, err := cfg.Rules()
	if err != nil {
		// Validate already checked it.
		logger.Error("invalid gesture settings", "error", err)
		os.Exit(1)
	}
	delay, err := cfg.GetRemovalDelay()
	if err != nil {
		logger.Error("invalid removal delay", "error", err)
		os.Exit(1)
	}

	cards, source, err := loadDeck(cfg.Deck.SeedFile)
	if err != nil {
		logger.Warn("using built-in deck", "error", err)
		warnings = append(warnings, err)
	}

	dispatcher := events.NewEventDispatcher()
	dispatcher.Register(events.NewLoggingObserver(logger, cfg.App.DebugMode))
	gestures := metrics.NewGestureMetrics()
	dispatcher.Register(gestures)

	controller := deck.NewController(cards,
		deck.WithRemovalDelay(delay),
		deck.WithDispatcher(dispatcher),
		deck.WithSource(source),
		deck.WithLogger(logger),
	)
	logger.Info("deck ready", "cards", controller.Len(), "source", source)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if cfg.Deck.SeedFile != "" && cfg.Deck.WatchSeed {
		go func() {
			if err := deck.WatchSeed(ctx, cfg.Deck.SeedFile, controller, logger); err != nil {
				logger.Warn("seed watcher stopped", "error", err)
			}
		}()
	}

	app := gui.NewApp(controller, gui.Options{
		Width:      float32(cfg.Window.Width),
		Height:     float32(cfg.Window.Height),
		Rules:      rules,
		Metrics:    gestures,
		Dispatcher: dispatcher,
		Logger:     logger,
		Config:     cfg,
		ConfigPath: *configPath,
		Warnings:   warnings,
	})
	app.Run()

	cancel()
	printSummary(os.Stdout, controller, gestures.Snapshot())
}

// loadConfig loads and validates the config file. On error the returned
// config holds the defaults.
func loadConfig(path string) (*config.Config, error) {
	cfg, err := config.Load(path)
	if err != nil {
		return config.DefaultConfig(), fmt.Errorf("load config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return config.DefaultConfig(), fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// applyFlags lets command-line flags override the config file.
func applyFlags(cfg *config.Config) {
	if *debugMode {
		cfg.App.DebugMode = true
	}
	if *deckPath != "" {
		cfg.Deck.SeedFile = *deckPath
	}
	if *width > 0 {
		cfg.Window.Width = *width
	}
	if *height > 0 {
		cfg.Window.Height = *height
	}
}

func newLogger(debug bool) *slog.Logger {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

// loadDeck reads the seed file, falling back to the built-in deck when no
// file is configured or it cannot be used.
func loadDeck(path string) (cards []deck.Card, source string, err error) {
	if path == "" {
		return deck.DefaultCards(), "", nil
	}

	cards, err = deck.LoadSeed(path)
	if err != nil {
		if errors.Is(err, deck.ErrEmptyDeck) {
			err = fmt.Errorf("seed deck %s has no cards: %w", path, err)
		}
		return deck.DefaultCards(), "", err
	}
	return cards, path, nil
}
