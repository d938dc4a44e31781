package deck

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
)

// WatchSeed reloads the seed deck whenever the file at path is written and
// installs it with ReplaceSeed. A file that fails to parse is logged and the
// current deck is kept. Blocks until ctx is cancelled.
// The parent directory is watched so saves by rename are seen too.
func WatchSeed(ctx context.Context, path string, c *Controller, logger *slog.Logger) (err error) {
	if logger == nil {
		logger = slog.Default()
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("resolve seed path: %w", err)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create file watcher: %w", err)
	}
	defer func() {
		if closeErr := watcher.Close(); closeErr != nil && err == nil {
			err = closeErr
		}
	}()

	if err := watcher.Add(filepath.Dir(abs)); err != nil {
		return fmt.Errorf("failed to watch seed directory: %w", err)
	}
	logger.Info("watching seed deck", "path", abs)

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != abs {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}

			cards, loadErr := LoadSeed(abs)
			if loadErr != nil {
				logger.Warn("seed deck reload failed, keeping current deck", "path", abs, "error", loadErr)
				continue
			}
			c.ReplaceSeed(cards, abs)
		case watchErr, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Warn("file watcher error", "error", watchErr)
		}
	}
}
