package events

import (
	"log/slog"
)

// LoggingObserver logs all events for debugging purposes.
type LoggingObserver struct {
	name    string
	logger  *slog.Logger
	verbose bool
}

// NewLoggingObserver creates a new observer that logs events.
// Non-verbose observers log at debug level and omit payloads.
func NewLoggingObserver(logger *slog.Logger, verbose bool) *LoggingObserver {
	if logger == nil {
		logger = slog.Default()
	}
	return &LoggingObserver{
		name:    "LoggingObserver",
		logger:  logger,
		verbose: verbose,
	}
}

// OnEvent logs the event details.
func (o *LoggingObserver) OnEvent(event Event) error {
	if o.verbose {
		o.logger.Info("event", "type", event.Type, "data", event.Data)
	} else {
		o.logger.Debug("event", "type", event.Type)
	}
	return nil
}

// GetName returns the observer's name.
func (o *LoggingObserver) GetName() string {
	return o.name
}

// ShouldHandle returns true for all events (logs everything).
func (o *LoggingObserver) ShouldHandle(eventType string) bool {
	return true
}

// FuncObserver adapts a function to the Observer interface, limited to a set
// of event types. An empty set handles every type.
type FuncObserver struct {
	name  string
	types map[string]bool
	fn    func(Event) error
}

// NewFuncObserver creates an observer calling fn for the given event types.
func NewFuncObserver(name string, fn func(Event) error, eventTypes ...string) *FuncObserver {
	types := make(map[string]bool, len(eventTypes))
	for _, t := range eventTypes {
		types[t] = true
	}
	return &FuncObserver{name: name, types: types, fn: fn}
}

// OnEvent calls the wrapped function.
func (o *FuncObserver) OnEvent(event Event) error {
	return o.fn(event)
}

// GetName returns the observer's name.
func (o *FuncObserver) GetName() string {
	return o.name
}

// ShouldHandle filters by the configured event types.
func (o *FuncObserver) ShouldHandle(eventType string) bool {
	return len(o.types) == 0 || o.types[eventType]
}
