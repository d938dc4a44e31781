package gui

import (
	"errors"
	"log/slog"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/dialog"

	"github.com/ramonehamilton/swipedeck/internal/config"
	"github.com/ramonehamilton/swipedeck/internal/deck"
	"github.com/ramonehamilton/swipedeck/internal/events"
	"github.com/ramonehamilton/swipedeck/internal/metrics"
	"github.com/ramonehamilton/swipedeck/internal/swipe"
	"github.com/ramonehamilton/swipedeck/internal/version"
)

// Options configures the GUI application.
type Options struct {
	Title      string
	Width      float32
	Height     float32
	Rules      swipe.Rules
	Metrics    *metrics.GestureMetrics
	Dispatcher *events.EventDispatcher
	Logger     *slog.Logger

	// Config and ConfigPath back the settings dialog. An empty path saves
	// to config.DefaultPath.
	Config     *config.Config
	ConfigPath string

	// Warnings are shown in a dialog once the window is up, e.g. a seed
	// file that failed to load.
	Warnings []error
}

// App represents the GUI application.
type App struct {
	app        fyne.App
	window     fyne.Window
	controller *deck.Controller
	view       *DeckView
	opts       Options
	logger     *slog.Logger
}

// NewApp creates a new GUI application for the controller's deck.
func NewApp(controller *deck.Controller, opts Options) *App {
	return newApp(app.New(), controller, opts)
}

func newApp(fa fyne.App, controller *deck.Controller, opts Options) *App {
	if opts.Title == "" {
		opts.Title = AppName
	}
	if opts.Width <= 0 || opts.Height <= 0 {
		opts.Width, opts.Height = 480, 800
	}
	if opts.Rules == (swipe.Rules{}) {
		opts.Rules = swipe.DefaultRules()
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &App{
		app:        fa,
		controller: controller,
		opts:       opts,
		logger:     logger,
	}
}

// Run starts the GUI application and blocks until the window is closed.
func (a *App) Run() {
	a.setup()
	if len(a.opts.Warnings) > 0 {
		a.ShowErrorDialog("Startup", errors.Join(a.opts.Warnings...))
	}
	a.window.ShowAndRun()
}

func (a *App) setup() {
	a.window = a.app.NewWindow(a.opts.Title + " " + version.GetVersion())
	a.window.Resize(fyne.NewSize(a.opts.Width, a.opts.Height))

	a.view = NewDeckView(a.controller, a.opts.Rules, a.opts.Metrics, a.opts.Dispatcher, a.logger)
	a.window.SetContent(a.view)
	a.window.SetMainMenu(a.mainMenu())
	a.setupKeyboardShortcuts()

	a.logger.Debug("window ready", "cards", a.controller.Len())
}

func (a *App) mainMenu() *fyne.MainMenu {
	return fyne.NewMainMenu(
		fyne.NewMenu("Deck",
			fyne.NewMenuItem("Reset Cards", a.view.Reset),
			fyne.NewMenuItemSeparator(),
			fyne.NewMenuItem("Like", func() { a.view.SwipeTop(swipe.Right) }),
			fyne.NewMenuItem("Nope", func() { a.view.SwipeTop(swipe.Left) }),
			fyne.NewMenuItemSeparator(),
			fyne.NewMenuItem("Settings…", a.ShowSettings),
		),
		fyne.NewMenu("Help",
			fyne.NewMenuItem("Shortcuts", a.ShowHelp),
			fyne.NewMenuItem("About", a.ShowAbout),
		),
	)
}

// ShowErrorDialog displays an error dialog.
func (a *App) ShowErrorDialog(title string, err error) {
	a.logger.Warn(title, "error", err)
	dialog.ShowError(err, a.window)
}
