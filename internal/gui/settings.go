package gui

import (
	"fmt"
	"strconv"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/ramonehamilton/swipedeck/internal/config"
)

// settingsForm holds the editable subset of the configuration.
type settingsForm struct {
	thresholdEntry *widget.Entry
	velocityEntry  *widget.Entry
	exitEntry      *widget.Entry
	dampingEntry   *widget.Entry
	stiffnessEntry *widget.Entry
	seedFileEntry  *widget.Entry
	removalEntry   *widget.Entry
	watchSeedCheck *widget.Check
	debugModeCheck *widget.Check
}

func newSettingsForm(cfg *config.Config) *settingsForm {
	f := &settingsForm{
		thresholdEntry: widget.NewEntry(),
		velocityEntry:  widget.NewEntry(),
		exitEntry:      widget.NewEntry(),
		dampingEntry:   widget.NewEntry(),
		stiffnessEntry: widget.NewEntry(),
		seedFileEntry:  widget.NewEntry(),
		removalEntry:   widget.NewEntry(),
		watchSeedCheck: widget.NewCheck("Reload the deck when the seed file changes", nil),
		debugModeCheck: widget.NewCheck("Enable detailed debug logging", nil),
	}
	f.thresholdEntry.SetPlaceHolder("e.g., 0.25")
	f.exitEntry.SetPlaceHolder("e.g., 400ms")
	f.seedFileEntry.SetPlaceHolder("Built-in deck if empty")
	f.removalEntry.SetPlaceHolder("e.g., 300ms")
	f.load(cfg)
	return f
}

// load fills the fields from cfg.
func (f *settingsForm) load(cfg *config.Config) {
	f.thresholdEntry.SetText(formatFloat(cfg.Gesture.ThresholdRatio))
	f.velocityEntry.SetText(formatFloat(cfg.Gesture.VelocityThreshold))
	f.exitEntry.SetText(cfg.Gesture.ExitDuration)
	f.dampingEntry.SetText(formatFloat(cfg.Spring.Damping))
	f.stiffnessEntry.SetText(formatFloat(cfg.Spring.Stiffness))
	f.seedFileEntry.SetText(cfg.Deck.SeedFile)
	f.removalEntry.SetText(cfg.Deck.RemovalDelay)
	f.watchSeedCheck.SetChecked(cfg.Deck.WatchSeed)
	f.debugModeCheck.SetChecked(cfg.App.DebugMode)
}

// apply returns a copy of base with the form values, validated.
func (f *settingsForm) apply(base *config.Config) (*config.Config, error) {
	cfg := *base

	var err error
	if cfg.Gesture.ThresholdRatio, err = parseFloat("swipe threshold", f.thresholdEntry.Text); err != nil {
		return nil, err
	}
	if cfg.Gesture.VelocityThreshold, err = parseFloat("fling speed", f.velocityEntry.Text); err != nil {
		return nil, err
	}
	if cfg.Spring.Damping, err = parseFloat("spring damping", f.dampingEntry.Text); err != nil {
		return nil, err
	}
	if cfg.Spring.Stiffness, err = parseFloat("spring stiffness", f.stiffnessEntry.Text); err != nil {
		return nil, err
	}
	cfg.Gesture.ExitDuration = f.exitEntry.Text
	cfg.Deck.SeedFile = f.seedFileEntry.Text
	cfg.Deck.RemovalDelay = f.removalEntry.Text
	cfg.Deck.WatchSeed = f.watchSeedCheck.Checked
	cfg.App.DebugMode = f.debugModeCheck.Checked

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (f *settingsForm) items() []*widget.FormItem {
	return []*widget.FormItem{
		{Text: "", Widget: widget.NewRichTextFromMarkdown("### Gestures")},
		{Text: "Swipe Threshold", Widget: f.thresholdEntry, HintText: "Fraction of the window width"},
		{Text: "Fling Speed", Widget: f.velocityEntry, HintText: "Release speed that swipes regardless of distance (px/s)"},
		{Text: "Exit Duration", Widget: f.exitEntry, HintText: "How long a swiped card takes to fly off"},
		{Text: "Spring Damping", Widget: f.dampingEntry},
		{Text: "Spring Stiffness", Widget: f.stiffnessEntry},
		{Text: "", Widget: widget.NewSeparator()},

		{Text: "", Widget: widget.NewRichTextFromMarkdown("### Deck")},
		{Text: "Seed File", Widget: f.seedFileEntry, HintText: "TOML deck; applies on next launch"},
		{Text: "Removal Delay", Widget: f.removalEntry, HintText: "Applies on next launch"},
		{Text: "", Widget: f.watchSeedCheck},
		{Text: "", Widget: widget.NewSeparator()},

		{Text: "", Widget: widget.NewRichTextFromMarkdown("### Application")},
		{Text: "", Widget: f.debugModeCheck},
	}
}

// ShowSettings displays the settings dialog. Saved gesture settings apply
// to the deck straight away; the rest take effect on the next launch.
func (a *App) ShowSettings() {
	base := a.opts.Config
	if base == nil {
		base = config.DefaultConfig()
	}
	f := newSettingsForm(base)

	var d dialog.Dialog
	form := &widget.Form{
		Items: f.items(),
		OnSubmit: func() {
			cfg, err := f.apply(base)
			if err != nil {
				dialog.ShowError(err, a.window)
				return
			}
			if err := a.saveSettings(cfg); err != nil {
				dialog.ShowError(err, a.window)
				return
			}
			d.Hide()
		},
		SubmitText: "Save Settings",
	}

	restoreButton := widget.NewButton("Restore Defaults", func() {
		dialog.ShowConfirm("Restore Defaults", "Are you sure you want to restore default settings?", func(confirmed bool) {
			if confirmed {
				f.load(config.DefaultConfig())
			}
		}, a.window)
	})

	content := container.NewBorder(nil, restoreButton, nil, nil, container.NewVScroll(form))
	d = dialog.NewCustom("Settings", "Close", content, a.window)
	d.Resize(fyne.NewSize(460, 640))
	d.Show()
}

// saveSettings persists cfg and applies its gesture rules to the deck.
func (a *App) saveSettings(cfg *config.Config) error {
	rules, err := cfg.Rules()
	if err != nil {
		return err
	}
	if err := cfg.Save(a.opts.ConfigPath); err != nil {
		return fmt.Errorf("failed to save config: %w", err)
	}

	a.opts.Config = cfg
	a.opts.Rules = rules
	a.view.SetRules(rules)
	a.logger.Info("settings saved", "path", a.opts.ConfigPath)
	return nil
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func parseFloat(name, s string) (float64, error) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", name, s, err)
	}
	return v, nil
}
