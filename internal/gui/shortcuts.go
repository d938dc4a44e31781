package gui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/desktop"

	"github.com/ramonehamilton/swipedeck/internal/swipe"
)

// setupKeyboardShortcuts configures keyboard shortcuts for the application.
// Call this after the window content is set.
func (a *App) setupKeyboardShortcuts() {
	if a.window == nil {
		return
	}

	canvas := a.window.Canvas()

	// Reset shortcut: Ctrl/Cmd + R
	canvas.AddShortcut(&desktop.CustomShortcut{
		KeyName:  fyne.KeyR,
		Modifier: fyne.KeyModifierShortcutDefault,
	}, func(fyne.Shortcut) {
		a.view.Reset()
	})

	// Help shortcut: Ctrl/Cmd + H
	canvas.AddShortcut(&desktop.CustomShortcut{
		KeyName:  fyne.KeyH,
		Modifier: fyne.KeyModifierShortcutDefault,
	}, func(fyne.Shortcut) {
		a.ShowHelp()
	})

	// Settings shortcut: Ctrl/Cmd + Comma
	canvas.AddShortcut(&desktop.CustomShortcut{
		KeyName:  fyne.KeyComma,
		Modifier: fyne.KeyModifierShortcutDefault,
	}, func(fyne.Shortcut) {
		a.ShowSettings()
	})

	canvas.SetOnTypedKey(a.typedKey)
}

// typedKey swipes the top card with the arrow keys.
func (a *App) typedKey(ev *fyne.KeyEvent) {
	switch ev.Name {
	case fyne.KeyLeft:
		a.view.SwipeTop(swipe.Left)
	case fyne.KeyRight:
		a.view.SwipeTop(swipe.Right)
	}
}
