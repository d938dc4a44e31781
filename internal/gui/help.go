package gui

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/ramonehamilton/swipedeck/internal/version"
)

const (
	// AppName is the application name
	AppName = "Swipe Deck"

	// RepoURL is the project repository URL
	RepoURL = "https://github.com/ramonehamilton/swipedeck"
)

const helpMarkdown = `# How to Swipe

Drag the top card sideways and let go.

- Past a quarter of the window, or flung fast enough, the card flies off.
- Anything shorter springs back to the centre.
- **Right** is a like, **left** is a nope.

## Keyboard Shortcuts
- **Right arrow**: Like the top card
- **Left arrow**: Nope the top card
- **Ctrl/Cmd + R**: Reset the deck
- **Ctrl/Cmd + H**: Show this help

## Custom Decks
Point ` + "`seed_file`" + ` in the ` + "`[deck]`" + ` section of the config at a TOML
deck. With ` + "`watch_seed`" + ` on, saving the file reloads the deck.`

// ShowHelp displays the gesture and shortcut help.
func (a *App) ShowHelp() {
	content := widget.NewRichTextFromMarkdown(helpMarkdown)
	content.Wrapping = fyne.TextWrapWord

	helpDialog := dialog.NewCustom("Help", "Close", container.NewScroll(content), a.window)
	helpDialog.Resize(fyne.NewSize(420, 480))
	helpDialog.Show()
}

func aboutMarkdown() string {
	return fmt.Sprintf(`# %s

**Version**: %s

A stack of profile cards to like or pass on with a swipe.

**Repository**: %s

Built with Fyne.`, AppName, version.String(), RepoURL)
}

// ShowAbout displays the about dialog with app information.
func (a *App) ShowAbout() {
	content := widget.NewRichTextFromMarkdown(aboutMarkdown())
	content.Wrapping = fyne.TextWrapWord

	aboutDialog := dialog.NewCustom("About "+AppName, "Close", content, a.window)
	aboutDialog.Resize(fyne.NewSize(400, 300))
	aboutDialog.Show()
}
