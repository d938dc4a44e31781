package main

import (
	"fmt"
	"io"
	"time"

	colorize "github.com/fatih/color"

	"github.com/ramonehamilton/swipedeck/internal/deck"
	"github.com/ramonehamilton/swipedeck/internal/metrics"
)

// printSummary writes the session results once the window closes.
func printSummary(w io.Writer, c *deck.Controller, s metrics.Snapshot) {
	likes, nopes := c.Counts()

	fmt.Fprintln(w, colorize.HiWhiteString("Session summary"))
	fmt.Fprintln(w, colorize.CyanString("Liked:     ")+colorize.GreenString("%d", likes))
	fmt.Fprintln(w, colorize.CyanString("Passed:    ")+colorize.RedString("%d", nopes))
	fmt.Fprintln(w, colorize.CyanString("Remaining: ")+colorize.HiWhiteString("%d", c.Len()))

	if s.Drags > 0 {
		fmt.Fprintln(w, colorize.CyanString("Drags:     ")+
			colorize.HiWhiteString("%d (%d sprang back), mean %.0fms, p95 %.0fms",
				s.Drags, s.Cancelled, s.MeanDragMs, s.P95DragMs))
	}
	if s.Resets > 0 {
		fmt.Fprintln(w, colorize.CyanString("Resets:    ")+colorize.HiWhiteString("%d", s.Resets))
	}

	for _, d := range c.History() {
		mark := colorize.RedString("✗")
		if d.Liked() {
			mark = colorize.GreenString("♥")
		}
		fmt.Fprintf(w, "  %s %s %s\n", mark, d.Card.Title(), colorize.HiBlackString(d.At.Format(time.Kitchen)))
	}
}
