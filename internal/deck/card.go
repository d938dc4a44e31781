package deck

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"
	"time"

	"github.com/ramonehamilton/swipedeck/internal/swipe"
)

// fallbackColor is used when a card's image color cannot be parsed.
var fallbackColor = color.NRGBA{R: 0xCC, G: 0xCC, B: 0xCC, A: 0xFF}

// Card represents a profile card. Identity is the ID; everything else is
// display data.
type Card struct {
	ID    string `toml:"id"`
	Name  string `toml:"name"`
	Age   int    `toml:"age"`
	Image string `toml:"image"` // placeholder color, "#RRGGBB" or "#RGB"
	Bio   string `toml:"bio"`
}

// Title returns the "Name, Age" heading shown on the card.
func (c Card) Title() string {
	return fmt.Sprintf("%s, %d", c.Name, c.Age)
}

// Color parses Image as a hex color. Unparseable values yield a neutral grey.
func (c Card) Color() color.NRGBA {
	col, err := parseHexColor(c.Image)
	if err != nil {
		return fallbackColor
	}
	return col
}

func parseHexColor(s string) (color.NRGBA, error) {
	s = strings.TrimPrefix(strings.TrimSpace(s), "#")

	switch len(s) {
	case 3:
		s = string([]byte{s[0], s[0], s[1], s[1], s[2], s[2]})
	case 6:
	default:
		return color.NRGBA{}, fmt.Errorf("invalid color %q", s)
	}

	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("invalid color %q: %w", s, err)
	}

	return color.NRGBA{
		R: uint8(v >> 16),
		G: uint8(v >> 8),
		B: uint8(v),
		A: 0xFF,
	}, nil
}

// Decision records which way a card was swiped.
type Decision struct {
	Card      Card
	Direction swipe.Direction
	At        time.Time
}

// Liked reports whether the card was swiped right.
func (d Decision) Liked() bool {
	return d.Direction == swipe.Right
}
