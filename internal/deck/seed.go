package deck

import (
	"errors"
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/pelletier/go-toml/v2"
)

var (
	// ErrEmptyDeck is returned when a seed file contains no cards.
	ErrEmptyDeck = errors.New("seed deck has no cards")

	// ErrDuplicateID is returned when two seed cards share an id.
	ErrDuplicateID = errors.New("duplicate card id")

	// ErrInvalidCard is returned for cards with missing or impossible fields.
	ErrInvalidCard = errors.New("invalid card")
)

// seedFile is the on-disk layout of a seed deck:
//
//	[[cards]]
//	id = "1"
//	name = "Sarah"
//	age = 24
//	image = "#FF6B6B"
//	bio = "Artist"
type seedFile struct {
	Cards []Card `toml:"cards"`
}

// DefaultCards returns the built-in seed deck.
func DefaultCards() []Card {
	return []Card{
		{ID: "1", Name: "Sarah", Age: 24, Image: "#FF6B6B", Bio: "🎨 Artist | Coffee lover ☕ | Adventure seeker 🌍"},
		{ID: "2", Name: "Emma", Age: 26, Image: "#4ECDC4", Bio: "📚 Book worm | Yoga enthusiast 🧘‍♀️ | Dog mom 🐕"},
		{ID: "3", Name: "Jessica", Age: 23, Image: "#95E1D3", Bio: "🎵 Music producer | Fitness junkie 💪 | Foodie 🍕"},
		{ID: "4", Name: "Olivia", Age: 25, Image: "#F38181", Bio: "✈️ Travel blogger | Photographer 📷 | Beach lover 🏖️"},
		{ID: "5", Name: "Sophia", Age: 27, Image: "#AA96DA", Bio: "💻 Software engineer | Gamer 🎮 | Cat person 🐱"},
	}
}

// LoadSeed reads a seed deck from a TOML file.
func LoadSeed(path string) ([]Card, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read seed file: %w", err)
	}
	return ParseSeed(data)
}

// ParseSeed decodes and validates a TOML seed deck. Cards without an id are
// assigned a random one.
func ParseSeed(data []byte) ([]Card, error) {
	var file seedFile
	if err := toml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parse seed file: %w", err)
	}

	if len(file.Cards) == 0 {
		return nil, ErrEmptyDeck
	}

	seen := make(map[string]bool, len(file.Cards))
	for i := range file.Cards {
		c := &file.Cards[i]
		if c.ID == "" {
			c.ID = uuid.NewString()
		}
		if c.Name == "" {
			return nil, fmt.Errorf("card %d: %w: missing name", i, ErrInvalidCard)
		}
		if c.Age < 0 {
			return nil, fmt.Errorf("card %q: %w: negative age %d", c.ID, ErrInvalidCard, c.Age)
		}
		if seen[c.ID] {
			return nil, fmt.Errorf("card %q: %w", c.ID, ErrDuplicateID)
		}
		seen[c.ID] = true
	}

	return file.Cards, nil
}
