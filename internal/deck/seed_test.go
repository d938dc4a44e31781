package deck

import (
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultCards(t *testing.T) {
	cards := DefaultCards()
	require.Len(t, cards, 5)
	assert.Equal(t, []string{"1", "2", "3", "4", "5"}, ids(cards))
	assert.Equal(t, "Sarah, 24", cards[0].Title())
}

func TestParseSeed(t *testing.T) {
	data := []byte(`
[[cards]]
id = "a"
name = "Ada"
age = 36
image = "#112233"
bio = "Engines"

[[cards]]
name = "Grace"
age = 45
image = "#abc"
`)

	cards, err := ParseSeed(data)
	require.NoError(t, err)
	require.Len(t, cards, 2)

	assert.Equal(t, Card{ID: "a", Name: "Ada", Age: 36, Image: "#112233", Bio: "Engines"}, cards[0])

	_, err = uuid.Parse(cards[1].ID)
	assert.NoError(t, err, "missing ids are generated")
	assert.Equal(t, color.NRGBA{R: 0xAA, G: 0xBB, B: 0xCC, A: 0xFF}, cards[1].Color())
}

func TestParseSeed_Errors(t *testing.T) {
	tests := []struct {
		name string
		data string
		want error
	}{
		{"empty", ``, ErrEmptyDeck},
		{"duplicate id", "[[cards]]\nid=\"1\"\nname=\"A\"\n[[cards]]\nid=\"1\"\nname=\"B\"\n", ErrDuplicateID},
		{"missing name", "[[cards]]\nid=\"1\"\n", ErrInvalidCard},
		{"negative age", "[[cards]]\nid=\"1\"\nname=\"A\"\nage=-3\n", ErrInvalidCard},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseSeed([]byte(tt.data))
			assert.ErrorIs(t, err, tt.want)
		})
	}

	_, err := ParseSeed([]byte("[[cards]\nbroken"))
	assert.Error(t, err)
}

func TestLoadSeed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "deck.toml")
	require.NoError(t, os.WriteFile(path, []byte("[[cards]]\nid=\"z\"\nname=\"Zed\"\nage=30\n"), 0o644))

	cards, err := LoadSeed(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"z"}, ids(cards))

	_, err = LoadSeed(filepath.Join(t.TempDir(), "missing.toml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestCardColor(t *testing.T) {
	assert.Equal(t, color.NRGBA{R: 0xFF, G: 0x6B, B: 0x6B, A: 0xFF}, DefaultCards()[0].Color())
	assert.Equal(t, fallbackColor, Card{Image: "teal"}.Color())
	assert.Equal(t, fallbackColor, Card{Image: "#GGGGGG"}.Color())
	assert.Equal(t, fallbackColor, Card{}.Color())
}
