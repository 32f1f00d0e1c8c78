// Package storyview provides domain types for a navigable story slideshow.
package storyview

import "context"

// Story represents a single full-screen card in a deck.
type Story struct {
	ID         string // Unique, stable across reorderings
	Title      string
	Subtitle   string
	Background string // Opaque token resolved by a Theme, e.g. "purple-blue"
}

// Text returns the title and subtitle on separate lines.
func (s Story) Text() string {
	if s.Subtitle == "" {
		return s.Title
	}
	return s.Title + "\n" + s.Subtitle
}

// Deck is an ordered, fixed list of stories. Order is navigation order.
type Deck struct {
	Stories []Story
}

// Len returns the number of stories in the deck.
func (d Deck) Len() int {
	return len(d.Stories)
}

// At returns the story at index i. The zero Story is returned when i is out of range.
func (d Deck) At(i int) Story {
	if i < 0 || i >= len(d.Stories) {
		return Story{}
	}
	return d.Stories[i]
}

// DefaultDeck returns the built-in deck shown when no config is provided.
func DefaultDeck() Deck {
	return Deck{
		Stories: []Story{
			{ID: "1", Title: "Emma & James", Subtitle: "Are Getting Married!", Background: "purple-blue"},
			{ID: "2", Title: "The Story", Subtitle: "How We Met", Background: "pink-orange"},
			{ID: "3", Title: "Join Us", Subtitle: "December 31, 2024", Background: "blue-teal"},
		},
	}
}

// Settings holds the tunable parameters of a slideshow.
type Settings struct {
	SwipeThreshold float64  // Minimum gesture distance, in units, that counts as navigation
	Theme          string   // Theme name, e.g. "dark"
	Modality       Modality // Presumed input modality for the navigation hint
}

// DefaultSettings returns the settings used when nothing is configured.
func DefaultSettings() Settings {
	return Settings{
		SwipeThreshold: DefaultSwipeThreshold,
		Theme:          "dark",
		Modality:       ModalityKeyboard,
	}
}

// Config is a deck together with its settings.
type Config struct {
	Deck     Deck
	Settings Settings
}

// DefaultConfig returns the default deck with default settings.
func DefaultConfig() Config {
	return Config{
		Deck:     DefaultDeck(),
		Settings: DefaultSettings(),
	}
}

// ConfigLoader reads a Config from a file.
type ConfigLoader interface {
	Load(path string) (Config, error)
}

// Viewer displays a deck and blocks until the user exits.
type Viewer interface {
	View(ctx context.Context, deck Deck) error
}

// Clipboard writes text to the system clipboard.
type Clipboard interface {
	Copy(content string) error
}
