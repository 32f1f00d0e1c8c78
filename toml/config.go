// Package toml provides a ConfigLoader reading decks and settings from TOML files.
package toml

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/fwojciec/storyview"
)

// Compile-time interface verification.
var _ storyview.ConfigLoader = (*ConfigLoader)(nil)

// ConfigLoader loads a storyview.Config from a TOML file.
type ConfigLoader struct{}

// NewConfigLoader creates a new ConfigLoader.
func NewConfigLoader() *ConfigLoader {
	return &ConfigLoader{}
}

// file mirrors the on-disk layout. Stories are an array of tables:
//
//	swipe_threshold = 50
//
//	[[stories]]
//	id = "1"
//	title = "Emma & James"
type file struct {
	SwipeThreshold *float64 `toml:"swipe_threshold"`
	Theme          string   `toml:"theme"`
	Modality       string   `toml:"modality"`
	Stories        []story  `toml:"stories"`
}

type story struct {
	ID         string `toml:"id"`
	Title      string `toml:"title"`
	Subtitle   string `toml:"subtitle"`
	Background string `toml:"background"`
}

// Load reads the TOML file at path. Settings missing from the file take
// their defaults and a file without stories gets the default deck.
func (l *ConfigLoader) Load(path string) (storyview.Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return storyview.Config{}, err
	}
	defer f.Close()

	cfg, err := Parse(f)
	if err != nil {
		return storyview.Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes a config from r. Unknown keys are rejected.
func Parse(r io.Reader) (storyview.Config, error) {
	var raw file
	md, err := toml.NewDecoder(r).Decode(&raw)
	if err != nil {
		return storyview.Config{}, err
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, 0, len(undecoded))
		for _, k := range undecoded {
			keys = append(keys, k.String())
		}
		return storyview.Config{}, fmt.Errorf("unknown keys: %s", strings.Join(keys, ", "))
	}

	cfg := storyview.DefaultConfig()
	if raw.SwipeThreshold != nil {
		cfg.Settings.SwipeThreshold = *raw.SwipeThreshold
	}
	if raw.Theme != "" {
		cfg.Settings.Theme = raw.Theme
	}
	modality, err := storyview.ParseModality(raw.Modality)
	if err != nil {
		return storyview.Config{}, err
	}
	cfg.Settings.Modality = modality

	if raw.Stories != nil {
		stories := make([]storyview.Story, 0, len(raw.Stories))
		for _, s := range raw.Stories {
			stories = append(stories, storyview.Story(s))
		}
		cfg.Deck = storyview.Deck{Stories: stories}
	}

	return cfg, nil
}
