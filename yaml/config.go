// Package yaml provides a ConfigLoader reading decks and settings from YAML files.
package yaml

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/fwojciec/storyview"
	yamlv3 "gopkg.in/yaml.v3"
)

// Compile-time interface verification.
var _ storyview.ConfigLoader = (*ConfigLoader)(nil)

// ConfigLoader loads a storyview.Config from a YAML file.
type ConfigLoader struct{}

// NewConfigLoader creates a new ConfigLoader.
func NewConfigLoader() *ConfigLoader {
	return &ConfigLoader{}
}

// file mirrors the on-disk layout.
type file struct {
	SwipeThreshold *float64 `yaml:"swipe_threshold"` // nil means unset
	Theme          string   `yaml:"theme"`
	Modality       string   `yaml:"modality"`
	Stories        []story  `yaml:"stories"`
}

type story struct {
	ID         string `yaml:"id"`
	Title      string `yaml:"title"`
	Subtitle   string `yaml:"subtitle"`
	Background string `yaml:"background"`
}

// Load reads the YAML file at path. Settings missing from the file take
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

// Parse decodes a config from r. Unknown fields are rejected.
func Parse(r io.Reader) (storyview.Config, error) {
	var raw file
	dec := yamlv3.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&raw); err != nil && !errors.Is(err, io.EOF) {
		return storyview.Config{}, err
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
			stories = append(stories, storyview.Story{
				ID:         s.ID,
				Title:      s.Title,
				Subtitle:   s.Subtitle,
				Background: s.Background,
			})
		}
		cfg.Deck = storyview.Deck{Stories: stories}
	}

	return cfg, nil
}
