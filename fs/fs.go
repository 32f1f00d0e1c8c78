// Package fs locates storyview files on the local filesystem.
package fs

import (
	"errors"
	"os"
	"path/filepath"
)

// ConfigFiles are the config file names looked up in the config directory,
// in order of preference.
var ConfigFiles = []string{"stories.yaml", "stories.yml", "stories.toml"}

// DefaultConfigDir returns the default config directory for storyview.
// Uses XDG_CONFIG_HOME if set, otherwise falls back to ~/.config/storyview.
// Returns an empty string if neither is available.
func DefaultConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "storyview")
	}
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return ""
	}
	return filepath.Join(home, ".config", "storyview")
}

// FindConfig returns the path of the first default config file that exists.
// ok is false when there is no default config to load.
func FindConfig() (path string, ok bool) {
	dir := DefaultConfigDir()
	if dir == "" {
		return "", false
	}
	for _, name := range ConfigFiles {
		path = filepath.Join(dir, name)
		info, err := os.Stat(path)
		switch {
		case err == nil && !info.IsDir():
			return path, true
		case err != nil && !errors.Is(err, os.ErrNotExist):
			// Unreadable files are reported by the loader.
			return path, true
		}
	}
	return "", false
}
