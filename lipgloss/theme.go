// Package lipgloss provides theme implementations using Lipgloss-compatible colors.
package lipgloss

import (
	"fmt"
	"sort"
	"strings"

	"github.com/fwojciec/storyview"
)

// Compile-time interface verification.
var _ storyview.Theme = (*Theme)(nil)

// Theme implements storyview.Theme with Lipgloss-compatible colors.
type Theme struct {
	name        string
	palette     storyview.Palette
	backgrounds map[string]storyview.Gradient
	fallback    storyview.Gradient
}

// Name returns the theme name.
func (t *Theme) Name() string {
	return t.name
}

// Palette returns the UI colors for this theme.
func (t *Theme) Palette() storyview.Palette {
	return t.palette
}

// Background returns the gradient for a background token.
// Unknown tokens resolve to the fallback gradient with ok set to false.
func (t *Theme) Background(token string) (storyview.Gradient, bool) {
	g, ok := t.backgrounds[token]
	if !ok {
		return t.fallback, false
	}
	return g, true
}

// Tokens returns the known background tokens in sorted order.
func (t *Theme) Tokens() []string {
	tokens := make([]string, 0, len(t.backgrounds))
	for token := range t.backgrounds {
		tokens = append(tokens, token)
	}
	sort.Strings(tokens)
	return tokens
}

// DefaultTheme returns the default theme (dark background optimized).
func DefaultTheme() *Theme {
	return DarkTheme()
}

// ThemeByName returns the theme called name. An empty name selects the default.
func ThemeByName(name string) (*Theme, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "dark":
		return DarkTheme(), nil
	case "light":
		return LightTheme(), nil
	default:
		return nil, fmt.Errorf("%w: %q", storyview.ErrUnknownTheme, name)
	}
}

// DarkTheme returns a theme with a black stage and saturated story gradients.
func DarkTheme() *Theme {
	return &Theme{
		name: "dark",
		palette: storyview.Palette{
			Background:      "#000000", // Stage behind the card
			Foreground:      "#ffffff",
			Muted:           "#a6adc8", // Hint text, dimmed
			Indicator:       "#ffffff",
			IndicatorDimmed: "#7f7f7f", // White at half strength
			Accent:          "#f5c2e7",
		},
		backgrounds: map[string]storyview.Gradient{
			"purple-blue": {From: "#9333ea", To: "#3b82f6"},
			"pink-orange": {From: "#ec4899", To: "#fb923c"},
			"blue-teal":   {From: "#3b82f6", To: "#2dd4bf"},
			"green-lime":  {From: "#16a34a", To: "#a3e635"},
			"red-amber":   {From: "#dc2626", To: "#f59e0b"},
		},
		fallback: storyview.Gradient{From: "#334155", To: "#0f172a"}, // Slate
	}
}

// LightTheme returns a theme with a light stage and pastel story gradients.
func LightTheme() *Theme {
	return &Theme{
		name: "light",
		palette: storyview.Palette{
			Background:      "#eff1f5",
			Foreground:      "#1e1e2e",
			Muted:           "#6c6f85",
			Indicator:       "#1e1e2e",
			IndicatorDimmed: "#9ca0b0",
			Accent:          "#8839ef",
		},
		backgrounds: map[string]storyview.Gradient{
			"purple-blue": {From: "#d8b4fe", To: "#93c5fd"},
			"pink-orange": {From: "#f9a8d4", To: "#fed7aa"},
			"blue-teal":   {From: "#93c5fd", To: "#99f6e4"},
			"green-lime":  {From: "#86efac", To: "#d9f99d"},
			"red-amber":   {From: "#fca5a5", To: "#fde68a"},
		},
		fallback: storyview.Gradient{From: "#e2e8f0", To: "#cbd5e1"},
	}
}
