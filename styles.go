package storyview

import "errors"

// Gradient is a two-stop color ramp used as a story background.
// Colors are hex strings in "#RRGGBB" format.
type Gradient struct {
	From string
	To   string
}

// Palette contains the colors for everything drawn around the story card.
type Palette struct {
	Background      string // Behind the card, visible while it is scaled down
	Foreground      string // Title and subtitle text
	Muted           string // Navigation hint text
	Indicator       string // Active progress marker
	IndicatorDimmed string // Inactive progress markers
	Accent          string // Key names in the navigation hint
}

// Theme resolves background tokens into gradients and provides UI colors.
// Different implementations can provide light/dark variants.
type Theme interface {
	Palette() Palette
	// Background returns the gradient for token. ok is false for unknown
	// tokens; the returned gradient is then the theme's fallback.
	Background(token string) (g Gradient, ok bool)
}

// ErrUnknownTheme is returned when a theme name does not match any theme.
var ErrUnknownTheme = errors.New("unknown theme")
