package storyview_test

import (
	"fmt"
	"testing"

	"github.com/fwojciec/storyview"
	"github.com/stretchr/testify/assert"
)

func TestTheme(t *testing.T) {
	t.Parallel()

	theme := &mockTheme{
		palette: storyview.Palette{Foreground: "#ffffff"},
		backgrounds: map[string]storyview.Gradient{
			"purple-blue": {From: "#9333ea", To: "#3b82f6"},
		},
		fallback: storyview.Gradient{From: "#334155", To: "#0f172a"},
	}

	t.Run("returns palette", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, "#ffffff", theme.Palette().Foreground)
	})

	t.Run("resolves known background", func(t *testing.T) {
		t.Parallel()

		g, ok := theme.Background("purple-blue")

		assert.True(t, ok)
		assert.Equal(t, "#9333ea", g.From)
		assert.Equal(t, "#3b82f6", g.To)
	})

	t.Run("unknown background falls back", func(t *testing.T) {
		t.Parallel()

		g, ok := theme.Background("neon")

		assert.False(t, ok)
		assert.Equal(t, theme.fallback, g)
	})
}

func TestErrUnknownTheme_Wrapped(t *testing.T) {
	t.Parallel()

	err := fmt.Errorf("%w: %q", storyview.ErrUnknownTheme, "solarized")

	assert.ErrorIs(t, err, storyview.ErrUnknownTheme)
}

// mockTheme implements storyview.Theme for testing.
type mockTheme struct {
	palette     storyview.Palette
	backgrounds map[string]storyview.Gradient
	fallback    storyview.Gradient
}

func (m *mockTheme) Palette() storyview.Palette {
	return m.palette
}

func (m *mockTheme) Background(token string) (storyview.Gradient, bool) {
	g, ok := m.backgrounds[token]
	if !ok {
		return m.fallback, false
	}
	return g, true
}

// Verify mockTheme implements Theme interface
var _ storyview.Theme = (*mockTheme)(nil)
