package mock

import "github.com/fwojciec/storyview"

// Compile-time interface verification.
var _ storyview.Theme = (*Theme)(nil)

// Theme is a mock implementation of storyview.Theme.
type Theme struct {
	PaletteFn    func() storyview.Palette
	BackgroundFn func(token string) (storyview.Gradient, bool)
}

func (t *Theme) Palette() storyview.Palette {
	if t.PaletteFn == nil {
		return storyview.Palette{}
	}
	return t.PaletteFn()
}

func (t *Theme) Background(token string) (storyview.Gradient, bool) {
	return t.BackgroundFn(token)
}
