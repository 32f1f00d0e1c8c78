package mock

import (
	"context"

	"github.com/fwojciec/storyview"
)

// Compile-time interface verification.
var _ storyview.Viewer = (*Viewer)(nil)

// Viewer is a mock implementation of storyview.Viewer.
type Viewer struct {
	ViewFn func(ctx context.Context, deck storyview.Deck) error
}

func (v *Viewer) View(ctx context.Context, deck storyview.Deck) error {
	return v.ViewFn(ctx, deck)
}
