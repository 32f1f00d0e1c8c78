// Package bubbletea provides a terminal UI slideshow using the Bubble Tea framework.
package bubbletea

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/fwojciec/storyview"
)

// Compile-time interface verification.
var _ storyview.Viewer = (*Viewer)(nil)

// Viewer implements storyview.Viewer using a Bubble Tea TUI.
type Viewer struct {
	opts []SlideshowOption
}

// NewViewer creates a new Viewer. Options are applied to every model it creates.
func NewViewer(opts ...SlideshowOption) *Viewer {
	return &Viewer{opts: opts}
}

// View displays the deck full-screen and blocks until the user exits or ctx
// is cancelled.
func (v *Viewer) View(ctx context.Context, deck storyview.Deck) error {
	m := NewSlideshowModel(deck, v.opts...)
	defer m.Close()

	p := tea.NewProgram(m,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
		tea.WithContext(ctx),
	)
	_, err := p.Run()
	return err
}
