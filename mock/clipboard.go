package mock

import "github.com/fwojciec/storyview"

// Compile-time interface verification.
var _ storyview.Clipboard = (*Clipboard)(nil)

// Clipboard is a mock implementation of storyview.Clipboard.
type Clipboard struct {
	CopyFn func(content string) error
}

func (c *Clipboard) Copy(content string) error {
	return c.CopyFn(content)
}
