package bubbletea

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the key bindings for the slideshow.
// It implements help.KeyMap so it can drive the navigation hint.
type KeyMap struct {
	Previous key.Binding
	Next     key.Binding
	Copy     key.Binding
	Quit     key.Binding
}

// DefaultKeyMap returns the default key bindings: arrow keys plus vim-style j/k.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Previous: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "previous"),
		),
		Next: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "next"),
		),
		Copy: key.NewBinding(
			key.WithKeys("y"),
			key.WithHelp("y", "copy"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp returns the bindings shown in the navigation hint.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Previous, k.Next, k.Copy, k.Quit}
}

// FullHelp returns all bindings in a single column.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}
