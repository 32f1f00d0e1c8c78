package bubbletea_test

import (
	"testing"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/fwojciec/storyview/bubbletea"
	"github.com/stretchr/testify/assert"
)

func TestDefaultKeyMap_HasExpectedBindings(t *testing.T) {
	t.Parallel()

	km := bubbletea.DefaultKeyMap()

	t.Run("Previous binding", func(t *testing.T) {
		t.Parallel()
		msg := tea.KeyMsg{Type: tea.KeyUp}
		assert.True(t, key.Matches(msg, km.Previous), "arrow up should match Previous binding")

		msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'k'}}
		assert.True(t, key.Matches(msg, km.Previous), "k should match Previous binding")
	})

	t.Run("Next binding", func(t *testing.T) {
		t.Parallel()
		msg := tea.KeyMsg{Type: tea.KeyDown}
		assert.True(t, key.Matches(msg, km.Next), "arrow down should match Next binding")

		msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'j'}}
		assert.True(t, key.Matches(msg, km.Next), "j should match Next binding")
	})

	t.Run("Copy binding", func(t *testing.T) {
		t.Parallel()
		msg := tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'y'}}
		assert.True(t, key.Matches(msg, km.Copy), "y should match Copy binding")
	})

	t.Run("Quit binding", func(t *testing.T) {
		t.Parallel()
		msg := tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}}
		assert.True(t, key.Matches(msg, km.Quit), "q should match Quit binding")

		msg = tea.KeyMsg{Type: tea.KeyCtrlC}
		assert.True(t, key.Matches(msg, km.Quit), "ctrl+c should match Quit binding")
	})

	t.Run("left and right are unbound", func(t *testing.T) {
		t.Parallel()
		for _, msg := range []tea.KeyMsg{{Type: tea.KeyLeft}, {Type: tea.KeyRight}} {
			assert.False(t, key.Matches(msg, km.Previous, km.Next, km.Copy, km.Quit), msg.String())
		}
	})
}

func TestKeyMap_ShortHelp(t *testing.T) {
	t.Parallel()

	km := bubbletea.DefaultKeyMap()

	help := km.ShortHelp()

	assert.Len(t, help, 4)
	assert.Equal(t, "previous", help[0].Help().Desc)
	assert.Equal(t, "next", help[1].Help().Desc)
	assert.Equal(t, [][]key.Binding{help}, km.FullHelp())
}
