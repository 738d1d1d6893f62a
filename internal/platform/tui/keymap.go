package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/pingpong/internal/core"
)

// KeyMap defines the terminal key bindings.
type KeyMap struct {
	LeftUp    key.Binding
	LeftDown  key.Binding
	RightUp   key.Binding
	RightDown key.Binding
	Reset     key.Binding
	Quit      key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.LeftUp, k.LeftDown, k.RightUp, k.RightDown, k.Reset, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.LeftUp, k.LeftDown},
		{k.RightUp, k.RightDown},
		{k.Reset, k.Quit},
	}
}

// DefaultKeyMap returns the bindings for the given number of keyboard players.
// With a single player the arrow keys are disabled in help since the CPU owns
// the right paddle.
func DefaultKeyMap(twoPlayer bool) KeyMap {
	km := KeyMap{
		LeftUp: key.NewBinding(
			key.WithKeys("w", "W"),
			key.WithHelp("w", "left up"),
		),
		LeftDown: key.NewBinding(
			key.WithKeys("s", "S"),
			key.WithHelp("s", "left down"),
		),
		RightUp: key.NewBinding(
			key.WithKeys("up"),
			key.WithHelp("↑", "right up"),
		),
		RightDown: key.NewBinding(
			key.WithKeys("down"),
			key.WithHelp("↓", "right down"),
		),
		Reset: key.NewBinding(
			key.WithKeys("r", "R"),
			key.WithHelp("r", "reset"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c", "esc"),
			key.WithHelp("q", "quit"),
		),
	}
	if !twoPlayer {
		km.RightUp.SetEnabled(false)
		km.RightDown.SetEnabled(false)
	}
	return km
}

// MapKey translates a key message to an engine key.
// Returns KeyNone for unbound keys and whether the key is a quit request.
// Disabled bindings still map so the engine sees the same flags it would from
// any other host.
func (k KeyMap) MapKey(msg tea.KeyMsg) (mapped core.Key, isQuit bool) {
	switch {
	case key.Matches(msg, k.Quit):
		return core.KeyNone, true
	case key.Matches(msg, k.LeftUp):
		return core.KeyW, false
	case key.Matches(msg, k.LeftDown):
		return core.KeyS, false
	case key.Matches(msg, k.Reset):
		return core.KeyReset, false
	}
	// Arrow keys are matched by name so they work while hidden from help
	return core.ParseKey(msg.String()), false
}
