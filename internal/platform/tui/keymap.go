package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/tinypulse/arcade/internal/core"
)

// KeyMap defines the in-game key bindings.
// Terminals have no key-up events, so a held soft-drop key shows up as
// repeated presses and each repeat counts as one held frame.
type KeyMap struct {
	Left       key.Binding
	Right      key.Binding
	Rotate     key.Binding
	SoftDrop   key.Binding
	Restart    key.Binding
	Pause      key.Binding
	Screenshot key.Binding
	Help       key.Binding
	Quit       key.Binding
}

// DefaultKeyMap returns the default bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Left: key.NewBinding(
			key.WithKeys("left", "a"),
			key.WithHelp("←/a", "left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "d"),
			key.WithHelp("→/d", "right"),
		),
		Rotate: key.NewBinding(
			key.WithKeys("up", "w", "x"),
			key.WithHelp("↑/w", "rotate"),
		),
		SoftDrop: key.NewBinding(
			key.WithKeys("down", "s"),
			key.WithHelp("↓/s", "drop"),
		),
		Restart: key.NewBinding(
			key.WithKeys("r", "enter"),
			key.WithHelp("r", "restart"),
		),
		Pause: key.NewBinding(
			key.WithKeys("p", "esc"),
			key.WithHelp("p", "pause"),
		),
		Screenshot: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "screenshot"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "more keys"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Left, k.Right, k.Rotate, k.SoftDrop, k.Help, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Left, k.Right, k.Rotate, k.SoftDrop},
		{k.Restart, k.Pause, k.Screenshot},
		{k.Help, k.Quit},
	}
}

// Action maps a key message to a game action. Platform keys (quit, help,
// screenshot) and unbound keys yield core.ActionNone.
func (k KeyMap) Action(msg tea.KeyMsg) core.Action {
	switch {
	case key.Matches(msg, k.Left):
		return core.ActionLeft
	case key.Matches(msg, k.Right):
		return core.ActionRight
	case key.Matches(msg, k.Rotate):
		return core.ActionRotate
	case key.Matches(msg, k.SoftDrop):
		return core.ActionSoftDrop
	case key.Matches(msg, k.Restart):
		return core.ActionRestart
	case key.Matches(msg, k.Pause):
		return core.ActionPause
	}
	return core.ActionNone
}
