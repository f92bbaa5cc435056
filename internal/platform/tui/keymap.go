package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/mkovrin/crystal-drift/internal/core"
)

// keyMap declares the game's key bindings using bubbles/key, so the help
// bar can render them and bindings stay testable.
type keyMap struct {
	Start   key.Binding
	Fire    key.Binding
	Pause   key.Binding
	Restart key.Binding
	Mute    key.Binding
	Panel   key.Binding
	Quit    key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Start: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "start"),
		),
		Fire: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("space", "fire"),
		),
		Pause: key.NewBinding(
			key.WithKeys("p", "esc"),
			key.WithHelp("p", "pause"),
		),
		Restart: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "restart"),
		),
		Mute: key.NewBinding(
			key.WithKeys("m"),
			key.WithHelp("m", "mute"),
		),
		Panel: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "tuning"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Start, k.Fire, k.Pause, k.Panel, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Start, k.Fire, k.Pause},
		{k.Restart, k.Mute, k.Panel, k.Quit},
	}
}

// mapKeyToFrame translates a key press to a game action on the input
// frame. Returns true for quit requests.
func (k keyMap) mapKeyToFrame(msg tea.KeyMsg, frame *core.InputFrame) bool {
	switch {
	case key.Matches(msg, k.Quit):
		return true
	case key.Matches(msg, k.Start):
		frame.Set(core.ActionStart)
	case key.Matches(msg, k.Pause):
		frame.Set(core.ActionPause)
	case key.Matches(msg, k.Restart):
		frame.Set(core.ActionRestart)
	case key.Matches(msg, k.Mute):
		frame.Set(core.ActionMute)
	case key.Matches(msg, k.Panel):
		frame.Set(core.ActionDebug)
	}
	return false
}
