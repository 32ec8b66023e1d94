package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/flapboard/internal/core"
)

// KeyMap defines the key bindings of the terminal emulator. Keys stand in
// for the board's push buttons and slide switches.
type KeyMap struct {
	FlapP1     key.Binding
	FlapP2     key.Binding
	Switch     key.Binding
	Screenshot key.Binding
	Help       key.Binding
	Quit       key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.FlapP1, k.FlapP2, k.Switch, k.Help, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.FlapP1, k.FlapP2, k.Switch},
		{k.Screenshot, k.Help, k.Quit},
	}
}

// DefaultKeyMap returns default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		FlapP1: key.NewBinding(
			key.WithKeys(" ", "w", "up"),
			key.WithHelp("space", "P1 flap (KEY1)"),
		),
		FlapP2: key.NewBinding(
			key.WithKeys("enter", "i"),
			key.WithHelp("enter", "P2 flap (KEY2)"),
		),
		Switch: key.NewBinding(
			key.WithKeys("0", "1", "2", "3", "4", "5", "6", "7", "8", "9"),
			key.WithHelp("0-9", "toggle SW0-SW9"),
		),
		Screenshot: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "screenshot"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "more"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit (KEY0)"),
		),
	}
}

// ButtonFor returns the push button a key stands for, or 0.
func (k KeyMap) ButtonFor(msg tea.KeyMsg) core.Buttons {
	switch {
	case key.Matches(msg, k.FlapP1):
		return core.ButtonP1
	case key.Matches(msg, k.FlapP2):
		return core.ButtonP2
	case key.Matches(msg, k.Quit):
		return core.ButtonQuit
	}
	return 0
}

// SwitchFor returns the switch number a key toggles.
func (k KeyMap) SwitchFor(msg tea.KeyMsg) (int, bool) {
	if !key.Matches(msg, k.Switch) {
		return 0, false
	}
	return int(msg.String()[0] - '0'), true
}
