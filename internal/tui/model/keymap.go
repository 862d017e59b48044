package model

import (
	"github.com/charmbracelet/bubbles/key"
)

// DefaultKeyMap returns a KeyMap with the default bindings used by the TUI.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Regenerate: key.NewBinding(
			key.WithKeys(" ", "g", "r"),
			key.WithHelp("space/g", "generate colors"),
		),
		Left: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/h", "previous color"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "l", "tab"),
			key.WithHelp("→/l", "next color"),
		),
		Copy: key.NewBinding(
			key.WithKeys("enter", "c", "y"),
			key.WithHelp("enter/c", "copy HEX"),
		),
		CopySlot: key.NewBinding(
			key.WithKeys("1", "2", "3", "4"),
			key.WithHelp("1-4", "copy color n"),
		),
		ToggleLog: key.NewBinding(
			key.WithKeys("L"),
			key.WithHelp("L", "toggle log overlay"),
		),
		ToggleDark: key.NewBinding(
			key.WithKeys("D"),
			key.WithHelp("D", "toggle dark/light mode"),
		),
		Esc: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "close overlay"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "toggle help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp returns the bindings shown in the one-line help.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Regenerate, k.CopySlot, k.Help, k.Quit}
}

// FullHelp returns the bindings grouped into columns for the expanded help.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Regenerate, k.CopySlot, k.Copy},
		{k.Left, k.Right},
		{k.ToggleLog, k.ToggleDark, k.Help, k.Quit},
	}
}
