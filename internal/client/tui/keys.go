package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Up      key.Binding
	Down    key.Binding
	Details key.Binding
	Like    key.Binding
	Save    key.Binding
	Section key.Binding
	Refresh key.Binding
	Help    key.Binding
	Quit    key.Binding
}

var keys = keyMap{
	Up:      key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑", "previous")),
	Down:    key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓", "next")),
	Details: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "details")),
	Like:    key.NewBinding(key.WithKeys("l"), key.WithHelp("l", "like")),
	Save:    key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "save")),
	Section: key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "all / saved")),
	Refresh: key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "refresh")),
	Help:    key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "toggle help")),
	Quit:    key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
}

// ShortHelp returns keybindings to be shown in the mini help view. It's part
// of the key.Map interface.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Details, k.Like, k.Save, k.Section, k.Quit, k.Help}
}

// FullHelp returns keybindings for the expanded help view. It's part of the
// key.Map interface.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Details},
		{k.Like, k.Save},
		{k.Section, k.Refresh},
		{k.Help, k.Quit},
	}
}
