package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the key bindings for the REPL.
type KeyMap struct {
	Submit      key.Binding
	HistoryPrev key.Binding
	HistoryNext key.Binding
	Quit        key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Submit: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "run"),
		),
		HistoryPrev: key.NewBinding(
			key.WithKeys("up"),
			key.WithHelp("↑", "previous command"),
		),
		HistoryNext: key.NewBinding(
			key.WithKeys("down"),
			key.WithHelp("↓", "next command"),
		),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+d", "ctrl+c"),
			key.WithHelp("ctrl+d", "quit"),
		),
	}
}

// HelpText returns a formatted help string for the REPL.
func (k KeyMap) HelpText() string {
	return "↑/↓ history • enter run • ctrl+d quit"
}
