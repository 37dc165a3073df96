package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Quit      key.Binding
	ForceQuit key.Binding
	Command   key.Binding
	Submit    key.Binding
	Cancel    key.Binding
	Up        key.Binding
	Down      key.Binding
	Toggle    key.Binding
	Delete    key.Binding
}

var keys = keyMap{
	Quit:      key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "quit")),
	ForceQuit: key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit")),
	Command:   key.NewBinding(key.WithKeys(":"), key.WithHelp(":", "command")),
	Submit:    key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "run")),
	Cancel:    key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")),
	Up:        key.NewBinding(key.WithKeys("up"), key.WithHelp("↑", "up")),
	Down:      key.NewBinding(key.WithKeys("down"), key.WithHelp("↓", "down")),
	Toggle:    key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "select")),
	Delete:    key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "delete selected")),
}

// ShortHelp returns the bindings shown in the status line.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Command, k.Up, k.Down, k.Toggle, k.Delete, k.Quit}
}
