package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Up, Down   key.Binding
	Toggle     key.Binding
	Add        key.Binding
	NewList    key.Binding
	Type       key.Binding
	Move       key.Binding
	Drop       key.Binding
	Cancel     key.Binding
	Copy       key.Binding
	Help, Quit key.Binding
}

func defaultKeys() keyMap {
	return keyMap{
		Up:      key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:    key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Toggle:  key.NewBinding(key.WithKeys(" ", "x"), key.WithHelp("space", "check")),
		Add:     key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "add item")),
		NewList: key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "new list")),
		Type:    key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "ul/ol")),
		Move:    key.NewBinding(key.WithKeys("m"), key.WithHelp("m", "move")),
		Drop:    key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "drop")),
		Cancel:  key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")),
		Copy:    key.NewBinding(key.WithKeys("y"), key.WithHelp("y", "copy url")),
		Help:    key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:    key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Toggle, k.Add, k.NewList, k.Move, k.Copy, k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Toggle, k.Type},
		{k.Add, k.NewList, k.Copy},
		{k.Move, k.Drop, k.Cancel},
		{k.Help, k.Quit},
	}
}

// dragKeys is the footer while something is picked up.
type dragKeys struct{ keyMap }

func (k dragKeys) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Drop, k.Cancel}
}
