package tui

import "github.com/charmbracelet/bubbles/key"

type KeyMap struct {
	Quit  key.Binding
	Edit  key.Binding
	Print key.Binding

	// Edit form
	Save    key.Binding
	Cancel  key.Binding
	Next    key.Binding
	Prev    key.Binding
	AddItem key.Binding
	DelItem key.Binding
	AddInfo key.Binding
	DelInfo key.Binding
}

var DefaultKeyMap = KeyMap{
	Quit:    key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	Edit:    key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "edit")),
	Print:   key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "print")),
	Save:    key.NewBinding(key.WithKeys("ctrl+s"), key.WithHelp("ctrl+s", "save")),
	Cancel:  key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")),
	Next:    key.NewBinding(key.WithKeys("tab", "down"), key.WithHelp("tab/↓", "next field")),
	Prev:    key.NewBinding(key.WithKeys("shift+tab", "up"), key.WithHelp("shift+tab/↑", "previous field")),
	AddItem: key.NewBinding(key.WithKeys("ctrl+n"), key.WithHelp("ctrl+n", "add item")),
	DelItem: key.NewBinding(key.WithKeys("ctrl+d"), key.WithHelp("ctrl+d", "remove item")),
	AddInfo: key.NewBinding(key.WithKeys("ctrl+l"), key.WithHelp("ctrl+l", "add info line")),
	DelInfo: key.NewBinding(key.WithKeys("ctrl+x"), key.WithHelp("ctrl+x", "remove info line")),
}
