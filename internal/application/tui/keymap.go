package tui

import "github.com/charmbracelet/bubbles/key"

type KeyMap struct {
	Search key.Binding
	Quit   key.Binding
}

var DefaultKeyMap = KeyMap{
	Search: key.NewBinding(key.WithKeys("enter")),
	Quit:   key.NewBinding(key.WithKeys("esc", "ctrl+c")),
}
