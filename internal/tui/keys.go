package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	enter     key.Binding
	esc       key.Binding
	tab       key.Binding
	backtab   key.Binding
	quit      key.Binding
	forceQuit key.Binding
	copy      key.Binding
	refresh   key.Binding
	version   key.Binding
}

var keys = keyMap{
	enter:     key.NewBinding(key.WithKeys("enter")),
	esc:       key.NewBinding(key.WithKeys("esc")),
	tab:       key.NewBinding(key.WithKeys("tab")),
	backtab:   key.NewBinding(key.WithKeys("shift+tab")),
	quit:      key.NewBinding(key.WithKeys("q", "ctrl+c")),
	forceQuit: key.NewBinding(key.WithKeys("ctrl+c")),
	copy:      key.NewBinding(key.WithKeys("c")),
	refresh:   key.NewBinding(key.WithKeys("r")),
	version:   key.NewBinding(key.WithKeys("ctrl+v")),
}
