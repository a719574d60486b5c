package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Submit    key.Binding
	Toggle    key.Binding
	Up        key.Binding
	Down      key.Binding
	NextFocus key.Binding
	PrevFocus key.Binding
	Input     key.Binding
	Leave     key.Binding
	Quit      key.Binding
	ForceQuit key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Submit:    key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "add")),
		Toggle:    key.NewBinding(key.WithKeys(" ", "enter", "x"), key.WithHelp("space", "toggle")),
		Up:        key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:      key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		NextFocus: key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next pane")),
		PrevFocus: key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "prev pane")),
		Input:     key.NewBinding(key.WithKeys("a", "i"), key.WithHelp("a", "new item")),
		Leave:     key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "lists")),
		Quit:      key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "quit")),
		ForceQuit: key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit")),
	}
}

// helpKeys adapts keyMap to help.KeyMap for the focused pane.
type helpKeys struct {
	keys  keyMap
	focus focus
}

func (h helpKeys) ShortHelp() []key.Binding {
	k := h.keys
	if h.focus == focusInput {
		return []key.Binding{k.Submit, k.Leave, k.NextFocus, k.ForceQuit}
	}
	return []key.Binding{k.Toggle, k.Up, k.Down, k.NextFocus, k.Input, k.Quit}
}

func (h helpKeys) FullHelp() [][]key.Binding {
	k := h.keys
	return [][]key.Binding{
		{k.Submit, k.Leave, k.Input},
		{k.Toggle, k.Up, k.Down},
		{k.NextFocus, k.PrevFocus, k.Quit, k.ForceQuit},
	}
}
