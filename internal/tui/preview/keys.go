package preview

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Next     key.Binding
	Prev     key.Binding
	Present  key.Binding
	Collapse key.Binding
	Grow     key.Binding
	Shrink   key.Binding
	Reset    key.Binding
	ResetAll key.Binding
	Help     key.Binding
	Quit     key.Binding
}

func defaultKeys() keyMap {
	return keyMap{
		Next:     key.NewBinding(key.WithKeys("tab", "right"), key.WithHelp("tab", "next region")),
		Prev:     key.NewBinding(key.WithKeys("shift+tab", "left"), key.WithHelp("shift+tab", "prev region")),
		Present:  key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "show/hide")),
		Collapse: key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "collapse")),
		Grow:     key.NewBinding(key.WithKeys("]", "+"), key.WithHelp("]", "grow")),
		Shrink:   key.NewBinding(key.WithKeys("[", "-"), key.WithHelp("[", "shrink")),
		Reset:    key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reset region")),
		ResetAll: key.NewBinding(key.WithKeys("R"), key.WithHelp("R", "reset all")),
		Help:     key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:     key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Next, k.Present, k.Collapse, k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Next, k.Prev, k.Present},
		{k.Collapse, k.Grow, k.Shrink},
		{k.Reset, k.ResetAll},
		{k.Help, k.Quit},
	}
}
