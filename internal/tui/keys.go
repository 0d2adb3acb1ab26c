package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Add         key.Binding
	NextData    key.Binding
	MoreFilling key.Binding
	LessFilling key.Binding
	Help        key.Binding
	Quit        key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Add: key.NewBinding(
			key.WithKeys("g", "enter"),
			key.WithHelp("g", "re-add chart"),
		),
		NextData: key.NewBinding(
			key.WithKeys("r", " "),
			key.WithHelp("r", "next data"),
		),
		MoreFilling: key.NewBinding(
			key.WithKeys("+", "=", "up"),
			key.WithHelp("+", "fill more"),
		),
		LessFilling: key.NewBinding(
			key.WithKeys("-", "down"),
			key.WithHelp("-", "fill less"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c", "esc"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.NextData, k.MoreFilling, k.LessFilling, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Add, k.NextData},
		{k.MoreFilling, k.LessFilling},
		{k.Help, k.Quit},
	}
}
