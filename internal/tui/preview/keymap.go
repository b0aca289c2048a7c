package preview

import "github.com/charmbracelet/bubbles/key"

// KeyMap holds the preview key bindings.
type KeyMap struct {
	Cycle key.Binding
	Press key.Binding
	Host  key.Binding
	Help  key.Binding
	Quit  key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Cycle: key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "cycle mode")),
		Press: key.NewBinding(key.WithKeys("enter", " "), key.WithHelp("enter", "press button")),
		Host:  key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "flip system preference")),
		Help:  key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:  key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Cycle, k.Press, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Cycle, k.Press, k.Host},
		{k.Help, k.Quit},
	}
}
