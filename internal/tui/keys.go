package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Left  key.Binding
	Right key.Binding
	Play  key.Binding
	Deal  key.Binding
	Quit  key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Left: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/h", "prev card"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→/l", "next card"),
		),
		Play: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "play card"),
		),
		Deal: key.NewBinding(
			key.WithKeys("n"),
			key.WithHelp("n", "new hand"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Left, k.Right, k.Play, k.Deal, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}
