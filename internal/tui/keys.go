package tui

import "github.com/charmbracelet/bubbles/key"

type KeyMap struct {
	Water    key.Binding
	SmallSip key.Binding
	Page     key.Binding
	Diet     key.Binding
	Workout1 key.Binding
	Workout2 key.Binding
	Outdoor1 key.Binding
	Outdoor2 key.Binding
	Photo    key.Binding
	Reset    key.Binding
	Help     key.Binding
	Quit     key.Binding
}

func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Water, k.Page, k.Diet, k.Help, k.Quit}
}

func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Water, k.SmallSip, k.Page, k.Diet},
		{k.Workout1, k.Workout2, k.Outdoor1, k.Outdoor2},
		{k.Photo, k.Reset, k.Help, k.Quit},
	}
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Water: key.NewBinding(
			key.WithKeys("w"),
			key.WithHelp("w", "add bottle of water"),
		),
		SmallSip: key.NewBinding(
			key.WithKeys("W"),
			key.WithHelp("W", "add 8 oz of water"),
		),
		Page: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "add page read"),
		),
		Diet: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "toggle diet"),
		),
		Workout1: key.NewBinding(
			key.WithKeys("1"),
			key.WithHelp("1", "mark workout 1 done"),
		),
		Workout2: key.NewBinding(
			key.WithKeys("2"),
			key.WithHelp("2", "mark workout 2 done"),
		),
		Outdoor1: key.NewBinding(
			key.WithKeys("!"),
			key.WithHelp("!", "toggle workout 1 outdoors"),
		),
		Outdoor2: key.NewBinding(
			key.WithKeys("@"),
			key.WithHelp("@", "toggle workout 2 outdoors"),
		),
		Photo: key.NewBinding(
			key.WithKeys("o"),
			key.WithHelp("o", "record progress photo"),
		),
		Reset: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "reset challenge"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "toggle help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}
