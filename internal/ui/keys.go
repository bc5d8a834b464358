package ui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	NextTab key.Binding
	PrevTab key.Binding
	Up      key.Binding
	Down    key.Binding
	Add     key.Binding
	Toggle  key.Binding
	Delete  key.Binding
	Filter  key.Binding
	Edit    key.Binding
	Copy    key.Binding
	Clear   key.Binding
	Reset   key.Binding
	Preset  key.Binding
	Refresh key.Binding
	Quote   key.Binding
	Save    key.Binding
	Theme   key.Binding
	Help    key.Binding
	Quit    key.Binding
}

func defaultKeys() keyMap {
	return keyMap{
		NextTab: key.NewBinding(key.WithKeys("tab", "right", "l"), key.WithHelp("tab", "next tab")),
		PrevTab: key.NewBinding(key.WithKeys("shift+tab", "left", "h"), key.WithHelp("shift+tab", "prev tab")),
		Up:      key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:    key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Add:     key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "add task")),
		Toggle:  key.NewBinding(key.WithKeys(" ", "x"), key.WithHelp("space", "toggle")),
		Delete:  key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "delete")),
		Filter:  key.NewBinding(key.WithKeys("f"), key.WithHelp("f", "filter")),
		Edit:    key.NewBinding(key.WithKeys("e", "enter"), key.WithHelp("e", "edit notes")),
		Copy:    key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "copy")),
		Clear:   key.NewBinding(key.WithKeys("X"), key.WithHelp("X", "clear notes")),
		Reset:   key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reset")),
		Preset:  key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "next preset")),
		Refresh: key.NewBinding(key.WithKeys("w"), key.WithHelp("w", "refresh weather")),
		Quote:   key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "new quote")),
		Save:    key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "save quote")),
		Theme:   key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "theme")),
		Help:    key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:    key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.NextTab, k.Theme, k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.NextTab, k.PrevTab, k.Up, k.Down},
		{k.Add, k.Toggle, k.Delete, k.Filter},
		{k.Edit, k.Copy, k.Clear},
		{k.Reset, k.Preset, k.Refresh, k.Quote, k.Save},
		{k.Theme, k.Help, k.Quit},
	}
}
