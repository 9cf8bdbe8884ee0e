package modes

import "github.com/charmbracelet/bubbles/key"

// KeyMap holds the normal mode bindings. It doubles as the help.KeyMap of
// the footer.
type KeyMap struct {
	Prev      key.Binding
	Next      key.Binding
	First     key.Binding
	Last      key.Binding
	Color     key.Binding
	Yellow    key.Binding
	White     key.Binding
	Rose      key.Binding
	Open      key.Binding
	Filter    key.Binding
	Sort      key.Binding
	Reload    key.Binding
	Help      key.Binding
	Quit      key.Binding
	ForceQuit key.Binding
}

// DefaultKeyMap returns the default bindings
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Prev: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/h", "previous"),
		),
		Next: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→/l", "next"),
		),
		First: key.NewBinding(
			key.WithKeys("home", "g"),
			key.WithHelp("g/home", "first"),
		),
		Last: key.NewBinding(
			key.WithKeys("end", "G"),
			key.WithHelp("G/end", "last"),
		),
		Color: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "cycle colour"),
		),
		Yellow: key.NewBinding(
			key.WithKeys("1"),
			key.WithHelp("1", "yellow gold"),
		),
		White: key.NewBinding(
			key.WithKeys("2"),
			key.WithHelp("2", "white gold"),
		),
		Rose: key.NewBinding(
			key.WithKeys("3"),
			key.WithHelp("3", "rose gold"),
		),
		Open: key.NewBinding(
			key.WithKeys("o", "enter"),
			key.WithHelp("o", "open image"),
		),
		Filter: key.NewBinding(
			key.WithKeys("/"),
			key.WithHelp("/", "filter"),
		),
		Sort: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "sort"),
		),
		Reload: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "reload"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q"),
			key.WithHelp("q", "quit"),
		),
		ForceQuit: key.NewBinding(
			key.WithKeys("ctrl+c"),
		),
	}
}

// ShortHelp implements help.KeyMap
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Prev, k.Next, k.Color, k.Filter, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Prev, k.Next, k.First, k.Last},
		{k.Color, k.Yellow, k.White, k.Rose, k.Open},
		{k.Filter, k.Sort, k.Reload},
		{k.Help, k.Quit},
	}
}
