package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines all key bindings for the inspector
type KeyMap struct {
	// Tree navigation (mapped onto fragment navigation directions)
	Up     key.Binding
	Down   key.Binding
	Left   key.Binding
	Right  key.Binding
	Home   key.Binding
	End    key.Binding

	// Control mutations
	Toggle     key.Binding
	CycleView  key.Binding
	Groups     key.Binding
	Mount      key.Binding
	CheckBoxes key.Binding
	Collapse   key.Binding
	Select     key.Binding

	// Actions
	Filter key.Binding
	Save   key.Binding
	Quit   key.Binding
	Escape key.Binding
	Help   key.Binding
}

// DefaultKeyMap returns the default key bindings
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("k", "up"),
			key.WithHelp("k/↑", "previous sibling"),
		),
		Down: key.NewBinding(
			key.WithKeys("j", "down"),
			key.WithHelp("j/↓", "next sibling"),
		),
		Left: key.NewBinding(
			key.WithKeys("h", "left"),
			key.WithHelp("h/←", "parent"),
		),
		Right: key.NewBinding(
			key.WithKeys("l", "right"),
			key.WithHelp("l/→", "first child"),
		),
		Home: key.NewBinding(
			key.WithKeys("g", "home"),
			key.WithHelp("g", "root"),
		),
		End: key.NewBinding(
			key.WithKeys("G", "end"),
			key.WithHelp("G", "last child"),
		),

		Toggle: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("space", "toggle check"),
		),
		CycleView: key.NewBinding(
			key.WithKeys("v"),
			key.WithHelp("v", "cycle view"),
		),
		Groups: key.NewBinding(
			key.WithKeys("o"),
			key.WithHelp("o", "toggle grouping"),
		),
		Mount: key.NewBinding(
			key.WithKeys("m"),
			key.WithHelp("m", "mount/unmount"),
		),
		CheckBoxes: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "toggle check boxes"),
		),
		Collapse: key.NewBinding(
			key.WithKeys("z"),
			key.WithHelp("z", "collapse group"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "select item"),
		),

		Filter: key.NewBinding(
			key.WithKeys("/"),
			key.WithHelp("/", "filter"),
		),
		Save: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "save scenario"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		Escape: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "cancel/clear"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
	}
}

// Keys is the global key bindings instance
var Keys = DefaultKeyMap()
