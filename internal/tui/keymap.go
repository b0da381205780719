package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines all keyboard shortcuts.
type KeyMap struct {
	// Inventory
	Up        key.Binding
	Down      key.Binding
	Decrement key.Binding
	Increment key.Binding
	JumpKind  key.Binding

	// Recipes
	PageUp   key.Binding
	PageDown key.Binding

	// Filter
	Search      key.Binding
	LeaveSearch key.Binding
	ClearSearch key.Binding
	ToggleSort  key.Binding
	Reset       key.Binding

	// Application
	SwitchFocus key.Binding
	Help        key.Binding
	Quit        key.Binding
	ForceQuit   key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("k", "up"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("j", "down"),
			key.WithHelp("↓/j", "down"),
		),
		Decrement: key.NewBinding(
			key.WithKeys("h", "left", "-"),
			key.WithHelp("←/h/-", "remove one"),
		),
		Increment: key.NewBinding(
			key.WithKeys("l", "right", "+", "="),
			key.WithHelp("→/l/+", "add one"),
		),
		JumpKind: key.NewBinding(
			key.WithKeys("0", "1", "2", "3", "4", "5", "6", "7", "8", "9"),
			key.WithHelp("0-9", "jump to ingredient"),
		),

		PageUp: key.NewBinding(
			key.WithKeys("pgup"),
			key.WithHelp("PgUp", "scroll recipes up"),
		),
		PageDown: key.NewBinding(
			key.WithKeys("pgdown"),
			key.WithHelp("PgDn", "scroll recipes down"),
		),

		Search: key.NewBinding(
			key.WithKeys("/"),
			key.WithHelp("/", "search"),
		),
		LeaveSearch: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("Enter", "leave search"),
		),
		ClearSearch: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("Esc", "clear search"),
		),
		ToggleSort: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "reverse order"),
		),
		Reset: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "reset"),
		),

		SwitchFocus: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("Tab", "switch panel"),
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
			key.WithHelp("Ctrl+C", "force quit"),
		),
	}
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Decrement, k.Increment, k.Search, k.Reset, k.Help, k.Quit}
}

// FullHelp returns all key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Decrement, k.Increment, k.JumpKind},
		{k.Search, k.LeaveSearch, k.ClearSearch, k.ToggleSort, k.Reset},
		{k.SwitchFocus, k.PageUp, k.PageDown, k.Help, k.Quit},
	}
}
