package ui

import "github.com/charmbracelet/bubbles/key"

// KeyMap contains the dashboard key bindings. It implements help.KeyMap so
// the footer help bar renders straight from it.
type KeyMap struct {
	Abort    key.Binding
	Complete key.Binding
	Continue key.Binding
	Down     key.Binding
	Help     key.Binding
	Quit     key.Binding
	Refresh  key.Binding
	Shell    key.Binding
	Skip     key.Binding
	Start    key.Binding
	Up       key.Binding
}

// NewKeyMap creates the key bindings. In read-only views the mutating
// bindings are disabled, which removes them from the help bar and makes
// key.Matches ignore them.
func NewKeyMap(readOnly bool) KeyMap {
	k := KeyMap{
		Abort: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "abort the operation"),
		),
		Complete: key.NewBinding(
			key.WithKeys("f"),
			key.WithHelp("f", "complete the operation"),
		),
		Continue: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "continue picking"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "more"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		Refresh: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "refresh"),
		),
		Shell: key.NewBinding(
			key.WithKeys("o"),
			key.WithHelp("o", "open a shell in the tree"),
		),
		Skip: key.NewBinding(
			key.WithKeys("x"),
			key.WithHelp("x", "skip the conflicted item"),
		),
		Start: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "start an operation"),
		),
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
	}

	if readOnly {
		k.Abort.SetEnabled(false)
		k.Complete.SetEnabled(false)
		k.Continue.SetEnabled(false)
		k.Shell.SetEnabled(false)
		k.Skip.SetEnabled(false)
		k.Start.SetEnabled(false)
	}
	return k
}

// ShortHelp returns the bindings for the one-line help bar.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{
		k.Start,
		k.Continue,
		k.Shell,
		k.Help,
		k.Quit,
	}
}

// FullHelp returns the bindings for the expanded help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Refresh},
		{k.Start, k.Continue, k.Skip},
		{k.Abort, k.Complete, k.Shell},
		{k.Help, k.Quit},
	}
}
