package ui

import tea "github.com/charmbracelet/bubbletea"

// Dialog wraps any tea.Model content and prepends the shared header with a
// title, so every dialog opens with the same first lines.
type Dialog struct {
	content tea.Model
	devMode bool
	title   string
}

// NewDialog wraps content in a dialog with the given title.
func NewDialog(title string, content tea.Model, devMode bool) *Dialog {
	return &Dialog{
		content: content,
		devMode: devMode,
		title:   title,
	}
}

// Init delegates to the wrapped content.
func (d *Dialog) Init() tea.Cmd {
	return d.content.Init()
}

// Update delegates to the wrapped content and keeps the updated model.
func (d *Dialog) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	updated, cmd := d.content.Update(msg)
	d.content = updated
	return d, cmd
}

// View renders the header followed by the wrapped content.
func (d *Dialog) View() string {
	return renderHeader(d.devMode, d.title) + d.content.View()
}

// Content returns the wrapped content for type assertion after Update.
func (d *Dialog) Content() tea.Model {
	return d.content
}
