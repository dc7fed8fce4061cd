package ui

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/renato0307/cereja/internal/domain"
	"github.com/renato0307/cereja/internal/theme"
)

// operationItem implements list.Item for one pull request in the operation
type operationItem struct {
	current bool
	item    domain.Item
}

// FilterValue implements list.Item
func (i operationItem) FilterValue() string {
	return fmt.Sprintf("%d %s", i.item.PullRequestID, i.item.Title)
}

// statusGlyph returns the styled one-rune marker for an item status
func statusGlyph(status domain.ItemStatus) string {
	switch status {
	case domain.ItemApplied:
		return theme.AppliedIconStyle.Render("✓")
	case domain.ItemConflict:
		return theme.ConflictIconStyle.Render("!")
	case domain.ItemFailed:
		return theme.FailedIconStyle.Render("✗")
	case domain.ItemSkipped:
		return theme.SkippedIconStyle.Render("⊘")
	default:
		return theme.PendingIconStyle.Render("·")
	}
}

// itemDelegate renders one pull request as two lines: the title line with
// the status glyph, and a detail line with the failure reason or the commit.
type itemDelegate struct{}

// Height implements list.ItemDelegate
func (d itemDelegate) Height() int {
	return 2
}

// Spacing implements list.ItemDelegate
func (d itemDelegate) Spacing() int {
	return 0
}

// Update implements list.ItemDelegate
func (d itemDelegate) Update(msg tea.Msg, m *list.Model) tea.Cmd {
	return nil
}

// Render implements list.ItemDelegate
func (d itemDelegate) Render(w io.Writer, m list.Model, index int, listItem list.Item) {
	entry, ok := listItem.(operationItem)
	if !ok {
		return
	}

	cursor := " "
	if index == m.Index() {
		cursor = ">"
	}

	titleStyle := theme.ItemTitleStyle
	if index == m.Index() {
		titleStyle = theme.ItemSelectedStyle
	}

	title := fmt.Sprintf("%s %s %s %s",
		cursor,
		statusGlyph(entry.item.Status),
		titleStyle.Render(fmt.Sprintf("PR %-6d", entry.item.PullRequestID)),
		titleStyle.Render(entry.item.Title))
	if entry.current {
		title += theme.LabelStyle.Render("  ← current")
	}

	detail := itemDetail(entry.item)
	width := m.Width()
	if width > 0 {
		title = lipgloss.NewStyle().MaxWidth(width).Render(title)
		detail = lipgloss.NewStyle().MaxWidth(width).Render(detail)
	}

	fmt.Fprintf(w, "%s\n     %s", title, theme.ItemDetailStyle.Render(detail))
}

// itemDetail builds the second line for an item
func itemDetail(item domain.Item) string {
	if item.FailureReason != "" {
		return item.FailureReason
	}

	var parts []string
	if item.MergeCommit != "" {
		commit := item.MergeCommit
		if len(commit) > 8 {
			commit = commit[:8]
		}
		parts = append(parts, commit)
	}
	if len(item.WorkItemIDs) > 0 {
		parts = append(parts, fmt.Sprintf("%d work item(s)", len(item.WorkItemIDs)))
	}
	if len(parts) == 0 {
		return string(item.Status)
	}
	return strings.Join(parts, " · ")
}

// newItemList creates the list component for the dashboard. Chrome is off
// because the dashboard draws its own header and help bar.
func newItemList() list.Model {
	l := list.New(nil, itemDelegate{}, 0, 0)
	l.SetFilteringEnabled(false)
	l.SetShowHelp(false)
	l.SetShowStatusBar(false)
	l.SetShowTitle(false)
	l.DisableQuitKeybindings()
	return l
}

// buildItems converts the record's items into list entries, marking the one
// the cursor is on while the operation is still running.
func buildItems(op *domain.Operation) []list.Item {
	items := make([]list.Item, 0, len(op.Items))
	for i, item := range op.Items {
		items = append(items, operationItem{
			current: i == op.CurrentIndex && !op.Phase.Terminal(),
			item:    item,
		})
	}
	return items
}
