package ui

import (
	"strings"
	"time"
	"unicode/utf8"

	tea "github.com/charmbracelet/bubbletea"
)

// clearErrorMsg is sent after the clear delay to remove a displayed error.
type clearErrorMsg struct{}

// ErrorManager holds the error currently shown in the footer and clears it
// after a delay so stale failures do not linger on screen.
type ErrorManager struct {
	currentError    error
	errorClearDelay time.Duration
}

// NewErrorManager creates an ErrorManager with the given auto-clear delay.
func NewErrorManager(errorClearDelay time.Duration) *ErrorManager {
	return &ErrorManager{
		errorClearDelay: errorClearDelay,
	}
}

// SetError sets the error to display.
func (em *ErrorManager) SetError(err error) {
	em.currentError = err
}

// ClearError removes the displayed error.
func (em *ErrorManager) ClearError() {
	em.currentError = nil
}

// GetError returns the displayed error, or nil.
func (em *ErrorManager) GetError() error {
	return em.currentError
}

// HasError reports whether an error is displayed.
func (em *ErrorManager) HasError() bool {
	return em.currentError != nil
}

// ClearAfterDelay returns a command that sends clearErrorMsg after the
// configured delay.
func (em *ErrorManager) ClearAfterDelay() tea.Cmd {
	return tea.Tick(em.errorClearDelay, func(time.Time) tea.Msg {
		return clearErrorMsg{}
	})
}

const (
	errorPrefix   = "Error: "
	maxErrorLines = 2
)

// formatErrorForDisplay renders an error for the footer, word-wrapped to at
// most maxErrorLines lines of the given width and truncated with "..." when
// the message is longer.
func formatErrorForDisplay(err error, maxWidth int) string {
	if err == nil {
		return ""
	}
	message := err.Error()
	if message == "" {
		message = "unknown error"
	}

	lineWidth := maxWidth - utf8.RuneCountInString(errorPrefix)
	if lineWidth < 10 {
		lineWidth = 10
	}

	var lines []string
	var current strings.Builder
	truncated := false
	for _, word := range strings.Fields(message) {
		if current.Len() > 0 &&
			utf8.RuneCountInString(current.String())+1+utf8.RuneCountInString(word) > lineWidth {
			if len(lines)+1 == maxErrorLines {
				truncated = true
				break
			}
			lines = append(lines, current.String())
			current.Reset()
		}
		if current.Len() > 0 {
			current.WriteString(" ")
		}
		current.WriteString(word)
	}
	if current.Len() > 0 {
		lines = append(lines, current.String())
	}
	if len(lines) == 0 {
		return errorPrefix + message
	}
	if truncated {
		lines[len(lines)-1] += "..."
	}
	return errorPrefix + strings.Join(lines, "\n")
}
