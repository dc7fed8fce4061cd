package theme

import "github.com/charmbracelet/lipgloss"

// Header styles
var (
	AppNameStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary)

	SubtitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorSecondary)

	TaglineStyle = lipgloss.NewStyle().
			Foreground(ColorNormal)

	VersionStyle = lipgloss.NewStyle().
			Foreground(ColorVersion)
)

// Main UI styles
var (
	BranchStyle = lipgloss.NewStyle().
			Foreground(ColorMuted)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(ColorError)

	HelpStyle = lipgloss.NewStyle().
			Foreground(ColorMuted).
			Padding(1, 0)

	LabelStyle = lipgloss.NewStyle().
			Foreground(ColorSubtle)

	NormalStyle = lipgloss.NewStyle().
			Foreground(ColorNormal)

	ProgressStyle = lipgloss.NewStyle().
			Foreground(ColorHighlight)
)

// Item status glyph styles
var (
	AppliedIconStyle = lipgloss.NewStyle().
				Foreground(ColorApplied)

	ConflictIconStyle = lipgloss.NewStyle().
				Foreground(ColorConflict)

	FailedIconStyle = lipgloss.NewStyle().
			Foreground(ColorFailed)

	PendingIconStyle = lipgloss.NewStyle().
				Foreground(ColorPending)

	SkippedIconStyle = lipgloss.NewStyle().
				Foreground(ColorSkipped)
)

// Phase badge styles
var (
	PhaseActiveStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(ColorPhaseActive)

	PhaseBlockedStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(ColorPhaseBlocked)

	PhaseDoneStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPhaseDone)

	PhaseStartingStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(ColorPhaseStarting)
)

// Conflict panel styles
var (
	ConflictPanelStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(ColorConflict).
				Padding(0, 1)

	ConflictPathStyle = lipgloss.NewStyle().
				Foreground(ColorHighlight)

	ConflictTitleStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(ColorConflict)
)

// List item styles
var (
	ItemDetailStyle = lipgloss.NewStyle().
			Foreground(ColorMuted)

	ItemSelectedStyle = lipgloss.NewStyle().
				Foreground(ColorHighlight).
				Bold(true)

	ItemTitleStyle = lipgloss.NewStyle().
			Foreground(ColorNormal)
)
