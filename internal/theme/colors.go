package theme

import "github.com/charmbracelet/lipgloss"

// Color is an alias for lipgloss.Color for convenience
type Color = lipgloss.Color

// Brand colors
const (
	ColorPrimary   Color = "161" // Cherry red - app name, titles
	ColorSecondary Color = "86"  // Cyan - subtitles
)

// Item status colors
const (
	ColorApplied  Color = "2"   // Green - picked cleanly
	ColorConflict Color = "1"   // Red - waiting on resolution
	ColorFailed   Color = "196" // Bright red - pick failed
	ColorPending  Color = "8"   // Gray - not reached yet
	ColorSkipped  Color = "3"   // Yellow - dropped from the release
)

// Phase colors
const (
	ColorPhaseActive   Color = "2"   // Green - picking, completing
	ColorPhaseBlocked  Color = "1"   // Red - awaiting resolution
	ColorPhaseDone     Color = "241" // Gray - completed, aborted
	ColorPhaseStarting Color = "3"   // Yellow - loading, setup
)

// UI semantic colors
const (
	ColorError     Color = "196" // Bright red
	ColorHighlight Color = "255" // White - emphasis
	ColorMuted     Color = "241" // Gray - secondary text
	ColorNormal    Color = "250" // Default text
	ColorSpinner   Color = "205" // Pink
	ColorSubtle    Color = "245" // Light gray - labels
	ColorVersion   Color = "240" // Dark gray
)
