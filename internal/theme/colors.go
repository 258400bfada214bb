package theme

import "github.com/charmbracelet/lipgloss"

// Color is an alias for lipgloss.Color for convenience
type Color = lipgloss.Color

// Brand colors
const (
	ColorPrimary   Color = "99" // Purple - app name, titles
	ColorSecondary Color = "86" // Cyan - subtitles
)

// Tab status colors
const (
	ColorBlocked   Color = "3" // Yellow - kept alive by a rule
	ColorInvalid   Color = "1" // Red - error
	ColorSpecial   Color = "8" // Gray - never suspendable
	ColorSuspended Color = "4" // Blue - placeholder shown
	ColorNormal    Color = "2" // Green - can be suspended
)

// UI semantic colors
const (
	ColorError     Color = "196" // Bright red
	ColorHighlight Color = "255" // White - emphasis
	ColorMuted     Color = "241" // Gray - secondary text
	ColorSubtle    Color = "245" // Light gray - labels
	ColorVersion   Color = "240" // Dark gray
)
