package theme

import "github.com/charmbracelet/lipgloss"

// Color is an alias for lipgloss.Color for convenience
type Color = lipgloss.Color

// Push status colors
const (
	ColorFailed    Color = "1" // Red
	ColorPending   Color = "3" // Yellow
	ColorProcessed Color = "2" // Green
)
