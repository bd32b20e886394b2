package theme

import "github.com/charmbracelet/lipgloss"

// Push status styles
var (
	FailedStyle    = lipgloss.NewStyle().Foreground(ColorFailed).Bold(true)
	PendingStyle   = lipgloss.NewStyle().Foreground(ColorPending)
	ProcessedStyle = lipgloss.NewStyle().Foreground(ColorProcessed)
)

// StatusStyle returns the style for a push status name
func StatusStyle(status string) lipgloss.Style {
	switch status {
	case "failed":
		return FailedStyle
	case "processed":
		return ProcessedStyle
	default:
		return PendingStyle
	}
}
