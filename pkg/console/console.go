// Package console provides styled terminal output helpers.
//
// All user-facing output goes through the Format* helpers so that styling is
// consistent and degrades cleanly on non-TTY output (lipgloss downgrades the
// color profile automatically).
package console

import (
	"github.com/charmbracelet/lipgloss"
)

var (
	infoStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("12"))
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	warningStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	verboseStyle = lipgloss.NewStyle().Faint(true)
	headerStyle  = lipgloss.NewStyle().Bold(true)
)

// FormatInfoMessage formats an informational message.
func FormatInfoMessage(message string) string {
	return infoStyle.Render(message)
}

// FormatSuccessMessage formats a success message with a leading check mark.
func FormatSuccessMessage(message string) string {
	return successStyle.Render("✓ " + message)
}

// FormatWarningMessage formats a warning message with a leading marker.
func FormatWarningMessage(message string) string {
	return warningStyle.Render("! " + message)
}

// FormatErrorMessage formats an error message with a leading cross mark.
func FormatErrorMessage(message string) string {
	return errorStyle.Render("✗ " + message)
}

// FormatVerboseMessage formats a low-priority progress message.
func FormatVerboseMessage(message string) string {
	return verboseStyle.Render(message)
}
