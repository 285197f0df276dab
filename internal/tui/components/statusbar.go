package components

import (
	"strings"

	"github.com/theirongolddev/duofin/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

// RenderStatusBar renders the bottom status bar. message is shown on the
// right; isErr colors it as a warning.
func RenderStatusBar(width int, hints, message string, isErr bool) string {
	t := theme.Active

	hintStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
	msgStyle := lipgloss.NewStyle().Foreground(t.Green)
	if isErr {
		msgStyle = msgStyle.Foreground(t.Orange)
	}

	left := hintStyle.Render(" " + hints)
	right := ""
	if message != "" {
		right = msgStyle.Render(message + " ")
	}

	padding := width - lipgloss.Width(left) - lipgloss.Width(right)
	if padding < 1 {
		// Drop the message before squeezing the hints.
		right = ""
		padding = width - lipgloss.Width(left)
		if padding < 0 {
			padding = 0
		}
	}

	return lipgloss.NewStyle().Width(width).Render(left + strings.Repeat(" ", padding) + right)
}
