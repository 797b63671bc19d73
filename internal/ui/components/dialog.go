package components

import (
	"github.com/charmbracelet/lipgloss"
)

var dialogStyle = lipgloss.NewStyle().
	Border(lipgloss.RoundedBorder()).
	BorderForeground(lipgloss.Color("#273540")).
	Padding(1, 2).
	Width(56)

// InputDialog renders a text input prompt with a caret and a hint line.
func InputDialog(title, input, hint string) string {
	header := lipgloss.NewStyle().
		Foreground(lipgloss.Color("#7f57b4")).
		Bold(true).
		Render(title)

	field := lipgloss.NewStyle().
		Foreground(lipgloss.Color("#436b77")).
		Render("> " + SanitizeOneLine(input) + "█")

	help := lipgloss.NewStyle().
		Foreground(lipgloss.Color("#9ba0bf")).
		Render("\nenter: go | esc: cancel")
	if hint != "" {
		help = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#9ba0bf")).
			Render("\n"+hint) + help
	}

	return dialogStyle.Render(header + "\n\n" + field + "\n" + help)
}
