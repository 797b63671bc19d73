package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	boxBorder = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#273540")).
			Padding(1, 2)

	boxHeaderStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#7f57b4")).
			Bold(true)

	boxMutedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#9ba0bf"))

	boxValueStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#d7d9da"))

	errorBorder = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#7a2f3a")).
			Padding(1, 2)

	errorHeaderStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#e06c75")).
				Bold(true)
)

// PanelWidth returns the width used for the content panel beside a sidebar.
func PanelWidth(total, sidebar int) int {
	if total <= 0 {
		return 60
	}
	w := total - sidebar - 4
	if w < 30 {
		w = 30
	}
	if w > 90 {
		w = 90
	}
	return w
}

// Panel renders content in a bordered box with a bold header line.
func Panel(title, content string, width int) string {
	body := content
	if title != "" {
		body = boxHeaderStyle.Render(SanitizeOneLine(title)) + "\n\n" + content
	}
	return boxBorder.Width(width).Render(body)
}

// ErrorBox renders a red bordered box for errors.
func ErrorBox(title, message string, width int) string {
	header := ""
	if title != "" {
		header = errorHeaderStyle.Render(title) + "\n\n"
	}
	return errorBorder.Width(width).Render(header + boxMutedStyle.Render(SanitizeText(message)))
}

// InfoRow renders "label: value" with the label padded to labelWidth.
func InfoRow(label, value string, labelWidth int) string {
	safeLabel := SanitizeOneLine(label)
	if pad := labelWidth - lipgloss.Width(safeLabel); pad > 0 {
		safeLabel += strings.Repeat(" ", pad)
	}
	return boxMutedStyle.Render(safeLabel+"  ") + boxValueStyle.Render(SanitizeOneLine(value))
}
