package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	hintDescStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#9ba0bf"))
	keyCapStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#16161d")).
			Background(lipgloss.Color("#888ba4")).
			Bold(true).
			Padding(0, 1)
	segmentStyle = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("#273540")).
			Padding(0, 1).
			MarginRight(1)
	statusBarBorder = lipgloss.NewStyle().
			PaddingLeft(2)
	addressLabelStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#16161d")).
				Background(lipgloss.Color("#436b77")).
				Bold(true).
				Padding(0, 1)
	addressPathStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#d7d9da")).
				Padding(0, 1)
	addressQueryStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#a7754e"))
	crumbSepStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#273540"))
	crumbStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#9ba0bf"))
	crumbLastStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#7f57b4")).
			Bold(true)
)

// StatusBar renders the bottom hint bar, wrapping onto extra rows when narrow.
func StatusBar(hints []string, width int) string {
	segments := make([]string, 0, len(hints))
	for _, h := range hints {
		segments = append(segments, segmentStyle.Render(h))
	}
	rows := wrapSegments(segments, width)
	if len(rows) == 0 {
		return ""
	}
	block := lipgloss.JoinVertical(lipgloss.Center, rows...)
	if width <= 0 {
		return statusBarBorder.Render(block)
	}
	return statusBarBorder.Width(width).Align(lipgloss.Center).Render(block)
}

// Hint formats a single keybind hint like "Move ↑/↓".
func Hint(key, desc string) string {
	return hintDescStyle.Render(desc+" ") + keyCapStyle.Render(key)
}

// AddressBar shows the router location the way a browser shows its URL.
func AddressBar(pathname, search string, width int) string {
	path := SanitizeOneLine(pathname)
	query := SanitizeOneLine(search)
	label := addressLabelStyle.Render("URL")
	line := label + addressPathStyle.Render(path+addressQueryStyle.Render(query))
	if width > 0 && lipgloss.Width(line) > width {
		room := width - lipgloss.Width(label) - 3
		line = label + addressPathStyle.Render(truncateRunes(path+query, room))
	}
	return line
}

// Breadcrumb joins parts with a separator, highlighting the last one.
func Breadcrumb(parts ...string) string {
	rendered := make([]string, 0, len(parts))
	for i, p := range parts {
		p = SanitizeOneLine(p)
		if i == len(parts)-1 {
			rendered = append(rendered, crumbLastStyle.Render(p))
			continue
		}
		rendered = append(rendered, crumbStyle.Render(p))
	}
	return strings.Join(rendered, crumbSepStyle.Render(" › "))
}

func wrapSegments(segments []string, width int) []string {
	if len(segments) == 0 {
		return nil
	}
	if width <= 0 {
		return []string{lipgloss.JoinHorizontal(lipgloss.Top, segments...)}
	}
	var rows []string
	var current []string
	currentWidth := 0
	for _, seg := range segments {
		segWidth := lipgloss.Width(seg)
		if currentWidth > 0 && currentWidth+segWidth > width {
			rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, current...))
			current = nil
			currentWidth = 0
		}
		current = append(current, seg)
		currentWidth += segWidth
	}
	return append(rows, lipgloss.JoinHorizontal(lipgloss.Top, current...))
}

func truncateRunes(s string, max int) string {
	if max <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	if max <= 1 {
		return string(runes[:max])
	}
	return string(runes[:max-1]) + "…"
}
