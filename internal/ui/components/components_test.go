package components

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
)

func TestHintIncludesKeyAndDesc(t *testing.T) {
	out := Hint("↑/↓", "Move")
	assert.Contains(t, out, "Move")
	assert.Contains(t, out, "↑/↓")
}

func TestStatusBarRendersHints(t *testing.T) {
	out := StatusBar([]string{Hint("q", "Quit")}, 0)
	assert.Contains(t, out, "Quit")
	assert.Equal(t, "", StatusBar(nil, 80))
}

func TestWrapSegmentsWrapsWhenNarrow(t *testing.T) {
	rows := wrapSegments([]string{"123456", "abcdef", "ghijkl"}, 10)
	assert.Len(t, rows, 3)
	for _, row := range rows {
		assert.LessOrEqual(t, lipgloss.Width(row), 10)
	}
	assert.Len(t, wrapSegments([]string{"ab", "cd"}, 10), 1)
}

func TestAddressBarShowsPathAndQuery(t *testing.T) {
	out := SanitizeText(AddressBar("/settings/billing", "?plan=pro", 0))
	assert.Contains(t, out, "/settings/billing")
	assert.Contains(t, out, "?plan=pro")
}

func TestAddressBarStripsEscapes(t *testing.T) {
	out := AddressBar("/settings/\x1b]8;;https://evil\x07x", "", 0)
	assert.NotContains(t, out, "evil")
}

func TestAddressBarTruncatesWhenNarrow(t *testing.T) {
	out := AddressBar("/settings/organization/billing-admin/with/a/very/long/tail", "", 30)
	assert.LessOrEqual(t, lipgloss.Width(out), 30)
	assert.Contains(t, out, "…")
}

func TestBreadcrumbJoinsParts(t *testing.T) {
	out := SanitizeText(Breadcrumb("Security", "Overview"))
	assert.Contains(t, out, "Security › Overview")
}

func TestPanelIncludesTitle(t *testing.T) {
	out := SanitizeText(Panel("Docker", "body", 40))
	assert.Contains(t, out, "Docker")
	assert.Contains(t, out, "body")
}

func TestPanelWidthBounds(t *testing.T) {
	assert.Equal(t, 60, PanelWidth(0, 20))
	assert.Equal(t, 30, PanelWidth(40, 20))
	assert.Equal(t, 90, PanelWidth(300, 20))
}

func TestErrorBoxIncludesMessage(t *testing.T) {
	out := SanitizeText(ErrorBox("Error", "not a settings path", 40))
	assert.Contains(t, out, "not a settings path")
}

func TestInfoRowPadsLabel(t *testing.T) {
	out := SanitizeText(InfoRow("Path", "/settings/agents", 8))
	assert.True(t, strings.HasPrefix(out, "Path    "))
	assert.Contains(t, out, "/settings/agents")
}

func TestInputDialogIncludesTitleInputAndHints(t *testing.T) {
	clean := SanitizeText(InputDialog("Go to", "/settings?tab=org", "legacy links are fine"))
	assert.Contains(t, clean, "Go to")
	assert.Contains(t, clean, "> /settings?tab=org")
	assert.Contains(t, clean, "legacy links are fine")
	assert.Contains(t, clean, "enter: go | esc: cancel")
}

func TestSanitizeOneLineStripsOscAndNewlines(t *testing.T) {
	out := SanitizeOneLine("\x1b]8;;https://evil\x07click\x1b]8;;\x07\nline\tmore")
	assert.NotContains(t, out, "\x1b")
	assert.NotContains(t, out, "\n")
	assert.NotContains(t, out, "\t")
	assert.Equal(t, "click line more", out)
}

func TestSanitizeTextRemovesBidiControls(t *testing.T) {
	assert.NotContains(t, SanitizeText("safe\u202eexe.txt"), "\u202e")
}

func TestListMovementScrolls(t *testing.T) {
	l := NewList(5, 3)
	l.Down()
	l.Down()
	assert.Equal(t, 2, l.Cursor)
	assert.Equal(t, 0, l.Offset)
	l.Down()
	assert.Equal(t, 3, l.Cursor)
	assert.Equal(t, 1, l.Offset)
	l.Down()
	l.Down()
	assert.Equal(t, 4, l.Cursor)
	l.Up()
	l.Up()
	l.Up()
	l.Up()
	l.Up()
	assert.Equal(t, 0, l.Cursor)
	assert.Equal(t, 0, l.Offset)
}

func TestListSetCursorClampsAndScrolls(t *testing.T) {
	l := NewList(10, 4)
	l.SetCursor(99)
	assert.Equal(t, 9, l.Cursor)
	start, end := l.Window()
	assert.Equal(t, 6, start)
	assert.Equal(t, 10, end)

	l.SetCursor(-1)
	assert.Equal(t, 0, l.Cursor)
	start, _ = l.Window()
	assert.Equal(t, 0, start)
}

func TestListSetPageSizeKeepsCursorVisible(t *testing.T) {
	l := NewList(10, 10)
	l.SetCursor(8)
	l.SetPageSize(3)
	start, end := l.Window()
	assert.True(t, start <= 8 && 8 < end)

	l.SetPageSize(0)
	start, end = l.Window()
	assert.Equal(t, 0, start)
	assert.Equal(t, 10, end)
}
