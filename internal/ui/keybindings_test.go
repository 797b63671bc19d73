package ui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestIsQuit(t *testing.T) {
	assert.True(t, isQuit(tea.KeyMsg{Type: tea.KeyCtrlC}))
	assert.True(t, isQuit(runeKey('q')))
	assert.False(t, isQuit(runeKey('a')))
}

func TestIsEnter(t *testing.T) {
	assert.True(t, isEnter(tea.KeyMsg{Type: tea.KeyEnter}))
	assert.False(t, isEnter(tea.KeyMsg{Type: tea.KeySpace}))
}

func TestIsBack(t *testing.T) {
	assert.True(t, isBack(tea.KeyMsg{Type: tea.KeyEsc}))
	assert.False(t, isBack(tea.KeyMsg{Type: tea.KeyEnter}))
}

func TestIsDownRespectsVimKeys(t *testing.T) {
	assert.True(t, isDown(tea.KeyMsg{Type: tea.KeyDown}, false))
	assert.False(t, isDown(tea.KeyMsg{Type: tea.KeyUp}, false))
	assert.False(t, isDown(runeKey('j'), false))
	assert.True(t, isDown(runeKey('j'), true))
}

func TestIsUpRespectsVimKeys(t *testing.T) {
	assert.True(t, isUp(tea.KeyMsg{Type: tea.KeyUp}, false))
	assert.False(t, isUp(runeKey('k'), false))
	assert.True(t, isUp(runeKey('k'), true))
}

func TestIsLeftRight(t *testing.T) {
	assert.True(t, isLeft(tea.KeyMsg{Type: tea.KeyLeft}, false))
	assert.True(t, isRight(tea.KeyMsg{Type: tea.KeyRight}, false))
	assert.False(t, isLeft(runeKey('h'), false))
	assert.True(t, isRight(runeKey('l'), true))
}

func TestHistoryKeys(t *testing.T) {
	assert.True(t, isHistoryBack(runeKey('[')))
	assert.True(t, isHistoryForward(runeKey(']')))
	assert.False(t, isHistoryBack(runeKey(']')))
}

func TestAgentShortcut(t *testing.T) {
	i, ok := agentShortcut(runeKey('2'))
	assert.True(t, ok)
	assert.Equal(t, 1, i)

	_, ok = agentShortcut(runeKey('4'))
	assert.False(t, ok)
}

func TestIsKey(t *testing.T) {
	assert.True(t, isKey(runeKey('g'), "g"))
	assert.True(t, isKey(tea.KeyMsg{Type: tea.KeyBackspace}, "backspace"))
	assert.False(t, isKey(runeKey('g'), "x", "y"))
}
