package ui

import tea "github.com/charmbracelet/bubbletea"

// --- Key Constants ---

func isKey(msg tea.KeyMsg, keys ...string) bool {
	for _, k := range keys {
		if msg.String() == k {
			return true
		}
	}
	return false
}

func isQuit(msg tea.KeyMsg) bool {
	return isKey(msg, "q", "ctrl+c")
}

func isBack(msg tea.KeyMsg) bool {
	if msg.Type == tea.KeyEsc {
		return true
	}
	return isKey(msg, "esc", "escape", "ctrl+[")
}

func isEnter(msg tea.KeyMsg) bool {
	return isKey(msg, "enter", "return")
}

func isUp(msg tea.KeyMsg, vim bool) bool {
	if vim && isKey(msg, "k") {
		return true
	}
	return isKey(msg, "up")
}

func isDown(msg tea.KeyMsg, vim bool) bool {
	if vim && isKey(msg, "j") {
		return true
	}
	return isKey(msg, "down")
}

func isLeft(msg tea.KeyMsg, vim bool) bool {
	if vim && isKey(msg, "h") {
		return true
	}
	return isKey(msg, "left")
}

func isRight(msg tea.KeyMsg, vim bool) bool {
	if vim && isKey(msg, "l") {
		return true
	}
	return isKey(msg, "right")
}

func isHistoryBack(msg tea.KeyMsg) bool {
	return isKey(msg, "[", "alt+left")
}

func isHistoryForward(msg tea.KeyMsg) bool {
	return isKey(msg, "]", "alt+right")
}

// agentShortcut maps 1..3 to the agent at that selector position.
func agentShortcut(msg tea.KeyMsg) (int, bool) {
	switch {
	case isKey(msg, "1"):
		return 0, true
	case isKey(msg, "2"):
		return 1, true
	case isKey(msg, "3"):
		return 2, true
	}
	return 0, false
}
