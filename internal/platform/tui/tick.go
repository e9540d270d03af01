// Package tui provides the Bubble Tea front end for 2048.
// It maps input to swipes, renders the board and serves games over SSH.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// highlightDuration is how long a freshly spawned tile stays marked.
const highlightDuration = 400 * time.Millisecond

// highlightExpiredMsg clears the spawn marker set by swipe seq.
type highlightExpiredMsg struct {
	seq int
}

// highlightCmd returns a command that expires the marker for seq.
func highlightCmd(seq int) tea.Cmd {
	return tea.Tick(highlightDuration, func(time.Time) tea.Msg {
		return highlightExpiredMsg{seq: seq}
	})
}
