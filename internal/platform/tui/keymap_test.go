package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"

	"github.com/vovakirdan/tui-2048/internal/grid"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestMapKeyDirections(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		name string
		msg  tea.KeyMsg
		want grid.Direction
	}{
		{"arrow up", tea.KeyMsg{Type: tea.KeyUp}, grid.Up},
		{"arrow down", tea.KeyMsg{Type: tea.KeyDown}, grid.Down},
		{"arrow left", tea.KeyMsg{Type: tea.KeyLeft}, grid.Left},
		{"arrow right", tea.KeyMsg{Type: tea.KeyRight}, grid.Right},
		{"w", runeKey('w'), grid.Up},
		{"a", runeKey('a'), grid.Left},
		{"s", runeKey('s'), grid.Down},
		{"d", runeKey('d'), grid.Right},
		{"k", runeKey('k'), grid.Up},
		{"h", runeKey('h'), grid.Left},
		{"j", runeKey('j'), grid.Down},
		{"l", runeKey('l'), grid.Right},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			action, dir := km.MapKey(tt.msg)
			assert.Equal(t, ActionMove, action)
			assert.Equal(t, tt.want, dir)
		})
	}
}

func TestMapKeyActions(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		name string
		msg  tea.KeyMsg
		want Action
	}{
		{"restart", runeKey('r'), ActionRestart},
		{"scores", tea.KeyMsg{Type: tea.KeyTab}, ActionScores},
		{"help", runeKey('?'), ActionHelp},
		{"quit q", runeKey('q'), ActionQuit},
		{"quit ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}, ActionQuit},
		{"unbound", runeKey('x'), ActionNone},
		{"enter", tea.KeyMsg{Type: tea.KeyEnter}, ActionNone},
		{"esc", tea.KeyMsg{Type: tea.KeyEsc}, ActionNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			action, _ := km.MapKey(tt.msg)
			assert.Equal(t, tt.want, action)
		})
	}
}

func TestDirectionFromDrag(t *testing.T) {
	tests := []struct {
		name   string
		dx, dy int
		want   grid.Direction
		ok     bool
	}{
		{"right", 6, 1, grid.Right, true},
		{"left", -6, -1, grid.Left, true},
		{"down", 1, 3, grid.Down, true},
		{"up", 0, -2, grid.Up, true},
		{"rows count double", 3, 2, grid.Down, true},
		{"tie goes horizontal", 4, 2, grid.Right, true},
		{"click", 0, 0, 0, false},
		{"jitter", 1, 0, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir, ok := DirectionFromDrag(tt.dx, tt.dy)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.want, dir)
			}
		})
	}
}
