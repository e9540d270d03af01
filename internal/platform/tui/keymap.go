package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-2048/internal/grid"
)

// Action is a semantic intent derived from a key press or drag.
type Action int

const (
	ActionNone Action = iota
	ActionMove
	ActionRestart
	ActionScores
	ActionHelp
	ActionQuit
)

// minDrag is the smallest mouse displacement, in cells, treated as a swipe.
const minDrag = 2

// GameKeyMap defines the key bindings for the board.
type GameKeyMap struct {
	Up      key.Binding
	Down    key.Binding
	Left    key.Binding
	Right   key.Binding
	Restart key.Binding
	Scores  key.Binding
	Help    key.Binding
	Quit    key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k GameKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Left, k.Right, k.Restart, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k GameKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right},
		{k.Restart, k.Scores, k.Help, k.Quit},
	}
}

// DefaultGameKeyMap returns default key bindings: arrows, WASD and vim keys.
func DefaultGameKeyMap() GameKeyMap {
	return GameKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "w", "k"),
			key.WithHelp("↑/w/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "s", "j"),
			key.WithHelp("↓/s/j", "down"),
		),
		Left: key.NewBinding(
			key.WithKeys("left", "a", "h"),
			key.WithHelp("←/a/h", "left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "d", "l"),
			key.WithHelp("→/d/l", "right"),
		),
		Restart: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "restart"),
		),
		Scores: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "scores"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "more keys"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// KeyMapper translates Bubble Tea key messages to game actions.
// This centralizes key bindings and makes them testable.
type KeyMapper struct {
	keys GameKeyMap
}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{keys: DefaultGameKeyMap()}
}

// Keys returns the bindings, for help rendering.
func (km *KeyMapper) Keys() GameKeyMap {
	return km.keys
}

// MapKey translates a key message to an action. For ActionMove the
// direction is also returned.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (Action, grid.Direction) {
	switch {
	case key.Matches(msg, km.keys.Quit):
		return ActionQuit, 0
	case key.Matches(msg, km.keys.Up):
		return ActionMove, grid.Up
	case key.Matches(msg, km.keys.Down):
		return ActionMove, grid.Down
	case key.Matches(msg, km.keys.Left):
		return ActionMove, grid.Left
	case key.Matches(msg, km.keys.Right):
		return ActionMove, grid.Right
	case key.Matches(msg, km.keys.Restart):
		return ActionRestart, 0
	case key.Matches(msg, km.keys.Scores):
		return ActionScores, 0
	case key.Matches(msg, km.keys.Help):
		return ActionHelp, 0
	}
	return ActionNone, 0
}

// DirectionFromDrag converts a pointer displacement into a swipe direction
// by comparing horizontal and vertical magnitude. Terminal cells are about
// twice as tall as they are wide, so dy counts double. Drags shorter than
// minDrag are not swipes.
func DirectionFromDrag(dx, dy int) (grid.Direction, bool) {
	ax, ay := abs(dx), abs(dy)*2
	if max(ax, ay) < minDrag {
		return 0, false
	}
	if ax >= ay {
		if dx > 0 {
			return grid.Right, true
		}
		return grid.Left, true
	}
	if dy > 0 {
		return grid.Down, true
	}
	return grid.Up, true
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
