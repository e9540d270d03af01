package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-2048/internal/grid"
	"github.com/vovakirdan/tui-2048/internal/session"
	"github.com/vovakirdan/tui-2048/internal/storage"
)

// ViewConfig holds display parameters for a Model.
type ViewConfig struct {
	Width  int
	Height int
	Player string
}

// Model is the Bubble Tea model for a 2048 game.
type Model struct {
	game   *session.Game
	store  *storage.Store
	config ViewConfig
	keys   *KeyMapper
	theme  Theme
	help   help.Model

	state session.State

	// Last spawned tile, shown until its highlight expires
	spawned  *grid.Cell
	spawnSeq int

	// Mouse drag origin
	dragging     bool
	dragX, dragY int

	scoreboard *ScoreboardModel
	quitting   bool
}

// NewModel creates a model over game. store may be nil, in which case the
// scoreboard is unavailable.
func NewModel(game *session.Game, store *storage.Store, cfg ViewConfig) Model {
	return Model{
		game:   game,
		store:  store,
		config: cfg,
		keys:   NewKeyMapper(),
		theme:  DefaultTheme(),
		help:   help.New(),
		state:  game.State(),
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.config.Width = wsm.Width
		m.config.Height = wsm.Height
		m.help.Width = wsm.Width
	}

	if m.scoreboard != nil {
		return m.updateScoreboard(msg)
	}

	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.MouseMsg:
		return m.handleMouse(msg)
	case highlightExpiredMsg:
		if msg.seq == m.spawnSeq {
			m.spawned = nil
		}
	}
	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action, dir := m.keys.MapKey(msg)
	switch action {
	case ActionQuit:
		m.quitting = true
		return m, tea.Quit
	case ActionMove:
		return m.swipe(dir)
	case ActionRestart:
		m.state = m.game.Restart()
		m.spawned = nil
		m.spawnSeq++
	case ActionScores:
		if m.store != nil {
			sb := NewScoreboardModel(m.store, m.config.Width, m.config.Height)
			m.scoreboard = &sb
		}
	case ActionHelp:
		m.help.ShowAll = !m.help.ShowAll
	}
	return m, nil
}

// handleMouse turns a left-button press and release into a swipe.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if msg.Button != tea.MouseButtonLeft && msg.Action != tea.MouseActionRelease {
		return m, nil
	}

	switch msg.Action {
	case tea.MouseActionPress:
		m.dragging = true
		m.dragX, m.dragY = msg.X, msg.Y
	case tea.MouseActionRelease:
		if !m.dragging {
			return m, nil
		}
		m.dragging = false
		if dir, ok := DirectionFromDrag(msg.X-m.dragX, msg.Y-m.dragY); ok {
			return m.swipe(dir)
		}
	}
	return m, nil
}

// swipe applies dir to the game and schedules the spawn highlight.
func (m Model) swipe(dir grid.Direction) (tea.Model, tea.Cmd) {
	out, err := m.game.Swipe(dir)
	if err != nil {
		// Game over: only restart or quit apply
		return m, nil
	}
	m.state = out.State
	if !out.HasSpawn {
		return m, nil
	}

	cell := out.Spawned
	m.spawned = &cell
	m.spawnSeq++
	return m, highlightCmd(m.spawnSeq)
}

// updateScoreboard forwards messages to the scoreboard until it is closed.
func (m Model) updateScoreboard(msg tea.Msg) (tea.Model, tea.Cmd) {
	sb, cmd := m.scoreboard.Update(msg)
	switch {
	case sb.IsQuitting():
		m.quitting = true
		return m, tea.Quit
	case sb.IsGoingBack():
		m.scoreboard = nil
		return m, nil
	}
	m.scoreboard = &sb
	return m, cmd
}

// State returns the last state shown.
func (m Model) State() session.State {
	return m.state
}

// View renders the board, HUD and overlays.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if m.scoreboard != nil {
		return m.scoreboard.View()
	}

	width := boardWidth(m.state.Grid.Size())
	parts := []string{
		RenderHUD(m.state, width, m.theme),
		RenderBoard(m.state.Grid, m.spawned, m.theme),
	}
	if m.state.GameOver() {
		parts = append(parts, lipgloss.PlaceHorizontal(width, lipgloss.Center, RenderGameOver(m.state, m.theme)))
	}
	if m.config.Player != "" {
		parts = append(parts, m.theme.Muted.Render(fmt.Sprintf("player: %s", m.config.Player)))
	}
	parts = append(parts, m.theme.Muted.Render(m.help.View(m.keys.Keys())))

	body := lipgloss.JoinVertical(lipgloss.Left, parts...)
	if m.config.Width <= 0 || m.config.Height <= 0 {
		return body
	}
	if lipgloss.Height(body) > m.config.Height {
		return strings.TrimRight(body, "\n")
	}
	return lipgloss.Place(m.config.Width, m.config.Height, lipgloss.Center, lipgloss.Center, body)
}

// Run starts the Bubble Tea program for game and blocks until it exits.
func Run(game *session.Game, store *storage.Store, cfg ViewConfig) error {
	model := NewModel(game, store, cfg)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	_, err := p.Run()
	return err
}
