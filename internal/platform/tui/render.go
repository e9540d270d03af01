package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-2048/internal/grid"
	"github.com/vovakirdan/tui-2048/internal/session"
)

// RenderBoard draws the grid as colored tiles. When highlight is non-nil
// that cell is drawn with the theme's spawn marker.
func RenderBoard(g grid.Grid, highlight *grid.Cell, theme Theme) string {
	gap := lipgloss.NewStyle().
		Width(1).
		Height(tileHeight).
		Background(theme.Board.GetBackground()).
		Render("")

	rows := make([]string, 0, len(g)*2)
	for r, row := range g {
		if r > 0 {
			rows = append(rows, lipgloss.NewStyle().
				Background(theme.Board.GetBackground()).
				Render(strings.Repeat(" ", len(row)*(tileWidth+1)-1)))
		}

		cells := make([]string, 0, len(row)*2)
		for c, v := range row {
			if c > 0 {
				cells = append(cells, gap)
			}
			style := theme.TileStyle(v)
			label := ""
			if v != 0 {
				label = strconv.Itoa(v)
			}
			if highlight != nil && highlight.Row == r && highlight.Col == c {
				style = style.Underline(true)
			}
			cells = append(cells, style.Render(label))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}

	return theme.Board.Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}

// RenderHUD draws the title with score and high score.
func RenderHUD(s session.State, width int, theme Theme) string {
	score := theme.ScoreLabel.Render("SCORE ") + theme.ScoreValue.Render(strconv.Itoa(s.Score))
	best := theme.ScoreLabel.Render("BEST ") + theme.ScoreValue.Render(strconv.Itoa(s.HighScore))
	title := theme.Title.Render("2048")

	right := lipgloss.JoinHorizontal(lipgloss.Top, score, "   ", best)
	space := width - lipgloss.Width(title) - lipgloss.Width(right)
	if space < 2 {
		space = 2
	}
	return title + strings.Repeat(" ", space) + right
}

// RenderGameOver draws the game-over panel with a restart hint.
func RenderGameOver(s session.State, theme Theme) string {
	lines := []string{
		theme.OverlayTitle.Render("GAME OVER"),
		fmt.Sprintf("Score %d  ·  Max tile %d", s.Score, s.Grid.MaxTile()),
	}
	if s.Score > 0 && s.Score >= s.HighScore {
		lines = append(lines, theme.Title.Render("New best!"))
	}
	lines = append(lines, theme.Muted.Render("Press R to restart"))
	return theme.Overlay.Render(lipgloss.JoinVertical(lipgloss.Center, lines...))
}

// boardWidth returns the rendered board width for a grid of the given size.
func boardWidth(size int) int {
	return size*(tileWidth+1) - 1 + 2
}

// centerText centers text horizontally within width.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	padding := (width - w) / 2
	return strings.Repeat(" ", padding) + text
}
