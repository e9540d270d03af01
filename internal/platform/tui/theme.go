package tui

import (
	"github.com/charmbracelet/lipgloss"
)

// tileWidth and tileHeight are the rendered size of one cell, in terminal cells.
const (
	tileWidth  = 7
	tileHeight = 3
)

// Theme contains the visual styles for the board and HUD.
type Theme struct {
	// Tile backgrounds by value; values above the last entry use Super
	Tiles map[int]lipgloss.Style
	Super lipgloss.Style
	Empty lipgloss.Style

	// Board frame
	Board lipgloss.Style

	// HUD styles
	Title      lipgloss.Style
	ScoreLabel lipgloss.Style
	ScoreValue lipgloss.Style
	Muted      lipgloss.Style

	// Overlay styles
	Overlay      lipgloss.Style
	OverlayTitle lipgloss.Style
}

// tile returns the base style for a tile at the configured size.
func tile(bg, fg string) lipgloss.Style {
	return lipgloss.NewStyle().
		Width(tileWidth).
		Height(tileHeight).
		Align(lipgloss.Center, lipgloss.Center).
		Background(lipgloss.Color(bg)).
		Foreground(lipgloss.Color(fg)).
		Bold(true)
}

// DefaultTheme returns the default visual theme.
func DefaultTheme() Theme {
	return Theme{
		Tiles: map[int]lipgloss.Style{
			2:    tile("255", "240"),
			4:    tile("230", "240"),
			8:    tile("215", "231"),
			16:   tile("209", "231"),
			32:   tile("203", "231"),
			64:   tile("196", "231"),
			128:  tile("229", "236"),
			256:  tile("228", "236"),
			512:  tile("227", "236"),
			1024: tile("226", "236"),
			2048: tile("220", "231"),
		},
		Super: tile("236", "231"),
		Empty: tile("250", "250"),

		Board: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("245")).
			Background(lipgloss.Color("245")),

		Title:      lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("220")),
		ScoreLabel: lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		ScoreValue: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("231")),
		Muted:      lipgloss.NewStyle().Foreground(lipgloss.Color("240")),

		Overlay: lipgloss.NewStyle().
			Border(lipgloss.DoubleBorder()).
			BorderForeground(lipgloss.Color("196")).
			Padding(0, 2),
		OverlayTitle: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("196")),
	}
}

// TileStyle returns the style for a tile value.
func (t Theme) TileStyle(value int) lipgloss.Style {
	if value == 0 {
		return t.Empty
	}
	if s, ok := t.Tiles[value]; ok {
		return s
	}
	return t.Super
}
