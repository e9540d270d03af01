package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-2048/internal/config"
)

// sizeNames labels the board sizes shown in the picker.
var sizeNames = map[int]string{
	2: "Tiny",
	3: "Small",
	4: "Classic",
	5: "Big",
	6: "Bigger",
	7: "Huge",
	8: "Enormous",
}

// SizeKeyMap defines the key bindings for the board size picker.
type SizeKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Select key.Binding
	Quit   key.Binding
}

// DefaultSizeKeyMap returns default key bindings.
func DefaultSizeKeyMap() SizeKeyMap {
	return SizeKeyMap{
		Up:     key.NewBinding(key.WithKeys("up", "k", "w")),
		Down:   key.NewBinding(key.WithKeys("down", "j", "s")),
		Select: key.NewBinding(key.WithKeys("enter", " ")),
		Quit:   key.NewBinding(key.WithKeys("q", "esc", "ctrl+c")),
	}
}

// SizeModel lets users choose the board size before a game starts.
type SizeModel struct {
	cursor   int
	width    int
	height   int
	keys     SizeKeyMap
	theme    Theme
	chosen   bool
	quitting bool
}

// NewSizeModel creates a picker with current preselected.
func NewSizeModel(width, height, current int) SizeModel {
	cursor := current - config.MinSize
	if cursor < 0 || cursor > config.MaxSize-config.MinSize {
		cursor = 4 - config.MinSize
	}
	return SizeModel{
		cursor: cursor,
		width:  width,
		height: height,
		keys:   DefaultSizeKeyMap(),
		theme:  DefaultTheme(),
	}
}

// Init initializes the model.
func (m SizeModel) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (m SizeModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Up):
			if m.cursor > 0 {
				m.cursor--
			}
		case key.Matches(msg, m.keys.Down):
			if m.cursor < config.MaxSize-config.MinSize {
				m.cursor++
			}
		case key.Matches(msg, m.keys.Select):
			m.chosen = true
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	}
	return m, nil
}

// View renders the size list.
func (m SizeModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText(m.theme.Title.Render("2 0 4 8"), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText("Select board size:", m.width))
	b.WriteString("\n\n")

	for i := 0; i <= config.MaxSize-config.MinSize; i++ {
		size := config.MinSize + i
		cursor := "  "
		line := fmt.Sprintf("%dx%d  %s", size, size, sizeNames[size])
		if i == m.cursor {
			cursor = "> "
			line = lipgloss.NewStyle().Bold(true).Render(line)
		}
		b.WriteString(centerText(cursor+line, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText(m.theme.Muted.Render("Enter: Select  |  Q: Quit"), m.width))

	return b.String()
}

// Selected returns the chosen size, or 0 if none was chosen.
func (m SizeModel) Selected() int {
	if !m.chosen {
		return 0
	}
	return config.MinSize + m.cursor
}

// RunSizeSelector shows the picker and returns the chosen size.
// ok is false when the user quit without choosing.
func RunSizeSelector(width, height, current int) (size int, ok bool, err error) {
	p := tea.NewProgram(
		NewSizeModel(width, height, current),
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return 0, false, err
	}

	m, isSize := finalModel.(SizeModel)
	if !isSize || m.Selected() == 0 {
		return 0, false, nil
	}
	return m.Selected(), true, nil
}
