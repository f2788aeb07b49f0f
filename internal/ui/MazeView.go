package ui

import (
	"fmt"
	"strings"

	"github.com/VHN27/Pacman/internal/maze"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var statusPanelStyle = lipgloss.NewStyle().
	Border(lipgloss.RoundedBorder()).
	BorderForeground(lipgloss.Color("8")).
	Padding(1, 2)

// MazeModel shows one maze with its stats.
type MazeModel struct {
	maze         *maze.Maze
	id           int64
	ScreenWidth  int
	ScreenHeight int
}

func NewMazeModel(m *maze.Maze, id int64, w, h int) MazeModel {
	return MazeModel{maze: m, id: id, ScreenWidth: w, ScreenHeight: h}
}

func (m MazeModel) Init() tea.Cmd { return nil }

func (m MazeModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.ScreenWidth = msg.Width
		m.ScreenHeight = msg.Height
	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			return m, func() tea.Msg { return BackMsg{} }
		case "r":
			// Same size, fresh seed.
			req := SetupSubmitMsg{Height: m.maze.Height, Width: m.maze.Width}
			return m, func() tea.Msg { return req }
		}
	}
	return m, nil
}

func (m MazeModel) statusPanel() string {
	var b strings.Builder
	title := lipgloss.NewStyle().Bold(true).Foreground(focusedColor)
	b.WriteString(title.Render("MAZE"))
	b.WriteString("\n\n")
	if m.id > 0 {
		fmt.Fprintf(&b, "Archive #%d\n", m.id)
	}
	fmt.Fprintf(&b, "Size      %dx%d\n", m.maze.Height, m.maze.Width)
	fmt.Fprintf(&b, "Seed      %d\n", m.maze.Seed)
	if m.maze.Attempts > 0 {
		fmt.Fprintf(&b, "Attempts  %d\n", m.maze.Attempts)
	}
	fmt.Fprintf(&b, "Pellets   %d\n", m.maze.CountPellets())
	spawn := m.maze.GhostSpawnEntrance()
	fmt.Fprintf(&b, "Door      %.1f,%.0f\n", spawn.X, spawn.Y)
	b.WriteString("\n")
	b.WriteString(helpStyle.Render("r  new seed\nesc back\nq  quit"))
	return statusPanelStyle.Render(b.String())
}

func (m MazeModel) View() string {
	content := lipgloss.JoinHorizontal(lipgloss.Top, RenderMaze(m.maze), " ", m.statusPanel())
	return lipgloss.Place(m.ScreenWidth, m.ScreenHeight, lipgloss.Center, lipgloss.Center, content)
}
