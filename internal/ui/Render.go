package ui

import (
	"strings"

	"github.com/VHN27/Pacman/internal/maze"
	"github.com/charmbracelet/lipgloss"
)

var (
	wallColor = lipgloss.Color("21")
	dotColor  = lipgloss.Color("223")

	edgeStyle      = lipgloss.NewStyle().Background(wallColor)
	dotStyle       = lipgloss.NewStyle().Foreground(dotColor)
	energizerStyle = lipgloss.NewStyle().Foreground(dotColor).Bold(true)
	spawnStyle     = lipgloss.NewStyle().Background(lipgloss.Color("53"))
	tunnelStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))

	mapViewStyle = lipgloss.NewStyle().
			Border(lipgloss.DoubleBorder()).
			BorderForeground(lipgloss.Color("240"))
)

// Every maze cell is two terminal columns wide so the maze keeps its shape.
const blank = "  "

// cellGlyph renders one cell. Walls are only painted where they face a
// walkable cell, the solid inside of a wall block stays dark.
func cellGlyph(m *maze.Maze, y, x int) string {
	c := m.Outline(y, x)
	if c.HasWall() {
		return edgeStyle.Render(blank)
	}
	switch c.Content {
	case maze.ContentDot:
		return dotStyle.Render("· ")
	case maze.ContentEnergizer:
		return energizerStyle.Render("● ")
	case maze.ContentSpawn:
		return spawnStyle.Render(blank)
	case maze.ContentTunnel:
		return tunnelStyle.Render("░░")
	}
	return blank
}

// RenderMaze draws the whole maze, margins included.
func RenderMaze(m *maze.Maze) string {
	var b strings.Builder
	for y := 0; y < m.Rows(); y++ {
		for x := 0; x < m.Cols(); x++ {
			b.WriteString(cellGlyph(m, y, x))
		}
		if y < m.Rows()-1 {
			b.WriteByte('\n')
		}
	}
	return mapViewStyle.Render(b.String())
}
