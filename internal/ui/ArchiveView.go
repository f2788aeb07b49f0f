package ui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/VHN27/Pacman/internal/store"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const archivePageSize = 10

// Styles for the archive table
var (
	archiveHeaderStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("15")).
				Background(lipgloss.Color("236")).
				Padding(0, 1).
				Align(lipgloss.Center)

	archiveRowStyle = lipgloss.NewStyle().
			Padding(0, 1)

	archiveSelectedRowStyle = archiveRowStyle.
				Background(lipgloss.Color("226")).
				Foreground(lipgloss.Color("0"))

	archiveBorderStyle = lipgloss.NewStyle().
				Border(lipgloss.NormalBorder(), false, false, true, false).
				BorderForeground(lipgloss.Color("8"))
)

type archivePageMsg struct {
	records []store.Record
	total   int
	err     error
}

// ArchiveModel pages through the archived mazes.
type ArchiveModel struct {
	archive      store.Storage
	records      []store.Record
	total        int
	offset       int
	selected     int
	err          error
	ScreenWidth  int
	ScreenHeight int
}

func NewArchiveModel(archive store.Storage, w, h int) ArchiveModel {
	return ArchiveModel{archive: archive, ScreenWidth: w, ScreenHeight: h}
}

func (m ArchiveModel) Init() tea.Cmd {
	return m.loadPage(0)
}

func (m ArchiveModel) loadPage(offset int) tea.Cmd {
	archive := m.archive
	return func() tea.Msg {
		if archive == nil {
			return archivePageMsg{err: fmt.Errorf("the maze archive is disabled")}
		}
		records, err := archive.List(archivePageSize, offset)
		if err != nil {
			return archivePageMsg{err: err}
		}
		total, err := archive.Count()
		return archivePageMsg{records: records, total: total, err: err}
	}
}

func (m ArchiveModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.ScreenWidth = msg.Width
		m.ScreenHeight = msg.Height

	case archivePageMsg:
		m.records, m.total, m.err = msg.records, msg.total, msg.err
		m.selected = 0

	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			return m, func() tea.Msg { return BackMsg{} }
		case "up", "k":
			if m.selected > 0 {
				m.selected--
			}
		case "down", "j":
			if m.selected < len(m.records)-1 {
				m.selected++
			}
		case "right", "l":
			if m.offset+archivePageSize < m.total {
				m.offset += archivePageSize
				return m, m.loadPage(m.offset)
			}
		case "left", "h":
			if m.offset > 0 {
				m.offset = max(m.offset-archivePageSize, 0)
				return m, m.loadPage(m.offset)
			}
		case "enter":
			if len(m.records) > 0 {
				id := m.records[m.selected].ID
				return m, func() tea.Msg { return ReplayMsg{ID: id} }
			}
		}
	}
	return m, nil
}

func (m ArchiveModel) View() string {
	var tableContent strings.Builder

	idWidth, sizeWidth, seedWidth, pelletWidth, dateWidth := 6, 9, 21, 9, 18

	header := lipgloss.JoinHorizontal(lipgloss.Top,
		archiveHeaderStyle.Width(idWidth).Render("#"),
		archiveHeaderStyle.Width(sizeWidth).Render("Size"),
		archiveHeaderStyle.Width(seedWidth).Render("Seed"),
		archiveHeaderStyle.Width(pelletWidth).Render("Pellets"),
		archiveHeaderStyle.Width(dateWidth).Render("Created"),
	)
	tableContent.WriteString(header + "\n")

	for i, r := range m.records {
		style := archiveRowStyle
		if i == m.selected {
			style = archiveSelectedRowStyle
		}
		row := lipgloss.JoinHorizontal(lipgloss.Top,
			style.Width(idWidth).Render(strconv.FormatInt(r.ID, 10)),
			style.Width(sizeWidth).Render(fmt.Sprintf("%dx%d", r.Height, r.Width)),
			style.Width(seedWidth).Render(strconv.FormatInt(r.Seed, 10)),
			style.Width(pelletWidth).Render(strconv.Itoa(r.Pellets)),
			style.Width(dateWidth).Render(r.CreatedAt.Format("2006-01-02 15:04")),
		)
		tableContent.WriteString(archiveBorderStyle.Render(row) + "\n")
	}

	var status string
	switch {
	case m.err != nil:
		status = errorStyle.Render(m.err.Error())
	case m.total == 0:
		status = "No mazes archived yet."
	default:
		last := m.offset + len(m.records)
		status = fmt.Sprintf("%d-%d of %d", m.offset+1, last, m.total)
	}

	title := lipgloss.NewStyle().Bold(true).Padding(1, 0).Render("MAZE ARCHIVE")
	instruction := lipgloss.NewStyle().Faint(true).Margin(1, 0).
		Render("up/down select, left/right page, enter open, esc back")

	finalContent := lipgloss.JoinVertical(lipgloss.Center,
		title,
		tableContent.String(),
		status,
		instruction,
	)

	return lipgloss.Place(m.ScreenWidth, m.ScreenHeight,
		lipgloss.Center, lipgloss.Center,
		lipgloss.NewStyle().Border(lipgloss.ThickBorder()).Render(finalContent),
	)
}
