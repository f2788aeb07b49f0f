package ui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/VHN27/Pacman/internal/maze"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const (
	DefaultHeight = 31
	DefaultWidth  = 28
)

// Define styles
var (
	focusedColor = lipgloss.Color("226")
	blurredColor = lipgloss.Color("240")
	focusedStyle = lipgloss.NewStyle().Foreground(focusedColor)
	blurredStyle = lipgloss.NewStyle().Foreground(blurredColor)
	helpStyle    = blurredStyle
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))

	buttonStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder())

	submitButtonStyle = buttonStyle.
				BorderForeground(focusedColor).
				Padding(0, 1)

	blurredButtonStyle = buttonStyle.
				BorderForeground(blurredColor).
				Padding(0, 1)
)

const (
	heightField = iota
	widthField
	seedField
	submitField
)

// SetupModel is the form asking for the maze size and seed.
type SetupModel struct {
	inputs     []textinput.Model
	focusIndex int
	err        string
	width      int
	height     int
}

func newNumberInput(placeholder string, limit int) textinput.Model {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.CharLimit = limit
	ti.Width = 20
	ti.Validate = func(s string) error {
		if strings.TrimLeft(s, "-0123456789") != "" {
			return fmt.Errorf("%q is not a number", s)
		}
		return nil
	}
	return ti
}

func NewInitialSetupModel(w, h int) SetupModel {
	inputs := []textinput.Model{
		newNumberInput(fmt.Sprintf("Height %d..%d (%d)", maze.MinHeight, maze.MaxHeight, DefaultHeight), 2),
		newNumberInput(fmt.Sprintf("Width %d..%d (%d)", maze.MinWidth, maze.MaxWidth, DefaultWidth), 2),
		newNumberInput("Seed (random)", 19),
	}
	m := SetupModel{inputs: inputs, width: w, height: h}
	m.setFocus(heightField)
	return m
}

// Init sends a command to start the cursor blinking
func (m SetupModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *SetupModel) setFocus(i int) {
	m.focusIndex = i
	for j := range m.inputs {
		if j == i {
			m.inputs[j].Focus()
			m.inputs[j].PromptStyle = focusedStyle
			m.inputs[j].TextStyle = focusedStyle
		} else {
			m.inputs[j].Blur()
			m.inputs[j].PromptStyle = blurredStyle
			m.inputs[j].TextStyle = blurredStyle
		}
	}
}

// request parses the form. Empty fields take their defaults, an empty seed
// asks for a random maze.
func (m SetupModel) request() (SetupSubmitMsg, error) {
	fields := [3]int64{DefaultHeight, DefaultWidth, 0}
	names := [3]string{"height", "width", "seed"}
	for i, in := range m.inputs {
		v := strings.TrimSpace(in.Value())
		if v == "" {
			continue
		}
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return SetupSubmitMsg{}, fmt.Errorf("%s must be a whole number", names[i])
		}
		fields[i] = n
	}
	return SetupSubmitMsg{Height: int(fields[0]), Width: int(fields[1]), Seed: fields[2]}, nil
}

func (m SetupModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case generationFailedMsg:
		m.err = msg.err.Error()
		return m, nil

	case tea.KeyMsg:
		switch s := msg.String(); s {
		case "ctrl+c":
			return m, tea.Quit
		case "esc":
			return m, func() tea.Msg { return BackMsg{} }
		case "tab", "down":
			m.setFocus((m.focusIndex + 1) % (submitField + 1))
			return m, nil
		case "shift+tab", "up":
			m.setFocus((m.focusIndex + submitField) % (submitField + 1))
			return m, nil
		case "enter":
			if m.focusIndex != submitField {
				m.setFocus(m.focusIndex + 1)
				return m, nil
			}
			req, err := m.request()
			if err != nil {
				m.err = err.Error()
				return m, nil
			}
			m.err = ""
			return m, func() tea.Msg { return req }
		}
	}

	if m.focusIndex < submitField {
		var cmd tea.Cmd
		m.inputs[m.focusIndex], cmd = m.inputs[m.focusIndex].Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m SetupModel) View() string {
	center := func(s string) string {
		return lipgloss.NewStyle().Width(m.width).Align(lipgloss.Center).Render(s)
	}

	var b strings.Builder
	b.WriteString(center(focusedStyle.Bold(true).Render("New maze")))
	b.WriteString("\n\n")
	for _, in := range m.inputs {
		b.WriteString(center(in.View()))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	submitText := "Generate"
	submitButton := blurredButtonStyle.Render(submitText)
	if m.focusIndex == submitField {
		submitButton = submitButtonStyle.Render(submitText)
	}
	b.WriteString(center(submitButton))
	b.WriteString("\n")

	if m.err != "" {
		b.WriteString(center(errorStyle.Render(m.err)))
	}
	b.WriteString("\n")
	b.WriteString(center(helpStyle.Render("(tab/shift+tab to navigate, enter to confirm, esc to go back, ctrl+c to quit)")))

	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, b.String())
}
