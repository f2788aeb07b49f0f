package ui

import (
	"context"

	"github.com/VHN27/Pacman/internal/maze"
	"github.com/VHN27/Pacman/internal/store"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
)

type Screen int

const (
	IntroScreen Screen = iota
	SetupScreen
	GeneratingScreen
	MazeScreen
	ArchiveScreen
)

// Messages for state transitions
type IntroSubmitMsg int // 0 for Generate, 1 for Archive
type SetupSubmitMsg struct {
	Height int
	Width  int
	Seed   int64
}

// BackMsg returns to the main menu.
type BackMsg struct{}

// ReplayMsg opens an archived maze.
type ReplayMsg struct {
	ID int64
}

type mazeReadyMsg struct {
	maze *maze.Maze
	id   int64
}

// generationFailedMsg is forwarded to the setup form, which shows it.
type generationFailedMsg struct {
	err error
}

type ControllerModel struct {
	CurrentScreen Screen
	Generator     *maze.Generator
	Archive       store.Storage

	IntroModel   tea.Model
	SetupModel   tea.Model
	MazeModel    tea.Model
	ArchiveModel tea.Model

	ctx          context.Context
	ScreenWidth  int
	ScreenHeight int
}

// NewControllerModel wires the screens. archive may be nil; generated mazes
// are then not kept and the archive screen says so.
func NewControllerModel(ctx context.Context, gen *maze.Generator, archive store.Storage, screenWidth int, screenHeight int) ControllerModel {
	return ControllerModel{
		Generator:     gen,
		Archive:       archive,
		CurrentScreen: IntroScreen,

		IntroModel: NewIntroModel(screenWidth, screenHeight),
		SetupModel: NewInitialSetupModel(screenWidth, screenHeight),

		ctx:          ctx,
		ScreenWidth:  screenWidth,
		ScreenHeight: screenHeight,
	}
}

func (m ControllerModel) Init() tea.Cmd {
	return m.IntroModel.Init()
}

func (m ControllerModel) View() string {
	switch m.CurrentScreen {
	case IntroScreen:
		return m.IntroModel.View()
	case SetupScreen:
		return m.SetupModel.View()
	case GeneratingScreen:
		return "Generating maze..."
	case MazeScreen:
		if m.MazeModel != nil {
			return m.MazeModel.View()
		}
		return "Maze Loading..."
	case ArchiveScreen:
		if m.ArchiveModel != nil {
			return m.ArchiveModel.View()
		}
		return "Archive Loading..."
	default:
		return "Unknown Screen"
	}
}

func (m ControllerModel) generate(req SetupSubmitMsg) tea.Cmd {
	ctx, gen, archive := m.ctx, m.Generator, m.Archive
	return func() tea.Msg {
		mz, err := gen.Generate(ctx, req.Height, req.Width, req.Seed)
		if err != nil {
			log.Warn("Generation failed", "height", req.Height, "width", req.Width, "error", err)
			return generationFailedMsg{err: err}
		}
		var id int64
		if archive != nil {
			if id, err = archive.Save(mz); err != nil {
				log.Error("Failed to archive maze", "error", err)
			}
		}
		return mazeReadyMsg{maze: mz, id: id}
	}
}

func (m ControllerModel) replay(id int64) tea.Cmd {
	archive := m.Archive
	return func() tea.Msg {
		rec, err := archive.Load(id)
		if err != nil {
			log.Error("Failed to load maze", "id", id, "error", err)
			return BackMsg{}
		}
		mz, err := rec.Maze()
		if err != nil {
			log.Error("Archived maze is corrupt", "id", id, "error", err)
			return BackMsg{}
		}
		return mazeReadyMsg{maze: mz, id: rec.ID}
	}
}

func (m ControllerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	var cmds []tea.Cmd

	if msg, ok := msg.(tea.KeyMsg); ok {
		if msg.String() == "ctrl+c" || (msg.String() == "q" && m.CurrentScreen != SetupScreen) {
			return m, tea.Quit
		}
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.ScreenWidth = msg.Width
		m.ScreenHeight = msg.Height
		for _, sub := range []*tea.Model{&m.IntroModel, &m.SetupModel, &m.MazeModel, &m.ArchiveModel} {
			if *sub != nil {
				*sub, cmd = (*sub).Update(msg)
				cmds = append(cmds, cmd)
			}
		}

	case IntroSubmitMsg:
		if msg == 0 {
			m.CurrentScreen = SetupScreen
			return m, m.SetupModel.Init()
		}
		m.CurrentScreen = ArchiveScreen
		m.ArchiveModel = NewArchiveModel(m.Archive, m.ScreenWidth, m.ScreenHeight)
		return m, m.ArchiveModel.Init()

	case SetupSubmitMsg:
		m.CurrentScreen = GeneratingScreen
		return m, m.generate(msg)

	case generationFailedMsg:
		m.CurrentScreen = SetupScreen
		m.SetupModel, cmd = m.SetupModel.Update(msg)
		return m, cmd

	case ReplayMsg:
		m.CurrentScreen = GeneratingScreen
		return m, m.replay(msg.ID)

	case mazeReadyMsg:
		m.CurrentScreen = MazeScreen
		m.MazeModel = NewMazeModel(msg.maze, msg.id, m.ScreenWidth, m.ScreenHeight)
		return m, m.MazeModel.Init()

	case BackMsg:
		m.CurrentScreen = IntroScreen
		return m, m.IntroModel.Init()

	default:
		switch m.CurrentScreen {
		case IntroScreen:
			m.IntroModel, cmd = m.IntroModel.Update(msg)
			cmds = append(cmds, cmd)
		case SetupScreen:
			m.SetupModel, cmd = m.SetupModel.Update(msg)
			cmds = append(cmds, cmd)
		case MazeScreen:
			if m.MazeModel != nil {
				m.MazeModel, cmd = m.MazeModel.Update(msg)
				cmds = append(cmds, cmd)
			}
		case ArchiveScreen:
			if m.ArchiveModel != nil {
				m.ArchiveModel, cmd = m.ArchiveModel.Update(msg)
				cmds = append(cmds, cmd)
			}
		}
	}

	return m, tea.Batch(cmds...)
}
