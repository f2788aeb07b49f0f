package ui

import (
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/VHN27/Pacman/internal/catalog"
	"github.com/VHN27/Pacman/internal/maze"
	"github.com/VHN27/Pacman/internal/store"
	tea "github.com/charmbracelet/bubbletea"
)

func newTestController(t *testing.T) ControllerModel {
	t.Helper()
	cat, err := catalog.LoadDefault()
	if err != nil {
		t.Fatalf("LoadDefault: %v", err)
	}
	gen, err := maze.NewGenerator(cat, maze.NewConfig(), nil)
	if err != nil {
		t.Fatalf("NewGenerator: %v", err)
	}
	archive, err := store.NewSqliteStore(filepath.Join(t.TempDir(), "ui.db"))
	if err != nil {
		t.Fatalf("NewSqliteStore: %v", err)
	}
	t.Cleanup(func() { archive.Close() })
	return NewControllerModel(context.Background(), gen, archive, 120, 60)
}

func press(m ControllerModel, keys ...string) ControllerModel {
	for _, k := range keys {
		next, _ := m.Update(key(k))
		m = next.(ControllerModel)
	}
	return m
}

// send delivers msg and then runs the returned command once, feeding its
// message back, the way a program would for a single step.
func send(t *testing.T, m ControllerModel, msg tea.Msg) ControllerModel {
	t.Helper()
	next, cmd := m.Update(msg)
	m = next.(ControllerModel)
	if cmd == nil {
		return m
	}
	if out := cmd(); out != nil {
		if _, isBatch := out.(tea.BatchMsg); !isBatch {
			next, _ = m.Update(out)
			m = next.(ControllerModel)
		}
	}
	return m
}

func key(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestGenerateFromSetupForm(t *testing.T) {
	m := newTestController(t)

	m = send(t, m, IntroSubmitMsg(0))
	if m.CurrentScreen != SetupScreen {
		t.Fatalf("screen %d, want setup", m.CurrentScreen)
	}

	m = press(m, "2", "7", "tab", "3", "0", "tab", "7", "tab")
	_, cmd := m.SetupModel.Update(key("enter"))
	if cmd == nil {
		t.Fatal("enter on the submit button sent nothing")
	}
	req, ok := cmd().(SetupSubmitMsg)
	if !ok || req != (SetupSubmitMsg{Height: 27, Width: 30, Seed: 7}) {
		t.Fatalf("form submitted %+v", req)
	}

	m = send(t, m, req)
	if m.CurrentScreen != MazeScreen {
		t.Fatalf("screen %d, want maze", m.CurrentScreen)
	}
	view := m.View()
	if !strings.Contains(view, "27x30") || !strings.Contains(view, "Seed      7") {
		t.Errorf("maze view lacks the stats:\n%s", view)
	}

	n, err := m.Archive.Count()
	if err != nil || n != 1 {
		t.Errorf("archive count = %d, %v, want 1", n, err)
	}

	m = send(t, m, key("esc"))
	if m.CurrentScreen != IntroScreen {
		t.Errorf("screen %d after esc, want intro", m.CurrentScreen)
	}
}

func TestSetupRequest(t *testing.T) {
	s := NewInitialSetupModel(80, 24)
	req, err := s.request()
	if err != nil || req != (SetupSubmitMsg{Height: DefaultHeight, Width: DefaultWidth}) {
		t.Errorf("empty form = %+v, %v", req, err)
	}

	s.inputs[seedField].SetValue("-")
	if _, err := s.request(); err == nil {
		t.Error("a lone minus sign was accepted as a seed")
	}

	s.inputs[seedField].SetValue("-12")
	s.inputs[heightField].SetValue("41")
	req, err = s.request()
	if err != nil || req.Seed != -12 || req.Height != 41 || req.Width != DefaultWidth {
		t.Errorf("filled form = %+v, %v", req, err)
	}
}

func TestArchiveReplay(t *testing.T) {
	m := newTestController(t)
	mz, err := m.Generator.Generate(context.Background(), 25, 26, 3)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	id, err := m.Archive.Save(mz)
	if err != nil {
		t.Fatalf("Save: %v", err)
	}

	m = send(t, m, IntroSubmitMsg(1))
	if m.CurrentScreen != ArchiveScreen {
		t.Fatalf("screen %d, want archive", m.CurrentScreen)
	}
	if !strings.Contains(m.View(), "1-1 of 1") {
		t.Errorf("archive view lacks the page status:\n%s", m.View())
	}

	if _, cmd := m.ArchiveModel.Update(key("enter")); cmd == nil || cmd() != (ReplayMsg{ID: id}) {
		t.Fatal("enter on the archive row did not ask for a replay")
	}
	m = send(t, m, ReplayMsg{ID: id})
	if m.CurrentScreen != MazeScreen {
		t.Fatalf("screen %d, want maze", m.CurrentScreen)
	}
	if !strings.Contains(m.View(), "Archive #1") {
		t.Errorf("maze view does not name the archive entry:\n%s", m.View())
	}
}

func TestGenerationFailureReturnsToSetup(t *testing.T) {
	m := newTestController(t)
	m = send(t, m, IntroSubmitMsg(0))
	m = send(t, m, generationFailedMsg{err: &maze.GenerationError{Height: 25, Width: 26, Attempts: 3}})
	if m.CurrentScreen != SetupScreen {
		t.Fatalf("screen %d, want setup", m.CurrentScreen)
	}
	if !strings.Contains(m.View(), "after 3 attempts") {
		t.Errorf("setup view does not show the failure:\n%s", m.View())
	}
}
