package feed

import (
	"encoding/json"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/VHN27/Pacman/internal/catalog"
	"github.com/VHN27/Pacman/internal/maze"
	"github.com/VHN27/Pacman/internal/store"
	"github.com/gorilla/websocket"
)

type reply struct {
	Type    MessageType     `json:"type"`
	Payload json.RawMessage `json:"payload"`
}

func newTestServer(t *testing.T, withArchive bool) *httptest.Server {
	t.Helper()
	cat, err := catalog.LoadDefault()
	if err != nil {
		t.Fatalf("LoadDefault: %v", err)
	}
	gen, err := maze.NewGenerator(cat, maze.NewConfig(), nil)
	if err != nil {
		t.Fatalf("NewGenerator: %v", err)
	}
	var archive store.Storage
	if withArchive {
		s, err := store.NewSqliteStore(filepath.Join(t.TempDir(), "feed.db"))
		if err != nil {
			t.Fatalf("NewSqliteStore: %v", err)
		}
		t.Cleanup(func() { s.Close() })
		archive = s
	}
	srv := httptest.NewServer(NewHandler(gen, archive))
	t.Cleanup(srv.Close)
	return srv
}

func dial(t *testing.T, srv *httptest.Server) *websocket.Conn {
	t.Helper()
	url := "ws" + strings.TrimPrefix(srv.URL, "http")
	ws, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("Dial: %v", err)
	}
	t.Cleanup(func() { ws.Close() })
	return ws
}

func exchange(t *testing.T, ws *websocket.Conn, msg BaseMessage, payload interface{}) MessageType {
	t.Helper()
	if err := ws.WriteJSON(msg); err != nil {
		t.Fatalf("WriteJSON: %v", err)
	}
	ws.SetReadDeadline(time.Now().Add(30 * time.Second))
	var r reply
	if err := ws.ReadJSON(&r); err != nil {
		t.Fatalf("ReadJSON: %v", err)
	}
	if err := json.Unmarshal(r.Payload, payload); err != nil {
		t.Fatalf("payload of %s: %v", r.Type, err)
	}
	return r.Type
}

func TestGenerateAndReplay(t *testing.T) {
	ws := dial(t, newTestServer(t, true))

	var generated MazeMessage
	typ := exchange(t, ws, BaseMessage{Type: MessageTypeGenerate, Payload: GenerateRequest{Height: 27, Width: 30, Seed: 9}}, &generated)
	if typ != MessageTypeMaze {
		t.Fatalf("reply type %s, want maze", typ)
	}
	if generated.ID == 0 || generated.Height != 27 || generated.Width != 30 || generated.Seed != 9 {
		t.Errorf("generated = %+v", generated)
	}
	if len(generated.Rows) != 27+maze.TopMargin+maze.BottomMargin {
		t.Errorf("%d rows", len(generated.Rows))
	}
	if generated.Pellets == 0 {
		t.Error("no pellets reported")
	}

	var replayed MazeMessage
	typ = exchange(t, ws, BaseMessage{Type: MessageTypeReplay, Payload: ReplayRequest{ID: generated.ID}}, &replayed)
	if typ != MessageTypeMaze {
		t.Fatalf("reply type %s, want maze", typ)
	}
	if strings.Join(replayed.Rows, "\n") != strings.Join(generated.Rows, "\n") || replayed.Seed != 9 {
		t.Error("replayed maze differs from the generated one")
	}

	var archive ArchiveMessage
	typ = exchange(t, ws, BaseMessage{Type: MessageTypeList}, &archive)
	if typ != MessageTypeArchive || archive.Total != 1 || len(archive.Mazes) != 1 || archive.Mazes[0].ID != generated.ID {
		t.Errorf("list reply %s %+v", typ, archive)
	}
}

func TestFeedErrors(t *testing.T) {
	ws := dial(t, newTestServer(t, true))

	tests := []struct {
		name string
		msg  BaseMessage
		code string
	}{
		{name: "unknown type", msg: BaseMessage{Type: "dance"}, code: CodeUnknownType},
		{name: "missing maze", msg: BaseMessage{Type: MessageTypeReplay, Payload: ReplayRequest{ID: 404}}, code: CodeNotFound},
		{name: "bad payload", msg: BaseMessage{Type: MessageTypeReplay, Payload: "seven"}, code: CodeBadRequest},
	}
	for _, tt := range tests {
		var e ErrorMessage
		typ := exchange(t, ws, tt.msg, &e)
		if typ != MessageTypeError || e.Code != tt.code {
			t.Errorf("%s: reply %s %+v, want error %s", tt.name, typ, e, tt.code)
		}
	}
}

func TestFeedWithoutArchive(t *testing.T) {
	ws := dial(t, newTestServer(t, false))

	var m MazeMessage
	if typ := exchange(t, ws, BaseMessage{Type: MessageTypeGenerate, Payload: GenerateRequest{Seed: 1}}, &m); typ != MessageTypeMaze {
		t.Fatalf("reply type %s, want maze", typ)
	}
	if m.ID != 0 || m.Height != maze.MinHeight || m.Width != maze.MinWidth {
		t.Errorf("generated = id %d, %dx%d", m.ID, m.Height, m.Width)
	}

	var e ErrorMessage
	if typ := exchange(t, ws, BaseMessage{Type: MessageTypeReplay, Payload: ReplayRequest{ID: 1}}, &e); typ != MessageTypeError || e.Code != CodeNoArchive {
		t.Errorf("replay without archive: %s %+v", typ, e)
	}
}
