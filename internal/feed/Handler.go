package feed

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/VHN27/Pacman/internal/maze"
	"github.com/VHN27/Pacman/internal/store"
	"github.com/charmbracelet/log"
	"github.com/gorilla/websocket"
)

const defaultListLimit = 20

// Handler serves the maze feed on a websocket: clients ask for fresh mazes,
// archived ones, or a page of the archive.
type Handler struct {
	gen      *maze.Generator
	archive  store.Storage
	upgrader websocket.Upgrader
}

// NewHandler builds a feed handler. archive may be nil, in which case mazes
// are not archived and replay requests fail.
func NewHandler(gen *maze.Generator, archive store.Storage) *Handler {
	return &Handler{
		gen:     gen,
		archive: archive,
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool { return true },
		},
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ws, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Error("Failed to upgrade connection", "remote", r.RemoteAddr, "error", err)
		return
	}
	log.Info("Feed client connected", "remote", ws.RemoteAddr())

	conn := NewConnection(ws)
	go conn.WritePump()
	conn.ReadPump(&session{ctx: r.Context(), handler: h})
	conn.Close()
	log.Info("Feed client disconnected", "remote", ws.RemoteAddr())
}

// session handles the messages of one client.
type session struct {
	ctx     context.Context
	handler *Handler
}

func (s *session) HandleMessage(conn *Connection, message []byte) {
	var baseMsg BaseMessage
	if err := json.Unmarshal(message, &baseMsg); err != nil {
		sendError(conn, CodeBadRequest, "message is not valid JSON")
		return
	}

	switch baseMsg.Type {
	case MessageTypeGenerate:
		s.handleGenerate(conn, baseMsg.Payload)
	case MessageTypeReplay:
		s.handleReplay(conn, baseMsg.Payload)
	case MessageTypeList:
		s.handleList(conn, baseMsg.Payload)
	default:
		log.Debug("Unknown message type", "type", baseMsg.Type)
		sendError(conn, CodeUnknownType, "Unknown message type received")
	}
}

func (s *session) handleGenerate(conn *Connection, payload interface{}) {
	var req GenerateRequest
	if err := decodePayload(payload, &req); err != nil {
		sendError(conn, CodeBadRequest, "malformed generate request")
		return
	}

	m, err := s.handler.gen.Generate(s.ctx, req.Height, req.Width, req.Seed)
	if err != nil {
		log.Warn("Generation failed", "height", req.Height, "width", req.Width, "error", err)
		code := CodeInternal
		if errors.Is(err, maze.ErrGenerationFailed) {
			code = CodeGenerationFailed
		}
		sendError(conn, code, err.Error())
		return
	}

	var id int64
	if s.handler.archive != nil {
		id, err = s.handler.archive.Save(m)
		if err != nil {
			log.Error("Failed to archive maze", "error", err)
		}
	}
	log.Info("Maze sent", "id", id, "height", m.Height, "width", m.Width, "seed", m.Seed)
	conn.SendMessage(BaseMessage{Type: MessageTypeMaze, Payload: newMazeMessage(id, m)})
}

func (s *session) handleReplay(conn *Connection, payload interface{}) {
	if s.handler.archive == nil {
		sendError(conn, CodeNoArchive, "the maze archive is disabled")
		return
	}
	var req ReplayRequest
	if err := decodePayload(payload, &req); err != nil {
		sendError(conn, CodeBadRequest, "malformed replay request")
		return
	}

	rec, err := s.handler.archive.Load(req.ID)
	if errors.Is(err, store.ErrNotFound) {
		sendError(conn, CodeNotFound, err.Error())
		return
	}
	if err != nil {
		log.Error("Failed to load maze", "id", req.ID, "error", err)
		sendError(conn, CodeInternal, "could not load the maze")
		return
	}
	m, err := rec.Maze()
	if err != nil {
		log.Error("Archived maze is corrupt", "id", req.ID, "error", err)
		sendError(conn, CodeInternal, "could not load the maze")
		return
	}
	conn.SendMessage(BaseMessage{Type: MessageTypeMaze, Payload: newMazeMessage(rec.ID, m)})
}

func (s *session) handleList(conn *Connection, payload interface{}) {
	if s.handler.archive == nil {
		sendError(conn, CodeNoArchive, "the maze archive is disabled")
		return
	}
	req := ListRequest{Limit: defaultListLimit}
	if payload != nil {
		if err := decodePayload(payload, &req); err != nil {
			sendError(conn, CodeBadRequest, "malformed list request")
			return
		}
	}
	if req.Limit <= 0 {
		req.Limit = defaultListLimit
	}

	records, err := s.handler.archive.List(req.Limit, req.Offset)
	if err != nil {
		log.Error("Failed to list mazes", "error", err)
		sendError(conn, CodeInternal, "could not list the archive")
		return
	}
	total, err := s.handler.archive.Count()
	if err != nil {
		log.Error("Failed to count mazes", "error", err)
		sendError(conn, CodeInternal, "could not list the archive")
		return
	}

	msg := ArchiveMessage{Total: total, Mazes: make([]ArchiveEntry, 0, len(records))}
	for _, r := range records {
		msg.Mazes = append(msg.Mazes, ArchiveEntry{
			ID:        r.ID,
			Height:    r.Height,
			Width:     r.Width,
			Seed:      r.Seed,
			Pellets:   r.Pellets,
			CreatedAt: r.CreatedAt.Format(time.RFC3339),
		})
	}
	conn.SendMessage(BaseMessage{Type: MessageTypeArchive, Payload: msg})
}

func sendError(conn *Connection, code, message string) {
	conn.SendMessage(BaseMessage{
		Type:    MessageTypeError,
		Payload: ErrorMessage{Code: code, Message: message},
	})
}
