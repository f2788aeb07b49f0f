package feed

import (
	"encoding/json"
	"strings"

	"github.com/VHN27/Pacman/internal/maze"
)

// MessageType defines the type of message being sent
type MessageType string

const (
	MessageTypeGenerate MessageType = "generate"
	MessageTypeReplay   MessageType = "replay"
	MessageTypeList     MessageType = "list"
	MessageTypeMaze     MessageType = "maze"
	MessageTypeArchive  MessageType = "archive"
	MessageTypeError    MessageType = "error"
)

// Error codes sent in ErrorMessage.Code.
const (
	CodeUnknownType      = "UNKNOWN_MESSAGE_TYPE"
	CodeBadRequest       = "BAD_REQUEST"
	CodeGenerationFailed = "GENERATION_FAILED"
	CodeNotFound         = "NOT_FOUND"
	CodeNoArchive        = "NO_ARCHIVE"
	CodeInternal         = "INTERNAL"
)

// BaseMessage is the envelope of every message in both directions.
type BaseMessage struct {
	Type    MessageType `json:"type"`
	Payload interface{} `json:"payload"`
}

// GenerateRequest asks for a fresh maze. A zero seed picks a random one.
type GenerateRequest struct {
	Height int   `json:"height"`
	Width  int   `json:"width"`
	Seed   int64 `json:"seed"`
}

// ReplayRequest asks for an archived maze.
type ReplayRequest struct {
	ID int64 `json:"id"`
}

// ListRequest asks for a page of the archive.
type ListRequest struct {
	Limit  int `json:"limit"`
	Offset int `json:"offset"`
}

// MazeMessage carries a maze in its text layout, one string per row.
type MazeMessage struct {
	ID                 int64         `json:"id,omitempty"`
	Height             int           `json:"height"`
	Width              int           `json:"width"`
	Seed               int64         `json:"seed"`
	Attempts           int           `json:"attempts"`
	Pellets            int           `json:"pellets"`
	GhostSpawn         [2]maze.Point `json:"ghost_spawn"`
	GhostSpawnEntrance maze.Point    `json:"ghost_spawn_entrance"`
	Rows               []string      `json:"rows"`
}

type ArchiveEntry struct {
	ID        int64  `json:"id"`
	Height    int    `json:"height"`
	Width     int    `json:"width"`
	Seed      int64  `json:"seed"`
	Pellets   int    `json:"pellets"`
	CreatedAt string `json:"created_at"`
}

type ArchiveMessage struct {
	Total int            `json:"total"`
	Mazes []ArchiveEntry `json:"mazes"`
}

// ErrorMessage represents an error response
type ErrorMessage struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func newMazeMessage(id int64, m *maze.Maze) MazeMessage {
	return MazeMessage{
		ID:                 id,
		Height:             m.Height,
		Width:              m.Width,
		Seed:               m.Seed,
		Attempts:           m.Attempts,
		Pellets:            m.CountPellets(),
		GhostSpawn:         m.GhostSpawn(),
		GhostSpawnEntrance: m.GhostSpawnEntrance(),
		Rows:               strings.Split(strings.TrimSuffix(m.String(), "\n"), "\n"),
	}
}

// decodePayload converts a generically decoded payload into v.
func decodePayload(payload interface{}, v interface{}) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	return json.Unmarshal(data, v)
}
