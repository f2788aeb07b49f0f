package store

import (
	"errors"
	"fmt"
	"time"

	"github.com/VHN27/Pacman/internal/maze"
)

var ErrNotFound = errors.New("maze not found")

// Record is one archived maze. Layout is the text form written by
// maze.Maze.String; List leaves it empty.
type Record struct {
	ID        int64
	Height    int
	Width     int
	Seed      int64
	Attempts  int
	Pellets   int
	Layout    string
	CreatedAt time.Time
}

// Maze rebuilds the archived maze from its layout.
func (r *Record) Maze() (*maze.Maze, error) {
	m, err := maze.ParseText(r.Layout)
	if err != nil {
		return nil, fmt.Errorf("maze %d: %w", r.ID, err)
	}
	m.Seed = r.Seed
	m.Attempts = r.Attempts
	return m, nil
}

// Storage is the maze archive used for endless mode replays.
type Storage interface {
	Save(m *maze.Maze) (int64, error)
	Load(id int64) (*Record, error)
	List(limit, offset int) ([]Record, error)
	Count() (int, error)
	Close() error
}

// Open picks the backend the way deployments configure it: "postgres" uses
// dsn as a connection string, anything else opens a SQLite file at dsn.
func Open(dbType, dsn string) (Storage, error) {
	if dbType == "postgres" {
		return NewPostgresStore(dsn)
	}
	return NewSqliteStore(dsn)
}
