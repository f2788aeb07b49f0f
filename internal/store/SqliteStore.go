package store

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/VHN27/Pacman/internal/maze"
	"github.com/charmbracelet/log"
	_ "github.com/mattn/go-sqlite3"
)

const (
	DefaultSqlitePath = "mazes.db"
	tableName         = "mazes"
)

type SqliteStore struct {
	db *sql.DB
}

func NewSqliteStore(path string) (*SqliteStore, error) {
	if path == "" {
		path = DefaultSqlitePath
	}
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	store := &SqliteStore{db: db}
	if err := store.createTable(); err != nil {
		db.Close()
		return nil, err
	}
	return store, nil
}

// createTable creates the mazes table if it does not exist.
func (s *SqliteStore) createTable() error {
	const createTableSQL = `
	CREATE TABLE IF NOT EXISTS ` + tableName + ` (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		height INTEGER NOT NULL,
		width INTEGER NOT NULL,
		seed INTEGER NOT NULL,
		attempts INTEGER NOT NULL,
		pellets INTEGER NOT NULL,
		layout TEXT NOT NULL,
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP
	);`

	if _, err := s.db.Exec(createTableSQL); err != nil {
		return fmt.Errorf("failed to execute CREATE TABLE: %w", err)
	}
	log.Debug("Maze table ensured", "table", tableName)
	return nil
}

func (s *SqliteStore) Save(m *maze.Maze) (int64, error) {
	const insertSQL = `
	INSERT INTO ` + tableName + ` (height, width, seed, attempts, pellets, layout)
	VALUES (?, ?, ?, ?, ?, ?);`

	res, err := s.db.Exec(insertSQL, m.Height, m.Width, m.Seed, m.Attempts, m.CountPellets(), m.String())
	if err != nil {
		return 0, fmt.Errorf("failed to insert maze %dx%d: %w", m.Height, m.Width, err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to read maze id: %w", err)
	}
	return id, nil
}

func (s *SqliteStore) Load(id int64) (*Record, error) {
	const selectSQL = `
	SELECT id, height, width, seed, attempts, pellets, layout, created_at
	FROM ` + tableName + ` WHERE id = ?;`

	var r Record
	err := s.db.QueryRow(selectSQL, id).Scan(&r.ID, &r.Height, &r.Width, &r.Seed, &r.Attempts, &r.Pellets, &r.Layout, &r.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: id %d", ErrNotFound, id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load maze %d: %w", id, err)
	}
	return &r, nil
}

// List returns a page of archived mazes, newest first, without layouts.
func (s *SqliteStore) List(limit, offset int) ([]Record, error) {
	const selectSQL = `
	SELECT id, height, width, seed, attempts, pellets, created_at
	FROM ` + tableName + `
	ORDER BY id DESC
	LIMIT ? OFFSET ?;`

	rows, err := s.db.Query(selectSQL, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to query mazes: %w", err)
	}
	defer rows.Close()

	var records []Record
	for rows.Next() {
		var r Record
		if err := rows.Scan(&r.ID, &r.Height, &r.Width, &r.Seed, &r.Attempts, &r.Pellets, &r.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan row: %w", err)
		}
		records = append(records, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error after iterating rows: %w", err)
	}
	return records, nil
}

func (s *SqliteStore) Count() (int, error) {
	const countSQL = `SELECT COUNT(*) FROM ` + tableName + `;`
	var count int
	if err := s.db.QueryRow(countSQL).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count mazes: %w", err)
	}
	return count, nil
}

func (s *SqliteStore) Close() error {
	return s.db.Close()
}
