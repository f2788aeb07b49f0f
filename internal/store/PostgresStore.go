package store

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/VHN27/Pacman/internal/maze"
	_ "github.com/lib/pq"
)

const DefaultPostgresDSN = "host=localhost user=pacman password=pacman dbname=pacman sslmode=disable"

// PostgresStore keeps the archive in PostgreSQL.
type PostgresStore struct {
	db *sql.DB
}

func NewPostgresStore(connectionString string) (*PostgresStore, error) {
	if connectionString == "" {
		connectionString = DefaultPostgresDSN
	}
	db, err := sql.Open("postgres", connectionString)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	store := &PostgresStore{db: db}
	if err := store.initSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}
	return store, nil
}

func (s *PostgresStore) initSchema() error {
	const schema = `
	CREATE TABLE IF NOT EXISTS ` + tableName + ` (
		id BIGSERIAL PRIMARY KEY,
		height INTEGER NOT NULL,
		width INTEGER NOT NULL,
		seed BIGINT NOT NULL,
		attempts INTEGER NOT NULL,
		pellets INTEGER NOT NULL,
		layout TEXT NOT NULL,
		created_at TIMESTAMP WITH TIME ZONE DEFAULT NOW()
	);`

	_, err := s.db.Exec(schema)
	return err
}

func (s *PostgresStore) Save(m *maze.Maze) (int64, error) {
	const query = `
	INSERT INTO ` + tableName + ` (height, width, seed, attempts, pellets, layout)
	VALUES ($1, $2, $3, $4, $5, $6)
	RETURNING id`

	var id int64
	err := s.db.QueryRow(query, m.Height, m.Width, m.Seed, m.Attempts, m.CountPellets(), m.String()).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("failed to save maze %dx%d: %w", m.Height, m.Width, err)
	}
	return id, nil
}

func (s *PostgresStore) Load(id int64) (*Record, error) {
	const query = `
	SELECT id, height, width, seed, attempts, pellets, layout, created_at
	FROM ` + tableName + ` WHERE id = $1`

	var r Record
	err := s.db.QueryRow(query, id).Scan(&r.ID, &r.Height, &r.Width, &r.Seed, &r.Attempts, &r.Pellets, &r.Layout, &r.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: id %d", ErrNotFound, id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load maze %d: %w", id, err)
	}
	return &r, nil
}

func (s *PostgresStore) List(limit, offset int) ([]Record, error) {
	const query = `
	SELECT id, height, width, seed, attempts, pellets, created_at
	FROM ` + tableName + `
	ORDER BY id DESC
	LIMIT $1 OFFSET $2`

	rows, err := s.db.Query(query, limit, offset)
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
	return records, rows.Err()
}

func (s *PostgresStore) Count() (int, error) {
	var count int
	if err := s.db.QueryRow(`SELECT COUNT(*) FROM ` + tableName).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count mazes: %w", err)
	}
	return count, nil
}

func (s *PostgresStore) Close() error {
	return s.db.Close()
}
