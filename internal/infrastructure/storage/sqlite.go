package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	_ "modernc.org/sqlite"

	"svw.info/sudoku-solver/internal/domain"
)

// SQLite persists puzzles in a single-file database. The board itself is
// stored as JSON; the listing columns are kept relational so List never has
// to decode boards.
type SQLite struct{ db *sql.DB }

func NewSQLite(path string) (*SQLite, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	s := &SQLite{db: db}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return s, nil
}

func (s *SQLite) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS puzzles (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL DEFAULT '',
		notes TEXT NOT NULL DEFAULT '',
		difficulty INTEGER NOT NULL DEFAULT 0,
		created_at INTEGER NOT NULL,
		board TEXT NOT NULL
	);
	CREATE INDEX IF NOT EXISTS idx_puzzles_created_at ON puzzles(created_at);
	`
	_, err := s.db.Exec(schema)
	return err
}

func (s *SQLite) Save(ctx context.Context, p *domain.Puzzle) error {
	if p == nil || p.ID == "" {
		return errors.New("invalid puzzle: missing ID")
	}
	board, err := json.Marshal(p.Board)
	if err != nil {
		return fmt.Errorf("encode board: %w", err)
	}
	_, err = s.db.ExecContext(ctx, `
		INSERT OR REPLACE INTO puzzles (id, name, notes, difficulty, created_at, board)
		VALUES (?, ?, ?, ?, ?, ?)`,
		p.ID, p.Name, p.Notes, int(p.Difficulty), p.CreatedAt, string(board))
	return err
}

func (s *SQLite) Load(ctx context.Context, id string) (*domain.Puzzle, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, name, notes, difficulty, created_at, board
		FROM puzzles WHERE id = ?`, id)
	var (
		p     domain.Puzzle
		diff  int
		board string
	)
	if err := row.Scan(&p.ID, &p.Name, &p.Notes, &diff, &p.CreatedAt, &board); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, os.ErrNotExist
		}
		return nil, err
	}
	p.Difficulty = domain.Difficulty(diff)
	if err := json.Unmarshal([]byte(board), &p.Board); err != nil {
		return nil, fmt.Errorf("decode board: %w", err)
	}
	return &p, nil
}

func (s *SQLite) List(ctx context.Context) ([]domain.PuzzleMeta, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, name, difficulty, created_at
		FROM puzzles ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []domain.PuzzleMeta
	for rows.Next() {
		var (
			m    domain.PuzzleMeta
			diff int
		)
		if err := rows.Scan(&m.ID, &m.Name, &diff, &m.CreatedAt); err != nil {
			return nil, err
		}
		m.Difficulty = domain.Difficulty(diff)
		out = append(out, m)
	}
	return out, rows.Err()
}

func (s *SQLite) Close() error { return s.db.Close() }
