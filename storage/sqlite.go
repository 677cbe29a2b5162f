// Package storage provides SQLite-based persistence for demo scores.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// Store manages the SQLite database connection for score persistence
type Store struct {
	db *sql.DB
}

// ScoreEntry represents a single high score record
type ScoreEntry struct {
	ID        int64
	Game      string
	Score     int
	CreatedAt time.Time
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	// Expand ~ to home directory
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}

	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS scores (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			game TEXT NOT NULL,
			score INTEGER NOT NULL,
			created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_scores_game_score
			ON scores(game, score DESC);
	`
	_, err := s.db.Exec(schema)
	return err
}

// SaveScore records a finished run's score for a game
func (s *Store) SaveScore(game string, score int) error {
	_, err := s.db.Exec(
		`INSERT INTO scores (game, score) VALUES (?, ?)`,
		game, score,
	)
	if err != nil {
		return fmt.Errorf("storage: save score: %w", err)
	}
	return nil
}

// TopScores returns the best n scores for a game, highest first
func (s *Store) TopScores(game string, n int) ([]ScoreEntry, error) {
	rows, err := s.db.Query(
		`SELECT id, game, score, created_at FROM scores
		 WHERE game = ? ORDER BY score DESC, created_at ASC LIMIT ?`,
		game, n,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: query scores: %w", err)
	}
	defer rows.Close()

	var entries []ScoreEntry
	for rows.Next() {
		var e ScoreEntry
		if err := rows.Scan(&e.ID, &e.Game, &e.Score, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("storage: scan score: %w", err)
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// Close releases the database connection
func (s *Store) Close() error {
	return s.db.Close()
}
