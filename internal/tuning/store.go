// Package tuning persists live-adjusted simulation parameters in SQLite,
// so values dialed in through the debug panel survive restarts. Persistence
// is best effort: the game never blocks or fails on a broken store.
package tuning

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// Store manages the SQLite database connection for tuning persistence.
type Store struct {
	db *sql.DB
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("tuning: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("tuning: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("tuning: cannot open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("tuning: cannot connect to database: %w", err)
	}

	store := &Store{db: db}

	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("tuning: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS tuning (
			game_id TEXT NOT NULL,
			name TEXT NOT NULL,
			value REAL NOT NULL,
			updated_at DATETIME DEFAULT CURRENT_TIMESTAMP,
			PRIMARY KEY (game_id, name)
		);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// Load returns the saved parameters for a game. Any failure yields an
// empty map: callers fall back to config defaults and keep playing.
func (s *Store) Load(gameID string) map[string]float64 {
	values := make(map[string]float64)

	rows, err := s.db.Query(
		"SELECT name, value FROM tuning WHERE game_id = ?",
		gameID,
	)
	if err != nil {
		return values
	}
	defer rows.Close()

	for rows.Next() {
		var name string
		var value float64
		if err := rows.Scan(&name, &value); err != nil {
			return values
		}
		values[name] = value
	}

	return values
}

// Save upserts one parameter value.
func (s *Store) Save(gameID, name string, value float64) error {
	_, err := s.db.Exec(
		`INSERT INTO tuning (game_id, name, value, updated_at)
		 VALUES (?, ?, ?, CURRENT_TIMESTAMP)
		 ON CONFLICT (game_id, name)
		 DO UPDATE SET value = excluded.value, updated_at = CURRENT_TIMESTAMP`,
		gameID, name, value,
	)
	if err != nil {
		return fmt.Errorf("tuning: cannot save %s: %w", name, err)
	}
	return nil
}

// SaveAll upserts a full parameter map in one transaction.
func (s *Store) SaveAll(gameID string, values map[string]float64) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("tuning: cannot begin transaction: %w", err)
	}
	defer tx.Rollback()

	for name, value := range values {
		if _, err := tx.Exec(
			`INSERT INTO tuning (game_id, name, value, updated_at)
			 VALUES (?, ?, ?, CURRENT_TIMESTAMP)
			 ON CONFLICT (game_id, name)
			 DO UPDATE SET value = excluded.value, updated_at = CURRENT_TIMESTAMP`,
			gameID, name, value,
		); err != nil {
			return fmt.Errorf("tuning: cannot save %s: %w", name, err)
		}
	}

	return tx.Commit()
}

// Reset deletes all saved parameters for a game.
func (s *Store) Reset(gameID string) error {
	_, err := s.db.Exec("DELETE FROM tuning WHERE game_id = ?", gameID)
	if err != nil {
		return fmt.Errorf("tuning: cannot reset: %w", err)
	}
	return nil
}
