package storage

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"

	"github.com/kpeters/hard75/internal/constants"
	"github.com/kpeters/hard75/internal/models"
)

// SQLiteStore persists the challenge snapshot in a key/value table, the
// same shape the mobile-style storage layer uses: one namespaced key, one
// JSON blob.
type SQLiteStore struct {
	path string
	db   *sql.DB
}

func NewSQLiteStore(path string) *SQLiteStore {
	return &SQLiteStore{
		path: path,
	}
}

func (s *SQLiteStore) Init() error {
	// Create config directory if it doesn't exist
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	if err := s.open(); err != nil {
		return err
	}

	return s.Save(models.NewState())
}

func (s *SQLiteStore) open() error {
	if s.db != nil {
		return nil
	}

	db, err := sql.Open("sqlite", s.path)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}

	if _, err := db.Exec(`CREATE TABLE IF NOT EXISTS kv (
		key   TEXT PRIMARY KEY,
		value TEXT NOT NULL
	)`); err != nil {
		db.Close()
		return fmt.Errorf("failed to create schema: %w", err)
	}

	s.db = db
	return nil
}

func (s *SQLiteStore) Load() (*models.ChallengeState, error) {
	if _, err := os.Stat(s.path); os.IsNotExist(err) {
		return nil, nil
	}

	if err := s.open(); err != nil {
		return nil, err
	}

	var value string
	err := s.db.QueryRow(`SELECT value FROM kv WHERE key = ?`, constants.KeyChallengeState).Scan(&value)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read challenge state: %w", err)
	}

	state := &models.ChallengeState{}
	if err := json.Unmarshal([]byte(value), state); err != nil {
		return nil, fmt.Errorf("failed to parse challenge state: %w", err)
	}

	normalize(state)
	return state, nil
}

func (s *SQLiteStore) Save(state models.ChallengeState) error {
	if err := s.open(); err != nil {
		return err
	}

	data, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("failed to serialize challenge state: %w", err)
	}

	_, err = s.db.Exec(
		`INSERT INTO kv (key, value) VALUES (?, ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value`,
		constants.KeyChallengeState, string(data),
	)
	if err != nil {
		return fmt.Errorf("failed to write challenge state: %w", err)
	}

	return nil
}

func (s *SQLiteStore) Clear() error {
	if !s.Exists() {
		return nil
	}

	if err := s.open(); err != nil {
		return err
	}

	if _, err := s.db.Exec(`DELETE FROM kv WHERE key = ?`, constants.KeyChallengeState); err != nil {
		return fmt.Errorf("failed to clear challenge state: %w", err)
	}
	return nil
}

func (s *SQLiteStore) Exists() bool {
	_, err := os.Stat(s.path)
	return err == nil
}

func (s *SQLiteStore) Close() error {
	if s.db != nil {
		err := s.db.Close()
		s.db = nil
		return err
	}
	return nil
}

// GetDB exposes the underlying connection for diagnostics.
func (s *SQLiteStore) GetDB() *sql.DB {
	return s.db
}

func (s *SQLiteStore) GetConfigPath() string {
	return s.path
}
