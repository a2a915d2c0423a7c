package cache

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

// Store is a sqlite-backed phoneme cache keyed by (language, text).
type Store struct {
	db *sql.DB
}

// Open opens (creating if necessary) the cache database at path.
func Open(path string) (*Store, error) {
	dir := filepath.Dir(path)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create cache directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open cache database: %w", err)
	}

	schema := `CREATE TABLE IF NOT EXISTS phonemes (
		language TEXT NOT NULL,
		text TEXT NOT NULL,
		phonemes TEXT NOT NULL,
		created_at INTEGER NOT NULL,
		PRIMARY KEY (language, text)
	)`
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create cache schema: %w", err)
	}

	return &Store{db: db}, nil
}

// Get returns the cached phoneme string for (langCode, text), with a
// second return of false on a miss.
func (s *Store) Get(langCode, text string) (string, bool, error) {
	var phonemes string
	err := s.db.QueryRow(
		"SELECT phonemes FROM phonemes WHERE language = ? AND text = ?",
		langCode, text,
	).Scan(&phonemes)
	if err == sql.ErrNoRows {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("cache lookup failed: %w", err)
	}
	return phonemes, true, nil
}

// Put stores the phoneme string for (langCode, text), replacing any
// previous entry.
func (s *Store) Put(langCode, text, phonemes string) error {
	_, err := s.db.Exec(
		"INSERT OR REPLACE INTO phonemes (language, text, phonemes, created_at) VALUES (?, ?, ?, ?)",
		langCode, text, phonemes, time.Now().Unix(),
	)
	if err != nil {
		return fmt.Errorf("cache insert failed: %w", err)
	}
	return nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}
