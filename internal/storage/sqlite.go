package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	// Pure-Go SQLite driver, registered as "sqlite".
	_ "modernc.org/sqlite"
)

// SQLite is a Store backed by a kv table shared by all origins.
type SQLite struct {
	db     *sql.DB
	origin string
}

// OpenSQLite opens or creates the database at path and scopes the store to
// origin. Use ":memory:" for a private in-memory database.
func OpenSQLite(path, origin string) (*SQLite, error) {
	if path != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
			return nil, fmt.Errorf("create storage dir: %w", err)
		}
	}

	db, err := sql.Open("sqlite", path+"?_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	// A second connection to ":memory:" would see a different database.
	db.SetMaxOpenConns(1)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	_, err = db.Exec(`
        CREATE TABLE IF NOT EXISTS kv (
            origin TEXT NOT NULL,
            key    TEXT NOT NULL,
            value  TEXT NOT NULL,
            PRIMARY KEY (origin, key)
        )
    `)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("create schema: %w", err)
	}

	if origin == "" {
		origin = "default"
	}
	return &SQLite{db: db, origin: origin}, nil
}

// WithOrigin returns a store over the same database scoped to another origin.
// The returned store shares the connection; close only one of them.
func (s *SQLite) WithOrigin(origin string) *SQLite {
	return &SQLite{db: s.db, origin: origin}
}

// Get implements Store.
func (s *SQLite) Get(key string) (string, bool, error) {
	var v string
	err := s.db.QueryRow(`SELECT value FROM kv WHERE origin = ? AND key = ?`, s.origin, key).Scan(&v)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("get %s: %w", key, err)
	}
	return v, true, nil
}

// Set implements Store.
func (s *SQLite) Set(key, value string) error {
	_, err := s.db.Exec(`
        INSERT INTO kv (origin, key, value) VALUES (?, ?, ?)
        ON CONFLICT (origin, key) DO UPDATE SET value = excluded.value
    `, s.origin, key, value)
	if err != nil {
		return fmt.Errorf("set %s: %w", key, err)
	}
	return nil
}

// Clear implements Store.
func (s *SQLite) Clear() error {
	if _, err := s.db.Exec(`DELETE FROM kv WHERE origin = ?`, s.origin); err != nil {
		return fmt.Errorf("clear: %w", err)
	}
	return nil
}

// Close closes the database.
func (s *SQLite) Close() error {
	return s.db.Close()
}
