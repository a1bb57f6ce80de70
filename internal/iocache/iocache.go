// Package iocache caches git log output between runs.
package iocache

import (
	"database/sql"
	"fmt"
	"time"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/huangsam/workscope/internal/contract"
)

const tableName = "workscope_log_cache"

// Store keeps raw git log bytes in a local SQLite database. Entries are
// keyed by HEAD hash plus the analysis window, so a hit is byte-identical
// to what git would emit for the same inputs.
type Store struct {
	db     *sql.DB
	dbPath string
}

var _ contract.CacheStore = &Store{} // Compile-time check

// NewStore opens (or creates) the cache database at dbPath.
func NewStore(dbPath string) (*Store, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize cache at %q: %w. Ensure the directory is writable", dbPath, err)
	}
	// Limit SQLite to a single open connection to avoid "database is locked" errors
	db.SetMaxOpenConns(1)

	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to open cache database: %w", err)
	}

	query := fmt.Sprintf(`
		CREATE TABLE IF NOT EXISTS %s (
			cache_key TEXT PRIMARY KEY,
			cache_value BLOB NOT NULL,
			cache_timestamp INTEGER NOT NULL
		);
	`, tableName)
	if _, err := db.Exec(query); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to create table %s: %w", tableName, err)
	}

	return &Store{db: db, dbPath: dbPath}, nil
}

// Get retrieves a cached value and its write timestamp by key.
func (s *Store) Get(key string) ([]byte, int64, error) {
	var value []byte
	var ts int64

	query := fmt.Sprintf(`SELECT cache_value, cache_timestamp FROM %s WHERE cache_key = ?`, tableName)
	row := s.db.QueryRow(query, key)
	if err := row.Scan(&value, &ts); err != nil {
		return nil, 0, err
	}
	return value, ts, nil
}

// Set inserts or replaces a key/value pair in the store.
func (s *Store) Set(key string, value []byte, timestamp int64) error {
	query := fmt.Sprintf(`INSERT OR REPLACE INTO %s (cache_key, cache_value, cache_timestamp) VALUES (?, ?, ?)`, tableName)
	_, err := s.db.Exec(query, key, value, timestamp)
	return err
}

// Clear drops every cached entry but keeps the database file.
func (s *Store) Clear() error {
	_, err := s.db.Exec(fmt.Sprintf(`DELETE FROM %s`, tableName))
	return err
}

// Close closes the underlying DB connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// Status reports entry counts and timestamps for the cache command.
func (s *Store) Status() (contract.CacheStatus, error) {
	status := contract.CacheStatus{Path: s.dbPath}

	row := s.db.QueryRow(fmt.Sprintf(`SELECT COUNT(*) FROM %s`, tableName))
	if err := row.Scan(&status.TotalEntries); err != nil {
		return status, fmt.Errorf("failed to get total entries: %w", err)
	}
	if status.TotalEntries == 0 {
		return status, nil
	}

	var oldestTs, lastTs int64
	row = s.db.QueryRow(fmt.Sprintf(`SELECT MIN(cache_timestamp), MAX(cache_timestamp) FROM %s`, tableName))
	if err := row.Scan(&oldestTs, &lastTs); err != nil {
		return status, fmt.Errorf("failed to get entry times: %w", err)
	}
	status.OldestEntryTime = time.Unix(oldestTs, 0)
	status.LastEntryTime = time.Unix(lastTs, 0)
	return status, nil
}
