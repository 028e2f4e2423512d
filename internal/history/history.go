// Package history persists recently used queries so the search box can
// offer them back. Entries live in a SQLite database under the data dir.
package history

import (
	"database/sql"
	_ "embed"
	"fmt"
	"strings"
	"time"

	_ "modernc.org/sqlite"
)

//go:embed schema.sql
var schemaSQL string

// Schema version tracking:
// 0 - pre-versioning databases
// 1 - initial schema (queries table + last_used index)
const currentSchemaVersion = 1

// Entry is one remembered query.
type Entry struct {
	Query    string
	Uses     int
	LastHits int
	LastUsed time.Time
}

// Store persists recently used queries in a SQLite database.
// Uses WAL mode so the UI can read while the searcher records.
type Store struct {
	db *sql.DB
}

// Open creates or opens the history database at path. Pragmas and schema
// migrations are applied automatically; calling Open on the same path twice
// is safe.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open history db: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("connect history db: %w", err)
	}

	// SQLite allows one writer; a single connection avoids SQLITE_BUSY.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	if err := applyPragmas(db); err != nil {
		db.Close()
		return nil, err
	}
	if err := applySchema(db); err != nil {
		db.Close()
		return nil, err
	}
	return &Store{db: db}, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Record remembers one successful search. Repeated queries bump the use
// count and refresh the timestamp. Blank queries are not recorded.
func (s *Store) Record(query string, hits int) error {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil
	}
	now := time.Now().UnixNano()
	_, err := s.db.Exec(`
		INSERT INTO queries (query, uses, last_hits, last_used)
		VALUES (?, 1, ?, ?)
		ON CONFLICT(query) DO UPDATE SET
			uses = uses + 1,
			last_hits = excluded.last_hits,
			last_used = excluded.last_used`,
		query, hits, now)
	if err != nil {
		return fmt.Errorf("record query: %w", err)
	}
	return nil
}

// Recent returns up to limit entries, most recently used first.
func (s *Store) Recent(limit int) ([]Entry, error) {
	if limit <= 0 {
		limit = 10
	}
	rows, err := s.db.Query(`
		SELECT query, uses, last_hits, last_used
		FROM queries
		ORDER BY last_used DESC
		LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("query history: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var e Entry
		var lastUsed int64
		if err := rows.Scan(&e.Query, &e.Uses, &e.LastHits, &lastUsed); err != nil {
			return nil, fmt.Errorf("scan history row: %w", err)
		}
		e.LastUsed = time.Unix(0, lastUsed)
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate history rows: %w", err)
	}
	return entries, nil
}

// Prune drops everything but the newest keep entries.
func (s *Store) Prune(keep int) error {
	if keep <= 0 {
		return nil
	}
	_, err := s.db.Exec(`
		DELETE FROM queries WHERE query NOT IN (
			SELECT query FROM queries ORDER BY last_used DESC LIMIT ?
		)`, keep)
	if err != nil {
		return fmt.Errorf("prune history: %w", err)
	}
	return nil
}

func applyPragmas(db *sql.DB) error {
	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA synchronous = NORMAL",
		"PRAGMA busy_timeout = 5000",
	}
	for _, pragma := range pragmas {
		if _, err := db.Exec(pragma); err != nil {
			return fmt.Errorf("execute %q: %w", pragma, err)
		}
	}
	return nil
}

func applySchema(db *sql.DB) error {
	if _, err := db.Exec(schemaSQL); err != nil {
		return fmt.Errorf("execute schema: %w", err)
	}

	var version int
	if err := db.QueryRow("PRAGMA user_version").Scan(&version); err != nil {
		return fmt.Errorf("get user_version: %w", err)
	}
	if version < currentSchemaVersion {
		if _, err := db.Exec(fmt.Sprintf("PRAGMA user_version = %d", currentSchemaVersion)); err != nil {
			return fmt.Errorf("set user_version: %w", err)
		}
	}
	return nil
}
