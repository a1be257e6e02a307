// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package history keeps a local SQLite log of past searches. It is a log,
// not a cache: only the query parameters and the result count are stored,
// never response content.
package history

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/pdiddy/newswire/pkg/types"
)

const dbFile = "history.db"

// Store manages the search history SQLite database.
type Store struct {
	db *sql.DB
}

// Open opens or creates the history database at dir/history.db and
// bootstraps the schema.
func Open(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating history directory: %w", err)
	}

	dbPath := filepath.Join(dir, dbFile)
	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("opening history database: %w", err)
	}

	s := &Store{db: db}
	if err := s.createSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating history schema: %w", err)
	}
	return s, nil
}

// Close releases the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) createSchema() error {
	_, err := s.db.Exec(`CREATE TABLE IF NOT EXISTS searches (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		query TEXT NOT NULL,
		language TEXT NOT NULL,
		days INTEGER NOT NULL,
		page_size INTEGER NOT NULL,
		results INTEGER NOT NULL,
		searched_at TEXT NOT NULL
	)`)
	if err != nil {
		return fmt.Errorf("executing schema statement: %w", err)
	}
	return nil
}

// Entry is one recorded search.
type Entry struct {
	ID         int64     `json:"id"`
	Query      string    `json:"query"`
	Language   string    `json:"language"`
	Days       int       `json:"days"`
	PageSize   int       `json:"page_size"`
	Results    int       `json:"results"`
	SearchedAt time.Time `json:"searched_at"`
}

// Record appends one search to the log. Timestamps are stored in UTC.
func (s *Store) Record(ctx context.Context, sr types.SearchRequest, days, results int) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO searches (query, language, days, page_size, results, searched_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		sr.Query, sr.Language, days, sr.PageSize, results,
		time.Now().UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("recording search: %w", err)
	}
	return nil
}

// List returns the most recent entries, newest first. A non-positive
// limit falls back to 20.
func (s *Store) List(ctx context.Context, limit int) ([]Entry, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT id, query, language, days, page_size, results, searched_at
		 FROM searches ORDER BY id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("querying history: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var e Entry
		var searchedAt string
		if err := rows.Scan(&e.ID, &e.Query, &e.Language, &e.Days, &e.PageSize, &e.Results, &searchedAt); err != nil {
			return nil, fmt.Errorf("scanning history row: %w", err)
		}
		if t, parseErr := time.Parse(time.RFC3339, searchedAt); parseErr == nil {
			e.SearchedAt = t
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}
