// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package ledger keeps a SQLite record of generation runs. Recording is
// optional and off by default; it is enabled by pointing output.ledger at a
// database path in the configuration.
package ledger

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

// Entry is one recorded generation run.
type Entry struct {
	ID        int64
	Input     string
	PDF       string
	Archive   string
	MD5       string
	CreatedAt time.Time
}

// Store manages the run ledger database.
type Store struct {
	db *sql.DB
}

// Open opens or creates the ledger database at path, creating parent
// directories and the schema as needed.
func Open(path string) (*Store, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("creating ledger directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite3", path+"?_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("opening ledger database: %w", err)
	}

	s := &Store{db: db}
	if err := s.createSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating ledger schema: %w", err)
	}
	return s, nil
}

// Close releases the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) createSchema() error {
	_, err := s.db.Exec(`CREATE TABLE IF NOT EXISTS runs (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		input TEXT NOT NULL,
		pdf TEXT NOT NULL,
		archive TEXT,
		md5 TEXT,
		created_at TEXT NOT NULL
	)`)
	if err != nil {
		return fmt.Errorf("executing schema statement: %w", err)
	}
	return nil
}

// Record appends a run to the ledger and returns its row id.
func (s *Store) Record(e Entry) (int64, error) {
	ts := e.CreatedAt
	if ts.IsZero() {
		ts = time.Now().UTC()
	}
	res, err := s.db.Exec(
		`INSERT INTO runs (input, pdf, archive, md5, created_at) VALUES (?, ?, ?, ?, ?)`,
		e.Input, e.PDF, e.Archive, e.MD5, ts.Format(time.RFC3339),
	)
	if err != nil {
		return 0, fmt.Errorf("recording run: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("reading run id: %w", err)
	}
	return id, nil
}

// Recent returns up to limit runs, newest first.
func (s *Store) Recent(limit int) ([]Entry, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := s.db.Query(
		`SELECT id, input, pdf, archive, md5, created_at FROM runs ORDER BY id DESC LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("querying runs: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var e Entry
		var archive, md5, created sql.NullString
		if err := rows.Scan(&e.ID, &e.Input, &e.PDF, &archive, &md5, &created); err != nil {
			return nil, fmt.Errorf("scanning run: %w", err)
		}
		e.Archive = archive.String
		e.MD5 = md5.String
		if created.Valid {
			if ts, err := time.Parse(time.RFC3339, created.String); err == nil {
				e.CreatedAt = ts
			}
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating runs: %w", err)
	}
	return entries, nil
}
