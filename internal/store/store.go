// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package store persists parsed dictionary rows in SQLite and serves the
// read-only query surface over them.
package store

import (
	"context"
	"database/sql"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/tajiklex/farhang/pkg/types"
)

const dbFile = "farhang.db"

// Store manages the dictionary SQLite database.
type Store struct {
	db         *sql.DB
	maxResults int
}

// Open opens or creates the dictionary database at cfg.DataDir/farhang.db,
// creating the schema if it does not exist.
func Open(cfg types.StoreConfig) (*Store, error) {
	if err := os.MkdirAll(cfg.DataDir, 0o755); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}

	dbPath := filepath.Join(cfg.DataDir, dbFile)
	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL&_foreign_keys=on")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	maxResults := cfg.MaxResults
	if maxResults <= 0 {
		maxResults = 20
	}

	s := &Store{db: db, maxResults: maxResults}
	if err := s.createSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}
	return s, nil
}

// Close releases the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) createSchema() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS rows (
			rowid INTEGER PRIMARY KEY AUTOINCREMENT,
			source TEXT NOT NULL,
			headword TEXT NOT NULL,
			gloss TEXT,
			etymology_marker TEXT,
			register_marker TEXT,
			sense_number INTEGER,
			sense_text TEXT NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_rows_headword ON rows(headword)`,
		`CREATE TABLE IF NOT EXISTS ingest_status (
			source TEXT PRIMARY KEY,
			row_count INTEGER,
			ingested_at TEXT
		)`,
	}

	for _, stmt := range statements {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("executing schema statement: %w", err)
		}
	}

	// FTS5 virtual table with triggers for sync.
	var ftsExists int
	if err := s.db.QueryRow(
		`SELECT count(*) FROM sqlite_master WHERE type='table' AND name='rows_fts'`,
	).Scan(&ftsExists); err != nil {
		return fmt.Errorf("checking FTS table: %w", err)
	}

	if ftsExists == 0 {
		ftsStatements := []string{
			`CREATE VIRTUAL TABLE rows_fts USING fts5(headword, sense_text, content=rows, content_rowid=rowid)`,
			`CREATE TRIGGER rows_ai AFTER INSERT ON rows BEGIN
				INSERT INTO rows_fts(rowid, headword, sense_text) VALUES (new.rowid, new.headword, new.sense_text);
			END`,
			`CREATE TRIGGER rows_ad AFTER DELETE ON rows BEGIN
				INSERT INTO rows_fts(rows_fts, rowid, headword, sense_text) VALUES('delete', old.rowid, old.headword, old.sense_text);
			END`,
			`CREATE TRIGGER rows_au AFTER UPDATE ON rows BEGIN
				INSERT INTO rows_fts(rows_fts, rowid, headword, sense_text) VALUES('delete', old.rowid, old.headword, old.sense_text);
				INSERT INTO rows_fts(rowid, headword, sense_text) VALUES (new.rowid, new.headword, new.sense_text);
			END`,
		}
		for _, stmt := range ftsStatements {
			if _, err := s.db.Exec(stmt); err != nil {
				return fmt.Errorf("creating FTS infrastructure: %w", err)
			}
		}
	}

	return nil
}

// Ingest stores a parsed row set in one transaction, replacing any rows
// previously ingested from the same source file. It returns the number of
// rows inserted.
func (s *Store) Ingest(ctx context.Context, set types.RowSet, w io.Writer) (int, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	res, err := tx.ExecContext(ctx, `DELETE FROM rows WHERE source = ?`, set.Source)
	if err != nil {
		return 0, fmt.Errorf("deleting old rows: %w", err)
	}
	if replaced, _ := res.RowsAffected(); replaced > 0 {
		fmt.Fprintf(w, "replacing %d rows from %s\n", replaced, set.Source)
	}

	stmt, err := tx.PrepareContext(ctx,
		`INSERT INTO rows (source, headword, gloss, etymology_marker, register_marker, sense_number, sense_text)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return 0, fmt.Errorf("preparing insert: %w", err)
	}
	defer stmt.Close()

	for _, r := range set.Rows {
		_, err := stmt.ExecContext(ctx,
			set.Source, r.Headword,
			nullString(r.Gloss), nullString(r.EtymologyMarker), nullString(r.RegisterMarker),
			nullInt(r.SenseNumber), r.SenseText,
		)
		if err != nil {
			return 0, fmt.Errorf("inserting row for %s: %w", r.Headword, err)
		}
	}

	_, err = tx.ExecContext(ctx,
		`INSERT INTO ingest_status (source, row_count, ingested_at) VALUES (?, ?, ?)
		 ON CONFLICT(source) DO UPDATE SET row_count=excluded.row_count, ingested_at=excluded.ingested_at`,
		set.Source, len(set.Rows), time.Now().UTC().Format(time.RFC3339),
	)
	if err != nil {
		return 0, fmt.Errorf("updating ingest status: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return 0, err
	}

	fmt.Fprintf(w, "ingested %d rows from %s\n", len(set.Rows), set.Source)
	return len(set.Rows), nil
}

func nullString(s string) any {
	if s == "" {
		return nil
	}
	return s
}

func nullInt(n int) any {
	if n == 0 {
		return nil
	}
	return n
}
