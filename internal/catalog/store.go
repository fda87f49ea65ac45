// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package catalog persists parsed GDS series in a local SQLite database
// and answers lookup, full-text, and export queries over them.
package catalog

import (
	"context"
	"database/sql"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/ningluweng/Ocular-Omics/pkg/types"
)

const dbFile = "catalog.db"

// Store manages the series catalog SQLite database.
type Store struct {
	db         *sql.DB
	maxResults int
}

// NewStore opens or creates the catalog database at catalogDir/catalog.db.
// It creates the schema if it does not exist.
func NewStore(cfg types.CatalogConfig) (*Store, error) {
	if err := os.MkdirAll(cfg.CatalogDir, 0o755); err != nil {
		return nil, fmt.Errorf("creating catalog directory: %w", err)
	}

	dbPath := filepath.Join(cfg.CatalogDir, dbFile)
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
		`CREATE TABLE IF NOT EXISTS series (
			rowid INTEGER PRIMARY KEY AUTOINCREMENT,
			accession TEXT NOT NULL UNIQUE,
			title TEXT,
			abstract TEXT,
			organism TEXT,
			platform TEXT,
			series_id TEXT,
			ftp_url TEXT,
			sra_url TEXT,
			source_file TEXT,
			indexed_at TEXT
		)`,
		`CREATE INDEX IF NOT EXISTS idx_series_organism ON series(organism)`,
		`CREATE INDEX IF NOT EXISTS idx_series_series_id ON series(series_id)`,
	}

	for _, stmt := range statements {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("executing schema statement: %w", err)
		}
	}

	// FTS5 virtual table with triggers for sync.
	var ftsExists int
	if err := s.db.QueryRow(
		`SELECT count(*) FROM sqlite_master WHERE type='table' AND name='series_fts'`,
	).Scan(&ftsExists); err != nil {
		return fmt.Errorf("checking FTS table: %w", err)
	}

	if ftsExists == 0 {
		ftsStatements := []string{
			`CREATE VIRTUAL TABLE series_fts USING fts5(title, abstract, content=series, content_rowid=rowid)`,
			`CREATE TRIGGER series_ai AFTER INSERT ON series BEGIN
				INSERT INTO series_fts(rowid, title, abstract) VALUES (new.rowid, new.title, new.abstract);
			END`,
			`CREATE TRIGGER series_ad AFTER DELETE ON series BEGIN
				INSERT INTO series_fts(series_fts, rowid, title, abstract) VALUES('delete', old.rowid, old.title, old.abstract);
			END`,
			`CREATE TRIGGER series_au AFTER UPDATE ON series BEGIN
				INSERT INTO series_fts(series_fts, rowid, title, abstract) VALUES('delete', old.rowid, old.title, old.abstract);
				INSERT INTO series_fts(rowid, title, abstract) VALUES (new.rowid, new.title, new.abstract);
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

// IndexSummary holds counts from a catalog indexing run.
type IndexSummary struct {
	Indexed int
	Updated int
}

// Total returns the number of records processed.
func (s IndexSummary) Total() int {
	return s.Indexed + s.Updated
}

// Index upserts parsed records into the catalog, keyed by accession.
// Records without an accession are keyed "series-<n>" by input position so
// no record is dropped. Per-record status lines go to w.
func (s *Store) Index(ctx context.Context, records []types.Record, sourceFile string, w io.Writer) (IndexSummary, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return IndexSummary{}, fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx,
		`INSERT INTO series (accession, title, abstract, organism, platform, series_id, ftp_url, sra_url, source_file, indexed_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		 ON CONFLICT(accession) DO UPDATE SET
			title=excluded.title, abstract=excluded.abstract,
			organism=excluded.organism, platform=excluded.platform,
			series_id=excluded.series_id, ftp_url=excluded.ftp_url,
			sra_url=excluded.sra_url, source_file=excluded.source_file,
			indexed_at=excluded.indexed_at`)
	if err != nil {
		return IndexSummary{}, fmt.Errorf("preparing upsert: %w", err)
	}
	defer stmt.Close()

	now := time.Now().UTC().Format(time.RFC3339)

	var summary IndexSummary
	for i, r := range records {
		select {
		case <-ctx.Done():
			return summary, ctx.Err()
		default:
		}

		key := r.Accession
		if key == "" {
			key = fmt.Sprintf("series-%d", i+1)
		}

		var exists int
		if err := tx.QueryRowContext(ctx,
			`SELECT count(*) FROM series WHERE accession = ?`, key,
		).Scan(&exists); err != nil {
			return summary, fmt.Errorf("checking %s: %w", key, err)
		}

		if _, err := stmt.ExecContext(ctx,
			key, r.Title, r.Abstract, r.Organism, r.Platform,
			r.SeriesID, r.FTPURL, r.SRAURL, sourceFile, now,
		); err != nil {
			return summary, fmt.Errorf("upserting %s: %w", key, err)
		}

		if exists > 0 {
			fmt.Fprintf(w, "updated  %s\n", key)
			summary.Updated++
		} else {
			fmt.Fprintf(w, "indexed  %s\n", key)
			summary.Indexed++
		}
	}

	if err := tx.Commit(); err != nil {
		return summary, fmt.Errorf("committing: %w", err)
	}

	fmt.Fprintf(w, "\nindexed: %d, updated: %d\n", summary.Indexed, summary.Updated)
	return summary, nil
}

// Get returns the record stored under accession.
func (s *Store) Get(ctx context.Context, accession string) (types.Record, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT accession, title, abstract, organism, platform, series_id, ftp_url, sra_url
		 FROM series WHERE accession = ?`, accession)

	r, err := scanRecord(row)
	if err == sql.ErrNoRows {
		return types.Record{}, fmt.Errorf("series %s not found", accession)
	}
	if err != nil {
		return types.Record{}, fmt.Errorf("looking up %s: %w", accession, err)
	}
	return r, nil
}

// rowScanner covers *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanRecord(row rowScanner) (types.Record, error) {
	var r types.Record
	var accession string
	if err := row.Scan(
		&accession, &r.Title, &r.Abstract, &r.Organism,
		&r.Platform, &r.SeriesID, &r.FTPURL, &r.SRAURL,
	); err != nil {
		return types.Record{}, err
	}
	// Derived "series-<n>" keys are catalog-internal, not record fields.
	if len(accession) > 3 && accession[:3] == "GSE" {
		r.Accession = accession
	}
	return r, nil
}
