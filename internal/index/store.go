// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package index persists parsed posts and their heading-delimited
// sections in a SQLite database with FTS5 full-text search, for
// editorial search over the corpus.
package index

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/pdiddy/content-engine/internal/post"
	"github.com/pdiddy/content-engine/pkg/types"
)

const dbFile = "content.db"

// Store manages the corpus index database.
type Store struct {
	db         *sql.DB
	indexDir   string
	maxResults int
}

// NewStore opens or creates the index database at indexDir/content.db,
// creating the schema if it does not exist.
func NewStore(cfg types.IndexConfig) (*Store, error) {
	if err := os.MkdirAll(cfg.IndexDir, 0o755); err != nil {
		return nil, fmt.Errorf("creating index directory: %w", err)
	}

	dbPath := filepath.Join(cfg.IndexDir, dbFile)
	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL&_foreign_keys=on")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	maxResults := cfg.MaxResults
	if maxResults <= 0 {
		maxResults = 20
	}

	s := &Store{
		db:         db,
		indexDir:   cfg.IndexDir,
		maxResults: maxResults,
	}

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
		`CREATE TABLE IF NOT EXISTS posts (
			slug TEXT PRIMARY KEY,
			title TEXT,
			author TEXT,
			layout TEXT,
			categories TEXT,
			date TEXT,
			path TEXT,
			word_count INTEGER
		)`,
		`CREATE TABLE IF NOT EXISTS sections (
			rowid INTEGER PRIMARY KEY AUTOINCREMENT,
			id TEXT NOT NULL UNIQUE,
			slug TEXT NOT NULL REFERENCES posts(slug),
			heading TEXT,
			level INTEGER,
			line INTEGER,
			content TEXT NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_sections_slug ON sections(slug)`,
		`CREATE TABLE IF NOT EXISTS indexing_status (
			slug TEXT PRIMARY KEY,
			file_mod_time TEXT
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
		`SELECT count(*) FROM sqlite_master WHERE type='table' AND name='sections_fts'`,
	).Scan(&ftsExists); err != nil {
		return fmt.Errorf("checking FTS table: %w", err)
	}

	if ftsExists == 0 {
		ftsStatements := []string{
			`CREATE VIRTUAL TABLE sections_fts USING fts5(content, heading, content=sections, content_rowid=rowid)`,
			`CREATE TRIGGER sections_ai AFTER INSERT ON sections BEGIN
				INSERT INTO sections_fts(rowid, content, heading) VALUES (new.rowid, new.content, new.heading);
			END`,
			`CREATE TRIGGER sections_ad AFTER DELETE ON sections BEGIN
				INSERT INTO sections_fts(sections_fts, rowid, content, heading) VALUES('delete', old.rowid, old.content, old.heading);
			END`,
			`CREATE TRIGGER sections_au AFTER UPDATE ON sections BEGIN
				INSERT INTO sections_fts(sections_fts, rowid, content, heading) VALUES('delete', old.rowid, old.content, old.heading);
				INSERT INTO sections_fts(rowid, content, heading) VALUES (new.rowid, new.content, new.heading);
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

// IngestSummary holds counts from an indexing run.
type IngestSummary struct {
	Indexed int
	Updated int
	Skipped int
	Failed  int
}

// Total returns the number of posts processed.
func (s IngestSummary) Total() int {
	return s.Indexed + s.Updated + s.Skipped + s.Failed
}

// Ingest indexes parsed posts. Unchanged files are detected by mod
// time and skipped; changed ones are re-indexed in place.
func (s *Store) Ingest(ctx context.Context, posts []types.Post, w io.Writer) (IngestSummary, error) {
	var summary IngestSummary

	for _, p := range posts {
		select {
		case <-ctx.Done():
			return summary, ctx.Err()
		default:
		}

		modTime := p.ModTime.UTC().Format(time.RFC3339Nano)

		var storedModTime string
		err := s.db.QueryRowContext(ctx,
			`SELECT file_mod_time FROM indexing_status WHERE slug = ?`, p.Slug,
		).Scan(&storedModTime)

		if err == nil && storedModTime == modTime {
			fmt.Fprintf(w, "skipped %s\n", p.Slug)
			summary.Skipped++
			continue
		}

		isUpdate := err == nil
		sections := post.ScanBody(p.Slug, p.Body, p.BodyLine).Sections

		if err := s.ingestPost(ctx, p, sections, modTime, isUpdate); err != nil {
			fmt.Fprintf(w, "failed  %s: %v\n", p.Slug, err)
			summary.Failed++
			continue
		}

		if isUpdate {
			fmt.Fprintf(w, "updated %s (%d sections)\n", p.Slug, len(sections))
			summary.Updated++
		} else {
			fmt.Fprintf(w, "indexed %s (%d sections)\n", p.Slug, len(sections))
			summary.Indexed++
		}
	}

	fmt.Fprintf(w, "\nindexed: %d, updated: %d, skipped: %d, failed: %d\n",
		summary.Indexed, summary.Updated, summary.Skipped, summary.Failed)

	return summary, nil
}

func (s *Store) ingestPost(ctx context.Context, p types.Post, sections []types.Section, modTime string, isUpdate bool) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	if isUpdate {
		if _, err := tx.ExecContext(ctx, `DELETE FROM sections WHERE slug = ?`, p.Slug); err != nil {
			return fmt.Errorf("deleting old sections: %w", err)
		}
	}

	categoriesJSON, _ := json.Marshal(p.FrontMatter.Categories)
	dateStr := ""
	if !p.FrontMatter.Date.IsZero() {
		dateStr = p.FrontMatter.Date.Format(time.RFC3339)
	}
	_, err = tx.ExecContext(ctx,
		`INSERT INTO posts (slug, title, author, layout, categories, date, path, word_count)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		 ON CONFLICT(slug) DO UPDATE SET
			title=excluded.title, author=excluded.author, layout=excluded.layout,
			categories=excluded.categories, date=excluded.date,
			path=excluded.path, word_count=excluded.word_count`,
		p.Slug, p.FrontMatter.Title, p.FrontMatter.Author, p.FrontMatter.Layout,
		string(categoriesJSON), dateStr, p.Path, post.WordCount(p.Body),
	)
	if err != nil {
		return fmt.Errorf("upserting post: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx,
		`INSERT OR REPLACE INTO sections (id, slug, heading, level, line, content)
		 VALUES (?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("preparing insert: %w", err)
	}
	defer stmt.Close()

	for _, sec := range sections {
		if _, err := stmt.ExecContext(ctx,
			sec.ID, sec.Slug, sec.Heading, sec.Level, sec.Line, sec.Content,
		); err != nil {
			return fmt.Errorf("inserting section %s: %w", sec.ID, err)
		}
	}

	_, err = tx.ExecContext(ctx,
		`INSERT INTO indexing_status (slug, file_mod_time) VALUES (?, ?)
		 ON CONFLICT(slug) DO UPDATE SET file_mod_time=excluded.file_mod_time`,
		p.Slug, modTime,
	)
	if err != nil {
		return fmt.Errorf("updating indexing status: %w", err)
	}

	return tx.Commit()
}
