// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package index

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"regexp"
	"strings"

	"github.com/pdiddy/content-engine/pkg/types"
)

// QueryOptions holds parameters for index queries.
type QueryOptions struct {
	// Query is the FTS5 full-text search string.
	Query string

	// Category filters posts by category.
	Category string

	// Author filters posts by author.
	Author string

	// Layout filters posts by layout.
	Layout string

	// Slug filters sections to a single post.
	Slug string

	// MaxResults limits result count. Zero uses the store default.
	MaxResults int
}

// IsEmpty reports whether the query has no search terms or filters.
func (q QueryOptions) IsEmpty() bool {
	return q.Query == "" && q.Category == "" && q.Author == "" && q.Layout == "" && q.Slug == ""
}

// QueryResult is a section with its post's metadata attached.
type QueryResult struct {
	types.Section
	PostTitle  string   `json:"post_title" yaml:"post_title"`
	PostAuthor string   `json:"post_author,omitempty" yaml:"post_author,omitempty"`
	Categories []string `json:"categories,omitempty" yaml:"categories,omitempty"`
	Path       string   `json:"path" yaml:"path"`
}

// Retrieve queries the index with optional full-text search and
// structured filters. Full-text queries are ranked by relevance;
// structured-only queries are sorted by slug and line.
func (s *Store) Retrieve(ctx context.Context, opts QueryOptions) ([]QueryResult, error) {
	maxResults := opts.MaxResults
	if maxResults <= 0 {
		maxResults = s.maxResults
	}

	var (
		qb     strings.Builder
		args   []any
		useFTS = opts.Query != ""
	)

	if useFTS {
		qb.WriteString(
			`SELECT sec.id, sec.slug, sec.heading, sec.level, sec.line, sec.content,
				p.title, p.author, p.categories, p.path, sections_fts.rank
			FROM sections_fts
			JOIN sections sec ON sec.rowid = sections_fts.rowid
			LEFT JOIN posts p ON sec.slug = p.slug
			WHERE sections_fts MATCH ?`)
		args = append(args, opts.Query)
	} else {
		qb.WriteString(
			`SELECT sec.id, sec.slug, sec.heading, sec.level, sec.line, sec.content,
				p.title, p.author, p.categories, p.path, 0 AS rank
			FROM sections sec
			LEFT JOIN posts p ON sec.slug = p.slug
			WHERE 1=1`)
	}

	if opts.Slug != "" {
		qb.WriteString(` AND sec.slug = ?`)
		args = append(args, opts.Slug)
	}

	if opts.Author != "" {
		qb.WriteString(` AND p.author = ?`)
		args = append(args, opts.Author)
	}

	if opts.Layout != "" {
		qb.WriteString(` AND p.layout = ?`)
		args = append(args, opts.Layout)
	}

	if opts.Category != "" {
		qb.WriteString(` AND EXISTS (SELECT 1 FROM json_each(p.categories) WHERE value = ?)`)
		args = append(args, opts.Category)
	}

	if useFTS {
		qb.WriteString(` ORDER BY sections_fts.rank`)
	} else {
		qb.WriteString(` ORDER BY sec.slug, sec.line`)
	}

	qb.WriteString(` LIMIT ?`)
	args = append(args, maxResults)

	rows, err := s.db.QueryContext(ctx, qb.String(), args...)
	if err != nil {
		return nil, fmt.Errorf("querying index: %w", err)
	}
	defer rows.Close()

	var results []QueryResult
	for rows.Next() {
		var (
			qr             QueryResult
			title, author  sql.NullString
			categoriesJSON sql.NullString
			path           sql.NullString
			rank           float64
		)

		if err := rows.Scan(
			&qr.ID, &qr.Slug, &qr.Heading, &qr.Level, &qr.Line, &qr.Content,
			&title, &author, &categoriesJSON, &path, &rank,
		); err != nil {
			return nil, fmt.Errorf("scanning row: %w", err)
		}

		if title.Valid {
			qr.PostTitle = title.String
		}
		if author.Valid {
			qr.PostAuthor = author.String
		}
		if categoriesJSON.Valid {
			json.Unmarshal([]byte(categoriesJSON.String), &qr.Categories)
		}
		if path.Valid {
			qr.Path = path.String
		}

		results = append(results, qr)
	}

	return results, rows.Err()
}

var traceHeadingPattern = regexp.MustCompile(`^\s{0,3}#{1,6}\s`)

const traceMaxLines = 40

// Trace returns the source lines behind a section ID, read from the
// post file so the editor sees current text rather than indexed text.
func (s *Store) Trace(ctx context.Context, sectionID string) (string, error) {
	var slug string
	var line int

	err := s.db.QueryRowContext(ctx,
		`SELECT slug, line FROM sections WHERE id = ?`, sectionID,
	).Scan(&slug, &line)
	if err != nil {
		if err == sql.ErrNoRows {
			return "", fmt.Errorf("section %s not found", sectionID)
		}
		return "", fmt.Errorf("looking up section: %w", err)
	}

	var path string
	if err := s.db.QueryRowContext(ctx,
		`SELECT path FROM posts WHERE slug = ?`, slug,
	).Scan(&path); err != nil {
		return "", fmt.Errorf("looking up post %s: %w", slug, err)
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", path, err)
	}

	return extractSourceContext(string(content), line), nil
}

// extractSourceContext returns the lines from startLine up to the next
// heading, capped at traceMaxLines.
func extractSourceContext(content string, startLine int) string {
	lines := strings.Split(strings.ReplaceAll(content, "\r\n", "\n"), "\n")
	if startLine < 1 {
		startLine = 1
	}
	if startLine > len(lines) {
		return ""
	}

	var result []string
	for i := startLine - 1; i < len(lines) && len(result) < traceMaxLines; i++ {
		if i >= startLine && traceHeadingPattern.MatchString(lines[i]) {
			break
		}
		result = append(result, lines[i])
	}
	return strings.TrimSpace(strings.Join(result, "\n"))
}
