// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package index

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"go.yaml.in/yaml/v3"
)

// ExportEntry holds a section with its post metadata for export.
type ExportEntry struct {
	ID      string      `json:"id" yaml:"id"`
	Slug    string      `json:"slug" yaml:"slug"`
	Heading string      `json:"heading,omitempty" yaml:"heading,omitempty"`
	Level   int         `json:"level" yaml:"level"`
	Line    int         `json:"line" yaml:"line"`
	Content string      `json:"content" yaml:"content"`
	Post    *ExportPost `json:"post,omitempty" yaml:"post,omitempty"`
}

// ExportPost holds the post-level fields included in each export entry.
type ExportPost struct {
	Title      string   `json:"title" yaml:"title"`
	Author     string   `json:"author,omitempty" yaml:"author,omitempty"`
	Categories []string `json:"categories,omitempty" yaml:"categories,omitempty"`
}

const exportLimit = 100000

// ExportYAML writes the index (or a filtered subset) to
// indexDir/export.yaml.
func (s *Store) ExportYAML(ctx context.Context, opts QueryOptions) error {
	entries, err := s.exportEntries(ctx, opts)
	if err != nil {
		return err
	}

	path := filepath.Join(s.indexDir, "export.yaml")
	data, err := yaml.Marshal(entries)
	if err != nil {
		return fmt.Errorf("marshaling YAML: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}

// ExportJSON writes the index (or a filtered subset) to
// indexDir/export.json.
func (s *Store) ExportJSON(ctx context.Context, opts QueryOptions) error {
	entries, err := s.exportEntries(ctx, opts)
	if err != nil {
		return err
	}

	path := filepath.Join(s.indexDir, "export.json")
	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling JSON: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}

func (s *Store) exportEntries(ctx context.Context, opts QueryOptions) ([]ExportEntry, error) {
	if opts.MaxResults <= 0 {
		opts.MaxResults = exportLimit
	}
	results, err := s.Retrieve(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("querying for export: %w", err)
	}

	entries := make([]ExportEntry, len(results))
	for i, r := range results {
		entries[i] = ExportEntry{
			ID:      r.ID,
			Slug:    r.Slug,
			Heading: r.Heading,
			Level:   r.Level,
			Line:    r.Line,
			Content: r.Content,
		}
		if r.PostTitle != "" || r.PostAuthor != "" || len(r.Categories) > 0 {
			entries[i].Post = &ExportPost{
				Title:      r.PostTitle,
				Author:     r.PostAuthor,
				Categories: r.Categories,
			}
		}
	}

	return entries, nil
}
