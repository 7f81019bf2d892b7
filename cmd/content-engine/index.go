// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pdiddy/content-engine/internal/index"
	"github.com/pdiddy/content-engine/internal/post"
	"github.com/pdiddy/content-engine/pkg/types"
)

var indexCmd = &cobra.Command{
	Use:   "index",
	Short: "Manage the section search index (store, retrieve, export)",
	Long: `Index manages a local SQLite full-text index over the corpus,
keyed by heading-delimited sections so search results point at the
exact passage. Use subcommands to (re)index the corpus, query it, or
export it.`,
}

// --- store subcommand ---

var indexStoreCmd = &cobra.Command{
	Use:   "store",
	Short: "Index the corpus into the section database",
	Long: `Store parses the content directory, splits each post into sections,
and ingests them into the SQLite database with FTS5 search. Unchanged
files are skipped on subsequent runs.`,
	RunE: runIndexStore,
}

func runIndexStore(cmd *cobra.Command, args []string) error {
	corpus := corpusConfig(cmd)

	posts, err := post.LoadCorpus(corpus.ContentDir)
	if err != nil {
		return err
	}

	store, err := index.NewStore(indexConfig(cmd))
	if err != nil {
		return err
	}
	defer store.Close()

	summary, err := store.Ingest(cmd.Context(), posts, os.Stdout)
	if err != nil {
		return err
	}
	if summary.Failed > 0 {
		return fmt.Errorf("%d post(s) failed indexing", summary.Failed)
	}
	return nil
}

// --- retrieve subcommand ---

var indexRetrieveCmd = &cobra.Command{
	Use:   "retrieve [query]",
	Short: "Query the index with full-text search and filters",
	Long: `Retrieve searches sections with FTS5 full-text search, structured
filters (category, author, layout, post), or a combination of both.
Results carry provenance: post, heading, and source line.

Use --trace with a section ID to view the current source text.`,
	RunE: runIndexRetrieve,
}

func runIndexRetrieve(cmd *cobra.Command, args []string) error {
	traceID, _ := cmd.Flags().GetString("trace")

	store, err := index.NewStore(indexConfig(cmd))
	if err != nil {
		return err
	}
	defer store.Close()

	// Trace mode: show source text for a specific section.
	if traceID != "" {
		text, err := store.Trace(cmd.Context(), traceID)
		if err != nil {
			return err
		}
		fmt.Println(text)
		return nil
	}

	opts := queryOptsFromFlags(cmd, args)
	if opts.IsEmpty() {
		return fmt.Errorf("query or filter required: provide a search query, --category, --author, --layout, or --post")
	}

	results, err := store.Retrieve(cmd.Context(), opts)
	if err != nil {
		return err
	}

	jsonOutput, _ := cmd.Flags().GetBool("json")
	return formatRetrieveOutput(results, jsonOutput)
}

func formatRetrieveOutput(results []index.QueryResult, jsonOutput bool) error {
	if jsonOutput {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(results)
	}

	if len(results) == 0 {
		fmt.Println("No results found.")
		return nil
	}

	fmt.Fprintf(os.Stdout, "%-4s  %-24s  %-24s  %-40s  %s\n",
		"Rank", "Post", "Heading", "Content", "Line")
	fmt.Fprintln(os.Stdout, strings.Repeat("-", 104))

	for i, r := range results {
		slug := r.Slug
		if len(slug) > 24 {
			slug = slug[:21] + "..."
		}
		heading := r.Heading
		if len(heading) > 24 {
			heading = heading[:21] + "..."
		}
		content := strings.Join(strings.Fields(r.Content), " ")
		if len(content) > 40 {
			content = content[:37] + "..."
		}
		fmt.Fprintf(os.Stdout, "%-4d  %-24s  %-24s  %-40s  %d\n",
			i+1, slug, heading, content, r.Line)
	}

	fmt.Fprintf(os.Stdout, "\n%d results\n", len(results))
	return nil
}

// --- export subcommand ---

var indexExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the index to YAML or JSON",
	Long: `Export writes the full index (or a filtered subset) to export.yaml
or export.json in the index directory. Supports the same filter flags
as retrieve for partial exports.`,
	RunE: runIndexExport,
}

func runIndexExport(cmd *cobra.Command, args []string) error {
	format, _ := cmd.Flags().GetString("format")

	store, err := index.NewStore(indexConfig(cmd))
	if err != nil {
		return err
	}
	defer store.Close()

	opts := queryOptsFromFlags(cmd, args)

	switch format {
	case "yaml", "":
		if err := store.ExportYAML(cmd.Context(), opts); err != nil {
			return err
		}
		fmt.Println("Exported to export.yaml")
	case "json":
		if err := store.ExportJSON(cmd.Context(), opts); err != nil {
			return err
		}
		fmt.Println("Exported to export.json")
	default:
		return fmt.Errorf("unsupported format %q: use yaml or json", format)
	}

	return nil
}

// --- shared helpers ---

func indexConfig(cmd *cobra.Command) types.IndexConfig {
	return types.IndexConfig{
		IndexDir:   stringSetting(cmd, "index-dir", "index.index_dir"),
		MaxResults: intSetting(cmd, "max-results", "index.max_results"),
	}
}

func queryOptsFromFlags(cmd *cobra.Command, args []string) index.QueryOptions {
	queryText, _ := cmd.Flags().GetString("query")
	if queryText == "" && len(args) > 0 {
		queryText = strings.Join(args, " ")
	}

	category, _ := cmd.Flags().GetString("category")
	author, _ := cmd.Flags().GetString("author")
	layout, _ := cmd.Flags().GetString("layout")
	slug, _ := cmd.Flags().GetString("post")
	limit, _ := cmd.Flags().GetInt("limit")

	return index.QueryOptions{
		Query:      queryText,
		Category:   category,
		Author:     author,
		Layout:     layout,
		Slug:       slug,
		MaxResults: limit,
	}
}

func init() {
	// Shared flags on the parent command, inherited by subcommands.
	indexCmd.PersistentFlags().String("index-dir", "index", "directory for the index database and exports")
	indexCmd.PersistentFlags().Int("max-results", 20, "maximum number of query results")

	// Retrieve flags.
	indexRetrieveCmd.Flags().String("query", "", "full-text search query")
	indexRetrieveCmd.Flags().String("category", "", "filter by category")
	indexRetrieveCmd.Flags().String("author", "", "filter by author")
	indexRetrieveCmd.Flags().String("layout", "", "filter by layout")
	indexRetrieveCmd.Flags().String("post", "", "filter by post slug")
	indexRetrieveCmd.Flags().Int("limit", 0, "maximum results (0 = use default)")
	indexRetrieveCmd.Flags().String("trace", "", "show source text for a section ID")
	indexRetrieveCmd.Flags().Bool("json", false, "output results as JSON")

	// Export flags.
	indexExportCmd.Flags().String("format", "yaml", "export format: yaml or json")
	indexExportCmd.Flags().String("query", "", "full-text search filter for partial export")
	indexExportCmd.Flags().String("category", "", "filter by category for partial export")
	indexExportCmd.Flags().String("author", "", "filter by author for partial export")
	indexExportCmd.Flags().String("layout", "", "filter by layout for partial export")
	indexExportCmd.Flags().String("post", "", "filter by post slug for partial export")
	indexExportCmd.Flags().Int("limit", 0, "maximum sections to export (0 = all)")

	// Wire subcommands.
	indexCmd.AddCommand(indexStoreCmd)
	indexCmd.AddCommand(indexRetrieveCmd)
	indexCmd.AddCommand(indexExportCmd)

	rootCmd.AddCommand(indexCmd)
}
