package types

import "time"

// CorpusConfig locates the post corpus and its editorial conventions.
type CorpusConfig struct {
	// ContentDir is the directory holding the post files.
	ContentDir string `json:"content_dir" yaml:"content_dir"`

	// Categories is the allowed category vocabulary. Empty disables the
	// vocabulary check.
	Categories []string `json:"categories,omitempty" yaml:"categories,omitempty"`
}

// LintConfig holds settings for the lint stage.
type LintConfig struct {
	// Strict makes warnings fail the run alongside errors.
	Strict bool `json:"strict" yaml:"strict"`

	// CheckLinks enables HTTP probing of external link targets.
	CheckLinks bool `json:"check_links" yaml:"check_links"`

	// LinkTimeout is the per-request timeout for link probes (default 10s).
	LinkTimeout time.Duration `json:"link_timeout" yaml:"link_timeout"`
}

// IndexConfig holds settings for the section search index.
type IndexConfig struct {
	// IndexDir is the directory for the SQLite database and exports.
	IndexDir string `json:"index_dir" yaml:"index_dir"`

	// MaxResults is the default maximum number of query results (default 20).
	MaxResults int `json:"max_results" yaml:"max_results"`
}

// RenderConfig holds settings for the site build.
type RenderConfig struct {
	// OutputDir is the directory the built site is written to.
	OutputDir string `json:"output_dir" yaml:"output_dir"`

	// SiteTitle is used in page headers and the site index.
	SiteTitle string `json:"site_title" yaml:"site_title"`

	// BaseURL prefixes generated links (e.g. "/blog"). Optional.
	BaseURL string `json:"base_url,omitempty" yaml:"base_url,omitempty"`

	// LayoutsDir optionally overrides the built-in layout templates
	// with *.html templates from a directory.
	LayoutsDir string `json:"layouts_dir,omitempty" yaml:"layouts_dir,omitempty"`
}

// ServeConfig holds settings for the browse server.
type ServeConfig struct {
	// Addr is the listen address (default ":8080").
	Addr string `json:"addr" yaml:"addr"`
}

// FiguresConfig holds settings for regenerating numeric data tables.
type FiguresConfig struct {
	// DataDir is the directory the generated markdown tables are
	// written to.
	DataDir string `json:"data_dir" yaml:"data_dir"`
}

// ToolConfig groups all stage configurations.
type ToolConfig struct {
	Corpus  CorpusConfig  `json:"corpus" yaml:"corpus"`
	Lint    LintConfig    `json:"lint" yaml:"lint"`
	Index   IndexConfig   `json:"index" yaml:"index"`
	Render  RenderConfig  `json:"render" yaml:"render"`
	Serve   ServeConfig   `json:"serve" yaml:"serve"`
	Figures FiguresConfig `json:"figures" yaml:"figures"`
}
