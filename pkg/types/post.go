// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "time"

// FrontMatterFormat identifies the metadata block syntax at the top of a post.
type FrontMatterFormat string

const (
	// FormatYAML is a metadata block between `---` delimiter lines.
	FormatYAML FrontMatterFormat = "yaml"

	// FormatTOML is a metadata block between `+++` delimiter lines.
	FormatTOML FrontMatterFormat = "toml"

	// FormatNone means the file has no recognizable metadata block.
	FormatNone FrontMatterFormat = "none"
)

// FrontMatter holds the recognized metadata keys of a post. Keys the
// author added beyond the recognized set are preserved in Extra.
type FrontMatter struct {
	// Layout selects the rendering template (e.g. "post").
	Layout string `json:"layout,omitempty" yaml:"layout,omitempty"`

	// Title is the post title shown in listings and page headers.
	Title string `json:"title,omitempty" yaml:"title,omitempty"`

	// Author is the post author as written in the source file.
	Author string `json:"author,omitempty" yaml:"author,omitempty"`

	// Categories are the post's topic labels. A single space-separated
	// string in the source is normalized to a list.
	Categories []string `json:"categories,omitempty" yaml:"categories,omitempty"`

	// Date is the publication date, from the metadata block or, failing
	// that, from a date-prefixed filename.
	Date time.Time `json:"date,omitempty" yaml:"date,omitempty"`

	// Extra holds unrecognized metadata keys verbatim.
	Extra map[string]any `json:"extra,omitempty" yaml:"extra,omitempty"`
}

// Post is a parsed corpus document.
type Post struct {
	// Slug identifies the post, derived from the filename with any
	// leading date prefix and the extension removed.
	Slug string `json:"slug" yaml:"slug"`

	// Path is the source file path.
	Path string `json:"path" yaml:"path"`

	// Format records which metadata block syntax the file uses.
	Format FrontMatterFormat `json:"format" yaml:"format"`

	// FrontMatter is the parsed metadata block.
	FrontMatter FrontMatter `json:"front_matter" yaml:"front_matter"`

	// Body is the markdown content after the metadata block, with line
	// endings normalized to \n.
	Body string `json:"body,omitempty" yaml:"body,omitempty"`

	// BodyLine is the 1-based file line on which Body starts.
	BodyLine int `json:"body_line" yaml:"body_line"`

	// ModTime is the source file modification time, used for
	// incremental indexing.
	ModTime time.Time `json:"mod_time" yaml:"mod_time"`

	// Problem describes a metadata block defect found during parsing
	// (unterminated block, undecodable YAML/TOML). Empty when the file
	// parsed cleanly. The lint stage turns this into a finding.
	Problem string `json:"-" yaml:"-"`
}

// Section is a heading-delimited region of a post body.
type Section struct {
	// ID is a stable identifier within the corpus (slug plus ordinal).
	ID string `json:"id" yaml:"id"`

	// Slug is the owning post's slug.
	Slug string `json:"slug" yaml:"slug"`

	// Heading is the section heading text. The preamble before the
	// first heading has an empty heading and level 0.
	Heading string `json:"heading" yaml:"heading"`

	// Level is the heading level (1-6).
	Level int `json:"level" yaml:"level"`

	// Line is the 1-based file line of the heading (or of the first
	// body line for the preamble).
	Line int `json:"line" yaml:"line"`

	// Content is the section text, headings excluded.
	Content string `json:"content" yaml:"content"`
}

// CodeBlock describes a fenced code block in a post body.
type CodeBlock struct {
	// Lang is the language hint from the fence info string. Empty when
	// the fence carries no hint.
	Lang string `json:"lang" yaml:"lang"`

	// StartLine is the 1-based file line of the opening fence.
	StartLine int `json:"start_line" yaml:"start_line"`

	// EndLine is the 1-based file line of the closing fence, or 0 when
	// the fence is never closed.
	EndLine int `json:"end_line" yaml:"end_line"`
}

// Link is a markdown link found outside code blocks.
type Link struct {
	// Text is the link text between brackets.
	Text string `json:"text" yaml:"text"`

	// Target is the link destination between parentheses.
	Target string `json:"target" yaml:"target"`

	// Line is the 1-based file line the link appears on.
	Line int `json:"line" yaml:"line"`
}
