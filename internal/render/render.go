// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package render builds the static site: markdown bodies become HTML,
// fenced code keeps its language hint, math spans pass through
// verbatim for client-side typesetting, and the front-matter layout
// key selects the page template.
package render

import (
	"bytes"
	"fmt"
	"html/template"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	ghtml "github.com/yuin/goldmark/renderer/html"

	"github.com/pdiddy/content-engine/internal/post"
	"github.com/pdiddy/content-engine/pkg/types"
)

// Renderer converts posts to HTML pages.
type Renderer struct {
	md   goldmark.Markdown
	tmpl *template.Template
	cfg  types.RenderConfig
}

// New builds a Renderer. Layout templates come from the built-in set,
// optionally overridden by *.html files in cfg.LayoutsDir.
func New(cfg types.RenderConfig) (*Renderer, error) {
	md := goldmark.New(
		goldmark.WithExtensions(extension.GFM),
		goldmark.WithRendererOptions(ghtml.WithUnsafe()),
	)

	tmpl, err := template.New("layouts").Parse(builtinLayouts)
	if err != nil {
		return nil, fmt.Errorf("parsing built-in layouts: %w", err)
	}
	if cfg.LayoutsDir != "" {
		if tmpl, err = tmpl.ParseGlob(filepath.Join(cfg.LayoutsDir, "*.html")); err != nil {
			return nil, fmt.Errorf("parsing layouts from %s: %w", cfg.LayoutsDir, err)
		}
	}

	return &Renderer{md: md, tmpl: tmpl, cfg: cfg}, nil
}

// RenderBody converts a post body to HTML. Math spans are replaced by
// placeholders before markdown conversion and restored afterwards, so
// LaTeX content (underscores, brackets) is never interpreted as
// markdown.
func (r *Renderer) RenderBody(p *types.Post) (template.HTML, error) {
	protected, spans := protectMath(p.Slug, p.Body)

	var buf bytes.Buffer
	if err := r.md.Convert([]byte(protected), &buf); err != nil {
		return "", fmt.Errorf("converting %s: %w", p.Slug, err)
	}

	html := buf.String()
	for i, span := range spans {
		html = strings.Replace(html, placeholder(i), mathHTML(span), 1)
	}
	return template.HTML(html), nil
}

// pageData is the payload handed to layout templates.
type pageData struct {
	SiteTitle  string
	BaseURL    string
	Slug       string
	Title      string
	Author     string
	Date       time.Time
	Categories []string
	Content    template.HTML
}

// RenderPage renders a full HTML page for a post using its layout.
// Unknown layouts fall back to "default".
func (r *Renderer) RenderPage(p *types.Post) ([]byte, error) {
	content, err := r.RenderBody(p)
	if err != nil {
		return nil, err
	}

	layout := p.FrontMatter.Layout
	if layout == "" || r.tmpl.Lookup(layout) == nil {
		layout = "default"
	}

	data := pageData{
		SiteTitle:  r.cfg.SiteTitle,
		BaseURL:    r.cfg.BaseURL,
		Slug:       p.Slug,
		Title:      p.FrontMatter.Title,
		Author:     p.FrontMatter.Author,
		Date:       p.FrontMatter.Date,
		Categories: p.FrontMatter.Categories,
		Content:    content,
	}

	var buf bytes.Buffer
	if err := r.tmpl.ExecuteTemplate(&buf, layout, data); err != nil {
		return nil, fmt.Errorf("executing layout %s for %s: %w", layout, p.Slug, err)
	}
	return buf.Bytes(), nil
}

// BatchResult holds the outcome of a site build.
type BatchResult struct {
	Built  int
	Failed int
}

// Total returns the number of posts processed.
func (r BatchResult) Total() int {
	return r.Built + r.Failed
}

// HasFailures reports whether any page failed to build.
func (r BatchResult) HasFailures() bool {
	return r.Failed > 0
}

// BuildSite writes one page per post under OutputDir/<slug>/index.html
// plus a site index listing posts newest first, printing per-file
// status to w.
func (r *Renderer) BuildSite(posts []types.Post, w io.Writer) (BatchResult, error) {
	var result BatchResult

	if err := os.MkdirAll(r.cfg.OutputDir, 0o755); err != nil {
		return result, fmt.Errorf("creating output directory: %w", err)
	}

	for i := range posts {
		p := &posts[i]

		page, err := r.RenderPage(p)
		if err != nil {
			fmt.Fprintf(w, "failed: %s (%v)\n", p.Slug, err)
			result.Failed++
			continue
		}

		dir := filepath.Join(r.cfg.OutputDir, p.Slug)
		if err := os.MkdirAll(dir, 0o755); err != nil {
			fmt.Fprintf(w, "failed: %s (%v)\n", p.Slug, err)
			result.Failed++
			continue
		}
		if err := os.WriteFile(filepath.Join(dir, "index.html"), page, 0o644); err != nil {
			fmt.Fprintf(w, "failed: %s (%v)\n", p.Slug, err)
			result.Failed++
			continue
		}

		fmt.Fprintf(w, "built:  %s\n", p.Slug)
		result.Built++
	}

	if err := r.writeSiteIndex(posts); err != nil {
		return result, err
	}

	fmt.Fprintf(w, "\nBuild summary: %d built, %d failed (total: %d)\n",
		result.Built, result.Failed, result.Total())
	return result, nil
}

// indexEntry is one row of the site index listing.
type indexEntry struct {
	Slug       string
	Title      string
	Author     string
	Date       time.Time
	Categories []string
	URL        string
}

func (r *Renderer) writeSiteIndex(posts []types.Post) error {
	page, err := r.IndexHTML(posts)
	if err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(r.cfg.OutputDir, "index.html"), page, 0o644)
}

// IndexHTML renders the site index listing, newest post first.
func (r *Renderer) IndexHTML(posts []types.Post) ([]byte, error) {
	entries := make([]indexEntry, 0, len(posts))
	for _, p := range posts {
		title := p.FrontMatter.Title
		if title == "" {
			title = p.Slug
		}
		entries = append(entries, indexEntry{
			Slug:       p.Slug,
			Title:      title,
			Author:     p.FrontMatter.Author,
			Date:       p.FrontMatter.Date,
			Categories: p.FrontMatter.Categories,
			URL:        r.cfg.BaseURL + "/" + p.Slug + "/",
		})
	}
	sort.Slice(entries, func(i, j int) bool {
		if !entries[i].Date.Equal(entries[j].Date) {
			return entries[i].Date.After(entries[j].Date)
		}
		return entries[i].Slug < entries[j].Slug
	})

	data := struct {
		SiteTitle string
		Entries   []indexEntry
	}{SiteTitle: r.cfg.SiteTitle, Entries: entries}

	var buf bytes.Buffer
	if err := r.tmpl.ExecuteTemplate(&buf, "index", data); err != nil {
		return nil, fmt.Errorf("executing index layout: %w", err)
	}
	return buf.Bytes(), nil
}

// placeholder returns the token substituted for math span i. Private
// use area runes survive markdown conversion untouched.
func placeholder(i int) string {
	return fmt.Sprintf("\ue000%d\ue001", i)
}

// mathHTML wraps a math span, delimiters included, in a span element
// for the client-side typesetter.
func mathHTML(span string) string {
	class := "math inline"
	if strings.HasPrefix(span, "$$") || strings.HasPrefix(span, `\[`) {
		class = "math display"
	}
	return `<span class="` + class + `">` + template.HTMLEscapeString(span) + `</span>`
}

// protectMath replaces math spans outside code with placeholders and
// returns the rewritten body plus the extracted spans. Fenced lines are
// located with the same scanner lint uses, so both stages agree on what
// is code. An inline $ span that does not close on its line is left as
// literal text.
func protectMath(slug, body string) (string, []string) {
	st := post.ScanBody(slug, body, 1)
	lines := strings.Split(body, "\n")

	fenced := make([]bool, len(lines)+1)
	for _, cb := range st.CodeBlocks {
		end := cb.EndLine
		if end == 0 {
			end = len(lines)
		}
		for l := cb.StartLine; l <= end && l <= len(lines); l++ {
			fenced[l] = true
		}
	}

	var out strings.Builder
	var spans []string
	var cur strings.Builder
	closer := "" // non-empty while inside a multi-line capable span

	emit := func() {
		spans = append(spans, cur.String())
		out.WriteString(placeholder(len(spans) - 1))
		cur.Reset()
	}

	for li, line := range lines {
		if li > 0 {
			if closer != "" {
				cur.WriteByte('\n')
			} else {
				out.WriteByte('\n')
			}
		}

		if fenced[li+1] {
			// Math cannot contain a code fence; abandon any open span.
			if closer != "" {
				out.WriteString(cur.String())
				cur.Reset()
				closer = ""
			}
			out.WriteString(line)
			continue
		}

		inCode := false
		i := 0
		for i < len(line) {
			if closer != "" {
				if strings.HasPrefix(line[i:], closer) {
					cur.WriteString(closer)
					i += len(closer)
					emit()
					closer = ""
				} else {
					cur.WriteByte(line[i])
					i++
				}
				continue
			}

			c := line[i]
			switch {
			case c == '`':
				inCode = !inCode
				out.WriteByte(c)
				i++
			case inCode:
				out.WriteByte(c)
				i++
			case c == '\\' && i+1 < len(line):
				switch line[i+1] {
				case '(':
					cur.WriteString(`\(`)
					closer = `\)`
				case '[':
					cur.WriteString(`\[`)
					closer = `\]`
				default:
					out.WriteString(line[i : i+2])
				}
				i += 2
			case c == '$' && i+1 < len(line) && line[i+1] == '$':
				cur.WriteString("$$")
				closer = "$$"
				i += 2
			case c == '$':
				end := inlineSpanEnd(line, i+1)
				if end < 0 {
					out.WriteByte(c)
					i++
					break
				}
				cur.WriteString(line[i : end+1])
				i = end + 1
				emit()
			default:
				out.WriteByte(c)
				i++
			}
		}

		if inCode {
			inCode = false
		}
	}

	// An unclosed multi-line span at EOF stays literal.
	if closer != "" {
		out.WriteString(cur.String())
	}

	return out.String(), spans
}

// inlineSpanEnd finds the index of the closing unescaped $ of an
// inline span opened just before from, or -1.
func inlineSpanEnd(line string, from int) int {
	for i := from; i < len(line); i++ {
		switch line[i] {
		case '\\':
			i++
		case '$':
			return i
		case '`':
			return -1
		}
	}
	return -1
}
