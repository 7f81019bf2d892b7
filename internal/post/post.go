// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package post parses corpus documents: a front-matter metadata block
// (YAML between --- lines or TOML between +++ lines) followed by a
// markdown body, and scans bodies for the structure the lint, index,
// and render stages need.
package post

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/pelletier/go-toml/v2"
	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/content-engine/pkg/types"
)

const (
	yamlDelim = "---"
	tomlDelim = "+++"
)

// datedFilePattern matches Jekyll-style dated filenames: YYYY-MM-DD-slug.
var datedFilePattern = regexp.MustCompile(`^(\d{4}-\d{2}-\d{2})-(.+)$`)

// dateLayouts are the accepted forms of a front-matter date scalar.
var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02 15:04:05 -0700",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// ParseFile reads and parses a single post file.
func ParseFile(path string) (*types.Post, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("stating %s: %w", path, err)
	}
	return Parse(path, data, info.ModTime()), nil
}

// Parse parses post content. It never fails: a defective metadata block
// is recorded in Post.Problem so the lint stage can report it with
// provenance instead of aborting a batch run.
func Parse(path string, data []byte, modTime time.Time) *types.Post {
	src := strings.ReplaceAll(string(data), "\r\n", "\n")
	slug, fileDate := slugFromFilename(path)

	p := &types.Post{
		Slug:     slug,
		Path:     path,
		Format:   types.FormatNone,
		Body:     src,
		BodyLine: 1,
		ModTime:  modTime,
	}

	var delim string
	switch {
	case src == yamlDelim || strings.HasPrefix(src, yamlDelim+"\n"):
		delim, p.Format = yamlDelim, types.FormatYAML
	case src == tomlDelim || strings.HasPrefix(src, tomlDelim+"\n"):
		delim, p.Format = tomlDelim, types.FormatTOML
	}

	if p.Format == types.FormatNone {
		p.FrontMatter.Date = fileDate
		return p
	}

	meta, body, bodyLine, ok := splitBlock(src, delim)
	if !ok {
		p.Format = types.FormatNone
		p.Body = ""
		p.Problem = fmt.Sprintf("front-matter block opened with %q is never closed", delim)
		return p
	}

	p.Body = body
	p.BodyLine = bodyLine

	fm, err := decodeFrontMatter(meta, p.Format)
	if err != nil {
		p.Problem = fmt.Sprintf("front-matter does not parse as %s: %v", p.Format, err)
	}
	p.FrontMatter = fm
	if p.FrontMatter.Date.IsZero() {
		p.FrontMatter.Date = fileDate
	}
	return p
}

// splitBlock separates the metadata block from the body. The closing
// delimiter must sit alone on its own line. bodyLine is the 1-based
// file line on which the body starts.
func splitBlock(src, delim string) (meta, body string, bodyLine int, ok bool) {
	lines := strings.Split(src, "\n")
	for i := 1; i < len(lines); i++ {
		if strings.TrimRight(lines[i], " \t") == delim {
			meta = strings.Join(lines[1:i], "\n")
			body = strings.Join(lines[i+1:], "\n")
			return meta, body, i + 2, true
		}
	}
	return "", "", 0, false
}

func decodeFrontMatter(meta string, format types.FrontMatterFormat) (types.FrontMatter, error) {
	raw := map[string]any{}
	var err error
	switch format {
	case types.FormatYAML:
		err = yaml.Unmarshal([]byte(meta), &raw)
	case types.FormatTOML:
		err = toml.Unmarshal([]byte(meta), &raw)
	}
	if err != nil {
		return types.FrontMatter{}, err
	}

	fm := types.FrontMatter{}
	for k, v := range raw {
		switch strings.ToLower(k) {
		case "layout":
			fm.Layout = stringValue(v)
		case "title":
			fm.Title = stringValue(v)
		case "author":
			fm.Author = stringValue(v)
		case "categories", "category":
			fm.Categories = stringList(v)
		case "date":
			fm.Date = dateValue(v)
		default:
			if fm.Extra == nil {
				fm.Extra = map[string]any{}
			}
			fm.Extra[k] = v
		}
	}
	return fm, nil
}

func stringValue(v any) string {
	switch s := v.(type) {
	case nil:
		return ""
	case string:
		return strings.TrimSpace(s)
	default:
		return strings.TrimSpace(fmt.Sprint(v))
	}
}

// stringList normalizes a categories value: a list stays a list, a
// single space-separated string (the Jekyll shorthand) is split.
func stringList(v any) []string {
	switch list := v.(type) {
	case nil:
		return nil
	case string:
		return strings.Fields(list)
	case []string:
		out := make([]string, 0, len(list))
		for _, e := range list {
			if e = strings.TrimSpace(e); e != "" {
				out = append(out, e)
			}
		}
		return out
	case []any:
		var out []string
		for _, e := range list {
			if s := stringValue(e); s != "" {
				out = append(out, s)
			}
		}
		return out
	default:
		return []string{stringValue(v)}
	}
}

func dateValue(v any) time.Time {
	switch d := v.(type) {
	case time.Time:
		return d
	case toml.LocalDate:
		return d.AsTime(time.UTC)
	case toml.LocalDateTime:
		return d.AsTime(time.UTC)
	case string:
		for _, layout := range dateLayouts {
			if t, err := time.Parse(layout, strings.TrimSpace(d)); err == nil {
				return t
			}
		}
	}
	return time.Time{}
}

// slugFromFilename derives the post slug and, for dated filenames, the
// fallback publication date.
func slugFromFilename(path string) (string, time.Time) {
	base := filepath.Base(path)
	base = strings.TrimSuffix(base, filepath.Ext(base))
	if m := datedFilePattern.FindStringSubmatch(base); m != nil {
		t, err := time.Parse("2006-01-02", m[1])
		if err == nil {
			return m[2], t
		}
		return m[2], time.Time{}
	}
	return base, time.Time{}
}
