// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package post

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/pdiddy/content-engine/pkg/types"
)

// Create writes a dated post skeleton into contentDir and returns its
// path. The filename is now's date plus the slugified title. It refuses
// to overwrite an existing file.
func Create(contentDir string, fm types.FrontMatter, now time.Time) (string, error) {
	if strings.TrimSpace(fm.Title) == "" {
		return "", fmt.Errorf("a title is required to create a post")
	}
	if fm.Layout == "" {
		fm.Layout = "post"
	}

	name := fmt.Sprintf("%s-%s.md", now.Format("2006-01-02"), Slugify(fm.Title))
	path := filepath.Join(contentDir, name)

	if _, err := os.Stat(path); err == nil {
		return "", fmt.Errorf("%s already exists", path)
	}
	if err := os.MkdirAll(contentDir, 0o755); err != nil {
		return "", fmt.Errorf("creating content directory: %w", err)
	}

	if err := os.WriteFile(path, []byte(Serialize(fm, "")), 0o644); err != nil {
		return "", fmt.Errorf("writing %s: %w", path, err)
	}
	return path, nil
}

// Serialize renders a post back to its on-disk form with a YAML
// metadata block. Keys are written in the conventional order.
func Serialize(fm types.FrontMatter, body string) string {
	var b strings.Builder
	b.WriteString(yamlDelim + "\n")
	fmt.Fprintf(&b, "layout: %s\n", fm.Layout)
	fmt.Fprintf(&b, "title: %q\n", fm.Title)
	if fm.Author != "" {
		fmt.Fprintf(&b, "author: %s\n", fm.Author)
	}
	if len(fm.Categories) > 0 {
		fmt.Fprintf(&b, "categories: [%s]\n", strings.Join(fm.Categories, ", "))
	}
	if !fm.Date.IsZero() {
		fmt.Fprintf(&b, "date: %s\n", fm.Date.Format("2006-01-02"))
	}
	b.WriteString(yamlDelim + "\n\n")
	if body != "" {
		b.WriteString(body)
		if !strings.HasSuffix(body, "\n") {
			b.WriteByte('\n')
		}
	}
	return b.String()
}

// Slugify lowercases a title and collapses every non-alphanumeric run
// into a single hyphen.
func Slugify(title string) string {
	var b strings.Builder
	lastHyphen := true // suppress a leading hyphen
	for _, r := range strings.ToLower(title) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			lastHyphen = false
		default:
			if !lastHyphen {
				b.WriteByte('-')
				lastHyphen = true
			}
		}
	}
	return strings.TrimRight(b.String(), "-")
}
