// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package post

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"

	"github.com/pdiddy/content-engine/pkg/types"
)

// LoadCorpus parses every markdown file under contentDir, recursively,
// skipping dot files and dot directories. Posts are returned sorted by
// slug so batch output is deterministic.
func LoadCorpus(contentDir string) ([]types.Post, error) {
	var posts []types.Post

	err := filepath.WalkDir(contentDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if path != contentDir && strings.HasPrefix(d.Name(), ".") {
				return fs.SkipDir
			}
			return nil
		}
		if strings.HasPrefix(d.Name(), ".") {
			return nil
		}
		ext := strings.ToLower(filepath.Ext(d.Name()))
		if ext != ".md" && ext != ".markdown" {
			return nil
		}
		p, err := ParseFile(path)
		if err != nil {
			return err
		}
		posts = append(posts, *p)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walking content directory %s: %w", contentDir, err)
	}

	sort.Slice(posts, func(i, j int) bool { return posts[i].Slug < posts[j].Slug })
	return posts, nil
}

// FindBySlug returns the corpus post with the given slug, or nil.
func FindBySlug(posts []types.Post, slug string) *types.Post {
	for i := range posts {
		if posts[i].Slug == slug {
			return &posts[i]
		}
	}
	return nil
}

// WordCount counts whitespace-separated words in a body.
func WordCount(body string) int {
	return len(strings.Fields(body))
}
