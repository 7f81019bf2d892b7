// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package server

import (
	"io"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/pdiddy/content-engine/internal/lint"
	"github.com/pdiddy/content-engine/internal/post"
	"github.com/pdiddy/content-engine/pkg/types"
)

func (s *Server) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// postSummary is the listing payload for one post.
type postSummary struct {
	Slug       string    `json:"slug"`
	Title      string    `json:"title"`
	Author     string    `json:"author,omitempty"`
	Categories []string  `json:"categories,omitempty"`
	Date       time.Time `json:"date,omitempty"`
	Path       string    `json:"path"`
}

func (s *Server) loadCorpus(c *gin.Context) ([]types.Post, bool) {
	posts, err := post.LoadCorpus(s.cfg.Corpus.ContentDir)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return nil, false
	}
	return posts, true
}

func (s *Server) listPosts(c *gin.Context) {
	posts, ok := s.loadCorpus(c)
	if !ok {
		return
	}

	summaries := make([]postSummary, 0, len(posts))
	for _, p := range posts {
		summaries = append(summaries, postSummary{
			Slug:       p.Slug,
			Title:      p.FrontMatter.Title,
			Author:     p.FrontMatter.Author,
			Categories: p.FrontMatter.Categories,
			Date:       p.FrontMatter.Date,
			Path:       p.Path,
		})
	}
	c.JSON(http.StatusOK, summaries)
}

func (s *Server) getPost(c *gin.Context) {
	posts, ok := s.loadCorpus(c)
	if !ok {
		return
	}

	p := post.FindBySlug(posts, c.Param("slug"))
	if p == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "post not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"slug":         p.Slug,
		"format":       p.Format,
		"front_matter": p.FrontMatter,
		"body":         p.Body,
		"path":         p.Path,
	})
}

// runLint lints the corpus on demand. Link probing is never enabled
// here; a browse request should not fan out to the internet.
func (s *Server) runLint(c *gin.Context) {
	posts, ok := s.loadCorpus(c)
	if !ok {
		return
	}

	opts := lint.Options{
		Strict:     s.cfg.Lint.Strict,
		Categories: s.cfg.Corpus.Categories,
	}
	// The progress stream is dropped; the handler returns the
	// structured report instead.
	report, err := lint.Run(c.Request.Context(), posts, opts, io.Discard)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, report)
}

func (s *Server) indexPage(c *gin.Context) {
	posts, ok := s.loadCorpus(c)
	if !ok {
		return
	}

	page, err := s.renderer.IndexHTML(posts)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Data(http.StatusOK, "text/html; charset=utf-8", page)
}

func (s *Server) postPage(c *gin.Context) {
	posts, ok := s.loadCorpus(c)
	if !ok {
		return
	}

	p := post.FindBySlug(posts, c.Param("slug"))
	if p == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "post not found"})
		return
	}

	page, err := s.renderer.RenderPage(p)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Data(http.StatusOK, "text/html; charset=utf-8", page)
}
