// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package server exposes the corpus over HTTP for editors: a JSON post
// API, an on-demand lint endpoint, and rendered HTML pages. The corpus
// is re-read per request so edits on disk show up immediately.
package server

import (
	"fmt"

	"github.com/gin-gonic/gin"

	"github.com/pdiddy/content-engine/internal/render"
	"github.com/pdiddy/content-engine/pkg/types"
)

// Server serves the corpus browse surface.
type Server struct {
	cfg      types.ToolConfig
	renderer *render.Renderer
}

// New builds a Server from the tool configuration.
func New(cfg types.ToolConfig) (*Server, error) {
	renderer, err := render.New(cfg.Render)
	if err != nil {
		return nil, fmt.Errorf("building renderer: %w", err)
	}
	return &Server{cfg: cfg, renderer: renderer}, nil
}

// Router builds the gin engine with all routes attached.
func (s *Server) Router() *gin.Engine {
	r := gin.Default()

	r.GET("/healthz", s.health)

	api := r.Group("/api")
	{
		api.GET("/posts", s.listPosts)
		api.GET("/posts/:slug", s.getPost)
		api.GET("/lint", s.runLint)
	}

	r.GET("/", s.indexPage)
	r.GET("/posts/:slug", s.postPage)

	return r
}

// Run starts the server on the configured address.
func (s *Server) Run() error {
	addr := s.cfg.Serve.Addr
	if addr == "" {
		addr = ":8080"
	}
	return s.Router().Run(addr)
}
