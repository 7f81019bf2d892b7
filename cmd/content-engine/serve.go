// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"github.com/spf13/cobra"

	"github.com/pdiddy/content-engine/internal/server"
	"github.com/pdiddy/content-engine/pkg/types"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the corpus over HTTP for editors",
	Long: `Serve starts a local HTTP server over the content directory: a JSON
post API, an on-demand lint endpoint, and rendered HTML pages. The
corpus is re-read per request, so edits on disk show up on reload.`,
	RunE: runServe,
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg := types.ToolConfig{
		Corpus: corpusConfig(cmd),
		Lint: types.LintConfig{
			Strict: boolSetting(cmd, "strict", "lint.strict"),
		},
		Render: renderConfig(cmd),
		Serve: types.ServeConfig{
			Addr: stringSetting(cmd, "addr", "serve.addr"),
		},
	}

	s, err := server.New(cfg)
	if err != nil {
		return err
	}
	return s.Run()
}

func init() {
	serveCmd.Flags().String("addr", ":8080", "listen address")
	serveCmd.Flags().Bool("strict", false, "treat warnings as failures in the lint endpoint")
	serveCmd.Flags().String("output-dir", "site", "directory the built site is written to")
	serveCmd.Flags().String("site-title", "", "site title for page headers and the index")
	serveCmd.Flags().String("base-url", "", "link prefix for generated pages")
	serveCmd.Flags().String("layouts-dir", "", "directory of *.html templates overriding the built-in layouts")

	rootCmd.AddCommand(serveCmd)
}
