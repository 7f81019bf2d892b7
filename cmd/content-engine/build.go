// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/content-engine/internal/post"
	"github.com/pdiddy/content-engine/internal/render"
	"github.com/pdiddy/content-engine/pkg/types"
)

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Build the static site from the corpus",
	Long: `Build renders every post to HTML under the output directory, one
page per post plus a site index. Fenced code keeps its language hint
and math spans are passed through verbatim for client-side
typesetting; the front-matter layout key selects the page template.`,
	RunE: runBuild,
}

func runBuild(cmd *cobra.Command, args []string) error {
	corpus := corpusConfig(cmd)

	posts, err := post.LoadCorpus(corpus.ContentDir)
	if err != nil {
		return err
	}

	renderer, err := render.New(renderConfig(cmd))
	if err != nil {
		return err
	}

	result, err := renderer.BuildSite(posts, os.Stdout)
	if err != nil {
		return err
	}
	if result.HasFailures() {
		return fmt.Errorf("%d page(s) failed to build", result.Failed)
	}
	return nil
}

func renderConfig(cmd *cobra.Command) types.RenderConfig {
	return types.RenderConfig{
		OutputDir:  stringSetting(cmd, "output-dir", "render.output_dir"),
		SiteTitle:  stringSetting(cmd, "site-title", "render.site_title"),
		BaseURL:    stringSetting(cmd, "base-url", "render.base_url"),
		LayoutsDir: stringSetting(cmd, "layouts-dir", "render.layouts_dir"),
	}
}

func init() {
	buildCmd.Flags().String("output-dir", "site", "directory the built site is written to")
	buildCmd.Flags().String("site-title", "", "site title for page headers and the index")
	buildCmd.Flags().String("base-url", "", "link prefix for generated pages")
	buildCmd.Flags().String("layouts-dir", "", "directory of *.html templates overriding the built-in layouts")

	rootCmd.AddCommand(buildCmd)
}
