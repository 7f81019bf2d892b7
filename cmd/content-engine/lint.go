// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/content-engine/internal/lint"
	"github.com/pdiddy/content-engine/internal/post"
)

var lintCmd = &cobra.Command{
	Use:   "lint",
	Short: "Check posts against the editorial contract",
	Long: `Lint parses every post in the content directory and checks the
editorial contract: required front-matter keys, closed and labeled
code fences, balanced math delimiters, well-formed links, and unique
titles across the corpus.

The exit status is non-zero when errors are found, or when warnings
are found under --strict. Use --links to probe external link targets
over HTTP.`,
	RunE: runLint,
}

func runLint(cmd *cobra.Command, args []string) error {
	corpus := corpusConfig(cmd)

	posts, err := post.LoadCorpus(corpus.ContentDir)
	if err != nil {
		return err
	}

	opts := lint.Options{
		Strict:      boolSetting(cmd, "strict", "lint.strict"),
		Categories:  corpus.Categories,
		CheckLinks:  boolSetting(cmd, "links", "lint.check_links"),
		LinkTimeout: durationSetting(cmd, "link-timeout", "lint.link_timeout"),
	}

	jsonOutput, _ := cmd.Flags().GetBool("json")
	var w io.Writer = os.Stdout
	if jsonOutput {
		w = io.Discard
	}

	report, err := lint.Run(cmd.Context(), posts, opts, w)
	if err != nil {
		return err
	}

	if jsonOutput {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(report); err != nil {
			return err
		}
	}

	if opts.Failed(report) {
		return fmt.Errorf("lint failed: %d error(s), %d warning(s)",
			report.Errors(), report.Warnings())
	}
	return nil
}

func init() {
	lintCmd.Flags().Bool("strict", false, "treat warnings as failures")
	lintCmd.Flags().Bool("links", false, "probe external link targets over HTTP")
	lintCmd.Flags().Duration("link-timeout", 0, "per-request timeout for link probes (default 10s)")
	lintCmd.Flags().Bool("json", false, "output the report as JSON")

	rootCmd.AddCommand(lintCmd)
}
