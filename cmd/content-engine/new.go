// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/pdiddy/content-engine/internal/post"
	"github.com/pdiddy/content-engine/pkg/types"
)

var newCmd = &cobra.Command{
	Use:   "new [title]",
	Short: "Scaffold a dated post with front-matter",
	Long: `New creates a post skeleton in the content directory, named with
today's date and a slug derived from the title, and refuses to
overwrite an existing file.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runNew,
}

func runNew(cmd *cobra.Command, args []string) error {
	corpus := corpusConfig(cmd)

	author, _ := cmd.Flags().GetString("author")
	layout, _ := cmd.Flags().GetString("layout")
	categories, _ := cmd.Flags().GetStringSlice("categories")

	fm := types.FrontMatter{
		Title:      strings.Join(args, " "),
		Author:     author,
		Layout:     layout,
		Categories: categories,
		Date:       time.Now(),
	}

	path, err := post.Create(corpus.ContentDir, fm, time.Now())
	if err != nil {
		return err
	}
	fmt.Println("Created", path)
	return nil
}

func init() {
	newCmd.Flags().String("author", "", "post author")
	newCmd.Flags().String("layout", "post", "post layout")
	newCmd.Flags().StringSlice("categories", nil, "post categories")

	rootCmd.AddCommand(newCmd)
}
