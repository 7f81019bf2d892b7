// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/content-engine/internal/figures"
)

var figuresCmd = &cobra.Command{
	Use:   "figures",
	Short: "Regenerate the numeric tables the posts quote",
	Long: `Figures recomputes the machine-epsilon derivation and the
quadrature convergence comparison and writes them as markdown tables
into the data directory, so the numbers in the posts can be refreshed
instead of drifting from the prose.`,
	RunE: runFigures,
}

func runFigures(cmd *cobra.Command, args []string) error {
	dataDir := stringSetting(cmd, "data-dir", "figures.data_dir")
	return figures.WriteAll(dataDir, os.Stdout)
}

func init() {
	figuresCmd.Flags().String("data-dir", "data", "directory the generated tables are written to")

	rootCmd.AddCommand(figuresCmd)
}
