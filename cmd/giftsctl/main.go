// Package main provides giftsctl, an offline tool for scoring submissions,
// checking the catalog and exporting stored assessments.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "giftsctl",
		Short:         "Spiritual gifts assessment tooling",
		Long:          "giftsctl scores submission files, validates the reference catalog and exports stored assessments as CSV.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newScoreCmd(), newCatalogCmd(), newExportCmd())
	return root
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
