package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/okian/giftmatch/internal/adapters/export"
	"github.com/okian/giftmatch/internal/adapters/repository"
	"github.com/okian/giftmatch/internal/domain/model"
)

func newExportCmd() *cobra.Command {
	var (
		dbPath string
		out    string
	)
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export stored assessments as CSV",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if _, err := os.Stat(dbPath); err != nil {
				return fmt.Errorf("database %s: %w", dbPath, err)
			}
			store, err := repository.NewSQLiteStore(cmd.Context(), dbPath)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			all, err := store.List(cmd.Context(), model.ListFilter{})
			if err != nil {
				return fmt.Errorf("failed to list assessments: %w", err)
			}

			var w io.Writer = cmd.OutOrStdout()
			if out != "" {
				f, err := os.Create(out)
				if err != nil {
					return fmt.Errorf("failed to create %s: %w", out, err)
				}
				defer func() { _ = f.Close() }()
				w = f
			}
			return export.Write(w, all)
		},
	}
	cmd.Flags().StringVar(&dbPath, "sqlite", "", "Path to the SQLite database (required)")
	cmd.Flags().StringVarP(&out, "out", "o", "", "Write to this file instead of stdout")
	if err := cmd.MarkFlagRequired("sqlite"); err != nil {
		panic(fmt.Sprintf("failed to mark sqlite flag as required: %v", err))
	}
	return cmd
}
