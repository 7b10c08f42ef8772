package main

import (
	"fmt"

	"github.com/spf13/cobra"

	service "github.com/okian/giftmatch/internal/app"
)

func newCatalogCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "Inspect the reference catalog",
	}

	var questions string
	check := &cobra.Command{
		Use:   "check",
		Short: "Verify the mapping tables reference only known teams, opportunities and questions",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cat, err := service.LoadCatalog(cmd.Context(), questions)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "catalog ok: %d questions, %d teams, %d opportunities\n",
				len(cat.Questions()), len(cat.Teams()), len(cat.Opportunities()))
			return err
		},
	}
	check.Flags().StringVarP(&questions, "questions", "q", "", "Optional questions YAML file to check against the mapping")
	cmd.AddCommand(check)
	return cmd
}
