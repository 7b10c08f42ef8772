package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	service "github.com/okian/giftmatch/internal/app"
	"github.com/okian/giftmatch/internal/config"
	"github.com/okian/giftmatch/internal/domain/model"
)

func newScoreCmd() *cobra.Command {
	var (
		path          string
		opportunities bool
	)
	cmd := &cobra.Command{
		Use:   "score",
		Short: "Score a submission JSON file",
		Long:  "Validates a submission file and prints the assembled result as JSON. Weights and the questions file come from the GIFTS_ configuration.",
		RunE: func(cmd *cobra.Command, _ []string) error {
			content, err := os.ReadFile(path)
			if err != nil {
				return fmt.Errorf("failed to read submission file %s: %w", path, err)
			}
			var sub model.Submission
			if err := json.Unmarshal(content, &sub); err != nil {
				return fmt.Errorf("failed to unmarshal submission JSON: %w", err)
			}
			if opportunities {
				sub.IncludeOpportunities = true
			}

			cfg, err := config.Load(cmd.Context())
			if err != nil {
				return err
			}
			cat, err := service.LoadCatalog(cmd.Context(), cfg.QuestionsFile)
			if err != nil {
				return err
			}
			svc := service.New(service.WithCatalog(cat), service.WithEngineOptions(service.EngineOptions(cfg)...))
			defer func() { _ = svc.Stop(cmd.Context()) }()

			res, err := svc.Preview(sub)
			if err != nil {
				return err
			}
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(res)
		},
	}
	cmd.Flags().StringVarP(&path, "file", "f", "", "Path to submission JSON file (required)")
	cmd.Flags().BoolVar(&opportunities, "opportunities", false, "Include sign-up opportunity recommendations")
	if err := cmd.MarkFlagRequired("file"); err != nil {
		panic(fmt.Sprintf("failed to mark file flag as required: %v", err))
	}
	return cmd
}
