package main

import (
	"github.com/gdugdh24/spiritatlas-backend/internal/domain"
	"github.com/gdugdh24/spiritatlas-backend/internal/repository/memory"
	"github.com/gdugdh24/spiritatlas-backend/internal/usecase/match"
	"github.com/spf13/cobra"
)

func newMatchCmd(root *rootOptions) *cobra.Command {
	criteria := domain.DefaultMatchCriteria()
	var (
		minLevel   string
		categories []string
		workers    int
	)
	cmd := &cobra.Command{
		Use:   "match <profiles.yaml> <profile-id>",
		Short: "Rank every other profile in the file against one profile",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			profiles, err := loadProfiles(args[0])
			if err != nil {
				return err
			}
			logger := root.logger(cmd)
			engine, err := root.engine(logger)
			if err != nil {
				return err
			}

			repo := memory.NewProfileRepository()
			for _, p := range profiles {
				if err := repo.Create(cmd.Context(), p); err != nil {
					return err
				}
			}

			criteria.MinLevel = domain.CompatibilityLevel(minLevel)
			for _, c := range categories {
				criteria.PreferredCategories = append(criteria.PreferredCategories, domain.CompatibilityCategory(c))
			}

			uc := match.NewMatchUseCase(engine, repo, match.WithWorkers(workers), match.WithLogger(logger))
			matches, err := uc.FindForProfile(cmd.Context(), args[1], criteria)
			if err != nil {
				return err
			}
			return writeJSON(cmd.OutOrStdout(), matches)
		},
	}
	cmd.Flags().Float64Var(&criteria.MinScore, "min-score", criteria.MinScore, "Minimum overall score (0-100)")
	cmd.Flags().StringVar(&minLevel, "min-level", "", "Minimum compatibility level, e.g. GOOD")
	cmd.Flags().StringSliceVar(&categories, "category", nil, "Require a strength in this category (repeatable)")
	cmd.Flags().Float64Var(&criteria.MaxDistanceKm, "max-distance", 0, "Maximum birth place distance in km (0 for any)")
	cmd.Flags().IntVar(&criteria.Limit, "limit", 0, "Maximum number of matches (0 for all)")
	cmd.Flags().IntVar(&workers, "workers", 0, "Concurrent analyses (0 for GOMAXPROCS)")
	return cmd
}
