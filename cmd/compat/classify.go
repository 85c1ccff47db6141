package main

import (
	"fmt"
	"time"

	"github.com/gdugdh24/spiritatlas-backend/internal/domain"
	"github.com/gdugdh24/spiritatlas-backend/internal/usecase/compatibility"
	"github.com/spf13/cobra"
)

func newClassifyCmd(root *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "classify <profiles.yaml> [profile-id...]",
		Short: "Print archetype assignments for profiles",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			profiles, err := loadProfiles(args[0])
			if err != nil {
				return err
			}
			if len(args) > 1 {
				selected := make([]*domain.UserProfile, 0, len(args)-1)
				for _, id := range args[1:] {
					p, err := findProfile(profiles, id)
					if err != nil {
						return err
					}
					selected = append(selected, p)
				}
				profiles = selected
			}

			engine, err := root.engine(root.logger(cmd))
			if err != nil {
				return err
			}
			out := make([]domain.ArchetypeAssignment, 0, len(profiles))
			for _, p := range profiles {
				out = append(out, engine.Classify(p))
			}
			return writeJSON(cmd.OutOrStdout(), out)
		},
	}
}

type zodiacOutput struct {
	Date    string            `json:"date"`
	Sign    domain.ZodiacSign `json:"zodiac_sign"`
	Element domain.Element    `json:"element"`
}

func newZodiacCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "zodiac <YYYY-MM-DD>",
		Short: "Print the sun sign and element for a birth date",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := time.Parse(time.DateOnly, args[0])
			if err != nil {
				return fmt.Errorf("invalid date %q: %w", args[0], err)
			}
			sign := compatibility.ZodiacSignFor(d.Month(), d.Day())
			return writeJSON(cmd.OutOrStdout(), zodiacOutput{
				Date:    d.Format(time.DateOnly),
				Sign:    sign,
				Element: compatibility.ElementOf(sign),
			})
		},
	}
}
