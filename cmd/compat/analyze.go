package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newAnalyzeCmd(root *rootOptions) *cobra.Command {
	var summary bool
	cmd := &cobra.Command{
		Use:   "analyze <profiles.yaml> <profile-a> <profile-b>",
		Short: "Print the compatibility report of two profiles",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			profiles, err := loadProfiles(args[0])
			if err != nil {
				return err
			}
			a, err := findProfile(profiles, args[1])
			if err != nil {
				return err
			}
			b, err := findProfile(profiles, args[2])
			if err != nil {
				return err
			}

			engine, err := root.engine(root.logger(cmd))
			if err != nil {
				return err
			}
			report, err := engine.Analyze(cmd.Context(), a, b)
			if err != nil {
				return err
			}
			if summary {
				_, err = fmt.Fprintln(cmd.OutOrStdout(), report.Summary())
				return err
			}
			return writeJSON(cmd.OutOrStdout(), report)
		},
	}
	cmd.Flags().BoolVar(&summary, "summary", false, "Print a one-paragraph summary instead of the JSON report")
	return cmd
}
