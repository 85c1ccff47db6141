package main

import (
	"errors"
	"fmt"
	"time"

	"github.com/gdugdh24/spiritatlas-backend/internal/config"
	"github.com/gdugdh24/spiritatlas-backend/internal/usecase/auth"
	"github.com/spf13/cobra"
)

func newTokenCmd() *cobra.Command {
	var ttl time.Duration
	cmd := &cobra.Command{
		Use:   "token <user-id>",
		Short: "Issue an API access token signed with JWT_ACCESS_SECRET",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			if cfg.JWT.AccessSecret == "" {
				return errors.New("JWT_ACCESS_SECRET is not set; the server runs without authentication")
			}
			token, expiresAt, err := auth.NewTokenService(cfg.JWT.AccessSecret, ttl).Issue(args[0])
			if err != nil {
				return err
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "%s\nexpires %s\n", token, expiresAt.Format(time.RFC3339))
			return err
		},
	}
	cmd.Flags().DurationVar(&ttl, "ttl", auth.DefaultTokenTTL, "Token lifetime")
	return cmd
}
