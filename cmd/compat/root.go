package main

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/gdugdh24/spiritatlas-backend/internal/domain"
	"github.com/gdugdh24/spiritatlas-backend/internal/logging"
	"github.com/gdugdh24/spiritatlas-backend/internal/usecase/compatibility"
	"github.com/spf13/cobra"
)

type rootOptions struct {
	logLevel    string
	minAccuracy string
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}
	cmd := &cobra.Command{
		Use:   "compat",
		Short: "Offline compatibility analysis over a YAML profile file",
		Long: `Run the compatibility engine locally without the HTTP server.

Profiles are read from a YAML file with a top-level "profiles" list.

Examples:
  compat analyze profiles.yaml luna theo
  compat match profiles.yaml luna --min-score=70 --limit=5
  compat classify profiles.yaml
  compat zodiac 1994-08-12`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", "warn", "Log level (debug, info, warn, error)")
	cmd.PersistentFlags().StringVar(&opts.minAccuracy, "min-accuracy", string(domain.AccuracyBasic), "Lowest profile accuracy accepted (MINIMAL, BASIC, GOOD, EXCELLENT, MAXIMUM)")

	cmd.AddCommand(
		newAnalyzeCmd(opts),
		newMatchCmd(opts),
		newClassifyCmd(opts),
		newZodiacCmd(),
		newTokenCmd(),
	)
	return cmd
}

func (o *rootOptions) logger(cmd *cobra.Command) *slog.Logger {
	return logging.New(cmd.ErrOrStderr(), logging.LevelFromString(o.logLevel), "text")
}

func (o *rootOptions) engine(logger *slog.Logger) (*compatibility.Engine, error) {
	level := domain.AccuracyLevel(strings.ToUpper(o.minAccuracy))
	if !level.Valid() {
		return nil, fmt.Errorf("unknown accuracy level %q", o.minAccuracy)
	}
	return compatibility.NewEngine(
		compatibility.WithMinAccuracy(level),
		compatibility.WithCatalog(compatibility.DefaultCatalog()),
		compatibility.WithLogger(logger),
	), nil
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func openInput(path string) (io.ReadCloser, error) {
	if path == "-" {
		return io.NopCloser(os.Stdin), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open profiles: %w", err)
	}
	return f, nil
}
