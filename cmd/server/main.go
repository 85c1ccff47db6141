package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/gdugdh24/spiritatlas-backend/internal/config"
	"github.com/gdugdh24/spiritatlas-backend/internal/infrastructure/container"
	"github.com/gdugdh24/spiritatlas-backend/internal/infrastructure/scheduler"
	"github.com/gdugdh24/spiritatlas-backend/internal/logging"
)

func main() {
	os.Exit(run())
}

// run returns the exit code, so deferred cleanup finishes before main exits.
func run() int {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		return 1
	}

	logger := logging.New(os.Stdout, logging.LevelFromString(cfg.Logging.Level), cfg.Logging.Format)

	app, err := container.NewContainer(cfg, logger)
	if err != nil {
		logger.Error("failed to initialize application", "error", err)
		return 1
	}
	defer func() {
		if err := app.Close(); err != nil {
			logger.Error("error closing application", "error", err)
		}
	}()

	var sweeper *scheduler.RetentionSweeper
	if cfg.Reports.SweepEnabled() {
		sweeper, err = scheduler.NewRetentionSweeper(cfg.Reports.SweepSchedule, cfg.Reports.Retention, app.Reports, logger)
		if err != nil {
			logger.Error("failed to schedule report sweep", "error", err)
			return 1
		}
		sweeper.Start()
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := app.Server.Start(); err != nil {
			logger.Error("server error", "error", err)
			quit <- syscall.SIGTERM
		}
	}()

	<-quit

	ctx := context.Background()
	if sweeper != nil {
		sweeper.Stop(ctx)
	}
	if err := app.Server.Shutdown(ctx); err != nil {
		logger.Error("server shutdown error", "error", err)
		return 1
	}
	return 0
}
