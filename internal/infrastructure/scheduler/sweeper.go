// Package scheduler runs periodic maintenance jobs on a cron schedule.
package scheduler

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"
)

// Purger deletes persisted reports older than the retention period.
type Purger interface {
	PurgeExpired(ctx context.Context, retention time.Duration) (int64, error)
}

// RetentionSweeper purges expired reports on a standard five-field cron
// schedule. Runs never overlap.
type RetentionSweeper struct {
	cron      *cron.Cron
	purger    Purger
	retention time.Duration
	timeout   time.Duration
	logger    *slog.Logger
}

func NewRetentionSweeper(schedule string, retention time.Duration, purger Purger, logger *slog.Logger) (*RetentionSweeper, error) {
	cl := cronLogger{logger: logger}
	s := &RetentionSweeper{
		cron:      cron.New(cron.WithLogger(cl), cron.WithChain(cron.Recover(cl), cron.SkipIfStillRunning(cl))),
		purger:    purger,
		retention: retention,
		timeout:   time.Minute,
		logger:    logger,
	}
	if _, err := s.cron.AddFunc(schedule, s.run); err != nil {
		return nil, fmt.Errorf("invalid sweep schedule %q: %w", schedule, err)
	}
	return s, nil
}

func (s *RetentionSweeper) Start() {
	s.cron.Start()
	s.logger.Info("report retention sweep scheduled", "retention", s.retention)
}

// Stop prevents further runs and waits for a running sweep or ctx.
func (s *RetentionSweeper) Stop(ctx context.Context) {
	select {
	case <-s.cron.Stop().Done():
	case <-ctx.Done():
	}
}

// RunOnce performs a single sweep immediately.
func (s *RetentionSweeper) RunOnce(ctx context.Context) (int64, error) {
	return s.purger.PurgeExpired(ctx, s.retention)
}

func (s *RetentionSweeper) run() {
	ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
	defer cancel()
	if _, err := s.RunOnce(ctx); err != nil {
		s.logger.Error("report retention sweep failed", "error", err)
	}
}

// cronLogger adapts slog to the cron.Logger interface.
type cronLogger struct {
	logger *slog.Logger
}

func (l cronLogger) Info(msg string, keysAndValues ...interface{}) {
	l.logger.Debug("cron: "+msg, keysAndValues...)
}

func (l cronLogger) Error(err error, msg string, keysAndValues ...interface{}) {
	l.logger.Error("cron: "+msg, append(keysAndValues, "error", err)...)
}
