// Package match ranks candidate profiles against a base profile.
package match

import (
	"context"
	"fmt"
	"log/slog"
	"runtime"
	"sort"
	"time"

	"github.com/gdugdh24/spiritatlas-backend/internal/domain"
	"github.com/gdugdh24/spiritatlas-backend/internal/logging"
	"github.com/gdugdh24/spiritatlas-backend/internal/usecase/compatibility"
	"golang.org/x/sync/errgroup"
)

// Analyzer produces the full report a match preview is projected from.
type Analyzer interface {
	Analyze(ctx context.Context, a, b *domain.UserProfile) (*domain.CompatibilityReport, error)
	MinAccuracy() domain.AccuracyLevel
}

// ProfileSource supplies the candidate pool.
type ProfileSource interface {
	ListProfiles(ctx context.Context) ([]*domain.UserProfile, error)
}

type MatchUseCase struct {
	analyzer Analyzer
	source   ProfileSource
	workers  int
	observer compatibility.Observer
	logger   *slog.Logger
	now      func() time.Time
}

type Option func(*MatchUseCase)

// WithWorkers bounds how many candidates are analyzed at once.
func WithWorkers(n int) Option {
	return func(uc *MatchUseCase) {
		if n > 0 {
			uc.workers = n
		}
	}
}

func WithObserver(o compatibility.Observer) Option {
	return func(uc *MatchUseCase) {
		if o != nil {
			uc.observer = o
		}
	}
}

func WithLogger(logger *slog.Logger) Option {
	return func(uc *MatchUseCase) {
		if logger != nil {
			uc.logger = logger
		}
	}
}

// WithClock sets the time used to compute candidate ages.
func WithClock(now func() time.Time) Option {
	return func(uc *MatchUseCase) {
		uc.now = now
	}
}

func NewMatchUseCase(analyzer Analyzer, source ProfileSource, opts ...Option) *MatchUseCase {
	uc := &MatchUseCase{
		analyzer: analyzer,
		source:   source,
		workers:  runtime.GOMAXPROCS(0),
		observer: compatibility.NopObserver(),
		logger:   logging.NewDiscard(),
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(uc)
	}
	return uc
}

// FindForProfile searches the whole profile source for matches of the
// stored profile baseID.
func (uc *MatchUseCase) FindForProfile(ctx context.Context, baseID string, criteria domain.MatchCriteria) ([]domain.ProfileMatch, error) {
	pool, err := uc.source.ListProfiles(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list profiles: %w", err)
	}
	for _, p := range pool {
		if p != nil && p.ID == baseID {
			return uc.Search(ctx, p, pool, criteria)
		}
	}
	return nil, domain.ErrProfileNotFound
}

// Search analyzes every candidate of pool against base and returns the
// matches passing criteria, best first with ties broken by candidate id.
//
// The base profile is validated up front and its errors are returned. A
// candidate whose analysis fails is left out and logged. When ctx is
// cancelled no further candidates are started and ctx.Err() is returned.
func (uc *MatchUseCase) Search(ctx context.Context, base *domain.UserProfile, pool []*domain.UserProfile, criteria domain.MatchCriteria) (matches []domain.ProfileMatch, err error) {
	ctx, span := uc.observer.Start(ctx, compatibility.OpMatchSearch)
	defer func() { span.End(err) }()

	if base == nil {
		return nil, fmt.Errorf("%w: base profile is required", domain.ErrInvalidProfilePair)
	}
	if err := base.Validate(); err != nil {
		return nil, err
	}
	if err := base.CheckAccuracy(uc.analyzer.MinAccuracy()); err != nil {
		return nil, err
	}
	if err := criteria.Validate(); err != nil {
		return nil, err
	}

	now := uc.now()
	found := make([]*domain.ProfileMatch, len(pool))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(uc.workers)
	for i, candidate := range pool {
		if candidate == nil || candidate.ID == base.ID {
			continue
		}
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			if !withinReach(base, candidate, criteria, now) {
				return nil
			}
			report, err := uc.analyzer.Analyze(gctx, base, candidate)
			if err != nil {
				if ctxErr := gctx.Err(); ctxErr != nil {
					return ctxErr
				}
				uc.logger.WarnContext(ctx, "candidate excluded from match search",
					"base_id", base.ID,
					"candidate_id", candidate.ID,
					"error", err,
				)
				return nil
			}
			if m, ok := project(base, candidate, report, criteria); ok {
				found[i] = &m
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	matches = make([]domain.ProfileMatch, 0, len(pool))
	for _, m := range found {
		if m != nil {
			matches = append(matches, *m)
		}
	}
	sort.SliceStable(matches, func(i, j int) bool {
		si, sj := matches[i].Preview.OverallScore, matches[j].Preview.OverallScore
		if si != sj {
			return si > sj
		}
		return matches[i].Profile.ID < matches[j].Profile.ID
	})
	if criteria.Limit > 0 && len(matches) > criteria.Limit {
		matches = matches[:criteria.Limit]
	}

	uc.logger.DebugContext(ctx, "match search finished",
		"base_id", base.ID,
		"pool_size", len(pool),
		"matches", len(matches),
	)
	return matches, nil
}
