// Package report serves compatibility reports for stored profiles, backed by
// the report cache and the report store.
package report

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/gdugdh24/spiritatlas-backend/internal/domain"
	"github.com/gdugdh24/spiritatlas-backend/internal/logging"
	"github.com/gdugdh24/spiritatlas-backend/internal/repository"
)

type Analyzer interface {
	Analyze(ctx context.Context, a, b *domain.UserProfile) (*domain.CompatibilityReport, error)
}

// Explainer writes a natural language explanation of a report.
type Explainer interface {
	ExplainReport(ctx context.Context, report *domain.CompatibilityReport) (string, error)
}

// CacheRecorder counts cache lookups.
type CacheRecorder interface {
	RecordCacheHit()
	RecordCacheMiss()
}

type ReportUseCase struct {
	analyzer  Analyzer
	profiles  repository.ProfileRepository
	cache     repository.ReportCache
	store     repository.ReportStore
	explainer Explainer
	recorder  CacheRecorder
	logger    *slog.Logger
	now       func() time.Time
}

type Option func(*ReportUseCase)

func WithExplainer(e Explainer) Option {
	return func(uc *ReportUseCase) { uc.explainer = e }
}

func WithCacheRecorder(r CacheRecorder) Option {
	return func(uc *ReportUseCase) { uc.recorder = r }
}

func WithLogger(logger *slog.Logger) Option {
	return func(uc *ReportUseCase) {
		if logger != nil {
			uc.logger = logger
		}
	}
}

func WithClock(now func() time.Time) Option {
	return func(uc *ReportUseCase) { uc.now = now }
}

// NewReportUseCase wires the service. store may be nil, in which case
// reports are only cached.
func NewReportUseCase(
	analyzer Analyzer,
	profiles repository.ProfileRepository,
	cache repository.ReportCache,
	store repository.ReportStore,
	opts ...Option,
) *ReportUseCase {
	uc := &ReportUseCase{
		analyzer: analyzer,
		profiles: profiles,
		cache:    cache,
		store:    store,
		logger:   logging.NewDiscard(),
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(uc)
	}
	return uc
}

// GetReport returns the report of two stored profiles. A cached report is
// used only when it was generated no earlier than the last modification of
// both profiles; otherwise the pair is analyzed again and the cache and
// store are refreshed. Cache and store failures are logged, not returned.
func (uc *ReportUseCase) GetReport(ctx context.Context, idA, idB string) (*domain.CompatibilityReport, error) {
	if idA == idB {
		return nil, fmt.Errorf("%w: %s", domain.ErrSameProfile, idA)
	}
	a, err := uc.profiles.GetByID(ctx, idA)
	if err != nil {
		return nil, fmt.Errorf("failed to get profile %s: %w", idA, err)
	}
	b, err := uc.profiles.GetByID(ctx, idB)
	if err != nil {
		return nil, fmt.Errorf("failed to get profile %s: %w", idB, err)
	}

	cached, err := uc.cache.Get(ctx, idA, idB)
	switch {
	case err == nil && fresh(cached, a, b):
		uc.recordHit()
		return cached, nil
	case err != nil && !errors.Is(err, domain.ErrReportNotFound):
		uc.logger.WarnContext(ctx, "report cache lookup failed", "profile_a", idA, "profile_b", idB, "error", err)
	}
	uc.recordMiss()

	report, err := uc.analyzer.Analyze(ctx, a, b)
	if err != nil {
		return nil, err
	}

	if err := uc.cache.Put(ctx, report); err != nil {
		if errors.Is(err, domain.ErrStaleReport) {
			uc.logger.DebugContext(ctx, "report not cached, profile changed during analysis", "report_id", report.ID)
		} else {
			uc.logger.WarnContext(ctx, "failed to cache report", "report_id", report.ID, "error", err)
		}
	}
	if uc.store != nil {
		if err := uc.store.Save(ctx, report); err != nil {
			uc.logger.WarnContext(ctx, "failed to save report", "report_id", report.ID, "error", err)
		}
	}
	return report, nil
}

// fresh reports whether the report is not older than either profile.
func fresh(r *domain.CompatibilityReport, a, b *domain.UserProfile) bool {
	return !r.GeneratedAt.Before(a.LastModified) && !r.GeneratedAt.Before(b.LastModified)
}

// Analyze scores two ad hoc profiles without touching cache or store. The
// completion of both profiles is recomputed so the report carries it.
func (uc *ReportUseCase) Analyze(ctx context.Context, a, b *domain.UserProfile) (*domain.CompatibilityReport, error) {
	return uc.analyzer.Analyze(ctx, withCompletion(a), withCompletion(b))
}

func withCompletion(p *domain.UserProfile) *domain.UserProfile {
	if p == nil {
		return nil
	}
	cp := p.Clone()
	cp.Completion = domain.ComputeCompletion(cp)
	return cp
}

// InvalidateProfile drops the cached reports involving the profile.
func (uc *ReportUseCase) InvalidateProfile(ctx context.Context, profileID string) error {
	if err := uc.cache.Invalidate(ctx, profileID); err != nil {
		return fmt.Errorf("failed to invalidate reports of %s: %w", profileID, err)
	}
	return nil
}

// DeleteReport drops the report of one pair from cache and store. Without a
// store it only evicts the cached entry.
func (uc *ReportUseCase) DeleteReport(ctx context.Context, idA, idB string) error {
	if idA == idB {
		return fmt.Errorf("%w: %s", domain.ErrSameProfile, idA)
	}
	if err := uc.cache.Delete(ctx, idA, idB); err != nil {
		return fmt.Errorf("failed to evict report %s/%s: %w", idA, idB, err)
	}
	if uc.store == nil {
		return nil
	}
	if err := uc.store.Delete(ctx, idA, idB); err != nil {
		return fmt.Errorf("failed to delete report %s/%s: %w", idA, idB, err)
	}
	uc.logger.InfoContext(ctx, "report deleted", "profile_a", idA, "profile_b", idB)
	return nil
}

// ListReports returns the stored reports of a profile, newest first.
func (uc *ReportUseCase) ListReports(ctx context.Context, profileID string) ([]*domain.CompatibilityReport, error) {
	if _, err := uc.profiles.GetByID(ctx, profileID); err != nil {
		return nil, err
	}
	if uc.store == nil {
		return []*domain.CompatibilityReport{}, nil
	}
	reports, err := uc.store.ListByProfile(ctx, profileID)
	if err != nil {
		return nil, fmt.Errorf("failed to list reports: %w", err)
	}
	if reports == nil {
		reports = []*domain.CompatibilityReport{}
	}
	return reports, nil
}

// Explain returns a short explanation of the pair's report. Without an
// explainer, or when it fails, the report's own summary is used.
func (uc *ReportUseCase) Explain(ctx context.Context, idA, idB string) (string, error) {
	report, err := uc.GetReport(ctx, idA, idB)
	if err != nil {
		return "", err
	}
	if uc.explainer == nil {
		return report.Summary(), nil
	}
	text, err := uc.explainer.ExplainReport(ctx, report)
	if err != nil || text == "" {
		uc.logger.WarnContext(ctx, "explainer unavailable, using summary", "report_id", report.ID, "error", err)
		return report.Summary(), nil
	}
	return text, nil
}

// PurgeExpired deletes stored reports generated more than retention ago.
func (uc *ReportUseCase) PurgeExpired(ctx context.Context, retention time.Duration) (int64, error) {
	if uc.store == nil || retention <= 0 {
		return 0, nil
	}
	cutoff := uc.now().Add(-retention)
	n, err := uc.store.DeleteOlderThan(ctx, cutoff)
	if err != nil {
		return 0, fmt.Errorf("failed to purge reports: %w", err)
	}
	uc.logger.InfoContext(ctx, "expired reports purged", "deleted", n, "cutoff", cutoff)
	return n, nil
}

func (uc *ReportUseCase) recordHit() {
	if uc.recorder != nil {
		uc.recorder.RecordCacheHit()
	}
}

func (uc *ReportUseCase) recordMiss() {
	if uc.recorder != nil {
		uc.recorder.RecordCacheMiss()
	}
}
