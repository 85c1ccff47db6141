package repository

import (
	"context"
	"time"

	"github.com/gdugdh24/spiritatlas-backend/internal/domain"
)

// ProfileRepository stores user profiles. It is also the profile source of
// match search.
type ProfileRepository interface {
	Create(ctx context.Context, profile *domain.UserProfile) error
	GetByID(ctx context.Context, id string) (*domain.UserProfile, error)
	Update(ctx context.Context, profile *domain.UserProfile) error
	Delete(ctx context.Context, id string) error
	ListProfiles(ctx context.Context) ([]*domain.UserProfile, error)
}

// ReportCache keeps the latest report per unordered profile pair.
//
// Get returns domain.ErrReportNotFound on a miss. Delete drops the entry of
// one pair, if any. Invalidate drops every
// entry involving the profile and remembers when it happened: a later Put
// of a report generated before that moment fails with domain.ErrStaleReport,
// and Get never returns such a report.
type ReportCache interface {
	Get(ctx context.Context, idA, idB string) (*domain.CompatibilityReport, error)
	Put(ctx context.Context, report *domain.CompatibilityReport) error
	Delete(ctx context.Context, idA, idB string) error
	Invalidate(ctx context.Context, profileID string) error
}

// ReportStore persists generated reports for history and listing. Delete
// returns domain.ErrReportNotFound when the pair has no stored report.
type ReportStore interface {
	Save(ctx context.Context, report *domain.CompatibilityReport) error
	ListByProfile(ctx context.Context, profileID string) ([]*domain.CompatibilityReport, error)
	Delete(ctx context.Context, idA, idB string) error
	DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error)
}
