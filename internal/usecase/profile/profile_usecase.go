package profile

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/gdugdh24/spiritatlas-backend/internal/domain"
	"github.com/gdugdh24/spiritatlas-backend/internal/logging"
	"github.com/gdugdh24/spiritatlas-backend/internal/repository"
	"github.com/google/uuid"
)

type ProfileUseCase struct {
	profileRepo repository.ProfileRepository
	reportCache repository.ReportCache
	logger      *slog.Logger
	now         func() time.Time
	newID       func() string
}

type Option func(*ProfileUseCase)

func WithLogger(logger *slog.Logger) Option {
	return func(uc *ProfileUseCase) {
		if logger != nil {
			uc.logger = logger
		}
	}
}

func WithClock(now func() time.Time) Option {
	return func(uc *ProfileUseCase) { uc.now = now }
}

func WithIDGenerator(newID func() string) Option {
	return func(uc *ProfileUseCase) { uc.newID = newID }
}

func NewProfileUseCase(
	profileRepo repository.ProfileRepository,
	reportCache repository.ReportCache,
	opts ...Option,
) *ProfileUseCase {
	uc := &ProfileUseCase{
		profileRepo: profileRepo,
		reportCache: reportCache,
		logger:      logging.NewDiscard(),
		now:         time.Now,
		newID:       uuid.NewString,
	}
	for _, opt := range opts {
		opt(uc)
	}
	return uc
}

// CreateProfile stores a new profile. An empty id is replaced by a fresh
// uuid; timestamps and completion are always set here.
func (uc *ProfileUseCase) CreateProfile(ctx context.Context, profile *domain.UserProfile) (*domain.UserProfile, error) {
	p := profile.Clone()
	if p.ID == "" {
		p.ID = uc.newID()
	}
	now := uc.now().UTC()
	p.CreatedAt = now
	p.LastModified = now
	p.Completion = domain.ComputeCompletion(p)

	if err := p.Validate(); err != nil {
		return nil, err
	}
	if err := uc.profileRepo.Create(ctx, p); err != nil {
		return nil, fmt.Errorf("failed to create profile: %w", err)
	}
	uc.logger.InfoContext(ctx, "profile created",
		"profile_id", p.ID,
		"accuracy", p.Completion.AccuracyLevel,
	)
	return p, nil
}

func (uc *ProfileUseCase) GetProfile(ctx context.Context, id string) (*domain.UserProfile, error) {
	return uc.profileRepo.GetByID(ctx, id)
}

func (uc *ProfileUseCase) ListProfiles(ctx context.Context) ([]*domain.UserProfile, error) {
	return uc.profileRepo.ListProfiles(ctx)
}

// UpdateProfile replaces the attributes of a stored profile, bumps
// LastModified and invalidates every cached report involving it.
func (uc *ProfileUseCase) UpdateProfile(ctx context.Context, id string, profile *domain.UserProfile) (*domain.UserProfile, error) {
	existing, err := uc.profileRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	p := profile.Clone()
	p.ID = id
	p.CreatedAt = existing.CreatedAt
	p.LastModified = uc.now().UTC()
	p.Completion = domain.ComputeCompletion(p)

	if err := p.Validate(); err != nil {
		return nil, err
	}
	if err := uc.profileRepo.Update(ctx, p); err != nil {
		return nil, fmt.Errorf("failed to update profile: %w", err)
	}
	uc.invalidate(ctx, id)
	return p, nil
}

func (uc *ProfileUseCase) DeleteProfile(ctx context.Context, id string) error {
	if err := uc.profileRepo.Delete(ctx, id); err != nil {
		return err
	}
	uc.invalidate(ctx, id)
	return nil
}

// invalidate is best effort: cached reports are also rejected on read when
// they predate LastModified.
func (uc *ProfileUseCase) invalidate(ctx context.Context, id string) {
	if err := uc.reportCache.Invalidate(ctx, id); err != nil {
		uc.logger.WarnContext(ctx, "failed to invalidate cached reports", "profile_id", id, "error", err)
	}
}
