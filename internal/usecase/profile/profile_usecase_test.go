package profile

import (
	"context"
	"testing"
	"time"

	"github.com/gdugdh24/spiritatlas-backend/internal/domain"
	"github.com/gdugdh24/spiritatlas-backend/internal/repository/memory"
	"github.com/gdugdh24/spiritatlas-backend/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProfileUseCase_Lifecycle(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, time.April, 2, 10, 0, 0, 0, time.UTC)
	cache := memory.NewReportCache(memory.WithClock(func() time.Time { return now }))
	uc := NewProfileUseCase(memory.NewProfileRepository(), cache,
		WithClock(func() time.Time { return now }),
		WithIDGenerator(func() string { return "generated-id" }),
	)

	input := testutil.Luna()
	input.ID = ""
	input.Completion = domain.ProfileCompletion{}

	created, err := uc.CreateProfile(ctx, input)
	require.NoError(t, err)
	assert.Equal(t, "generated-id", created.ID)
	assert.Equal(t, now, created.CreatedAt)
	assert.Equal(t, now, created.LastModified)
	assert.Equal(t, domain.ComputeCompletion(created), created.Completion)
	assert.Empty(t, input.ID, "input is not mutated")

	_, err = uc.CreateProfile(ctx, created)
	assert.ErrorIs(t, err, domain.ErrProfileExists)

	theo, err := uc.CreateProfile(ctx, testutil.Theo())
	require.NoError(t, err)
	require.NoError(t, cache.Put(ctx, &domain.CompatibilityReport{
		ID: "r1", ProfileA: *created, ProfileB: *theo, GeneratedAt: now,
	}))

	now = now.Add(time.Hour)
	edit := created.Clone()
	edit.Nickname = "Lu"
	edit.CreatedAt = time.Time{}
	updated, err := uc.UpdateProfile(ctx, created.ID, edit)
	require.NoError(t, err)
	assert.Equal(t, "Lu", updated.Nickname)
	assert.Equal(t, created.CreatedAt, updated.CreatedAt)
	assert.Equal(t, now, updated.LastModified)

	_, err = cache.Get(ctx, "generated-id", "theo")
	assert.ErrorIs(t, err, domain.ErrReportNotFound)

	list, err := uc.ListProfiles(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 2)

	require.NoError(t, uc.DeleteProfile(ctx, created.ID))
	_, err = uc.GetProfile(ctx, created.ID)
	assert.ErrorIs(t, err, domain.ErrProfileNotFound)
}

func TestProfileUseCase_Validation(t *testing.T) {
	ctx := context.Background()
	uc := NewProfileUseCase(memory.NewProfileRepository(), memory.NewReportCache())

	_, err := uc.CreateProfile(ctx, &domain.UserProfile{Name: "No Birthday"})
	assert.ErrorIs(t, err, domain.ErrInvalidProfilePair)

	_, err = uc.UpdateProfile(ctx, "ghost", testutil.Luna())
	assert.ErrorIs(t, err, domain.ErrProfileNotFound)

	bad := testutil.Luna()
	bad.Gender = "ROBOT"
	_, err = uc.CreateProfile(ctx, bad)
	var verr *domain.ProfileValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "gender", verr.Field)
}
