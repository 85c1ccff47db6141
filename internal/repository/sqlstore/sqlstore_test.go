package sqlstore

import (
	"context"
	"testing"
	"time"

	"github.com/gdugdh24/spiritatlas-backend/internal/domain"
	"github.com/gdugdh24/spiritatlas-backend/internal/testutil"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"
)

func newTestDB(t *testing.T) *sqlx.DB {
	t.Helper()
	db, err := sqlx.Open("sqlite", ":memory:")
	require.NoError(t, err)
	// Each connection to :memory: is its own database.
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = db.Close() })
	require.NoError(t, EnsureSchema(context.Background(), db))
	return db
}

func TestEnsureSchema_Idempotent(t *testing.T) {
	db := newTestDB(t)
	assert.NoError(t, EnsureSchema(context.Background(), db))
}

func TestProfileRepository_CRUD(t *testing.T) {
	ctx := context.Background()
	repo := NewProfileRepository(newTestDB(t))
	luna := testutil.Luna()

	require.NoError(t, repo.Create(ctx, luna))
	assert.ErrorIs(t, repo.Create(ctx, luna), domain.ErrProfileExists)

	got, err := repo.GetByID(ctx, "luna")
	require.NoError(t, err)
	assert.Equal(t, luna.Name, got.Name)
	assert.True(t, luna.BirthDateTime.Equal(got.BirthDateTime))
	assert.Equal(t, luna.SexualEnergy, got.SexualEnergy)
	assert.Equal(t, luna.Completion, got.Completion)
	require.NotNil(t, got.BirthPlace)
	assert.Equal(t, "Lisbon", got.BirthPlace.City)

	got.Nickname = "Lu"
	got.LastModified = time.Now()
	require.NoError(t, repo.Update(ctx, got))
	again, err := repo.GetByID(ctx, "luna")
	require.NoError(t, err)
	assert.Equal(t, "Lu", again.Nickname)

	assert.ErrorIs(t, repo.Update(ctx, testutil.Theo()), domain.ErrProfileNotFound)

	require.NoError(t, repo.Delete(ctx, "luna"))
	_, err = repo.GetByID(ctx, "luna")
	assert.ErrorIs(t, err, domain.ErrProfileNotFound)
	assert.ErrorIs(t, repo.Delete(ctx, "luna"), domain.ErrProfileNotFound)
}

func TestProfileRepository_ListProfiles(t *testing.T) {
	ctx := context.Background()
	repo := NewProfileRepository(newTestDB(t))
	for _, p := range testutil.Pool(3) {
		require.NoError(t, repo.Create(ctx, p))
	}
	require.NoError(t, repo.Create(ctx, testutil.Luna()))

	list, err := repo.ListProfiles(ctx)
	require.NoError(t, err)
	ids := make([]string, 0, len(list))
	for _, p := range list {
		ids = append(ids, p.ID)
	}
	assert.Equal(t, []string{"candidate-00", "candidate-01", "candidate-02", "luna"}, ids)
}

func storedReport(idA, idB, id string, at time.Time) *domain.CompatibilityReport {
	return &domain.CompatibilityReport{
		ID:          id,
		ProfileA:    domain.UserProfile{ID: idA, Name: idA},
		ProfileB:    domain.UserProfile{ID: idB, Name: idB},
		Scores:      domain.CompatibilityScores{Numerology: 80, Astrology: 70, Tantric: 60, Energetic: 50, Communication: 40, Emotional: 30},
		GeneratedAt: at.UTC(),
	}
}

func TestReportStore_SaveListDelete(t *testing.T) {
	ctx := context.Background()
	store := NewReportStore(newTestDB(t))
	base := time.Date(2026, time.March, 1, 12, 0, 0, 0, time.UTC)

	require.NoError(t, store.Save(ctx, storedReport("a", "b", "r1", base)))
	require.NoError(t, store.Save(ctx, storedReport("c", "a", "r2", base.Add(time.Hour))))
	require.NoError(t, store.Save(ctx, storedReport("b", "c", "r3", base.Add(2*time.Hour))))
	// Replaces r1 for the same unordered pair.
	require.NoError(t, store.Save(ctx, storedReport("b", "a", "r4", base.Add(3*time.Hour))))

	list, err := store.ListByProfile(ctx, "a")
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "r4", list[0].ID)
	assert.Equal(t, "r2", list[1].ID)
	assert.Equal(t, 50.0, list[0].Scores.Energetic)

	n, err := store.DeleteOlderThan(ctx, base.Add(90*time.Minute))
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	list, err = store.ListByProfile(ctx, "c")
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "r3", list[0].ID)
}

func TestReportStore_DeletePair(t *testing.T) {
	ctx := context.Background()
	store := NewReportStore(newTestDB(t))
	base := time.Date(2026, time.March, 1, 12, 0, 0, 0, time.UTC)

	require.NoError(t, store.Save(ctx, storedReport("a", "b", "r1", base)))
	require.NoError(t, store.Save(ctx, storedReport("a", "c", "r2", base)))

	require.NoError(t, store.Delete(ctx, "b", "a"))
	assert.ErrorIs(t, store.Delete(ctx, "a", "b"), domain.ErrReportNotFound)

	list, err := store.ListByProfile(ctx, "a")
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "r2", list[0].ID)
}
