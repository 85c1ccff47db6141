package report

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/gdugdh24/spiritatlas-backend/internal/domain"
	"github.com/gdugdh24/spiritatlas-backend/internal/repository"
	"github.com/gdugdh24/spiritatlas-backend/internal/repository/memory"
	"github.com/gdugdh24/spiritatlas-backend/internal/testutil"
	"github.com/gdugdh24/spiritatlas-backend/internal/usecase/compatibility"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeClock struct{ t time.Time }

func (c *fakeClock) Now() time.Time { return c.t }

func (c *fakeClock) Advance(d time.Duration) { c.t = c.t.Add(d) }

func (c *fakeClock) At(d time.Duration) time.Time { return c.t.Add(d) }

type fixture struct {
	uc       *ReportUseCase
	profiles repository.ProfileRepository
	store    *memory.ReportStore
	metrics  *compatibility.Metrics
	clock    *fakeClock
}

func newFixture(t *testing.T, opts ...Option) *fixture {
	t.Helper()
	ctx := context.Background()
	clock := &fakeClock{t: time.Date(2026, time.January, 1, 9, 0, 0, 0, time.UTC)}

	var n int
	engine := compatibility.NewEngine(
		compatibility.WithClock(clock.Now),
		compatibility.WithIDGenerator(func() string { n++; return fmt.Sprintf("report-%d", n) }),
	)
	profiles := memory.NewProfileRepository()
	for _, p := range []*domain.UserProfile{testutil.Luna(), testutil.Theo()} {
		require.NoError(t, profiles.Create(ctx, p))
	}
	store := memory.NewReportStore()
	metrics := compatibility.NewMetrics()

	opts = append([]Option{WithCacheRecorder(metrics), WithClock(clock.Now)}, opts...)
	uc := NewReportUseCase(engine, profiles, memory.NewReportCache(memory.WithClock(clock.Now)), store, opts...)
	return &fixture{uc: uc, profiles: profiles, store: store, metrics: metrics, clock: clock}
}

func TestGetReport_CachesPerUnorderedPair(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	first, err := f.uc.GetReport(ctx, "luna", "theo")
	require.NoError(t, err)
	assert.Equal(t, "report-1", first.ID)

	again, err := f.uc.GetReport(ctx, "theo", "luna")
	require.NoError(t, err)
	assert.Equal(t, "report-1", again.ID)

	snap := f.metrics.Snapshot()
	assert.Equal(t, int64(1), snap.CacheHits)
	assert.Equal(t, int64(1), snap.CacheMisses)
	assert.InDelta(t, 0.5, snap.CacheHitRate, 1e-9)
}

func TestGetReport_RegeneratesWhenProfileChanged(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	first, err := f.uc.GetReport(ctx, "luna", "theo")
	require.NoError(t, err)

	theo, err := f.profiles.GetByID(ctx, "theo")
	require.NoError(t, err)
	theo.Nickname = "T"
	theo.LastModified = f.clock.At(time.Hour)
	require.NoError(t, f.profiles.Update(ctx, theo))
	f.clock.Advance(2 * time.Hour)

	second, err := f.uc.GetReport(ctx, "luna", "theo")
	require.NoError(t, err)
	assert.NotEqual(t, first.ID, second.ID)
	assert.Equal(t, "T", second.ProfileB.Nickname)
}

func TestGetReport_InvalidateProfile(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	first, err := f.uc.GetReport(ctx, "luna", "theo")
	require.NoError(t, err)

	f.clock.Advance(time.Minute)
	require.NoError(t, f.uc.InvalidateProfile(ctx, "luna"))

	second, err := f.uc.GetReport(ctx, "luna", "theo")
	require.NoError(t, err)
	assert.NotEqual(t, first.ID, second.ID)
	assert.Equal(t, int64(2), f.metrics.Snapshot().CacheMisses)
}

func TestGetReport_Errors(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	_, err := f.uc.GetReport(ctx, "luna", "luna")
	assert.ErrorIs(t, err, domain.ErrSameProfile)

	_, err = f.uc.GetReport(ctx, "luna", "ghost")
	assert.ErrorIs(t, err, domain.ErrProfileNotFound)
}

type brokenCache struct{}

func (brokenCache) Get(context.Context, string, string) (*domain.CompatibilityReport, error) {
	return nil, errors.New("connection refused")
}
func (brokenCache) Put(context.Context, *domain.CompatibilityReport) error {
	return errors.New("connection refused")
}
func (brokenCache) Invalidate(context.Context, string) error {
	return errors.New("connection refused")
}
func (brokenCache) Delete(context.Context, string, string) error {
	return errors.New("connection refused")
}

func TestGetReport_CacheFailureIsNotFatal(t *testing.T) {
	ctx := context.Background()
	profiles := memory.NewProfileRepository()
	require.NoError(t, profiles.Create(ctx, testutil.Luna()))
	require.NoError(t, profiles.Create(ctx, testutil.Theo()))
	uc := NewReportUseCase(compatibility.NewEngine(), profiles, brokenCache{}, nil)

	report, err := uc.GetReport(ctx, "luna", "theo")
	require.NoError(t, err)
	assert.Equal(t, domain.LevelExcellent, report.Level())

	assert.Error(t, uc.InvalidateProfile(ctx, "luna"))

	list, err := uc.ListReports(ctx, "luna")
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestListReports(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	report, err := f.uc.GetReport(ctx, "luna", "theo")
	require.NoError(t, err)

	list, err := f.uc.ListReports(ctx, "theo")
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, report.ID, list[0].ID)

	_, err = f.uc.ListReports(ctx, "ghost")
	assert.ErrorIs(t, err, domain.ErrProfileNotFound)
}

func TestDeleteReport(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	first, err := f.uc.GetReport(ctx, "luna", "theo")
	require.NoError(t, err)

	require.NoError(t, f.uc.DeleteReport(ctx, "theo", "luna"))

	list, err := f.uc.ListReports(ctx, "luna")
	require.NoError(t, err)
	assert.Empty(t, list)

	again, err := f.uc.GetReport(ctx, "luna", "theo")
	require.NoError(t, err)
	assert.NotEqual(t, first.ID, again.ID)
	assert.Equal(t, int64(2), f.metrics.Snapshot().CacheMisses)

	require.NoError(t, f.uc.DeleteReport(ctx, "luna", "theo"))
	assert.ErrorIs(t, f.uc.DeleteReport(ctx, "luna", "theo"), domain.ErrReportNotFound)
	assert.ErrorIs(t, f.uc.DeleteReport(ctx, "luna", "luna"), domain.ErrSameProfile)
}

func TestDeleteReport_CacheFailure(t *testing.T) {
	uc := NewReportUseCase(compatibility.NewEngine(), memory.NewProfileRepository(), brokenCache{}, nil)
	err := uc.DeleteReport(context.Background(), "luna", "theo")
	assert.ErrorContains(t, err, "connection refused")
}

type stubExplainer struct {
	text string
	err  error
}

func (s stubExplainer) ExplainReport(context.Context, *domain.CompatibilityReport) (string, error) {
	return s.text, s.err
}

func TestExplain(t *testing.T) {
	ctx := context.Background()

	t.Run("without explainer", func(t *testing.T) {
		f := newFixture(t)
		text, err := f.uc.Explain(ctx, "luna", "theo")
		require.NoError(t, err)
		report, err := f.uc.GetReport(ctx, "luna", "theo")
		require.NoError(t, err)
		assert.Equal(t, report.Summary(), text)
	})

	t.Run("explainer fails", func(t *testing.T) {
		f := newFixture(t, WithExplainer(stubExplainer{err: errors.New("quota exceeded")}))
		text, err := f.uc.Explain(ctx, "luna", "theo")
		require.NoError(t, err)
		assert.Contains(t, text, "Luna and Theo share excellent compatibility")
	})

	t.Run("explainer answers", func(t *testing.T) {
		f := newFixture(t, WithExplainer(stubExplainer{text: "Two fires, one hearth."}))
		text, err := f.uc.Explain(ctx, "luna", "theo")
		require.NoError(t, err)
		assert.Equal(t, "Two fires, one hearth.", text)
	})

	t.Run("unknown profile", func(t *testing.T) {
		f := newFixture(t)
		_, err := f.uc.Explain(ctx, "luna", "ghost")
		assert.ErrorIs(t, err, domain.ErrProfileNotFound)
	})
}

func TestPurgeExpired(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	_, err := f.uc.GetReport(ctx, "luna", "theo")
	require.NoError(t, err)

	n, err := f.uc.PurgeExpired(ctx, time.Hour)
	require.NoError(t, err)
	assert.Zero(t, n)

	f.clock.Advance(2 * time.Hour)
	n, err = f.uc.PurgeExpired(ctx, time.Hour)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	list, err := f.uc.ListReports(ctx, "luna")
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestAnalyze_AdHocProfilesAreNotCached(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	a := testutil.NewProfile("guest-a", "Mira", testutil.Date(1994, time.March, 30))
	b := testutil.NewProfile("guest-b", "Jon", testutil.Date(1989, time.October, 12))
	a.Completion = domain.ProfileCompletion{}

	report, err := f.uc.Analyze(ctx, a, b)
	require.NoError(t, err)
	assert.Equal(t, domain.ComputeCompletion(a), report.ProfileA.Completion)
	assert.Zero(t, a.Completion.TotalFields, "input is not mutated")

	list, err := f.store.ListByProfile(ctx, "guest-a")
	require.NoError(t, err)
	assert.Empty(t, list)

	_, err = f.uc.Analyze(ctx, a, a)
	assert.ErrorIs(t, err, domain.ErrSameProfile)
}
