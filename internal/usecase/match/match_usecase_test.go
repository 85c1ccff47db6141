package match

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/gdugdh24/spiritatlas-backend/internal/domain"
	"github.com/gdugdh24/spiritatlas-backend/internal/repository/memory"
	"github.com/gdugdh24/spiritatlas-backend/internal/testutil"
	"github.com/gdugdh24/spiritatlas-backend/internal/usecase/compatibility"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2026, time.June, 1, 0, 0, 0, 0, time.UTC)

func newUseCase(opts ...Option) *MatchUseCase {
	opts = append([]Option{WithClock(func() time.Time { return fixedNow })}, opts...)
	return NewMatchUseCase(compatibility.NewEngine(), nil, opts...)
}

func openCriteria() domain.MatchCriteria {
	return domain.MatchCriteria{}
}

func ids(matches []domain.ProfileMatch) []string {
	out := make([]string, 0, len(matches))
	for _, m := range matches {
		out = append(out, m.Profile.ID)
	}
	return out
}

func TestSearch_RankedAndExcludesBase(t *testing.T) {
	base := testutil.Luna()
	pool := append(testutil.Pool(12), base, testutil.Theo())

	matches, err := newUseCase().Search(context.Background(), base, pool, openCriteria())
	require.NoError(t, err)
	require.Len(t, matches, 13)
	assert.NotContains(t, ids(matches), "luna")

	for i := 1; i < len(matches); i++ {
		prev, cur := matches[i-1], matches[i]
		if prev.Preview.OverallScore == cur.Preview.OverallScore {
			assert.Less(t, prev.Profile.ID, cur.Profile.ID)
			continue
		}
		assert.Greater(t, prev.Preview.OverallScore, cur.Preview.OverallScore)
	}
}

func TestSearch_PreviewMatchesReport(t *testing.T) {
	engine := compatibility.NewEngine()
	base, theo := testutil.Luna(), testutil.Theo()

	matches, err := NewMatchUseCase(engine, nil).Search(context.Background(), base, []*domain.UserProfile{theo}, openCriteria())
	require.NoError(t, err)
	require.Len(t, matches, 1)

	report, err := engine.Analyze(context.Background(), base, theo)
	require.NoError(t, err)

	m := matches[0]
	assert.Equal(t, report.OverallScore(), m.Preview.OverallScore)
	assert.Equal(t, domain.LevelExcellent, m.Preview.Level)
	require.NotNil(t, m.Preview.TopStrength)
	for _, s := range report.Strengths {
		assert.LessOrEqual(t, s.Score, m.Preview.TopStrength.Score)
	}
	assert.Nil(t, m.Preview.TopChallenge)
	assert.Contains(t, m.MatchReason, "excellent match")
	assert.InDelta(t, 0.5, m.Confidence, 0.5)
	assert.Equal(t, theo.ID, m.Profile.ID)
}

func TestSearch_ScoreFiltersAndLimit(t *testing.T) {
	base := testutil.Luna()
	pool := testutil.Pool(12)
	uc := newUseCase()

	all, err := uc.Search(context.Background(), base, pool, openCriteria())
	require.NoError(t, err)

	high, err := uc.Search(context.Background(), base, pool, domain.DefaultMatchCriteria())
	require.NoError(t, err)
	for _, m := range high {
		assert.GreaterOrEqual(t, m.Preview.OverallScore, float64(domain.DefaultMinMatchScore))
	}
	var expected int
	for _, m := range all {
		if m.Preview.OverallScore >= domain.DefaultMinMatchScore {
			expected++
		}
	}
	assert.Len(t, high, expected)

	good, err := uc.Search(context.Background(), base, pool, domain.MatchCriteria{MinLevel: domain.LevelGood})
	require.NoError(t, err)
	for _, m := range good {
		assert.GreaterOrEqual(t, m.Preview.Level.Rank(), domain.LevelGood.Rank())
	}

	top3, err := uc.Search(context.Background(), base, pool, domain.MatchCriteria{Limit: 3})
	require.NoError(t, err)
	assert.Equal(t, ids(all)[:3], ids(top3))
}

func TestSearch_PreferredCategories(t *testing.T) {
	engine := compatibility.NewEngine()
	base := testutil.Luna()
	pool := testutil.Pool(12)
	criteria := domain.MatchCriteria{PreferredCategories: []domain.CompatibilityCategory{domain.CategoryEmotional}}

	matches, err := NewMatchUseCase(engine, nil).Search(context.Background(), base, pool, criteria)
	require.NoError(t, err)

	for _, m := range matches {
		report, err := engine.Analyze(context.Background(), base, &m.Profile)
		require.NoError(t, err)
		assert.True(t, hasStrengthIn(report.Strengths, criteria.PreferredCategories), m.Profile.ID)
	}
}

func TestSearch_DistanceAndAge(t *testing.T) {
	base := testutil.NewProfile("base", "Luna", testutil.Date(1992, time.August, 1),
		testutil.WithCoordinates("Lisbon", 38.72, -9.14))
	porto := testutil.NewProfile("porto", "Theo", testutil.Date(1990, time.February, 1),
		testutil.WithCoordinates("Porto", 41.15, -8.61))
	tokyo := testutil.NewProfile("tokyo", "Kai", testutil.Date(1991, time.May, 5),
		testutil.WithCoordinates("Tokyo", 35.68, 139.69))
	nowhere := testutil.NewProfile("nowhere", "Zoe", testutil.Date(1975, time.March, 3))
	pool := []*domain.UserProfile{porto, tokyo, nowhere}

	near, err := newUseCase().Search(context.Background(), base, pool, domain.MatchCriteria{MaxDistanceKm: 500})
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"porto", "nowhere"}, ids(near))

	young, err := newUseCase().Search(context.Background(), base, pool, domain.MatchCriteria{
		AgeRange: &domain.AgeRange{Min: 30, Max: 40},
	})
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"porto", "tokyo"}, ids(young))
}

func TestCalculateDistance(t *testing.T) {
	assert.InDelta(t, 274, calculateDistance(38.72, -9.14, 41.15, -8.61), 5)
	assert.Zero(t, calculateDistance(10, 10, 10, 10))
}

type flakyAnalyzer struct {
	*compatibility.Engine
	failID string
	calls  atomic.Int64
	onCall func()
}

func (f *flakyAnalyzer) Analyze(ctx context.Context, a, b *domain.UserProfile) (*domain.CompatibilityReport, error) {
	f.calls.Add(1)
	if f.onCall != nil {
		f.onCall()
	}
	if b.ID == f.failID {
		return nil, errors.New("scorer exploded")
	}
	return f.Engine.Analyze(ctx, a, b)
}

func TestSearch_FailingCandidateIsExcluded(t *testing.T) {
	pool := testutil.Pool(5)
	analyzer := &flakyAnalyzer{Engine: compatibility.NewEngine(), failID: "candidate-02"}
	invalid := &domain.UserProfile{ID: "broken"}

	matches, err := NewMatchUseCase(analyzer, nil).Search(context.Background(), testutil.Luna(), append(pool, invalid), openCriteria())
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"candidate-00", "candidate-01", "candidate-03", "candidate-04"}, ids(matches))
}

func TestSearch_InvalidInput(t *testing.T) {
	uc := newUseCase()
	pool := testutil.Pool(3)

	_, err := uc.Search(context.Background(), nil, pool, openCriteria())
	assert.ErrorIs(t, err, domain.ErrInvalidProfilePair)

	_, err = uc.Search(context.Background(), &domain.UserProfile{ID: "x"}, pool, openCriteria())
	assert.ErrorIs(t, err, domain.ErrInvalidProfilePair)

	_, err = uc.Search(context.Background(), testutil.Luna(), pool, domain.MatchCriteria{MinScore: 120})
	assert.ErrorIs(t, err, domain.ErrInvalidCriteria)
}

func TestSearch_Cancellation(t *testing.T) {
	t.Run("already cancelled", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		_, err := newUseCase().Search(ctx, testutil.Luna(), testutil.Pool(5), openCriteria())
		assert.ErrorIs(t, err, context.Canceled)
	})

	t.Run("cancelled mid search", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()
		analyzer := &flakyAnalyzer{Engine: compatibility.NewEngine(), onCall: cancel}

		_, err := NewMatchUseCase(analyzer, nil, WithWorkers(1)).Search(ctx, testutil.Luna(), testutil.Pool(12), openCriteria())
		assert.ErrorIs(t, err, context.Canceled)
		assert.Less(t, analyzer.calls.Load(), int64(12))
	})
}

func TestSearch_DeterministicAcrossWorkerCounts(t *testing.T) {
	base := testutil.Luna()
	pool := testutil.Pool(12)

	serial, err := newUseCase(WithWorkers(1)).Search(context.Background(), base, pool, openCriteria())
	require.NoError(t, err)
	parallel, err := newUseCase(WithWorkers(8)).Search(context.Background(), base, pool, openCriteria())
	require.NoError(t, err)
	assert.Equal(t, serial, parallel)
}

func TestFindForProfile(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewProfileRepository()
	for _, p := range append(testutil.Pool(4), testutil.Luna()) {
		require.NoError(t, repo.Create(ctx, p))
	}
	metrics := compatibility.NewMetrics()
	uc := NewMatchUseCase(compatibility.NewEngine(), repo, WithObserver(metrics))

	matches, err := uc.FindForProfile(ctx, "luna", openCriteria())
	require.NoError(t, err)
	assert.Len(t, matches, 4)
	assert.Equal(t, int64(1), metrics.Snapshot().Operations[compatibility.OpMatchSearch].Count)

	_, err = uc.FindForProfile(ctx, "ghost", openCriteria())
	assert.ErrorIs(t, err, domain.ErrProfileNotFound)
}
