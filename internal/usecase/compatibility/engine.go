package compatibility

import (
	"context"
	"log/slog"
	"time"

	"github.com/gdugdh24/spiritatlas-backend/internal/domain"
	"github.com/gdugdh24/spiritatlas-backend/internal/logging"
	"github.com/google/uuid"
)

// Engine produces compatibility reports. It keeps no state between calls
// and is safe for concurrent use.
type Engine struct {
	classifier  *Classifier
	scorers     []Scorer
	minAccuracy domain.AccuracyLevel
	catalog     []domain.TantricContent
	observer    Observer
	logger      *slog.Logger
	now         func() time.Time
	newID       func() string
}

type Option func(*Engine)

// WithMinAccuracy sets the lowest profile accuracy level accepted for
// analysis. The default is BASIC.
func WithMinAccuracy(level domain.AccuracyLevel) Option {
	return func(e *Engine) {
		if level.Valid() {
			e.minAccuracy = level
		}
	}
}

func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) {
		if logger != nil {
			e.logger = logger
		}
	}
}

// WithObserver installs the timing hook called around every analysis.
func WithObserver(o Observer) Option {
	return func(e *Engine) {
		if o != nil {
			e.observer = o
		}
	}
}

// WithCatalog sets the tantric content matched into reports.
func WithCatalog(catalog []domain.TantricContent) Option {
	return func(e *Engine) {
		e.catalog = catalog
	}
}

func WithClock(now func() time.Time) Option {
	return func(e *Engine) {
		e.now = now
	}
}

func WithIDGenerator(newID func() string) Option {
	return func(e *Engine) {
		e.newID = newID
	}
}

func NewEngine(opts ...Option) *Engine {
	e := &Engine{
		scorers:     DefaultScorers(),
		minAccuracy: domain.AccuracyBasic,
		observer:    NopObserver(),
		logger:      logging.NewDiscard(),
		now:         time.Now,
		newID:       uuid.NewString,
	}
	for _, opt := range opts {
		opt(e)
	}
	e.classifier = NewClassifier(e.logger)
	return e
}

func (e *Engine) MinAccuracy() domain.AccuracyLevel {
	return e.minAccuracy
}

// Classify exposes the archetype assignment of a single profile.
func (e *Engine) Classify(p *domain.UserProfile) domain.ArchetypeAssignment {
	return e.classifier.Classify(p)
}

// Analyze validates the pair and builds its report. Invalid pairs are
// rejected before any scorer runs; the error wraps ErrInvalidProfilePair or
// ErrSameProfile.
func (e *Engine) Analyze(ctx context.Context, a, b *domain.UserProfile) (report *domain.CompatibilityReport, err error) {
	ctx, span := e.observer.Start(ctx, OpAnalyze)
	defer func() { span.End(err) }()

	if err := (domain.ProfilePair{A: a, B: b}).Validate(e.minAccuracy); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	archA := e.classifier.Classify(a)
	archB := e.classifier.Classify(b)

	results := make([]DimensionResult, len(e.scorers))
	for i, s := range e.scorers {
		results[i] = s.Score(&archA, &archB)
	}

	var scores domain.CompatibilityScores
	for _, r := range results {
		scores.Set(r.Dimension, r.Score)
	}

	sourcedS, sourcedC := collectFindings(results)
	strengths := make([]domain.CompatibilityStrength, 0, len(sourcedS))
	for _, s := range sourcedS {
		strengths = append(strengths, s.CompatibilityStrength)
	}
	challenges := make([]domain.CompatibilityChallenge, 0, len(sourcedC))
	for _, c := range sourcedC {
		challenges = append(challenges, c.CompatibilityChallenge)
	}

	tantric := matchTantricContent(e.catalog, &archA, &archB, scores.Tantric)
	if tantric == nil {
		tantric = []domain.TantricCompatibility{}
	}

	report = &domain.CompatibilityReport{
		ID:              e.newID(),
		ProfileA:        *a.Clone(),
		ProfileB:        *b.Clone(),
		Scores:          scores,
		ArchetypesA:     archA,
		ArchetypesB:     archB,
		Insights:        buildInsights(results, sourcedS, sourcedC),
		Strengths:       strengths,
		Challenges:      challenges,
		Recommendations: buildRecommendations(challenges, tantric),
		TantricMatches:  tantric,
		GeneratedAt:     e.now().UTC(),
	}

	e.logger.DebugContext(ctx, "compatibility analyzed",
		"profile_a", a.ID,
		"profile_b", b.ID,
		"total_score", scores.Total(),
		"level", report.Level(),
	)
	return report, nil
}
