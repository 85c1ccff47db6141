package compatibility

import (
	"context"
	"log/slog"
	"sync"
	"time"
)

// Operation names reported to observers.
const (
	OpAnalyze     = "compatibility.analyze"
	OpMatchSearch = "match.search"
)

// Span is closed once the observed operation ends.
type Span interface {
	End(err error)
}

// Observer receives start/stop callbacks around engine operations. Start
// returns the context the operation runs under, so spans started from it
// nest below the current one.
type Observer interface {
	Start(ctx context.Context, operation string) (context.Context, Span)
}

type nopSpan struct{}

func (nopSpan) End(error) {}

type nopObserver struct{}

func (nopObserver) Start(ctx context.Context, _ string) (context.Context, Span) {
	return ctx, nopSpan{}
}

// NopObserver discards all spans.
func NopObserver() Observer { return nopObserver{} }

// Observers fans spans out to several observers.
type Observers []Observer

// Start chains the observers: each one starts from the context returned by
// the previous one.
func (o Observers) Start(ctx context.Context, operation string) (context.Context, Span) {
	spans := make(multiSpan, 0, len(o))
	for _, obs := range o {
		if obs == nil {
			continue
		}
		var span Span
		ctx, span = obs.Start(ctx, operation)
		spans = append(spans, span)
	}
	return ctx, spans
}

type multiSpan []Span

func (m multiSpan) End(err error) {
	for _, s := range m {
		s.End(err)
	}
}

// LogObserver writes one debug record per finished operation, or a warning
// when it failed.
type LogObserver struct {
	logger *slog.Logger
}

func NewLogObserver(logger *slog.Logger) *LogObserver {
	return &LogObserver{logger: logger}
}

func (o *LogObserver) Start(ctx context.Context, operation string) (context.Context, Span) {
	return ctx, &logSpan{ctx: ctx, logger: o.logger, operation: operation, start: time.Now()}
}

type logSpan struct {
	ctx       context.Context
	logger    *slog.Logger
	operation string
	start     time.Time
}

func (s *logSpan) End(err error) {
	elapsed := time.Since(s.start)
	if err != nil {
		s.logger.WarnContext(s.ctx, "operation failed",
			"operation", s.operation,
			"duration", elapsed,
			"error", err,
		)
		return
	}
	s.logger.DebugContext(s.ctx, "operation finished",
		"operation", s.operation,
		"duration", elapsed,
	)
}

type OperationStats struct {
	Count      int64   `json:"count"`
	Errors     int64   `json:"errors"`
	TotalMs    float64 `json:"total_ms"`
	AverageMs  float64 `json:"average_ms"`
	MaxMs      float64 `json:"max_ms"`
	LastFailed bool    `json:"last_failed"`
}

type MetricsSnapshot struct {
	Operations   map[string]OperationStats `json:"operations"`
	CacheHits    int64                     `json:"cache_hits"`
	CacheMisses  int64                     `json:"cache_misses"`
	CacheHitRate float64                   `json:"cache_hit_rate"`
}

// Metrics aggregates span timings and cache lookups in memory.
type Metrics struct {
	mu     sync.Mutex
	ops    map[string]*OperationStats
	hits   int64
	misses int64
}

func NewMetrics() *Metrics {
	return &Metrics{ops: make(map[string]*OperationStats)}
}

func (m *Metrics) Start(ctx context.Context, operation string) (context.Context, Span) {
	return ctx, &metricsSpan{metrics: m, operation: operation, start: time.Now()}
}

type metricsSpan struct {
	metrics   *Metrics
	operation string
	start     time.Time
}

func (s *metricsSpan) End(err error) {
	s.metrics.record(s.operation, time.Since(s.start), err)
}

func (m *Metrics) record(operation string, d time.Duration, err error) {
	ms := float64(d) / float64(time.Millisecond)

	m.mu.Lock()
	defer m.mu.Unlock()

	st, ok := m.ops[operation]
	if !ok {
		st = &OperationStats{}
		m.ops[operation] = st
	}
	st.Count++
	st.TotalMs += ms
	if ms > st.MaxMs {
		st.MaxMs = ms
	}
	st.LastFailed = err != nil
	if err != nil {
		st.Errors++
	}
}

func (m *Metrics) RecordCacheHit() {
	m.mu.Lock()
	m.hits++
	m.mu.Unlock()
}

func (m *Metrics) RecordCacheMiss() {
	m.mu.Lock()
	m.misses++
	m.mu.Unlock()
}

func (m *Metrics) Snapshot() MetricsSnapshot {
	m.mu.Lock()
	defer m.mu.Unlock()

	snap := MetricsSnapshot{
		Operations:  make(map[string]OperationStats, len(m.ops)),
		CacheHits:   m.hits,
		CacheMisses: m.misses,
	}
	for name, st := range m.ops {
		s := *st
		if s.Count > 0 {
			s.AverageMs = s.TotalMs / float64(s.Count)
		}
		snap.Operations[name] = s
	}
	if lookups := m.hits + m.misses; lookups > 0 {
		snap.CacheHitRate = float64(m.hits) / float64(lookups)
	}
	return snap
}

func (m *Metrics) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ops = make(map[string]*OperationStats)
	m.hits, m.misses = 0, 0
}
