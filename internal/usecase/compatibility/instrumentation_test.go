package compatibility

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func observe(o Observer, operation string, err error) {
	_, span := o.Start(context.Background(), operation)
	span.End(err)
}

func TestMetrics_Snapshot(t *testing.T) {
	m := NewMetrics()

	observe(m, OpAnalyze, nil)
	observe(m, OpAnalyze, errors.New("boom"))
	observe(m, OpMatchSearch, nil)
	m.RecordCacheHit()
	m.RecordCacheHit()
	m.RecordCacheHit()
	m.RecordCacheMiss()

	snap := m.Snapshot()
	assert.Equal(t, int64(2), snap.Operations[OpAnalyze].Count)
	assert.Equal(t, int64(1), snap.Operations[OpAnalyze].Errors)
	assert.Equal(t, int64(1), snap.Operations[OpMatchSearch].Count)
	assert.False(t, snap.Operations[OpMatchSearch].LastFailed)
	assert.GreaterOrEqual(t, snap.Operations[OpAnalyze].MaxMs, snap.Operations[OpAnalyze].AverageMs)
	assert.Equal(t, int64(3), snap.CacheHits)
	assert.Equal(t, int64(1), snap.CacheMisses)
	assert.InDelta(t, 0.75, snap.CacheHitRate, 1e-9)

	m.Reset()
	assert.Empty(t, m.Snapshot().Operations)
	assert.Zero(t, m.Snapshot().CacheHitRate)
}

func TestMetrics_ConcurrentSpans(t *testing.T) {
	m := NewMetrics()
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			observe(m, OpAnalyze, nil)
			m.RecordCacheMiss()
		}()
	}
	wg.Wait()
	assert.Equal(t, int64(50), m.Snapshot().Operations[OpAnalyze].Count)
	assert.Equal(t, int64(50), m.Snapshot().CacheMisses)
}

func TestObservers_FanOut(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	m := NewMetrics()

	obs := Observers{m, NewLogObserver(logger), nil, NopObserver()}
	observe(obs, OpAnalyze, nil)
	observe(obs, OpAnalyze, errors.New("invalid pair"))

	assert.Equal(t, int64(2), m.Snapshot().Operations[OpAnalyze].Count)
	assert.Contains(t, buf.String(), "operation finished")
	assert.Contains(t, buf.String(), "operation failed")
	assert.Contains(t, buf.String(), "invalid pair")
}

type ctxKey struct{}

type taggingObserver struct {
	seen []any
}

func (o *taggingObserver) Start(ctx context.Context, operation string) (context.Context, Span) {
	o.seen = append(o.seen, ctx.Value(ctxKey{}))
	return context.WithValue(ctx, ctxKey{}, operation), nopSpan{}
}

func TestObservers_ChainContext(t *testing.T) {
	first, second := &taggingObserver{}, &taggingObserver{}

	ctx, span := Observers{first, second}.Start(context.Background(), OpMatchSearch)
	span.End(nil)

	assert.Equal(t, []any{nil}, first.seen)
	assert.Equal(t, []any{OpMatchSearch}, second.seen)
	assert.Equal(t, OpMatchSearch, ctx.Value(ctxKey{}))
}
