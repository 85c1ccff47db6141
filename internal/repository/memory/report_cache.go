package memory

import (
	"context"
	"sync"
	"time"

	"github.com/gdugdh24/spiritatlas-backend/internal/domain"
)

// ReportCache is an in-process repository.ReportCache keyed by the
// canonical profile pair.
type ReportCache struct {
	mu          sync.RWMutex
	reports     map[domain.PairKey]*domain.CompatibilityReport
	invalidated map[string]time.Time
	now         func() time.Time
}

type CacheOption func(*ReportCache)

// WithClock sets the clock used to stamp invalidations.
func WithClock(now func() time.Time) CacheOption {
	return func(c *ReportCache) { c.now = now }
}

func NewReportCache(opts ...CacheOption) *ReportCache {
	c := &ReportCache{
		reports:     make(map[domain.PairKey]*domain.CompatibilityReport),
		invalidated: make(map[string]time.Time),
		now:         time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *ReportCache) Get(ctx context.Context, idA, idB string) (*domain.CompatibilityReport, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	r, ok := c.reports[domain.NewPairKey(idA, idB)]
	if !ok || c.staleLocked(r) {
		return nil, domain.ErrReportNotFound
	}
	return r, nil
}

func (c *ReportCache) Put(ctx context.Context, report *domain.CompatibilityReport) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.staleLocked(report) {
		return domain.ErrStaleReport
	}
	c.reports[report.Key()] = report
	return nil
}

func (c *ReportCache) Delete(ctx context.Context, idA, idB string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.reports, domain.NewPairKey(idA, idB))
	return nil
}

func (c *ReportCache) Invalidate(ctx context.Context, profileID string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.invalidated[profileID] = c.now()
	for key, r := range c.reports {
		if r.Involves(profileID) {
			delete(c.reports, key)
		}
	}
	return nil
}

func (c *ReportCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.reports)
}

func (c *ReportCache) staleLocked(r *domain.CompatibilityReport) bool {
	for _, id := range []string{r.ProfileA.ID, r.ProfileB.ID} {
		if at, ok := c.invalidated[id]; ok && r.GeneratedAt.Before(at) {
			return true
		}
	}
	return false
}
