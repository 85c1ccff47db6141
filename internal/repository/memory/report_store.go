package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/gdugdh24/spiritatlas-backend/internal/domain"
)

// ReportStore keeps the latest saved report per profile pair in memory.
type ReportStore struct {
	mu      sync.RWMutex
	reports map[domain.PairKey]*domain.CompatibilityReport
}

func NewReportStore() *ReportStore {
	return &ReportStore{reports: make(map[domain.PairKey]*domain.CompatibilityReport)}
}

func (s *ReportStore) Save(ctx context.Context, report *domain.CompatibilityReport) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.reports[report.Key()] = report
	return nil
}

// ListByProfile returns the reports involving the profile, newest first.
func (s *ReportStore) ListByProfile(ctx context.Context, profileID string) ([]*domain.CompatibilityReport, error) {
	s.mu.RLock()
	var out []*domain.CompatibilityReport
	for _, r := range s.reports {
		if r.Involves(profileID) {
			out = append(out, r)
		}
	}
	s.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool {
		if !out[i].GeneratedAt.Equal(out[j].GeneratedAt) {
			return out[i].GeneratedAt.After(out[j].GeneratedAt)
		}
		return out[i].Key().String() < out[j].Key().String()
	})
	return out, nil
}

func (s *ReportStore) Delete(ctx context.Context, idA, idB string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	key := domain.NewPairKey(idA, idB)
	if _, ok := s.reports[key]; !ok {
		return domain.ErrReportNotFound
	}
	delete(s.reports, key)
	return nil
}

func (s *ReportStore) DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var n int64
	for key, r := range s.reports {
		if r.GeneratedAt.Before(cutoff) {
			delete(s.reports, key)
			n++
		}
	}
	return n, nil
}
