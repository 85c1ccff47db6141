package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/gdugdh24/spiritatlas-backend/internal/domain"
	"github.com/gdugdh24/spiritatlas-backend/internal/repository"
)

type profileRepository struct {
	mu       sync.RWMutex
	profiles map[string]*domain.UserProfile
}

// NewProfileRepository returns an in-process profile store. Profiles are
// copied on the way in and out.
func NewProfileRepository() repository.ProfileRepository {
	return &profileRepository{profiles: make(map[string]*domain.UserProfile)}
}

func (r *profileRepository) Create(ctx context.Context, profile *domain.UserProfile) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.profiles[profile.ID]; ok {
		return domain.ErrProfileExists
	}
	r.profiles[profile.ID] = profile.Clone()
	return nil
}

func (r *profileRepository) GetByID(ctx context.Context, id string) (*domain.UserProfile, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	p, ok := r.profiles[id]
	if !ok {
		return nil, domain.ErrProfileNotFound
	}
	return p.Clone(), nil
}

func (r *profileRepository) Update(ctx context.Context, profile *domain.UserProfile) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.profiles[profile.ID]; !ok {
		return domain.ErrProfileNotFound
	}
	r.profiles[profile.ID] = profile.Clone()
	return nil
}

func (r *profileRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.profiles[id]; !ok {
		return domain.ErrProfileNotFound
	}
	delete(r.profiles, id)
	return nil
}

// ListProfiles returns every profile ordered by id.
func (r *profileRepository) ListProfiles(ctx context.Context) ([]*domain.UserProfile, error) {
	r.mu.RLock()
	out := make([]*domain.UserProfile, 0, len(r.profiles))
	for _, p := range r.profiles {
		out = append(out, p.Clone())
	}
	r.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}
