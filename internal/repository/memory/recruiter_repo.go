package memory

import (
	"context"
	"sync"

	"opportunity-match-backend/internal/domain"
)

type recruiterRepo struct {
	mu       sync.RWMutex
	profiles map[string]*domain.RecruiterProfile
}

func NewRecruiterRepository() domain.RecruiterRepository {
	return &recruiterRepo{profiles: make(map[string]*domain.RecruiterProfile)}
}

func (r *recruiterRepo) Create(ctx context.Context, profile *domain.RecruiterProfile) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.profiles[profile.ID] = profile.Clone()
	return nil
}

func (r *recruiterRepo) GetByID(ctx context.Context, id string) (*domain.RecruiterProfile, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	profile, ok := r.profiles[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return profile.Clone(), nil
}

func (r *recruiterRepo) GetByAccountID(ctx context.Context, accountID string) (*domain.RecruiterProfile, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, profile := range r.profiles {
		if profile.AccountID == accountID {
			return profile.Clone(), nil
		}
	}
	return nil, domain.ErrNotFound
}

func (r *recruiterRepo) AppendOwnedJob(ctx context.Context, profileID, jobID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	profile, ok := r.profiles[profileID]
	if !ok {
		return domain.ErrNotFound
	}
	if !containsID(profile.OwnedJobIDs, jobID) {
		profile.OwnedJobIDs = append(profile.OwnedJobIDs, jobID)
	}
	return nil
}
