package memory

import (
	"context"
	"sync"

	"opportunity-match-backend/internal/domain"
)

type candidateRepo struct {
	mu       sync.RWMutex
	profiles map[string]*domain.CandidateProfile
	order    []string
}

func NewCandidateRepository() domain.CandidateRepository {
	return &candidateRepo{profiles: make(map[string]*domain.CandidateProfile)}
}

func (r *candidateRepo) Create(ctx context.Context, profile *domain.CandidateProfile) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.profiles[profile.ID] = profile.Clone()
	r.order = append(r.order, profile.ID)
	return nil
}

func (r *candidateRepo) GetByID(ctx context.Context, id string) (*domain.CandidateProfile, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	profile, ok := r.profiles[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return profile.Clone(), nil
}

func (r *candidateRepo) GetByAccountID(ctx context.Context, accountID string) (*domain.CandidateProfile, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, id := range r.order {
		if r.profiles[id].AccountID == accountID {
			return r.profiles[id].Clone(), nil
		}
	}
	return nil, domain.ErrNotFound
}

func (r *candidateRepo) List(ctx context.Context) ([]domain.CandidateProfile, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]domain.CandidateProfile, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, *r.profiles[id].Clone())
	}
	return out, nil
}

func (r *candidateRepo) Update(ctx context.Context, profile *domain.CandidateProfile) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.profiles[profile.ID]; !ok {
		return domain.ErrNotFound
	}
	r.profiles[profile.ID] = profile.Clone()
	return nil
}

func (r *candidateRepo) AppendAppliedJob(ctx context.Context, profileID, jobID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	profile, ok := r.profiles[profileID]
	if !ok {
		return domain.ErrNotFound
	}
	if !containsID(profile.AppliedJobIDs, jobID) {
		profile.AppliedJobIDs = append(profile.AppliedJobIDs, jobID)
	}
	return nil
}
