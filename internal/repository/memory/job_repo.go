package memory

import (
	"context"
	"sync"

	"opportunity-match-backend/internal/domain"
)

type jobRepo struct {
	mu    sync.RWMutex
	jobs  map[string]*domain.JobPosting
	order []string
}

func NewJobRepository() domain.JobRepository {
	return &jobRepo{jobs: make(map[string]*domain.JobPosting)}
}

func (r *jobRepo) Create(ctx context.Context, job *domain.JobPosting) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.jobs[job.ID] = job.Clone()
	r.order = append(r.order, job.ID)
	return nil
}

func (r *jobRepo) GetByID(ctx context.Context, id string) (*domain.JobPosting, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	job, ok := r.jobs[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return job.Clone(), nil
}

func (r *jobRepo) List(ctx context.Context) ([]domain.JobPosting, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]domain.JobPosting, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, *r.jobs[id].Clone())
	}
	return out, nil
}

func (r *jobRepo) ListByOwner(ctx context.Context, recruiterID string) ([]domain.JobPosting, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []domain.JobPosting
	for _, id := range r.order {
		if r.jobs[id].OwnerRecruiterID == recruiterID {
			out = append(out, *r.jobs[id].Clone())
		}
	}
	return out, nil
}

func (r *jobRepo) Update(ctx context.Context, job *domain.JobPosting) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.jobs[job.ID]; !ok {
		return domain.ErrNotFound
	}
	r.jobs[job.ID] = job.Clone()
	return nil
}

func (r *jobRepo) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.jobs[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.jobs, id)
	for i, v := range r.order {
		if v == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return nil
}

func (r *jobRepo) AddApplicant(ctx context.Context, jobID, accountID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	job, ok := r.jobs[jobID]
	if !ok {
		return domain.ErrNotFound
	}
	if !containsID(job.ApplicantIDs, accountID) {
		job.ApplicantIDs = append(job.ApplicantIDs, accountID)
	}
	return nil
}

func (r *jobRepo) SetApplicationStatus(ctx context.Context, jobID, accountID, status string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	job, ok := r.jobs[jobID]
	if !ok {
		return domain.ErrNotFound
	}
	if job.ApplicationStatuses == nil {
		job.ApplicationStatuses = make(map[string]string)
	}
	job.ApplicationStatuses[accountID] = status
	return nil
}

func (r *jobRepo) GetApplicationStatus(ctx context.Context, jobID, accountID string) (string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	job, ok := r.jobs[jobID]
	if !ok {
		return "", domain.ErrNotFound
	}
	return job.ApplicationStatuses[accountID], nil
}
