package domain

import "context"

// RecruiterProfile is the recruiter-role shadow record. OwnedJobIDs grows
// when the recruiter posts a job and is never pruned: deleting a posting
// leaves its id dangling here by design, so readers must tolerate ids that
// no longer resolve in the catalog.
type RecruiterProfile struct {
	ID          string   `json:"id"`
	AccountID   string   `json:"account_id"`
	Name        string   `json:"name"`
	Email       string   `json:"email"`
	OwnedJobIDs []string `json:"owned_job_ids"`
}

func (p *RecruiterProfile) Clone() *RecruiterProfile {
	cp := *p
	cp.OwnedJobIDs = append([]string(nil), p.OwnedJobIDs...)
	return &cp
}

type RecruiterRepository interface {
	Create(ctx context.Context, profile *RecruiterProfile) error
	GetByID(ctx context.Context, id string) (*RecruiterProfile, error)
	GetByAccountID(ctx context.Context, accountID string) (*RecruiterProfile, error)
	AppendOwnedJob(ctx context.Context, profileID, jobID string) error
}
