package domain

import "context"

// CandidateProfile is the applicant-role shadow record. It is created
// alongside the account at registration with blank professional fields and
// carries its own application history, which is mirrored best-effort on apply
// and may drift from the account's list.
type CandidateProfile struct {
	ID            string   `json:"id"`
	AccountID     string   `json:"account_id"`
	Name          string   `json:"name"`
	Position      string   `json:"position"`
	Experience    string   `json:"experience"`
	Location      string   `json:"location"`
	Skills        []string `json:"skills"`
	Phone         string   `json:"phone"`
	AppliedJobIDs []string `json:"applied_job_ids"`
}

func (p *CandidateProfile) Clone() *CandidateProfile {
	cp := *p
	cp.Skills = append([]string(nil), p.Skills...)
	cp.AppliedJobIDs = append([]string(nil), p.AppliedJobIDs...)
	return &cp
}

// CandidateProfilePatch carries a partial update; nil fields keep their
// prior values.
type CandidateProfilePatch struct {
	Name       *string   `json:"name"`
	Position   *string   `json:"position"`
	Experience *string   `json:"experience"`
	Location   *string   `json:"location"`
	Skills     *[]string `json:"skills"`
	Phone      *string   `json:"phone"`
}

type CandidateRepository interface {
	Create(ctx context.Context, profile *CandidateProfile) error
	GetByID(ctx context.Context, id string) (*CandidateProfile, error)
	GetByAccountID(ctx context.Context, accountID string) (*CandidateProfile, error)
	List(ctx context.Context) ([]CandidateProfile, error)
	Update(ctx context.Context, profile *CandidateProfile) error
	AppendAppliedJob(ctx context.Context, profileID, jobID string) error
}

type CandidateUsecase interface {
	ListCandidates(ctx context.Context) ([]CandidateProfile, error)
	UpdateProfile(ctx context.Context, id string, patch CandidateProfilePatch) (*CandidateProfile, error)
}
