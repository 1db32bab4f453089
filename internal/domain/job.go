package domain

import "context"

// JobPosting is a recruiter-owned listing. It owns both the applicant id set
// and the per-applicant status map. OwnerRecruiterID is recorded verbatim at
// creation and is never checked against the recruiter store, so it may point
// at a profile that does not exist.
type JobPosting struct {
	ID               string `json:"id"`
	Title            string `json:"title"`
	Company          string `json:"company"`
	Location         string `json:"location"`
	Salary           string `json:"salary"`
	Type             string `json:"type"`
	Posted           string `json:"posted"`
	Description      string `json:"description"`
	Requirements     string `json:"requirements"`
	Status           string `json:"status"`
	OwnerRecruiterID string `json:"recruiter_id"`

	// ApplicantIDs grows in application order and never shrinks.
	ApplicantIDs []string `json:"applicant_ids"`
	// ApplicationStatuses holds at most one entry per account id. An id
	// missing from the map is implicitly in the "applied" state, and an
	// entry may exist for an id that never appears in ApplicantIDs.
	ApplicationStatuses map[string]string `json:"application_statuses"`
}

func (j *JobPosting) Clone() *JobPosting {
	cp := *j
	cp.ApplicantIDs = append([]string(nil), j.ApplicantIDs...)
	cp.ApplicationStatuses = make(map[string]string, len(j.ApplicationStatuses))
	for k, v := range j.ApplicationStatuses {
		cp.ApplicationStatuses[k] = v
	}
	return &cp
}

// JobPatch carries a partial edit; nil fields keep their prior values.
type JobPatch struct {
	Title        *string `json:"title"`
	Company      *string `json:"company"`
	Location     *string `json:"location"`
	Salary       *string `json:"salary"`
	Type         *string `json:"type"`
	Posted       *string `json:"posted"`
	Description  *string `json:"description"`
	Requirements *string `json:"requirements"`
	Status       *string `json:"status"`
}

type JobRepository interface {
	Create(ctx context.Context, job *JobPosting) error
	GetByID(ctx context.Context, id string) (*JobPosting, error)
	List(ctx context.Context) ([]JobPosting, error)
	ListByOwner(ctx context.Context, recruiterID string) ([]JobPosting, error)
	Update(ctx context.Context, job *JobPosting) error
	Delete(ctx context.Context, id string) error

	// AddApplicant idempotently adds accountID to the posting's applicant
	// set. Executes as a per-job exclusive section so concurrent applies
	// cannot lose an update.
	AddApplicant(ctx context.Context, jobID, accountID string) error
	// SetApplicationStatus upserts the status entry for (jobID, accountID),
	// atomically with respect to concurrent status writes on the same job.
	SetApplicationStatus(ctx context.Context, jobID, accountID, status string) error
	// GetApplicationStatus returns the stored status, or "" when no entry
	// exists for the pair. ErrNotFound only when the job is unknown.
	GetApplicationStatus(ctx context.Context, jobID, accountID string) (string, error)
}

type JobUsecase interface {
	CreateJob(ctx context.Context, ownerRecruiterID string, job *JobPosting) error
	ListJobs(ctx context.Context) ([]JobPosting, error)
	ListJobsByOwner(ctx context.Context, recruiterID string) ([]JobPosting, error)
	EditJob(ctx context.Context, jobID, actingRecruiterID string, patch JobPatch) (*JobPosting, error)
	DeleteJob(ctx context.Context, jobID, actingRecruiterID string) error
}
