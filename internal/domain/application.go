package domain

import "context"

// Application status values. A (job, applicant) pair with no stored entry is
// implicitly in StatusApplied.
const (
	StatusApplied     = "applied"
	StatusShortlisted = "shortlisted"
	StatusAccepted    = "accepted"
	StatusCancelled   = "cancelled"
)

// Recruiter actions accepted by SetStatus.
const (
	ActionShortlist = "shortlist"
	ActionAccept    = "accept"
	ActionCancel    = "cancel"
)

// StatusForAction maps a recruiter action onto its target status. The
// transition table is total: any current status may move to any target.
func StatusForAction(action string) (string, bool) {
	switch action {
	case ActionShortlist:
		return StatusShortlisted, true
	case ActionAccept:
		return StatusAccepted, true
	case ActionCancel:
		return StatusCancelled, true
	default:
		return "", false
	}
}

// ApplicantWithStatus joins an applicant's account record with their status
// on a particular job.
type ApplicantWithStatus struct {
	Account
	Status string `json:"status"`
}

// ApplyReceipt is returned to the applicant after a successful application.
// RecruiterEmail is resolved best-effort and nil when the posting's owner id
// does not match any recruiter profile.
type ApplyReceipt struct {
	Message        string        `json:"message"`
	Applications   []string      `json:"applications"`
	Applicant      ApplicantCard `json:"applicant"`
	RecruiterEmail *string       `json:"recruiter"`
}

// ApplicantCard is the summary forwarded to the recruiter on apply.
type ApplicantCard struct {
	Name   string `json:"name"`
	Email  string `json:"email"`
	Resume string `json:"resume,omitempty"`
}

// ApplicationNotifier delivers the apply alert to the posting's owner.
type ApplicationNotifier interface {
	SendApplicationAlert(recruiterEmail string, applicant ApplicantCard, jobTitle string) error
}

type ApplicationUsecase interface {
	Apply(ctx context.Context, accountID, jobID string) (*ApplyReceipt, error)
	SetStatus(ctx context.Context, jobID, accountID, action string) (string, error)
	GetStatus(ctx context.Context, jobID, accountID string) (string, error)
	ListApplicantsWithStatus(ctx context.Context, jobID string) ([]ApplicantWithStatus, error)
}
