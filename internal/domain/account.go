package domain

import (
	"context"
	"errors"
	"time"
)

// Common domain errors. Repositories return these sentinels; usecases map
// them onto transport-level apperror values.
var (
	ErrNotFound       = errors.New("resource not found")
	ErrDuplicateEmail = errors.New("email already registered")
)

// Account roles
const (
	RoleApplicant = "applicant"
	RoleRecruiter = "recruiter"
)

// Account is the canonical identity record. Role-specific data lives on the
// shadow profiles (CandidateProfile, RecruiterProfile), which are linked back
// to the account by AccountID.
type Account struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	Email         string    `json:"email"`
	PasswordHash  string    `json:"-"`
	Role          string    `json:"role"` // applicant | recruiter, immutable after creation
	AppliedJobIDs []string  `json:"applied_job_ids"`
	ResumeRef     string    `json:"resume,omitempty"`
	Skills        []string  `json:"skills"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// Clone returns a deep copy so callers can't mutate store-owned slices.
func (a *Account) Clone() *Account {
	cp := *a
	cp.AppliedJobIDs = append([]string(nil), a.AppliedJobIDs...)
	cp.Skills = append([]string(nil), a.Skills...)
	return &cp
}

// RegisteredAccount is the register result: the account plus whichever shadow
// profile id was created for its role (the other stays nil).
type RegisteredAccount struct {
	Account     *Account `json:"account"`
	CandidateID *string  `json:"candidate_id"`
	RecruiterID *string  `json:"recruiter_id"`
}

// AuthenticatedAccount is the login result. Shadow id resolution is
// best-effort: either pointer may be nil when no profile matches.
type AuthenticatedAccount struct {
	Account     *Account `json:"account"`
	CandidateID *string  `json:"candidate_id"`
	RecruiterID *string  `json:"recruiter_id"`
}

type RegisterInput struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=1"`
	Role     string `json:"role" validate:"required,oneof=applicant recruiter"`
	Resume   string `json:"resume" validate:"omitempty"`
}

type AccountRepository interface {
	Create(ctx context.Context, account *Account) error
	GetByID(ctx context.Context, id string) (*Account, error)
	GetByEmail(ctx context.Context, email string) (*Account, error)
	List(ctx context.Context) ([]Account, error)
	// AppendAppliedJob idempotently adds jobID to the account's application
	// history. Must execute as a per-account exclusive section.
	AppendAppliedJob(ctx context.Context, accountID, jobID string) error
	// ReplaceSkills overwrites the account's skill set atomically.
	ReplaceSkills(ctx context.Context, accountID string, skills []string) (*Account, error)
}

type AccountUsecase interface {
	Register(ctx context.Context, in RegisterInput) (*RegisteredAccount, error)
	Authenticate(ctx context.Context, email, password string) (*AuthenticatedAccount, error)
	GetAccount(ctx context.Context, id string) (*Account, error)
	ListAccounts(ctx context.Context) ([]Account, error)
	// ListApplications resolves the account's applied job ids against the
	// catalog, dropping ids whose posting has since been deleted.
	ListApplications(ctx context.Context, accountID string) ([]JobPosting, error)
	UpdateSkills(ctx context.Context, accountID string, skills []string) (*Account, error)
}
