package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"opportunity-match-backend/internal/domain"
	"opportunity-match-backend/pkg/apperror"
	"opportunity-match-backend/pkg/auth"
	"opportunity-match-backend/pkg/logger"
)

type accountUsecase struct {
	accountRepo   domain.AccountRepository
	candidateRepo domain.CandidateRepository
	recruiterRepo domain.RecruiterRepository
	jobRepo       domain.JobRepository
	hasher        auth.PasswordHasher
	validate      *validator.Validate
}

func NewAccountUsecase(
	accountRepo domain.AccountRepository,
	candidateRepo domain.CandidateRepository,
	recruiterRepo domain.RecruiterRepository,
	jobRepo domain.JobRepository,
	hasher auth.PasswordHasher,
	validate *validator.Validate,
) domain.AccountUsecase {
	return &accountUsecase{
		accountRepo:   accountRepo,
		candidateRepo: candidateRepo,
		recruiterRepo: recruiterRepo,
		jobRepo:       jobRepo,
		hasher:        hasher,
		validate:      validate,
	}
}

// Register creates the account and then its role-matched shadow profile.
// The two writes are independent: a shadow-store failure after the account
// write is surfaced to the caller but leaves the account behind with no
// profile. There is no rollback.
func (u *accountUsecase) Register(ctx context.Context, in domain.RegisterInput) (*domain.RegisteredAccount, error) {
	if err := u.validate.Struct(in); err != nil {
		return nil, apperror.BadRequest(err.Error())
	}

	hash, err := u.hasher.Hash(in.Password)
	if err != nil {
		return nil, apperror.Internal(err)
	}

	now := time.Now()
	account := &domain.Account{
		ID:            uuid.NewString(),
		Name:          in.Name,
		Email:         in.Email,
		PasswordHash:  hash,
		Role:          in.Role,
		AppliedJobIDs: []string{},
		ResumeRef:     in.Resume,
		Skills:        []string{},
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	if err := u.accountRepo.Create(ctx, account); err != nil {
		if errors.Is(err, domain.ErrDuplicateEmail) {
			return nil, apperror.Conflict("User already exists")
		}
		return nil, apperror.Internal(err)
	}

	result := &domain.RegisteredAccount{Account: account}

	switch in.Role {
	case domain.RoleRecruiter:
		profile := &domain.RecruiterProfile{
			ID:          uuid.NewString(),
			AccountID:   account.ID,
			Name:        in.Name,
			Email:       in.Email,
			OwnedJobIDs: []string{},
		}
		if err := u.recruiterRepo.Create(ctx, profile); err != nil {
			logger.Log.Error("recruiter profile write failed after account creation", "account_id", account.ID, "error", err)
			return nil, apperror.Internal(err)
		}
		result.RecruiterID = &profile.ID
	case domain.RoleApplicant:
		profile := &domain.CandidateProfile{
			ID:            uuid.NewString(),
			AccountID:     account.ID,
			Name:          in.Name,
			Skills:        []string{},
			AppliedJobIDs: []string{},
		}
		if err := u.candidateRepo.Create(ctx, profile); err != nil {
			logger.Log.Error("candidate profile write failed after account creation", "account_id", account.ID, "error", err)
			return nil, apperror.Internal(err)
		}
		result.CandidateID = &profile.ID
	}

	return result, nil
}

func (u *accountUsecase) Authenticate(ctx context.Context, email, password string) (*domain.AuthenticatedAccount, error) {
	account, err := u.accountRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("User not found")
		}
		return nil, apperror.Internal(err)
	}

	if err := u.hasher.Compare(account.PasswordHash, password); err != nil {
		return nil, apperror.Unauthorized("Invalid password")
	}

	result := &domain.AuthenticatedAccount{Account: account}

	// Shadow id resolution is best-effort: a missing profile just leaves
	// the pointer nil, it never fails the login.
	switch account.Role {
	case domain.RoleRecruiter:
		if profile, err := u.recruiterRepo.GetByAccountID(ctx, account.ID); err == nil {
			result.RecruiterID = &profile.ID
		}
	case domain.RoleApplicant:
		if profile, err := u.candidateRepo.GetByAccountID(ctx, account.ID); err == nil {
			result.CandidateID = &profile.ID
		}
	}

	return result, nil
}

func (u *accountUsecase) GetAccount(ctx context.Context, id string) (*domain.Account, error) {
	account, err := u.accountRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("User not found")
		}
		return nil, apperror.Internal(err)
	}
	return account, nil
}

func (u *accountUsecase) ListAccounts(ctx context.Context) ([]domain.Account, error) {
	return u.accountRepo.List(ctx)
}

// ListApplications resolves the account's application history against the
// catalog. Deleted postings leave dangling ids behind; those are filtered
// out here instead of failing the read.
func (u *accountUsecase) ListApplications(ctx context.Context, accountID string) ([]domain.JobPosting, error) {
	account, err := u.accountRepo.GetByID(ctx, accountID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("User not found")
		}
		return nil, apperror.Internal(err)
	}

	jobs := make([]domain.JobPosting, 0, len(account.AppliedJobIDs))
	for _, jobID := range account.AppliedJobIDs {
		job, err := u.jobRepo.GetByID(ctx, jobID)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				continue
			}
			return nil, apperror.Internal(err)
		}
		jobs = append(jobs, *job)
	}
	return jobs, nil
}

// UpdateSkills replaces the skill set on the account only. The candidate
// profile keeps its own skills field and the two are never reconciled.
func (u *accountUsecase) UpdateSkills(ctx context.Context, accountID string, skills []string) (*domain.Account, error) {
	if skills == nil {
		skills = []string{}
	}
	account, err := u.accountRepo.ReplaceSkills(ctx, accountID, skills)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("User not found")
		}
		return nil, apperror.Internal(err)
	}
	return account, nil
}
