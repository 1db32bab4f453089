package usecase

import (
	"context"
	"errors"

	"opportunity-match-backend/internal/domain"
	"opportunity-match-backend/pkg/apperror"
	"opportunity-match-backend/pkg/logger"
)

type applicationUsecase struct {
	jobRepo       domain.JobRepository
	accountRepo   domain.AccountRepository
	candidateRepo domain.CandidateRepository
	recruiterRepo domain.RecruiterRepository
	notifier      domain.ApplicationNotifier // nil disables mail alerts
}

func NewApplicationUsecase(
	jobRepo domain.JobRepository,
	accountRepo domain.AccountRepository,
	candidateRepo domain.CandidateRepository,
	recruiterRepo domain.RecruiterRepository,
	notifier domain.ApplicationNotifier,
) domain.ApplicationUsecase {
	return &applicationUsecase{
		jobRepo:       jobRepo,
		accountRepo:   accountRepo,
		candidateRepo: candidateRepo,
		recruiterRepo: recruiterRepo,
		notifier:      notifier,
	}
}

// Apply records the application on both sides (account history, job
// applicant set) with idempotent set-adds, then mirrors it onto the
// candidate profile when one resolves. No status entry is written: the pair
// stays implicitly "applied" until a recruiter acts on it.
func (u *applicationUsecase) Apply(ctx context.Context, accountID, jobID string) (*domain.ApplyReceipt, error) {
	account, err := u.accountRepo.GetByID(ctx, accountID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("User or Job not found")
		}
		return nil, apperror.Internal(err)
	}
	job, err := u.jobRepo.GetByID(ctx, jobID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("User or Job not found")
		}
		return nil, apperror.Internal(err)
	}

	if err := u.accountRepo.AppendAppliedJob(ctx, accountID, jobID); err != nil {
		return nil, apperror.Internal(err)
	}
	if err := u.jobRepo.AddApplicant(ctx, jobID, accountID); err != nil {
		return nil, apperror.Internal(err)
	}

	// Best-effort mirror on the candidate shadow profile. A missing profile
	// is silently skipped; the application itself already succeeded.
	if profile, err := u.candidateRepo.GetByAccountID(ctx, account.ID); err == nil {
		if err := u.candidateRepo.AppendAppliedJob(ctx, profile.ID, jobID); err != nil {
			logger.Log.Warn("candidate history mirror failed", "candidate_id", profile.ID, "job_id", jobID, "error", err)
		}
	}

	card := domain.ApplicantCard{
		Name:   account.Name,
		Email:  account.Email,
		Resume: account.ResumeRef,
	}

	// Notify the owning recruiter. The owner id may not resolve, in which
	// case nothing is sent. Delivery is best-effort and never blocks the
	// response.
	var recruiterEmail *string
	if recruiter, err := u.recruiterRepo.GetByID(ctx, job.OwnerRecruiterID); err == nil {
		recruiterEmail = &recruiter.Email
		logger.Log.Info("application forwarded to recruiter",
			"applicant", account.Name, "applicant_email", account.Email,
			"job_title", job.Title, "recruiter_email", recruiter.Email)
		if u.notifier != nil {
			go func(to, title string) {
				if err := u.notifier.SendApplicationAlert(to, card, title); err != nil {
					logger.Log.Warn("application alert mail failed", "recruiter_email", to, "error", err)
				}
			}(recruiter.Email, job.Title)
		}
	}

	refreshed, err := u.accountRepo.GetByID(ctx, accountID)
	if err != nil {
		return nil, apperror.Internal(err)
	}

	return &domain.ApplyReceipt{
		Message:        "Applied successfully! Your application has been sent to the recruiter.",
		Applications:   refreshed.AppliedJobIDs,
		Applicant:      card,
		RecruiterEmail: recruiterEmail,
	}, nil
}

// SetStatus moves the (job, applicant) pair to the action's target status.
// The transition table is total and the write is an unconditional overwrite;
// a missing entry is treated as the implicit "applied" state and upserted
// directly. The applicant is deliberately not checked against the job's
// applicant set (see DESIGN.md).
func (u *applicationUsecase) SetStatus(ctx context.Context, jobID, accountID, action string) (string, error) {
	if _, err := u.jobRepo.GetApplicationStatus(ctx, jobID, accountID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return "", apperror.NotFound("Job not found")
		}
		return "", apperror.Internal(err)
	}

	target, ok := domain.StatusForAction(action)
	if !ok {
		return "", apperror.BadRequest("Invalid action")
	}

	if err := u.jobRepo.SetApplicationStatus(ctx, jobID, accountID, target); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return "", apperror.NotFound("Job not found")
		}
		return "", apperror.Internal(err)
	}
	return target, nil
}

// GetStatus returns the stored status, defaulting to "applied" when the pair
// has no entry. Only an unknown job fails.
func (u *applicationUsecase) GetStatus(ctx context.Context, jobID, accountID string) (string, error) {
	status, err := u.jobRepo.GetApplicationStatus(ctx, jobID, accountID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return "", apperror.NotFound("Job not found")
		}
		return "", apperror.Internal(err)
	}
	if status == "" {
		status = domain.StatusApplied
	}
	return status, nil
}

// ListApplicantsWithStatus joins the job's applicant set against its status
// map. Ids without a status entry default to "applied"; applicant ids that
// no longer resolve to an account are dropped rather than failing the read.
func (u *applicationUsecase) ListApplicantsWithStatus(ctx context.Context, jobID string) ([]domain.ApplicantWithStatus, error) {
	job, err := u.jobRepo.GetByID(ctx, jobID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Job not found")
		}
		return nil, apperror.Internal(err)
	}

	out := make([]domain.ApplicantWithStatus, 0, len(job.ApplicantIDs))
	for _, applicantID := range job.ApplicantIDs {
		account, err := u.accountRepo.GetByID(ctx, applicantID)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				continue
			}
			return nil, apperror.Internal(err)
		}
		status := job.ApplicationStatuses[applicantID]
		if status == "" {
			status = domain.StatusApplied
		}
		out = append(out, domain.ApplicantWithStatus{Account: *account, Status: status})
	}
	return out, nil
}
