package usecase

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"opportunity-match-backend/internal/domain"
	"opportunity-match-backend/pkg/apperror"
	"opportunity-match-backend/pkg/logger"
)

type jobUsecase struct {
	jobRepo       domain.JobRepository
	recruiterRepo domain.RecruiterRepository
}

func NewJobUsecase(jobRepo domain.JobRepository, recruiterRepo domain.RecruiterRepository) domain.JobUsecase {
	return &jobUsecase{
		jobRepo:       jobRepo,
		recruiterRepo: recruiterRepo,
	}
}

// authorizeOwner is the ownership guard shared by every job mutation: the
// acting recruiter id must equal the stored owner, compared stringwise. An
// empty acting id always fails.
func authorizeOwner(job *domain.JobPosting, actingRecruiterID string) error {
	if actingRecruiterID == "" || job.OwnerRecruiterID != actingRecruiterID {
		return apperror.Forbidden("Unauthorized: Only the recruiter who posted this job can modify it.")
	}
	return nil
}

// CreateJob stores the posting and then best-effort records it on the
// owner's profile. An owner id that resolves to no recruiter profile is not
// an error: the job is created anyway with orphaned ownership.
func (u *jobUsecase) CreateJob(ctx context.Context, ownerRecruiterID string, job *domain.JobPosting) error {
	job.ID = uuid.NewString()
	job.OwnerRecruiterID = ownerRecruiterID
	job.ApplicantIDs = []string{}
	job.ApplicationStatuses = map[string]string{}

	if err := u.jobRepo.Create(ctx, job); err != nil {
		return apperror.Internal(err)
	}

	if ownerRecruiterID != "" {
		if err := u.recruiterRepo.AppendOwnedJob(ctx, ownerRecruiterID, job.ID); err != nil {
			logger.Log.Warn("job created with unresolved owner", "job_id", job.ID, "recruiter_id", ownerRecruiterID)
		}
	}
	return nil
}

func (u *jobUsecase) ListJobs(ctx context.Context) ([]domain.JobPosting, error) {
	return u.jobRepo.List(ctx)
}

func (u *jobUsecase) ListJobsByOwner(ctx context.Context, recruiterID string) ([]domain.JobPosting, error) {
	return u.jobRepo.ListByOwner(ctx, recruiterID)
}

// EditJob applies a partial merge: only fields present on the patch
// overwrite the stored posting.
func (u *jobUsecase) EditJob(ctx context.Context, jobID, actingRecruiterID string, patch domain.JobPatch) (*domain.JobPosting, error) {
	job, err := u.jobRepo.GetByID(ctx, jobID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Job not found")
		}
		return nil, apperror.Internal(err)
	}

	if err := authorizeOwner(job, actingRecruiterID); err != nil {
		return nil, err
	}

	applyJobPatch(job, patch)

	if err := u.jobRepo.Update(ctx, job); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Job not found")
		}
		return nil, apperror.Internal(err)
	}
	return job, nil
}

// DeleteJob removes the posting permanently. There is no cascade: the id
// stays in the owner's OwnedJobIDs and in every applicant's history, and
// read paths tolerate those dangling references.
func (u *jobUsecase) DeleteJob(ctx context.Context, jobID, actingRecruiterID string) error {
	job, err := u.jobRepo.GetByID(ctx, jobID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return apperror.NotFound("Job not found")
		}
		return apperror.Internal(err)
	}

	if err := authorizeOwner(job, actingRecruiterID); err != nil {
		return err
	}

	if err := u.jobRepo.Delete(ctx, jobID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return apperror.NotFound("Job not found")
		}
		return apperror.Internal(err)
	}
	return nil
}

func applyJobPatch(job *domain.JobPosting, patch domain.JobPatch) {
	if patch.Title != nil {
		job.Title = *patch.Title
	}
	if patch.Company != nil {
		job.Company = *patch.Company
	}
	if patch.Location != nil {
		job.Location = *patch.Location
	}
	if patch.Salary != nil {
		job.Salary = *patch.Salary
	}
	if patch.Type != nil {
		job.Type = *patch.Type
	}
	if patch.Posted != nil {
		job.Posted = *patch.Posted
	}
	if patch.Description != nil {
		job.Description = *patch.Description
	}
	if patch.Requirements != nil {
		job.Requirements = *patch.Requirements
	}
	if patch.Status != nil {
		job.Status = *patch.Status
	}
}
