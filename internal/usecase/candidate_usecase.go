package usecase

import (
	"context"
	"errors"

	"opportunity-match-backend/internal/domain"
	"opportunity-match-backend/pkg/apperror"
)

type candidateUsecase struct {
	repo domain.CandidateRepository
}

func NewCandidateUsecase(repo domain.CandidateRepository) domain.CandidateUsecase {
	return &candidateUsecase{repo: repo}
}

func (u *candidateUsecase) ListCandidates(ctx context.Context) ([]domain.CandidateProfile, error) {
	return u.repo.List(ctx)
}

// UpdateProfile merges the patch into the stored profile by id. Supplying
// the profile id is the only gate, matching the rest of the API's
// payload-based actor identification.
func (u *candidateUsecase) UpdateProfile(ctx context.Context, id string, patch domain.CandidateProfilePatch) (*domain.CandidateProfile, error) {
	profile, err := u.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Candidate not found")
		}
		return nil, apperror.Internal(err)
	}

	if patch.Name != nil {
		profile.Name = *patch.Name
	}
	if patch.Position != nil {
		profile.Position = *patch.Position
	}
	if patch.Experience != nil {
		profile.Experience = *patch.Experience
	}
	if patch.Location != nil {
		profile.Location = *patch.Location
	}
	if patch.Skills != nil {
		profile.Skills = *patch.Skills
	}
	if patch.Phone != nil {
		profile.Phone = *patch.Phone
	}

	if err := u.repo.Update(ctx, profile); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Candidate not found")
		}
		return nil, apperror.Internal(err)
	}
	return profile, nil
}
