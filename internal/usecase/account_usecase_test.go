package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"opportunity-match-backend/internal/domain"
	"opportunity-match-backend/internal/usecase"
	"opportunity-match-backend/pkg/apperror"
	"opportunity-match-backend/pkg/auth"
)

func asAppError(t *testing.T, err error) *apperror.AppError {
	t.Helper()
	var appErr *apperror.AppError
	require.ErrorAs(t, err, &appErr)
	return appErr
}

func TestRegisterDuplicateEmail(t *testing.T) {
	e := newEnv()
	e.registerApplicant(t, "Ana", "ana@x.com")

	// Same email always conflicts, even with a different name and role.
	_, err := e.accountUC.Register(context.Background(), domain.RegisterInput{
		Name:     "Someone Else",
		Email:    "ana@x.com",
		Password: "other",
		Role:     domain.RoleRecruiter,
	})
	require.Error(t, err)
	assert.Equal(t, 400, asAppError(t, err).Code)
}

func TestRegisterCreatesRoleShadow(t *testing.T) {
	e := newEnv()

	applicant := e.registerApplicant(t, "Ana", "ana@x.com")
	require.NotNil(t, applicant.CandidateID)
	assert.Nil(t, applicant.RecruiterID)

	profile, err := e.candidates.GetByID(context.Background(), *applicant.CandidateID)
	require.NoError(t, err)
	assert.Equal(t, applicant.Account.ID, profile.AccountID)
	assert.Equal(t, "Ana", profile.Name)
	assert.Empty(t, profile.Position)

	recruiter := e.registerRecruiter(t, "Bo", "bo@x.com")
	require.NotNil(t, recruiter.RecruiterID)
	assert.Nil(t, recruiter.CandidateID)

	rp, err := e.recruiters.GetByID(context.Background(), *recruiter.RecruiterID)
	require.NoError(t, err)
	assert.Empty(t, rp.OwnedJobIDs)
}

func TestRegisterRejectsBadInput(t *testing.T) {
	e := newEnv()

	_, err := e.accountUC.Register(context.Background(), domain.RegisterInput{
		Name:     "Ana",
		Email:    "not-an-email",
		Password: "secret",
		Role:     "superuser",
	})
	require.Error(t, err)
	assert.Equal(t, 400, asAppError(t, err).Code)
}

func TestAuthenticate(t *testing.T) {
	e := newEnv()
	registered := e.registerApplicant(t, "Ana", "ana@x.com")

	t.Run("success resolves shadow id", func(t *testing.T) {
		out, err := e.accountUC.Authenticate(context.Background(), "ana@x.com", "secret")
		require.NoError(t, err)
		assert.Equal(t, registered.Account.ID, out.Account.ID)
		require.NotNil(t, out.CandidateID)
		assert.Equal(t, *registered.CandidateID, *out.CandidateID)
		assert.Nil(t, out.RecruiterID)
	})

	t.Run("unknown email", func(t *testing.T) {
		_, err := e.accountUC.Authenticate(context.Background(), "nobody@x.com", "secret")
		assert.Equal(t, 404, asAppError(t, err).Code)
	})

	t.Run("wrong password", func(t *testing.T) {
		_, err := e.accountUC.Authenticate(context.Background(), "ana@x.com", "wrong")
		assert.Equal(t, 401, asAppError(t, err).Code)
	})
}

func TestUpdateSkillsDivergesFromProfile(t *testing.T) {
	e := newEnv()
	registered := e.registerApplicant(t, "Ana", "ana@x.com")

	account, err := e.accountUC.UpdateSkills(context.Background(), registered.Account.ID, []string{"Go", "SQL"})
	require.NoError(t, err)
	assert.Equal(t, []string{"Go", "SQL"}, account.Skills)

	// The candidate profile keeps its own skills field; nothing reconciles
	// the two.
	profile, err := e.candidates.GetByID(context.Background(), *registered.CandidateID)
	require.NoError(t, err)
	assert.Empty(t, profile.Skills)

	_, err = e.accountUC.UpdateSkills(context.Background(), "missing-id", []string{"Go"})
	assert.Equal(t, 404, asAppError(t, err).Code)
}

func TestListApplicationsFiltersDanglingIDs(t *testing.T) {
	e := newEnv()
	ana := e.registerApplicant(t, "Ana", "ana@x.com")
	bo := e.registerRecruiter(t, "Bo", "bo@x.com")

	kept := e.createJob(t, *bo.RecruiterID, "Backend Engineer")
	doomed := e.createJob(t, *bo.RecruiterID, "Frontend Engineer")

	ctx := context.Background()
	_, err := e.applicationUC.Apply(ctx, ana.Account.ID, kept.ID)
	require.NoError(t, err)
	_, err = e.applicationUC.Apply(ctx, ana.Account.ID, doomed.ID)
	require.NoError(t, err)

	require.NoError(t, e.jobUC.DeleteJob(ctx, doomed.ID, *bo.RecruiterID))

	// The account still records both ids, but the read drops the deleted one.
	account, err := e.accounts.GetByID(ctx, ana.Account.ID)
	require.NoError(t, err)
	assert.Len(t, account.AppliedJobIDs, 2)

	jobs, err := e.accountUC.ListApplications(ctx, ana.Account.ID)
	require.NoError(t, err)
	require.Len(t, jobs, 1)
	assert.Equal(t, kept.ID, jobs[0].ID)
}

// MockCandidateRepo lets tests fail the shadow write on cue.
type MockCandidateRepo struct {
	mock.Mock
}

func (m *MockCandidateRepo) Create(ctx context.Context, profile *domain.CandidateProfile) error {
	return m.Called(ctx, profile).Error(0)
}

func (m *MockCandidateRepo) GetByID(ctx context.Context, id string) (*domain.CandidateProfile, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CandidateProfile), args.Error(1)
}

func (m *MockCandidateRepo) GetByAccountID(ctx context.Context, accountID string) (*domain.CandidateProfile, error) {
	args := m.Called(ctx, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CandidateProfile), args.Error(1)
}

func (m *MockCandidateRepo) List(ctx context.Context) ([]domain.CandidateProfile, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.CandidateProfile), args.Error(1)
}

func (m *MockCandidateRepo) Update(ctx context.Context, profile *domain.CandidateProfile) error {
	return m.Called(ctx, profile).Error(0)
}

func (m *MockCandidateRepo) AppendAppliedJob(ctx context.Context, profileID, jobID string) error {
	return m.Called(ctx, profileID, jobID).Error(0)
}

// A shadow-store failure after the account write has no rollback: the
// account stays behind without a profile.
func TestRegisterShadowFailureLeavesOrphanAccount(t *testing.T) {
	e := newEnv()

	mockCandidates := new(MockCandidateRepo)
	mockCandidates.On("Create", mock.Anything, mock.Anything).Return(errors.New("store down"))

	uc := usecase.NewAccountUsecase(e.accounts, mockCandidates, e.recruiters, e.jobs, auth.NewBcryptHasher(4), validator.New())

	_, err := uc.Register(context.Background(), domain.RegisterInput{
		Name:     "Ana",
		Email:    "ana@x.com",
		Password: "secret",
		Role:     domain.RoleApplicant,
	})
	require.Error(t, err)

	account, err := e.accounts.GetByEmail(context.Background(), "ana@x.com")
	require.NoError(t, err)
	assert.Equal(t, domain.RoleApplicant, account.Role)
	mockCandidates.AssertExpectations(t)
}
