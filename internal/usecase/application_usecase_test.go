package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"opportunity-match-backend/internal/domain"
	"opportunity-match-backend/internal/usecase"
)

func TestApplyIsIdempotent(t *testing.T) {
	e := newEnv()
	ana := e.registerApplicant(t, "Ana", "ana@x.com")
	bo := e.registerRecruiter(t, "Bo", "bo@x.com")
	job := e.createJob(t, *bo.RecruiterID, "Backend Engineer")

	ctx := context.Background()
	for i := 0; i < 2; i++ {
		_, err := e.applicationUC.Apply(ctx, ana.Account.ID, job.ID)
		require.NoError(t, err)
	}

	account, err := e.accounts.GetByID(ctx, ana.Account.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{job.ID}, account.AppliedJobIDs)

	stored, err := e.jobs.GetByID(ctx, job.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{ana.Account.ID}, stored.ApplicantIDs)
}

func TestApplyMirrorsCandidateHistory(t *testing.T) {
	e := newEnv()
	ana := e.registerApplicant(t, "Ana", "ana@x.com")
	bo := e.registerRecruiter(t, "Bo", "bo@x.com")
	job := e.createJob(t, *bo.RecruiterID, "Backend Engineer")

	ctx := context.Background()
	receipt, err := e.applicationUC.Apply(ctx, ana.Account.ID, job.ID)
	require.NoError(t, err)

	assert.Equal(t, []string{job.ID}, receipt.Applications)
	assert.Equal(t, "Ana", receipt.Applicant.Name)
	require.NotNil(t, receipt.RecruiterEmail)
	assert.Equal(t, "bo@x.com", *receipt.RecruiterEmail)

	profile, err := e.candidates.GetByID(ctx, *ana.CandidateID)
	require.NoError(t, err)
	assert.Contains(t, profile.AppliedJobIDs, job.ID)
}

func TestApplyToOrphanJobSkipsRecruiterNotice(t *testing.T) {
	e := newEnv()
	ana := e.registerApplicant(t, "Ana", "ana@x.com")
	job := e.createJob(t, "ghost-recruiter", "Backend Engineer")

	receipt, err := e.applicationUC.Apply(context.Background(), ana.Account.ID, job.ID)
	require.NoError(t, err)
	assert.Nil(t, receipt.RecruiterEmail)
}

type alertRecorder struct {
	alerts chan string
}

func (a *alertRecorder) SendApplicationAlert(recruiterEmail string, applicant domain.ApplicantCard, jobTitle string) error {
	a.alerts <- recruiterEmail
	return nil
}

func TestApplySendsRecruiterAlert(t *testing.T) {
	e := newEnv()
	ana := e.registerApplicant(t, "Ana", "ana@x.com")
	bo := e.registerRecruiter(t, "Bo", "bo@x.com")
	job := e.createJob(t, *bo.RecruiterID, "Backend Engineer")

	recorder := &alertRecorder{alerts: make(chan string, 1)}
	uc := usecase.NewApplicationUsecase(e.jobs, e.accounts, e.candidates, e.recruiters, recorder)

	_, err := uc.Apply(context.Background(), ana.Account.ID, job.ID)
	require.NoError(t, err)

	select {
	case to := <-recorder.alerts:
		assert.Equal(t, "bo@x.com", to)
	case <-time.After(time.Second):
		t.Fatal("no alert sent")
	}
}

func TestApplyUnknownEntities(t *testing.T) {
	e := newEnv()
	ana := e.registerApplicant(t, "Ana", "ana@x.com")
	bo := e.registerRecruiter(t, "Bo", "bo@x.com")
	job := e.createJob(t, *bo.RecruiterID, "Backend Engineer")

	ctx := context.Background()

	_, err := e.applicationUC.Apply(ctx, "missing-user", job.ID)
	assert.Equal(t, 404, asAppError(t, err).Code)

	_, err = e.applicationUC.Apply(ctx, ana.Account.ID, "missing-job")
	assert.Equal(t, 404, asAppError(t, err).Code)
}

func TestGetStatusDefaultsToApplied(t *testing.T) {
	e := newEnv()
	ana := e.registerApplicant(t, "Ana", "ana@x.com")
	bo := e.registerRecruiter(t, "Bo", "bo@x.com")
	job := e.createJob(t, *bo.RecruiterID, "Backend Engineer")

	ctx := context.Background()

	// No status entry exists yet, not even after applying.
	_, err := e.applicationUC.Apply(ctx, ana.Account.ID, job.ID)
	require.NoError(t, err)

	status, err := e.applicationUC.GetStatus(ctx, job.ID, ana.Account.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusApplied, status)

	_, err = e.applicationUC.GetStatus(ctx, "missing-job", ana.Account.ID)
	assert.Equal(t, 404, asAppError(t, err).Code)
}

func TestSetStatusTransitions(t *testing.T) {
	e := newEnv()
	ana := e.registerApplicant(t, "Ana", "ana@x.com")
	bo := e.registerRecruiter(t, "Bo", "bo@x.com")
	job := e.createJob(t, *bo.RecruiterID, "Backend Engineer")

	ctx := context.Background()
	_, err := e.applicationUC.Apply(ctx, ana.Account.ID, job.ID)
	require.NoError(t, err)

	status, err := e.applicationUC.SetStatus(ctx, job.ID, ana.Account.ID, domain.ActionShortlist)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusShortlisted, status)

	// The transition table is total: shortlisted may move straight to
	// cancelled.
	status, err = e.applicationUC.SetStatus(ctx, job.ID, ana.Account.ID, domain.ActionCancel)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusCancelled, status)

	got, err := e.applicationUC.GetStatus(ctx, job.ID, ana.Account.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusCancelled, got)
}

func TestSetStatusRejectsUnknownAction(t *testing.T) {
	e := newEnv()
	ana := e.registerApplicant(t, "Ana", "ana@x.com")
	bo := e.registerRecruiter(t, "Bo", "bo@x.com")
	job := e.createJob(t, *bo.RecruiterID, "Backend Engineer")

	ctx := context.Background()
	_, err := e.applicationUC.Apply(ctx, ana.Account.ID, job.ID)
	require.NoError(t, err)
	_, err = e.applicationUC.SetStatus(ctx, job.ID, ana.Account.ID, domain.ActionShortlist)
	require.NoError(t, err)

	_, err = e.applicationUC.SetStatus(ctx, job.ID, ana.Account.ID, "bogus")
	assert.Equal(t, 400, asAppError(t, err).Code)

	// The failed call must not touch the stored status.
	status, err := e.applicationUC.GetStatus(ctx, job.ID, ana.Account.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusShortlisted, status)

	_, err = e.applicationUC.SetStatus(ctx, "missing-job", ana.Account.ID, domain.ActionAccept)
	assert.Equal(t, 404, asAppError(t, err).Code)
}

func TestSetStatusDoesNotRequireMembership(t *testing.T) {
	e := newEnv()
	ana := e.registerApplicant(t, "Ana", "ana@x.com")
	bo := e.registerRecruiter(t, "Bo", "bo@x.com")
	job := e.createJob(t, *bo.RecruiterID, "Backend Engineer")

	// Ana never applied, yet the status write succeeds.
	status, err := e.applicationUC.SetStatus(context.Background(), job.ID, ana.Account.ID, domain.ActionAccept)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusAccepted, status)
}

func TestListApplicantsWithStatus(t *testing.T) {
	e := newEnv()
	ana := e.registerApplicant(t, "Ana", "ana@x.com")
	dan := e.registerApplicant(t, "Dan", "dan@x.com")
	bo := e.registerRecruiter(t, "Bo", "bo@x.com")
	job := e.createJob(t, *bo.RecruiterID, "Backend Engineer")

	ctx := context.Background()
	_, err := e.applicationUC.Apply(ctx, ana.Account.ID, job.ID)
	require.NoError(t, err)
	_, err = e.applicationUC.Apply(ctx, dan.Account.ID, job.ID)
	require.NoError(t, err)

	_, err = e.applicationUC.SetStatus(ctx, job.ID, dan.Account.ID, domain.ActionShortlist)
	require.NoError(t, err)

	applicants, err := e.applicationUC.ListApplicantsWithStatus(ctx, job.ID)
	require.NoError(t, err)
	require.Len(t, applicants, 2)

	assert.Equal(t, "Ana", applicants[0].Name)
	assert.Equal(t, domain.StatusApplied, applicants[0].Status)
	assert.Equal(t, "Dan", applicants[1].Name)
	assert.Equal(t, domain.StatusShortlisted, applicants[1].Status)

	_, err = e.applicationUC.ListApplicantsWithStatus(ctx, "missing-job")
	assert.Equal(t, 404, asAppError(t, err).Code)
}

// End-to-end marketplace flow: register both roles, post, apply, review.
func TestApplicationLifecycleScenario(t *testing.T) {
	e := newEnv()
	ctx := context.Background()

	ana := e.registerApplicant(t, "Ana", "ana@x.com")
	bo := e.registerRecruiter(t, "Bo", "bo@x.com")
	job := e.createJob(t, *bo.RecruiterID, "Backend Engineer")

	_, err := e.applicationUC.Apply(ctx, ana.Account.ID, job.ID)
	require.NoError(t, err)

	applicants, err := e.applicationUC.ListApplicantsWithStatus(ctx, job.ID)
	require.NoError(t, err)
	require.Len(t, applicants, 1)
	assert.Equal(t, "Ana", applicants[0].Name)
	assert.Equal(t, domain.StatusApplied, applicants[0].Status)

	_, err = e.applicationUC.SetStatus(ctx, job.ID, ana.Account.ID, domain.ActionAccept)
	require.NoError(t, err)

	status, err := e.applicationUC.GetStatus(ctx, job.ID, ana.Account.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusAccepted, status)
}
