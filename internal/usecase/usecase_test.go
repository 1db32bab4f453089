package usecase_test

import (
	"context"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/require"

	"opportunity-match-backend/internal/domain"
	"opportunity-match-backend/internal/repository/memory"
	"opportunity-match-backend/internal/usecase"
	"opportunity-match-backend/pkg/auth"
	"opportunity-match-backend/pkg/logger"
)

// env wires every usecase over a fresh in-memory store.
type env struct {
	accounts   domain.AccountRepository
	candidates domain.CandidateRepository
	recruiters domain.RecruiterRepository
	jobs       domain.JobRepository

	accountUC     domain.AccountUsecase
	jobUC         domain.JobUsecase
	applicationUC domain.ApplicationUsecase
	candidateUC   domain.CandidateUsecase
}

func newEnv() *env {
	logger.Init()

	e := &env{
		accounts:   memory.NewAccountRepository(),
		candidates: memory.NewCandidateRepository(),
		recruiters: memory.NewRecruiterRepository(),
		jobs:       memory.NewJobRepository(),
	}

	hasher := auth.NewBcryptHasher(4) // min cost keeps tests fast
	validate := validator.New()

	e.accountUC = usecase.NewAccountUsecase(e.accounts, e.candidates, e.recruiters, e.jobs, hasher, validate)
	e.jobUC = usecase.NewJobUsecase(e.jobs, e.recruiters)
	e.applicationUC = usecase.NewApplicationUsecase(e.jobs, e.accounts, e.candidates, e.recruiters, nil)
	e.candidateUC = usecase.NewCandidateUsecase(e.candidates)
	return e
}

func (e *env) registerApplicant(t *testing.T, name, email string) *domain.RegisteredAccount {
	t.Helper()
	out, err := e.accountUC.Register(context.Background(), domain.RegisterInput{
		Name:     name,
		Email:    email,
		Password: "secret",
		Role:     domain.RoleApplicant,
	})
	require.NoError(t, err)
	return out
}

func (e *env) registerRecruiter(t *testing.T, name, email string) *domain.RegisteredAccount {
	t.Helper()
	out, err := e.accountUC.Register(context.Background(), domain.RegisterInput{
		Name:     name,
		Email:    email,
		Password: "secret",
		Role:     domain.RoleRecruiter,
	})
	require.NoError(t, err)
	return out
}

func (e *env) createJob(t *testing.T, recruiterID, title string) *domain.JobPosting {
	t.Helper()
	job := &domain.JobPosting{Title: title, Company: "Acme", Location: "Remote", Status: "active"}
	require.NoError(t, e.jobUC.CreateJob(context.Background(), recruiterID, job))
	return job
}
