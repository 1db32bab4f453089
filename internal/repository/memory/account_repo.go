package memory

import (
	"context"
	"strings"
	"sync"
	"time"

	"opportunity-match-backend/internal/domain"
)

type accountRepo struct {
	mu       sync.RWMutex
	accounts map[string]*domain.Account
	order    []string
}

func NewAccountRepository() domain.AccountRepository {
	return &accountRepo{accounts: make(map[string]*domain.Account)}
}

func (r *accountRepo) Create(ctx context.Context, account *domain.Account) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.accounts {
		if strings.EqualFold(existing.Email, account.Email) {
			return domain.ErrDuplicateEmail
		}
	}
	r.accounts[account.ID] = account.Clone()
	r.order = append(r.order, account.ID)
	return nil
}

func (r *accountRepo) GetByID(ctx context.Context, id string) (*domain.Account, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	account, ok := r.accounts[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return account.Clone(), nil
}

func (r *accountRepo) GetByEmail(ctx context.Context, email string) (*domain.Account, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, account := range r.accounts {
		if strings.EqualFold(account.Email, email) {
			return account.Clone(), nil
		}
	}
	return nil, domain.ErrNotFound
}

func (r *accountRepo) List(ctx context.Context) ([]domain.Account, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]domain.Account, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, *r.accounts[id].Clone())
	}
	return out, nil
}

func (r *accountRepo) AppendAppliedJob(ctx context.Context, accountID, jobID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	account, ok := r.accounts[accountID]
	if !ok {
		return domain.ErrNotFound
	}
	if !containsID(account.AppliedJobIDs, jobID) {
		account.AppliedJobIDs = append(account.AppliedJobIDs, jobID)
		account.UpdatedAt = time.Now()
	}
	return nil
}

func (r *accountRepo) ReplaceSkills(ctx context.Context, accountID string, skills []string) (*domain.Account, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	account, ok := r.accounts[accountID]
	if !ok {
		return nil, domain.ErrNotFound
	}
	account.Skills = append([]string(nil), skills...)
	account.UpdatedAt = time.Now()
	return account.Clone(), nil
}
