package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"opportunity-match-backend/internal/domain"
)

// PostgreSQL error codes
const pgUniqueViolation = "23505"

type accountRepo struct {
	db *pgxpool.Pool
}

func NewAccountRepository(db *pgxpool.Pool) domain.AccountRepository {
	return &accountRepo{db: db}
}

func (r *accountRepo) Create(ctx context.Context, account *domain.Account) error {
	query := `INSERT INTO accounts (id, name, email, password_hash, role, applied_job_ids, resume_ref, skills, created_at, updated_at)
              VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.db.Exec(ctx, query,
		account.ID, account.Name, account.Email, account.PasswordHash, account.Role,
		account.AppliedJobIDs, account.ResumeRef, account.Skills,
		account.CreatedAt, account.UpdatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return domain.ErrDuplicateEmail
		}
		return err
	}
	return nil
}

const accountColumns = `id, name, email, password_hash, role, applied_job_ids, resume_ref, skills, created_at, updated_at`

func scanAccount(row pgx.Row) (*domain.Account, error) {
	var a domain.Account
	err := row.Scan(
		&a.ID, &a.Name, &a.Email, &a.PasswordHash, &a.Role,
		&a.AppliedJobIDs, &a.ResumeRef, &a.Skills, &a.CreatedAt, &a.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &a, nil
}

func (r *accountRepo) GetByID(ctx context.Context, id string) (*domain.Account, error) {
	query := `SELECT ` + accountColumns + ` FROM accounts WHERE id = $1`
	return scanAccount(r.db.QueryRow(ctx, query, id))
}

func (r *accountRepo) GetByEmail(ctx context.Context, email string) (*domain.Account, error) {
	query := `SELECT ` + accountColumns + ` FROM accounts WHERE lower(email) = lower($1)`
	return scanAccount(r.db.QueryRow(ctx, query, email))
}

func (r *accountRepo) List(ctx context.Context) ([]domain.Account, error) {
	query := `SELECT ` + accountColumns + ` FROM accounts ORDER BY created_at`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Account
	for rows.Next() {
		a, err := scanAccount(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *a)
	}
	return out, rows.Err()
}

// AppendAppliedJob relies on a single UPDATE so the read-check-append is
// atomic at the row level; concurrent applies on one account serialize in
// the database.
func (r *accountRepo) AppendAppliedJob(ctx context.Context, accountID, jobID string) error {
	query := `UPDATE accounts
              SET applied_job_ids = array_append(applied_job_ids, $2), updated_at = now()
              WHERE id = $1 AND NOT ($2 = ANY(applied_job_ids))`
	tag, err := r.db.Exec(ctx, query, accountID, jobID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		// Either the id is already present (no-op) or the account is gone.
		var exists bool
		if err := r.db.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM accounts WHERE id = $1)`, accountID).Scan(&exists); err != nil {
			return err
		}
		if !exists {
			return domain.ErrNotFound
		}
	}
	return nil
}

func (r *accountRepo) ReplaceSkills(ctx context.Context, accountID string, skills []string) (*domain.Account, error) {
	query := `UPDATE accounts SET skills = $2, updated_at = now() WHERE id = $1
              RETURNING ` + accountColumns
	return scanAccount(r.db.QueryRow(ctx, query, accountID, skills))
}
