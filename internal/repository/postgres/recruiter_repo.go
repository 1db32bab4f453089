package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"opportunity-match-backend/internal/domain"
)

type recruiterRepo struct {
	db *pgxpool.Pool
}

func NewRecruiterRepository(db *pgxpool.Pool) domain.RecruiterRepository {
	return &recruiterRepo{db: db}
}

const recruiterColumns = `id, account_id, name, email, owned_job_ids`

func scanRecruiter(row pgx.Row) (*domain.RecruiterProfile, error) {
	var p domain.RecruiterProfile
	err := row.Scan(&p.ID, &p.AccountID, &p.Name, &p.Email, &p.OwnedJobIDs)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &p, nil
}

func (r *recruiterRepo) Create(ctx context.Context, profile *domain.RecruiterProfile) error {
	query := `INSERT INTO recruiter_profiles (id, account_id, name, email, owned_job_ids)
              VALUES ($1, $2, $3, $4, $5)`
	_, err := r.db.Exec(ctx, query,
		profile.ID, profile.AccountID, profile.Name, profile.Email, profile.OwnedJobIDs,
	)
	return err
}

func (r *recruiterRepo) GetByID(ctx context.Context, id string) (*domain.RecruiterProfile, error) {
	query := `SELECT ` + recruiterColumns + ` FROM recruiter_profiles WHERE id = $1`
	return scanRecruiter(r.db.QueryRow(ctx, query, id))
}

func (r *recruiterRepo) GetByAccountID(ctx context.Context, accountID string) (*domain.RecruiterProfile, error) {
	query := `SELECT ` + recruiterColumns + ` FROM recruiter_profiles WHERE account_id = $1 LIMIT 1`
	return scanRecruiter(r.db.QueryRow(ctx, query, accountID))
}

func (r *recruiterRepo) AppendOwnedJob(ctx context.Context, profileID, jobID string) error {
	query := `UPDATE recruiter_profiles
              SET owned_job_ids = array_append(owned_job_ids, $2)
              WHERE id = $1 AND NOT ($2 = ANY(owned_job_ids))`
	tag, err := r.db.Exec(ctx, query, profileID, jobID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		var exists bool
		if err := r.db.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM recruiter_profiles WHERE id = $1)`, profileID).Scan(&exists); err != nil {
			return err
		}
		if !exists {
			return domain.ErrNotFound
		}
	}
	return nil
}
