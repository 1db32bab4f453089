package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"opportunity-match-backend/internal/domain"
)

type candidateRepo struct {
	db *pgxpool.Pool
}

func NewCandidateRepository(db *pgxpool.Pool) domain.CandidateRepository {
	return &candidateRepo{db: db}
}

const candidateColumns = `id, account_id, name, position, experience, location, skills, phone, applied_job_ids`

func scanCandidate(row pgx.Row) (*domain.CandidateProfile, error) {
	var p domain.CandidateProfile
	err := row.Scan(
		&p.ID, &p.AccountID, &p.Name, &p.Position, &p.Experience,
		&p.Location, &p.Skills, &p.Phone, &p.AppliedJobIDs,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &p, nil
}

func (r *candidateRepo) Create(ctx context.Context, profile *domain.CandidateProfile) error {
	query := `INSERT INTO candidate_profiles (id, account_id, name, position, experience, location, skills, phone, applied_job_ids)
              VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.db.Exec(ctx, query,
		profile.ID, profile.AccountID, profile.Name, profile.Position, profile.Experience,
		profile.Location, profile.Skills, profile.Phone, profile.AppliedJobIDs,
	)
	return err
}

func (r *candidateRepo) GetByID(ctx context.Context, id string) (*domain.CandidateProfile, error) {
	query := `SELECT ` + candidateColumns + ` FROM candidate_profiles WHERE id = $1`
	return scanCandidate(r.db.QueryRow(ctx, query, id))
}

func (r *candidateRepo) GetByAccountID(ctx context.Context, accountID string) (*domain.CandidateProfile, error) {
	query := `SELECT ` + candidateColumns + ` FROM candidate_profiles WHERE account_id = $1 LIMIT 1`
	return scanCandidate(r.db.QueryRow(ctx, query, accountID))
}

func (r *candidateRepo) List(ctx context.Context) ([]domain.CandidateProfile, error) {
	query := `SELECT ` + candidateColumns + ` FROM candidate_profiles ORDER BY name`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.CandidateProfile
	for rows.Next() {
		p, err := scanCandidate(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *p)
	}
	return out, rows.Err()
}

func (r *candidateRepo) Update(ctx context.Context, profile *domain.CandidateProfile) error {
	query := `UPDATE candidate_profiles
              SET name = $2, position = $3, experience = $4, location = $5, skills = $6, phone = $7
              WHERE id = $1`
	tag, err := r.db.Exec(ctx, query,
		profile.ID, profile.Name, profile.Position, profile.Experience,
		profile.Location, profile.Skills, profile.Phone,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *candidateRepo) AppendAppliedJob(ctx context.Context, profileID, jobID string) error {
	query := `UPDATE candidate_profiles
              SET applied_job_ids = array_append(applied_job_ids, $2)
              WHERE id = $1 AND NOT ($2 = ANY(applied_job_ids))`
	tag, err := r.db.Exec(ctx, query, profileID, jobID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		var exists bool
		if err := r.db.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM candidate_profiles WHERE id = $1)`, profileID).Scan(&exists); err != nil {
			return err
		}
		if !exists {
			return domain.ErrNotFound
		}
	}
	return nil
}
