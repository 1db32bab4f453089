package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"opportunity-match-backend/internal/domain"
)

type jobRepo struct {
	db *pgxpool.Pool
}

func NewJobRepository(db *pgxpool.Pool) domain.JobRepository {
	return &jobRepo{db: db}
}

const jobColumns = `id, title, company, location, salary, type, posted, description, requirements, status, owner_recruiter_id, applicant_ids, application_statuses`

func scanJob(row pgx.Row) (*domain.JobPosting, error) {
	var j domain.JobPosting
	err := row.Scan(
		&j.ID, &j.Title, &j.Company, &j.Location, &j.Salary, &j.Type, &j.Posted,
		&j.Description, &j.Requirements, &j.Status, &j.OwnerRecruiterID,
		&j.ApplicantIDs, &j.ApplicationStatuses,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	if j.ApplicationStatuses == nil {
		j.ApplicationStatuses = make(map[string]string)
	}
	return &j, nil
}

func (r *jobRepo) Create(ctx context.Context, job *domain.JobPosting) error {
	query := `INSERT INTO job_postings (id, title, company, location, salary, type, posted, description, requirements, status, owner_recruiter_id, applicant_ids, application_statuses)
              VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`
	_, err := r.db.Exec(ctx, query,
		job.ID, job.Title, job.Company, job.Location, job.Salary, job.Type, job.Posted,
		job.Description, job.Requirements, job.Status, job.OwnerRecruiterID,
		job.ApplicantIDs, job.ApplicationStatuses,
	)
	return err
}

func (r *jobRepo) GetByID(ctx context.Context, id string) (*domain.JobPosting, error) {
	query := `SELECT ` + jobColumns + ` FROM job_postings WHERE id = $1`
	return scanJob(r.db.QueryRow(ctx, query, id))
}

func (r *jobRepo) List(ctx context.Context) ([]domain.JobPosting, error) {
	return r.fetch(ctx, `SELECT `+jobColumns+` FROM job_postings ORDER BY created_at`)
}

func (r *jobRepo) ListByOwner(ctx context.Context, recruiterID string) ([]domain.JobPosting, error) {
	return r.fetch(ctx, `SELECT `+jobColumns+` FROM job_postings WHERE owner_recruiter_id = $1 ORDER BY created_at`, recruiterID)
}

func (r *jobRepo) fetch(ctx context.Context, query string, args ...any) ([]domain.JobPosting, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.JobPosting
	for rows.Next() {
		j, err := scanJob(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *j)
	}
	return out, rows.Err()
}

// Update only writes the posting's descriptive fields. Applicant and status
// state is mutated exclusively through AddApplicant / SetApplicationStatus
// so an edit can never clobber a concurrent application.
func (r *jobRepo) Update(ctx context.Context, job *domain.JobPosting) error {
	query := `UPDATE job_postings
              SET title = $2, company = $3, location = $4, salary = $5, type = $6, posted = $7,
                  description = $8, requirements = $9, status = $10
              WHERE id = $1`
	tag, err := r.db.Exec(ctx, query,
		job.ID, job.Title, job.Company, job.Location, job.Salary, job.Type, job.Posted,
		job.Description, job.Requirements, job.Status,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *jobRepo) Delete(ctx context.Context, id string) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM job_postings WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *jobRepo) AddApplicant(ctx context.Context, jobID, accountID string) error {
	query := `UPDATE job_postings
              SET applicant_ids = array_append(applicant_ids, $2)
              WHERE id = $1 AND NOT ($2 = ANY(applicant_ids))`
	tag, err := r.db.Exec(ctx, query, jobID, accountID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		var exists bool
		if err := r.db.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM job_postings WHERE id = $1)`, jobID).Scan(&exists); err != nil {
			return err
		}
		if !exists {
			return domain.ErrNotFound
		}
	}
	return nil
}

// SetApplicationStatus upserts the pair's entry in a single statement;
// jsonb_set with create_missing keeps at most one entry per account id.
func (r *jobRepo) SetApplicationStatus(ctx context.Context, jobID, accountID, status string) error {
	query := `UPDATE job_postings
              SET application_statuses = jsonb_set(application_statuses, ARRAY[$2], to_jsonb($3::text), true)
              WHERE id = $1`
	tag, err := r.db.Exec(ctx, query, jobID, accountID, status)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *jobRepo) GetApplicationStatus(ctx context.Context, jobID, accountID string) (string, error) {
	var status *string
	err := r.db.QueryRow(ctx, `SELECT application_statuses->>$2 FROM job_postings WHERE id = $1`, jobID, accountID).Scan(&status)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", domain.ErrNotFound
		}
		return "", err
	}
	if status == nil {
		return "", nil
	}
	return *status, nil
}
