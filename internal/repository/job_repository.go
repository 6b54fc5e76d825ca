package repository

import (
	"context"
	"errors"

	"github.com/codeward/backend/internal/model"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// JobRepository defines the persistence interface for job postings.
type JobRepository interface {
	Create(ctx context.Context, job *model.JobPosting) error
	Update(ctx context.Context, job *model.JobPosting) error
	UpdateStatus(ctx context.Context, id, status string) error
	Delete(ctx context.Context, id string) error
	FindByID(ctx context.Context, id string) (*model.JobPosting, error)
	ListAll(ctx context.Context) ([]*model.JobPosting, error)
	// ListActive returns only publicly visible postings (status = active).
	ListActive(ctx context.Context) ([]*model.JobPosting, error)
}

// PgJobRepository is the PostgreSQL implementation of JobRepository.
type PgJobRepository struct {
	pool *pgxpool.Pool
}

// NewPgJobRepository creates a PgJobRepository backed by the given pool.
func NewPgJobRepository(pool *pgxpool.Pool) *PgJobRepository {
	return &PgJobRepository{pool: pool}
}

var _ JobRepository = (*PgJobRepository)(nil)

const jobSelectCols = `id, title, description, location, department, type, status,
	publish_date, expiry_date, created_at, updated_at`

func scanJob(scan func(...any) error) (*model.JobPosting, error) {
	var j model.JobPosting
	if err := scan(&j.ID, &j.Title, &j.Description, &j.Location, &j.Department,
		&j.Type, &j.Status, &j.PublishDate, &j.ExpiryDate, &j.CreatedAt, &j.UpdatedAt); err != nil {
		return nil, err
	}
	return &j, nil
}

// Create inserts a new job_postings row and populates job.ID and timestamps.
func (r *PgJobRepository) Create(ctx context.Context, job *model.JobPosting) error {
	return r.pool.QueryRow(ctx,
		`INSERT INTO job_postings
		 (title, description, location, department, type, status, publish_date, expiry_date)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		 RETURNING id, created_at, updated_at`,
		job.Title, job.Description, job.Location, job.Department, job.Type,
		job.Status, job.PublishDate, job.ExpiryDate,
	).Scan(&job.ID, &job.CreatedAt, &job.UpdatedAt)
}

// Update rewrites the editable columns of a posting and bumps updated_at.
func (r *PgJobRepository) Update(ctx context.Context, job *model.JobPosting) error {
	row := r.pool.QueryRow(ctx,
		`UPDATE job_postings
		 SET title = $2, description = $3, location = $4, department = $5,
		     type = $6, status = $7, publish_date = $8, expiry_date = $9,
		     updated_at = NOW()
		 WHERE id = $1
		 RETURNING updated_at`,
		job.ID, job.Title, job.Description, job.Location, job.Department,
		job.Type, job.Status, job.PublishDate, job.ExpiryDate)
	err := row.Scan(&job.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return ErrNotFound
	}
	return err
}

// UpdateStatus changes only the status column.
func (r *PgJobRepository) UpdateStatus(ctx context.Context, id, status string) error {
	tag, err := r.pool.Exec(ctx,
		`UPDATE job_postings SET status = $2, updated_at = NOW() WHERE id = $1`, id, status)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete removes a posting. Applications referencing it keep their rows with
// job_id nulled by the FK (ON DELETE SET NULL).
func (r *PgJobRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM job_postings WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// FindByID returns one posting or ErrNotFound.
func (r *PgJobRepository) FindByID(ctx context.Context, id string) (*model.JobPosting, error) {
	row := r.pool.QueryRow(ctx,
		`SELECT `+jobSelectCols+` FROM job_postings WHERE id = $1`, id)
	j, err := scanJob(row.Scan)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	return j, err
}

func (r *PgJobRepository) list(ctx context.Context, query string, args ...any) ([]*model.JobPosting, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var jobs []*model.JobPosting
	for rows.Next() {
		j, err := scanJob(rows.Scan)
		if err != nil {
			return nil, err
		}
		jobs = append(jobs, j)
	}
	return jobs, rows.Err()
}

// ListAll returns every posting, newest first.
func (r *PgJobRepository) ListAll(ctx context.Context) ([]*model.JobPosting, error) {
	return r.list(ctx,
		`SELECT `+jobSelectCols+` FROM job_postings ORDER BY created_at DESC`)
}

// ListActive returns postings with status = active, newest first.
func (r *PgJobRepository) ListActive(ctx context.Context) ([]*model.JobPosting, error) {
	return r.list(ctx,
		`SELECT `+jobSelectCols+` FROM job_postings WHERE status = $1 ORDER BY created_at DESC`,
		model.JobStatusActive)
}
