package repository

import (
	"context"
	"errors"

	"github.com/codeward/backend/internal/model"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ApplicationRepository defines the persistence interface for career applications.
type ApplicationRepository interface {
	Save(ctx context.Context, app *model.CareerApplication) error
	ListAll(ctx context.Context) ([]*model.CareerApplication, error)
	FindByID(ctx context.Context, id string) (*model.CareerApplication, error)
	// UpdateStatus changes status/notes and stamps reviewed_by/reviewed_at.
	// All other columns stay untouched.
	UpdateStatus(ctx context.Context, id, status, notes, reviewedBy string) error
	Delete(ctx context.Context, id string) error
}

// PgApplicationRepository is the PostgreSQL implementation of ApplicationRepository.
type PgApplicationRepository struct {
	pool *pgxpool.Pool
}

// NewPgApplicationRepository creates a PgApplicationRepository backed by the given pool.
func NewPgApplicationRepository(pool *pgxpool.Pool) *PgApplicationRepository {
	return &PgApplicationRepository{pool: pool}
}

var _ ApplicationRepository = (*PgApplicationRepository)(nil)

const applicationSelectCols = `id, first_name, last_name, email, phone, message, resume_path,
	job_id, status, notes, reviewed_by, reviewed_at, created_at`

func scanApplication(scan func(...any) error) (*model.CareerApplication, error) {
	var a model.CareerApplication
	if err := scan(&a.ID, &a.FirstName, &a.LastName, &a.Email, &a.Phone, &a.Message,
		&a.ResumePath, &a.JobID, &a.Status, &a.Notes, &a.ReviewedBy, &a.ReviewedAt,
		&a.CreatedAt); err != nil {
		return nil, err
	}
	return &a, nil
}

// Save inserts a new career_applications row. ResumePath must already point at
// the stored file; the upload happens before this call.
func (r *PgApplicationRepository) Save(ctx context.Context, app *model.CareerApplication) error {
	return r.pool.QueryRow(ctx,
		`INSERT INTO career_applications
		 (first_name, last_name, email, phone, message, resume_path, job_id, status)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		 RETURNING id, created_at`,
		app.FirstName, app.LastName, app.Email, app.Phone, app.Message,
		app.ResumePath, app.JobID, app.Status,
	).Scan(&app.ID, &app.CreatedAt)
}

// ListAll returns every application, newest first.
func (r *PgApplicationRepository) ListAll(ctx context.Context) ([]*model.CareerApplication, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+applicationSelectCols+` FROM career_applications ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var apps []*model.CareerApplication
	for rows.Next() {
		a, err := scanApplication(rows.Scan)
		if err != nil {
			return nil, err
		}
		apps = append(apps, a)
	}
	return apps, rows.Err()
}

// FindByID returns one application or ErrNotFound.
func (r *PgApplicationRepository) FindByID(ctx context.Context, id string) (*model.CareerApplication, error) {
	row := r.pool.QueryRow(ctx,
		`SELECT `+applicationSelectCols+` FROM career_applications WHERE id = $1`, id)
	a, err := scanApplication(row.Scan)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	return a, err
}

// UpdateStatus applies an admin review decision. Notes may be empty, which
// stores NULL rather than an empty string.
func (r *PgApplicationRepository) UpdateStatus(ctx context.Context, id, status, notes, reviewedBy string) error {
	tag, err := r.pool.Exec(ctx,
		`UPDATE career_applications
		 SET status = $2, notes = NULLIF($3, ''), reviewed_by = $4, reviewed_at = NOW()
		 WHERE id = $1`,
		id, status, notes, reviewedBy)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete removes an application.
func (r *PgApplicationRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.pool.Exec(ctx,
		`DELETE FROM career_applications WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
