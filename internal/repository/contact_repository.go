package repository

import (
	"context"
	"errors"

	"github.com/codeward/backend/internal/model"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ContactRepository defines the persistence interface for contact submissions.
// It is defined here (in repository) to avoid an import cycle with service.
type ContactRepository interface {
	Save(ctx context.Context, sub *model.ContactSubmission) error
	ListAll(ctx context.Context) ([]*model.ContactSubmission, error)
	FindByID(ctx context.Context, id string) (*model.ContactSubmission, error)
	UpdateStatus(ctx context.Context, id, status string) error
	Reply(ctx context.Context, id, reply, repliedBy string) error
	Delete(ctx context.Context, id string) error
}

// PgContactRepository is the PostgreSQL implementation of ContactRepository.
type PgContactRepository struct {
	pool *pgxpool.Pool
}

// NewPgContactRepository creates a PgContactRepository backed by the given pool.
func NewPgContactRepository(pool *pgxpool.Pool) *PgContactRepository {
	return &PgContactRepository{pool: pool}
}

var _ ContactRepository = (*PgContactRepository)(nil)

const contactSelectCols = `id, name, email, contact, message, status, admin_reply, replied_by, replied_at, created_at`

func scanContact(scan func(...any) error) (*model.ContactSubmission, error) {
	var c model.ContactSubmission
	if err := scan(&c.ID, &c.Name, &c.Email, &c.Contact, &c.Message, &c.Status,
		&c.AdminReply, &c.RepliedBy, &c.RepliedAt, &c.CreatedAt); err != nil {
		return nil, err
	}
	return &c, nil
}

// Save inserts a new contact_submissions row and populates sub.ID and
// sub.CreatedAt from the database RETURNING clause.
func (r *PgContactRepository) Save(ctx context.Context, sub *model.ContactSubmission) error {
	return r.pool.QueryRow(ctx,
		`INSERT INTO contact_submissions (name, email, contact, message, status)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING id, created_at`,
		sub.Name, sub.Email, sub.Contact, sub.Message, sub.Status,
	).Scan(&sub.ID, &sub.CreatedAt)
}

// ListAll returns every contact submission, newest first. The admin table
// filters and paginates in memory, so no WHERE clause is assembled here.
func (r *PgContactRepository) ListAll(ctx context.Context) ([]*model.ContactSubmission, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+contactSelectCols+` FROM contact_submissions ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var subs []*model.ContactSubmission
	for rows.Next() {
		c, err := scanContact(rows.Scan)
		if err != nil {
			return nil, err
		}
		subs = append(subs, c)
	}
	return subs, rows.Err()
}

// FindByID returns one contact submission or ErrNotFound.
func (r *PgContactRepository) FindByID(ctx context.Context, id string) (*model.ContactSubmission, error) {
	row := r.pool.QueryRow(ctx,
		`SELECT `+contactSelectCols+` FROM contact_submissions WHERE id = $1`, id)
	c, err := scanContact(row.Scan)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	return c, err
}

// UpdateStatus changes only the status column.
func (r *PgContactRepository) UpdateStatus(ctx context.Context, id, status string) error {
	tag, err := r.pool.Exec(ctx,
		`UPDATE contact_submissions SET status = $2 WHERE id = $1`, id, status)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// Reply records an admin reply: sets admin_reply, replied_by, replied_at and
// moves the submission to "replied" in one statement.
func (r *PgContactRepository) Reply(ctx context.Context, id, reply, repliedBy string) error {
	tag, err := r.pool.Exec(ctx,
		`UPDATE contact_submissions
		 SET admin_reply = $2, replied_by = $3, replied_at = NOW(), status = $4
		 WHERE id = $1`,
		id, reply, repliedBy, model.ContactStatusReplied)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete removes a contact submission.
func (r *PgContactRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.pool.Exec(ctx,
		`DELETE FROM contact_submissions WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
