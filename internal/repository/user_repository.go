package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/codeward/backend/internal/model"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// UserRepository defines the persistence interface for team accounts and
// their credential rows.
type UserRepository interface {
	// Create inserts the user and its 1:1 accounts row (password hash)
	// in one transaction.
	Create(ctx context.Context, user *model.User, passwordHash string) error
	FindByID(ctx context.Context, id string) (*model.User, error)
	FindByEmail(ctx context.Context, email string) (*model.User, error)
	// FindCredentialByEmail returns the user together with its stored
	// password hash, for sign-in.
	FindCredentialByEmail(ctx context.Context, email string) (*model.User, string, error)
	List(ctx context.Context) ([]*model.User, error)
	UpdateStatus(ctx context.Context, id, status string) error
}

// PgUserRepository は UserRepository の PostgreSQL 実装
type PgUserRepository struct {
	pool *pgxpool.Pool
}

// NewPgUserRepository は PgUserRepository を生成する
func NewPgUserRepository(pool *pgxpool.Pool) *PgUserRepository {
	return &PgUserRepository{pool: pool}
}

var _ UserRepository = (*PgUserRepository)(nil)

const userSelectCols = `id, name, email, email_verified, role, status, created_at, updated_at`

func scanUser(scan func(...any) error) (*model.User, error) {
	var u model.User
	if err := scan(&u.ID, &u.Name, &u.Email, &u.EmailVerified, &u.Role, &u.Status,
		&u.CreatedAt, &u.UpdatedAt); err != nil {
		return nil, err
	}
	return &u, nil
}

// Create はユーザーと認証情報（accounts 行）を同一トランザクションで作成する
func (r *PgUserRepository) Create(ctx context.Context, user *model.User, passwordHash string) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback(ctx)

	err = tx.QueryRow(ctx,
		`INSERT INTO users (name, email, role, status)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id, email_verified, created_at, updated_at`,
		user.Name, user.Email, user.Role, user.Status,
	).Scan(&user.ID, &user.EmailVerified, &user.CreatedAt, &user.UpdatedAt)
	if err != nil {
		return fmt.Errorf("insert user: %w", err)
	}

	if _, err := tx.Exec(ctx,
		`INSERT INTO accounts (user_id, password_hash) VALUES ($1, $2)`,
		user.ID, passwordHash); err != nil {
		return fmt.Errorf("insert account: %w", err)
	}

	return tx.Commit(ctx)
}

// FindByID は ID でユーザーを取得する
func (r *PgUserRepository) FindByID(ctx context.Context, id string) (*model.User, error) {
	row := r.pool.QueryRow(ctx,
		`SELECT `+userSelectCols+` FROM users WHERE id = $1`, id)
	u, err := scanUser(row.Scan)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	return u, err
}

// FindByEmail はメールアドレスでユーザーを取得する
func (r *PgUserRepository) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	row := r.pool.QueryRow(ctx,
		`SELECT `+userSelectCols+` FROM users WHERE email = $1`, email)
	u, err := scanUser(row.Scan)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	return u, err
}

// FindCredentialByEmail joins the accounts row for password verification.
func (r *PgUserRepository) FindCredentialByEmail(ctx context.Context, email string) (*model.User, string, error) {
	var u model.User
	var hash string
	err := r.pool.QueryRow(ctx,
		`SELECT u.id, u.name, u.email, u.email_verified, u.role, u.status,
		        u.created_at, u.updated_at, a.password_hash
		 FROM users u
		 JOIN accounts a ON a.user_id = u.id
		 WHERE u.email = $1`, email,
	).Scan(&u.ID, &u.Name, &u.Email, &u.EmailVerified, &u.Role, &u.Status,
		&u.CreatedAt, &u.UpdatedAt, &hash)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, "", ErrNotFound
	}
	if err != nil {
		return nil, "", err
	}
	return &u, hash, nil
}

// List returns every team account, oldest first.
func (r *PgUserRepository) List(ctx context.Context) ([]*model.User, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+userSelectCols+` FROM users ORDER BY created_at ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var users []*model.User
	for rows.Next() {
		u, err := scanUser(rows.Scan)
		if err != nil {
			return nil, err
		}
		users = append(users, u)
	}
	return users, rows.Err()
}

// UpdateStatus activates or deactivates an account.
func (r *PgUserRepository) UpdateStatus(ctx context.Context, id, status string) error {
	tag, err := r.pool.Exec(ctx,
		`UPDATE users SET status = $2, updated_at = NOW() WHERE id = $1`, id, status)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
