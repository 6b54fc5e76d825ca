package service

import (
	"context"

	"github.com/codeward/backend/internal/model"
)

// AuthService は認証に関するビジネスロジックのインターフェース
type AuthService interface {
	// SignUp creates a team account with a bcrypt-hashed password.
	SignUp(ctx context.Context, name, email, password, role string) (*model.User, error)

	// SignIn verifies the password and refuses inactive accounts.
	SignIn(ctx context.Context, email, password string) (*model.User, error)
}
