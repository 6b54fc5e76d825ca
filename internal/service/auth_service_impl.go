package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/codeward/backend/internal/model"
	"github.com/codeward/backend/internal/repository"
	"golang.org/x/crypto/bcrypt"
)

const minPasswordLen = 8

// ErrWeakPassword is returned when a new password is shorter than 8 characters.
var ErrWeakPassword = errors.New("password too short")

// AuthServiceImpl は AuthService の実装
type AuthServiceImpl struct {
	userRepo repository.UserRepository
}

// NewAuthService は AuthServiceImpl を生成する（DI: UserRepository を注入）
func NewAuthService(userRepo repository.UserRepository) AuthService {
	return &AuthServiceImpl{userRepo: userRepo}
}

// SignUp creates a team account. The password never touches the users table;
// its bcrypt hash goes into the 1:1 accounts row.
func (s *AuthServiceImpl) SignUp(ctx context.Context, name, email, password, role string) (*model.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || !emailPattern.MatchString(email) {
		return nil, fmt.Errorf("invalid email %q", email)
	}
	if len(password) < minPasswordLen {
		return nil, ErrWeakPassword
	}
	if !model.ValidRole(role) {
		return nil, fmt.Errorf("invalid role %q", role)
	}

	if _, err := s.userRepo.FindByEmail(ctx, email); err == nil {
		return nil, ErrEmailTaken
	} else if !errors.Is(err, repository.ErrNotFound) {
		return nil, fmt.Errorf("lookup email: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &model.User{
		Name:   strings.TrimSpace(name),
		Email:  email,
		Role:   role,
		Status: model.UserStatusActive,
	}
	if err := s.userRepo.Create(ctx, user, string(hash)); err != nil {
		slog.Error("create user failed", "error", err, "email", email)
		return nil, fmt.Errorf("create user: %w", err)
	}

	slog.Info("team account created", "user_id", user.ID, "role", role)
	return user, nil
}

// SignIn verifies the password against the stored hash. Unknown email and
// wrong password both yield ErrInvalidCredentials.
func (s *AuthServiceImpl) SignIn(ctx context.Context, email, password string) (*model.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	user, hash, err := s.userRepo.FindCredentialByEmail(ctx, email)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		return nil, fmt.Errorf("lookup credential: %w", err)
	}

	if bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) != nil {
		return nil, ErrInvalidCredentials
	}
	if !user.IsActive() {
		return nil, ErrAccountInactive
	}

	slog.Debug("sign-in succeeded", "user_id", user.ID)
	return user, nil
}
