package service

import (
	"context"
	"errors"
	"testing"

	"github.com/codeward/backend/internal/model"
	"github.com/codeward/backend/internal/repository"
	"golang.org/x/crypto/bcrypt"
)

// ---------------------------------------------------------------------------
// mockUserRepository — shared by auth and admin user tests
// ---------------------------------------------------------------------------

type mockUserRepository struct {
	createFunc     func(ctx context.Context, user *model.User, passwordHash string) error
	findByIDFunc   func(ctx context.Context, id string) (*model.User, error)
	findEmailFunc  func(ctx context.Context, email string) (*model.User, error)
	credentialFunc func(ctx context.Context, email string) (*model.User, string, error)
	listFunc       func(ctx context.Context) ([]*model.User, error)
	statusFunc     func(ctx context.Context, id, status string) error
}

func (m *mockUserRepository) Create(ctx context.Context, user *model.User, passwordHash string) error {
	if m.createFunc != nil {
		return m.createFunc(ctx, user, passwordHash)
	}
	return nil
}

func (m *mockUserRepository) FindByID(ctx context.Context, id string) (*model.User, error) {
	if m.findByIDFunc != nil {
		return m.findByIDFunc(ctx, id)
	}
	return nil, repository.ErrNotFound
}

func (m *mockUserRepository) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	if m.findEmailFunc != nil {
		return m.findEmailFunc(ctx, email)
	}
	return nil, repository.ErrNotFound
}

func (m *mockUserRepository) FindCredentialByEmail(ctx context.Context, email string) (*model.User, string, error) {
	if m.credentialFunc != nil {
		return m.credentialFunc(ctx, email)
	}
	return nil, "", repository.ErrNotFound
}

func (m *mockUserRepository) List(ctx context.Context) ([]*model.User, error) {
	if m.listFunc != nil {
		return m.listFunc(ctx)
	}
	return nil, nil
}

func (m *mockUserRepository) UpdateStatus(ctx context.Context, id, status string) error {
	if m.statusFunc != nil {
		return m.statusFunc(ctx, id, status)
	}
	return nil
}

// ---------------------------------------------------------------------------
// SignUp
// ---------------------------------------------------------------------------

func TestAuthService_SignUp_HashesPassword(t *testing.T) {
	var gotHash string
	mock := &mockUserRepository{
		createFunc: func(ctx context.Context, user *model.User, passwordHash string) error {
			gotHash = passwordHash
			return nil
		},
	}
	svc := NewAuthService(mock)

	user, err := svc.SignUp(context.Background(), "Jonas Weber", "jonas@codeward.dev", "s3cret-pass", model.RoleTeamMember)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotHash == "s3cret-pass" || gotHash == "" {
		t.Fatal("expected password stored as a hash, never plaintext")
	}
	if bcrypt.CompareHashAndPassword([]byte(gotHash), []byte("s3cret-pass")) != nil {
		t.Error("expected stored hash to verify against the original password")
	}
	if user.Status != model.UserStatusActive {
		t.Errorf("expected new accounts active, got %q", user.Status)
	}
}

func TestAuthService_SignUp_NormalizesEmail(t *testing.T) {
	var gotEmail string
	mock := &mockUserRepository{
		createFunc: func(ctx context.Context, user *model.User, passwordHash string) error {
			gotEmail = user.Email
			return nil
		},
	}
	svc := NewAuthService(mock)

	if _, err := svc.SignUp(context.Background(), "N", "  Jonas@Codeward.DEV ", "longenough", model.RoleAdmin); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotEmail != "jonas@codeward.dev" {
		t.Errorf("expected lowercased trimmed email, got %q", gotEmail)
	}
}

func TestAuthService_SignUp_RejectsShortPassword(t *testing.T) {
	svc := NewAuthService(&mockUserRepository{})

	if _, err := svc.SignUp(context.Background(), "N", "n@e.com", "short", model.RoleAdmin); !errors.Is(err, ErrWeakPassword) {
		t.Errorf("expected ErrWeakPassword, got %v", err)
	}
}

func TestAuthService_SignUp_RejectsUnknownRole(t *testing.T) {
	svc := NewAuthService(&mockUserRepository{})

	if _, err := svc.SignUp(context.Background(), "N", "n@e.com", "longenough", "superuser"); err == nil {
		t.Error("expected error for unknown role")
	}
}

func TestAuthService_SignUp_RejectsDuplicateEmail(t *testing.T) {
	mock := &mockUserRepository{
		findEmailFunc: func(ctx context.Context, email string) (*model.User, error) {
			return &model.User{ID: "u1", Email: email}, nil
		},
	}
	svc := NewAuthService(mock)

	if _, err := svc.SignUp(context.Background(), "N", "taken@e.com", "longenough", model.RoleAdmin); !errors.Is(err, ErrEmailTaken) {
		t.Errorf("expected ErrEmailTaken, got %v", err)
	}
}

// ---------------------------------------------------------------------------
// SignIn
// ---------------------------------------------------------------------------

func credentialMock(t *testing.T, user *model.User, password string) *mockUserRepository {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	return &mockUserRepository{
		credentialFunc: func(ctx context.Context, email string) (*model.User, string, error) {
			if email != user.Email {
				return nil, "", repository.ErrNotFound
			}
			return user, string(hash), nil
		},
	}
}

func TestAuthService_SignIn_Success(t *testing.T) {
	user := &model.User{ID: "u1", Email: "lena@codeward.dev", Role: model.RoleAdmin, Status: model.UserStatusActive}
	svc := NewAuthService(credentialMock(t, user, "correct-horse"))

	got, err := svc.SignIn(context.Background(), "Lena@Codeward.dev", "correct-horse")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.ID != "u1" {
		t.Errorf("expected user u1, got %q", got.ID)
	}
}

func TestAuthService_SignIn_WrongPassword(t *testing.T) {
	user := &model.User{ID: "u1", Email: "lena@codeward.dev", Status: model.UserStatusActive}
	svc := NewAuthService(credentialMock(t, user, "correct-horse"))

	if _, err := svc.SignIn(context.Background(), "lena@codeward.dev", "wrong"); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("expected ErrInvalidCredentials, got %v", err)
	}
}

// Unknown email yields the same error as a wrong password.
func TestAuthService_SignIn_UnknownEmail(t *testing.T) {
	svc := NewAuthService(&mockUserRepository{})

	if _, err := svc.SignIn(context.Background(), "nobody@codeward.dev", "whatever"); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthService_SignIn_InactiveAccountRefused(t *testing.T) {
	user := &model.User{ID: "u2", Email: "old@codeward.dev", Status: model.UserStatusInactive}
	svc := NewAuthService(credentialMock(t, user, "correct-horse"))

	if _, err := svc.SignIn(context.Background(), "old@codeward.dev", "correct-horse"); !errors.Is(err, ErrAccountInactive) {
		t.Errorf("expected ErrAccountInactive, got %v", err)
	}
}
