package service

import (
	"context"

	"github.com/codeward/backend/internal/model"
	"github.com/codeward/backend/internal/repository"
)

// AdminUserService provides admin-only team account management.
type AdminUserService interface {
	ListUsers(ctx context.Context) ([]*model.User, error)
	GetUser(ctx context.Context, id string) (*model.User, error)
	// SetStatus activates or deactivates an account. Deactivated accounts
	// are refused at sign-in and by the admin middleware.
	SetStatus(ctx context.Context, id, status string) error
}

type adminUserService struct {
	userRepo repository.UserRepository
}

// NewAdminUserService creates an AdminUserService.
func NewAdminUserService(userRepo repository.UserRepository) AdminUserService {
	return &adminUserService{userRepo: userRepo}
}

func (s *adminUserService) ListUsers(ctx context.Context) ([]*model.User, error) {
	return s.userRepo.List(ctx)
}

func (s *adminUserService) GetUser(ctx context.Context, id string) (*model.User, error) {
	return s.userRepo.FindByID(ctx, id)
}

func (s *adminUserService) SetStatus(ctx context.Context, id, status string) error {
	if !model.ValidUserStatus(status) {
		return ErrInvalidStatus
	}
	return s.userRepo.UpdateStatus(ctx, id, status)
}
