package service

import (
	"context"

	"github.com/codeward/backend/internal/model"
)

// ContactInput is the untrusted payload from the public contact form.
type ContactInput struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Contact string `json:"contact"`
	Message string `json:"message"`
}

// ContactService defines the business logic around contact submissions:
// the public intake pipeline and the admin-side mutations.
type ContactService interface {
	// Submit validates, rate-limits and persists one contact submission.
	// It never returns an error; failures are encoded in the result.
	Submit(ctx context.Context, in ContactInput) SubmitResult

	List(ctx context.Context) ([]*model.ContactSubmission, error)
	UpdateStatus(ctx context.Context, id, status string) error
	Reply(ctx context.Context, id, reply, repliedBy string) error
	Delete(ctx context.Context, id string) error
}
