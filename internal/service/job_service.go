package service

import (
	"context"

	"github.com/codeward/backend/internal/model"
)

// JobService defines the business logic for job postings.
type JobService interface {
	// ListPublic returns only postings visible on the careers page
	// (status = active).
	ListPublic(ctx context.Context) ([]*model.JobPosting, error)

	List(ctx context.Context) ([]*model.JobPosting, error)
	Get(ctx context.Context, id string) (*model.JobPosting, error)
	Create(ctx context.Context, job *model.JobPosting) error
	Update(ctx context.Context, job *model.JobPosting) error
	UpdateStatus(ctx context.Context, id, status string) error
	Delete(ctx context.Context, id string) error
}
