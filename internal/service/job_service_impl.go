package service

import (
	"context"
	"errors"
	"strings"

	"github.com/codeward/backend/internal/model"
	"github.com/codeward/backend/internal/repository"
)

// ErrTitleRequired is returned when a posting is created or updated without a title.
var ErrTitleRequired = errors.New("title is required")

// jobServiceImpl is the production implementation of JobService.
type jobServiceImpl struct {
	repo repository.JobRepository
}

// NewJobService creates a JobService backed by the given repository.
func NewJobService(repo repository.JobRepository) JobService {
	return &jobServiceImpl{repo: repo}
}

// ListPublic returns active postings only.
func (s *jobServiceImpl) ListPublic(ctx context.Context) ([]*model.JobPosting, error) {
	return s.repo.ListActive(ctx)
}

// List returns every posting for the admin table.
func (s *jobServiceImpl) List(ctx context.Context) ([]*model.JobPosting, error) {
	return s.repo.ListAll(ctx)
}

// Get returns one posting by id.
func (s *jobServiceImpl) Get(ctx context.Context, id string) (*model.JobPosting, error) {
	return s.repo.FindByID(ctx, id)
}

// Create validates and inserts a posting. Status defaults to active.
func (s *jobServiceImpl) Create(ctx context.Context, job *model.JobPosting) error {
	if strings.TrimSpace(job.Title) == "" {
		return ErrTitleRequired
	}
	if job.Status == "" {
		job.Status = model.JobStatusActive
	}
	if !model.ValidJobStatus(job.Status) {
		return ErrInvalidStatus
	}
	return s.repo.Create(ctx, job)
}

// Update validates and rewrites a posting's editable fields.
func (s *jobServiceImpl) Update(ctx context.Context, job *model.JobPosting) error {
	if strings.TrimSpace(job.Title) == "" {
		return ErrTitleRequired
	}
	if !model.ValidJobStatus(job.Status) {
		return ErrInvalidStatus
	}
	return s.repo.Update(ctx, job)
}

// UpdateStatus flips a posting's visibility status.
func (s *jobServiceImpl) UpdateStatus(ctx context.Context, id, status string) error {
	if !model.ValidJobStatus(status) {
		return ErrInvalidStatus
	}
	return s.repo.UpdateStatus(ctx, id, status)
}

// Delete removes a posting; applications keep their rows with job_id nulled.
func (s *jobServiceImpl) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
