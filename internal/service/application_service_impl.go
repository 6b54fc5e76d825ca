package service

import (
	"context"
	"log/slog"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/codeward/backend/internal/model"
	"github.com/codeward/backend/internal/ratelimit"
	"github.com/codeward/backend/internal/repository"
	"github.com/codeward/backend/internal/storage"
	"github.com/google/uuid"
)

// applicationServiceImpl is the production implementation of ApplicationService.
// A nil repo puts the pipeline in degraded mode (simulated success, no upload).
type applicationServiceImpl struct {
	repo    repository.ApplicationRepository
	store   storage.Storage
	limiter ratelimit.Limiter
}

// NewApplicationService creates an ApplicationService. repo may be nil
// (degraded mode).
func NewApplicationService(repo repository.ApplicationRepository, store storage.Storage, limiter ratelimit.Limiter) ApplicationService {
	return &applicationServiceImpl{repo: repo, store: store, limiter: limiter}
}

// Submit runs the intake pipeline in fixed order: validate, check the sender
// cooldown, upload the résumé, then persist. The résumé must be stored before
// any row is written; an upload failure means no insert is ever attempted.
// As with contact submissions, the cooldown is consumed once the limiter
// allows, even if a later stage fails.
func (s *applicationServiceImpl) Submit(ctx context.Context, in ApplicationInput) SubmitResult {
	errs := fieldErrors{}
	requireText(errs, "firstName", in.FirstName, "First name is required")
	requireText(errs, "lastName", in.LastName, "Last name is required")
	requireEmail(errs, "email", in.Email)
	requireText(errs, "phone", in.Phone, "Phone number is required")
	requireText(errs, "message", in.Message, "Message is required")
	s.validateResume(errs, in)
	if in.JobID != "" {
		if err := uuid.Validate(in.JobID); err != nil {
			errs.add("jobId", "Invalid job reference")
		}
	}
	if len(errs) > 0 {
		return invalidResult(errs)
	}

	if res := s.limiter.Check(ctx, in.Email); !res.Allowed {
		return rateLimitedResult(res.RetryAfter)
	}

	if s.repo == nil {
		slog.Warn("career application simulated, no database configured", "email", in.Email)
		return simulatedResult()
	}

	key := path.Join("resumes", uuid.NewString()+strings.ToLower(filepath.Ext(in.ResumeName)))
	resumePath, err := s.store.Save(ctx, key, in.Resume, in.ResumeContentType)
	if err != nil {
		slog.Error("resume upload failed", "error", err, "key", key)
		return storageUnavailableResult()
	}

	app := &model.CareerApplication{
		FirstName:  strings.TrimSpace(in.FirstName),
		LastName:   strings.TrimSpace(in.LastName),
		Email:      strings.TrimSpace(in.Email),
		Phone:      strings.TrimSpace(in.Phone),
		Message:    in.Message,
		ResumePath: resumePath,
		Status:     model.ApplicationStatusNew,
		CreatedAt:  time.Now().UTC(),
	}
	if in.JobID != "" {
		jobID := in.JobID
		app.JobID = &jobID
	}

	if err := s.repo.Save(ctx, app); err != nil {
		slog.Error("career application save failed", "error", err)
		// Best-effort removal of the now-orphaned upload.
		_ = s.store.Delete(ctx, key)
		return storeUnavailableResult()
	}

	slog.Info("career application stored", "id", app.ID, "job_id", in.JobID)
	return SubmitResult{Success: true, Message: msgApplicationReceived, Kind: ResultOK}
}

func (s *applicationServiceImpl) validateResume(errs fieldErrors, in ApplicationInput) {
	if in.Resume == nil || in.ResumeName == "" {
		errs.add("resume", "Résumé file is required")
		return
	}
	if !validResumeExtension(in.ResumeName) {
		errs.add("resume", "Résumé must be a PDF or Word document (pdf, doc, docx)")
	}
	if in.ResumeSize > MaxResumeSize {
		errs.add("resume", "Résumé must be 5 MB or smaller")
	}
}

// List returns all applications for the admin table.
func (s *applicationServiceImpl) List(ctx context.Context) ([]*model.CareerApplication, error) {
	return s.repo.ListAll(ctx)
}

// UpdateStatus applies a review decision and stamps the reviewer.
func (s *applicationServiceImpl) UpdateStatus(ctx context.Context, id, status, notes, reviewedBy string) error {
	if !model.ValidApplicationStatus(status) {
		return ErrInvalidStatus
	}
	return s.repo.UpdateStatus(ctx, id, status, notes, reviewedBy)
}

// Delete removes an application.
func (s *applicationServiceImpl) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
