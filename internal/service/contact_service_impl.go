package service

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/codeward/backend/internal/model"
	"github.com/codeward/backend/internal/ratelimit"
	"github.com/codeward/backend/internal/repository"
)

// contactServiceImpl is the production implementation of ContactService.
// A nil repo puts the pipeline in degraded mode: schema-valid submissions are
// simulated instead of written (local/dev without a database).
type contactServiceImpl struct {
	repo    repository.ContactRepository
	limiter ratelimit.Limiter
}

// NewContactService creates a ContactService. repo may be nil (degraded mode).
func NewContactService(repo repository.ContactRepository, limiter ratelimit.Limiter) ContactService {
	return &contactServiceImpl{repo: repo, limiter: limiter}
}

// Submit runs the intake pipeline: validate, check the sender cooldown, then
// persist with status "new". The cooldown is consumed the moment the limiter
// allows, so a submission that later fails at the store still spends its
// window — a resubmission inside the window is refused.
func (s *contactServiceImpl) Submit(ctx context.Context, in ContactInput) SubmitResult {
	errs := fieldErrors{}
	requireText(errs, "name", in.Name, "Name is required")
	requireEmail(errs, "email", in.Email)
	requireText(errs, "contact", in.Contact, "Contact number is required")
	requireText(errs, "message", in.Message, "Message is required")
	if len(errs) > 0 {
		return invalidResult(errs)
	}

	if res := s.limiter.Check(ctx, in.Email); !res.Allowed {
		return rateLimitedResult(res.RetryAfter)
	}

	if s.repo == nil {
		slog.Warn("contact submission simulated, no database configured", "email", in.Email)
		return simulatedResult()
	}

	sub := &model.ContactSubmission{
		Name:      strings.TrimSpace(in.Name),
		Email:     strings.TrimSpace(in.Email),
		Contact:   strings.TrimSpace(in.Contact),
		Message:   in.Message,
		Status:    model.ContactStatusNew,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.repo.Save(ctx, sub); err != nil {
		slog.Error("contact submission save failed", "error", err)
		return storeUnavailableResult()
	}

	slog.Info("contact submission stored", "id", sub.ID)
	return SubmitResult{Success: true, Message: msgContactReceived, Kind: ResultOK}
}

// List returns all contact submissions for the admin table.
func (s *contactServiceImpl) List(ctx context.Context) ([]*model.ContactSubmission, error) {
	return s.repo.ListAll(ctx)
}

// UpdateStatus changes the status of a submission after validating the value.
func (s *contactServiceImpl) UpdateStatus(ctx context.Context, id, status string) error {
	if !model.ValidContactStatus(status) {
		return ErrInvalidStatus
	}
	return s.repo.UpdateStatus(ctx, id, status)
}

// Reply records an admin reply and moves the submission to "replied".
func (s *contactServiceImpl) Reply(ctx context.Context, id, reply, repliedBy string) error {
	if strings.TrimSpace(reply) == "" {
		return ErrEmptyReply
	}
	return s.repo.Reply(ctx, id, reply, repliedBy)
}

// Delete removes a submission.
func (s *contactServiceImpl) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
