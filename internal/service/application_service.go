package service

import (
	"context"
	"io"

	"github.com/codeward/backend/internal/model"
)

// MaxResumeSize is the upload cap for résumé files.
const MaxResumeSize = 5 << 20 // 5 MB

// ApplicationInput is the untrusted payload from the public careers form.
// Resume is nil when no file was attached.
type ApplicationInput struct {
	FirstName string
	LastName  string
	Email     string
	Phone     string
	Message   string
	JobID     string // optional posting reference

	Resume            io.Reader
	ResumeName        string
	ResumeSize        int64
	ResumeContentType string
}

// ApplicationService defines the business logic around career applications.
type ApplicationService interface {
	// Submit validates, rate-limits, uploads the résumé and persists one
	// application. It never returns an error; failures are encoded in the
	// result.
	Submit(ctx context.Context, in ApplicationInput) SubmitResult

	List(ctx context.Context) ([]*model.CareerApplication, error)
	UpdateStatus(ctx context.Context, id, status, notes, reviewedBy string) error
	Delete(ctx context.Context, id string) error
}
