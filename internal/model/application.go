package model

import "time"

// Career application statuses.
const (
	ApplicationStatusNew         = "new"
	ApplicationStatusReviewed    = "reviewed"
	ApplicationStatusShortlisted = "shortlisted"
	ApplicationStatusRejected    = "rejected"
)

// CareerApplication represents a job application submitted via the careers form.
// JobID is a weak reference: deleting the posting nulls it, never the row.
type CareerApplication struct {
	ID         string     `json:"id"`
	FirstName  string     `json:"first_name"`
	LastName   string     `json:"last_name"`
	Email      string     `json:"email"`
	Phone      string     `json:"phone"`
	Message    string     `json:"message"`
	ResumePath string     `json:"resume_path"`
	JobID      *string    `json:"job_id,omitempty"`
	Status     string     `json:"status"` // "new" | "reviewed" | "shortlisted" | "rejected"
	Notes      *string    `json:"notes,omitempty"`
	ReviewedBy *string    `json:"reviewed_by,omitempty"`
	ReviewedAt *time.Time `json:"reviewed_at,omitempty"`
	CreatedAt  time.Time  `json:"created_at"`
}

// FullName returns the applicant's display name. No single column stores it,
// so list sorting by "name" goes through this.
func (a *CareerApplication) FullName() string {
	return a.FirstName + " " + a.LastName
}

// ValidApplicationStatus reports whether s is a legal application status.
func ValidApplicationStatus(s string) bool {
	switch s {
	case ApplicationStatusNew, ApplicationStatusReviewed, ApplicationStatusShortlisted, ApplicationStatusRejected:
		return true
	}
	return false
}
