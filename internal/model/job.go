package model

import "time"

// Job posting statuses. Status is the only driver of public visibility.
const (
	JobStatusActive   = "active"
	JobStatusInactive = "inactive"
	JobStatusArchived = "archived"
)

// JobPosting represents an open position managed in the admin area.
type JobPosting struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Location    string     `json:"location"`
	Department  string     `json:"department"`
	Type        string     `json:"type"` // e.g. "full-time" | "part-time" | "contract"
	Status      string     `json:"status"`
	PublishDate *time.Time `json:"publish_date,omitempty"`
	ExpiryDate  *time.Time `json:"expiry_date,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// IsPublic returns true if the posting is listed on the public careers page.
func (j *JobPosting) IsPublic() bool {
	return j.Status == JobStatusActive
}

// ValidJobStatus reports whether s is a legal job posting status.
func ValidJobStatus(s string) bool {
	switch s {
	case JobStatusActive, JobStatusInactive, JobStatusArchived:
		return true
	}
	return false
}
