package model

import "time"

// Contact submission statuses.
const (
	ContactStatusNew      = "new"
	ContactStatusRead     = "read"
	ContactStatusReplied  = "replied"
	ContactStatusArchived = "archived"
)

// ContactSubmission represents a message submitted via the public contact form.
// Once written, only Status and the reply fields are ever mutated.
type ContactSubmission struct {
	ID         string     `json:"id"`
	Name       string     `json:"name"`
	Email      string     `json:"email"`
	Contact    string     `json:"contact"` // phone or other callback detail
	Message    string     `json:"message"`
	Status     string     `json:"status"` // "new" | "read" | "replied" | "archived"
	AdminReply *string    `json:"admin_reply,omitempty"`
	RepliedBy  *string    `json:"replied_by,omitempty"`
	RepliedAt  *time.Time `json:"replied_at,omitempty"`
	CreatedAt  time.Time  `json:"created_at"`
}

// ValidContactStatus reports whether s is a legal contact submission status.
func ValidContactStatus(s string) bool {
	switch s {
	case ContactStatusNew, ContactStatusRead, ContactStatusReplied, ContactStatusArchived:
		return true
	}
	return false
}
