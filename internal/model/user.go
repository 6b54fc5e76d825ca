package model

import "time"

// User roles and account statuses.
const (
	RoleAdmin      = "admin"
	RoleTeamMember = "team_member"

	UserStatusActive   = "active"
	UserStatusInactive = "inactive"
)

// User is a team/admin account. The password hash lives in a separate
// accounts row owned by the credential store, never on this struct.
type User struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	Email         string    `json:"email"`
	EmailVerified bool      `json:"email_verified"`
	Role          string    `json:"role"`   // "admin" | "team_member"
	Status        string    `json:"status"` // "active" | "inactive"
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// IsActive returns true if the account may sign in and use the admin area.
func (u *User) IsActive() bool {
	return u.Status == UserStatusActive
}

// IsAdmin returns true if the account may manage other team accounts.
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// ValidRole reports whether s is a legal account role.
func ValidRole(s string) bool {
	return s == RoleAdmin || s == RoleTeamMember
}

// ValidUserStatus reports whether s is a legal account status.
func ValidUserStatus(s string) bool {
	return s == UserStatusActive || s == UserStatusInactive
}
