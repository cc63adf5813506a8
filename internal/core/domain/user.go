package domain

import "time"

// User models an authenticated actor in the system. ClientID is set iff the
// role is client-side; agency users are unscoped.
type User struct {
	ID                     string    `json:"id"`
	Name                   string    `json:"name"`
	Email                  string    `json:"email"`
	PasswordHash           string    `json:"-"`
	Role                   Role      `json:"role"`
	ClientID               string    `json:"client_id,omitempty"`
	HasCompletedOnboarding bool      `json:"has_completed_onboarding"`
	CreatedAt              time.Time `json:"created_at"`
	UpdatedAt              time.Time `json:"updated_at"`
}

// Convenience predicates bound to the user's role. Thin wrappers over
// HasPermission / IsAgencyRole kept for call-site readability; no independent
// logic.

func (u *User) CanApproveContent() bool { return HasPermission(u.Role, PermApproveContent) }
func (u *User) CanRejectContent() bool  { return HasPermission(u.Role, PermRejectContent) }
func (u *User) CanManageUsers() bool    { return HasPermission(u.Role, PermManageUsers) }
func (u *User) CanViewAllClients() bool { return HasPermission(u.Role, PermViewAllClients) }
func (u *User) IsAgencyUser() bool      { return IsAgencyRole(u.Role) }
