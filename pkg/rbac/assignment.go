package rbac

import "time"

// RoleAssignment is the single current binding of a user to a role.
// A user has at most one active assignment; a new one overwrites the old
// with no history retained.
type RoleAssignment struct {
	User       string     `json:"user"`
	RoleName   string     `json:"role_name"`
	AssignedAt time.Time  `json:"assigned_at"`
	AssignedBy string     `json:"assigned_by"`
	ExpiresAt  *time.Time `json:"expires_at"`
	Reason     string     `json:"reason"`
}

// Expired reports whether the assignment has lapsed. Assignments without
// an expiry never expire.
func (a RoleAssignment) Expired(now time.Time) bool {
	return a.ExpiresAt != nil && now.After(*a.ExpiresAt)
}
