// Package auth contains domain-level types for authentication and sessions.
// It is pure and free of adapter/transport concerns.
package auth

import "strings"

// Role is the application role string exactly as the backend issues it. The
// set is open; the two values below are the ones the client routes on.
type Role string

const (
	RoleAdmin Role = "ROLE_ADMIN"
	RoleUser  Role = "ROLE_USER"
)

// Session is the persisted (token, role) pair identifying the current
// authenticated user. The token is an opaque bearer string; no expiry is
// tracked locally, so an expired-but-present token only surfaces when the
// backend rejects it.
type Session struct {
	Token string `json:"token"`
	Role  Role   `json:"role"`
}

// IsAdmin reports whether the session carries the admin role.
func (s Session) IsAdmin() bool { return s.Role == RoleAdmin }

// NormalizeRegistrationRole upper-cases a user-supplied role name ("admin",
// "user") into the form the registration endpoint expects inside its
// single-element role list.
func NormalizeRegistrationRole(role string) string {
	return strings.ToUpper(strings.TrimSpace(role))
}
