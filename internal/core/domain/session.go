package domain

// SessionUser is the identity copied into a session at login time.
// It is a snapshot, not a reference: changes to the underlying User
// after login are invisible until the user logs in again.
type SessionUser struct {
	ID       int
	Username string
	Email    string
	Role     string
}

// NewSessionUser snapshots the fields of u that a session carries.
func NewSessionUser(u *User) *SessionUser {
	return &SessionUser{
		ID:       u.ID,
		Username: u.Username,
		Email:    u.Email,
		Role:     u.Role,
	}
}

// IsAdmin reports whether the session principal carries the admin role.
func (s *SessionUser) IsAdmin() bool {
	return s.Role == RoleAdmin
}
