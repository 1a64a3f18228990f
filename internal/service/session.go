package service

import "github.com/noah-isme/edumanage-api/internal/models"

// Session is the identity context passed explicitly into every operation
// that depends on who is signed in. The zero value is an anonymous session.
type Session struct {
	User *models.User
}

// NewSession wraps a user into a session. A nil user yields an anonymous session.
func NewSession(user *models.User) Session {
	return Session{User: user}
}

// Authenticated reports whether a user is signed in.
func (s Session) Authenticated() bool {
	return s.User != nil
}

// UserID returns the signed-in user identifier or an empty string.
func (s Session) UserID() string {
	if s.User == nil {
		return ""
	}
	return s.User.ID
}

// requireRole validates the session before any state is touched.
func (s Session) requireRole(role models.Role) error {
	if !s.Authenticated() {
		return ErrNotAuthenticated
	}
	if s.User.Role != role {
		return ErrWrongRole
	}
	return nil
}

// IsStudent reports whether the signed-in user is a student.
func (s Session) IsStudent() bool {
	return s.User != nil && s.User.IsStudent()
}

// IsEducator reports whether the signed-in user is an educator.
func (s Session) IsEducator() bool {
	return s.User != nil && s.User.IsEducator()
}
