package models

import "time"

// Role identifies what a user may do inside the application.
type Role string

const (
	// RoleEducator authors courses.
	RoleEducator Role = "educator"
	// RoleStudent enrolls in courses and submits assignments.
	RoleStudent Role = "student"
)

// Valid reports whether the role is one of the known roles.
func (r Role) Valid() bool {
	return r == RoleEducator || r == RoleStudent
}

// User is an account stored in the users collection.
type User struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Password  string    `json:"password"`
	Role      Role      `json:"role"`
	CreatedAt time.Time `json:"createdAt"`
}

// IsStudent reports whether the user holds the student role.
func (u User) IsStudent() bool {
	return u.Role == RoleStudent
}

// IsEducator reports whether the user holds the educator role.
func (u User) IsEducator() bool {
	return u.Role == RoleEducator
}
