package service

import "errors"

// Domain failures returned by the engine. None of them leave partial writes behind.
var (
	// ErrNotAuthenticated indicates the operation needs a signed-in user.
	ErrNotAuthenticated = errors.New("authentication required")
	// ErrWrongRole indicates the signed-in user holds the wrong role.
	ErrWrongRole = errors.New("operation not permitted for this role")
	// ErrDuplicateEmail indicates the email is already registered.
	ErrDuplicateEmail = errors.New("email already registered")
	// ErrInvalidCredentials indicates no user matched email, secret and role.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrCourseNotFound indicates the course identifier is unknown.
	ErrCourseNotFound = errors.New("course not found")
	// ErrLessonNotFound indicates the lesson is not part of the course.
	ErrLessonNotFound = errors.New("lesson not found")
	// ErrNoAssignment indicates the lesson carries no assignment.
	ErrNoAssignment = errors.New("lesson has no assignment")
	// ErrNoLessons indicates the course curriculum is empty.
	ErrNoLessons = errors.New("course has no lessons")
)
