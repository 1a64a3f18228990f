package models

import (
	"encoding/json"
	"fmt"
	"math"
	"strings"
	"time"
)

// DateLayout is the calendar-date layout used for assignment due dates.
const DateLayout = "2006-01-02"

// Date is a calendar date serialized as YYYY-MM-DD. It resolves to midnight UTC.
type Date struct {
	time.Time
}

// NewDate truncates t to its UTC calendar date.
func NewDate(year int, month time.Month, day int) Date {
	return Date{Time: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// ParseDate accepts either a calendar date or an RFC3339 timestamp.
func ParseDate(value string) (Date, error) {
	value = strings.TrimSpace(value)
	if parsed, err := time.Parse(DateLayout, value); err == nil {
		return Date{Time: parsed}, nil
	}
	parsed, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return Date{}, fmt.Errorf("invalid date %q", value)
	}
	return Date{Time: parsed.UTC()}, nil
}

// MarshalJSON writes the date as YYYY-MM-DD.
func (d Date) MarshalJSON() ([]byte, error) {
	if d.IsZero() {
		return []byte("null"), nil
	}
	return json.Marshal(d.Format(DateLayout))
}

// UnmarshalJSON reads a calendar date or RFC3339 timestamp.
func (d *Date) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*d = Date{}
		return nil
	}
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	parsed, err := ParseDate(raw)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// Assignment is the optional task attached to a lesson.
type Assignment struct {
	ID             string     `json:"id"`
	Title          string     `json:"title"`
	Description    string     `json:"description"`
	DueDate        Date       `json:"dueDate"`
	Points         int        `json:"points"`
	Submitted      bool       `json:"submitted"`
	Grade          *int       `json:"grade,omitempty"`
	SubmissionText string     `json:"submissionText,omitempty"`
	SubmittedAt    *time.Time `json:"submittedAt,omitempty"`
}

// IsPastDue returns true when the deadline has already passed.
func (a Assignment) IsPastDue(reference time.Time) bool {
	if a.DueDate.IsZero() {
		return false
	}
	return reference.After(a.DueDate.Time)
}

// IsGraded reports whether a submitted assignment carries a grade.
func (a Assignment) IsGraded() bool {
	return a.Submitted && a.Grade != nil
}

// Score returns grade/points as a percentage. Callers must check IsGraded.
func (a Assignment) Score() float64 {
	if a.Grade == nil || a.Points <= 0 {
		return 0
	}
	return float64(*a.Grade) / float64(a.Points) * 100
}

// AssignmentStatus is the display state derived from an assignment.
type AssignmentStatus string

const (
	AssignmentNotSubmitted AssignmentStatus = "not_submitted"
	AssignmentOverdue      AssignmentStatus = "overdue"
	AssignmentSubmitted    AssignmentStatus = "submitted"
)

// Status derives the display state at the reference time. Submitted wins over overdue.
func (a Assignment) Status(reference time.Time) AssignmentStatus {
	switch {
	case a.Submitted:
		return AssignmentSubmitted
	case a.IsPastDue(reference):
		return AssignmentOverdue
	default:
		return AssignmentNotSubmitted
	}
}

// StatusLabel renders the human readable status line for the assignment.
func (a Assignment) StatusLabel(reference time.Time) string {
	switch a.Status(reference) {
	case AssignmentSubmitted:
		if a.Grade != nil {
			return fmt.Sprintf("Submitted • Grade: %d/%d", *a.Grade, a.Points)
		}
		return "Submitted"
	case AssignmentOverdue:
		return "Overdue"
	default:
		return "Due: " + a.DueDate.Format("Jan 2, 2006")
	}
}

// Percent returns round(part/total*100), or 0 when total is 0.
func Percent(part, total int) int {
	if total <= 0 {
		return 0
	}
	return int(math.Round(float64(part) / float64(total) * 100))
}
