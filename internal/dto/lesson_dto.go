package dto

import (
	"time"

	"github.com/noah-isme/edumanage-api/internal/models"
)

// Navigation directions accepted by the advance endpoint.
const (
	DirectionNext = "next"
	DirectionPrev = "prev"
)

// AdvanceRequest moves the lesson cursor one step.
type AdvanceRequest struct {
	Direction string `json:"direction" validate:"required,oneof=next prev"`
}

// SubmitAssignmentRequest carries the student's submission text.
type SubmitAssignmentRequest struct {
	SubmissionText string `json:"submission_text" validate:"required"`
}

// ResourceView describes a lesson attachment.
type ResourceView struct {
	Name string `json:"name"`
	Type string `json:"type"`
}

// AssignmentView exposes an assignment with its derived status.
type AssignmentView struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	DueDate     string     `json:"due_date"`
	Points      int        `json:"points"`
	Submitted   bool       `json:"submitted"`
	Grade       *int       `json:"grade"`
	SubmittedAt *time.Time `json:"submitted_at"`
	Status      string     `json:"status"`
	StatusLabel string     `json:"status_label"`
	// Submission is the text exactly as the student sent it.
	Submission     string `json:"submission_text"`
	SubmissionHTML string `json:"submission_html"`
}

// LessonView is the lesson page view-model with navigation state.
type LessonView struct {
	CourseID     string          `json:"course_id"`
	CourseTitle  string          `json:"course_title"`
	LessonID     string          `json:"lesson_id"`
	Position     int             `json:"position"`
	Total        int             `json:"total"`
	Title        string          `json:"title"`
	Description  string          `json:"description"`
	Type         string          `json:"type"`
	Duration     int             `json:"duration_minutes"`
	Completed    bool            `json:"completed"`
	Resources    []ResourceView  `json:"resources"`
	Assignment   *AssignmentView `json:"assignment"`
	PrevDisabled bool            `json:"prev_disabled"`
	NextDisabled bool            `json:"next_disabled"`
}

// NewAssignmentView derives the display state of an assignment at the reference time.
func NewAssignmentView(model models.Assignment, now time.Time) AssignmentView {
	return AssignmentView{
		ID:          model.ID,
		Title:       model.Title,
		Description: model.Description,
		DueDate:     model.DueDate.Format(models.DateLayout),
		Points:      model.Points,
		Submitted:   model.Submitted,
		Grade:       model.Grade,
		SubmittedAt: model.SubmittedAt,
		Status:      string(model.Status(now)),
		StatusLabel: model.StatusLabel(now),

		Submission:     model.SubmissionText,
		SubmissionHTML: safeHTML(model.SubmissionText),
	}
}

// NewLessonView builds the lesson page for the lesson at index within course.
func NewLessonView(course models.Course, index int, now time.Time) LessonView {
	lesson := course.Lessons[index]

	resources := make([]ResourceView, 0, len(lesson.Resources))
	for _, resource := range lesson.Resources {
		resources = append(resources, ResourceView{Name: resource.Name, Type: resource.Type})
	}

	var assignment *AssignmentView
	if lesson.Assignment != nil {
		view := NewAssignmentView(*lesson.Assignment, now)
		assignment = &view
	}

	return LessonView{
		CourseID:     course.ID,
		CourseTitle:  course.Title,
		LessonID:     lesson.ID,
		Position:     index + 1,
		Total:        len(course.Lessons),
		Title:        lesson.Title,
		Description:  lesson.Description,
		Type:         lesson.Type,
		Duration:     lesson.Duration,
		Completed:    lesson.Completed,
		Resources:    resources,
		Assignment:   assignment,
		PrevDisabled: index == 0,
		NextDisabled: index == len(course.Lessons)-1,
	}
}
