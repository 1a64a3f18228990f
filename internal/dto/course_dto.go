package dto

import (
	"time"

	"github.com/noah-isme/edumanage-api/internal/models"
)

// CategoryAll disables the category filter.
const CategoryAll = "all"

// Enrollment actions surfaced on the course detail view.
const (
	EnrollmentActionEnroll   = "enroll"
	EnrollmentActionContinue = "continue"
)

// CourseFilter narrows the catalog. Both filters are optional and combine with AND.
type CourseFilter struct {
	Category string `query:"category" json:"category"`
	Query    string `query:"q" json:"q"`
}

// CourseCreateRequest describes the payload an educator submits to create a course.
type CourseCreateRequest struct {
	Title       string `json:"title" validate:"required"`
	Category    string `json:"category" validate:"required"`
	Description string `json:"description" validate:"required"`
	Duration    int    `json:"duration" validate:"gte=0"`
}

// CourseSummary is the catalog card for a course.
type CourseSummary struct {
	ID             string  `json:"id"`
	Title          string  `json:"title"`
	Category       string  `json:"category"`
	Description    string  `json:"description"`
	InstructorName string  `json:"instructor_name"`
	Duration       int     `json:"duration_hours"`
	Students       int     `json:"students"`
	Rating         float64 `json:"rating"`
	LessonCount    int     `json:"lesson_count"`
}

// CurriculumItem is one row of the course curriculum.
type CurriculumItem struct {
	Position      int    `json:"position"`
	LessonID      string `json:"lesson_id"`
	Title         string `json:"title"`
	Type          string `json:"type"`
	Duration      int    `json:"duration_minutes"`
	Completed     bool   `json:"completed"`
	HasAssignment bool   `json:"has_assignment"`
}

// CourseDetail is the course page view-model including the enrollment action.
type CourseDetail struct {
	CourseSummary
	InstructorID     string           `json:"instructor_id"`
	Enrolled         bool             `json:"enrolled"`
	EnrollmentAction string           `json:"enrollment_action"`
	Curriculum       []CurriculumItem `json:"curriculum"`
	CreatedAt        time.Time        `json:"created_at"`
	DescriptionHTML  string           `json:"description_html"`
}

// StartCourseResponse points at the first lesson of a course.
type StartCourseResponse struct {
	CourseID string `json:"course_id"`
	LessonID string `json:"lesson_id"`
}

// NewCourseSummary converts a model into a catalog card.
func NewCourseSummary(model models.Course) CourseSummary {
	return CourseSummary{
		ID:             model.ID,
		Title:          model.Title,
		Category:       model.Category,
		Description:    model.Description,
		InstructorName: model.InstructorName,
		Duration:       model.Duration,
		Students:       model.Students,
		Rating:         model.Rating,
		LessonCount:    len(model.Lessons),
	}
}

// NewCourseSummarySlice converts a slice of models into catalog cards.
func NewCourseSummarySlice(courses []models.Course) []CourseSummary {
	responses := make([]CourseSummary, 0, len(courses))
	for _, course := range courses {
		responses = append(responses, NewCourseSummary(course))
	}
	return responses
}

// NewCourseDetail builds the detail view for the given viewer. An empty viewerID means anonymous.
func NewCourseDetail(model models.Course, viewerID string) CourseDetail {
	enrolled := viewerID != "" && model.IsEnrolled(viewerID)
	action := EnrollmentActionEnroll
	if enrolled {
		action = EnrollmentActionContinue
	}

	curriculum := make([]CurriculumItem, 0, len(model.Lessons))
	for i, lesson := range model.Lessons {
		curriculum = append(curriculum, CurriculumItem{
			Position:      i + 1,
			LessonID:      lesson.ID,
			Title:         lesson.Title,
			Type:          lesson.Type,
			Duration:      lesson.Duration,
			Completed:     lesson.Completed,
			HasAssignment: lesson.HasAssignment(),
		})
	}

	return CourseDetail{
		CourseSummary:    NewCourseSummary(model),
		InstructorID:     model.InstructorID,
		Enrolled:         enrolled,
		EnrollmentAction: action,
		Curriculum:       curriculum,
		CreatedAt:        model.CreatedAt,
		DescriptionHTML:  safeHTML(model.Description),
	}
}
