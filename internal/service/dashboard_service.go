package service

import (
	"context"
	"math"
	"time"

	"github.com/rs/zerolog"

	"github.com/noah-isme/edumanage-api/internal/dto"
	"github.com/noah-isme/edumanage-api/internal/models"
	"github.com/noah-isme/edumanage-api/internal/repository"
)

// dashboardPreviewLimit bounds the pending assignment and enrollment previews.
const dashboardPreviewLimit = 5

// DashboardService produces the role-specific dashboard aggregates.
type DashboardService interface {
	Dashboard(ctx context.Context, session Session) (dto.DashboardResponse, error)
	StudentDashboard(ctx context.Context, session Session) (dto.StudentDashboard, error)
	EducatorDashboard(ctx context.Context, session Session) (dto.EducatorDashboard, error)
}

type dashboardService struct {
	courses repository.CourseRepository
	logger  zerolog.Logger
	now     func() time.Time
}

// NewDashboardService builds the dashboard aggregator.
func NewDashboardService(courses repository.CourseRepository, logger zerolog.Logger) DashboardService {
	return &dashboardService{
		courses: courses,
		logger:  logger.With().Str("component", "dashboard_service").Logger(),
		now:     time.Now,
	}
}

func (s *dashboardService) Dashboard(ctx context.Context, session Session) (dto.DashboardResponse, error) {
	if !session.Authenticated() {
		return dto.DashboardResponse{}, ErrNotAuthenticated
	}

	response := dto.DashboardResponse{Role: string(session.User.Role)}
	switch session.User.Role {
	case models.RoleStudent:
		view, err := s.StudentDashboard(ctx, session)
		if err != nil {
			return dto.DashboardResponse{}, err
		}
		response.Student = &view
	case models.RoleEducator:
		view, err := s.EducatorDashboard(ctx, session)
		if err != nil {
			return dto.DashboardResponse{}, err
		}
		response.Educator = &view
	default:
		return dto.DashboardResponse{}, ErrWrongRole
	}
	return response, nil
}

func (s *dashboardService) StudentDashboard(ctx context.Context, session Session) (dto.StudentDashboard, error) {
	if err := session.requireRole(models.RoleStudent); err != nil {
		return dto.StudentDashboard{}, err
	}

	courses, err := s.courses.Load(ctx)
	if err != nil {
		return dto.StudentDashboard{}, err
	}

	view := BuildStudentDashboard(courses.All(), session.UserID(), s.now())
	s.logger.Debug().Str("user_id", session.UserID()).Int("enrolled", view.Summary.EnrolledCourses).Msg("student dashboard computed")
	return view, nil
}

func (s *dashboardService) EducatorDashboard(ctx context.Context, session Session) (dto.EducatorDashboard, error) {
	if err := session.requireRole(models.RoleEducator); err != nil {
		return dto.EducatorDashboard{}, err
	}

	courses, err := s.courses.Load(ctx)
	if err != nil {
		return dto.EducatorDashboard{}, err
	}

	view := BuildEducatorDashboard(courses.All(), session.UserID())
	s.logger.Debug().Str("user_id", session.UserID()).Int("courses", view.Summary.TotalCourses).Msg("educator dashboard computed")
	return view, nil
}

// BuildStudentDashboard folds over the courses studentID is enrolled in.
func BuildStudentDashboard(courses []models.Course, studentID string, now time.Time) dto.StudentDashboard {
	view := dto.StudentDashboard{
		Courses:            []dto.CourseProgress{},
		PendingAssignments: []dto.PendingAssignment{},
	}

	var (
		gradeTotal float64
		graded     int
	)

	for _, course := range courses {
		if !course.IsEnrolled(studentID) {
			continue
		}
		view.Summary.EnrolledCourses++

		completed := course.CompletedLessons()
		view.Summary.CompletedLessons += completed
		view.Summary.TotalLessons += len(course.Lessons)
		view.Courses = append(view.Courses, dto.CourseProgress{
			CourseID:         course.ID,
			Title:            course.Title,
			InstructorName:   course.InstructorName,
			CompletedLessons: completed,
			TotalLessons:     len(course.Lessons),
			Progress:         course.Progress(),
		})

		for _, lesson := range course.Lessons {
			assignment := lesson.Assignment
			if assignment == nil {
				continue
			}
			if !assignment.Submitted {
				view.Summary.PendingAssignments++
				if len(view.PendingAssignments) < dashboardPreviewLimit {
					view.PendingAssignments = append(view.PendingAssignments, dto.PendingAssignment{
						AssignmentID: assignment.ID,
						Title:        assignment.Title,
						CourseID:     course.ID,
						CourseTitle:  course.Title,
						LessonID:     lesson.ID,
						LessonTitle:  lesson.Title,
						DueDate:      assignment.DueDate.Format(models.DateLayout),
						Points:       assignment.Points,
						Status:       string(assignment.Status(now)),
						StatusLabel:  assignment.StatusLabel(now),
					})
				}
				continue
			}
			if assignment.IsGraded() && assignment.Points > 0 {
				gradeTotal += assignment.Score()
				graded++
			}
		}
	}

	if graded > 0 {
		view.Summary.AverageGrade = int(math.Round(gradeTotal / float64(graded)))
	}
	view.Summary.OverallProgress = models.Percent(view.Summary.CompletedLessons, view.Summary.TotalLessons)

	return view
}

// BuildEducatorDashboard folds over the courses owned by educatorID.
func BuildEducatorDashboard(courses []models.Course, educatorID string) dto.EducatorDashboard {
	view := dto.EducatorDashboard{
		Courses:           []dto.EducatorCourse{},
		RecentEnrollments: []dto.EnrollmentActivity{},
	}

	for _, course := range courses {
		if course.InstructorID != educatorID {
			continue
		}
		assignments := course.AssignmentCount()

		view.Summary.TotalCourses++
		view.Summary.TotalStudents += course.Students
		view.Summary.TotalAssignments += assignments
		view.Courses = append(view.Courses, dto.EducatorCourse{
			CourseID:        course.ID,
			Title:           course.Title,
			Category:        course.Category,
			Students:        course.Students,
			LessonCount:     len(course.Lessons),
			AssignmentCount: assignments,
			Rating:          course.Rating,
		})

		if len(course.Enrolled) > 0 && len(view.RecentEnrollments) < dashboardPreviewLimit {
			view.RecentEnrollments = append(view.RecentEnrollments, dto.EnrollmentActivity{
				CourseID:    course.ID,
				CourseTitle: course.Title,
				Count:       len(course.Enrolled),
			})
		}
	}

	return view
}
