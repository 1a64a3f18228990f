package handler_test

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/edumanage-api/internal/dto"
	"github.com/noah-isme/edumanage-api/internal/middleware"
	"github.com/noah-isme/edumanage-api/internal/models"
	"github.com/noah-isme/edumanage-api/internal/service"
)

type stubIdentityService struct {
	user      models.User
	session   service.Session
	err       error
	logouts   int
	lastLogin dto.LoginRequest
}

func (s *stubIdentityService) Register(_ context.Context, payload dto.RegisterRequest) (models.User, error) {
	if s.err != nil {
		return models.User{}, s.err
	}
	return models.User{ID: "new", Name: payload.Name, Email: payload.Email, Password: payload.Password, Role: models.Role(payload.Role)}, nil
}

func (s *stubIdentityService) Authenticate(_ context.Context, payload dto.LoginRequest) (models.User, error) {
	s.lastLogin = payload
	if s.err != nil {
		return models.User{}, s.err
	}
	return s.user, nil
}

func (s *stubIdentityService) Logout(context.Context) error {
	s.logouts++
	return s.err
}

func (s *stubIdentityService) CurrentSession(context.Context) (service.Session, error) {
	return s.session, nil
}

type stubCatalogService struct {
	courses  []dto.CourseSummary
	detail   dto.CourseDetail
	created  models.Course
	err      error
	filter   dto.CourseFilter
	lastSeen service.Session
}

func (s *stubCatalogService) ListCourses(_ context.Context, filter dto.CourseFilter) ([]dto.CourseSummary, error) {
	s.filter = filter
	return s.courses, s.err
}

func (s *stubCatalogService) GetCourse(_ context.Context, session service.Session, _ string) (dto.CourseDetail, error) {
	s.lastSeen = session
	return s.detail, s.err
}

func (s *stubCatalogService) CreateCourse(_ context.Context, session service.Session, payload dto.CourseCreateRequest) (models.Course, error) {
	s.lastSeen = session
	if s.err != nil {
		return models.Course{}, s.err
	}
	s.created.Title = payload.Title
	return s.created, nil
}

type stubEnrollmentService struct {
	course   models.Course
	lessonID string
	err      error
	calls    int
}

func (s *stubEnrollmentService) Enroll(_ context.Context, _ service.Session, courseID string) (models.Course, error) {
	s.calls++
	if s.err != nil {
		return models.Course{}, s.err
	}
	s.course.ID = courseID
	return s.course, nil
}

func (s *stubEnrollmentService) StartCourse(context.Context, string) (string, error) {
	return s.lessonID, s.err
}

type stubProgressService struct {
	view       dto.LessonView
	assignment models.Assignment
	err        error
	cursor     service.LessonCursor
	direction  service.Direction
	submitted  dto.SubmitAssignmentRequest
}

func (s *stubProgressService) ViewLesson(_ context.Context, _ service.Session, cursor service.LessonCursor) (dto.LessonView, error) {
	s.cursor = cursor
	return s.view, s.err
}

func (s *stubProgressService) AdvanceLesson(_ context.Context, _ service.Session, cursor service.LessonCursor, direction service.Direction) (dto.LessonView, error) {
	s.cursor = cursor
	s.direction = direction
	return s.view, s.err
}

func (s *stubProgressService) MarkComplete(_ context.Context, cursor service.LessonCursor) error {
	s.cursor = cursor
	return s.err
}

func (s *stubProgressService) SubmitAssignment(_ context.Context, _ service.Session, cursor service.LessonCursor, payload dto.SubmitAssignmentRequest) (models.Assignment, error) {
	s.cursor = cursor
	s.submitted = payload
	return s.assignment, s.err
}

type stubDashboardService struct {
	response dto.DashboardResponse
	student  dto.StudentDashboard
	educator dto.EducatorDashboard
	err      error
}

func (s *stubDashboardService) Dashboard(context.Context, service.Session) (dto.DashboardResponse, error) {
	return s.response, s.err
}

func (s *stubDashboardService) StudentDashboard(context.Context, service.Session) (dto.StudentDashboard, error) {
	return s.student, s.err
}

func (s *stubDashboardService) EducatorDashboard(context.Context, service.Session) (dto.EducatorDashboard, error) {
	return s.educator, s.err
}

type staticResolver struct {
	session service.Session
}

func (r staticResolver) CurrentSession(context.Context) (service.Session, error) {
	return r.session, nil
}

func studentSession() service.Session {
	return service.NewSession(&models.User{ID: "user_2", Name: "Sarah Johnson", Role: models.RoleStudent})
}

func educatorSession() service.Session {
	return service.NewSession(&models.User{ID: "user_1", Name: "John Smith", Role: models.RoleEducator})
}

func newApp(session service.Session) (*fiber.App, fiber.Router) {
	app := fiber.New()
	group := app.Group("/api/v1", middleware.SessionContext(staticResolver{session: session}, zerolog.Nop()))
	return app, group
}

func doRequest(t *testing.T, app *fiber.App, method, path, body string) *http.Response {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

var (
	_ service.IdentityService   = (*stubIdentityService)(nil)
	_ service.CatalogService    = (*stubCatalogService)(nil)
	_ service.EnrollmentService = (*stubEnrollmentService)(nil)
	_ service.ProgressService   = (*stubProgressService)(nil)
	_ service.DashboardService  = (*stubDashboardService)(nil)
)
