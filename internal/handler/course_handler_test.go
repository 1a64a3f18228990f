package handler_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/edumanage-api/internal/dto"
	"github.com/noah-isme/edumanage-api/internal/handler"
	"github.com/noah-isme/edumanage-api/internal/models"
	"github.com/noah-isme/edumanage-api/internal/service"
)

func registerCourses(session service.Session, catalog *stubCatalogService, enrollment *stubEnrollmentService) *fiber.App {
	app, api := newApp(session)
	handler.NewCourseHandler(catalog, enrollment, zerolog.Nop()).Register(api.Group("/courses"))
	return app
}

func TestCourseHandlerListPassesFilter(t *testing.T) {
	catalog := &stubCatalogService{courses: []dto.CourseSummary{{ID: "course_2", Title: "UI/UX Design Fundamentals"}}}
	app := registerCourses(service.Session{}, catalog, &stubEnrollmentService{})

	resp := doRequest(t, app, http.MethodGet, "/api/v1/courses?category=design&q=ui", "")
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var payload struct {
		Success bool                `json:"success"`
		Data    []dto.CourseSummary `json:"data"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&payload))
	resp.Body.Close()

	require.True(t, payload.Success)
	require.Len(t, payload.Data, 1)
	require.Equal(t, dto.CourseFilter{Category: "design", Query: "ui"}, catalog.filter)
}

func TestCourseHandlerDetailUsesSession(t *testing.T) {
	catalog := &stubCatalogService{detail: dto.CourseDetail{EnrollmentAction: dto.EnrollmentActionContinue}}
	app := registerCourses(studentSession(), catalog, &stubEnrollmentService{})

	resp := doRequest(t, app, http.MethodGet, "/api/v1/courses/course_1", "")
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	resp.Body.Close()
	require.Equal(t, "user_2", catalog.lastSeen.UserID())

	catalog.err = service.ErrCourseNotFound
	resp = doRequest(t, app, http.MethodGet, "/api/v1/courses/missing", "")
	require.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	resp.Body.Close()
}

func TestCourseHandlerCreateRequiresEducator(t *testing.T) {
	body := `{"title":"Go","category":"programming","description":"Learn Go","duration":10}`

	catalog := &stubCatalogService{created: models.Course{ID: "new", InstructorID: "user_1"}}
	app := registerCourses(studentSession(), catalog, &stubEnrollmentService{})
	resp := doRequest(t, app, http.MethodPost, "/api/v1/courses", body)
	require.Equal(t, fiber.StatusForbidden, resp.StatusCode)
	resp.Body.Close()

	app = registerCourses(service.Session{}, catalog, &stubEnrollmentService{})
	resp = doRequest(t, app, http.MethodPost, "/api/v1/courses", body)
	require.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	resp.Body.Close()

	app = registerCourses(educatorSession(), catalog, &stubEnrollmentService{})
	resp = doRequest(t, app, http.MethodPost, "/api/v1/courses", body)
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	resp.Body.Close()
	require.Equal(t, "user_1", catalog.lastSeen.UserID())
}

func TestCourseHandlerEnrollRequiresLogin(t *testing.T) {
	enrollment := &stubEnrollmentService{}
	app := registerCourses(service.Session{}, &stubCatalogService{}, enrollment)

	resp := doRequest(t, app, http.MethodPost, "/api/v1/courses/course_1/enroll", "")
	require.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)

	var payload struct {
		Success bool   `json:"success"`
		Hint    string `json:"hint"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&payload))
	resp.Body.Close()

	require.False(t, payload.Success)
	require.Equal(t, "login", payload.Hint)
	require.Zero(t, enrollment.calls)
}

func TestCourseHandlerEnrollAndStart(t *testing.T) {
	enrollment := &stubEnrollmentService{course: models.Course{Enrolled: []string{"user_2"}}, lessonID: "lesson_1"}
	app := registerCourses(studentSession(), &stubCatalogService{}, enrollment)

	resp := doRequest(t, app, http.MethodPost, "/api/v1/courses/course_1/enroll", "")
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	var enrolled struct {
		Data dto.CourseDetail `json:"data"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&enrolled))
	resp.Body.Close()
	require.True(t, enrolled.Data.Enrolled)
	require.Equal(t, dto.EnrollmentActionContinue, enrolled.Data.EnrollmentAction)

	resp = doRequest(t, app, http.MethodPost, "/api/v1/courses/course_1/start", "")
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	var started struct {
		Data dto.StartCourseResponse `json:"data"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&started))
	resp.Body.Close()
	require.Equal(t, "lesson_1", started.Data.LessonID)

	enrollment.err = service.ErrNoLessons
	resp = doRequest(t, app, http.MethodPost, "/api/v1/courses/empty/start", "")
	require.Equal(t, fiber.StatusUnprocessableEntity, resp.StatusCode)
	resp.Body.Close()
}
