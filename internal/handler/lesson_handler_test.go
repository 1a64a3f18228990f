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

func registerLessons(session service.Session, progress *stubProgressService) *fiber.App {
	app, api := newApp(session)
	handler.NewLessonHandler(progress, zerolog.Nop()).Register(api.Group("/courses/:courseId/lessons"))
	return app
}

func TestLessonHandlerViewResolvesCursor(t *testing.T) {
	progress := &stubProgressService{view: dto.LessonView{LessonID: "lesson_2", PrevDisabled: false, NextDisabled: false}}
	app := registerLessons(studentSession(), progress)

	resp := doRequest(t, app, http.MethodGet, "/api/v1/courses/course_1/lessons/lesson_2", "")
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	resp.Body.Close()
	require.Equal(t, service.LessonCursor{CourseID: "course_1", LessonID: "lesson_2"}, progress.cursor)

	progress.err = service.ErrLessonNotFound
	resp = doRequest(t, app, http.MethodGet, "/api/v1/courses/course_1/lessons/missing", "")
	require.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	resp.Body.Close()
}

func TestLessonHandlerRequiresSession(t *testing.T) {
	progress := &stubProgressService{}
	app := registerLessons(service.Session{}, progress)

	resp := doRequest(t, app, http.MethodGet, "/api/v1/courses/course_1/lessons/lesson_1", "")
	require.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	resp.Body.Close()
	require.Empty(t, progress.cursor.LessonID)
}

func TestLessonHandlerAdvance(t *testing.T) {
	progress := &stubProgressService{view: dto.LessonView{LessonID: "lesson_2"}}
	app := registerLessons(studentSession(), progress)

	resp := doRequest(t, app, http.MethodPost, "/api/v1/courses/course_1/lessons/lesson_1/advance", `{"direction":"next"}`)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	resp.Body.Close()
	require.Equal(t, service.DirectionNext, progress.direction)

	progress.err = service.ErrInvalidDirection
	resp = doRequest(t, app, http.MethodPost, "/api/v1/courses/course_1/lessons/lesson_1/advance", `{"direction":"up"}`)
	require.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	resp.Body.Close()
}

func TestLessonHandlerComplete(t *testing.T) {
	progress := &stubProgressService{}
	app := registerLessons(studentSession(), progress)

	resp := doRequest(t, app, http.MethodPost, "/api/v1/courses/course_1/lessons/lesson_3/complete", "")
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	resp.Body.Close()
	require.Equal(t, "lesson_3", progress.cursor.LessonID)
}

func TestLessonHandlerSubmitAssignment(t *testing.T) {
	progress := &stubProgressService{assignment: models.Assignment{ID: "assign_3", Submitted: true, SubmissionText: "a<b && c>d", Points: 10}}
	app := registerLessons(studentSession(), progress)

	resp := doRequest(t, app, http.MethodPost, "/api/v1/courses/course_1/lessons/lesson_2/assignment", `{"submission_text":"done"}`)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var payload struct {
		Message string             `json:"message"`
		Data    dto.AssignmentView `json:"data"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&payload))
	resp.Body.Close()

	require.Equal(t, "assignment submitted successfully", payload.Message)
	require.True(t, payload.Data.Submitted)
	require.Equal(t, "assign_3", payload.Data.ID)
	require.Equal(t, "a<b && c>d", payload.Data.Submission)
	require.Equal(t, string(models.AssignmentSubmitted), payload.Data.Status)
	require.Equal(t, "done", progress.submitted.SubmissionText)

	cases := map[error]int{
		service.ErrNoAssignment: fiber.StatusUnprocessableEntity,
		service.ErrWrongRole:    fiber.StatusForbidden,
	}
	for err, status := range cases {
		progress.err = err
		resp = doRequest(t, app, http.MethodPost, "/api/v1/courses/course_1/lessons/lesson_1/assignment", `{"submission_text":"x"}`)
		require.Equal(t, status, resp.StatusCode, err.Error())
		resp.Body.Close()
	}
}
