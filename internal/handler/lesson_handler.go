package handler

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/noah-isme/edumanage-api/internal/dto"
	"github.com/noah-isme/edumanage-api/internal/middleware"
	"github.com/noah-isme/edumanage-api/internal/service"
	"github.com/noah-isme/edumanage-api/internal/utils"
)

// LessonHandler wires lesson traversal and assignment submission routes.
type LessonHandler struct {
	service service.ProgressService
	logger  zerolog.Logger
}

// NewLessonHandler constructs the handler.
func NewLessonHandler(service service.ProgressService, logger zerolog.Logger) *LessonHandler {
	return &LessonHandler{
		service: service,
		logger:  logger.With().Str("component", "lesson_handler").Logger(),
	}
}

// Register attaches lesson endpoints. The group must carry the :courseId parameter.
func (h *LessonHandler) Register(router fiber.Router) {
	requireSession := middleware.RequireSession()
	router.Get("/:lessonId", requireSession, h.view)
	router.Post("/:lessonId/advance", requireSession, h.advance)
	router.Post("/:lessonId/complete", requireSession, h.complete)
	router.Post("/:lessonId/assignment", requireSession, h.submit)
}

func (h *LessonHandler) view(c *fiber.Ctx) error {
	view, err := h.service.ViewLesson(c.UserContext(), middleware.SessionFromContext(c), lessonCursor(c))
	if err != nil {
		return respondError(c, h.logger, err)
	}
	return utils.SendSuccess(c, "lesson retrieved", view)
}

func (h *LessonHandler) advance(c *fiber.Ctx) error {
	var payload dto.AdvanceRequest
	if err := c.BodyParser(&payload); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid payload")
	}

	view, err := h.service.AdvanceLesson(c.UserContext(), middleware.SessionFromContext(c), lessonCursor(c), service.Direction(payload.Direction))
	if err != nil {
		return respondError(c, h.logger, err)
	}
	return utils.SendSuccess(c, "lesson retrieved", view)
}

func (h *LessonHandler) complete(c *fiber.Ctx) error {
	cursor := lessonCursor(c)
	if err := h.service.MarkComplete(c.UserContext(), cursor); err != nil {
		return respondError(c, h.logger, err)
	}
	return utils.SendSuccess(c, "lesson completed", fiber.Map{"course_id": cursor.CourseID, "lesson_id": cursor.LessonID})
}

func (h *LessonHandler) submit(c *fiber.Ctx) error {
	var payload dto.SubmitAssignmentRequest
	if err := c.BodyParser(&payload); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid payload")
	}

	assignment, err := h.service.SubmitAssignment(c.UserContext(), middleware.SessionFromContext(c), lessonCursor(c), payload)
	if err != nil {
		return respondError(c, h.logger, err)
	}
	return utils.SendSuccess(c, "assignment submitted successfully", dto.NewAssignmentView(assignment, time.Now()))
}
