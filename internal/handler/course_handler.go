package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/noah-isme/edumanage-api/internal/dto"
	"github.com/noah-isme/edumanage-api/internal/middleware"
	"github.com/noah-isme/edumanage-api/internal/models"
	"github.com/noah-isme/edumanage-api/internal/service"
	"github.com/noah-isme/edumanage-api/internal/utils"
)

// CourseHandler wires catalog, course creation and enrollment routes.
type CourseHandler struct {
	catalog    service.CatalogService
	enrollment service.EnrollmentService
	logger     zerolog.Logger
}

// NewCourseHandler constructs the handler.
func NewCourseHandler(catalog service.CatalogService, enrollment service.EnrollmentService, logger zerolog.Logger) *CourseHandler {
	return &CourseHandler{
		catalog:    catalog,
		enrollment: enrollment,
		logger:     logger.With().Str("component", "course_handler").Logger(),
	}
}

// Register attaches course endpoints to the router group.
func (h *CourseHandler) Register(router fiber.Router) {
	router.Get("", h.list)
	router.Post("", middleware.RequireRole(models.RoleEducator), h.create)
	router.Get("/:courseId", h.get)
	router.Post("/:courseId/enroll", middleware.RequireSession(), h.enroll)
	router.Post("/:courseId/start", middleware.RequireSession(), h.start)
}

func (h *CourseHandler) list(c *fiber.Ctx) error {
	var filter dto.CourseFilter
	if err := c.QueryParser(&filter); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid query")
	}

	courses, err := h.catalog.ListCourses(c.UserContext(), filter)
	if err != nil {
		return respondError(c, h.logger, err)
	}

	return utils.SendSuccess(c, "courses retrieved", courses)
}

func (h *CourseHandler) get(c *fiber.Ctx) error {
	detail, err := h.catalog.GetCourse(c.UserContext(), middleware.SessionFromContext(c), c.Params("courseId"))
	if err != nil {
		return respondError(c, h.logger, err)
	}

	return utils.SendSuccess(c, "course retrieved", detail)
}

func (h *CourseHandler) create(c *fiber.Ctx) error {
	var payload dto.CourseCreateRequest
	if err := c.BodyParser(&payload); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid payload")
	}

	session := middleware.SessionFromContext(c)
	course, err := h.catalog.CreateCourse(c.UserContext(), session, payload)
	if err != nil {
		return respondError(c, h.logger, err)
	}

	return utils.SendSuccessWithStatus(c, fiber.StatusCreated, "course created", dto.NewCourseDetail(course, session.UserID()))
}

func (h *CourseHandler) enroll(c *fiber.Ctx) error {
	session := middleware.SessionFromContext(c)
	course, err := h.enrollment.Enroll(c.UserContext(), session, c.Params("courseId"))
	if err != nil {
		return respondError(c, h.logger, err)
	}

	return utils.SendSuccess(c, "enrolled", dto.NewCourseDetail(course, session.UserID()))
}

func (h *CourseHandler) start(c *fiber.Ctx) error {
	courseID := c.Params("courseId")
	lessonID, err := h.enrollment.StartCourse(c.UserContext(), courseID)
	if err != nil {
		return respondError(c, h.logger, err)
	}

	return utils.SendSuccess(c, "course started", dto.StartCourseResponse{CourseID: courseID, LessonID: lessonID})
}
