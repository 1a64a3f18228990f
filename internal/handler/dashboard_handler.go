package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/noah-isme/edumanage-api/internal/middleware"
	"github.com/noah-isme/edumanage-api/internal/service"
	"github.com/noah-isme/edumanage-api/internal/utils"
)

// DashboardHandler exposes the role-specific dashboards.
type DashboardHandler struct {
	service service.DashboardService
	logger  zerolog.Logger
}

// NewDashboardHandler constructs the handler.
func NewDashboardHandler(service service.DashboardService, logger zerolog.Logger) *DashboardHandler {
	return &DashboardHandler{
		service: service,
		logger:  logger.With().Str("component", "dashboard_handler").Logger(),
	}
}

// Register attaches dashboard endpoints to the router group.
func (h *DashboardHandler) Register(router fiber.Router) {
	router.Get("", h.dashboard)
	router.Get("/student", h.student)
	router.Get("/educator", h.educator)
}

func (h *DashboardHandler) dashboard(c *fiber.Ctx) error {
	response, err := h.service.Dashboard(c.UserContext(), middleware.SessionFromContext(c))
	if err != nil {
		return respondError(c, h.logger, err)
	}
	return utils.SendSuccess(c, "dashboard retrieved", response)
}

func (h *DashboardHandler) student(c *fiber.Ctx) error {
	response, err := h.service.StudentDashboard(c.UserContext(), middleware.SessionFromContext(c))
	if err != nil {
		return respondError(c, h.logger, err)
	}
	return utils.SendSuccess(c, "dashboard retrieved", response)
}

func (h *DashboardHandler) educator(c *fiber.Ctx) error {
	response, err := h.service.EducatorDashboard(c.UserContext(), middleware.SessionFromContext(c))
	if err != nil {
		return respondError(c, h.logger, err)
	}
	return utils.SendSuccess(c, "dashboard retrieved", response)
}
