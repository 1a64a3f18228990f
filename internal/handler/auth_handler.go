package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/noah-isme/edumanage-api/internal/dto"
	"github.com/noah-isme/edumanage-api/internal/service"
	"github.com/noah-isme/edumanage-api/internal/utils"
)

// AuthHandler exposes registration, login and session endpoints.
type AuthHandler struct {
	service      service.IdentityService
	loginLimiter fiber.Handler
	logger       zerolog.Logger
}

// NewAuthHandler constructs the handler. loginLimiter may be nil.
func NewAuthHandler(service service.IdentityService, loginLimiter fiber.Handler, logger zerolog.Logger) *AuthHandler {
	if loginLimiter == nil {
		loginLimiter = func(c *fiber.Ctx) error { return c.Next() }
	}
	return &AuthHandler{
		service:      service,
		loginLimiter: loginLimiter,
		logger:       logger.With().Str("component", "auth_handler").Logger(),
	}
}

// Register attaches auth endpoints to the router group.
func (h *AuthHandler) Register(router fiber.Router) {
	router.Post("/register", h.register)
	router.Post("/login", h.loginLimiter, h.login)
	router.Post("/logout", h.logout)
	router.Get("/session", h.session)
}

func (h *AuthHandler) register(c *fiber.Ctx) error {
	var payload dto.RegisterRequest
	if err := c.BodyParser(&payload); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid payload")
	}

	user, err := h.service.Register(c.UserContext(), payload)
	if err != nil {
		return respondError(c, h.logger, err)
	}

	return utils.SendSuccessWithStatus(c, fiber.StatusCreated, "account created", dto.NewSessionResponse(&user))
}

func (h *AuthHandler) login(c *fiber.Ctx) error {
	var payload dto.LoginRequest
	if err := c.BodyParser(&payload); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid payload")
	}

	user, err := h.service.Authenticate(c.UserContext(), payload)
	if err != nil {
		return respondError(c, h.logger, err)
	}

	return utils.SendSuccess(c, "signed in", dto.NewSessionResponse(&user))
}

func (h *AuthHandler) logout(c *fiber.Ctx) error {
	if err := h.service.Logout(c.UserContext()); err != nil {
		return respondError(c, h.logger, err)
	}
	return utils.SendSuccess(c, "signed out", dto.NewSessionResponse(nil))
}

func (h *AuthHandler) session(c *fiber.Ctx) error {
	session, err := h.service.CurrentSession(c.UserContext())
	if err != nil {
		return respondError(c, h.logger, err)
	}
	return utils.SendSuccess(c, "session retrieved", dto.NewSessionResponse(session.User))
}
