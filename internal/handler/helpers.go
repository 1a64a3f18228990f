package handler

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/noah-isme/edumanage-api/internal/middleware"
	"github.com/noah-isme/edumanage-api/internal/service"
	"github.com/noah-isme/edumanage-api/internal/utils"
)

// respondError maps domain errors onto HTTP statuses.
func respondError(c *fiber.Ctx, logger zerolog.Logger, err error) error {
	var validationErrors validator.ValidationErrors
	switch {
	case errors.Is(err, service.ErrNotAuthenticated):
		return utils.SendErrorWithHint(c, fiber.StatusUnauthorized, "please login to continue", utils.HintLogin)
	case errors.Is(err, service.ErrWrongRole):
		return utils.SendError(c, fiber.StatusForbidden, "insufficient permissions")
	case errors.Is(err, service.ErrDuplicateEmail):
		return utils.SendError(c, fiber.StatusConflict, "email already registered")
	case errors.Is(err, service.ErrInvalidCredentials):
		return utils.SendError(c, fiber.StatusUnauthorized, "invalid credentials")
	case errors.Is(err, service.ErrCourseNotFound):
		return utils.SendError(c, fiber.StatusNotFound, "course not found")
	case errors.Is(err, service.ErrLessonNotFound):
		return utils.SendError(c, fiber.StatusNotFound, "lesson not found")
	case errors.Is(err, service.ErrNoAssignment):
		return utils.SendError(c, fiber.StatusUnprocessableEntity, "lesson has no assignment")
	case errors.Is(err, service.ErrNoLessons):
		return utils.SendError(c, fiber.StatusUnprocessableEntity, "course has no lessons")
	case errors.Is(err, service.ErrInvalidDirection):
		return utils.SendError(c, fiber.StatusBadRequest, err.Error())
	case errors.As(err, &validationErrors):
		return utils.SendError(c, fiber.StatusBadRequest, validationErrors.Error())
	default:
		requestLogger(logger, c).Error().Err(err).Msg("internal server error")
		return utils.SendError(c, fiber.StatusInternalServerError, "internal server error")
	}
}

func requestLogger(base zerolog.Logger, c *fiber.Ctx) *zerolog.Logger {
	logger := base
	if c != nil {
		if correlation := middleware.GetCorrelationID(c); correlation != "" {
			logger = base.With().Str("correlation_id", correlation).Logger()
		}
	}
	return &logger
}

func lessonCursor(c *fiber.Ctx) service.LessonCursor {
	return service.LessonCursor{
		CourseID: c.Params("courseId"),
		LessonID: c.Params("lessonId"),
	}
}
