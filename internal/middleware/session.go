package middleware

import (
	"context"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/noah-isme/edumanage-api/internal/service"
	"github.com/noah-isme/edumanage-api/internal/utils"
)

const sessionLocalKey = "session"

// SessionResolver loads the persisted session for the current request.
type SessionResolver interface {
	CurrentSession(ctx context.Context) (service.Session, error)
}

// SessionContext resolves the persisted session once per request and exposes it through locals.
func SessionContext(resolver SessionResolver, logger zerolog.Logger) fiber.Handler {
	logger = logger.With().Str("component", "session_middleware").Logger()

	return func(c *fiber.Ctx) error {
		session, err := resolver.CurrentSession(c.UserContext())
		if err != nil {
			logger.Error().Err(err).Str("correlation_id", GetCorrelationID(c)).Msg("failed to resolve session")
			return utils.SendError(c, fiber.StatusInternalServerError, "internal server error")
		}

		c.Locals(sessionLocalKey, session)
		if session.Authenticated() {
			c.Locals("user_id", session.User.ID)
			c.Locals("user_role", string(session.User.Role))
		}
		return c.Next()
	}
}

// SessionFromContext returns the session resolved for the request, or an anonymous one.
func SessionFromContext(c *fiber.Ctx) service.Session {
	if value := c.Locals(sessionLocalKey); value != nil {
		if session, ok := value.(service.Session); ok {
			return session
		}
	}
	return service.Session{}
}

// RequireSession rejects anonymous requests with a hint to sign in.
func RequireSession() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if !SessionFromContext(c).Authenticated() {
			return utils.SendErrorWithHint(c, fiber.StatusUnauthorized, "please login to continue", utils.HintLogin)
		}
		return c.Next()
	}
}
