package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/noah-isme/edumanage-api/internal/models"
	"github.com/noah-isme/edumanage-api/internal/utils"
)

// RequireRole ensures that the signed-in user possesses one of the allowed roles.
func RequireRole(roles ...models.Role) fiber.Handler {
	allowed := make(map[models.Role]struct{}, len(roles))
	for _, role := range roles {
		normalized := models.Role(strings.ToLower(strings.TrimSpace(string(role))))
		if normalized.Valid() {
			allowed[normalized] = struct{}{}
		}
	}

	return func(c *fiber.Ctx) error {
		session := SessionFromContext(c)
		if !session.Authenticated() {
			return utils.SendErrorWithHint(c, fiber.StatusUnauthorized, "please login to continue", utils.HintLogin)
		}
		if _, ok := allowed[session.User.Role]; !ok {
			return utils.SendError(c, fiber.StatusForbidden, "insufficient permissions")
		}
		return c.Next()
	}
}
