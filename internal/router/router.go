package router

import (
	"github.com/gofiber/fiber/v2"

	"github.com/noah-isme/edumanage-api/internal/config"
	"github.com/noah-isme/edumanage-api/internal/handler"
	"github.com/noah-isme/edumanage-api/internal/observability"
)

// Dependencies groups router dependencies for registration.
type Dependencies struct {
	AuthHandler       *handler.AuthHandler
	CourseHandler     *handler.CourseHandler
	LessonHandler     *handler.LessonHandler
	DashboardHandler  *handler.DashboardHandler
	SessionMiddleware fiber.Handler
	StoreProbe        handler.StoreProbe
}

// Register wires the HTTP routes into the fiber application.
func Register(app *fiber.App, cfg config.Config, deps Dependencies) {
	api := app.Group("/api/v1", func(c *fiber.Ctx) error {
		c.Set("X-Application", cfg.AppName)
		return c.Next()
	})
	api.Get("/health", handler.HealthCheck(cfg, deps.StoreProbe))
	api.Get("/metrics", observability.MetricsHandler())

	// Registered after health and metrics so only domain routes resolve the session.
	if deps.SessionMiddleware != nil {
		api.Use(deps.SessionMiddleware)
	}

	if deps.AuthHandler != nil {
		deps.AuthHandler.Register(api.Group("/auth"))
	}

	if deps.CourseHandler != nil {
		deps.CourseHandler.Register(api.Group("/courses"))
	}

	if deps.LessonHandler != nil {
		deps.LessonHandler.Register(api.Group("/courses/:courseId/lessons"))
	}

	if deps.DashboardHandler != nil {
		deps.DashboardHandler.Register(api.Group("/dashboard"))
	}
}
