package router

import (
	"github.com/gofiber/fiber/v2"

	"github.com/mergington/activities-api/internal/config"
	"github.com/mergington/activities-api/internal/handler"
	"github.com/mergington/activities-api/internal/observability"
)

// Dependencies groups router dependencies for registration.
type Dependencies struct {
	ActivityHandler *handler.ActivityHandler
	AuthHandler     *handler.AuthHandler
	Backend         string
}

// Register wires the HTTP routes into the fiber application. Paths are kept
// stable for existing clients of the original API.
func Register(app *fiber.App, cfg config.Config, deps Dependencies) {
	app.Get("/health", handler.HealthCheck(cfg, deps.Backend))
	app.Get("/metrics", observability.MetricsHandler())

	if deps.ActivityHandler != nil {
		deps.ActivityHandler.Register(app.Group("/activities"))
	}

	if deps.AuthHandler != nil {
		deps.AuthHandler.Register(app.Group("/auth"))
	}
}
