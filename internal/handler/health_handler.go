package handler

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/mergington/activities-api/internal/config"
	"github.com/mergington/activities-api/internal/utils"
)

// HealthResponse represents the payload returned by the health endpoint.
type HealthResponse struct {
	Status      string    `json:"status"`
	Timestamp   time.Time `json:"timestamp"`
	Service     string    `json:"service"`
	Environment string    `json:"environment"`
	Backend     string    `json:"backend"`
}

// HealthCheck returns a handler that reports application health information,
// including which storage backend was selected at startup.
func HealthCheck(cfg config.Config, backend string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		payload := HealthResponse{
			Status:      "ok",
			Timestamp:   time.Now().UTC(),
			Service:     cfg.AppName,
			Environment: cfg.AppEnv,
			Backend:     backend,
		}

		return utils.SendSuccess(c, "service healthy", payload)
	}
}
