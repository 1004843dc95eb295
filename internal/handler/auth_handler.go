package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/mergington/activities-api/internal/service"
	"github.com/mergington/activities-api/internal/utils"
)

// AuthHandler handles the session-check endpoint. Login is exposed at the
// service level only; no login route exists.
type AuthHandler struct {
	auth   service.AuthService
	logger zerolog.Logger
}

// NewAuthHandler constructs the handler.
func NewAuthHandler(auth service.AuthService, logger zerolog.Logger) *AuthHandler {
	return &AuthHandler{
		auth:   auth,
		logger: logger.With().Str("component", "auth_handler").Logger(),
	}
}

// Register wires routes for auth.
func (h *AuthHandler) Register(router fiber.Router) {
	router.Get("/check-session", h.checkSession)
}

func (h *AuthHandler) checkSession(c *fiber.Ctx) error {
	username := c.Query("username")

	identity, err := h.auth.CheckSession(c.Context(), username)
	if err != nil {
		if errors.Is(err, service.ErrTeacherNotFound) {
			return utils.SendDetail(c, fiber.StatusNotFound, "Teacher not found")
		}
		h.logger.Error().Err(err).Msg("session check failed")
		return utils.SendDetail(c, fiber.StatusInternalServerError, "Internal server error")
	}

	return c.JSON(identity)
}
