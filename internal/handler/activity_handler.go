package handler

import (
	"errors"
	"net/url"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/mergington/activities-api/internal/dto"
	"github.com/mergington/activities-api/internal/repository"
	"github.com/mergington/activities-api/internal/service"
	"github.com/mergington/activities-api/internal/utils"
)

// ActivityHandler handles activity listing and roster mutation endpoints.
type ActivityHandler struct {
	activities service.ActivityService
	enrollment service.EnrollmentService
	validate   *validator.Validate
	logger     zerolog.Logger
}

// NewActivityHandler constructs the handler.
func NewActivityHandler(activities service.ActivityService, enrollment service.EnrollmentService, validate *validator.Validate, logger zerolog.Logger) *ActivityHandler {
	return &ActivityHandler{
		activities: activities,
		enrollment: enrollment,
		validate:   validate,
		logger:     logger.With().Str("component", "activity_handler").Logger(),
	}
}

// Register wires routes for activities.
func (h *ActivityHandler) Register(router fiber.Router) {
	router.Get("", h.list)
	router.Get("/days", h.days)
	router.Post("/:name/signup", h.signup)
	router.Post("/:name/unregister", h.unregister)
}

func (h *ActivityHandler) list(c *fiber.Ctx) error {
	filter := repository.ActivityFilter{
		Day:       c.Query("day"),
		StartTime: c.Query("start_time"),
		EndTime:   c.Query("end_time"),
	}

	result, err := h.activities.List(c.Context(), filter)
	if err != nil {
		h.logger.Error().Err(err).Msg("failed to list activities")
		return utils.SendDetail(c, fiber.StatusInternalServerError, "Internal server error")
	}

	return c.JSON(result)
}

func (h *ActivityHandler) days(c *fiber.Ctx) error {
	days, err := h.activities.Days(c.Context())
	if err != nil {
		h.logger.Error().Err(err).Msg("failed to list scheduled days")
		return utils.SendDetail(c, fiber.StatusInternalServerError, "Internal server error")
	}

	return c.JSON(days)
}

func (h *ActivityHandler) signup(c *fiber.Ctx) error {
	name, email, teacher, err := h.mutationParams(c)
	if err != nil {
		return utils.SendDetail(c, fiber.StatusBadRequest, "Invalid email address")
	}

	message, err := h.enrollment.Signup(c.Context(), name, email, teacher)
	if err != nil {
		return h.sendEnrollmentError(c, err)
	}

	return c.JSON(dto.MessageResponse{Message: message})
}

func (h *ActivityHandler) unregister(c *fiber.Ctx) error {
	name, email, teacher, err := h.mutationParams(c)
	if err != nil {
		return utils.SendDetail(c, fiber.StatusBadRequest, "Invalid email address")
	}

	message, err := h.enrollment.Unregister(c.Context(), name, email, teacher)
	if err != nil {
		return h.sendEnrollmentError(c, err)
	}

	return c.JSON(dto.MessageResponse{Message: message})
}

func (h *ActivityHandler) mutationParams(c *fiber.Ctx) (name, email, teacher string, err error) {
	name = c.Params("name")
	if unescaped, unescapeErr := url.PathUnescape(name); unescapeErr == nil {
		name = unescaped
	}

	email = c.Query("email")
	teacher = c.Query("teacher_username")

	if err := h.validate.Var(email, "required,email"); err != nil {
		return "", "", "", err
	}

	return name, email, teacher, nil
}

func (h *ActivityHandler) sendEnrollmentError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, service.ErrAuthenticationRequired):
		return utils.SendDetail(c, fiber.StatusUnauthorized, "Authentication required for this action")
	case errors.Is(err, service.ErrInvalidTeacher):
		return utils.SendDetail(c, fiber.StatusUnauthorized, "Invalid teacher credentials")
	case errors.Is(err, service.ErrActivityNotFound):
		return utils.SendDetail(c, fiber.StatusNotFound, "Activity not found")
	case errors.Is(err, service.ErrAlreadySignedUp):
		return utils.SendDetail(c, fiber.StatusBadRequest, "Already signed up for this activity")
	case errors.Is(err, service.ErrNotRegistered):
		return utils.SendDetail(c, fiber.StatusBadRequest, "Not registered for this activity")
	case errors.Is(err, service.ErrUpdateFailed):
		return utils.SendDetail(c, fiber.StatusInternalServerError, "Failed to update activity")
	default:
		h.logger.Error().Err(err).Msg("enrollment request failed")
		return utils.SendDetail(c, fiber.StatusInternalServerError, "Internal server error")
	}
}
