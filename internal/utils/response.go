package utils

import "github.com/gofiber/fiber/v2"

// APIResponse is the envelope used by operational endpoints such as /health.
// Activity and auth endpoints return their payloads bare for compatibility
// with existing clients.
type APIResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Message string      `json:"message"`
}

// DetailResponse is the error shape returned by the public API.
type DetailResponse struct {
	Detail string `json:"detail"`
}

// SendSuccess sends a successful enveloped JSON response.
func SendSuccess(c *fiber.Ctx, message string, data interface{}) error {
	if message == "" {
		message = "success"
	}

	return c.Status(fiber.StatusOK).JSON(APIResponse{
		Success: true,
		Data:    data,
		Message: message,
	})
}

// SendDetail sends an error response carrying a detail message and the given
// HTTP status code.
func SendDetail(c *fiber.Ctx, status int, detail string) error {
	if detail == "" {
		detail = "error"
	}

	return c.Status(status).JSON(DetailResponse{Detail: detail})
}
