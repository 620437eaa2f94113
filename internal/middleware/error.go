package middleware

import (
	"github.com/gofiber/fiber/v2"

	"github.com/flowpulse/flowpulse/internal/logging"
	"github.com/flowpulse/flowpulse/internal/models"
)

// ErrorHandler returns a custom error handler middleware
func ErrorHandler(logger *logging.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		code := fiber.StatusInternalServerError
		message := "Internal Server Error"

		if e, ok := err.(*fiber.Error); ok {
			code = e.Code
			message = e.Message
		}

		logger.Error("Request error",
			"path", c.Path(),
			"method", c.Method(),
			"status", code,
			"error", err,
		)

		detail := models.ErrorDetail{
			Code:    statusErrorCode(code),
			Message: message,
			Path:    c.Path(),
		}
		if requestID := c.GetRespHeader("X-Request-ID"); requestID != "" {
			detail.Details = map[string]interface{}{"request_id": requestID}
		}

		return c.Status(code).JSON(models.ErrorResponse{Error: detail})
	}
}

// statusErrorCode maps an HTTP status to the envelope error code
func statusErrorCode(status int) string {
	switch status {
	case fiber.StatusNotFound:
		return "NOT_FOUND"
	case fiber.StatusMethodNotAllowed:
		return "METHOD_NOT_ALLOWED"
	case fiber.StatusRequestEntityTooLarge:
		return "PAYLOAD_TOO_LARGE"
	default:
		if status >= 400 && status < 500 {
			return "BAD_REQUEST"
		}
		return "INTERNAL_ERROR"
	}
}
