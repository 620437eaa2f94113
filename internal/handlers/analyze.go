package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/flowpulse/flowpulse/internal/models"
)

// Analyze handles time series analysis requests
// POST /v1/analyze
func (h *Handler) Analyze(c *fiber.Ctx) error {
	var req models.AnalyzeRequest
	if err := c.BodyParser(&req); err != nil {
		return invalidJSON(c, err)
	}

	result, err := h.analysisService.Execute(c.Context(), &req)
	if err != nil {
		return serviceError(c, err)
	}

	return c.JSON(result)
}
