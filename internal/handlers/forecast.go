package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/flowpulse/flowpulse/internal/models"
	"github.com/flowpulse/flowpulse/internal/services"
)

// Forecast handles delivery forecast requests
// POST /v1/forecast
func (h *Handler) Forecast(c *fiber.Ctx) error {
	var req models.ForecastRequest
	if err := c.BodyParser(&req); err != nil {
		return invalidJSON(c, err)
	}

	result, err := h.forecastService.Execute(c.Context(), &req)
	if err != nil {
		return serviceError(c, err)
	}

	return c.JSON(result)
}

// WhatIf handles scenario comparison requests
// POST /v1/forecast/whatif
func (h *Handler) WhatIf(c *fiber.Ctx) error {
	var req models.WhatIfRequest
	if err := c.BodyParser(&req); err != nil {
		return invalidJSON(c, err)
	}

	result, err := h.forecastService.WhatIf(c.Context(), &req)
	if err != nil {
		return serviceError(c, err)
	}

	return c.JSON(result)
}

// Capacity handles capacity planning requests
// POST /v1/forecast/capacity
func (h *Handler) Capacity(c *fiber.Ctx) error {
	var req models.CapacityRequest
	if err := c.BodyParser(&req); err != nil {
		return invalidJSON(c, err)
	}

	result, err := h.forecastService.Capacity(c.Context(), &req)
	if err != nil {
		return serviceError(c, err)
	}

	return c.JSON(result)
}

func invalidJSON(c *fiber.Ctx, err error) error {
	return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse{
		Error: models.ErrorDetail{
			Code:    "INVALID_JSON",
			Message: "Failed to parse JSON body",
			Details: map[string]interface{}{"error": err.Error()},
		},
	})
}

// serviceError maps service error codes to HTTP statuses
func serviceError(c *fiber.Ctx, err error) error {
	if svcErr, ok := err.(*services.ServiceError); ok {
		status := fiber.StatusInternalServerError
		switch svcErr.Code {
		case services.CodeInvalidRequest:
			status = fiber.StatusBadRequest
		case services.CodeNoHistory, services.CodeUnknownMetric:
			status = fiber.StatusUnprocessableEntity
		}
		return c.Status(status).JSON(models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    svcErr.Code,
				Message: svcErr.Message,
				Details: svcErr.Details,
			},
		})
	}

	return c.Status(fiber.StatusInternalServerError).JSON(models.ErrorResponse{
		Error: models.ErrorDetail{
			Code:    "INTERNAL_ERROR",
			Message: err.Error(),
		},
	})
}
