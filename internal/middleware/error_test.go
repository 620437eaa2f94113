package middleware

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"

	"github.com/flowpulse/flowpulse/internal/logging"
	"github.com/flowpulse/flowpulse/internal/models"
)

func TestStatusErrorCode(t *testing.T) {
	tests := []struct {
		name     string
		status   int
		expected string
	}{
		{
			name:     "not found",
			status:   fiber.StatusNotFound,
			expected: "NOT_FOUND",
		},
		{
			name:     "method not allowed",
			status:   fiber.StatusMethodNotAllowed,
			expected: "METHOD_NOT_ALLOWED",
		},
		{
			name:     "payload too large",
			status:   fiber.StatusRequestEntityTooLarge,
			expected: "PAYLOAD_TOO_LARGE",
		},
		{
			name:     "other client error",
			status:   fiber.StatusUnprocessableEntity,
			expected: "BAD_REQUEST",
		},
		{
			name:     "server error",
			status:   fiber.StatusInternalServerError,
			expected: "INTERNAL_ERROR",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := statusErrorCode(tt.status)
			if result != tt.expected {
				t.Errorf("statusErrorCode(%d) = %q, want %q", tt.status, result, tt.expected)
			}
		})
	}
}

func TestErrorHandler(t *testing.T) {
	logger := logging.NewDevelopment()
	app := fiber.New(fiber.Config{
		ErrorHandler: ErrorHandler(logger),
	})
	app.Get("/boom", func(c *fiber.Ctx) error {
		return fiber.NewError(fiber.StatusServiceUnavailable, "downstream unavailable")
	})

	req := httptest.NewRequest("GET", "/boom", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("Failed to perform request: %v", err)
	}

	if resp.StatusCode != fiber.StatusServiceUnavailable {
		t.Errorf("Expected status %d, got %d", fiber.StatusServiceUnavailable, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("Failed to read response body: %v", err)
	}

	var errResp models.ErrorResponse
	if err := json.Unmarshal(body, &errResp); err != nil {
		t.Fatalf("Failed to unmarshal response: %v", err)
	}

	if errResp.Error.Code != "INTERNAL_ERROR" {
		t.Errorf("Expected code 'INTERNAL_ERROR', got '%s'", errResp.Error.Code)
	}
	if errResp.Error.Message != "downstream unavailable" {
		t.Errorf("Expected fiber error message, got '%s'", errResp.Error.Message)
	}
	if errResp.Error.Path != "/boom" {
		t.Errorf("Expected path '/boom', got '%s'", errResp.Error.Path)
	}
}

func TestErrorHandlerIncludesRequestID(t *testing.T) {
	logger := logging.NewDevelopment()
	app := fiber.New(fiber.Config{
		ErrorHandler: ErrorHandler(logger),
	})
	app.Get("/boom", func(c *fiber.Ctx) error {
		c.Set("X-Request-ID", "req-123")
		return fiber.ErrBadGateway
	})

	req := httptest.NewRequest("GET", "/boom", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("Failed to perform request: %v", err)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("Failed to read response body: %v", err)
	}

	var errResp models.ErrorResponse
	if err := json.Unmarshal(body, &errResp); err != nil {
		t.Fatalf("Failed to unmarshal response: %v", err)
	}

	if errResp.Error.Details["request_id"] != "req-123" {
		t.Errorf("Expected request_id detail 'req-123', got %v", errResp.Error.Details)
	}
}
