package router

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/flowpulse/flowpulse/internal/config"
	"github.com/flowpulse/flowpulse/internal/handlers"
	"github.com/flowpulse/flowpulse/internal/logging"
	"github.com/flowpulse/flowpulse/internal/middleware"
)

// Setup configures all routes and middlewares
func Setup(app *fiber.App, logger *logging.Logger, cfg config.Config) *handlers.Handler {
	h := handlers.New(logger, cfg.Analytics)

	// Global middlewares
	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,OPTIONS",
		AllowHeaders: "Origin,Content-Type,Accept,Authorization,X-API-Key,X-Request-ID",
	}))
	app.Use(logging.FiberMiddleware(logger))

	// Health check (no auth required)
	app.Get("/health", h.Health)

	// API key authentication middleware
	authMiddleware := middleware.APIKeyAuth(logger, cfg.Auth.APIKeys, cfg.Auth.Enabled)

	// API v1 routes (protected by API key)
	v1 := app.Group("/v1", authMiddleware)

	// Forecast Routes
	v1.Post("/forecast", h.Forecast)
	v1.Post("/forecast/whatif", h.WhatIf)
	v1.Post("/forecast/capacity", h.Capacity)

	// Analysis Routes
	v1.Post("/analyze", h.Analyze)

	// 404 handler
	app.Use(h.NotFound)

	return h
}

// New creates a new Fiber app with configuration
func New(logger *logging.Logger, cfg config.Config) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:               "FlowPulse Analytics",
		DisableStartupMessage: true,
		ErrorHandler:          middleware.ErrorHandler(logger),
	})

	Setup(app, logger, cfg)

	return app
}
