package handlers

import (
	"time"

	"github.com/flowpulse/flowpulse/internal/config"
	"github.com/flowpulse/flowpulse/internal/logging"
	"github.com/flowpulse/flowpulse/internal/services"
)

// Handler contains all HTTP handlers
type Handler struct {
	logger    *logging.Logger
	startedAt time.Time
	// Services
	forecastService *services.ForecastService
	analysisService *services.AnalysisService
}

// New creates a new handler instance
func New(logger *logging.Logger, cfg config.AnalyticsConfig) *Handler {
	return &Handler{
		logger:          logger,
		startedAt:       time.Now(),
		forecastService: services.NewForecastService(logger, cfg),
		analysisService: services.NewAnalysisService(logger, cfg),
	}
}
