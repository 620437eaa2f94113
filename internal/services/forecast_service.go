package services

import (
	"context"
	"errors"
	"time"

	"github.com/flowpulse/flowpulse/internal/analytics/velocity"
	"github.com/flowpulse/flowpulse/internal/config"
	"github.com/flowpulse/flowpulse/internal/logging"
	"github.com/flowpulse/flowpulse/internal/models"
)

// ForecastService handles delivery forecasting business logic
type ForecastService struct {
	logger *logging.Logger
	cfg    config.AnalyticsConfig
	now    func() time.Time
}

// NewForecastService creates a new ForecastService
func NewForecastService(logger *logging.Logger, cfg config.AnalyticsConfig) *ForecastService {
	return &ForecastService{
		logger: logger,
		cfg:    cfg,
		now:    time.Now,
	}
}

// WithClock overrides the service clock. Intended for tests.
func (s *ForecastService) WithClock(now func() time.Time) *ForecastService {
	s.now = now
	return s
}

// ForecastResponse represents the complete forecast response
type ForecastResponse struct {
	Forecast       *velocity.Forecast `json:"forecast"`
	WeeklyVelocity []float64          `json:"weekly_velocity"`
	MeanVelocity   float64            `json:"mean_velocity"`
}

// WhatIfResponse represents the scenario comparison response
type WhatIfResponse struct {
	Scenarios []velocity.ScenarioForecast `json:"scenarios"`
}

// CapacityResponse represents the capacity planning response
type CapacityResponse struct {
	Plan *velocity.CapacityPlan `json:"plan"`
}

// Execute produces a probabilistic delivery forecast from historical records
func (s *ForecastService) Execute(ctx context.Context, req *models.ForecastRequest) (*ForecastResponse, error) {
	start := time.Now()

	if err := req.Validate(); err != nil {
		return nil, NewServiceError(CodeInvalidRequest, err.Error())
	}

	f := s.buildForecaster(req.History)
	forecast, err := f.PredictDeliveryDate(ctx, req.RemainingWork,
		velocity.ForecastOptions{ConfidenceLevel: req.Confidence})
	if err != nil {
		return nil, s.translate(err)
	}

	s.logger.Info("Forecast completed",
		"remaining_work", req.RemainingWork,
		"history_records", len(req.History),
		"estimated_weeks", forecast.WeeksToComplete.Realistic,
		"risk_level", forecast.RiskLevel,
		"duration_ms", time.Since(start).Milliseconds())

	return &ForecastResponse{
		Forecast:       forecast,
		WeeklyVelocity: f.WeeklyVelocity(),
		MeanVelocity:   f.MeanVelocity(),
	}, nil
}

// WhatIf forecasts each scenario against a transformed velocity series
func (s *ForecastService) WhatIf(ctx context.Context, req *models.WhatIfRequest) (*WhatIfResponse, error) {
	start := time.Now()

	if err := req.Validate(); err != nil {
		return nil, NewServiceError(CodeInvalidRequest, err.Error())
	}

	scenarios := make([]velocity.Scenario, len(req.Scenarios))
	for i, sc := range req.Scenarios {
		scenarios[i] = velocity.Scenario{
			Name:               sc.Name,
			VelocityMultiplier: sc.VelocityMultiplier,
			AddedCapacity:      sc.AddedCapacity,
		}
	}

	f := s.buildForecaster(req.History)
	results, err := f.PerformWhatIfAnalysis(ctx, req.RemainingWork, scenarios)
	if err != nil {
		return nil, s.translate(err)
	}

	s.logger.Info("What-if analysis completed",
		"remaining_work", req.RemainingWork,
		"scenarios", len(scenarios),
		"duration_ms", time.Since(start).Milliseconds())

	return &WhatIfResponse{Scenarios: results}, nil
}

// Capacity computes the velocity gap for a target delivery window
func (s *ForecastService) Capacity(ctx context.Context, req *models.CapacityRequest) (*CapacityResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, NewServiceError(CodeInvalidRequest, err.Error())
	}

	f := s.buildForecaster(req.History)
	plan, err := f.CalculateCapacityNeeds(req.TargetWeeks, req.RemainingWork)
	if err != nil {
		return nil, s.translate(err)
	}

	s.logger.Info("Capacity plan computed",
		"target_weeks", req.TargetWeeks,
		"remaining_work", req.RemainingWork,
		"feasible", plan.Feasible)

	return &CapacityResponse{Plan: plan}, nil
}

// buildForecaster creates a fresh velocity snapshot from request history
func (s *ForecastService) buildForecaster(history []models.HistoricalRecord) *velocity.Forecaster {
	items := make([]velocity.CompletedItem, len(history))
	for i, rec := range history {
		items[i] = velocity.CompletedItem{
			ID:            rec.ID,
			ResolvedAt:    rec.ResolvedAt,
			LeadTimeDays:  rec.LeadTimeDays,
			CycleTimeDays: rec.CycleTimeDays,
			WorkItemType:  rec.WorkItemType,
		}
	}

	f := velocity.NewForecaster(velocity.Config{
		Trials:       s.cfg.Trials,
		HorizonWeeks: s.cfg.HorizonWeeks,
		HistoryWeeks: s.cfg.HistoryWeeks,
		Workers:      s.cfg.Workers,
		Seed:         s.cfg.Seed,
		Confidence:   s.cfg.DefaultConfidence,
	}, s.now)
	f.Initialize(items)
	return f
}

func (s *ForecastService) translate(err error) error {
	switch {
	case errors.Is(err, velocity.ErrNoHistory):
		return NewServiceError(CodeNoHistory,
			"no resolved records within the velocity history window")
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return err
	default:
		return NewServiceError(CodeForecastFailed, err.Error())
	}
}
