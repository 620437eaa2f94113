package models

import "fmt"

// ForecastRequest represents a delivery forecast request
type ForecastRequest struct {
	History       []HistoricalRecord `json:"history"`
	RemainingWork int                `json:"remaining_work"`
	Confidence    float64            `json:"confidence,omitempty"` // percentile for the estimated date, 0 uses the service default
}

// Validate validates the forecast request
func (r *ForecastRequest) Validate() error {
	if r.RemainingWork <= 0 {
		return fmt.Errorf("remaining_work must be positive")
	}
	if r.Confidence < 0 || r.Confidence >= 1 {
		return fmt.Errorf("confidence must be in [0, 1)")
	}
	return validateHistory(r.History)
}

// ScenarioRequest describes one hypothetical throughput change
type ScenarioRequest struct {
	Name               string  `json:"name"`
	VelocityMultiplier float64 `json:"velocity_multiplier,omitempty"`
	AddedCapacity      float64 `json:"added_capacity,omitempty"`
}

// WhatIfRequest represents a scenario comparison request
type WhatIfRequest struct {
	History       []HistoricalRecord `json:"history"`
	RemainingWork int                `json:"remaining_work"`
	Scenarios     []ScenarioRequest  `json:"scenarios"`
}

// Validate validates the what-if request
func (r *WhatIfRequest) Validate() error {
	if r.RemainingWork <= 0 {
		return fmt.Errorf("remaining_work must be positive")
	}
	if len(r.Scenarios) == 0 {
		return fmt.Errorf("at least one scenario is required")
	}
	for i, s := range r.Scenarios {
		if s.VelocityMultiplier < 0 {
			return fmt.Errorf("scenario %d: velocity_multiplier cannot be negative", i)
		}
	}
	return validateHistory(r.History)
}

// CapacityRequest represents a capacity planning request
type CapacityRequest struct {
	History       []HistoricalRecord `json:"history"`
	TargetWeeks   int                `json:"target_weeks"`
	RemainingWork int                `json:"remaining_work"`
}

// Validate validates the capacity request
func (r *CapacityRequest) Validate() error {
	if r.TargetWeeks <= 0 {
		return fmt.Errorf("target_weeks must be positive")
	}
	if r.RemainingWork <= 0 {
		return fmt.Errorf("remaining_work must be positive")
	}
	return validateHistory(r.History)
}

// AnalyzeRequest represents a time series analysis request
type AnalyzeRequest struct {
	Points []TimeSeriesPoint `json:"points"`
	// Metrics optionally restricts the response to named metrics;
	// empty means all metrics present in the points
	Metrics []string `json:"metrics,omitempty"`
}

// Validate validates the analyze request
func (r *AnalyzeRequest) Validate() error {
	if len(r.Points) == 0 {
		return fmt.Errorf("points is required")
	}
	for i, p := range r.Points {
		if err := p.Validate(); err != nil {
			return fmt.Errorf("point %d: %w", i, err)
		}
	}
	return nil
}

func validateHistory(history []HistoricalRecord) error {
	for i, rec := range history {
		if err := rec.Validate(); err != nil {
			return fmt.Errorf("history record %d: %w", i, err)
		}
	}
	return nil
}
