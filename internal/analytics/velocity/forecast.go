package velocity

import (
	"context"
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/flowpulse/flowpulse/internal/analytics"
)

// RiskLevel classifies forecast spread between typical and committed outcomes
type RiskLevel string

const (
	RiskLow    RiskLevel = "LOW"
	RiskMedium RiskLevel = "MEDIUM"
	RiskHigh   RiskLevel = "HIGH"
)

// TrendDirection classifies the slope of the velocity series
type TrendDirection string

const (
	TrendStable    TrendDirection = "STABLE"
	TrendImproving TrendDirection = "IMPROVING"
	TrendDeclining TrendDirection = "DECLINING"
)

// VelocityTrend holds the regression slope of the velocity series and its
// classification
type VelocityTrend struct {
	Direction TrendDirection `json:"direction"`
	Slope     float64        `json:"slope"`
}

// WeekRange holds weeks-to-complete at the three forecast percentiles
type WeekRange struct {
	Optimistic  float64 `json:"optimistic"`
	Realistic   float64 `json:"realistic"`
	Pessimistic float64 `json:"pessimistic"`
}

// DateRange holds calendar dates at the three forecast percentiles
type DateRange struct {
	Optimistic  time.Time `json:"optimistic"`
	Realistic   time.Time `json:"realistic"`
	Pessimistic time.Time `json:"pessimistic"`
}

// Forecast is the result of a Monte Carlo delivery forecast
type Forecast struct {
	EstimatedDate   time.Time     `json:"estimated_date"`
	Confidence      float64       `json:"confidence"`
	Range           DateRange     `json:"range"`
	WeeksToComplete WeekRange     `json:"weeks_to_complete"`
	RiskLevel       RiskLevel     `json:"risk_level"`
	VelocityTrend   VelocityTrend `json:"velocity_trend"`
	Recommendation  string        `json:"recommendation"`
}

// ForecastOptions holds per-call forecast options
type ForecastOptions struct {
	// ConfidenceLevel selects the percentile for the estimated date.
	// Zero falls back to the forecaster's configured confidence.
	ConfidenceLevel float64
}

// PredictDeliveryDate runs the Monte Carlo simulation and converts the
// weeks-to-complete distribution into a delivery forecast.
func (f *Forecaster) PredictDeliveryDate(ctx context.Context, remainingWork int, opts ForecastOptions) (*Forecast, error) {
	if len(f.weeks) == 0 {
		return nil, ErrNoHistory
	}
	if remainingWork <= 0 {
		return nil, fmt.Errorf("remaining work must be positive, got %d", remainingWork)
	}

	confidence := opts.ConfidenceLevel
	if confidence <= 0 || confidence >= 1 {
		confidence = f.cfg.Confidence
	}

	mean := analytics.Mean(f.weeks)
	stdDev := analytics.StdDev(f.weeks)

	outcomes, err := f.runSimulation(ctx, remainingWork, mean, stdDev)
	if err != nil {
		return nil, err
	}
	sort.Ints(outcomes)

	p10 := percentileWeeks(outcomes, 0.10)
	p50 := percentileWeeks(outcomes, 0.50)
	p85 := percentileWeeks(outcomes, 0.85)
	p90 := percentileWeeks(outcomes, 0.90)
	estimate := percentileWeeks(outcomes, confidence)

	now := f.now()

	return &Forecast{
		EstimatedDate: weeksToDate(now, estimate),
		Confidence:    confidence,
		Range: DateRange{
			Optimistic:  weeksToDate(now, p10),
			Realistic:   weeksToDate(now, p50),
			Pessimistic: weeksToDate(now, p90),
		},
		WeeksToComplete: WeekRange{
			Optimistic:  p10,
			Realistic:   p50,
			Pessimistic: p90,
		},
		RiskLevel:      classifyRisk(p50, p85),
		VelocityTrend:  f.velocityTrend(),
		Recommendation: f.recommendation(mean, p50, p90),
	}, nil
}

// percentileWeeks reads the p-th percentile of sorted outcomes by index
func percentileWeeks(sorted []int, p float64) float64 {
	if len(sorted) == 0 {
		return 0
	}
	idx := int(float64(len(sorted)) * p)
	if idx >= len(sorted) {
		idx = len(sorted) - 1
	}
	return float64(sorted[idx])
}

func weeksToDate(now time.Time, weeks float64) time.Time {
	return now.AddDate(0, 0, int(weeks)*7)
}

// classifyRisk compares the committed (p85) outcome against the median
func classifyRisk(p50, p85 float64) RiskLevel {
	if p50 <= 0 {
		return RiskLow
	}
	spread := (p85 - p50) / p50
	switch {
	case spread >= 0.5:
		return RiskHigh
	case spread >= 0.2:
		return RiskMedium
	default:
		return RiskLow
	}
}

// velocityTrend classifies the linear regression slope of the series
func (f *Forecaster) velocityTrend() VelocityTrend {
	slope := analytics.LinearRegression(f.weeks).Slope
	direction := TrendStable
	if math.Abs(slope) >= 0.1 {
		if slope > 0 {
			direction = TrendImproving
		} else {
			direction = TrendDeclining
		}
	}
	return VelocityTrend{Direction: direction, Slope: slope}
}

// recommendation applies a fixed decision table over the forecast distribution
func (f *Forecaster) recommendation(mean, p50, p90 float64) string {
	switch {
	case mean < 1:
		return "Velocity is below one item per week. The team may be under-resourced or blocked; review capacity before committing to a date."
	case p50 > 0 && (p90-p50)/p50 > 0.5:
		return "Forecast variability is high: the conservative outcome is more than 50% beyond the median. Stabilize scope or flow before committing to dates."
	case p50 > 12:
		return "Median completion exceeds 12 weeks. Consider splitting scope or adding capacity to shorten the delivery horizon."
	default:
		return "Forecast looks healthy. Velocity is steady enough to commit to the realistic delivery date."
	}
}
