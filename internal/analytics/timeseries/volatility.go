package timeseries

import "github.com/flowpulse/flowpulse/internal/analytics"

const (
	lowVolatilityCV      = 0.1
	moderateVolatilityCV = 0.3
)

// VolatilityAnalysis summarizes dispersion relative to the mean
type VolatilityAnalysis struct {
	StdDev         float64 `json:"std_dev"`
	Mean           float64 `json:"mean"`
	Coefficient    float64 `json:"coefficient"`
	Classification string  `json:"classification"` // LOW, MODERATE, HIGH, INSUFFICIENT_DATA
}

func analyzeVolatility(values []float64) VolatilityAnalysis {
	if len(values) < 2 {
		return VolatilityAnalysis{Classification: ClassificationInsufficientData}
	}

	mean := analytics.Mean(values)
	stdDev := analytics.StdDev(values)

	analysis := VolatilityAnalysis{
		StdDev: stdDev,
		Mean:   mean,
	}
	if mean != 0 {
		cv := stdDev / mean
		if cv < 0 {
			cv = -cv
		}
		analysis.Coefficient = cv
	}

	switch {
	case analysis.Coefficient < lowVolatilityCV:
		analysis.Classification = "LOW"
	case analysis.Coefficient < moderateVolatilityCV:
		analysis.Classification = "MODERATE"
	default:
		analysis.Classification = "HIGH"
	}
	return analysis
}
