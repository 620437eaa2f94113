package timeseries

const minForecastabilityPoints = 10

// ForecastabilityScore estimates how reliably a series can be predicted.
// The score is additive across weighted factors; MissingFactors names the
// ones that did not contribute.
type ForecastabilityScore struct {
	Score          float64  `json:"score"`
	Classification string   `json:"classification"` // POOR, FAIR, GOOD, EXCELLENT, INSUFFICIENT_DATA
	MissingFactors []string `json:"missing_factors,omitempty"`
}

func scoreForecastability(n int, trends TrendAnalysis, volatility VolatilityAnalysis, seasonality SeasonalityAnalysis, outlierCount int) ForecastabilityScore {
	if n < minForecastabilityPoints {
		return ForecastabilityScore{Classification: ClassificationInsufficientData}
	}

	var score float64
	var missing []string

	if trends.Confidence > 0.7 {
		score += 0.30
	} else {
		missing = append(missing, "strong trend confidence")
	}
	if volatility.Classification != ClassificationInsufficientData && volatility.Coefficient < 0.2 {
		score += 0.20
	} else {
		missing = append(missing, "low volatility")
	}
	if seasonality.HasSeasonality {
		score += 0.20
	} else {
		missing = append(missing, "seasonal pattern")
	}
	if n >= 30 {
		score += 0.15
	} else {
		missing = append(missing, "sample size of 30 or more")
	}
	if float64(outlierCount)/float64(n) < 0.05 {
		score += 0.15
	} else {
		missing = append(missing, "outlier ratio under 5%")
	}

	return ForecastabilityScore{
		Score:          score,
		Classification: classifyForecastability(score),
		MissingFactors: missing,
	}
}

func classifyForecastability(score float64) string {
	switch {
	case score < 0.3:
		return "POOR"
	case score < 0.6:
		return "FAIR"
	case score < 0.8:
		return "GOOD"
	default:
		return "EXCELLENT"
	}
}
