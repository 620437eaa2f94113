package timeseries

import (
	"github.com/flowpulse/flowpulse/internal/analytics"
)

const (
	minWeeklySeasonalityPoints  = 14
	minMonthlySeasonalityPoints = 60

	weeklyCVThreshold  = 0.1
	monthlyCVThreshold = 0.15
)

// SeasonalPattern describes periodic variation across calendar buckets
type SeasonalPattern struct {
	Detected               bool      `json:"detected"`
	Confidence             float64   `json:"confidence"`
	CoefficientOfVariation float64   `json:"coefficient_of_variation"`
	BucketMeans            []float64 `json:"bucket_means,omitempty"`
}

// SeasonalityAnalysis holds weekly and monthly seasonality detection
type SeasonalityAnalysis struct {
	HasSeasonality bool            `json:"has_seasonality"`
	Weekly         SeasonalPattern `json:"weekly"`
	Monthly        SeasonalPattern `json:"monthly"`
	Classification string          `json:"classification"` // DETECTED, NONE, INSUFFICIENT_DATA
}

// analyzeSeasonality buckets values by day-of-week and by month and measures
// the spread of bucket means via the coefficient of variation.
func analyzeSeasonality(pts []Point) SeasonalityAnalysis {
	if len(pts) < minWeeklySeasonalityPoints {
		return SeasonalityAnalysis{Classification: ClassificationInsufficientData}
	}

	weekly := detectPattern(bucketMeans(pts, 7, func(p Point) int {
		return int(p.Time.Weekday())
	}), weeklyCVThreshold, 10)

	monthly := SeasonalPattern{}
	if len(pts) >= minMonthlySeasonalityPoints {
		monthly = detectPattern(bucketMeans(pts, 12, func(p Point) int {
			return int(p.Time.Month()) - 1
		}), monthlyCVThreshold, 6.67)
	}

	analysis := SeasonalityAnalysis{
		HasSeasonality: weekly.Detected || monthly.Detected,
		Weekly:         weekly,
		Monthly:        monthly,
	}
	if analysis.HasSeasonality {
		analysis.Classification = "DETECTED"
	} else {
		analysis.Classification = "NONE"
	}
	return analysis
}

// bucketMeans averages values into calendar buckets; empty buckets are
// skipped so they do not drag the coefficient of variation.
func bucketMeans(pts []Point, buckets int, bucketOf func(Point) int) []float64 {
	sums := make([]float64, buckets)
	counts := make([]int, buckets)
	for _, p := range pts {
		b := bucketOf(p)
		if b < 0 || b >= buckets {
			continue
		}
		sums[b] += p.Value
		counts[b]++
	}

	means := make([]float64, 0, buckets)
	for i := range sums {
		if counts[i] > 0 {
			means = append(means, sums[i]/float64(counts[i]))
		}
	}
	return means
}

// detectPattern flags a pattern when the CV of bucket means exceeds the
// threshold; confidence scales the CV into [0, 1].
func detectPattern(means []float64, cvThreshold, confidenceScale float64) SeasonalPattern {
	mean := analytics.Mean(means)
	if mean == 0 || len(means) < 2 {
		return SeasonalPattern{BucketMeans: means}
	}

	cv := analytics.StdDev(means) / mean
	if cv < 0 {
		cv = -cv
	}

	pattern := SeasonalPattern{
		CoefficientOfVariation: cv,
		BucketMeans:            means,
	}
	if cv > cvThreshold {
		pattern.Detected = true
		pattern.Confidence = cv * confidenceScale
		if pattern.Confidence > 1 {
			pattern.Confidence = 1
		}
	}
	return pattern
}
