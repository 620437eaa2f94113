package timeseries

import (
	"math"
	"time"

	"github.com/flowpulse/flowpulse/internal/analytics"
)

// minSegmentPoints is the minimum run length recorded as a trend segment
const minSegmentPoints = 5

// TrendSegment is a merged run of consecutive same-direction movement
type TrendSegment struct {
	Start         time.Time      `json:"start"`
	End           time.Time      `json:"end"`
	Points        int            `json:"points"`
	DurationDays  float64        `json:"duration_days"`
	Direction     TrendDirection `json:"direction"`
	ChangePercent float64        `json:"change_percent"`
	// Strength is the segment-local regression slope
	Strength float64 `json:"strength"`
}

// Acceleration compares regression slopes of the series halves
type Acceleration struct {
	Value          float64 `json:"value"`
	Classification string  `json:"classification"` // STEADY, ACCELERATING, DECELERATING
}

// TrendAnalysis describes the overall direction of a series
type TrendAnalysis struct {
	Slope           float64        `json:"slope"`
	Confidence      float64        `json:"confidence"` // R-squared of the fit
	Direction       TrendDirection `json:"direction"`
	RecentSlope     float64        `json:"recent_slope"`
	RecentDirection TrendDirection `json:"recent_direction"`
	Segments        []TrendSegment `json:"segments"`
	Acceleration    Acceleration   `json:"acceleration"`
	Classification  string         `json:"classification,omitempty"`
}

// analyzeTrend fits the whole series, the trailing 30%, the segment runs and
// the half-split acceleration.
func analyzeTrend(pts []Point) TrendAnalysis {
	if len(pts) < 2 {
		return TrendAnalysis{
			Direction:       TrendStable,
			RecentDirection: TrendStable,
			Acceleration:    Acceleration{Classification: ClassificationInsufficientData},
			Classification:  ClassificationInsufficientData,
		}
	}

	vals := values(pts)
	fit := analytics.LinearRegression(vals)

	recentCount := int(float64(len(vals)) * 0.3)
	if recentCount < 2 {
		recentCount = 2
	}
	recentFit := analytics.LinearRegression(vals[len(vals)-recentCount:])

	return TrendAnalysis{
		Slope:           fit.Slope,
		Confidence:      fit.RSquared,
		Direction:       classifySlope(fit.Slope),
		RecentSlope:     recentFit.Slope,
		RecentDirection: classifySlope(recentFit.Slope),
		Segments:        segmentTrends(pts),
		Acceleration:    analyzeAcceleration(vals),
	}
}

// segmentTrends walks point-to-point deltas and merges consecutive
// same-direction runs of at least minSegmentPoints points.
func segmentTrends(pts []Point) []TrendSegment {
	if len(pts) < 2 {
		return nil
	}

	var segments []TrendSegment
	runStart := 0
	runDirection := classifySlope(pts[1].Value - pts[0].Value)

	flush := func(start, end int, direction TrendDirection) {
		points := end - start + 1
		if points < minSegmentPoints {
			return
		}
		segment := TrendSegment{
			Start:        pts[start].Time,
			End:          pts[end].Time,
			Points:       points,
			DurationDays: pts[end].Time.Sub(pts[start].Time).Hours() / 24,
			Direction:    direction,
			Strength:     analytics.LinearRegression(values(pts[start : end+1])).Slope,
		}
		if pts[start].Value != 0 {
			segment.ChangePercent = (pts[end].Value - pts[start].Value) / math.Abs(pts[start].Value) * 100
		}
		segments = append(segments, segment)
	}

	for i := 2; i < len(pts); i++ {
		direction := classifySlope(pts[i].Value - pts[i-1].Value)
		if direction != runDirection {
			flush(runStart, i-1, runDirection)
			runStart = i - 1
			runDirection = direction
		}
	}
	flush(runStart, len(pts)-1, runDirection)

	return segments
}

// analyzeAcceleration splits the series at its midpoint and compares the
// independent regression slopes of the halves.
func analyzeAcceleration(vals []float64) Acceleration {
	if len(vals) < 4 {
		return Acceleration{Classification: ClassificationInsufficientData}
	}

	mid := len(vals) / 2
	firstSlope := analytics.LinearRegression(vals[:mid]).Slope
	secondSlope := analytics.LinearRegression(vals[mid:]).Slope
	delta := secondSlope - firstSlope

	classification := "STEADY"
	if math.Abs(delta) >= slopeThreshold {
		if delta > 0 {
			classification = "ACCELERATING"
		} else {
			classification = "DECELERATING"
		}
	}

	return Acceleration{Value: delta, Classification: classification}
}
