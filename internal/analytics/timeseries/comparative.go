package timeseries

import (
	"time"

	"github.com/flowpulse/flowpulse/internal/analytics"
)

const significantChangePercent = 10

// comparativeWindow gates each comparison window on a minimum sample size so
// that both the trailing and preceding periods have data to compare.
type comparativeWindow struct {
	days      int
	minPoints int
}

var comparativeWindows = []comparativeWindow{
	{days: 7, minPoints: 14},
	{days: 30, minPoints: 60},
	{days: 90, minPoints: 180},
}

// PeriodComparison contrasts the trailing window against the window
// immediately before it.
type PeriodComparison struct {
	WindowDays      int            `json:"window_days"`
	CurrentAverage  float64        `json:"current_average"`
	PreviousAverage float64        `json:"previous_average"`
	Change          float64        `json:"change"`
	ChangePercent   float64        `json:"change_percent"`
	Direction       TrendDirection `json:"direction"`
	Significance    string         `json:"significance"` // SIGNIFICANT, MINOR
}

// comparePeriods measures trailing vs preceding windows relative to the most
// recent observation's timestamp.
func comparePeriods(pts []Point) []PeriodComparison {
	if len(pts) == 0 {
		return nil
	}
	reference := pts[len(pts)-1].Time

	var comparisons []PeriodComparison
	for _, w := range comparativeWindows {
		if len(pts) < w.minPoints {
			continue
		}

		windowStart := reference.AddDate(0, 0, -w.days)
		previousStart := reference.AddDate(0, 0, -2*w.days)

		current := valuesBetween(pts, windowStart, reference)
		previous := valuesBetween(pts, previousStart, windowStart)
		if len(current) == 0 || len(previous) == 0 {
			continue
		}

		currentAvg := analytics.Mean(current)
		previousAvg := analytics.Mean(previous)
		change := currentAvg - previousAvg

		comparison := PeriodComparison{
			WindowDays:      w.days,
			CurrentAverage:  currentAvg,
			PreviousAverage: previousAvg,
			Change:          change,
		}
		if previousAvg != 0 {
			comparison.ChangePercent = change / previousAvg * 100
		}

		switch {
		case change > 0:
			comparison.Direction = TrendImproving
		case change < 0:
			comparison.Direction = TrendDeclining
		default:
			comparison.Direction = TrendStable
		}

		pct := comparison.ChangePercent
		if pct < 0 {
			pct = -pct
		}
		if pct > significantChangePercent {
			comparison.Significance = "SIGNIFICANT"
		} else {
			comparison.Significance = "MINOR"
		}

		comparisons = append(comparisons, comparison)
	}
	return comparisons
}

// valuesBetween collects values with timestamps in (start, end]. Points are
// sorted ascending so the scan could early-exit, but windows are short enough
// that a linear pass keeps this simple.
func valuesBetween(pts []Point, start, end time.Time) []float64 {
	var values []float64
	for _, p := range pts {
		if p.Time.After(start) && !p.Time.After(end) {
			values = append(values, p.Value)
		}
	}
	return values
}
