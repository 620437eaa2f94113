package timeseries

import (
	"time"

	"github.com/flowpulse/flowpulse/internal/analytics"
)

// CrossoverSignal tags a short-over-long moving average transition. The
// signal is descriptive output only, not a control signal.
type CrossoverSignal string

const (
	SignalBullish CrossoverSignal = "BULLISH" // short-term crosses above long-term
	SignalBearish CrossoverSignal = "BEARISH" // short-term crosses below long-term
)

// AveragedPoint is one point of a moving-average series
type AveragedPoint struct {
	Time  time.Time `json:"time"`
	Value float64   `json:"value"`
}

// Crossover records a short-vs-long average transition
type Crossover struct {
	Time   time.Time       `json:"time"`
	Signal CrossoverSignal `json:"signal"`
}

// MovingAverageSeries is the trailing calendar-window average of a metric at
// one window size, with its trend classification and crossover events.
type MovingAverageSeries struct {
	WindowDays int             `json:"window_days"`
	Points     []AveragedPoint `json:"points"`
	Trend      TrendDirection  `json:"trend"`
	Crossovers []Crossover     `json:"crossovers"`
}

// computeMovingAverages builds one series per requested window size
func computeMovingAverages(pts []Point, windows []int) []MovingAverageSeries {
	series := make([]MovingAverageSeries, 0, len(windows))
	for _, days := range windows {
		full := trailingAverage(pts, days)
		short := trailingAverage(pts, days/2)

		slope := analytics.LinearRegression(averagedValues(full)).Slope

		series = append(series, MovingAverageSeries{
			WindowDays: days,
			Points:     full,
			Trend:      classifySlope(slope),
			Crossovers: detectCrossovers(short, full),
		})
	}
	return series
}

// trailingAverage computes, for every point, the mean of all points whose
// date falls within [t - window, t] inclusive. This is a calendar-time
// window: dense stretches average over more samples than sparse ones.
func trailingAverage(pts []Point, windowDays int) []AveragedPoint {
	if windowDays < 1 {
		windowDays = 1
	}
	window := time.Duration(windowDays) * 24 * time.Hour

	out := make([]AveragedPoint, len(pts))
	start := 0
	for i, p := range pts {
		cutoff := p.Time.Add(-window)
		for start < i && pts[start].Time.Before(cutoff) {
			start++
		}

		sum := 0.0
		for j := start; j <= i; j++ {
			sum += pts[j].Value
		}
		out[i] = AveragedPoint{
			Time:  p.Time,
			Value: sum / float64(i-start+1),
		}
	}
	return out
}

// detectCrossovers compares the short average's trajectory against the long
// average and records each sign change of their difference.
func detectCrossovers(short, long []AveragedPoint) []Crossover {
	var crossovers []Crossover
	for i := 1; i < len(long) && i < len(short); i++ {
		prev := short[i-1].Value - long[i-1].Value
		cur := short[i].Value - long[i].Value

		if prev <= 0 && cur > 0 {
			crossovers = append(crossovers, Crossover{Time: long[i].Time, Signal: SignalBullish})
		} else if prev >= 0 && cur < 0 {
			crossovers = append(crossovers, Crossover{Time: long[i].Time, Signal: SignalBearish})
		}
	}
	return crossovers
}

func averagedValues(pts []AveragedPoint) []float64 {
	out := make([]float64, len(pts))
	for i, p := range pts {
		out[i] = p.Value
	}
	return out
}
