// Package velocity converts historical completion records into a weekly
// throughput distribution and produces probabilistic delivery forecasts
// via Monte Carlo simulation.
package velocity

import (
	"errors"
	"sort"
	"time"

	"github.com/flowpulse/flowpulse/internal/analytics"
)

// ErrNoHistory is returned when forecasting is requested with an empty
// velocity series. Callers are expected to fall back to a default scenario.
var ErrNoHistory = errors.New("no velocity history available")

const (
	// DefaultTrials is the number of Monte Carlo trials per forecast
	DefaultTrials = 10000
	// DefaultHorizonWeeks caps each trial to guarantee termination
	DefaultHorizonWeeks = 52
	// DefaultHistoryWeeks is how many trailing ISO weeks feed the series
	DefaultHistoryWeeks = 12
	// DefaultConfidence is the confidence level used when none is given
	DefaultConfidence = 0.85

	// minWeeklySample clamps sampled throughput to avoid stalled trials
	minWeeklySample = 0.1
)

// CompletedItem represents a single completed work record
type CompletedItem struct {
	ID            string
	ResolvedAt    time.Time
	LeadTimeDays  float64
	CycleTimeDays float64
	WorkItemType  string
}

// Config holds configuration for the forecaster
type Config struct {
	Trials       int     // Monte Carlo trials per forecast
	HorizonWeeks int     // hard cap on weeks per trial
	HistoryWeeks int     // trailing ISO weeks kept in the velocity series
	Workers      int     // simulation worker goroutines
	Seed         int64   // base RNG seed; 0 seeds from the clock
	Confidence   float64 // percentile for the estimated date when a call provides none
}

// DefaultConfig returns default forecaster configuration
func DefaultConfig() Config {
	return Config{
		Trials:       DefaultTrials,
		HorizonWeeks: DefaultHorizonWeeks,
		HistoryWeeks: DefaultHistoryWeeks,
		Workers:      4,
		Confidence:   DefaultConfidence,
	}
}

// Forecaster holds an immutable velocity snapshot built by Initialize.
// All query methods are pure functions of that snapshot.
type Forecaster struct {
	cfg Config
	now func() time.Time

	weeks      []float64 // completed items per ISO week, chronological
	leadTimes  []float64
	cycleTimes []float64
}

// NewForecaster creates a forecaster with the given configuration and clock.
// A nil clock falls back to time.Now.
func NewForecaster(cfg Config, now func() time.Time) *Forecaster {
	if cfg.Trials <= 0 {
		cfg.Trials = DefaultTrials
	}
	if cfg.HorizonWeeks <= 0 {
		cfg.HorizonWeeks = DefaultHorizonWeeks
	}
	if cfg.HistoryWeeks <= 0 {
		cfg.HistoryWeeks = DefaultHistoryWeeks
	}
	if cfg.Workers <= 0 {
		cfg.Workers = 4
	}
	if cfg.Confidence <= 0 || cfg.Confidence >= 1 {
		cfg.Confidence = DefaultConfidence
	}
	if now == nil {
		now = time.Now
	}
	return &Forecaster{cfg: cfg, now: now}
}

type isoWeek struct {
	year int
	week int
}

// Initialize rebuilds the velocity snapshot from completion records.
// Records resolved in the future are dropped; weeks with no completions
// are absent from the series rather than zero-filled.
func (f *Forecaster) Initialize(items []CompletedItem) {
	current := f.now()
	counts := make(map[isoWeek]float64)
	var leadTimes, cycleTimes []float64

	for _, item := range items {
		if item.ResolvedAt.IsZero() || item.ResolvedAt.After(current) {
			continue
		}
		year, week := item.ResolvedAt.ISOWeek()
		counts[isoWeek{year: year, week: week}]++

		if item.LeadTimeDays > 0 {
			leadTimes = append(leadTimes, item.LeadTimeDays)
		}
		if item.CycleTimeDays > 0 {
			cycleTimes = append(cycleTimes, item.CycleTimeDays)
		}
	}

	keys := make([]isoWeek, 0, len(counts))
	for k := range counts {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].year != keys[j].year {
			return keys[i].year < keys[j].year
		}
		return keys[i].week < keys[j].week
	})

	if len(keys) > f.cfg.HistoryWeeks {
		keys = keys[len(keys)-f.cfg.HistoryWeeks:]
	}

	weeks := make([]float64, len(keys))
	for i, k := range keys {
		weeks[i] = counts[k]
	}

	f.weeks = weeks
	f.leadTimes = leadTimes
	f.cycleTimes = cycleTimes
}

// WeeklyVelocity returns a copy of the velocity series
func (f *Forecaster) WeeklyVelocity() []float64 {
	out := make([]float64, len(f.weeks))
	copy(out, f.weeks)
	return out
}

// MeanVelocity returns the mean of the velocity series
func (f *Forecaster) MeanVelocity() float64 {
	return analytics.Mean(f.weeks)
}

// LeadTimes returns a copy of the positive lead times extracted by Initialize
func (f *Forecaster) LeadTimes() []float64 {
	out := make([]float64, len(f.leadTimes))
	copy(out, f.leadTimes)
	return out
}

// CycleTimes returns a copy of the positive cycle times extracted by Initialize
func (f *Forecaster) CycleTimes() []float64 {
	out := make([]float64, len(f.cycleTimes))
	copy(out, f.cycleTimes)
	return out
}

// withSeries returns a forecaster sharing config and clock but holding a
// different velocity series. Used by what-if analysis to stay pure.
func (f *Forecaster) withSeries(weeks []float64) *Forecaster {
	return &Forecaster{
		cfg:        f.cfg,
		now:        f.now,
		weeks:      weeks,
		leadTimes:  f.leadTimes,
		cycleTimes: f.cycleTimes,
	}
}
