package velocity

import (
	"context"
)

// Scenario describes a hypothetical change to weekly throughput
type Scenario struct {
	Name string `json:"name"`
	// VelocityMultiplier scales each sample; zero means unchanged (1.0)
	VelocityMultiplier float64 `json:"velocity_multiplier"`
	// AddedCapacity is added to each weekly sample after scaling
	AddedCapacity float64 `json:"added_capacity"`
}

// ScenarioForecast pairs a scenario with its forecast and the weeks saved
// relative to the unmodified baseline.
type ScenarioForecast struct {
	Scenario   Scenario  `json:"scenario"`
	Forecast   *Forecast `json:"forecast"`
	WeeksSaved float64   `json:"weeks_saved"`
}

// PerformWhatIfAnalysis forecasts each scenario against a transformed copy of
// the velocity series. The stored series is never mutated, so concurrent
// callers always observe the same baseline.
func (f *Forecaster) PerformWhatIfAnalysis(ctx context.Context, remainingWork int, scenarios []Scenario) ([]ScenarioForecast, error) {
	baseline, err := f.PredictDeliveryDate(ctx, remainingWork, ForecastOptions{})
	if err != nil {
		return nil, err
	}

	results := make([]ScenarioForecast, 0, len(scenarios))
	for _, s := range scenarios {
		derived := f.withSeries(applyScenario(f.weeks, s))
		forecast, err := derived.PredictDeliveryDate(ctx, remainingWork, ForecastOptions{})
		if err != nil {
			return nil, err
		}
		results = append(results, ScenarioForecast{
			Scenario:   s,
			Forecast:   forecast,
			WeeksSaved: baseline.WeeksToComplete.Realistic - forecast.WeeksToComplete.Realistic,
		})
	}

	return results, nil
}

// applyScenario produces a new series; the input is left untouched
func applyScenario(weeks []float64, s Scenario) []float64 {
	multiplier := s.VelocityMultiplier
	if multiplier <= 0 {
		multiplier = 1.0
	}
	out := make([]float64, len(weeks))
	for i, w := range weeks {
		v := w*multiplier + s.AddedCapacity
		if v < 0 {
			v = 0
		}
		out[i] = v
	}
	return out
}
