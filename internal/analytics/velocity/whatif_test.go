package velocity

import (
	"context"
	"testing"
)

func TestPerformWhatIfAnalysis_LeavesBaselineUntouched(t *testing.T) {
	f := seededForecaster([]int{5})
	before := f.WeeklyVelocity()

	_, err := f.PerformWhatIfAnalysis(context.Background(), 40, []Scenario{
		{Name: "double", VelocityMultiplier: 2.0},
	})
	if err != nil {
		t.Fatalf("PerformWhatIfAnalysis failed: %v", err)
	}

	after := f.WeeklyVelocity()
	for i := range before {
		if before[i] != after[i] {
			t.Fatalf("Velocity series mutated at index %d: %v -> %v", i, before[i], after[i])
		}
	}
}

func TestPerformWhatIfAnalysis_FasterScenarioSavesWeeks(t *testing.T) {
	f := seededForecaster([]int{5})
	results, err := f.PerformWhatIfAnalysis(context.Background(), 80, []Scenario{
		{Name: "double", VelocityMultiplier: 2.0},
		{Name: "extra-capacity", AddedCapacity: 5},
	})
	if err != nil {
		t.Fatalf("PerformWhatIfAnalysis failed: %v", err)
	}

	if len(results) != 2 {
		t.Fatalf("Expected 2 scenario results, got %d", len(results))
	}
	for _, r := range results {
		if r.WeeksSaved <= 0 {
			t.Errorf("Scenario %q: expected weeks saved > 0, got %v", r.Scenario.Name, r.WeeksSaved)
		}
	}
}

func TestPerformWhatIfAnalysis_NoHistory(t *testing.T) {
	f := NewForecaster(DefaultConfig(), testClock)
	_, err := f.PerformWhatIfAnalysis(context.Background(), 40, []Scenario{{Name: "noop"}})
	if err != ErrNoHistory {
		t.Errorf("Expected ErrNoHistory, got %v", err)
	}
}

func TestApplyScenario(t *testing.T) {
	weeks := []float64{4, 6, 8}

	tests := []struct {
		name     string
		scenario Scenario
		expected []float64
	}{
		{"default multiplier", Scenario{}, []float64{4, 6, 8}},
		{"scaled", Scenario{VelocityMultiplier: 0.5}, []float64{2, 3, 4}},
		{"additive", Scenario{AddedCapacity: 2}, []float64{6, 8, 10}},
		{"clamped at zero", Scenario{AddedCapacity: -10}, []float64{0, 0, 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := applyScenario(weeks, tt.scenario)
			for i := range tt.expected {
				if got[i] != tt.expected[i] {
					t.Errorf("Index %d: expected %v, got %v", i, tt.expected[i], got[i])
				}
			}
		})
	}
}
