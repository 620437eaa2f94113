package velocity

import (
	"context"
	"math"
	"testing"
	"time"
)

func seededForecaster(perWeek []int) *Forecaster {
	cfg := DefaultConfig()
	cfg.Seed = 42
	f := NewForecaster(cfg, testClock)
	f.Initialize(generateWeeklyItems(12, perWeek))
	return f
}

func TestPredictDeliveryDate_NoHistory(t *testing.T) {
	f := NewForecaster(DefaultConfig(), testClock)
	_, err := f.PredictDeliveryDate(context.Background(), 10, ForecastOptions{})
	if err != ErrNoHistory {
		t.Errorf("Expected ErrNoHistory, got %v", err)
	}
}

func TestPredictDeliveryDate_ConfiguredConfidence(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Seed = 42
	cfg.Confidence = 0.95
	f := NewForecaster(cfg, testClock)
	f.Initialize(generateWeeklyItems(12, []int{5}))

	forecast, err := f.PredictDeliveryDate(context.Background(), 40, ForecastOptions{})
	if err != nil {
		t.Fatalf("PredictDeliveryDate failed: %v", err)
	}
	if forecast.Confidence != 0.95 {
		t.Errorf("Expected configured confidence 0.95, got %v", forecast.Confidence)
	}

	forecast, err = f.PredictDeliveryDate(context.Background(), 40,
		ForecastOptions{ConfidenceLevel: 0.5})
	if err != nil {
		t.Fatalf("PredictDeliveryDate failed: %v", err)
	}
	if forecast.Confidence != 0.5 {
		t.Errorf("Expected call-level confidence 0.5, got %v", forecast.Confidence)
	}
}

func TestPredictDeliveryDate_InvalidRemainingWork(t *testing.T) {
	f := seededForecaster([]int{5})
	_, err := f.PredictDeliveryDate(context.Background(), 0, ForecastOptions{})
	if err == nil {
		t.Error("Expected error for non-positive remaining work")
	}
}

func TestPredictDeliveryDate_PercentileOrdering(t *testing.T) {
	f := seededForecaster([]int{7, 9, 8, 6, 10})
	forecast, err := f.PredictDeliveryDate(context.Background(), 80, ForecastOptions{})
	if err != nil {
		t.Fatalf("PredictDeliveryDate failed: %v", err)
	}

	w := forecast.WeeksToComplete
	if w.Optimistic > w.Realistic || w.Realistic > w.Pessimistic {
		t.Errorf("Expected optimistic <= realistic <= pessimistic, got %+v", w)
	}
	r := forecast.Range
	if r.Optimistic.After(r.Realistic) || r.Realistic.After(r.Pessimistic) {
		t.Errorf("Expected date range in ascending order, got %+v", r)
	}
}

func TestPredictDeliveryDate_ZeroVarianceConverges(t *testing.T) {
	f := seededForecaster([]int{5})
	forecast, err := f.PredictDeliveryDate(context.Background(), 40, ForecastOptions{})
	if err != nil {
		t.Fatalf("PredictDeliveryDate failed: %v", err)
	}

	// Constant 5/week and 40 remaining: every trial finishes in 8 weeks
	expected := 8.0
	w := forecast.WeeksToComplete
	for name, got := range map[string]float64{
		"optimistic":  w.Optimistic,
		"realistic":   w.Realistic,
		"pessimistic": w.Pessimistic,
	} {
		if math.Abs(got-expected) > 1 {
			t.Errorf("%s: expected ~%v weeks, got %v", name, expected, got)
		}
	}
}

func TestPredictDeliveryDate_StableSeriesLowRisk(t *testing.T) {
	f := seededForecaster([]int{8, 9, 8, 7, 8, 9, 7, 8})
	forecast, err := f.PredictDeliveryDate(context.Background(), 80, ForecastOptions{})
	if err != nil {
		t.Fatalf("PredictDeliveryDate failed: %v", err)
	}

	if forecast.RiskLevel != RiskLow {
		t.Errorf("Expected LOW risk for stable series, got %s", forecast.RiskLevel)
	}
	if forecast.VelocityTrend.Direction != TrendStable {
		t.Errorf("Expected STABLE trend, got %s", forecast.VelocityTrend.Direction)
	}
}

func TestPredictDeliveryDate_ImprovingTrend(t *testing.T) {
	f := seededForecaster([]int{2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13})
	forecast, err := f.PredictDeliveryDate(context.Background(), 40, ForecastOptions{})
	if err != nil {
		t.Fatalf("PredictDeliveryDate failed: %v", err)
	}
	if forecast.VelocityTrend.Direction != TrendImproving {
		t.Errorf("Expected IMPROVING trend, got %s", forecast.VelocityTrend.Direction)
	}
}

func TestPredictDeliveryDate_LowVelocityRecommendation(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Seed = 42
	f := NewForecaster(cfg, testClock)
	// A single completion across many weeks keeps mean velocity below 1
	f.Initialize([]CompletedItem{
		{ID: "a", ResolvedAt: fixedNow.AddDate(0, 0, -7)},
		{ID: "b", ResolvedAt: fixedNow.AddDate(0, 0, -70)},
	})

	forecast, err := f.PredictDeliveryDate(context.Background(), 10, ForecastOptions{})
	if err != nil {
		t.Fatalf("PredictDeliveryDate failed: %v", err)
	}
	if forecast.RiskLevel == "" || forecast.Recommendation == "" {
		t.Fatal("Expected populated forecast")
	}
}

func TestPredictDeliveryDate_DeterministicWithSeed(t *testing.T) {
	a := seededForecaster([]int{6, 8, 7})
	b := seededForecaster([]int{6, 8, 7})

	fa, err := a.PredictDeliveryDate(context.Background(), 50, ForecastOptions{})
	if err != nil {
		t.Fatalf("PredictDeliveryDate failed: %v", err)
	}
	fb, err := b.PredictDeliveryDate(context.Background(), 50, ForecastOptions{})
	if err != nil {
		t.Fatalf("PredictDeliveryDate failed: %v", err)
	}

	if fa.WeeksToComplete != fb.WeeksToComplete {
		t.Errorf("Expected identical outcomes for identical seeds: %+v vs %+v",
			fa.WeeksToComplete, fb.WeeksToComplete)
	}
}

func TestPredictDeliveryDate_UsesInjectedClock(t *testing.T) {
	f := seededForecaster([]int{5})
	forecast, err := f.PredictDeliveryDate(context.Background(), 40, ForecastOptions{})
	if err != nil {
		t.Fatalf("PredictDeliveryDate failed: %v", err)
	}

	expected := fixedNow.AddDate(0, 0, int(forecast.WeeksToComplete.Realistic)*7)
	if !forecast.Range.Realistic.Equal(expected) {
		t.Errorf("Expected realistic date %v, got %v", expected, forecast.Range.Realistic)
	}
}

func TestPredictDeliveryDate_Cancellation(t *testing.T) {
	f := seededForecaster([]int{5})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := f.PredictDeliveryDate(ctx, 40, ForecastOptions{})
	if err == nil {
		t.Error("Expected error from cancelled context")
	}
}

func TestClassifyRisk(t *testing.T) {
	tests := []struct {
		name     string
		p50, p85 float64
		expected RiskLevel
	}{
		{"no spread", 10, 10, RiskLow},
		{"moderate spread", 10, 12, RiskMedium},
		{"high spread", 10, 15, RiskHigh},
		{"zero median", 0, 5, RiskLow},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := classifyRisk(tt.p50, tt.p85); got != tt.expected {
				t.Errorf("classifyRisk(%v, %v) = %s, expected %s", tt.p50, tt.p85, got, tt.expected)
			}
		})
	}
}

func BenchmarkPredictDeliveryDate(b *testing.B) {
	cfg := DefaultConfig()
	cfg.Seed = 42
	f := NewForecaster(cfg, func() time.Time { return fixedNow })
	f.Initialize(generateWeeklyItems(12, []int{7, 9, 8}))

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = f.PredictDeliveryDate(context.Background(), 100, ForecastOptions{})
	}
}
