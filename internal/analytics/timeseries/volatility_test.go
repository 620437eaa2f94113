package timeseries

import "testing"

func TestAnalyzeVolatility(t *testing.T) {
	tests := []struct {
		name   string
		values []float64
		want   string
	}{
		{"constant", []float64{5, 5, 5, 5}, "LOW"},
		{"mild", []float64{10, 11, 9, 10, 10.5}, "LOW"},
		{"moderate", []float64{10, 14, 8, 12, 10}, "MODERATE"},
		{"high", []float64{1, 10, 2, 20, 3}, "HIGH"},
		{"single point", []float64{5}, ClassificationInsufficientData},
		{"empty", nil, ClassificationInsufficientData},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := analyzeVolatility(tt.values)
			if got.Classification != tt.want {
				t.Errorf("classification = %s, want %s (coefficient %v)", got.Classification, tt.want, got.Coefficient)
			}
		})
	}
}

func TestAnalyzeVolatilityCoefficient(t *testing.T) {
	got := analyzeVolatility([]float64{5, 5, 5})
	if got.Coefficient != 0 || got.StdDev != 0 || got.Mean != 5 {
		t.Errorf("constant series stats = %+v", got)
	}
}
