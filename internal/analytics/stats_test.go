package analytics

import (
	"math"
	"testing"
)

func TestLinearRegressionPerfectLine(t *testing.T) {
	values := []float64{2, 4, 6, 8, 10}
	fit := LinearRegression(values)

	if math.Abs(fit.Slope-2) > 1e-9 {
		t.Errorf("slope = %v, want 2", fit.Slope)
	}
	if math.Abs(fit.Intercept-2) > 1e-9 {
		t.Errorf("intercept = %v, want 2", fit.Intercept)
	}
	if math.Abs(fit.RSquared-1) > 1e-9 {
		t.Errorf("r-squared = %v, want 1", fit.RSquared)
	}
}

func TestLinearRegressionFlat(t *testing.T) {
	fit := LinearRegression([]float64{5, 5, 5, 5})
	if fit.Slope != 0 {
		t.Errorf("slope = %v, want 0", fit.Slope)
	}
}

func TestLinearRegressionDegenerate(t *testing.T) {
	if fit := LinearRegression([]float64{7}); fit.Slope != 0 {
		t.Errorf("single point slope = %v, want 0", fit.Slope)
	}
	if fit := LinearRegression(nil); fit.Slope != 0 {
		t.Errorf("empty slope = %v, want 0", fit.Slope)
	}
}

func TestPercentileIndex(t *testing.T) {
	sorted := []float64{1, 2, 3, 4, 5, 100}

	tests := []struct {
		p    float64
		want float64
	}{
		{0.25, 2},   // floor(6 * 0.25) = 1
		{0.75, 5},   // floor(6 * 0.75) = 4
		{0.5, 4},    // floor(6 * 0.5) = 3
		{0, 1},      // first element
		{1, 100},    // clamped to last element
		{0.99, 100}, // floor(5.94) = 5
	}
	for _, tt := range tests {
		if got := PercentileIndex(sorted, tt.p); got != tt.want {
			t.Errorf("PercentileIndex(p=%v) = %v, want %v", tt.p, got, tt.want)
		}
	}
}

func TestMeanAndStdDev(t *testing.T) {
	values := []float64{2, 4, 4, 4, 5, 5, 7, 9}

	if got := Mean(values); got != 5 {
		t.Errorf("mean = %v, want 5", got)
	}
	// population standard deviation
	if got := StdDev(values); math.Abs(got-2) > 1e-9 {
		t.Errorf("stddev = %v, want 2", got)
	}

	if got := StdDev([]float64{42}); got != 0 {
		t.Errorf("single point stddev = %v, want 0", got)
	}
	if got := Mean(nil); got != 0 {
		t.Errorf("empty mean = %v, want 0", got)
	}
}
