package timeseries

import (
	"math"
	"testing"
)

func TestComparePeriodsImproving(t *testing.T) {
	// 28 daily points: trailing 7 days average 10, preceding 7 days average 8
	values := constantValues(28, 8)
	for i := 21; i < 28; i++ {
		values[i] = 10
	}
	pts := dailyPoints("m", testStart, values)

	comparisons := comparePeriods(pts)
	if len(comparisons) != 1 {
		t.Fatalf("expected only the 7-day comparison, got %d", len(comparisons))
	}

	c := comparisons[0]
	if c.WindowDays != 7 {
		t.Errorf("window = %d, want 7", c.WindowDays)
	}
	if c.CurrentAverage != 10 || c.PreviousAverage != 8 {
		t.Errorf("averages = %v / %v, want 10 / 8", c.CurrentAverage, c.PreviousAverage)
	}
	if math.Abs(c.ChangePercent-25) > 1e-9 {
		t.Errorf("change percent = %v, want 25", c.ChangePercent)
	}
	if c.Direction != TrendImproving {
		t.Errorf("direction = %s, want %s", c.Direction, TrendImproving)
	}
	if c.Significance != "SIGNIFICANT" {
		t.Errorf("significance = %s, want SIGNIFICANT", c.Significance)
	}
}

func TestComparePeriodsMinorDecline(t *testing.T) {
	values := constantValues(28, 10)
	for i := 21; i < 28; i++ {
		values[i] = 9.5
	}
	pts := dailyPoints("m", testStart, values)

	comparisons := comparePeriods(pts)
	if len(comparisons) != 1 {
		t.Fatalf("expected 1 comparison, got %d", len(comparisons))
	}
	if comparisons[0].Direction != TrendDeclining {
		t.Errorf("direction = %s, want %s", comparisons[0].Direction, TrendDeclining)
	}
	if comparisons[0].Significance != "MINOR" {
		t.Errorf("significance = %s, want MINOR", comparisons[0].Significance)
	}
}

func TestComparePeriodsWindowGating(t *testing.T) {
	pts := dailyPoints("m", testStart, constantValues(70, 5))
	comparisons := comparePeriods(pts)

	// 70 points passes the 7-day (>=14) and 30-day (>=60) gates, not 90-day
	if len(comparisons) != 2 {
		t.Fatalf("expected 2 comparisons, got %d", len(comparisons))
	}
	if comparisons[0].WindowDays != 7 || comparisons[1].WindowDays != 30 {
		t.Errorf("windows = %d, %d, want 7, 30", comparisons[0].WindowDays, comparisons[1].WindowDays)
	}
	for _, c := range comparisons {
		if c.Direction != TrendStable || c.Change != 0 {
			t.Errorf("flat series comparison not stable: %+v", c)
		}
	}
}

func TestComparePeriodsEmpty(t *testing.T) {
	if got := comparePeriods(nil); got != nil {
		t.Errorf("expected nil for empty input, got %+v", got)
	}
}
