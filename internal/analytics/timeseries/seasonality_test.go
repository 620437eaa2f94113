package timeseries

import (
	"testing"
)

func TestSeasonalityFlatSeries(t *testing.T) {
	pts := dailyPoints("m", testStart, constantValues(20, 7))
	analysis := analyzeSeasonality(pts)

	if analysis.HasSeasonality {
		t.Error("flat series must not report seasonality")
	}
	if analysis.Weekly.Confidence != 0 {
		t.Errorf("weekly confidence = %v, want 0", analysis.Weekly.Confidence)
	}
	if analysis.Classification != "NONE" {
		t.Errorf("classification = %s, want NONE", analysis.Classification)
	}
}

func TestSeasonalityWeeklyPattern(t *testing.T) {
	// weekends run much hotter than weekdays
	values := make([]float64, 28)
	for i := range values {
		day := testStart.AddDate(0, 0, i).Weekday()
		if day == 0 || day == 6 {
			values[i] = 30
		} else {
			values[i] = 10
		}
	}
	pts := dailyPoints("m", testStart, values)

	analysis := analyzeSeasonality(pts)
	if !analysis.Weekly.Detected {
		t.Fatal("expected weekly seasonality")
	}
	if !analysis.HasSeasonality || analysis.Classification != "DETECTED" {
		t.Errorf("expected DETECTED classification, got %s", analysis.Classification)
	}
	if analysis.Weekly.Confidence <= 0 || analysis.Weekly.Confidence > 1 {
		t.Errorf("confidence %v out of range (0, 1]", analysis.Weekly.Confidence)
	}
	if analysis.Monthly.Detected {
		t.Error("28 points must not trigger the monthly detector")
	}
}

func TestSeasonalityMonthlyPattern(t *testing.T) {
	// 180 daily points spanning six months with a strong per-month level shift
	values := make([]float64, 180)
	for i := range values {
		month := int(testStart.AddDate(0, 0, i).Month())
		values[i] = float64(month * 10)
	}
	pts := dailyPoints("m", testStart, values)

	analysis := analyzeSeasonality(pts)
	if !analysis.Monthly.Detected {
		t.Error("expected monthly seasonality")
	}
}

func TestSeasonalityInsufficientData(t *testing.T) {
	pts := dailyPoints("m", testStart, constantValues(10, 3))
	analysis := analyzeSeasonality(pts)

	if analysis.Classification != ClassificationInsufficientData {
		t.Errorf("classification = %s, want %s", analysis.Classification, ClassificationInsufficientData)
	}
}
