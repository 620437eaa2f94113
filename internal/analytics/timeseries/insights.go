package timeseries

import "fmt"

// buildInsights renders plain-text summaries from the completed analyses.
// Purely derivative; no new computation happens here.
func buildInsights(metric string, a *MetricAnalysis) []string {
	var insights []string

	if a.Trends.Direction == TrendImproving || a.Trends.Direction == TrendDeclining {
		insights = append(insights, fmt.Sprintf("%s shows a %s trend (slope %.2f, confidence %.0f%%)",
			metric, describeDirection(a.Trends.Direction), a.Trends.Slope, a.Trends.Confidence*100))
	}

	if a.Volatility.Classification == "HIGH" {
		insights = append(insights, fmt.Sprintf("%s is highly volatile (coefficient of variation %.2f); expect wide swings between periods",
			metric, a.Volatility.Coefficient))
	}

	if a.Seasonality.Weekly.Detected {
		insights = append(insights, fmt.Sprintf("%s has a weekly seasonal pattern (confidence %.0f%%)",
			metric, a.Seasonality.Weekly.Confidence*100))
	}
	if a.Seasonality.Monthly.Detected {
		insights = append(insights, fmt.Sprintf("%s has a monthly seasonal pattern (confidence %.0f%%)",
			metric, a.Seasonality.Monthly.Confidence*100))
	}

	if n := len(a.Outliers); n > 0 {
		insights = append(insights, fmt.Sprintf("%d outlier value(s) detected in %s; investigate before trusting averages", n, metric))
	}

	return insights
}

func describeDirection(d TrendDirection) string {
	switch d {
	case TrendImproving:
		return "rising"
	case TrendDeclining:
		return "falling"
	default:
		return "stable"
	}
}
