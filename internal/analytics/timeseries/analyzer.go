// Package timeseries produces a full statistical characterization of named
// numeric time series: moving averages, trend segmentation, seasonality,
// volatility, outliers, forecastability and period-over-period comparison.
package timeseries

import (
	"sort"
	"time"
)

// ClassificationInsufficientData marks a sub-analysis that did not meet its
// minimum point count. Callers must branch on this marker instead of reading
// the numeric fields.
const ClassificationInsufficientData = "INSUFFICIENT_DATA"

// TrendDirection classifies a slope or a period-over-period change
type TrendDirection string

const (
	TrendStable    TrendDirection = "STABLE"
	TrendImproving TrendDirection = "IMPROVING"
	TrendDeclining TrendDirection = "DECLINING"
)

// slopeThreshold separates STABLE from directional movement
const slopeThreshold = 0.1

// classifySlope maps a slope to a trend direction
func classifySlope(slope float64) TrendDirection {
	if slope >= slopeThreshold {
		return TrendImproving
	}
	if slope <= -slopeThreshold {
		return TrendDeclining
	}
	return TrendStable
}

// Point represents a single observation tagged with the metric it belongs to
type Point struct {
	Time   time.Time `json:"time"`
	Value  float64   `json:"value"`
	Metric string    `json:"metric"`
}

// Config holds analyzer configuration
type Config struct {
	// Windows are the moving-average windows in days
	Windows []int
}

// DefaultConfig returns default analyzer configuration
func DefaultConfig() Config {
	return Config{Windows: []int{7, 14, 30}}
}

// MetricAnalysis is the full analysis bundle for one metric. Once built it
// is immutable and safe for concurrent reads.
type MetricAnalysis struct {
	Metric             string                `json:"metric"`
	RawData            []Point               `json:"raw_data"`
	MovingAverages     []MovingAverageSeries `json:"moving_averages"`
	Trends             TrendAnalysis         `json:"trends"`
	Seasonality        SeasonalityAnalysis   `json:"seasonality"`
	Volatility         VolatilityAnalysis    `json:"volatility"`
	Outliers           []Outlier             `json:"outliers"`
	Forecastability    ForecastabilityScore  `json:"forecastability"`
	ComparativePeriods []PeriodComparison    `json:"comparative_periods"`
	Insights           []string              `json:"insights"`
}

// Analyzer partitions tagged points by metric and caches one analysis bundle
// per metric for the lifetime of the instance.
type Analyzer struct {
	cfg      Config
	analyses map[string]*MetricAnalysis
}

// NewAnalyzer creates an analyzer with the given configuration
func NewAnalyzer(cfg Config) *Analyzer {
	if len(cfg.Windows) == 0 {
		cfg.Windows = DefaultConfig().Windows
	}
	return &Analyzer{cfg: cfg, analyses: make(map[string]*MetricAnalysis)}
}

// Initialize partitions points by metric, sorts each partition by date and
// runs the full pipeline once per metric. The cache is replaced entirely;
// there is no incremental update.
func (a *Analyzer) Initialize(points []Point) {
	partitions := make(map[string][]Point)
	for _, p := range points {
		partitions[p.Metric] = append(partitions[p.Metric], p)
	}

	analyses := make(map[string]*MetricAnalysis, len(partitions))
	for metric, pts := range partitions {
		// Stable sort keeps input order for equal dates
		sort.SliceStable(pts, func(i, j int) bool {
			return pts[i].Time.Before(pts[j].Time)
		})
		analyses[metric] = analyzeMetric(metric, pts, a.cfg.Windows)
	}

	a.analyses = analyses
}

// Analysis returns the cached analysis for a metric
func (a *Analyzer) Analysis(metric string) (*MetricAnalysis, bool) {
	analysis, ok := a.analyses[metric]
	return analysis, ok
}

// Metrics returns the analyzed metric names in sorted order
func (a *Analyzer) Metrics() []string {
	names := make([]string, 0, len(a.analyses))
	for name := range a.analyses {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// analyzeMetric runs every sub-analysis over one sorted partition
func analyzeMetric(metric string, pts []Point, windows []int) *MetricAnalysis {
	analysis := &MetricAnalysis{
		Metric:             metric,
		RawData:            pts,
		MovingAverages:     computeMovingAverages(pts, windows),
		Trends:             analyzeTrend(pts),
		Seasonality:        analyzeSeasonality(pts),
		Volatility:         analyzeVolatility(values(pts)),
		Outliers:           detectOutliers(pts),
		ComparativePeriods: comparePeriods(pts),
	}
	analysis.Forecastability = scoreForecastability(
		len(pts), analysis.Trends, analysis.Volatility, analysis.Seasonality, len(analysis.Outliers))
	analysis.Insights = buildInsights(metric, analysis)
	return analysis
}

func values(pts []Point) []float64 {
	out := make([]float64, len(pts))
	for i, p := range pts {
		out[i] = p.Value
	}
	return out
}
