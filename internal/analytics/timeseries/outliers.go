package timeseries

import (
	"sort"

	"github.com/flowpulse/flowpulse/internal/analytics"
)

const iqrMultiplier = 1.5

// OutlierType marks which IQR fence a point fell outside of
type OutlierType string

const (
	LowOutlier  OutlierType = "LOW_OUTLIER"
	HighOutlier OutlierType = "HIGH_OUTLIER"
)

// Outlier is a point outside the Tukey fences, with its distance to the
// nearer fence.
type Outlier struct {
	Point    Point       `json:"point"`
	Type     OutlierType `json:"type"`
	Distance float64     `json:"distance"`
}

// detectOutliers applies the IQR rule with 1.5x fences. Quartiles use the
// floor-index convention on the sorted values.
func detectOutliers(pts []Point) []Outlier {
	if len(pts) < 4 {
		return nil
	}

	sorted := make([]float64, len(pts))
	for i, p := range pts {
		sorted[i] = p.Value
	}
	sort.Float64s(sorted)

	q1 := analytics.PercentileIndex(sorted, 0.25)
	q3 := analytics.PercentileIndex(sorted, 0.75)
	iqr := q3 - q1
	lower := q1 - iqrMultiplier*iqr
	upper := q3 + iqrMultiplier*iqr

	var outliers []Outlier
	for _, p := range pts {
		switch {
		case p.Value < lower:
			outliers = append(outliers, Outlier{Point: p, Type: LowOutlier, Distance: lower - p.Value})
		case p.Value > upper:
			outliers = append(outliers, Outlier{Point: p, Type: HighOutlier, Distance: p.Value - upper})
		}
	}
	return outliers
}
