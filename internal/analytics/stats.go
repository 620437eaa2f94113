// Package analytics provides statistical utilities shared by the velocity
// forecasting and time-series analysis engines.
package analytics

import "math"

// Mean calculates the arithmetic mean of a slice of values
func Mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	sum := 0.0
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

// StdDev calculates the population standard deviation of a slice of values
func StdDev(values []float64) float64 {
	if len(values) < 2 {
		return 0
	}
	mean := Mean(values)
	sumSq := 0.0
	for _, v := range values {
		diff := v - mean
		sumSq += diff * diff
	}
	return math.Sqrt(sumSq / float64(len(values)))
}

// Regression holds the result of an ordinary least squares fit over values
// indexed 0..n-1.
type Regression struct {
	Slope     float64
	Intercept float64
	RSquared  float64
}

// LinearRegression fits y = intercept + slope*x over the values with x as
// the element index. Returns a zero Regression for fewer than 2 points.
func LinearRegression(values []float64) Regression {
	n := float64(len(values))
	if len(values) < 2 {
		return Regression{}
	}

	sumX := 0.0
	sumY := 0.0
	sumXY := 0.0
	sumX2 := 0.0
	for i, v := range values {
		x := float64(i)
		sumX += x
		sumY += v
		sumXY += x * v
		sumX2 += x * x
	}

	denominator := n*sumX2 - sumX*sumX
	if denominator == 0 {
		return Regression{}
	}

	slope := (n*sumXY - sumX*sumY) / denominator
	intercept := (sumY - slope*sumX) / n

	// R-squared from residual and total sums of squares
	meanY := sumY / n
	ssRes := 0.0
	ssTot := 0.0
	for i, v := range values {
		fitted := intercept + slope*float64(i)
		ssRes += (v - fitted) * (v - fitted)
		ssTot += (v - meanY) * (v - meanY)
	}

	rSquared := 0.0
	if ssTot > 0 {
		rSquared = 1 - ssRes/ssTot
		if rSquared < 0 {
			rSquared = 0
		}
	}

	return Regression{Slope: slope, Intercept: intercept, RSquared: rSquared}
}

// PercentileIndex reads the p-th percentile of sorted data by index,
// floor(n*p), clamped to the last element. p is between 0 and 1.
func PercentileIndex(sorted []float64, p float64) float64 {
	if len(sorted) == 0 {
		return 0
	}
	idx := int(float64(len(sorted)) * p)
	if idx >= len(sorted) {
		idx = len(sorted) - 1
	}
	if idx < 0 {
		idx = 0
	}
	return sorted[idx]
}
