package stats

import (
	"slices"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

func mean(values []float64) *float64 {
	if len(values) == 0 {
		return nil
	}
	m := stat.Mean(values, nil)
	return &m
}

// sampleStdDev uses n-1 in the denominator and needs at least two values.
func sampleStdDev(values []float64) *float64 {
	if len(values) < 2 {
		return nil
	}
	sd := stat.StdDev(values, nil)
	return &sd
}

// median averages the two middle values of an even-length sample.
func median(values []float64) *float64 {
	if len(values) == 0 {
		return nil
	}
	sorted := slices.Clone(values)
	slices.Sort(sorted)

	m := stat.Quantile(0.5, stat.Empirical, sorted, nil)
	if len(sorted)%2 == 0 {
		m = (m + sorted[len(sorted)/2]) / 2
	}
	return &m
}

func minOf(values []float64) *float64 {
	if len(values) == 0 {
		return nil
	}
	m := floats.Min(values)
	return &m
}

func maxOf(values []float64) *float64 {
	if len(values) == 0 {
		return nil
	}
	m := floats.Max(values)
	return &m
}
