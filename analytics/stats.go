package analytics

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Stats holds per-feature summary statistics over a set of feature vectors.
// Std is the population standard deviation (divide by N).
type Stats struct {
	Min, Max, Mean, Std []float64
}

// FeatureStats summarises features column by column. Every row must have the
// same length as the first.
// Complexity: O(N×F).
func FeatureStats(features [][]float64) (*Stats, error) {
	if len(features) == 0 || len(features[0]) == 0 {
		return nil, ErrNoFeatures
	}
	n, f := len(features), len(features[0])
	for i, row := range features {
		if len(row) != f {
			return nil, fmt.Errorf("%w: row %d has %d features, want %d", ErrDimensionMismatch, i, len(row), f)
		}
	}

	s := &Stats{
		Min:  make([]float64, f),
		Max:  make([]float64, f),
		Mean: make([]float64, f),
		Std:  make([]float64, f),
	}
	column := make([]float64, n)
	for j := 0; j < f; j++ {
		for i := range features {
			column[i] = features[i][j]
		}
		s.Min[j] = floats.Min(column)
		s.Max[j] = floats.Max(column)
		s.Mean[j], s.Std[j] = stat.PopMeanStdDev(column, nil)
	}

	return s, nil
}

// Normalize returns (raw[i]-mean[i])/std[i] for every i.
func Normalize(raw, mean, std []float64) ([]float64, error) {
	if len(raw) != len(mean) || len(raw) != len(std) {
		return nil, fmt.Errorf("%w: raw=%d mean=%d std=%d", ErrDimensionMismatch, len(raw), len(mean), len(std))
	}
	out := make([]float64, len(raw))
	for i := range raw {
		if std[i] == 0 {
			return nil, fmt.Errorf("%w: feature %d", ErrZeroScale, i)
		}
		out[i] = (raw[i] - mean[i]) / std[i]
	}

	return out, nil
}
