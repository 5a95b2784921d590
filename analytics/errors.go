package analytics

import "errors"

var (
	// ErrEmptyGrid indicates a statistic was requested over zero valid samples.
	ErrEmptyGrid = errors.New("analytics: no valid samples")
	// ErrNoFeatures indicates FeatureStats received no feature vectors.
	ErrNoFeatures = errors.New("analytics: no feature vectors")
	// ErrDimensionMismatch indicates vectors of unequal length.
	ErrDimensionMismatch = errors.New("analytics: dimension mismatch")
	// ErrZeroScale indicates a zero standard deviation in Normalize.
	ErrZeroScale = errors.New("analytics: zero normalisation scale")
)
