// Package analytics reduces forecast fields to the scalar features consumed
// by the classifiers.
//
// Operators:
//
//   - AreaFraction: fraction of valid samples satisfying a predicate. The
//     denominator is the number of valid samples, not width×height.
//   - Integral:     sum of transformed values over every cell. Invalid
//     samples are NOT filtered; callers pre-filter inside the transform.
//   - MinMax:       extrema over valid samples.
//   - FeatureStats: per-column min, max, mean and population standard
//     deviation of a feature matrix, used to derive normalisation constants.
//   - Normalize:    z-score a raw feature vector.
//
// All functions are pure: they never mutate their inputs and keep no state.
//
// Errors:
//
//   - ErrEmptyGrid:         no valid samples (AreaFraction, MinMax).
//   - ErrNoFeatures:        FeatureStats called with no rows.
//   - ErrDimensionMismatch: ragged feature rows or mismatched vector lengths.
//   - ErrZeroScale:         Normalize with a zero standard deviation.
package analytics
