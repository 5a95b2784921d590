package classifier

import "errors"

var (
	// ErrWeightLength indicates a feature vector and weight vector of
	// different length.
	ErrWeightLength = errors.New("classifier: feature and weight lengths differ")

	// ErrMissingParameter indicates Inputs lacks a required grid.
	ErrMissingParameter = errors.New("classifier: missing input parameter")

	// ErrDimensionMismatch indicates input grids of unequal dimensions.
	ErrDimensionMismatch = errors.New("classifier: input grids differ in dimensions")

	// ErrUnknownKind indicates a kind with no registered classifiers.
	ErrUnknownKind = errors.New("classifier: unknown kind")

	// ErrUnknownClassifier indicates a name not registered for a kind.
	ErrUnknownClassifier = errors.New("classifier: unknown classifier")

	// ErrEmptyRegion indicates a region of interest with no cells on the grid.
	ErrEmptyRegion = errors.New("classifier: region of interest is empty")

	// ErrNoSamples indicates Evaluate was given no samples.
	ErrNoSamples = errors.New("classifier: no samples")
)
