package classifier

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
)

// Linear is a thresholded linear model: score = feature·Weight + Bias.
type Linear struct {
	Weight    []float64
	Bias      float64
	Threshold float64
	// Inclusive selects score >= Threshold as positive instead of
	// score > Threshold.
	Inclusive bool
}

// Score returns feature·Weight + Bias.
// Returns ErrWeightLength when the lengths differ.
func (l Linear) Score(feature []float64) (float64, error) {
	if len(feature) != len(l.Weight) {
		return 0, fmt.Errorf("%w: feature=%d weight=%d", ErrWeightLength, len(feature), len(l.Weight))
	}

	return floats.Dot(feature, l.Weight) + l.Bias, nil
}

// Positive applies the threshold to score.
func (l Linear) Positive(score float64) bool {
	if l.Inclusive {
		return score >= l.Threshold
	}

	return score > l.Threshold
}

// Contribution returns feature[i]*Weight[i] for every i.
func (l Linear) Contribution(feature []float64) ([]float64, error) {
	if len(feature) != len(l.Weight) {
		return nil, fmt.Errorf("%w: feature=%d weight=%d", ErrWeightLength, len(feature), len(l.Weight))
	}
	out := make([]float64, len(feature))
	floats.MulTo(out, feature, l.Weight)

	return out, nil
}

// model is the shared Score/Classify plumbing. Concrete classifiers embed
// it and supply feature.
type model struct {
	name    string
	kind    Kind
	params  []string
	linear  Linear
	feature func(Inputs) ([]float64, error)
}

func (m *model) Name() string { return m.name }

func (m *model) Kind() Kind { return m.kind }

func (m *model) RequiredParameters() []string {
	return append([]string(nil), m.params...)
}

func (m *model) Model() Linear { return m.linear }

func (m *model) Feature(in Inputs) ([]float64, error) {
	return m.feature(in)
}

func (m *model) Score(in Inputs) (float64, error) {
	v, err := m.Classify(in)
	if err != nil {
		return 0, err
	}

	return v.Score, nil
}

func (m *model) Classify(in Inputs) (Verdict, error) {
	f, err := m.feature(in)
	if err != nil {
		return Verdict{}, fmt.Errorf("%s/%s feature: %w", m.kind, m.name, err)
	}
	s, err := m.linear.Score(f)
	if err != nil {
		return Verdict{}, err
	}

	return Verdict{Positive: m.linear.Positive(s), Score: s, Feature: f}, nil
}
