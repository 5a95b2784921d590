package classifier

import (
	"encoding/json"
	"fmt"
)

// DatasetEntry is one archived forecast directory and the local times in
// it that carry a label. On the wire it is the pair ["dir", [1400, 1500]].
type DatasetEntry struct {
	Dir   string
	Times []int
}

// UnmarshalJSON implements json.Unmarshaler.
func (e *DatasetEntry) UnmarshalJSON(b []byte) error {
	var pair []json.RawMessage
	if err := json.Unmarshal(b, &pair); err != nil {
		return fmt.Errorf("classifier: dataset entry: %w", err)
	}
	if len(pair) != 2 {
		return fmt.Errorf("classifier: dataset entry wants [dir, times], got %d elements", len(pair))
	}
	if err := json.Unmarshal(pair[0], &e.Dir); err != nil {
		return fmt.Errorf("classifier: dataset entry dir: %w", err)
	}
	if err := json.Unmarshal(pair[1], &e.Times); err != nil {
		return fmt.Errorf("classifier: dataset entry times: %w", err)
	}

	return nil
}

// MarshalJSON implements json.Marshaler.
func (e DatasetEntry) MarshalJSON() ([]byte, error) {
	times := e.Times
	if times == nil {
		times = []int{}
	}

	return json.Marshal([]any{e.Dir, times})
}

// Dataset is a labelled set of archived forecasts.
type Dataset struct {
	Positive []DatasetEntry `json:"positive"`
	Negative []DatasetEntry `json:"negative"`
}

// ParseDataset decodes a dataset JSON document.
func ParseDataset(data []byte) (*Dataset, error) {
	var d Dataset
	if err := json.Unmarshal(data, &d); err != nil {
		return nil, fmt.Errorf("classifier: dataset: %w", err)
	}

	return &d, nil
}

// Len returns the number of labelled time slices.
func (d *Dataset) Len() int {
	n := 0
	for _, e := range d.Positive {
		n += len(e.Times)
	}
	for _, e := range d.Negative {
		n += len(e.Times)
	}

	return n
}

// Sample is one labelled forecast time.
type Sample struct {
	Label    string
	Positive bool
	Inputs   Inputs
}

// Evaluation is a confusion matrix with precision and recall.
type Evaluation struct {
	TruePositive  int
	FalsePositive int
	TrueNegative  int
	FalseNegative int
	Precision     float64
	Recall        float64
	// Verdicts holds one entry per sample, in input order.
	Verdicts []Verdict
}

// Evaluate classifies every sample with c. A sample counts as predicted
// positive when its score reaches the model threshold (score >= threshold)
// for every kind, so a strict classifier's boundary score is a hit here.
// Precision and recall are 0 when there are no true positives.
func Evaluate(c Classifier, samples []Sample) (*Evaluation, error) {
	if len(samples) == 0 {
		return nil, ErrNoSamples
	}
	m := c.Model()
	m.Inclusive = true
	ev := &Evaluation{Verdicts: make([]Verdict, 0, len(samples))}
	for _, s := range samples {
		v, err := c.Classify(s.Inputs)
		if err != nil {
			return nil, fmt.Errorf("sample %s: %w", s.Label, err)
		}
		ev.Verdicts = append(ev.Verdicts, v)
		predicted := m.Positive(v.Score)
		switch {
		case s.Positive && predicted:
			ev.TruePositive++
		case s.Positive:
			ev.FalseNegative++
		case predicted:
			ev.FalsePositive++
		default:
			ev.TrueNegative++
		}
	}
	if ev.TruePositive > 0 {
		ev.Precision = float64(ev.TruePositive) / float64(ev.TruePositive+ev.FalsePositive)
		ev.Recall = float64(ev.TruePositive) / float64(ev.TruePositive+ev.FalseNegative)
	}

	return ev, nil
}
