package forecast

import (
	"time"

	"github.com/rocketman768/GliderWeatherBot/classifier"
)

// Scores in [-UncertainBand, UncertainBand] are close to the decision
// boundary.
const UncertainBand = 1.0

// DaySummary aggregates the verdicts of one kind on one day.
type DaySummary struct {
	Kind      classifier.Kind
	Date      time.Time
	DayOffset int
	// Positive is true when any slice of the day is positive.
	Positive  bool
	BestScore float64
	BestTime  int
	// Uncertain is true when any slice scored near the boundary.
	Uncertain bool
	Slices    int
}

type dayKey struct {
	kind classifier.Kind
	day  int
}

// Summarize groups verdicts by kind and day, in order of first appearance.
func Summarize(verdicts []Verdict) []DaySummary {
	var out []DaySummary
	idx := map[dayKey]int{}
	for _, v := range verdicts {
		k := dayKey{v.Kind, v.DayOffset}
		i, ok := idx[k]
		if !ok {
			i = len(out)
			idx[k] = i
			out = append(out, DaySummary{
				Kind:      v.Kind,
				Date:      v.Date,
				DayOffset: v.DayOffset,
				BestScore: v.Score,
				BestTime:  v.Time,
			})
		}
		s := &out[i]
		s.Slices++
		s.Positive = s.Positive || v.Positive
		s.Uncertain = s.Uncertain || (v.Score >= -UncertainBand && v.Score <= UncertainBand)
		if v.Score > s.BestScore {
			s.BestScore, s.BestTime = v.Score, v.Time
		}
	}

	return out
}

// PositiveDays returns the dates of kind with a positive summary.
func PositiveDays(summaries []DaySummary, kind classifier.Kind) []time.Time {
	var out []time.Time
	for _, s := range summaries {
		if s.Kind == kind && s.Positive {
			out = append(out, s.Date)
		}
	}

	return out
}
