// Package forecast runs the classifiers over every forecast day and time
// slice of a RASP site and aggregates per-day verdicts.
package forecast

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"

	"github.com/rocketman768/GliderWeatherBot/classifier"
	"github.com/rocketman768/GliderWeatherBot/grid"
	"github.com/rocketman768/GliderWeatherBot/internal/datasource"
	"github.com/rocketman768/GliderWeatherBot/internal/observability"
	"github.com/rocketman768/GliderWeatherBot/pgz"
)

// SourceFactory returns the data source for a kind and a day offset from
// today.
type SourceFactory func(kind classifier.Kind, dayOffset int) datasource.Source

// Job is one classifier checked over Lookahead days at each local time.
type Job struct {
	Classifier classifier.Classifier
	Lookahead  int
	Times      []int
}

// Verdict is the outcome for one (day, time) slice.
type Verdict struct {
	Kind      classifier.Kind
	Name      string
	Date      time.Time
	DayOffset int
	Time      int
	Positive  bool
	Score     float64
	// PathCost is the XC route cost, zero for other kinds.
	PathCost float64
}

// Runner loads and classifies forecast slices. A slice that fails to load
// or classify is logged, counted and skipped.
type Runner struct {
	sources SourceFactory
	clock   clockwork.Clock
	logger  *slog.Logger
	metrics *observability.Metrics
	runID   string
}

// Option configures a Runner.
type Option func(*Runner)

// WithClock sets the clock used to date day offsets.
func WithClock(c clockwork.Clock) Option { return func(r *Runner) { r.clock = c } }

// WithLogger sets the logger.
func WithLogger(l *slog.Logger) Option { return func(r *Runner) { r.logger = l } }

// WithMetrics sets the metrics sink.
func WithMetrics(m *observability.Metrics) Option { return func(r *Runner) { r.metrics = m } }

// NewRunner returns a Runner reading through sources.
func NewRunner(sources SourceFactory, opts ...Option) *Runner {
	r := &Runner{
		sources: sources,
		clock:   clockwork.NewRealClock(),
		logger:  observability.Discard(),
		runID:   uuid.NewString(),
	}
	for _, opt := range opts {
		opt(r)
	}
	if r.metrics == nil {
		r.metrics = observability.NewMetricsForTesting()
	}
	r.logger = r.logger.With("run_id", r.runID)

	return r
}

// RunID identifies this runner in logs.
func (r *Runner) RunID() string { return r.runID }

// Today returns midnight of the current day on the runner's clock.
func (r *Runner) Today() time.Time {
	now := r.clock.Now()
	y, m, d := now.Date()

	return time.Date(y, m, d, 0, 0, 0, 0, now.Location())
}

// Run classifies every slice of every job. It returns early only when ctx
// is done.
func (r *Runner) Run(ctx context.Context, jobs []Job) ([]Verdict, error) {
	today := r.Today()
	var out []Verdict
	for _, job := range jobs {
		c := job.Classifier
		kind := string(c.Kind())
		for day := 0; day < job.Lookahead; day++ {
			src := r.sources(c.Kind(), day)
			date := today.AddDate(0, 0, day)
			for _, t := range job.Times {
				if err := ctx.Err(); err != nil {
					return out, err
				}
				v, err := r.slice(ctx, c, src, t)
				if err != nil {
					if ctxErr := ctx.Err(); ctxErr != nil {
						return out, ctxErr
					}
					reason := skipReason(err)
					r.metrics.SlicesSkipped.WithLabelValues(kind, reason).Inc()
					r.logger.Warn("skipping time slice",
						"kind", kind, "classifier", c.Name(),
						"date", date.Format(time.DateOnly), "day_offset", day, "time", t,
						"reason", reason, "error", err)
					continue
				}

				verdict := Verdict{
					Kind:      c.Kind(),
					Name:      c.Name(),
					Date:      date,
					DayOffset: day,
					Time:      t,
					Positive:  v.Positive,
					Score:     v.Score,
				}
				if v.Path != nil {
					verdict.PathCost = v.Path.Cost
					r.metrics.PathCost.Observe(v.Path.Cost)
				}
				outcome := "negative"
				if v.Positive {
					outcome = "positive"
				}
				r.metrics.Classifications.WithLabelValues(kind, outcome).Inc()
				r.metrics.Score.WithLabelValues(kind).Observe(v.Score)
				r.logger.Info("classified",
					"kind", kind, "classifier", c.Name(),
					"date", date.Format(time.DateOnly), "time", t,
					"positive", v.Positive, "score", v.Score)
				out = append(out, verdict)
			}
		}
	}

	return out, nil
}

// slice loads and classifies one forecast time.
func (r *Runner) slice(ctx context.Context, c classifier.Classifier, src datasource.Source, t int) (classifier.Verdict, error) {
	start := r.clock.Now()
	in, err := datasource.LoadInputs(ctx, src, c.RequiredParameters(), t)
	r.metrics.FetchDuration.WithLabelValues(sourceLabel(src)).Observe(r.clock.Since(start).Seconds())
	if err != nil {
		return classifier.Verdict{}, err
	}
	r.metrics.GridsLoaded.WithLabelValues(string(c.Kind())).Add(float64(len(in)))

	v, err := c.Classify(in)
	if err != nil {
		return classifier.Verdict{}, fmt.Errorf("%w: %w", errClassify, err)
	}

	return v, nil
}

var errClassify = errors.New("classify")

func sourceLabel(src datasource.Source) string {
	switch src.(type) {
	case datasource.Archive, *datasource.Archive:
		return "archive"
	case *datasource.Web:
		return "web"
	default:
		return "other"
	}
}

// skipReason maps a slice error to a metric label.
func skipReason(err error) string {
	switch {
	case errors.Is(err, datasource.ErrNotFound):
		return "not_found"
	case errors.Is(err, datasource.ErrHTTPStatus), errors.Is(err, datasource.ErrTooLarge):
		return "http"
	case errors.Is(err, pgz.ErrDecompression):
		return "decompression"
	case errors.Is(err, grid.ErrFormat):
		return "format"
	case errors.Is(err, errClassify):
		return "classify"
	default:
		return "other"
	}
}
