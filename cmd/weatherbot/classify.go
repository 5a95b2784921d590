package main

import (
	"fmt"
	"io"
	"slices"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/rocketman768/GliderWeatherBot/classifier"
	"github.com/rocketman768/GliderWeatherBot/internal/forecast"
)

func newClassifyCmd(a *app) *cobra.Command {
	var kinds []string
	cmd := &cobra.Command{
		Use:   "classify",
		Short: "Classify every configured forecast day and print a per-day summary",
		Long: `Runs each enabled classifier over its lookahead days and local times.
Slices that cannot be fetched or decoded are logged and skipped. A day is
positive when any of its time slices is positive.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			only, err := parseKinds(kinds)
			if err != nil {
				return err
			}

			jobs, err := a.jobs(only)
			if err != nil {
				return err
			}
			if len(jobs) == 0 {
				return fmt.Errorf("no classifier enabled")
			}

			runner := forecast.NewRunner(a.sources(),
				forecast.WithLogger(a.logger),
				forecast.WithMetrics(a.metrics),
			)
			verdicts, runErr := runner.Run(cmd.Context(), jobs)

			summaries := forecast.Summarize(verdicts)
			if err := writeSummaries(cmd.OutOrStdout(), summaries); err != nil {
				return err
			}
			for _, job := range jobs {
				kind := job.Classifier.Kind()
				var dates []string
				for _, d := range forecast.PositiveDays(summaries, kind) {
					dates = append(dates, d.Format(time.DateOnly))
				}
				a.logger.Info("positive days", "kind", string(kind), "dates", dates)
			}
			a.logger.Info("run complete",
				"run_id", runner.RunID(), "slices", len(verdicts), "days", len(summaries))

			if a.cfg.MetricsFile != "" {
				if err := a.metrics.WriteTextfile(a.cfg.MetricsFile); err != nil {
					return err
				}
			}

			return runErr
		},
	}
	cmd.Flags().StringSliceVarP(&kinds, "kind", "k", nil, "limit to these kinds (xc, wave, local); all enabled kinds when empty")

	return cmd
}

// jobs builds one job per enabled kind. A kind named in only is run even
// when disabled in the configuration.
func (a *app) jobs(only []classifier.Kind) ([]forecast.Job, error) {
	var jobs []forecast.Job
	for _, kind := range classifier.Kinds() {
		c, sec, err := a.classifier(kind)
		if err != nil {
			return nil, err
		}
		if len(only) > 0 {
			if !slices.Contains(only, kind) {
				continue
			}
		} else if !sec.Enabled {
			continue
		}
		jobs = append(jobs, forecast.Job{Classifier: c, Lookahead: sec.Lookahead, Times: sec.Times})
	}

	return jobs, nil
}

func writeSummaries(w io.Writer, summaries []forecast.DaySummary) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "KIND\tDATE\tDAY\tVERDICT\tBEST SCORE\tBEST TIME\tSLICES")
	for _, s := range summaries {
		verdict := "negative"
		if s.Positive {
			verdict = "positive"
		}
		if s.Uncertain {
			verdict += "?"
		}
		fmt.Fprintf(tw, "%s\t%s\t+%d\t%s\t%.3f\t%04d\t%d\n",
			s.Kind, s.Date.Format(time.DateOnly), s.DayOffset, verdict, s.BestScore, s.BestTime, s.Slices)
	}

	return tw.Flush()
}
