package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/rocketman768/GliderWeatherBot/analytics"
	"github.com/rocketman768/GliderWeatherBot/classifier"
	"github.com/rocketman768/GliderWeatherBot/internal/datasource"
)

func newEvaluateCmd(a *app) *cobra.Command {
	var (
		kind string
		root string
	)
	cmd := &cobra.Command{
		Use:   "evaluate DATASET.json",
		Short: "Score a labelled dataset of archived forecasts",
		Long: `DATASET.json holds "positive" and "negative" lists of [dir, [times]]
pairs. Each dir is resolved against --root. Prints per-feature statistics,
the confusion matrix, precision and recall of the configured model.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ks, err := parseKinds([]string{kind})
			if err != nil {
				return err
			}
			c, _, err := a.classifier(ks[0])
			if err != nil {
				return err
			}

			data, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}
			ds, err := classifier.ParseDataset(data)
			if err != nil {
				return err
			}
			samples, err := loadSamples(cmd.Context(), ds, root, c.RequiredParameters())
			if err != nil {
				return err
			}
			a.logger.Info("dataset loaded", "kind", kind, "classifier", c.Name(), "samples", len(samples))

			ev, err := classifier.Evaluate(c, samples)
			if err != nil {
				return err
			}

			return writeEvaluation(cmd.OutOrStdout(), c, samples, ev)
		},
	}
	cmd.Flags().StringVarP(&kind, "kind", "k", string(classifier.KindXC), "classifier kind (xc, wave, local)")
	cmd.Flags().StringVar(&root, "root", ".", "directory dataset entries are relative to")

	return cmd
}

func loadSamples(ctx context.Context, ds *classifier.Dataset, root string, params []string) ([]classifier.Sample, error) {
	samples := make([]classifier.Sample, 0, ds.Len())
	add := func(entries []classifier.DatasetEntry, positive bool) error {
		for _, e := range entries {
			src := datasource.Archive{Dir: filepath.Join(root, e.Dir)}
			for _, t := range e.Times {
				in, err := datasource.LoadInputs(ctx, src, params, t)
				if err != nil {
					return fmt.Errorf("%s: %w", e.Dir, err)
				}
				samples = append(samples, classifier.Sample{
					Label:    fmt.Sprintf("%s@%04d", e.Dir, t),
					Positive: positive,
					Inputs:   in,
				})
			}
		}

		return nil
	}
	if err := add(ds.Positive, true); err != nil {
		return nil, err
	}
	if err := add(ds.Negative, false); err != nil {
		return nil, err
	}

	return samples, nil
}

func writeEvaluation(w io.Writer, c classifier.Classifier, samples []classifier.Sample, ev *classifier.Evaluation) error {
	features := make([][]float64, 0, len(ev.Verdicts))
	for _, v := range ev.Verdicts {
		features = append(features, v.Feature)
	}
	stats, err := analytics.FeatureStats(features)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "Feature min: %v\n", stats.Min)
	fmt.Fprintf(w, "Feature max: %v\n", stats.Max)
	fmt.Fprintf(w, "Feature mean: %v\n", stats.Mean)
	fmt.Fprintf(w, "Feature std: %v\n", stats.Std)

	m := c.Model()
	m.Inclusive = true
	for i, v := range ev.Verdicts {
		s := samples[i]
		if s.Positive != m.Positive(v.Score) {
			fmt.Fprintf(w, "miss %s: labelled %t, score %.3f\n", s.Label, s.Positive, v.Score)
		}
	}
	fmt.Fprintf(w, "TP %d FP %d TN %d FN %d\n", ev.TruePositive, ev.FalsePositive, ev.TrueNegative, ev.FalseNegative)
	fmt.Fprintf(w, "Precision: %.3f\nRecall: %.3f\n", ev.Precision, ev.Recall)

	_, err = fmt.Fprintf(w, "Weight: %v\nBias: %v\nThreshold: %v\n", m.Weight, m.Bias, m.Threshold)

	return err
}
