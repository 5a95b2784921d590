package main

import (
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"golang.org/x/time/rate"

	"github.com/rocketman768/GliderWeatherBot/classifier"
	"github.com/rocketman768/GliderWeatherBot/internal/config"
	"github.com/rocketman768/GliderWeatherBot/internal/datasource"
	"github.com/rocketman768/GliderWeatherBot/internal/forecast"
	"github.com/rocketman768/GliderWeatherBot/internal/observability"
)

// app carries the state every subcommand shares once the root has loaded
// the configuration.
type app struct {
	configPath string

	cfg     *config.Config
	logger  *slog.Logger
	metrics *observability.Metrics
}

func newRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:           "weatherbot",
		Short:         "Classify RASP soaring forecasts",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.load(cmd)
		},
	}
	root.PersistentFlags().StringVarP(&a.configPath, "config", "f", "", "YAML configuration file (defaults and environment are used when empty)")

	root.AddCommand(
		newClassifyCmd(a),
		newPathCmd(a),
		newConvertCmd(a),
		newMirrorCmd(a),
		newEvaluateCmd(a),
	)

	return root
}

func (a *app) load(cmd *cobra.Command) error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	a.cfg = cfg
	a.logger = observability.NewLoggerTo(cmd.ErrOrStderr(), cfg.LogLevel, cfg.LogFormat)
	a.metrics = observability.NewMetrics(prometheus.NewRegistry())

	return nil
}

// classifier builds the configured classifier of kind.
func (a *app) classifier(kind classifier.Kind) (classifier.Classifier, *config.Classifier, error) {
	sec, err := a.cfg.For(kind)
	if err != nil {
		return nil, nil, err
	}
	c, err := classifier.New(kind, sec.Name, sec.Params())
	if err != nil {
		return nil, nil, err
	}

	return c, sec, nil
}

// sources returns the factory the forecast runner reads through. With an
// archive directory set, day n of kind k lives in <dir>/<k>/OUT+<n>;
// otherwise the kind's RASP site is fetched, all days sharing one request
// limiter.
func (a *app) sources() forecast.SourceFactory {
	src := a.cfg.Source
	if src.ArchiveDir != "" {
		return func(kind classifier.Kind, day int) datasource.Source {
			return datasource.Archive{Dir: filepath.Join(src.ArchiveDir, string(kind), fmt.Sprintf("OUT+%d", day))}
		}
	}

	var limiter *rate.Limiter
	if src.RequestsPerSecond > 0 {
		limiter = rate.NewLimiter(rate.Limit(src.RequestsPerSecond), 1)
	}

	urls := map[classifier.Kind]string{
		classifier.KindXC:    a.cfg.XC.BaseURL,
		classifier.KindWave:  a.cfg.Wave.BaseURL,
		classifier.KindLocal: a.cfg.Local.BaseURL,
	}

	return func(kind classifier.Kind, day int) datasource.Source {
		w := datasource.NewWeb(urls[kind], day, src.Timeout, 0)
		w.Limiter = limiter

		return w
	}
}

func parseKinds(names []string) ([]classifier.Kind, error) {
	if len(names) == 0 {
		return nil, nil
	}
	known := make(map[classifier.Kind]bool)
	for _, k := range classifier.Kinds() {
		known[k] = true
	}
	out := make([]classifier.Kind, 0, len(names))
	for _, n := range names {
		k := classifier.Kind(n)
		if !known[k] {
			return nil, fmt.Errorf("%w: %q", classifier.ErrUnknownKind, n)
		}
		out = append(out, k)
	}

	return out, nil
}
