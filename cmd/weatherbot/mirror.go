package main

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/rocketman768/GliderWeatherBot/classifier"
	"github.com/rocketman768/GliderWeatherBot/internal/datasource"
	"github.com/rocketman768/GliderWeatherBot/raspdata"
)

func newMirrorCmd(a *app) *cobra.Command {
	var (
		kind   string
		day    int
		out    string
		binary bool
		times  []int
		params []string
	)
	cmd := &cobra.Command{
		Use:   "mirror",
		Short: "Download one forecast day of a RASP site into a local archive",
		Long: `Fetches every parameter at every local time from the kind's RASP site
and stores it under OUT/<kind>/OUT+<day>, the layout classify reads when
source.archive_dir points at OUT. Missing files are logged and skipped.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ks, err := parseKinds([]string{kind})
			if err != nil {
				return err
			}
			sec, err := a.cfg.For(ks[0])
			if err != nil {
				return err
			}
			if len(times) == 0 {
				times = sec.Times
			}

			src := datasource.NewWeb(sec.BaseURL, day, a.cfg.Source.Timeout, a.cfg.Source.RequestsPerSecond)
			dir := filepath.Join(out, kind, fmt.Sprintf("OUT+%d", day))
			log := a.logger.With("url", sec.BaseURL, "day_offset", day, "dir", dir)

			stats, err := datasource.Mirror(cmd.Context(), src, dir, params, times, datasource.MirrorOptions{
				Binary:  binary,
				Workers: a.cfg.Source.Workers,
				Logger:  log,
			})
			a.metrics.FilesMirrored.WithLabelValues("written").Add(float64(stats.Written))
			a.metrics.FilesMirrored.WithLabelValues("missing").Add(float64(stats.Missing))
			if err != nil {
				return err
			}
			log.Info("mirror complete", "written", stats.Written, "missing", stats.Missing)

			if a.cfg.MetricsFile != "" {
				return a.metrics.WriteTextfile(a.cfg.MetricsFile)
			}

			return nil
		},
	}
	cmd.Flags().StringVarP(&kind, "kind", "k", string(classifier.KindWave), "which configured site to mirror (xc, wave, local)")
	cmd.Flags().IntVarP(&day, "day", "d", 0, "offset in days from today")
	cmd.Flags().StringVarP(&out, "output-dir", "o", ".", "archive root")
	cmd.Flags().BoolVarP(&binary, "binary", "b", false, "store data files as PGZ")
	cmd.Flags().IntSliceVarP(&times, "times", "t", nil, "local times to fetch; the kind's configured times when empty")
	cmd.Flags().StringSliceVarP(&params, "params", "p", raspdata.Parameters, "RASP parameters to fetch")

	return cmd
}
