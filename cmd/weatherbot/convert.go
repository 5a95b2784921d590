package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/rocketman768/GliderWeatherBot/analytics"
	"github.com/rocketman768/GliderWeatherBot/pgz"
	"github.com/rocketman768/GliderWeatherBot/raspdata"
)

func newConvertCmd(a *app) *cobra.Command {
	var (
		headerLines int
		remove      bool
	)
	cmd := &cobra.Command{
		Use:   "convert FILE...",
		Short: "Re-encode RASP data files as PGZ",
		Long: `Writes FILE.pgz next to every text FILE. Files that are already PGZ are
decoded and summarised only.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, name := range args {
				data, err := os.ReadFile(name)
				if err != nil {
					return err
				}
				g, err := raspdata.Parse(data, raspdata.WithHeaderLines(headerLines))
				if err != nil {
					return fmt.Errorf("%s: %w", name, err)
				}
				lo, hi, err := analytics.MinMax(g)
				if err != nil {
					a.logger.Warn("grid has no valid samples", "file", name, "error", err)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s %dx%d min %.0f max %.0f\n", name, g.Width(), g.Height(), lo, hi)

				if pgz.IsPGZ(data) {
					continue
				}
				out, err := pgz.Encode(g)
				if err != nil {
					return fmt.Errorf("%s: %w", name, err)
				}
				target := name + pgz.Ext
				if err := os.WriteFile(target, out, 0o644); err != nil {
					return err
				}
				a.logger.Debug("converted", "from", name, "to", target, "bytes_in", len(data), "bytes_out", len(out))
				if remove {
					if err := os.Remove(name); err != nil {
						return err
					}
				}
			}

			return nil
		},
	}
	cmd.Flags().IntVar(&headerLines, "header-lines", raspdata.ProviderHeaderLines, "lines preceding the data rows in text files")
	cmd.Flags().BoolVar(&remove, "remove", false, "delete each text file after writing its PGZ copy")

	return cmd
}
