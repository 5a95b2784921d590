package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/rocketman768/GliderWeatherBot/classifier"
	"github.com/rocketman768/GliderWeatherBot/internal/datasource"
)

func newPathCmd(a *app) *cobra.Command {
	var (
		dir       string
		localTime int
	)
	cmd := &cobra.Command{
		Use:   "path",
		Short: "Print the cheapest XC route through an archived forecast",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			c, _, err := a.classifier(classifier.KindXC)
			if err != nil {
				return err
			}
			xc, ok := c.(*classifier.XC)
			if !ok {
				return fmt.Errorf("xc classifier %q does not route", c.Name())
			}

			in, err := datasource.LoadInputs(cmd.Context(), datasource.Archive{Dir: dir}, xc.RequiredParameters(), localTime)
			if err != nil {
				return err
			}
			v, err := xc.Classify(in)
			if err != nil {
				return err
			}

			hcrit := in[classifier.ParamHcrit]
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "STEP\tX\tY\tHCRIT")
			for i, n := range v.Path.Nodes {
				fmt.Fprintf(tw, "%d\t%d\t%d\t%.0f\n", i, n.X, n.Y, hcrit.Value(n.X, n.Y))
			}
			if err := tw.Flush(); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "cost %.4f score %.3f positive %t\n", v.Path.Cost, v.Score, v.Positive)

			return nil
		},
	}
	cmd.Flags().StringVarP(&dir, "dir", "d", ".", "directory holding the forecast files")
	cmd.Flags().IntVarP(&localTime, "time", "t", 1400, "local forecast time, e.g. 1400")

	return cmd
}
