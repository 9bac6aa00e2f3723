package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/NeilNjae/pci/pkg/data"
	"github.com/NeilNjae/pci/pkg/plot"
	"github.com/NeilNjae/pci/pkg/stats"
)

func plotAges(cmd *cobra.Command) error {
	a, err := newApp(cmd)
	if err != nil {
		return err
	}
	defer a.close()

	rows, err := a.loadRows()
	if err != nil {
		return err
	}
	records, err := data.NumericRecords(rows)
	if err != nil {
		return err
	}
	if !rawFlag {
		if records, _, err = stats.ScaleDataset(records, a.cfg.Scale); err != nil {
			return err
		}
	}
	if err := plot.AgeMatches(records, outFlag); err != nil {
		return err
	}
	a.logger.Infow("plot saved", "path", outFlag, "points", len(records), "scaled", !rawFlag)
	fmt.Fprintf(a.out, "saved %d points to %s\n", len(records), outFlag)
	return nil
}

func plotCMD() *cobra.Command {
	plotCmd := &cobra.Command{
		Use:   "plot",
		Short: "plot two numeric features",
		Long:  "scatter plot a two column numeric data file, matches and non-matches drawn apart",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return plotAges(cmd)
		},
	}
	flagList := append([]string{"out", "raw"}, commonFlags...)
	attachFlags(plotCmd, flagList)
	return plotCmd
}
