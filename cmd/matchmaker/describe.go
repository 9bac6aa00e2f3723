package main

import (
	"fmt"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/NeilNjae/pci/pkg/data"
	"github.com/NeilNjae/pci/pkg/dataprep"
	"github.com/NeilNjae/pci/pkg/pipeline"
	"github.com/NeilNjae/pci/pkg/stats"
)

func describe(cmd *cobra.Command) error {
	a, err := newApp(cmd)
	if err != nil {
		return err
	}
	defer a.close()

	rows, err := a.loadRows()
	if err != nil {
		return err
	}
	enc, err := dataprep.EncoderFor(a.cfg.Encoding)
	if err != nil {
		return err
	}
	records, err := dataprep.EncodeAll(rows, enc)
	if err != nil {
		return err
	}
	summary, err := stats.Summarize(records)
	if err != nil {
		return err
	}
	schema := pipeline.SchemaFor(a.cfg.Encoding, len(summary))
	matches, nonMatches := data.Partition(records)

	t := table.NewWriter()
	t.SetTitle("%d rows, %d matches, %d non-matches", len(records), len(matches), len(nonMatches))
	t.AppendHeader(table.Row{"#", "Feature", "Min", "Max", "Mean", "Median", "Std"})
	for _, s := range summary {
		t.AppendRow(table.Row{
			s.Index, schema.Name(s.Index),
			fmt.Sprintf("%.3f", s.Min),
			fmt.Sprintf("%.3f", s.Max),
			fmt.Sprintf("%.3f", s.Mean),
			fmt.Sprintf("%.3f", s.Median),
			fmt.Sprintf("%.3f", s.Std),
		})
	}
	fmt.Fprintln(a.out, t.Render())
	return nil
}

func describeCMD() *cobra.Command {
	describeCmd := &cobra.Command{
		Use:   "describe",
		Short: "summarize encoded features",
		Long:  "encode the data file and print per-feature statistics before scaling",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return describe(cmd)
		},
	}
	attachFlags(describeCmd, commonFlags)
	return describeCmd
}
