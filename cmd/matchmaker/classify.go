package main

import (
	"encoding/csv"
	"fmt"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/NeilNjae/pci/pkg/data"
)

// parseRow splits a comma separated query row the same way data files are read.
func parseRow(s string) (data.RawRecord, error) {
	if strings.TrimSpace(s) == "" {
		return data.RawRecord{}, errors.New("--row is required")
	}
	reader := csv.NewReader(strings.NewReader(s))
	reader.TrimLeadingSpace = true
	fields, err := reader.Read()
	if err != nil {
		return data.RawRecord{}, errors.Wrapf(data.ErrMalformedInput, "row %q: %v", s, err)
	}
	return data.RawRecord{Fields: fields, Class: data.Unlabeled}, nil
}

func classify(cmd *cobra.Command) error {
	a, err := newApp(cmd)
	if err != nil {
		return err
	}
	defer a.close()

	query, err := parseRow(rowFlag)
	if err != nil {
		return err
	}
	rows, err := a.loadRows()
	if err != nil {
		return err
	}
	p, err := a.newPipeline()
	if err != nil {
		return err
	}
	if err := p.Fit(rows); err != nil {
		return err
	}
	label, err := p.Classify(query)
	if err != nil {
		return errors.WithMessage(err, "classify")
	}
	a.logger.Debugw("classified", "fields", len(query.Fields), "label", label)
	fmt.Fprintln(a.out, label)
	return nil
}

func classifyCMD() *cobra.Command {
	classifyCmd := &cobra.Command{
		Use:   "classify",
		Short: "classify one row",
		Long:  "fit a classifier on every row of the data file and print the class of --row",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return classify(cmd)
		},
	}
	flagList := append([]string{"row", "model", "gamma"}, commonFlags...)
	attachFlags(classifyCmd, flagList)
	return classifyCmd
}
