package main

import (
	"github.com/spf13/cobra"

	"github.com/NeilNjae/pci/pkg/model"
	"github.com/NeilNjae/pci/pkg/pipeline"
)

func evaluate(cmd *cobra.Command) error {
	a, err := newApp(cmd)
	if err != nil {
		return err
	}
	defer a.close()

	rows, err := a.loadRows()
	if err != nil {
		return err
	}

	split := a.cfg.Split
	var reports []model.Report
	if split.Folds >= 2 {
		if reports, err = pipeline.CrossValidate(a.newPipeline, rows, split.Folds, split.Seed); err != nil {
			return err
		}
	} else {
		report, err := pipeline.HoldOut(a.newPipeline, rows, split.TestRatio, split.Seed)
		if err != nil {
			return err
		}
		reports = []model.Report{report}
	}
	a.logger.Infow("evaluated", "model", a.cfg.Model.Kind, "splits", len(reports))
	renderReports(a.out, reports)
	return nil
}

func evaluateCMD() *cobra.Command {
	evaluateCmd := &cobra.Command{
		Use:   "evaluate",
		Short: "score a classifier",
		Long:  "fit a classifier on part of the data and score it on the rest, by hold out or k-fold cross validation",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return evaluate(cmd)
		},
	}
	flagList := append([]string{"model", "gamma", "test-ratio", "seed", "folds"}, commonFlags...)
	attachFlags(evaluateCmd, flagList)
	return evaluateCmd
}
