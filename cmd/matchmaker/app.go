package main

import (
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/NeilNjae/pci/pkg/config"
	"github.com/NeilNjae/pci/pkg/data"
	"github.com/NeilNjae/pci/pkg/dataprep"
	"github.com/NeilNjae/pci/pkg/logging"
	"github.com/NeilNjae/pci/pkg/model"
	"github.com/NeilNjae/pci/pkg/pipeline"
)

// app is the state every command builds from its flags.
type app struct {
	cfg    *config.Config
	logger *zap.SugaredLogger
	out    io.Writer
}

func newApp(cmd *cobra.Command) (*app, error) {
	cfg, err := config.Load(cfgPathFlag, cmd.Flags())
	if err != nil {
		return nil, err
	}
	logger, err := logging.NewLogger("matchmaker", cfg.Log)
	if err != nil {
		return nil, err
	}
	return &app{cfg: cfg, logger: logger, out: cmd.OutOrStdout()}, nil
}

func (a *app) loadRows() ([]data.RawRecord, error) {
	rows, err := data.LoadCSV(a.cfg.Data)
	if err != nil {
		return nil, err
	}
	a.logger.Infow("rows loaded", "path", a.cfg.Data, "rows", len(rows))
	return rows, nil
}

func (a *app) newPipeline() (*pipeline.Pipeline, error) {
	enc, err := dataprep.EncoderFor(a.cfg.Encoding)
	if err != nil {
		return nil, err
	}
	clf, err := model.New(a.cfg.Model.Kind, a.cfg.Model.Gamma)
	if err != nil {
		return nil, err
	}
	return pipeline.New(enc, a.cfg.Scale, clf, a.logger), nil
}

func (a *app) close() {
	_ = a.logger.Sync()
}

func renderReports(w io.Writer, reports []model.Report) {
	t := table.NewWriter()
	t.AppendHeader(table.Row{"Split", "N", "Accuracy", "Precision", "Recall", "F1", "TP", "FP", "TN", "FN"})
	row := func(name string, r model.Report) table.Row {
		return table.Row{
			name, r.N,
			fmt.Sprintf("%.3f", r.Accuracy),
			fmt.Sprintf("%.3f", r.Precision),
			fmt.Sprintf("%.3f", r.Recall),
			fmt.Sprintf("%.3f", r.F1),
			r.Confusion.TP, r.Confusion.FP, r.Confusion.TN, r.Confusion.FN,
		}
	}
	if len(reports) == 1 {
		t.AppendRow(row("hold out", reports[0]))
	} else {
		for i, r := range reports {
			t.AppendRow(row(fmt.Sprintf("fold %d", i), r))
		}
		t.AppendFooter(row("mean", pipeline.MeanReport(reports)))
	}
	fmt.Fprintln(w, t.Render())
}
