package pipeline

import (
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/NeilNjae/pci/pkg/data"
	"github.com/NeilNjae/pci/pkg/dataprep"
	"github.com/NeilNjae/pci/pkg/loader"
	"github.com/NeilNjae/pci/pkg/model"
	"github.com/NeilNjae/pci/pkg/stats"
)

// Pipeline encodes raw rows, scales them and hands them to a classifier.
// Query rows go through the same encoder and the scaling fitted on the training rows.
type Pipeline struct {
	encode dataprep.Encoder
	policy stats.DegeneratePolicy
	clf    model.Classifier
	logger *zap.SugaredLogger

	scale stats.ScaleFunc
}

// New chains enc, min-max scaling under policy, and clf.
func New(enc dataprep.Encoder, policy stats.DegeneratePolicy, clf model.Classifier, logger *zap.SugaredLogger) *Pipeline {
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}
	return &Pipeline{encode: enc, policy: policy, clf: clf, logger: logger}
}

// Classifier returns the wrapped classifier.
func (p *Pipeline) Classifier() model.Classifier { return p.clf }

// Fit encodes and scales rows and fits the classifier on them.
func (p *Pipeline) Fit(rows []data.RawRecord) error {
	records, err := dataprep.EncodeAll(rows, p.encode)
	if err != nil {
		return errors.WithMessage(err, "encode")
	}
	scaled, scale, err := stats.ScaleDataset(records, p.policy)
	if err != nil {
		return errors.WithMessage(err, "scale")
	}
	if err := p.clf.Fit(scaled); err != nil {
		return errors.WithMessage(err, "fit")
	}
	p.scale = scale

	matches, nonMatches := data.Partition(scaled)
	fields := []interface{}{"rows", len(scaled), "matches", len(matches), "non_matches", len(nonMatches)}
	if k, ok := p.clf.(*model.KernelClassifier); ok {
		fields = append(fields, "gamma", k.Gamma(), "offset", k.Offset())
	}
	p.logger.Debugw("pipeline fitted", fields...)
	return nil
}

// Transform encodes and scales one row without classifying it.
func (p *Pipeline) Transform(row data.RawRecord) (data.Record, error) {
	if p.scale == nil {
		return data.Record{}, model.ErrNotFitted
	}
	r, err := p.encode(row)
	if err != nil {
		return data.Record{}, err
	}
	x, err := p.scale(r.Data)
	if err != nil {
		return data.Record{}, err
	}
	return data.Record{Data: x, Class: r.Class}, nil
}

// Classify returns the predicted class of one raw row.
func (p *Pipeline) Classify(row data.RawRecord) (data.Label, error) {
	r, err := p.Transform(row)
	if err != nil {
		return data.Unlabeled, err
	}
	return p.clf.Classify(r.Data)
}

// Evaluate scores the fitted pipeline on labelled rows.
func (p *Pipeline) Evaluate(rows []data.RawRecord) (model.Report, error) {
	if p.scale == nil {
		return model.Report{}, model.ErrNotFitted
	}
	records := make([]data.Record, len(rows))
	for i, row := range rows {
		r, err := p.Transform(row)
		if err != nil {
			return model.Report{}, errors.WithMessagef(err, "row %d", i)
		}
		records[i] = r
	}
	report, err := model.Evaluate(p.clf, records)
	if err != nil {
		return model.Report{}, err
	}
	p.logger.Debugw("pipeline evaluated", "rows", report.N, "accuracy", report.Accuracy)
	return report, nil
}

// Factory builds a fresh, unfitted pipeline.
type Factory func() (*Pipeline, error)

// HoldOut fits a pipeline on a seeded split of rows and scores it on the held out part.
func HoldOut(newPipeline Factory, rows []data.RawRecord, testRatio float64, seed int64) (model.Report, error) {
	train, test, err := loader.TrainTestSplit(rows, testRatio, seed)
	if err != nil {
		return model.Report{}, err
	}
	if len(test) == 0 {
		return model.Report{}, errors.Errorf("test ratio %v leaves no rows out of %d", testRatio, len(rows))
	}
	p, err := newPipeline()
	if err != nil {
		return model.Report{}, err
	}
	if err := p.Fit(train); err != nil {
		return model.Report{}, err
	}
	return p.Evaluate(test)
}

// CrossValidate scores k pipelines, each fitted without one fold and tested on it.
func CrossValidate(newPipeline Factory, rows []data.RawRecord, k int, seed int64) ([]model.Report, error) {
	folds, err := loader.KFoldSplit(len(rows), k, seed)
	if err != nil {
		return nil, err
	}
	reports := make([]model.Report, k)
	for i := range folds {
		train, test := loader.Fold(rows, folds, i)
		p, err := newPipeline()
		if err != nil {
			return nil, err
		}
		if err := p.Fit(train); err != nil {
			return nil, errors.WithMessagef(err, "fold %d", i)
		}
		if reports[i], err = p.Evaluate(test); err != nil {
			return nil, errors.WithMessagef(err, "fold %d", i)
		}
	}
	return reports, nil
}

// MeanReport averages the scores of reports and sums their counts.
func MeanReport(reports []model.Report) model.Report {
	var out model.Report
	if len(reports) == 0 {
		return out
	}
	for _, r := range reports {
		out.N += r.N
		out.Accuracy += r.Accuracy
		out.Precision += r.Precision
		out.Recall += r.Recall
		out.F1 += r.F1
		out.Confusion.TP += r.Confusion.TP
		out.Confusion.FP += r.Confusion.FP
		out.Confusion.TN += r.Confusion.TN
		out.Confusion.FN += r.Confusion.FN
	}
	n := float64(len(reports))
	out.Accuracy /= n
	out.Precision /= n
	out.Recall /= n
	out.F1 /= n
	return out
}
