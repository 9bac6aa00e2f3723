package model

import (
	"github.com/pkg/errors"

	"github.com/NeilNjae/pci/pkg/core"
	"github.com/NeilNjae/pci/pkg/data"
)

// Confusion counts binary outcomes with Match as the positive class.
type Confusion struct {
	TP, FP, TN, FN int
}

// Report summarises a classifier on a labelled set.
type Report struct {
	N         int
	Accuracy  float64
	Precision float64
	Recall    float64
	F1        float64
	Confusion Confusion
}

// Accuracy is the share of predictions equal to the truth.
func Accuracy(yTrue, yPred []data.Label) float64 {
	if len(yTrue) == 0 {
		return 0
	}
	c := 0
	for i := range yTrue {
		if yTrue[i] == yPred[i] {
			c++
		}
	}
	return float64(c) / float64(len(yTrue))
}

// ConfusionMatrix tallies predictions against the truth.
func ConfusionMatrix(yTrue, yPred []data.Label) Confusion {
	var c Confusion
	for i := range yTrue {
		switch {
		case yPred[i] == data.Match && yTrue[i] == data.Match:
			c.TP++
		case yPred[i] == data.Match:
			c.FP++
		case yTrue[i] == data.Match:
			c.FN++
		default:
			c.TN++
		}
	}
	return c
}

// PrecisionRecallF1 computes the usual scores for the Match class.
func PrecisionRecallF1(yTrue, yPred []data.Label) (prec, rec, f1 float64) {
	c := ConfusionMatrix(yTrue, yPred)
	if c.TP+c.FP > 0 {
		prec = float64(c.TP) / float64(c.TP+c.FP)
	}
	if c.TP+c.FN > 0 {
		rec = float64(c.TP) / float64(c.TP+c.FN)
	}
	if prec+rec > 0 {
		f1 = 2 * prec * rec / (prec + rec)
	}
	return
}

// Evaluate classifies every record and scores the predictions against their classes.
func Evaluate(c Classifier, records []data.Record) (Report, error) {
	if len(records) == 0 {
		return Report{}, core.ErrEmptyDataset
	}
	if err := data.CheckLabels(records); err != nil {
		return Report{}, err
	}
	pred, err := Predict(c, data.Features(records))
	if err != nil {
		return Report{}, errors.WithMessage(err, "evaluate")
	}
	return Score(data.Labels(records), pred), nil
}

// Score builds a Report from truth and predictions of equal length.
func Score(yTrue, yPred []data.Label) Report {
	r := Report{
		N:         len(yTrue),
		Accuracy:  Accuracy(yTrue, yPred),
		Confusion: ConfusionMatrix(yTrue, yPred),
	}
	r.Precision, r.Recall, r.F1 = PrecisionRecallF1(yTrue, yPred)
	return r
}
