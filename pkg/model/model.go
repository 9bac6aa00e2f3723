package model

import (
	"github.com/pkg/errors"

	"github.com/NeilNjae/pci/pkg/data"
)

var (
	// ErrEmptyClass is returned when training data lacks matches or non-matches.
	ErrEmptyClass = errors.New("class has no examples")
	// ErrNotFitted is returned by Classify before Fit has succeeded.
	ErrNotFitted = errors.New("classifier is not fitted")
)

// Classifier is a two-class supervised model over scaled feature vectors.
type Classifier interface {
	Fit(records []data.Record) error
	Classify(point []float64) (data.Label, error)
}

// Predict classifies each point in turn.
func Predict(c Classifier, points [][]float64) ([]data.Label, error) {
	out := make([]data.Label, len(points))
	for i, p := range points {
		l, err := c.Classify(p)
		if err != nil {
			return nil, errors.WithMessagef(err, "point %d", i)
		}
		out[i] = l
	}
	return out, nil
}

// New builds an unfitted classifier by kind: "linear" or "kernel".
func New(kind string, gamma float64) (Classifier, error) {
	switch kind {
	case "linear":
		return &MeanDiscriminant{}, nil
	case "kernel":
		return NewKernelClassifier(gamma), nil
	}
	return nil, errors.Errorf("unknown model kind %q", kind)
}

// checkTrainingSet validates labels and dimensions and requires both classes.
func checkTrainingSet(records []data.Record) (int, error) {
	dim, err := data.Dim(records)
	if err != nil {
		return 0, err
	}
	if err := data.CheckLabels(records); err != nil {
		return 0, err
	}
	matches, nonMatches := data.Partition(records)
	if len(matches) == 0 {
		return 0, errors.Wrapf(ErrEmptyClass, "no %s records", data.Match)
	}
	if len(nonMatches) == 0 {
		return 0, errors.Wrapf(ErrEmptyClass, "no %s records", data.NoMatch)
	}
	return dim, nil
}
