package model

import (
	"math"

	"github.com/pkg/errors"
	"gonum.org/v1/gonum/floats"

	"github.com/NeilNjae/pci/pkg/core"
	"github.com/NeilNjae/pci/pkg/data"
)

const (
	// DefaultGamma is the bandwidth used for offset calibration and classification.
	DefaultGamma = 10.0
	// DefaultRadialGamma is the bandwidth for callers using the bare kernel.
	DefaultRadialGamma = 20.0
)

// RadialBasis is exp(-gamma * |v1 - v2|). It is 1 for identical vectors and decays
// towards 0 with distance, faster for larger gamma.
func RadialBasis(v1, v2 []float64, gamma float64) (float64, error) {
	d, err := core.Distance(v1, v2)
	if err != nil {
		return 0, err
	}
	return math.Exp(-gamma * d), nil
}

// NonlinearOffset is the mean kernel similarity between all ordered pairs of matches
// minus the same mean over non-matches. It costs O(n^2) kernel evaluations.
func NonlinearOffset(records []data.Record, gamma float64) (float64, error) {
	if _, err := checkTrainingSet(records); err != nil {
		return 0, err
	}
	matches, nonMatches := data.Partition(records)
	sm := withinSimilarity(matches, gamma)
	sn := withinSimilarity(nonMatches, gamma)
	nm, nn := float64(len(matches)), float64(len(nonMatches))
	return sm/(nm*nm) - sn/(nn*nn), nil
}

// withinSimilarity sums the kernel over every ordered pair of rows, including each row with itself.
// Rows must share one dimension.
func withinSimilarity(rows []data.Record, gamma float64) float64 {
	return core.PairSum(data.Features(rows), func(a, b []float64) float64 {
		return math.Exp(-gamma * floats.Distance(a, b, 2))
	})
}

// NonlinearClassify compares the mean similarity of point to the matches and to the
// non-matches in records:
//
//	y = mean_sim(matches) - mean_sim(non-matches) + offset
//
// A negative y is a non-match; y >= 0 is a match. Every call scans all of records.
func NonlinearClassify(point []float64, records []data.Record, offset, gamma float64) (data.Label, error) {
	var (
		matchSum, noMatchSum     float64
		matchCount, noMatchCount int
	)
	for i, r := range records {
		sim, err := RadialBasis(point, r.Data, gamma)
		if err != nil {
			return data.Unlabeled, errors.WithMessagef(err, "record %d", i)
		}
		switch r.Class {
		case data.Match:
			matchSum += sim
			matchCount++
		case data.NoMatch:
			noMatchSum += sim
			noMatchCount++
		default:
			return data.Unlabeled, errors.Wrapf(data.ErrUnlabeled, "record %d has class %s", i, r.Class)
		}
	}
	if matchCount == 0 || noMatchCount == 0 {
		return data.Unlabeled, errors.Wrapf(ErrEmptyClass, "%d matches, %d non-matches", matchCount, noMatchCount)
	}

	y := matchSum/float64(matchCount) - noMatchSum/float64(noMatchCount) + offset
	if y < 0 {
		return data.NoMatch, nil
	}
	return data.Match, nil
}

// KernelClassifier keeps the whole training set and classifies by radial-basis similarity.
// Gamma is fixed at construction so the offset and every classification share one bandwidth.
type KernelClassifier struct {
	gamma  float64
	offset float64
	rows   []data.Record
}

// NewKernelClassifier returns an unfitted classifier with bandwidth gamma.
func NewKernelClassifier(gamma float64) *KernelClassifier {
	return &KernelClassifier{gamma: gamma}
}

// Gamma returns the kernel bandwidth.
func (k *KernelClassifier) Gamma() float64 { return k.gamma }

// Offset returns the calibrated offset, 0 before Fit.
func (k *KernelClassifier) Offset() float64 { return k.offset }

// Fit copies records and calibrates the offset.
func (k *KernelClassifier) Fit(records []data.Record) error {
	if k.gamma <= 0 || math.IsNaN(k.gamma) || math.IsInf(k.gamma, 0) {
		return errors.Errorf("kernel gamma must be a positive number, got %v", k.gamma)
	}
	offset, err := NonlinearOffset(records, k.gamma)
	if err != nil {
		return err
	}
	rows := make([]data.Record, len(records))
	for i, r := range records {
		rows[i] = r.Clone()
	}
	k.rows = rows
	k.offset = offset
	return nil
}

// Classify returns the class of point.
func (k *KernelClassifier) Classify(point []float64) (data.Label, error) {
	if k.rows == nil {
		return data.Unlabeled, ErrNotFitted
	}
	return NonlinearClassify(point, k.rows, k.offset, k.gamma)
}
