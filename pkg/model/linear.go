package model

import (
	"github.com/pkg/errors"
	"gonum.org/v1/gonum/floats"

	"github.com/NeilNjae/pci/pkg/core"
	"github.com/NeilNjae/pci/pkg/data"
)

// ClassMeans maps each class to its mean feature vector.
type ClassMeans map[data.Label][]float64

// LinearTrain averages the feature vectors of each class.
func LinearTrain(records []data.Record) (ClassMeans, error) {
	dim, err := checkTrainingSet(records)
	if err != nil {
		return nil, err
	}
	sums := ClassMeans{data.NoMatch: make([]float64, dim), data.Match: make([]float64, dim)}
	counts := make(map[data.Label]int, 2)
	for _, r := range records {
		floats.Add(sums[r.Class], r.Data)
		counts[r.Class]++
	}
	for class, sum := range sums {
		n := float64(counts[class])
		for i := range sum {
			sum[i] /= n
		}
	}
	return sums, nil
}

// DotProduct computes dot(v1, v2).
func DotProduct(v1, v2 []float64) (float64, error) {
	return core.Dot(v1, v2)
}

// DotProductClassify assigns point to the class whose mean is nearer, using
//
//	y = dot(p, m0) - dot(p, m1) + (dot(m1, m1) - dot(m0, m0)) / 2
//
// A positive y is a non-match; y <= 0 is a match.
func DotProductClassify(point []float64, means ClassMeans) (data.Label, error) {
	m0, ok0 := means[data.NoMatch]
	m1, ok1 := means[data.Match]
	if !ok0 || !ok1 {
		return data.Unlabeled, errors.Wrap(ErrEmptyClass, "class means need both classes")
	}
	if err := core.CheckDims(m0, m1); err != nil {
		return data.Unlabeled, err
	}
	if err := core.CheckDims(point, m0); err != nil {
		return data.Unlabeled, err
	}

	b := (floats.Dot(m1, m1) - floats.Dot(m0, m0)) / 2
	y := floats.Dot(point, m0) - floats.Dot(point, m1) + b
	if y > 0 {
		return data.NoMatch, nil
	}
	return data.Match, nil
}

// MeanDiscriminant is the linear classifier over class means.
type MeanDiscriminant struct {
	Means ClassMeans
}

// Fit computes the class means of records.
func (m *MeanDiscriminant) Fit(records []data.Record) error {
	means, err := LinearTrain(records)
	if err != nil {
		return err
	}
	m.Means = means
	return nil
}

// Classify returns the class of point.
func (m *MeanDiscriminant) Classify(point []float64) (data.Label, error) {
	if m.Means == nil {
		return data.Unlabeled, ErrNotFitted
	}
	return DotProductClassify(point, m.Means)
}
