package core

import (
	"github.com/pkg/errors"
	"gonum.org/v1/gonum/floats"
)

var (
	// ErrDimensionMismatch is returned when two vectors, or the rows of a dataset, differ in length.
	ErrDimensionMismatch = errors.New("dimension mismatch")
	// ErrEmptyDataset is returned when an operation needs at least one row.
	ErrEmptyDataset = errors.New("empty dataset")
)

// CheckDims returns ErrDimensionMismatch unless a and b have the same length.
func CheckDims(a, b []float64) error {
	if len(a) != len(b) {
		return errors.Wrapf(ErrDimensionMismatch, "lengths %d and %d", len(a), len(b))
	}
	return nil
}

// Dot computes dot(a, b).
func Dot(a, b []float64) (float64, error) {
	if err := CheckDims(a, b); err != nil {
		return 0, err
	}
	return floats.Dot(a, b), nil
}

// Distance returns the Euclidean distance between a and b.
func Distance(a, b []float64) (float64, error) {
	if err := CheckDims(a, b); err != nil {
		return 0, err
	}
	return floats.Distance(a, b, 2), nil
}

// Clone deep copies a vector.
func Clone(v []float64) []float64 {
	out := make([]float64, len(v))
	copy(out, v)
	return out
}

// Dimension returns the shared length of the rows in x.
// Returns an error if rows of different length are found or there are no rows.
func Dimension(x [][]float64) (int, error) {
	if len(x) == 0 {
		return 0, ErrEmptyDataset
	}
	n := len(x[0])
	for i, xi := range x {
		if len(xi) != n {
			return 0, errors.Wrapf(ErrDimensionMismatch, "row %d has %d features, want %d", i, len(xi), n)
		}
	}
	return n, nil
}
