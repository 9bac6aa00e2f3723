package stats

import (
	"math"

	"github.com/pkg/errors"

	"github.com/NeilNjae/pci/pkg/core"
	"github.com/NeilNjae/pci/pkg/data"
)

// ErrDegenerateScale is returned when a feature has the same value in every fitted row.
var ErrDegenerateScale = errors.New("degenerate feature scale")

// DegeneratePolicy decides how a constant feature is scaled.
type DegeneratePolicy int

const (
	// DegenerateZero maps every value of a constant feature to 0.
	DegenerateZero DegeneratePolicy = iota
	// DegenerateError makes fitting fail on a constant feature.
	DegenerateError
)

// ParseDegeneratePolicy accepts "zero" or "error".
func ParseDegeneratePolicy(s string) (DegeneratePolicy, error) {
	switch s {
	case "zero", "":
		return DegenerateZero, nil
	case "error":
		return DegenerateError, nil
	}
	return DegenerateZero, errors.Errorf("unknown degenerate scale policy %q", s)
}

// ScaleFunc rescales one feature vector with previously fitted bounds.
type ScaleFunc func(x []float64) ([]float64, error)

// MinMaxScaler scales each feature to [0, 1] using the bounds seen while fitting.
type MinMaxScaler struct {
	Low  []float64
	High []float64
}

// FitMinMax finds the per-feature bounds of records in a single pass.
func FitMinMax(records []data.Record, policy DegeneratePolicy) (*MinMaxScaler, error) {
	cols, err := data.Dim(records)
	if err != nil {
		return nil, err
	}
	lows := make([]float64, cols)
	highs := make([]float64, cols)
	for j := 0; j < cols; j++ {
		lows[j] = math.Inf(1)
		highs[j] = math.Inf(-1)
	}
	for _, r := range records {
		for j, v := range r.Data {
			if v < lows[j] {
				lows[j] = v
			}
			if v > highs[j] {
				highs[j] = v
			}
		}
	}
	if policy == DegenerateError {
		for j := 0; j < cols; j++ {
			if highs[j] == lows[j] {
				return nil, errors.Wrapf(ErrDegenerateScale, "feature %d is constant at %v", j, lows[j])
			}
		}
	}
	return &MinMaxScaler{Low: lows, High: highs}, nil
}

// Transform rescales x. Values outside the fitted bounds fall outside [0, 1].
func (s *MinMaxScaler) Transform(x []float64) ([]float64, error) {
	return scale(x, s.Low, s.High)
}

// TransformAll rescales every record, keeping classes.
func (s *MinMaxScaler) TransformAll(records []data.Record) ([]data.Record, error) {
	out := make([]data.Record, len(records))
	for i, r := range records {
		x, err := s.Transform(r.Data)
		if err != nil {
			return nil, errors.WithMessagef(err, "record %d", i)
		}
		out[i] = data.Record{Data: x, Class: r.Class}
	}
	return out, nil
}

// ScaleFunc returns a standalone function over a copy of the fitted bounds.
// It is safe for concurrent use.
func (s *MinMaxScaler) ScaleFunc() ScaleFunc {
	lows, highs := core.Clone(s.Low), core.Clone(s.High)
	return func(x []float64) ([]float64, error) {
		return scale(x, lows, highs)
	}
}

func scale(x, lows, highs []float64) ([]float64, error) {
	if err := core.CheckDims(x, lows); err != nil {
		return nil, err
	}
	out := make([]float64, len(x))
	for j, v := range x {
		span := highs[j] - lows[j]
		if span == 0 {
			// constant feature; DegenerateError never gets here
			out[j] = 0
			continue
		}
		out[j] = (v - lows[j]) / span
	}
	return out, nil
}

// ScaleDataset fits a MinMaxScaler to records and returns the scaled records together
// with the function that scales later points the same way.
func ScaleDataset(records []data.Record, policy DegeneratePolicy) ([]data.Record, ScaleFunc, error) {
	s, err := FitMinMax(records, policy)
	if err != nil {
		return nil, nil, err
	}
	scaled, err := s.TransformAll(records)
	if err != nil {
		return nil, nil, err
	}
	return scaled, s.ScaleFunc(), nil
}
