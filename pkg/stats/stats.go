package stats

import (
	mstats "github.com/montanaflynn/stats"
	"github.com/pkg/errors"

	"github.com/NeilNjae/pci/pkg/data"
)

// FeatureSummary describes one column of a dataset.
type FeatureSummary struct {
	Index  int
	Min    float64
	Max    float64
	Mean   float64
	Median float64
	Std    float64
}

// Column copies feature j out of records.
func Column(records []data.Record, j int) []float64 {
	col := make([]float64, len(records))
	for i, r := range records {
		col[i] = r.Data[j]
	}
	return col
}

// Summarize computes per-feature descriptive statistics.
func Summarize(records []data.Record) ([]FeatureSummary, error) {
	cols, err := data.Dim(records)
	if err != nil {
		return nil, err
	}
	out := make([]FeatureSummary, cols)
	for j := 0; j < cols; j++ {
		col := mstats.Float64Data(Column(records, j))
		s := FeatureSummary{Index: j}
		if s.Min, err = col.Min(); err != nil {
			return nil, errors.Wrapf(err, "feature %d", j)
		}
		if s.Max, err = col.Max(); err != nil {
			return nil, errors.Wrapf(err, "feature %d", j)
		}
		if s.Mean, err = col.Mean(); err != nil {
			return nil, errors.Wrapf(err, "feature %d", j)
		}
		if s.Median, err = col.Median(); err != nil {
			return nil, errors.Wrapf(err, "feature %d", j)
		}
		if s.Std, err = col.StandardDeviation(); err != nil {
			return nil, errors.Wrapf(err, "feature %d", j)
		}
		out[j] = s
	}
	return out, nil
}
