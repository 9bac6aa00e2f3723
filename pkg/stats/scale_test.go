package stats

import (
	"math"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/NeilNjae/pci/pkg/core"
	"github.com/NeilNjae/pci/pkg/data"
)

func records(rows ...[]float64) []data.Record {
	out := make([]data.Record, len(rows))
	for i, r := range rows {
		out[i] = data.Record{Data: r, Class: data.Label(i % 2)}
	}
	return out
}

func TestScaleDataset(t *testing.T) {
	in := records([]float64{0, 10, -1}, []float64{5, 20, 1}, []float64{10, 30, 0})

	scaled, f, err := ScaleDataset(in, DegenerateZero)
	require.NoError(t, err)
	require.Len(t, scaled, 3)
	assert.Equal(t, []float64{0, 0, 0}, scaled[0].Data)
	assert.Equal(t, []float64{0.5, 0.5, 1}, scaled[1].Data)
	assert.Equal(t, []float64{1, 1, 0.5}, scaled[2].Data)
	for i := range in {
		assert.Equal(t, in[i].Class, scaled[i].Class)
	}
	// input untouched
	assert.Equal(t, []float64{5, 20, 1}, in[1].Data)

	x, err := f([]float64{2.5, 40, -3})
	require.NoError(t, err)
	assert.Equal(t, []float64{0.25, 1.5, -1}, x)

	_, err = f([]float64{1})
	assert.ErrorIs(t, err, core.ErrDimensionMismatch)
}

func TestFitMinMaxBounds(t *testing.T) {
	s, err := FitMinMax(records([]float64{3, -2}, []float64{-7, 8}, []float64{1, 0}), DegenerateZero)
	require.NoError(t, err)
	assert.Equal(t, []float64{-7, -2}, s.Low)
	assert.Equal(t, []float64{3, 8}, s.High)
}

func TestScaleDeterministic(t *testing.T) {
	in := records([]float64{0.1, 0.7}, []float64{0.3, 0.2}, []float64{0.9, 0.4})
	a, _, err := ScaleDataset(in, DegenerateZero)
	require.NoError(t, err)
	reversed := []data.Record{in[2], in[1], in[0]}
	sa, err := FitMinMax(in, DegenerateZero)
	require.NoError(t, err)
	sb, err := FitMinMax(reversed, DegenerateZero)
	require.NoError(t, err)
	assert.Equal(t, sa.Low, sb.Low)
	assert.Equal(t, sa.High, sb.High)

	b, _, err := ScaleDataset(in, DegenerateZero)
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestScaleSingleRecord(t *testing.T) {
	scaled, f, err := ScaleDataset(records([]float64{5.0}), DegenerateZero)
	require.NoError(t, err)
	assert.Equal(t, []float64{0.0}, scaled[0].Data)
	x, err := f([]float64{8})
	require.NoError(t, err)
	assert.Equal(t, []float64{0.0}, x)
	assert.False(t, math.IsNaN(x[0]))

	_, _, err = ScaleDataset(records([]float64{5.0}), DegenerateError)
	assert.ErrorIs(t, err, ErrDegenerateScale)
}

func TestMinMaxScalerConstantFeature(t *testing.T) {
	s, err := FitMinMax(records([]float64{1, 3}, []float64{2, 3}), DegenerateZero)
	require.NoError(t, err)
	assert.Equal(t, &MinMaxScaler{Low: []float64{1, 3}, High: []float64{2, 3}}, s)

	x, err := s.Transform([]float64{5, 7})
	require.NoError(t, err)
	assert.Equal(t, []float64{4, 0}, x)
}

func TestScaleErrors(t *testing.T) {
	_, _, err := ScaleDataset(nil, DegenerateZero)
	assert.ErrorIs(t, err, core.ErrEmptyDataset)

	_, _, err = ScaleDataset(records([]float64{1, 2}, []float64{3}), DegenerateZero)
	assert.ErrorIs(t, err, core.ErrDimensionMismatch)
}

func TestScaleFuncConcurrent(t *testing.T) {
	s, err := FitMinMax(records([]float64{0, 0}, []float64{4, 8}), DegenerateZero)
	require.NoError(t, err)
	f := s.ScaleFunc()
	// later changes to the scaler do not leak into the closure
	s.Low[0] = 100

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			x, err := f([]float64{2, 2})
			assert.NoError(t, err)
			assert.Equal(t, []float64{0.5, 0.25}, x)
		}()
	}
	wg.Wait()
}

func TestParseDegeneratePolicy(t *testing.T) {
	p, err := ParseDegeneratePolicy("error")
	require.NoError(t, err)
	assert.Equal(t, DegenerateError, p)

	p, err = ParseDegeneratePolicy("")
	require.NoError(t, err)
	assert.Equal(t, DegenerateZero, p)

	_, err = ParseDegeneratePolicy("clamp")
	assert.Error(t, err)
}
