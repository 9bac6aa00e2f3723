package core

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDot(t *testing.T) {
	d, err := Dot([]float64{1, 2, 3}, []float64{4, 5, 6})
	require.NoError(t, err)
	assert.Equal(t, 32.0, d)

	_, err = Dot([]float64{1, 2}, []float64{1})
	assert.ErrorIs(t, err, ErrDimensionMismatch)
}

func TestDistance(t *testing.T) {
	d, err := Distance([]float64{0, 0}, []float64{3, 4})
	require.NoError(t, err)
	assert.InDelta(t, 5.0, d, 1e-12)

	d, err = Distance([]float64{1.5, -2}, []float64{1.5, -2})
	require.NoError(t, err)
	assert.Equal(t, 0.0, d)

	_, err = Distance([]float64{0}, []float64{0, 0})
	assert.ErrorIs(t, err, ErrDimensionMismatch)
}

func TestDimension(t *testing.T) {
	n, err := Dimension([][]float64{{1, 2}, {3, 4}})
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	_, err = Dimension(nil)
	assert.ErrorIs(t, err, ErrEmptyDataset)

	_, err = Dimension([][]float64{{1, 2}, {3}})
	assert.ErrorIs(t, err, ErrDimensionMismatch)
}

func TestClone(t *testing.T) {
	v := []float64{1, math.Pi}
	c := Clone(v)
	c[0] = 9
	assert.Equal(t, 1.0, v[0])
	assert.Equal(t, math.Pi, c[1])
}
