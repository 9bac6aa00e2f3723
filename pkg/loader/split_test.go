package loader

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seq(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i
	}
	return out
}

func TestTrainTestSplit(t *testing.T) {
	items := seq(10)
	train, test, err := TrainTestSplit(items, 0.3, 42)
	require.NoError(t, err)
	assert.Len(t, test, 3)
	assert.Len(t, train, 7)

	all := append(append([]int{}, train...), test...)
	sort.Ints(all)
	assert.Equal(t, items, all)

	train2, test2, err := TrainTestSplit(items, 0.3, 42)
	require.NoError(t, err)
	assert.Equal(t, train, train2)
	assert.Equal(t, test, test2)

	_, _, err = TrainTestSplit(items, 1, 42)
	assert.Error(t, err)
}

func TestKFold(t *testing.T) {
	items := []string{"a", "b", "c", "d", "e", "f", "g"}
	folds, err := KFoldSplit(len(items), 3, 7)
	require.NoError(t, err)
	require.Len(t, folds, 3)

	seen := 0
	for i := range folds {
		train, test := Fold(items, folds, i)
		assert.Len(t, test, len(folds[i]))
		assert.Len(t, train, len(items)-len(folds[i]))
		for _, x := range test {
			assert.NotContains(t, train, x)
		}
		seen += len(test)
	}
	assert.Equal(t, len(items), seen)

	_, err = KFoldSplit(3, 4, 1)
	assert.Error(t, err)
	_, err = KFoldSplit(3, 1, 1)
	assert.Error(t, err)
}
