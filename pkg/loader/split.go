package loader

import (
	"math/rand"

	"github.com/pkg/errors"
)

// TrainTestSplit shuffles items with seed and puts testRatio of them in the test set.
func TrainTestSplit[T any](items []T, testRatio float64, seed int64) (train, test []T, err error) {
	if testRatio < 0 || testRatio >= 1 {
		return nil, nil, errors.Errorf("test ratio %v is outside [0, 1)", testRatio)
	}
	n := len(items)
	indices := rand.New(rand.NewSource(seed)).Perm(n)
	nTest := int(float64(n) * testRatio)
	for i, idx := range indices {
		if i < nTest {
			test = append(test, items[idx])
		} else {
			train = append(train, items[idx])
		}
	}
	return train, test, nil
}

// KFoldSplit deals a seeded permutation of 0..n-1 into k folds.
func KFoldSplit(n, k int, seed int64) ([][]int, error) {
	if k < 2 || k > n {
		return nil, errors.Errorf("cannot make %d folds from %d items", k, n)
	}
	indices := rand.New(rand.NewSource(seed)).Perm(n)
	folds := make([][]int, k)
	for i := 0; i < n; i++ {
		folds[i%k] = append(folds[i%k], indices[i])
	}
	return folds, nil
}

// Fold returns the items outside folds[i] as train and the items in it as test.
func Fold[T any](items []T, folds [][]int, i int) (train, test []T) {
	held := make(map[int]bool, len(folds[i]))
	for _, idx := range folds[i] {
		held[idx] = true
		test = append(test, items[idx])
	}
	for idx, item := range items {
		if !held[idx] {
			train = append(train, item)
		}
	}
	return train, test
}
