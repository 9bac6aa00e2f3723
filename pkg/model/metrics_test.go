package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/NeilNjae/pci/pkg/core"
	"github.com/NeilNjae/pci/pkg/data"
)

func TestScore(t *testing.T) {
	yTrue := []data.Label{1, 1, 0, 0, 1, 0}
	yPred := []data.Label{1, 0, 0, 1, 1, 0}

	r := Score(yTrue, yPred)
	assert.Equal(t, 6, r.N)
	assert.Equal(t, Confusion{TP: 2, FP: 1, TN: 2, FN: 1}, r.Confusion)
	assert.InDelta(t, 4.0/6, r.Accuracy, 1e-12)
	assert.InDelta(t, 2.0/3, r.Precision, 1e-12)
	assert.InDelta(t, 2.0/3, r.Recall, 1e-12)
	assert.InDelta(t, 2.0/3, r.F1, 1e-12)
}

func TestScoreNoPositives(t *testing.T) {
	p, rc, f1 := PrecisionRecallF1([]data.Label{0, 0}, []data.Label{0, 0})
	assert.Zero(t, p)
	assert.Zero(t, rc)
	assert.Zero(t, f1)
	assert.Zero(t, Accuracy(nil, nil))
}

func TestEvaluate(t *testing.T) {
	train := []data.Record{rec(data.NoMatch, 0, 0), rec(data.Match, 10, 10)}
	m := &MeanDiscriminant{}
	require.NoError(t, m.Fit(train))

	r, err := Evaluate(m, []data.Record{rec(data.NoMatch, 1, 1), rec(data.Match, 9, 9), rec(data.NoMatch, 6, 6)})
	require.NoError(t, err)
	assert.Equal(t, Confusion{TP: 1, FP: 1, TN: 1}, r.Confusion)

	_, err = Evaluate(m, nil)
	assert.ErrorIs(t, err, core.ErrEmptyDataset)

	_, err = Evaluate(m, []data.Record{rec(data.Unlabeled, 1, 1)})
	assert.ErrorIs(t, err, data.ErrUnlabeled)

	_, err = Evaluate(&MeanDiscriminant{}, train)
	assert.ErrorIs(t, err, ErrNotFitted)
}
