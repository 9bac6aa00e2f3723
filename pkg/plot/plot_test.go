package plot

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/NeilNjae/pci/pkg/data"
)

func ages() []data.Record {
	return []data.Record{
		{Data: []float64{24, 30}, Class: data.Match},
		{Data: []float64{30, 40}, Class: data.Match},
		{Data: []float64{22, 49}, Class: data.NoMatch},
		{Data: []float64{43, 39}, Class: data.Match},
		{Data: []float64{23, 30}, Class: data.NoMatch},
	}
}

func TestScatter(t *testing.T) {
	p, err := Scatter(ages(), AgeOptions)
	require.NoError(t, err)
	assert.Equal(t, "Ages of matches", p.Title.Text)
	assert.Equal(t, "woman", p.X.Label.Text)
	assert.Equal(t, "man", p.Y.Label.Text)
	assert.Equal(t, 22.0, p.X.Min)
	assert.Equal(t, 43.0, p.X.Max)
}

func TestAgeMatches(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ages.png")
	require.NoError(t, AgeMatches(ages(), path))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))
}

func TestPointsNeedTwoFeatures(t *testing.T) {
	_, err := Points([]data.Record{{Data: []float64{1, 2, 3}, Class: data.Match}})
	assert.Error(t, err)

	_, err = Scatter([]data.Record{{Data: []float64{1}, Class: data.NoMatch}}, AgeOptions)
	assert.Error(t, err)
}
