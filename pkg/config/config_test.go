package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/NeilNjae/pci/pkg/model"
	"github.com/NeilNjae/pci/pkg/stats"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("", nil)
	require.NoError(t, err)
	assert.Equal(t, "linear", cfg.Model.Kind)
	assert.Equal(t, model.DefaultGamma, cfg.Model.Gamma)
	assert.Equal(t, "match", cfg.Encoding)
	assert.Equal(t, 0.2, cfg.Split.TestRatio)
	assert.Equal(t, int64(1), cfg.Split.Seed)
	assert.Equal(t, stats.DegenerateZero, cfg.Scale)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestLoadFileEnvAndFlags(t *testing.T) {
	path := filepath.Join(t.TempDir(), "matchmaker.yaml")
	yaml := `
model:
  kind: kernel
  gamma: 4
split:
  seed: 99
  folds: 5
scale:
  degenerate: error
`
	require.NoError(t, os.WriteFile(path, []byte(yaml), 0o600))
	t.Setenv("MATCHMAKER_SPLIT_TEST_RATIO", "0.4")

	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	fs.Float64("gamma", 1, "")
	fs.String("model", "linear", "")
	require.NoError(t, fs.Parse([]string{"--gamma", "2.5"}))

	cfg, err := Load(path, fs)
	require.NoError(t, err)
	assert.Equal(t, "kernel", cfg.Model.Kind, "unchanged flag keeps file value")
	assert.Equal(t, 2.5, cfg.Model.Gamma)
	assert.Equal(t, int64(99), cfg.Split.Seed)
	assert.Equal(t, 5, cfg.Split.Folds)
	assert.Equal(t, 0.4, cfg.Split.TestRatio)
	assert.Equal(t, stats.DegenerateError, cfg.Scale)
}

func TestLoadInvalid(t *testing.T) {
	tests := map[string]string{
		"MATCHMAKER_MODEL_KIND":       "tree",
		"MATCHMAKER_ENCODING":         "onehot",
		"MATCHMAKER_SPLIT_TEST_RATIO": "1.5",
		"MATCHMAKER_SPLIT_FOLDS":      "1",
		"MATCHMAKER_SCALE_DEGENERATE": "clamp",
	}
	for env, val := range tests {
		t.Run(env, func(t *testing.T) {
			t.Setenv(env, val)
			_, err := Load("", nil)
			assert.Error(t, err)
		})
	}

	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"), nil)
	assert.Error(t, err)
}

func TestLoadRejectsNonFiniteGamma(t *testing.T) {
	for _, gamma := range []string{"NaN", "+Inf", "-1", "0"} {
		t.Run(gamma, func(t *testing.T) {
			t.Setenv("MATCHMAKER_MODEL_KIND", "kernel")
			t.Setenv("MATCHMAKER_MODEL_GAMMA", gamma)
			_, err := Load("", nil)
			assert.Error(t, err)
		})
	}

	t.Setenv("MATCHMAKER_MODEL_GAMMA", "NaN")
	cfg, err := Load("", nil)
	require.NoError(t, err, "gamma is unused by the linear model")
	assert.Equal(t, "linear", cfg.Model.Kind)
}
