package config

import (
	"math"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/NeilNjae/pci/pkg/dataprep"
	"github.com/NeilNjae/pci/pkg/logging"
	"github.com/NeilNjae/pci/pkg/model"
	"github.com/NeilNjae/pci/pkg/stats"
)

// EnvPrefix prefixes environment overrides, e.g. MATCHMAKER_MODEL_GAMMA.
const EnvPrefix = "matchmaker"

// Config holds every tunable of the toolkit.
type Config struct {
	Log      logging.Config
	Data     string
	Encoding string
	Model    ModelConfig
	Split    SplitConfig
	Scale    stats.DegeneratePolicy
}

type ModelConfig struct {
	Kind  string
	Gamma float64
}

type SplitConfig struct {
	TestRatio float64
	Seed      int64
	Folds     int
}

// flagKeys binds command line flags to config keys.
var flagKeys = map[string]string{
	"data":       "data",
	"encoding":   "encoding",
	"model":      "model.kind",
	"gamma":      "model.gamma",
	"test-ratio": "split.test_ratio",
	"seed":       "split.seed",
	"folds":      "split.folds",
	"degenerate": "scale.degenerate",
	"log-level":  "log.level",
}

func setDefaults(v *viper.Viper) {
	dev := logging.DefaultConfig(true)
	v.SetDefault("log.level", dev.Level)
	v.SetDefault("log.mode", dev.Mode)
	v.SetDefault("log.path", dev.Path)
	v.SetDefault("log.max_size_mb", dev.MaxSizeMB)
	v.SetDefault("log.max_age_days", dev.MaxAgeDays)
	v.SetDefault("log.max_backups", dev.MaxBackups)
	v.SetDefault("log.console", dev.Console)
	v.SetDefault("data", "matchmaker.csv")
	v.SetDefault("encoding", "match")
	v.SetDefault("model.kind", "linear")
	v.SetDefault("model.gamma", model.DefaultGamma)
	v.SetDefault("split.test_ratio", 0.2)
	v.SetDefault("split.seed", 1)
	v.SetDefault("split.folds", 0)
	v.SetDefault("scale.degenerate", "zero")
}

// Load reads defaults, then the YAML file at path if given, then MATCHMAKER_* environment
// variables, then any changed flags in fs.
func Load(path string, fs *pflag.FlagSet) (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	setDefaults(v)

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, errors.Wrapf(err, "read config %s", path)
		}
	}
	if fs != nil {
		for name, key := range flagKeys {
			if f := fs.Lookup(name); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return nil, errors.Wrapf(err, "bind flag %s", name)
				}
			}
		}
	}

	policy, err := stats.ParseDegeneratePolicy(v.GetString("scale.degenerate"))
	if err != nil {
		return nil, err
	}
	cfg := &Config{
		Log: logging.Config{
			Level:      v.GetString("log.level"),
			Mode:       v.GetString("log.mode"),
			Path:       v.GetString("log.path"),
			MaxSizeMB:  v.GetInt("log.max_size_mb"),
			MaxAgeDays: v.GetInt("log.max_age_days"),
			MaxBackups: v.GetInt("log.max_backups"),
			Console:    v.GetBool("log.console"),
		},
		Data:     v.GetString("data"),
		Encoding: v.GetString("encoding"),
		Model: ModelConfig{
			Kind:  v.GetString("model.kind"),
			Gamma: v.GetFloat64("model.gamma"),
		},
		Split: SplitConfig{
			TestRatio: v.GetFloat64("split.test_ratio"),
			Seed:      v.GetInt64("split.seed"),
			Folds:     v.GetInt("split.folds"),
		},
		Scale: policy,
	}
	return cfg, cfg.Validate()
}

// Validate checks values that would otherwise fail deep inside a run.
func (c *Config) Validate() error {
	if _, err := dataprep.EncoderFor(c.Encoding); err != nil {
		return err
	}
	if _, err := model.New(c.Model.Kind, c.Model.Gamma); err != nil {
		return err
	}
	if c.Model.Kind == "kernel" && (!(c.Model.Gamma > 0) || math.IsInf(c.Model.Gamma, 0)) {
		return errors.Errorf("model.gamma must be a positive number, got %v", c.Model.Gamma)
	}
	if c.Split.TestRatio < 0 || c.Split.TestRatio >= 1 {
		return errors.Errorf("split.test_ratio %v is outside [0, 1)", c.Split.TestRatio)
	}
	if c.Split.Folds == 1 || c.Split.Folds < 0 {
		return errors.Errorf("split.folds must be 0 or at least 2, got %d", c.Split.Folds)
	}
	return nil
}
