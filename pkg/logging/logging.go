package logging

import (
	"os"
	"strings"
	"time"

	"github.com/pkg/errors"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

const (
	ModeDev  = "dev"
	ModeProd = "prod"
)

// Config controls where log lines go and how they look.
type Config struct {
	Level string
	Mode  string
	// Path enables a rotating log file when set.
	Path       string
	MaxSizeMB  int
	MaxAgeDays int
	MaxBackups int
	Console    bool
}

// DefaultConfig logs debug lines to the console in dev mode and info lines to the file only in prod mode.
func DefaultConfig(isDev bool) Config {
	if isDev {
		return Config{Level: "debug", Mode: ModeDev, MaxSizeMB: 10, MaxAgeDays: 1, Console: true}
	}
	return Config{Level: "info", Mode: ModeProd, Path: "./matchmaker.log", MaxSizeMB: 30, MaxAgeDays: 7, MaxBackups: 3}
}

// NewLogger builds a named sugared logger from cfg.
func NewLogger(name string, cfg Config) (*zap.SugaredLogger, error) {
	level, err := zapcore.ParseLevel(strings.ToLower(cfg.Level))
	if err != nil {
		return nil, errors.Wrapf(err, "log level %q", cfg.Level)
	}

	var syncers []zapcore.WriteSyncer
	if cfg.Console || cfg.Path == "" {
		syncers = append(syncers, zapcore.Lock(os.Stderr))
	}
	if cfg.Path != "" {
		syncers = append(syncers, zapcore.AddSync(&lumberjack.Logger{
			Filename:   cfg.Path,
			MaxSize:    cfg.MaxSizeMB,
			MaxAge:     cfg.MaxAgeDays,
			MaxBackups: cfg.MaxBackups,
		}))
	}

	var encoder zapcore.Encoder
	switch cfg.Mode {
	case ModeProd:
		encoder = zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig())
	case ModeDev, "":
		encoder = zapcore.NewConsoleEncoder(devEncoderConfig())
	default:
		return nil, errors.Errorf("unknown log mode %q", cfg.Mode)
	}

	core := zapcore.NewCore(encoder, zapcore.NewMultiWriteSyncer(syncers...), level)
	return zap.New(core, zap.AddCaller()).Named(name).Sugar(), nil
}

func devEncoderConfig() zapcore.EncoderConfig {
	ec := zap.NewDevelopmentEncoderConfig()
	ec.EncodeLevel = func(level zapcore.Level, enc zapcore.PrimitiveArrayEncoder) {
		enc.AppendString("[" + level.CapitalString() + "]")
	}
	ec.EncodeTime = func(t time.Time, enc zapcore.PrimitiveArrayEncoder) {
		enc.AppendString(t.Format("2006-01-02 15:04:05.000"))
	}
	ec.EncodeCaller = zapcore.ShortCallerEncoder
	return ec
}
