package logger

import (
	"io"
	"os"

	"github.com/natefinch/lumberjack"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/huynhanx03/go-crossqueue/pkg/settings"
)

// console receives every log entry in addition to the optional file sink.
// stdout is left to program output.
var console io.Writer = os.Stderr

// New builds a JSON zap logger from cfg. Entries go to stderr and, when
// FileLogName is set, to a lumberjack-rotated file.
func New(cfg settings.Logger) (*zap.Logger, error) {
	level, err := ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, err
	}

	sinks := []zapcore.WriteSyncer{zapcore.AddSync(console)}
	if cfg.FileLogName != "" {
		sinks = append(sinks, zapcore.AddSync(&lumberjack.Logger{
			Filename:   cfg.FileLogName,
			MaxSize:    cfg.MaxSize,
			MaxBackups: cfg.MaxBackups,
			MaxAge:     cfg.MaxAge,
			Compress:   cfg.Compress,
		}))
	}

	encoderCfg := zap.NewProductionEncoderConfig()
	encoderCfg.EncodeTime = zapcore.ISO8601TimeEncoder

	core := zapcore.NewCore(
		zapcore.NewJSONEncoder(encoderCfg),
		zapcore.NewMultiWriteSyncer(sinks...),
		level,
	)
	return zap.New(core, zap.AddCaller()), nil
}

// NewNop returns a logger that discards everything.
func NewNop() *zap.Logger {
	return zap.NewNop()
}

// ParseLevel maps a config level name to a zap level. Empty means info.
func ParseLevel(text string) (zapcore.Level, error) {
	if text == "" {
		return zapcore.InfoLevel, nil
	}
	level, err := zapcore.ParseLevel(text)
	if err != nil {
		return zapcore.InfoLevel, errors.Wrapf(err, "unknown log level %q", text)
	}
	return level, nil
}
