package logger

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var log *zap.Logger = zap.NewNop()

// Init builds the global logger. Release mode gets JSON production output,
// everything else gets the human-readable development console encoder.
func Init() (*zap.Logger, error) {
	var (
		l   *zap.Logger
		err error
	)
	if os.Getenv("GIN_MODE") == "release" {
		cfg := zap.NewProductionConfig()
		cfg.EncoderConfig.TimeKey = "ts"
		cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
		l, err = cfg.Build()
	} else {
		l, err = zap.NewDevelopment()
	}
	if err != nil {
		return nil, err
	}
	log = l
	return l, nil
}

// L returns the global logger. Safe to call before Init — it falls back
// to a no-op logger.
func L() *zap.Logger {
	return log
}

// Sync flushes buffered log entries. Call on shutdown.
func Sync() {
	_ = log.Sync()
}
