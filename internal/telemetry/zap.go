// Package telemetry provides the library's optional diagnostic logger.
//
// The core computation (parse, validate, classify, format) is pure and
// silent: no operation logs on its hot path. Metadata loading is the one
// place in the module that can fail in an interesting, diagnosable way, so
// it accepts an injectable *zap.Logger built here. Callers who never
// configure one get a no-op logger and pay nothing for it.
package telemetry

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New builds a logger at info level, or debug level if debug is true.
// format selects the encoding: "json" for log-pipeline consumption, or
// "console" for local debugging of metadata-load failures. The loader only
// ever calls Info/Error with a handful of fields, so this stays with zap's
// stock encoder configs rather than a hand-tuned one.
func New(format string, debug bool) *zap.Logger {
	level := zapcore.InfoLevel
	if debug {
		level = zapcore.DebugLevel
	}

	var encoderConfig zapcore.EncoderConfig
	switch format {
	case "json":
		encoderConfig = zap.NewProductionEncoderConfig()
	case "console":
		encoderConfig = zap.NewDevelopmentEncoderConfig()
	default:
		panic(fmt.Sprintf("unknown logger format: %s", format))
	}
	encoderConfig.EncodeTime = zapcore.RFC3339TimeEncoder

	log, err := zap.Config{
		Level:            zap.NewAtomicLevelAt(level),
		Development:      debug,
		Encoding:         format,
		EncoderConfig:    encoderConfig,
		OutputPaths:      []string{"stdout"},
		ErrorOutputPaths: []string{"stderr"},
	}.Build()
	if err != nil {
		panic(err)
	}
	return log
}
