// Package logger exposes the printf-style logging facade used across the
// service, backed by zap.
package logger

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var sugar *zap.SugaredLogger

// SetupLogger builds the process-wide logger. level is one of "debug",
// "info", "warn", "error"; anything else falls back to info.
func SetupLogger(level string) error {
	var zapLevel zapcore.Level
	switch level {
	case "debug":
		zapLevel = zapcore.DebugLevel
	case "info":
		zapLevel = zapcore.InfoLevel
	case "warn":
		zapLevel = zapcore.WarnLevel
	case "error":
		zapLevel = zapcore.ErrorLevel
	default:
		zapLevel = zapcore.InfoLevel
	}

	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(zapLevel)
	cfg.EncoderConfig.TimeKey = "timestamp"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	cfg.OutputPaths = []string{"stdout"}
	cfg.ErrorOutputPaths = []string{"stderr"}

	base, err := cfg.Build(zap.AddCallerSkip(1))
	if err != nil {
		return err
	}
	sugar = base.Sugar()
	return nil
}

// Sync flushes buffered log entries; call before process exit.
func Sync() {
	if sugar != nil {
		_ = sugar.Sync()
	}
}

func ensure() *zap.SugaredLogger {
	if sugar == nil {
		base, _ := zap.NewProduction(zap.AddCallerSkip(1))
		sugar = base.Sugar()
	}
	return sugar
}

// Debug logs at debug level.
func Debug(format string, v ...interface{}) {
	ensure().Debugf(format, v...)
}

// Info logs at info level.
func Info(format string, v ...interface{}) {
	ensure().Infof(format, v...)
}

// Warning logs at warn level.
func Warning(format string, v ...interface{}) {
	ensure().Warnf(format, v...)
}

// Error logs at error level.
func Error(format string, v ...interface{}) {
	ensure().Errorf(format, v...)
}
