package log

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var defaultLogger *zap.Logger

func Logger() *zap.Logger {
	return defaultLogger
}

func init() {
	logger, err := zap.NewProduction(zap.AddStacktrace(zap.ErrorLevel), zap.AddCaller())
	if err != nil {
		panic(err)
	}
	defaultLogger = logger
}

// SetVerbosity replaces the default logger with one capped at the given
// level ('debug', 'info', 'warn', 'error', 'dpanic', 'panic', 'fatal').
func SetVerbosity(verbosity string) error {
	lvl := new(zapcore.Level)
	if err := lvl.Set(verbosity); err != nil {
		return err
	}

	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(*lvl)
	logger, err := cfg.Build(zap.AddStacktrace(zap.ErrorLevel), zap.AddCaller())
	if err != nil {
		return err
	}
	defaultLogger = logger

	return nil
}

// Debug is a convenient alias for defaultLogger.Debug
func Debug(msg string, fields ...zap.Field) {
	defaultLogger.Debug(msg, fields...)
}

// Info is a convenient alias for defaultLogger.Info
func Info(msg string, fields ...zap.Field) {
	defaultLogger.Info(msg, fields...)
}

// Warn is a convenient alias for defaultLogger.Warn
func Warn(msg string, fields ...zap.Field) {
	defaultLogger.Warn(msg, fields...)
}

// Error is a convenient alias for defaultLogger.Error
func Error(msg string, fields ...zap.Field) {
	defaultLogger.Error(msg, fields...)
}

// DPanic is a convenient alias for defaultLogger.DPanic
func DPanic(msg string, fields ...zap.Field) {
	defaultLogger.DPanic(msg, fields...)
}

// Panic is a convenient alias for defaultLogger.Panic
func Panic(msg string, fields ...zap.Field) {
	defaultLogger.Panic(msg, fields...)
}

// Fatal is a convenient alias for defaultLogger.Fatal
func Fatal(msg string, fields ...zap.Field) {
	defaultLogger.Fatal(msg, fields...)
}
