package cmd

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// logger is the application logger, silent until InitLogger is called.
var logger = zap.NewNop()

// InitLogger builds the application logger, writing to stderr. Warnings and
// errors only, unless Verbose is set.
//
// It returns a function that flushes the logger.
func InitLogger() func() {
	cfg := zap.NewDevelopmentConfig()
	cfg.Level = zap.NewAtomicLevelAt(zapcore.WarnLevel)
	if Verbose {
		cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	cfg.DisableStacktrace = true
	cfg.DisableCaller = !Verbose
	cfg.EncoderConfig.TimeKey = "" // output is for humans, not collectors

	l, err := cfg.Build()
	if err != nil {
		// the development config only writes to stderr, this should not happen.
		return func() {}
	}
	logger = l
	return func() { _ = l.Sync() }
}
