// Package logging configures the shared zap logger for the editor.
//
// All output goes to stderr so stdout stays clean for dump output and
// script-mode results. Set IMGEDIT_LOG_LEVEL=debug to see no-op decisions
// and per-operation tracing.
package logging

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var logger *zap.SugaredLogger

func init() {
	logger = NewLogger()
}

// GetLogger returns the process-wide sugared logger.
func GetLogger() *zap.SugaredLogger {
	return logger
}

// NewLogger builds a console logger writing to stderr. The level defaults
// to info and is raised to debug when IMGEDIT_LOG_LEVEL=debug.
func NewLogger() *zap.SugaredLogger {
	level := zapcore.InfoLevel
	if os.Getenv("IMGEDIT_LOG_LEVEL") == "debug" {
		level = zapcore.DebugLevel
	}

	cfg := zap.Config{
		Level:    zap.NewAtomicLevelAt(level),
		Encoding: "console",
		EncoderConfig: zapcore.EncoderConfig{
			MessageKey:  "msg",
			LevelKey:    "level",
			TimeKey:     "time",
			EncodeLevel: zapcore.CapitalLevelEncoder,
			EncodeTime:  zapcore.TimeEncoderOfLayout("2006-01-02 15:04:05"),
		},
		OutputPaths:      []string{"stderr"},
		ErrorOutputPaths: []string{"stderr"},
	}

	l, err := cfg.Build()
	if err != nil {
		panic(err)
	}
	return l.Sugar()
}
