package main

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/wippyai/calculator/errors"
)

type config struct {
	keys        []string
	logLevel    string
	logFile     string
	sessionID   string
	interactive bool
	mcp         bool
}

func (c config) validate() error {
	if c.interactive && c.mcp {
		return errors.New(errors.PhaseConfig, errors.KindInvalidInput).
			Path("i", "mcp").
			Detail("interactive and MCP modes are exclusive").
			Build()
	}
	if c.interactive && len(c.keys) > 0 {
		return errors.Unsupported(errors.PhaseConfig, "keys on the command line with -i")
	}
	if c.mcp && len(c.keys) > 0 {
		return errors.Unsupported(errors.PhaseConfig, "keys on the command line with -mcp")
	}
	if _, err := zapcore.ParseLevel(c.logLevel); err != nil {
		return errors.New(errors.PhaseConfig, errors.KindInvalidInput).
			Path("log-level").
			Value(c.logLevel).
			Cause(err).
			Detail("unknown log level").
			Build()
	}
	return nil
}

// newLogger builds the process logger. Stdout carries calculator output or
// MCP frames, so logs go to stderr unless a file is given. The terminal UI
// owns stderr too, so it only logs to a file.
func (c config) newLogger() (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(c.logLevel)
	if err != nil {
		return nil, errors.Wrap(errors.PhaseConfig, errors.KindInvalidInput, err, "log level")
	}

	sink := c.logFile
	if sink == "" {
		if c.interactive {
			return zap.NewNop(), nil
		}
		sink = "stderr"
	}

	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(level)
	cfg.OutputPaths = []string{sink}
	cfg.ErrorOutputPaths = []string{"stderr"}
	cfg.Sampling = nil

	logger, err := cfg.Build()
	if err != nil {
		return nil, errors.Wrap(errors.PhaseConfig, errors.KindIO, err, "build logger")
	}
	return logger, nil
}
