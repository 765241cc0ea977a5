// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package logging builds the zap logger shared by the CLI.
package logging

import (
	"fmt"
	"io"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Levels selected by the shortcut flags
const (
	LevelDebug = "debug"
	LevelInfo  = "info"
	LevelWarn  = "warn"
	LevelError = "error"
)

// Flags mirrors the persistent log flags. A set shortcut flag beats Level.
type Flags struct {
	Level   string
	Debug   bool
	Verbose bool
	Quiet   bool
}

// Resolve picks the effective level name: --debug, then --verbose, then --quiet, then --log-level.
// An empty --log-level means warn.
func (f Flags) Resolve() string {
	switch {
	case f.Debug:
		return LevelDebug
	case f.Verbose:
		return LevelInfo
	case f.Quiet:
		return LevelError
	case f.Level == "":
		return LevelWarn
	default:
		return f.Level
	}
}

// ParseLevel accepts zap level names in any case ("WARN", "info", ...)
func ParseLevel(s string) (zapcore.Level, error) {
	var lvl zapcore.Level
	if err := lvl.UnmarshalText([]byte(strings.ToLower(strings.TrimSpace(s)))); err != nil {
		return lvl, fmt.Errorf("invalid log level %q: %w", s, err)
	}
	return lvl, nil
}

// New returns a console logger writing to w at the given level
func New(w io.Writer, level string) (*zap.Logger, error) {
	lvl, err := ParseLevel(level)
	if err != nil {
		return nil, err
	}
	encCfg := zap.NewDevelopmentEncoderConfig()
	encCfg.EncodeLevel = zapcore.CapitalColorLevelEncoder
	encCfg.EncodeTime = zapcore.TimeEncoderOfLayout("15:04:05.000")
	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(encCfg),
		zapcore.Lock(zapcore.AddSync(w)),
		zap.NewAtomicLevelAt(lvl),
	)
	return zap.New(core).Named("deploy"), nil
}
