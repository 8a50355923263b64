//
// corvid - a small Go chess engine core (search, TT, iterative deepening)
//
// MIT License
//
// Copyright (c) 2020-2026 corvid contributors
//

// Package logging configures the module-wide op/go-logging backend used by
// the module's loggers (internal/engine's, installed by cmd/corvid),
// mirroring the teacher's internal/logging: one process-wide backend, a
// leveled format string, and an idempotent Setup() so both the CLI and
// tests can configure logging without double-registering backends.
package logging

import (
	"os"
	"sync"

	"github.com/op/go-logging"
)

var (
	setupOnce sync.Once
	format    = logging.MustStringFormatter(
		`%{time:15:04:05.000} %{level:-7s} %{module}: %{message}`,
	)
)

// Setup installs a single stderr backend at the given level. Safe to call
// more than once; only the first call takes effect.
func Setup(level logging.Level) {
	setupOnce.Do(func() {
		backend := logging.NewLogBackend(os.Stderr, "", 0)
		formatted := logging.NewBackendFormatter(backend, format)
		leveled := logging.AddModuleLevel(formatted)
		leveled.SetLevel(level, "")
		logging.SetBackend(leveled)
	})
}

// ParseLevel maps a config/flag string ("debug", "info", ...) to a
// logging.Level, defaulting to Info on anything unrecognized.
func ParseLevel(s string) logging.Level {
	lvl, err := logging.LogLevel(s)
	if err != nil {
		return logging.INFO
	}
	return lvl
}
