//
// corvid - a small Go chess engine core (search, TT, iterative deepening)
//
// MIT License
//
// Copyright (c) 2020-2026 corvid contributors
//

// Package config loads corvid's runtime settings from a TOML file,
// mirroring the teacher's internal/config: a Settings struct with
// sensible defaults that Load() overlays file contents onto, rather than
// failing when the file is absent.
package config

import (
	"os"

	"github.com/BurntSushi/toml"
)

// Settings holds the ambient, non-search-critical knobs a running engine
// needs (spec.md's core itself takes everything else through Limits).
type Settings struct {
	TTSizeMB    int    `toml:"tt_size_mb"`
	DefaultDepth int   `toml:"default_depth"`
	UseQSearch  bool   `toml:"use_qsearch"`
	LogLevel    string `toml:"log_level"`
}

// Default returns the settings corvid runs with when no config file is
// found, matching the teacher's fallback-defaults pattern.
func Default() Settings {
	return Settings{
		TTSizeMB:     64,
		DefaultDepth: 6,
		UseQSearch:   true,
		LogLevel:     "info",
	}
}

// Load reads path and overlays it onto Default(). A missing file is not an
// error — it just means the defaults are used, matching the teacher's
// "config.toml is optional" behavior.
func Load(path string) (Settings, error) {
	settings := Default()
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return settings, nil
	}
	if _, err := toml.DecodeFile(path, &settings); err != nil {
		return settings, err
	}
	return settings, nil
}
