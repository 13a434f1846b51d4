// Copyright the corechess authors.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// config.go loads optional TOML configuration, grounded on FrankyGo's
// config loading convention (also a chess engine in the retrieval pack):
// an optional file on disk, sane defaults when it is absent or partial.
package engine

import (
	"github.com/BurntSushi/toml"

	"github.com/corechess/corechess/search"
)

// Config holds the tunables a deployment may want to override without a
// rebuild.
type Config struct {
	// HashSizeEntries is the transposition table capacity; rounded up to
	// the next power of two.
	HashSizeEntries int `toml:"hash_size_entries"`
	// AspirationWindow records the half-width of the root aspiration
	// window. The engine does not read it: the controller always uses
	// search.AspirationWindow.
	AspirationWindow int `toml:"aspiration_window"`
	// BookPath is the path to a Polyglot opening book file. Empty
	// disables book lookup.
	BookPath string `toml:"book_path"`
	// LogLevel is a zerolog level name: "debug", "info", "warn", "error".
	LogLevel string `toml:"log_level"`
}

// DefaultConfig returns the contract's defaults: a 2^20-entry table, a
// 50cp aspiration window, no book, info-level logging.
func DefaultConfig() Config {
	return Config{
		HashSizeEntries:  search.DefaultCapacity,
		AspirationWindow: search.AspirationWindow,
		BookPath:         "",
		LogLevel:         "info",
	}
}

// LoadConfig reads path as TOML over DefaultConfig, so an absent or
// partial file still yields a usable configuration. A malformed file
// is returned as an error; it is the caller's choice whether to fall
// back to defaults.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	_, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return cfg, err
	}
	return cfg, nil
}
