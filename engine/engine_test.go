// Copyright the corechess authors.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package engine_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/corechess/corechess/board"
	"github.com/corechess/corechess/engine"
)

func TestDefaultConfig(t *testing.T) {
	cfg := engine.DefaultConfig()
	require.Equal(t, "", cfg.BookPath)
	require.Equal(t, "info", cfg.LogLevel)
}

func TestLoadConfigFallsBackToDefaultsOnMissingFile(t *testing.T) {
	cfg, err := engine.LoadConfig(filepath.Join(t.TempDir(), "missing.toml"))
	require.Error(t, err)
	require.Equal(t, engine.DefaultConfig().LogLevel, cfg.LogLevel)
}

func TestLoadConfigOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "corechess.toml")
	require.NoError(t, os.WriteFile(path, []byte(`log_level = "debug"`+"\n"), 0o644))

	cfg, err := engine.LoadConfig(path)
	require.NoError(t, err)
	require.Equal(t, "debug", cfg.LogLevel)
	require.Equal(t, engine.DefaultConfig().HashSizeEntries, cfg.HashSizeEntries)
}

func TestEngineEvaluateAndSearchBest(t *testing.T) {
	cfg := engine.DefaultConfig()
	cfg.HashSizeEntries = 1024
	eng := engine.New(cfg)

	pos := board.NewPosition()
	require.Equal(t, 0, eng.Evaluate(pos))

	move, found := eng.SearchBest(pos, 2, time.Second)
	require.True(t, found)
	require.False(t, move.IsNull())
}

func TestEngineWithMissingBookDegradesGracefully(t *testing.T) {
	cfg := engine.DefaultConfig()
	cfg.HashSizeEntries = 1024
	eng := engine.New(cfg, engine.WithBook(filepath.Join(t.TempDir(), "missing.bin")))

	pos := board.NewPosition()
	move, found := eng.SearchBest(pos, 2, time.Second)
	require.True(t, found)
	require.False(t, move.IsNull())
}

func TestAnalysisCacheStoreAndLookup(t *testing.T) {
	dir := t.TempDir()
	cache, err := engine.OpenAnalysisCache(dir)
	require.NoError(t, err)
	defer cache.Close()

	pos := board.NewPosition()
	fen := pos.FEN()
	move := pos.LegalMoves()[0]

	require.NoError(t, cache.Store(fen, 4, move, true))

	got, ok := cache.Lookup(fen, 4)
	require.True(t, ok)
	require.Equal(t, move.String(), got.String())

	_, ok = cache.Lookup(fen, 5)
	require.False(t, ok)
}
