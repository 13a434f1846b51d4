// Copyright the corechess authors.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// cache.go is an optional, opt-in persistent analysis cache keyed by
// FEN+depth, grounded on hailam-chessplay's internal/storage (BadgerDB).
// It is not the transposition table: the TT is the in-memory, per-process,
// array-based structure the contract specifies in 4.C/9, cleared between
// moves. This cache instead lets repeated CLI invocations against the same
// position on the same machine skip a redundant search entirely, which is
// outside the contract's scope but a natural fit for the badger dependency
// the rest of this spec has no other use for.
package engine

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/dgraph-io/badger/v4"

	"github.com/corechess/corechess/board"
)

// AnalysisCache wraps a BadgerDB instance storing the last search_best
// result for a given (FEN, max_depth) pair.
type AnalysisCache struct {
	db *badger.DB
}

// cachedResult is what gets JSON-marshaled into badger.
type cachedResult struct {
	Move  string `json:"move"`
	Valid bool   `json:"valid"`
}

// OpenAnalysisCache opens (creating if necessary) a badger database rooted
// at dir.
func OpenAnalysisCache(dir string) (*AnalysisCache, error) {
	opts := badger.DefaultOptions(dir)
	opts.Logger = nil
	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("engine: open analysis cache: %w", err)
	}
	return &AnalysisCache{db: db}, nil
}

// Close releases the underlying database handle.
func (c *AnalysisCache) Close() error {
	if c == nil || c.db == nil {
		return nil
	}
	return c.db.Close()
}

func cacheKey(fen string, maxDepth int) []byte {
	return []byte(fmt.Sprintf("corechess/v1/%s/%d", fen, maxDepth))
}

// Lookup returns a cached move for (fen, maxDepth), if present.
func (c *AnalysisCache) Lookup(fen string, maxDepth int) (board.Move, bool) {
	if c == nil || c.db == nil {
		return board.NullMove, false
	}

	var result cachedResult
	err := c.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(cacheKey(fen, maxDepth))
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, &result)
		})
	})
	if err != nil || !result.Valid {
		return board.NullMove, false
	}

	pos, err := board.ParseFEN(fen)
	if err != nil {
		return board.NullMove, false
	}
	for _, m := range pos.LegalMoves() {
		if m.String() == result.Move {
			return m, true
		}
	}
	return board.NullMove, false
}

// Store records the result of a search_best call for later reuse.
func (c *AnalysisCache) Store(fen string, maxDepth int, move board.Move, found bool) error {
	if c == nil || c.db == nil {
		return nil
	}
	result := cachedResult{Valid: found}
	if found {
		result.Move = move.String()
	}
	data, err := json.Marshal(result)
	if err != nil {
		return err
	}
	return c.db.Update(func(txn *badger.Txn) error {
		e := badger.NewEntry(cacheKey(fen, maxDepth), data).WithTTL(30 * 24 * time.Hour)
		return txn.SetEntry(e)
	})
}
