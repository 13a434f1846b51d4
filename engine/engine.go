// Copyright the corechess authors.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package engine wires the core's components (eval, search, book) behind
// the two functions the contract exposes: Evaluate and SearchBest. It also
// carries the ambient stack the bare core omits: structured logging
// (zerolog), TOML configuration and a seedable, engine-owned RNG (frand)
// rather than the process-global math/rand the contract explicitly warns
// against for reproducibility.
package engine

import (
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"
	"lukechampine.com/frand"

	"github.com/corechess/corechess/board"
	"github.com/corechess/corechess/book"
	"github.com/corechess/corechess/eval"
	"github.com/corechess/corechess/search"
)

// Engine owns the process-wide state the contract requires to persist
// across search_best calls: the transposition table and killer store
// (inside search.Controller), plus the book prober, RNG and logger this
// port adds around them.
type Engine struct {
	controller *search.Controller
	cache      *AnalysisCache
	log        zerolog.Logger
	cfg        Config
}

// Option configures an Engine at construction time.
type Option func(*Engine)

// WithBook loads a Polyglot book from path and wires it into the engine's
// root controller. Per the contract, a missing or malformed book degrades
// to "no book move" rather than failing construction.
func WithBook(path string) Option {
	return func(e *Engine) {
		if path == "" {
			return
		}
		b, err := book.Load(path)
		if err != nil {
			e.log.Warn().Err(err).Str("path", path).Msg("opening book unavailable, continuing without it")
			return
		}
		rng := frand.NewCustom(make([]byte, 32), 64, 12)
		e.controller.Book = book.NewProber(b, rng)
	}
}

// WithAnalysisCache attaches an optional persistent analysis cache.
func WithAnalysisCache(c *AnalysisCache) Option {
	return func(e *Engine) { e.cache = c }
}

// WithLogger overrides the default stderr logger.
func WithLogger(l zerolog.Logger) Option {
	return func(e *Engine) { e.log = l }
}

// New builds an Engine from cfg, applying opts in order.
func New(cfg Config, opts ...Option) *Engine {
	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = zerolog.InfoLevel
	}

	writer := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}
	e := &Engine{
		controller: search.NewController(cfg.HashSizeEntries),
		log:        zerolog.New(writer).Level(level).With().Timestamp().Logger(),
		cfg:        cfg,
	}
	e.controller.Rand = frand.NewCustom(make([]byte, 32), 64, 12)
	e.controller.Info = e.logIteration

	for _, opt := range opts {
		opt(e)
	}
	return e
}

func (e *Engine) logIteration(depth, score int, move board.Move) {
	// The contract requires this exact, stable informational line in
	// addition to whatever structured fields a deployment wants.
	e.log.Info().
		Int("depth", depth).
		Int("score", score).
		Str("move", move.String()).
		Int64("nodes", e.controller.Engine.Stats.Nodes).
		Msg(fmt.Sprintf("Info: Depth %d score %d best %s", depth, score, move.String()))
}

// Evaluate implements the contract's evaluate(position) -> int.
func (e *Engine) Evaluate(pos *board.Position) int {
	return eval.Evaluate(pos)
}

// SearchBest implements the contract's search_best(position, max_depth,
// time_limit) -> Move?. When an analysis cache is attached, a hit short-
// circuits the search entirely and a result is recorded on every miss.
func (e *Engine) SearchBest(pos *board.Position, maxDepth int, timeLimit time.Duration) (board.Move, bool) {
	fen := pos.FEN()
	if e.cache != nil {
		if m, ok := e.cache.Lookup(fen, maxDepth); ok {
			return m, true
		}
	}

	move, found := e.controller.SearchBest(pos, maxDepth, timeLimit)

	if e.cache != nil {
		if err := e.cache.Store(fen, maxDepth, move, found); err != nil {
			e.log.Warn().Err(err).Msg("failed to persist analysis cache entry")
		}
	}
	return move, found
}

// Stats returns the accumulated search statistics (nodes searched, TT hit
// ratio, selective depth) since the engine was constructed.
func (e *Engine) Stats() search.Stats {
	return e.controller.Engine.Stats
}
