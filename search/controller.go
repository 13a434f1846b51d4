// Copyright the corechess authors.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// controller.go implements the iterative-deepening driver (contract 4.E):
// the depth loop, aspiration windows, the stability short-circuit, the
// mate-found early exit and the opening-book short-circuit. Grounded on the
// teacher's time_control.go and engine.go's Play/search functions.
package search

import (
	"time"

	"github.com/corechess/corechess/board"
	"github.com/corechess/corechess/eval"
)

// AspirationWindow is the half-width of the aspiration window around the
// previous iteration's score; a tunable knob, not part of the contract's
// fixed constants.
const AspirationWindow = 50

// StabilityMargin and StabilityMinDepth gate the stability short-circuit:
// from depth StabilityMinDepth on, an iteration whose best move matches the
// previous iteration's and whose score is within StabilityMargin centipawns
// of it ends the search, since further iterations are unlikely to change
// the decision.
const (
	StabilityMargin   = 20
	StabilityMinDepth = 10
)

// BookProber is the opaque Polyglot book collaborator. It returns ok=false
// when the book is absent, empty, or has no entry for pos.
type BookProber interface {
	Probe(pos *board.Position) (board.Move, bool)
}

// RootRNG selects among equal-scoring root moves. A nil RootRNG keeps the
// first-seen best move, which the contract allows.
type RootRNG interface {
	Intn(n int) int
}

// InfoLogger receives one call per completed iteration, with the exact
// depth/score/move that the contract's "Info: Depth D score S best M" line
// reports.
type InfoLogger func(depth, score int, move board.Move)

// Controller drives iterative deepening on top of an Engine.
type Controller struct {
	Engine *Engine
	Book   BookProber
	Rand   RootRNG
	Info   InfoLogger
}

// NewController builds a Controller around a fresh Engine.
func NewController(ttCapacity int) *Controller {
	return &Controller{Engine: NewEngine(ttCapacity)}
}

// SearchBest implements search_best(position, max_depth, time_limit).
// It returns the best move found, or false if the position has no legal
// moves.
func (c *Controller) SearchBest(pos *board.Position, maxDepth int, timeLimit time.Duration) (board.Move, bool) {
	if pos.FullMoveNumber() <= 15 && c.Book != nil {
		if m, ok := c.Book.Probe(pos); ok {
			return m, true
		}
	}

	c.Engine.TT.ClearIfFull()

	var bestMove board.Move
	haveBest := false
	bestScore := 0
	start := time.Now()

	for depth := 1; ; depth++ {
		c.Engine.Killers.Clear()

		if time.Since(start) > timeLimit {
			break
		}

		alpha, beta := -Infinity, Infinity
		if haveBest {
			alpha, beta = bestScore-AspirationWindow, bestScore+AspirationWindow
		}

		score, move, found := c.rootSearch(pos, depth, alpha, beta)
		if found && score <= alpha {
			score, move, found = c.rootSearch(pos, depth, -Infinity, beta)
		} else if found && score >= beta {
			score, move, found = c.rootSearch(pos, depth, alpha, Infinity)
		}

		if !found {
			break
		}

		if c.Info != nil {
			c.Info(depth, score, move)
		}

		if haveBest && move == bestMove && abs(score-bestScore) < StabilityMargin && depth >= StabilityMinDepth {
			break
		}

		bestMove, bestScore, haveBest = move, score, true

		if abs(score) > eval.MateRangeThreshold {
			break
		}
		if depth >= maxDepth {
			break
		}
	}

	return bestMove, haveBest
}

// rootSearch performs one root-level alpha-beta pass at depth, mirroring
// contract 4.D's per-node loop but tracking the best move explicitly and
// collecting ties for RootRNG to break.
func (c *Controller) rootSearch(pos *board.Position, depth, alpha, beta int) (int, board.Move, bool) {
	maximizing := pos.Turn() == board.White

	var hashMove board.Move
	key := Key(pos.ZobristKey(), maximizing)
	if entry, ok := c.Engine.TT.Probe(key); ok {
		hashMove = entry.Move
	}

	moves := OrderMoves(pos, depth, c.Engine.Killers, hashMove)
	if len(moves) == 0 {
		return 0, board.NullMove, false
	}

	bestVal := -Infinity
	if !maximizing {
		bestVal = Infinity
	}
	var ties []board.Move
	var tieVal = bestVal

	for _, m := range moves {
		pos.Push(m)
		score := c.Engine.Search(pos, depth-1, alpha, beta, !maximizing)
		pos.Pop()

		better := false
		if maximizing {
			better = score > bestVal
		} else {
			better = score < bestVal
		}
		if better {
			bestVal = score
			ties = ties[:0]
			ties = append(ties, m)
			tieVal = score
		} else if score == tieVal {
			ties = append(ties, m)
		}

		if maximizing {
			if bestVal > alpha {
				alpha = bestVal
			}
		} else {
			if bestVal < beta {
				beta = bestVal
			}
		}
		if beta <= alpha {
			break
		}
	}

	best := ties[0]
	if c.Rand != nil && len(ties) > 1 {
		best = ties[c.Rand.Intn(len(ties))]
	}
	return bestVal, best, true
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
