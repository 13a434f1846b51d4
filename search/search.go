// Copyright the corechess authors.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// search.go implements the recursive alpha-beta search with quiescence
// extension (contract 4.D): transposition lookups, null-move reduction,
// late-move reduction and killer-move recording. Grounded on the teacher's
// engine.go searchTree/searchQuiescence pair, trimmed to the exact
// interactions this contract specifies (no futility pruning, no history
// pruning, no check extension — the teacher's search does all three, but
// this variant must reproduce a narrower algorithm exactly).
package search

import (
	"github.com/corechess/corechess/board"
	"github.com/corechess/corechess/eval"
)

// Infinity stands in for the unbounded window edges; it is chosen well
// beyond any achievable real score, including the mate sentinel.
const Infinity = 1 << 20

// maxQuiescenceDepth caps quiescence recursion (contract 4.D.quiescence.2).
const maxQuiescenceDepth = 10

// Stats reports operational counters accumulated across a search.
type Stats struct {
	Nodes      int64
	TTProbes   int64
	TTHits     int64
	SelDepth   int
}

// CacheHitRatio returns TTHits/TTProbes, or 0 if no probes were made.
func (s Stats) CacheHitRatio() float64 {
	if s.TTProbes == 0 {
		return 0
	}
	return float64(s.TTHits) / float64(s.TTProbes)
}

// Engine bundles the transposition table and killer store that persist
// across search_best calls, per the contract's note that these are
// process-wide state owned by the engine rather than the recursion.
type Engine struct {
	TT      *Table
	Killers *killerTable
	Stats   Stats
}

// NewEngine builds an Engine with a fresh table of the given capacity (0
// selects DefaultCapacity) and an empty killer store.
func NewEngine(ttCapacity int) *Engine {
	return &Engine{TT: NewTable(ttCapacity), Killers: newKillerTable()}
}

// Search implements contract 4.D: search(P, depth, alpha, beta, maximizing).
func (e *Engine) Search(pos *board.Position, depth, alpha, beta int, maximizing bool) int {
	e.Stats.Nodes++
	alphaOrig, betaOrig := alpha, beta

	key := Key(pos.ZobristKey(), maximizing)
	var hashMove board.Move
	e.Stats.TTProbes++
	if entry, ok := e.TT.Probe(key); ok {
		e.Stats.TTHits++
		hashMove = entry.Move
		if entry.Depth >= depth {
			switch entry.Flag {
			case Exact:
				return entry.Score
			case LowerBound:
				if entry.Score > alpha {
					alpha = entry.Score
				}
			case UpperBound:
				if entry.Score < beta {
					beta = entry.Score
				}
			}
			if alpha >= beta {
				return entry.Score
			}
		}
	}

	if depth <= 0 {
		return e.Quiescence(pos, alpha, beta, maximizing, 0)
	}
	if pos.IsGameOver() {
		return eval.Evaluate(pos)
	}

	inCheck := pos.IsChecked(pos.Turn())
	if depth >= 3 && !inCheck && !eval.IsEndgame(pos) {
		pos.Push(board.NullMove)
		nullScore := e.Search(pos, depth-3, alpha, beta, !maximizing)
		pos.Pop()
		if maximizing && nullScore >= beta {
			verify := e.Search(pos, depth-1, alpha, beta, maximizing)
			if verify < beta {
				return verify
			}
			return beta
		}
		if !maximizing && nullScore <= alpha {
			verify := e.Search(pos, depth-1, alpha, beta, maximizing)
			if verify > alpha {
				return verify
			}
			return alpha
		}
	}

	moves := OrderMoves(pos, depth, e.Killers, hashMove)
	k0, k1 := e.Killers.At(depth)

	var bestMove board.Move
	bestVal := -Infinity
	if !maximizing {
		bestVal = Infinity
	}

	for i, m := range moves {
		r := 0
		quiet := m.IsQuiet()
		if i >= 4 && depth >= 3 && quiet && m != k0 && m != k1 && !pos.GivesCheck(m) {
			r = 1
			if depth >= 6 && i >= 8 {
				r = 2
			}
		}
		childDepth := depth - 1 - r
		if childDepth < 0 {
			childDepth = 0
		}

		pos.Push(m)
		score := e.Search(pos, childDepth, alpha, beta, !maximizing)
		pos.Pop()

		if maximizing {
			if score > bestVal {
				bestVal = score
				bestMove = m
			}
			if bestVal > alpha {
				alpha = bestVal
			}
		} else {
			if score < bestVal {
				bestVal = score
				bestMove = m
			}
			if bestVal < beta {
				beta = bestVal
			}
		}

		if beta <= alpha {
			if quiet {
				e.Killers.Record(depth, m)
			}
			break
		}
	}

	flag := Exact
	if bestVal <= alphaOrig {
		flag = UpperBound
	} else if bestVal >= betaOrig {
		flag = LowerBound
	}
	e.TT.Store(key, bestVal, bestMove, depth, flag)
	return bestVal
}

// Quiescence implements contract 4.D.quiescence: a capture-or-promotion-only
// search extension run at the horizon to avoid the horizon effect. It never
// writes transposition entries.
func (e *Engine) Quiescence(pos *board.Position, alpha, beta int, maximizing bool, qdepth int) int {
	e.Stats.Nodes++
	if qdepth > e.Stats.SelDepth {
		e.Stats.SelDepth = qdepth
	}

	var hashMove board.Move
	key := Key(pos.ZobristKey(), maximizing)
	e.Stats.TTProbes++
	if entry, ok := e.TT.Probe(key); ok && entry.Depth > 0 {
		e.Stats.TTHits++
		hashMove = entry.Move
	}

	standPat := eval.Evaluate(pos)
	if qdepth > maxQuiescenceDepth {
		return standPat
	}

	if maximizing {
		if standPat >= beta {
			return beta
		}
		if standPat > alpha {
			alpha = standPat
		}
	} else {
		if standPat <= alpha {
			return alpha
		}
		if standPat < beta {
			beta = standPat
		}
	}

	moves := OrderMoves(pos, 0, e.Killers, hashMove)
	for _, m := range moves {
		if !m.IsCapture() && !m.IsPromotion() {
			continue
		}
		pos.Push(m)
		score := e.Quiescence(pos, alpha, beta, !maximizing, qdepth+1)
		pos.Pop()

		if maximizing {
			if score > alpha {
				alpha = score
			}
		} else {
			if score < beta {
				beta = score
			}
		}
		if beta <= alpha {
			break
		}
	}

	if maximizing {
		return alpha
	}
	return beta
}
