// Copyright the corechess authors.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// orderer.go ranks a node's legal moves before search, so that alpha-beta
// sees its best candidates first and prunes more. Grounded on the teacher's
// move_ordering.go, but replacing its staged generator/killer/history state
// machine with a single score-and-sort pass, which is all this contract
// calls for.
package search

import (
	"sort"

	"github.com/corechess/corechess/board"
	"github.com/corechess/corechess/eval"
)

const (
	checkBonus       = 50000
	promotionBonus   = 30000
	captureBonus     = 20000
	badCapturePenalty = 25000
	killer0Bonus     = 9000
	killer1Bonus     = 8000
)

// OrderMoves returns pos's legal moves ordered for searching at depth, with
// hashMove (if non-null and legal) promoted to the front.
func OrderMoves(pos *board.Position, depth int, killers *killerTable, hashMove board.Move) []board.Move {
	moves := pos.LegalMoves()
	if len(moves) > 3 {
		scores := make([]int, len(moves))
		k0, k1 := killers.At(depth)
		endgame := eval.IsEndgame(pos)
		for i, m := range moves {
			scores[i] = scoreMove(pos, m, k0, k1, endgame)
		}
		sortByScoreDesc(moves, scores)
	}
	promoteToFront(moves, hashMove)
	return moves
}

// scoreMove sums every applicable tier's bonus rather than returning at the
// first match: a move that both checks and captures (or both checks and
// promotes) accumulates all of those bonuses, so it still sorts above a
// move that only checks. Killers and the PST delta are tie-breakers among
// quiet moves only, so they're added exclusively when the move is neither a
// check, a promotion, nor a capture.
func scoreMove(pos *board.Position, m board.Move, k0, k1 board.Move, endgame bool) int {
	isCheck := pos.GivesCheck(m)
	isPromotion := m.IsPromotion()
	isCapture := m.IsCapture()

	score := 0
	if isCheck {
		score += checkBonus
	}
	if isPromotion {
		score += promotionBonus + board.MaterialValue[m.Promotion]
	}
	if isCapture {
		victim := board.MaterialValue[m.Capture.Figure()]
		attacker := board.MaterialValue[m.Piece.Figure()]
		score += captureBonus + 10*victim - attacker
		if attacker > victim {
			score -= badCapturePenalty
		}
	}

	if !isCheck && !isPromotion && !isCapture {
		switch m {
		case k0:
			score += killer0Bonus
		case k1:
			score += killer1Bonus
		default:
			color := m.Piece.Color()
			fig := m.Piece.Figure()
			score += eval.PSTValue(color, fig, m.To, endgame) - eval.PSTValue(color, fig, m.From, endgame)
		}
	}
	return score
}

// sortByScoreDesc stable-sorts moves by scores descending, preserving
// generator order among ties (the contract's tie-break rule).
func sortByScoreDesc(moves []board.Move, scores []int) {
	idx := make([]int, len(moves))
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(a, b int) bool {
		return scores[idx[a]] > scores[idx[b]]
	})
	sorted := make([]board.Move, len(moves))
	for i, j := range idx {
		sorted[i] = moves[j]
	}
	copy(moves, sorted)
}

func promoteToFront(moves []board.Move, hashMove board.Move) {
	if hashMove.IsNull() {
		return
	}
	for i, m := range moves {
		if m == hashMove {
			if i > 0 {
				copy(moves[1:i+1], moves[0:i])
				moves[0] = hashMove
			}
			return
		}
	}
}
