// Copyright the corechess authors.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package eval implements the core's static evaluator: terminal detection,
// material plus piece-square scoring, and the passed-pawn bonus. Evaluate is
// a pure function of a board.Position; it has no knowledge of search.
package eval

import "github.com/corechess/corechess/board"

// Mate sentinels. A position where white is checkmated scores -Mate; a
// position where black is checkmated scores +Mate. Evaluate never returns a
// value with |score| > Mate.
const Mate = 9999

// MateRangeThreshold marks scores the iterative controller treats as
// "mate found" for its early-exit rule.
const MateRangeThreshold = 9000

// PassedPawnBonus is added per rank of advancement (beyond the second rank)
// for a passed pawn.
const PassedPawnBonus = 50

// Evaluate returns a centipawn score for pos, positive favoring white.
func Evaluate(pos *board.Position) int {
	if pos.IsCheckmate() {
		if pos.Turn() == board.White {
			return -Mate
		}
		return Mate
	}
	if pos.IsStalemate() || pos.IsInsufficientMaterial() || pos.FiftyMoveRule() {
		return 0
	}

	endgame := IsEndgame(pos)
	score := 0
	for sq := board.Square(0); sq < 64; sq++ {
		p := pos.PieceAt(sq)
		if p == board.NoPiece {
			continue
		}
		fig := p.Figure()
		col := p.Color()
		term := board.MaterialValue[fig] + pstValue(col, fig, sq, endgame)
		if fig == board.Pawn && isPassedPawn(pos, sq, col) {
			term += passedPawnBonus(sq, col)
		}
		score += col.Multiplier() * term
	}
	return score
}

// IsEndgame implements the contract's endgame predicate: both sides have
// zero queens, or total piece count (of either color, any figure) is 12 or
// fewer.
func IsEndgame(pos *board.Position) bool {
	if pos.ByPieceType(board.Queen) == 0 {
		return true
	}
	total := (pos.ByColor(board.White) | pos.ByColor(board.Black)).Count()
	return total <= 12
}

// isPassedPawn reports whether the pawn of color c on sq is passed: no
// enemy pawn occupies sq's file or an adjacent file on any rank strictly
// ahead of sq, from c's perspective.
func isPassedPawn(pos *board.Position, sq board.Square, c board.Color) bool {
	enemyPawns := pos.ByPieceType(board.Pawn) & pos.ByColor(c.Other())
	file := sq.File()
	loFile, hiFile := file-1, file+1
	if loFile < 0 {
		loFile = 0
	}
	if hiFile > 7 {
		hiFile = 7
	}

	bb := enemyPawns
	for bb != 0 {
		other := bb.Pop()
		if other.File() < loFile || other.File() > hiFile {
			continue
		}
		if c == board.White {
			if other.Rank() > sq.Rank() {
				return false
			}
		} else {
			if other.Rank() < sq.Rank() {
				return false
			}
		}
	}
	return true
}

// passedPawnBonus returns PassedPawnBonus * (r - 1) where r is the pawn's
// rank from its own side's home rank (0) to the promotion rank (7).
func passedPawnBonus(sq board.Square, c board.Color) int {
	r := sq.Rank()
	if c == board.Black {
		r = 7 - r
	}
	return PassedPawnBonus * (r - 1)
}
