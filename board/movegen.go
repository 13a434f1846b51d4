// Copyright the corechess authors.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// movegen.go generates pseudo-legal moves per piece type and filters them
// down to legal moves by simulating each one and testing whether it leaves
// the mover's own king in check. Iteration order is fixed (pawns, knights,
// bishops, rooks, queens, king, then castles) so that two calls against the
// same position always return moves in the same order — the search's move
// orderer keeps this order among equally scored moves, and tests and perft
// rely on it too.
package board

// LegalMoves returns every legal move for the side to move.
func (pos *Position) LegalMoves() []Move {
	pseudo := pos.pseudoLegalMoves()
	moves := make([]Move, 0, len(pseudo))
	us := pos.turn
	for _, m := range pseudo {
		pos.Push(m)
		ok := !pos.IsChecked(us)
		pos.Pop()
		if ok {
			moves = append(moves, m)
		}
	}
	return moves
}

func (pos *Position) pseudoLegalMoves() []Move {
	var moves []Move
	us := pos.turn
	occupied := pos.byColor[White] | pos.byColor[Black]
	ours := pos.byColor[us]

	moves = pos.genPawnMoves(moves, us, occupied)

	knights := pos.byFigure[Knight] & ours
	for knights != 0 {
		from := knights.Pop()
		targets := knightAttack[from] &^ ours
		moves = pos.genTargets(moves, from, targets)
	}

	bishops := pos.byFigure[Bishop] & ours
	for bishops != 0 {
		from := bishops.Pop()
		targets := bishopAttacks(from, occupied) &^ ours
		moves = pos.genTargets(moves, from, targets)
	}

	rooks := pos.byFigure[Rook] & ours
	for rooks != 0 {
		from := rooks.Pop()
		targets := rookAttacks(from, occupied) &^ ours
		moves = pos.genTargets(moves, from, targets)
	}

	queens := pos.byFigure[Queen] & ours
	for queens != 0 {
		from := queens.Pop()
		targets := queenAttacks(from, occupied) &^ ours
		moves = pos.genTargets(moves, from, targets)
	}

	kings := pos.byFigure[King] & ours
	for kings != 0 {
		from := kings.Pop()
		targets := kingAttack[from] &^ ours
		moves = pos.genTargets(moves, from, targets)
	}

	moves = pos.genCastles(moves, us, occupied)
	return moves
}

func (pos *Position) genTargets(moves []Move, from Square, targets Bitboard) []Move {
	piece := pos.squares[from]
	for targets != 0 {
		to := targets.Pop()
		moves = append(moves, Move{
			From:    from,
			To:      to,
			Piece:   piece,
			Capture: pos.squares[to],
		})
	}
	return moves
}

var promotionFigures = [4]Figure{Queen, Rook, Bishop, Knight}

func (pos *Position) genPawnMoves(moves []Move, us Color, occupied Bitboard) []Move {
	pawns := pos.byFigure[Pawn] & pos.byColor[us]
	them := pos.byColor[us.Other()]

	var advance1, startRank Bitboard
	var dir int
	if us == White {
		advance1 = North(pawns) &^ occupied
		startRank = rank1 << 8
		dir = 8
	} else {
		advance1 = South(pawns) &^ occupied
		startRank = rank8 >> 8
		dir = -8
	}

	bb := advance1
	for bb != 0 {
		to := bb.Pop()
		from := Square(int(to) - dir)
		moves = pos.appendPawnMove(moves, from, to, NoPiece)
	}

	var advance2 Bitboard
	start := pawns & startRank
	if us == White {
		advance2 = North(North(start)&^occupied) &^ occupied
	} else {
		advance2 = South(South(start)&^occupied) &^ occupied
	}
	bb = advance2
	for bb != 0 {
		to := bb.Pop()
		from := Square(int(to) - 2*dir)
		moves = append(moves, Move{From: from, To: to, Piece: ColorFigure(us, Pawn)})
	}

	fromBB := pawns
	for fromBB != 0 {
		from := fromBB.Pop()
		targets := pawnAttack[us][from] & them
		for targets != 0 {
			to := targets.Pop()
			moves = pos.appendPawnMove(moves, from, to, pos.squares[to])
		}
	}

	if pos.epSquare != NoSquare {
		attackers := pawnAttack[us.Other()][pos.epSquare] & pawns
		for attackers != 0 {
			from := attackers.Pop()
			capSq := RankFile(from.Rank(), pos.epSquare.File())
			moves = append(moves, Move{
				From:     from,
				To:       pos.epSquare,
				Piece:    ColorFigure(us, Pawn),
				Capture:  pos.squares[capSq],
				MoveType: EnPassant,
			})
		}
	}

	return moves
}

func (pos *Position) appendPawnMove(moves []Move, from, to Square, capture Piece) []Move {
	us := pos.squares[from].Color()
	rank := to.Rank()
	if rank == 7 || rank == 0 {
		for _, fig := range promotionFigures {
			moves = append(moves, Move{
				From:      from,
				To:        to,
				Piece:     ColorFigure(us, Pawn),
				Capture:   capture,
				Promotion: fig,
				MoveType:  Promotion,
			})
		}
		return moves
	}
	return append(moves, Move{From: from, To: to, Piece: ColorFigure(us, Pawn), Capture: capture})
}

func (pos *Position) genCastles(moves []Move, us Color, occupied Bitboard) []Move {
	opp := us.Other()
	if us == White {
		if pos.castleRights&WhiteOO != 0 &&
			!occupied.Has(SquareF1) && !occupied.Has(SquareG1) &&
			!pos.IsAttacked(SquareE1, opp) && !pos.IsAttacked(SquareF1, opp) && !pos.IsAttacked(SquareG1, opp) {
			moves = append(moves, Move{From: SquareE1, To: SquareG1, Piece: ColorFigure(White, King), MoveType: Castle})
		}
		if pos.castleRights&WhiteOOO != 0 &&
			!occupied.Has(SquareD1) && !occupied.Has(SquareC1) && !occupied.Has(SquareB1) &&
			!pos.IsAttacked(SquareE1, opp) && !pos.IsAttacked(SquareD1, opp) && !pos.IsAttacked(SquareC1, opp) {
			moves = append(moves, Move{From: SquareE1, To: SquareC1, Piece: ColorFigure(White, King), MoveType: Castle})
		}
		return moves
	}
	if pos.castleRights&BlackOO != 0 &&
		!occupied.Has(SquareF8) && !occupied.Has(SquareG8) &&
		!pos.IsAttacked(SquareE8, opp) && !pos.IsAttacked(SquareF8, opp) && !pos.IsAttacked(SquareG8, opp) {
		moves = append(moves, Move{From: SquareE8, To: SquareG8, Piece: ColorFigure(Black, King), MoveType: Castle})
	}
	if pos.castleRights&BlackOOO != 0 &&
		!occupied.Has(SquareD8) && !occupied.Has(SquareC8) && !occupied.Has(SquareB8) &&
		!pos.IsAttacked(SquareE8, opp) && !pos.IsAttacked(SquareD8, opp) && !pos.IsAttacked(SquareC8, opp) {
		moves = append(moves, Move{From: SquareE8, To: SquareC8, Piece: ColorFigure(Black, King), MoveType: Castle})
	}
	return moves
}

// MoveToUCI renders m in UCI's long algebraic subset, e.g. "e2e4", "a7a8q".
func MoveToUCI(m Move) string { return m.String() }

// UCIToMove resolves a UCI move string against pos's legal moves. It returns
// an error if s does not name a legal move, so illegal or malformed engine
// input is rejected at the boundary rather than silently played.
func UCIToMove(pos *Position, s string) (Move, error) {
	for _, m := range pos.LegalMoves() {
		if m.String() == s {
			return m, nil
		}
	}
	return NullMove, &uciMoveError{s}
}

type uciMoveError struct{ s string }

func (e *uciMoveError) Error() string { return "board: " + e.s + " is not a legal move" }
