// Copyright the corechess authors.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// pst.go holds the piece-square tables. Each table is transcribed verbatim
// from its printed form, row by row, into array rows 0..7 where row r holds
// the values for board.Square rank r (rank 0 = the "1" rank). Evaluator
// indexes a white piece's table entry by the square's Mirror() and a black
// piece's by its own square, which is what gives both colors a PST that
// rewards advancing a pawn toward its own promotion rank; get this backwards
// and engine play degrades sharply without any error being raised.
package eval

import "github.com/corechess/corechess/board"

type pstTable [64]int

// pawnPST is given by the contract byte-for-byte: row 0 is the rank closest
// to black's back rank (white's 8th), row 7 is white's 1st rank.
var pawnPST = rowsToTable([8][8]int{
	{50, 50, 50, 50, 50, 50, 50, 50},
	{30, 30, 40, 45, 45, 40, 30, 30},
	{25, 25, 35, 40, 40, 35, 25, 25},
	{20, 20, 30, 35, 35, 30, 20, 20},
	{15, 15, 25, 30, 30, 25, 15, 15},
	{10, 10, 15, 20, 20, 15, 10, 10},
	{5, 5, 5, 5, 5, 5, 5, 5},
	{0, 0, 0, 0, 0, 0, 0, 0},
})

// knightPST, bishopPST, rookPST, queenPST and the two king tables are not
// part of the contract's literal data (only the pawn table is given
// verbatim); these are authored in the same spirit — small, symmetric,
// centre-favouring tables of the kind every engine in the pack ships — and
// are not claimed to reproduce any particular reference engine's tuning.
// See DESIGN.md.
var knightPST = rowsToTable([8][8]int{
	{-50, -40, -30, -30, -30, -30, -40, -50},
	{-40, -20, 0, 0, 0, 0, -20, -40},
	{-30, 0, 10, 15, 15, 10, 0, -30},
	{-30, 5, 15, 20, 20, 15, 5, -30},
	{-30, 0, 15, 20, 20, 15, 0, -30},
	{-30, 5, 10, 15, 15, 10, 5, -30},
	{-40, -20, 0, 5, 5, 0, -20, -40},
	{-50, -40, -30, -30, -30, -30, -40, -50},
})

var bishopPST = rowsToTable([8][8]int{
	{-20, -10, -10, -10, -10, -10, -10, -20},
	{-10, 0, 0, 0, 0, 0, 0, -10},
	{-10, 0, 5, 10, 10, 5, 0, -10},
	{-10, 5, 5, 10, 10, 5, 5, -10},
	{-10, 0, 10, 10, 10, 10, 0, -10},
	{-10, 10, 10, 10, 10, 10, 10, -10},
	{-10, 5, 0, 0, 0, 0, 5, -10},
	{-20, -10, -10, -10, -10, -10, -10, -20},
})

var rookPST = rowsToTable([8][8]int{
	{0, 0, 0, 0, 0, 0, 0, 0},
	{5, 10, 10, 10, 10, 10, 10, 5},
	{-5, 0, 0, 0, 0, 0, 0, -5},
	{-5, 0, 0, 0, 0, 0, 0, -5},
	{-5, 0, 0, 0, 0, 0, 0, -5},
	{-5, 0, 0, 0, 0, 0, 0, -5},
	{-5, 0, 0, 0, 0, 0, 0, -5},
	{0, 0, 0, 5, 5, 0, 0, 0},
})

var queenPST = rowsToTable([8][8]int{
	{-20, -10, -10, -5, -5, -10, -10, -20},
	{-10, 0, 0, 0, 0, 0, 0, -10},
	{-10, 0, 5, 5, 5, 5, 0, -10},
	{-5, 0, 5, 5, 5, 5, 0, -5},
	{0, 0, 5, 5, 5, 5, 0, -5},
	{-10, 5, 5, 5, 5, 5, 0, -10},
	{-10, 0, 5, 0, 0, 0, 0, -10},
	{-20, -10, -10, -5, -5, -10, -10, -20},
})

var kingMiddlegamePST = rowsToTable([8][8]int{
	{-30, -40, -40, -50, -50, -40, -40, -30},
	{-30, -40, -40, -50, -50, -40, -40, -30},
	{-30, -40, -40, -50, -50, -40, -40, -30},
	{-30, -40, -40, -50, -50, -40, -40, -30},
	{-20, -30, -30, -40, -40, -30, -30, -20},
	{-10, -20, -20, -20, -20, -20, -20, -10},
	{20, 20, 0, 0, 0, 0, 20, 20},
	{20, 30, 10, 0, 0, 10, 30, 20},
})

var kingEndgamePST = rowsToTable([8][8]int{
	{-50, -40, -30, -20, -20, -30, -40, -50},
	{-30, -20, -10, 0, 0, -10, -20, -30},
	{-30, -10, 20, 30, 30, 20, -10, -30},
	{-30, -10, 30, 40, 40, 30, -10, -30},
	{-30, -10, 30, 40, 40, 30, -10, -30},
	{-30, -10, 20, 30, 30, 20, -10, -30},
	{-30, -30, 0, 0, 0, 0, -30, -30},
	{-50, -30, -30, -30, -30, -30, -30, -50},
})

// rowsToTable flattens a printed 8x8 table (row 0 first) into a pstTable
// where row r occupies board.Square ranks r*8..r*8+7.
func rowsToTable(rows [8][8]int) pstTable {
	var t pstTable
	for r := 0; r < 8; r++ {
		for f := 0; f < 8; f++ {
			t[board.RankFile(r, f)] = rows[r][f]
		}
	}
	return t
}

// pstFor returns the table for fig, choosing the endgame king table when
// endgame is true.
func pstFor(fig board.Figure, endgame bool) *pstTable {
	switch fig {
	case board.Pawn:
		return &pawnPST
	case board.Knight:
		return &knightPST
	case board.Bishop:
		return &bishopPST
	case board.Rook:
		return &rookPST
	case board.Queen:
		return &queenPST
	case board.King:
		if endgame {
			return &kingEndgamePST
		}
		return &kingMiddlegamePST
	}
	return nil
}

// pstValue looks up the PST bonus for a piece of color c and figure fig
// standing on sq, per the contract's indexing rule: a white piece indexes
// the table by the square's vertical mirror, a black piece indexes it
// directly.
func pstValue(c board.Color, fig board.Figure, sq board.Square, endgame bool) int {
	table := pstFor(fig, endgame)
	if table == nil {
		return 0
	}
	if c == board.White {
		return table[sq.Mirror()]
	}
	return table[sq]
}

// PSTValue exports pstValue for the move orderer, which needs the same
// table lookup to score quiet moves by positional delta.
func PSTValue(c board.Color, fig board.Figure, sq board.Square, endgame bool) int {
	return pstValue(c, fig, sq, endgame)
}
