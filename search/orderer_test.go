// Copyright the corechess authors.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package search

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/corechess/corechess/board"
)

// A knight capture that also gives check must score as the SUM of the
// check bonus and the (possibly negative, bad-capture-penalized) capture
// component, not just the check bonus alone — additivity is the exact
// behavior the original engine's move_scorer implements and this port must
// reproduce.
func TestScoreMoveIsAdditiveForCheckingCapture(t *testing.T) {
	pos, err := board.ParseFEN("6k1/8/7p/5N2/8/8/8/2K5 w - - 0 1")
	require.NoError(t, err)

	var checkingCapture board.Move
	found := false
	for _, m := range pos.LegalMoves() {
		if m.From == board.SquareF5 && m.To == board.SquareH6 {
			checkingCapture = m
			found = true
		}
	}
	require.True(t, found, "expected Nf5xh6 to be a legal move")
	require.True(t, pos.GivesCheck(checkingCapture))
	require.True(t, checkingCapture.IsCapture())

	// captureBonus(20000) + 10*victim(100) - attacker(320) - badCapturePenalty(25000)
	// since the knight (320) outvalues the pawn it takes (100).
	wantCaptureComponent := captureBonus + 10*board.MaterialValue[board.Pawn] - board.MaterialValue[board.Knight] - badCapturePenalty
	want := checkBonus + wantCaptureComponent

	got := scoreMove(pos, checkingCapture, board.NullMove, board.NullMove, false)
	require.Equal(t, want, got)
	require.NotEqual(t, checkBonus, got, "score must not drop the capture component just because the move also checks")
}

// OrderMoves must place the checking capture ahead of an unrelated quiet
// move, since its check bonus alone dwarfs any PST delta.
func TestOrderMovesRanksCheckingCaptureAboveQuietMove(t *testing.T) {
	pos, err := board.ParseFEN("6k1/8/7p/5N2/8/8/8/2K5 w - - 0 1")
	require.NoError(t, err)

	killers := newKillerTable()
	ordered := OrderMoves(pos, 1, killers, board.NullMove)
	require.Greater(t, len(ordered), 3, "test needs enough moves to exercise the scored sort path")

	indexOf := func(from, to board.Square) int {
		for i, m := range ordered {
			if m.From == from && m.To == to {
				return i
			}
		}
		t.Fatalf("move %s%s not found in ordered moves", from, to)
		return -1
	}

	checkingCapture := indexOf(board.SquareF5, board.SquareH6)
	quietKnightMove := indexOf(board.SquareF5, board.SquareD4)
	require.Less(t, checkingCapture, quietKnightMove)
}

// A promotion that also gives check must likewise sum both bonuses.
func TestScoreMoveIsAdditiveForCheckingPromotion(t *testing.T) {
	pos, err := board.ParseFEN("6k1/7P/8/8/8/8/8/6K1 w - - 0 1")
	require.NoError(t, err)

	var checkingPromotion board.Move
	found := false
	for _, m := range pos.LegalMoves() {
		if m.From == board.SquareH7 && m.To == board.SquareH8 && m.Promotion == board.Queen {
			checkingPromotion = m
			found = true
		}
	}
	require.True(t, found, "expected h7h8=Q to be a legal move")
	require.True(t, pos.GivesCheck(checkingPromotion), "a rook-value queen on h8 must check a king on g8")

	want := checkBonus + promotionBonus + board.MaterialValue[board.Queen]
	got := scoreMove(pos, checkingPromotion, board.NullMove, board.NullMove, false)
	require.Equal(t, want, got)
}
