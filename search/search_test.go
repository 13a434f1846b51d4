// Copyright the corechess authors.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package search_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/corechess/corechess/board"
	"github.com/corechess/corechess/eval"
	"github.com/corechess/corechess/search"
)

func TestSearchFindsMateInOne(t *testing.T) {
	// White to move, Ra1-a8 is a back-rank mate: black's king has no
	// flight square since f7/g7/h7 are blocked by its own pawns.
	pos, err := board.ParseFEN("6k1/5ppp/8/8/8/8/5PPP/R5K1 w - - 0 1")
	require.NoError(t, err)

	c := search.NewController(1024)
	move, found := c.SearchBest(pos, 3, 2*time.Second)
	require.True(t, found)
	require.Equal(t, "a1a8", move.String())
}

func TestSearchAvoidsIllegalMateClaim(t *testing.T) {
	pos := board.NewPosition()
	e := search.NewEngine(1024)
	score := e.Search(pos, 2, -search.Infinity, search.Infinity, true)
	require.Less(t, score, eval.Mate)
	require.Greater(t, score, -eval.Mate)
}

func TestSearchReturnsNoMoveWhenGameOver(t *testing.T) {
	pos, err := board.ParseFEN("R5k1/5ppp/8/8/8/8/5PPP/6K1 b - - 0 1")
	require.NoError(t, err)
	require.True(t, pos.IsCheckmate())

	c := search.NewController(1024)
	_, found := c.SearchBest(pos, 4, time.Second)
	require.False(t, found)
}

func TestNullMoveSkippedWhenInCheck(t *testing.T) {
	// Black king in check from the rook on a8; null-move pruning must not
	// fire here since it would let the search "pass" out of check.
	pos, err := board.ParseFEN("R3k3/8/8/8/8/8/8/4K3 b - - 0 1")
	require.NoError(t, err)
	require.True(t, pos.IsChecked(board.Black))

	e := search.NewEngine(1024)
	score := e.Search(pos, 4, -search.Infinity, search.Infinity, false)
	require.NotEqual(t, 0, score)
}

func TestQuiescenceRespectsStandPatCutoff(t *testing.T) {
	pos := board.NewPosition()
	e := search.NewEngine(1024)
	score := e.Quiescence(pos, -search.Infinity, search.Infinity, true, 0)
	require.Equal(t, eval.Evaluate(pos), score)
}
