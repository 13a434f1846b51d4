// Copyright the corechess authors.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package eval_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/corechess/corechess/board"
	"github.com/corechess/corechess/eval"
)

func TestEvaluateCheckmate(t *testing.T) {
	pos, err := board.ParseFEN("R5k1/5ppp/8/8/8/8/5PPP/6K1 b - - 0 1")
	require.NoError(t, err)
	require.Equal(t, eval.Mate, eval.Evaluate(pos))
}

func TestEvaluateStalemateIsZero(t *testing.T) {
	pos, err := board.ParseFEN("7k/5Q2/6K1/8/8/8/8/8 b - - 0 1")
	require.NoError(t, err)
	require.Equal(t, 0, eval.Evaluate(pos))
}

func TestEvaluateStartPositionIsSymmetric(t *testing.T) {
	pos := board.NewPosition()
	require.Equal(t, 0, eval.Evaluate(pos))
}

func TestEvaluateMaterialAdvantage(t *testing.T) {
	pos, err := board.ParseFEN("4k3/8/8/8/8/8/4P3/4K2R w K - 0 1")
	require.NoError(t, err)
	require.Positive(t, eval.Evaluate(pos))
}

func TestIsEndgameByQueenCount(t *testing.T) {
	pos, err := board.ParseFEN("4k3/8/8/8/8/8/8/4K2R w K - 0 1")
	require.NoError(t, err)
	require.True(t, eval.IsEndgame(pos))

	pos, err = board.ParseFEN(board.FENStartPos)
	require.NoError(t, err)
	require.False(t, eval.IsEndgame(pos))
}

func TestPassedPawnBonusIncreasesWithAdvancement(t *testing.T) {
	back, err := board.ParseFEN("4k3/8/8/8/8/8/P7/4K3 w - - 0 1")
	require.NoError(t, err)
	advanced, err := board.ParseFEN("4k3/8/8/8/P7/8/8/4K3 w - - 0 1")
	require.NoError(t, err)
	require.Greater(t, eval.Evaluate(advanced), eval.Evaluate(back))
}
