// Copyright the corechess authors.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package search

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/corechess/corechess/board"
)

func TestTableCapacityRoundsToPowerOfTwo(t *testing.T) {
	tbl := NewTable(100)
	require.Equal(t, uint64(127), tbl.mask)
}

func TestTableStoreProbeRoundTrip(t *testing.T) {
	tbl := NewTable(1024)
	key := Key(0xdeadbeef, true)
	tbl.Store(key, 42, board.Move{From: board.SquareE2, To: board.SquareE4}, 5, Exact)

	entry, ok := tbl.Probe(key)
	require.True(t, ok)
	require.Equal(t, 42, entry.Score)
	require.Equal(t, 5, entry.Depth)
	require.Equal(t, Exact, entry.Flag)
}

func TestTableProbeMissOnEmptySlot(t *testing.T) {
	tbl := NewTable(1024)
	_, ok := tbl.Probe(Key(0x1, false))
	require.False(t, ok)
}

func TestKeyDiffersBySideToMove(t *testing.T) {
	require.NotEqual(t, Key(0x1234, true), Key(0x1234, false))
}

func TestTableClear(t *testing.T) {
	tbl := NewTable(8)
	for i := 0; i < 8; i++ {
		tbl.Store(Key(uint64(i), true), i, board.NullMove, 1, Exact)
	}
	require.Equal(t, 8, tbl.Size())
	tbl.Clear()
	require.Equal(t, 0, tbl.Size())
}

func TestTableClearIfFullRespectsThreshold(t *testing.T) {
	tbl := NewTable(1024)
	tbl.Store(Key(0x1, true), 1, board.NullMove, 1, Exact)
	tbl.ClearIfFull()
	require.Equal(t, 1, tbl.Size())

	tbl.stored = ClearThreshold + 1
	tbl.ClearIfFull()
	require.Equal(t, 0, tbl.Size())
}

func TestKillerTableRecordAndDedupe(t *testing.T) {
	k := newKillerTable()
	m1 := board.Move{From: board.SquareD2, To: board.SquareD4}
	m2 := board.Move{From: board.SquareG1, To: board.SquareF3}

	k.Record(3, m1)
	k.Record(3, m2)
	k.Record(3, m1) // re-recording m1 should move it to the front, not duplicate.

	k0, k1 := k.At(3)
	require.Equal(t, m1, k0)
	require.Equal(t, m2, k1)
}

func TestKillerTableClear(t *testing.T) {
	k := newKillerTable()
	k.Record(2, board.Move{From: board.SquareA2, To: board.SquareA4})
	k.Clear()
	k0, k1 := k.At(2)
	require.True(t, k0.IsNull())
	require.True(t, k1.IsNull())
}
