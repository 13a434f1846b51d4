// Copyright the corechess authors.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package book

import (
	"encoding/binary"
	"os"
	"path/filepath"
	"sort"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/corechess/corechess/board"
)

// writeBook serializes entries (sorted by hash, as Load requires) to a
// fresh Polyglot-format file under t.TempDir.
func writeBook(t *testing.T, entries []entry) string {
	t.Helper()
	sort.Slice(entries, func(i, j int) bool { return entries[i].Hash < entries[j].Hash })

	path := filepath.Join(t.TempDir(), "book.bin")
	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()

	for _, e := range entries {
		require.NoError(t, binary.Write(f, binary.BigEndian, e.Hash))
		require.NoError(t, binary.Write(f, binary.BigEndian, e.Move))
		require.NoError(t, binary.Write(f, binary.BigEndian, e.Weight))
		require.NoError(t, binary.Write(f, binary.BigEndian, e.Learn))
	}
	return path
}

func TestLoadRoundTripsEntries(t *testing.T) {
	pos := board.NewPosition()
	key := positionKey(pos)

	// e2e4 encoded as Polyglot (from=e2=12, to=e4=28, no promotion).
	e2 := board.SquareE2
	e4 := board.SquareE4
	moveCode := uint16(int(e2)<<fromShift) | uint16(int(e4))

	path := writeBook(t, []entry{{Hash: key, Move: moveCode, Weight: 50, Learn: 0}})

	b, err := Load(path)
	require.NoError(t, err)
	require.Len(t, b.candidates(pos), 1)

	m, ok := decodeMove(pos, moveCode)
	require.True(t, ok)
	require.Equal(t, "e2e4", m.String())
}

func TestLoadRejectsUnsortedFile(t *testing.T) {
	path := writeBook(t, []entry{{Hash: 5}, {Hash: 1}})
	// writeBook sorts before writing, so corrupt the file afterward to
	// exercise the sortedness check.
	f, err := os.OpenFile(path, os.O_WRONLY, 0)
	require.NoError(t, err)
	_, err = f.WriteAt([]byte{0, 0, 0, 0, 0, 0, 0, 0}, 16)
	require.NoError(t, err)
	f.Close()

	_, err = Load(path)
	require.Error(t, err)
}

func TestProberReturnsNoMoveForNilBook(t *testing.T) {
	p := NewProber(nil, nil)
	_, ok := p.Probe(board.NewPosition())
	require.False(t, ok)
}

func TestProberSelectsAmongCandidates(t *testing.T) {
	pos := board.NewPosition()
	key := positionKey(pos)

	e2e4 := uint16(int(board.SquareE2)<<fromShift) | uint16(int(board.SquareE4))
	d2d4 := uint16(int(board.SquareD2)<<fromShift) | uint16(int(board.SquareD4))

	path := writeBook(t, []entry{
		{Hash: key, Move: e2e4, Weight: 10},
		{Hash: key, Move: d2d4, Weight: 0}, // below default WeightThreshold, excluded
	})

	b, err := Load(path)
	require.NoError(t, err)

	p := NewProber(b, fixedRand{0})
	m, ok := p.Probe(pos)
	require.True(t, ok)
	require.Equal(t, "e2e4", m.String())
}

type fixedRand struct{ n int }

func (f fixedRand) Intn(n int) int { return f.n % n }
