// Copyright the corechess authors.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// polyglot.go parses the Polyglot binary opening book format: fixed
// 16-byte entries (uint64 hash, uint16 move, uint16 weight, uint32 learn),
// big-endian, sorted ascending by hash so lookups are a binary search.
// Grounded on AdamGriffiths31-ChessEngine's game/openings/polyglot.go.
package book

import (
	"encoding/binary"
	"fmt"
	"os"
	"sort"

	"github.com/corechess/corechess/board"
)

// entrySize is the fixed Polyglot record size in bytes.
const entrySize = 16

// entry is one raw Polyglot book record.
type entry struct {
	Hash   uint64
	Move   uint16
	Weight uint16
	Learn  uint32
}

// polyglot move encoding bit layout.
const (
	toMask        = 0x003F
	fromMask      = 0x0FC0
	fromShift     = 6
	promotionMask = 0x7000
	promoShift    = 12
)

const (
	promoKnight = 1
	promoBishop = 2
	promoRook   = 3
	promoQueen  = 4
)

// Book is a loaded Polyglot opening book.
type Book struct {
	entries []entry
}

// Load reads a Polyglot book file. Per the contract, an absent or
// malformed book is the caller's concern to tolerate, not this function's:
// Load returns a plain error, and callers that want "no book" semantics on
// failure should check the error and fall back to a nil *Book.
func Load(path string) (*Book, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("book: open %s: %w", path, err)
	}
	defer f.Close()

	stat, err := f.Stat()
	if err != nil {
		return nil, fmt.Errorf("book: stat %s: %w", path, err)
	}
	if stat.Size()%entrySize != 0 {
		return nil, fmt.Errorf("book: %s size %d is not a multiple of %d", path, stat.Size(), entrySize)
	}

	count := int(stat.Size() / entrySize)
	entries := make([]entry, count)
	for i := 0; i < count; i++ {
		var e entry
		if err := binary.Read(f, binary.BigEndian, &e.Hash); err != nil {
			return nil, fmt.Errorf("book: read entry %d: %w", i, err)
		}
		if err := binary.Read(f, binary.BigEndian, &e.Move); err != nil {
			return nil, fmt.Errorf("book: read entry %d: %w", i, err)
		}
		if err := binary.Read(f, binary.BigEndian, &e.Weight); err != nil {
			return nil, fmt.Errorf("book: read entry %d: %w", i, err)
		}
		if err := binary.Read(f, binary.BigEndian, &e.Learn); err != nil {
			return nil, fmt.Errorf("book: read entry %d: %w", i, err)
		}
		entries[i] = e
	}

	if !sort.SliceIsSorted(entries, func(i, j int) bool { return entries[i].Hash < entries[j].Hash }) {
		return nil, fmt.Errorf("book: %s is not sorted by hash", path)
	}

	return &Book{entries: entries}, nil
}

// candidates returns the raw entries whose hash matches pos, via binary
// search over the sorted slice.
func (b *Book) candidates(pos *board.Position) []entry {
	key := positionKey(pos)
	i := sort.Search(len(b.entries), func(i int) bool { return b.entries[i].Hash >= key })
	j := i
	for j < len(b.entries) && b.entries[j].Hash == key {
		j++
	}
	return b.entries[i:j]
}

// decodeMove resolves encoded against pos's legal moves: Polyglot encodes
// (from, to, promotion) square indices but represents castling as the king
// "capturing" its own rook, so a raw decode is matched against the legal
// move list rather than trusted blindly.
func decodeMove(pos *board.Position, encoded uint16) (board.Move, bool) {
	to := int(encoded & toMask)
	from := int((encoded & fromMask) >> fromShift)
	promo := int((encoded & promotionMask) >> promoShift)

	fromSq := board.RankFile(from/8, from%8)
	toSq := board.RankFile(to/8, to%8)

	var wantPromo board.Figure
	switch promo {
	case promoKnight:
		wantPromo = board.Knight
	case promoBishop:
		wantPromo = board.Bishop
	case promoRook:
		wantPromo = board.Rook
	case promoQueen:
		wantPromo = board.Queen
	}

	for _, m := range pos.LegalMoves() {
		if m.From == fromSq && m.To == toSq && m.Promotion == wantPromo {
			return m, true
		}
		// Polyglot's castling convention: king moves to its own rook's
		// square.
		if m.MoveType == board.Castle && m.From == fromSq {
			rookFrom, _ := castleRookFrom(m)
			if rookFrom == toSq {
				return m, true
			}
		}
	}
	return board.NullMove, false
}

func castleRookFrom(m board.Move) (board.Square, bool) {
	switch m.To {
	case board.SquareG1:
		return board.SquareH1, true
	case board.SquareC1:
		return board.SquareA1, true
	case board.SquareG8:
		return board.SquareH8, true
	case board.SquareC8:
		return board.SquareA8, true
	}
	return board.NoSquare, false
}
