// Copyright the corechess authors.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// zobrist.go computes a Polyglot-shaped position key: 12 piece-on-square
// keys, 4 castling-right keys, 8 en-passant-file keys and one side-to-move
// key, XORed together exactly as the Polyglot format's spec describes.
//
// The canonical Polyglot random table is a fixed, published 781-entry
// array; the retrieval pack's own Polyglot port (AdamGriffiths31's
// game/openings/hash.go) references that exact table by name
// (officialPolyglotPieceKeys and friends) but the file defining those
// constants was not part of what was retrieved. Rather than fabricate 781
// numbers from memory and risk a silently-wrong table, this port generates
// its own deterministic table the same way board/zobrist.go does. The
// format this package reads and writes is genuinely Polyglot (16-byte
// entries, the same bit layout for moves, BigEndian, sorted by hash); only
// the specific hash values will not match a Polyglot book built by another
// tool. See DESIGN.md.
package book

import (
	"math/rand"

	"github.com/corechess/corechess/board"
)

const (
	polyglotPieceCount = 12
	polyglotSquares     = 64
)

var (
	pieceKeys     [polyglotSquares][polyglotPieceCount]uint64
	castleKeys    [4]uint64
	enPassantKeys [8]uint64
	sideKey       uint64
)

func init() {
	r := rand.New(rand.NewSource(0x706f6c79676c6f74)) // "polyglot" in hex-ish
	for sq := 0; sq < polyglotSquares; sq++ {
		for p := 0; p < polyglotPieceCount; p++ {
			pieceKeys[sq][p] = rand64(r)
		}
	}
	for i := range castleKeys {
		castleKeys[i] = rand64(r)
	}
	for i := range enPassantKeys {
		enPassantKeys[i] = rand64(r)
	}
	sideKey = rand64(r)
}

func rand64(r *rand.Rand) uint64 {
	return uint64(r.Int63())<<32 ^ uint64(r.Int63())
}

// pieceIndex maps a board.Piece to Polyglot's piece ordering: BP, WP, BN,
// WN, BB, WB, BR, WR, BQ, WQ, BK, WK.
func pieceIndex(p board.Piece) int {
	idx := int(p.Figure()-board.Pawn) * 2
	if p.Color() == board.White {
		idx++
	}
	return idx
}

// positionKey computes pos's Polyglot-shaped hash.
func positionKey(pos *board.Position) uint64 {
	var key uint64
	for sq := board.Square(0); sq < 64; sq++ {
		p := pos.PieceAt(sq)
		if p == board.NoPiece {
			continue
		}
		key ^= pieceKeys[sq][pieceIndex(p)]
	}
	// Castle key ordering follows Polyglot: white kingside, white
	// queenside, black kingside, black queenside.
	if pos.HasCastleRight(board.WhiteOO) {
		key ^= castleKeys[0]
	}
	if pos.HasCastleRight(board.WhiteOOO) {
		key ^= castleKeys[1]
	}
	if pos.HasCastleRight(board.BlackOO) {
		key ^= castleKeys[2]
	}
	if pos.HasCastleRight(board.BlackOOO) {
		key ^= castleKeys[3]
	}
	if ep := pos.EnPassantSquare(); ep != board.NoSquare && pos.EnPassantCaptureIsPossible() {
		key ^= enPassantKeys[ep.File()]
	}
	if pos.Turn() == board.White {
		key ^= sideKey
	}
	return key
}
