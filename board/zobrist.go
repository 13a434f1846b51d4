// Copyright the corechess authors.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// zobrist.go holds the magic numbers used for Zobrist-style position
// hashing, grounded on the teacher's zobrist.go. Keys are generated once
// from a fixed seed so that the hash is stable across runs (important for
// reproducing a reported bug from a FEN).

package board

import "math/rand"

var (
	zobristPiece     [256][64]uint64
	zobristEnPassant [65]uint64
	zobristCastle    [16]uint64
	zobristColor     [ColorCount]uint64
)

func rand64(r *rand.Rand) uint64 {
	return uint64(r.Int63())<<32 ^ uint64(r.Int63())
}

func init() {
	r := rand.New(rand.NewSource(1))
	for p := 0; p < 256; p++ {
		for sq := 0; sq < 64; sq++ {
			zobristPiece[p][sq] = rand64(r)
		}
	}
	for sq := 0; sq < 65; sq++ {
		zobristEnPassant[sq] = rand64(r)
	}
	for c := 0; c < 16; c++ {
		zobristCastle[c] = rand64(r)
	}
	for c := range zobristColor {
		zobristColor[c] = rand64(r)
	}
}
