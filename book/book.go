// Copyright the corechess authors.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// book.go implements weighted-random move selection over a loaded Polyglot
// book, grounded on AdamGriffiths31-ChessEngine's
// game/openings/book.go#selectWeightedRandomMove. The contract requires the
// engine's RNG to be seedable and engine-owned rather than process-global,
// so Probe takes an injected randomness source instead of reaching for
// math/rand's default generator.
package book

import "github.com/corechess/corechess/board"

// Rand is satisfied by lukechampine.com/frand's *frand.RNG, or any other
// seedable integer generator.
type Rand interface {
	Intn(n int) int
}

// Prober wraps a loaded Book with a move-selection policy. A nil *Book
// makes every Probe report "no move", matching the contract's "book
// absent" behavior.
type Prober struct {
	book *Book
	rand Rand
	// WeightThreshold excludes book entries weighted below it; Polyglot
	// weight 0 conventionally marks a discouraged move.
	WeightThreshold uint16
}

// NewProber wraps book (which may be nil) with rng for weighted-random
// selection among tied candidates.
func NewProber(b *Book, rng Rand) *Prober {
	return &Prober{book: b, rand: rng, WeightThreshold: 1}
}

// Probe implements search.BookProber.
func (p *Prober) Probe(pos *board.Position) (board.Move, bool) {
	if p == nil || p.book == nil {
		return board.NullMove, false
	}

	var moves []board.Move
	var weights []uint32
	for _, e := range p.book.candidates(pos) {
		if e.Weight < p.WeightThreshold {
			continue
		}
		if m, ok := decodeMove(pos, e.Move); ok {
			moves = append(moves, m)
			weights = append(weights, uint32(e.Weight))
		}
	}
	if len(moves) == 0 {
		return board.NullMove, false
	}
	if len(moves) == 1 || p.rand == nil {
		return moves[0], true
	}
	return selectWeighted(moves, weights, p.rand), true
}

func selectWeighted(moves []board.Move, weights []uint32, rng Rand) board.Move {
	var total uint32
	for _, w := range weights {
		total += w
	}
	if total == 0 {
		return moves[rng.Intn(len(moves))]
	}
	r := uint32(rng.Intn(int(total)))
	var acc uint32
	for i, w := range weights {
		acc += w
		if r < acc {
			return moves[i]
		}
	}
	return moves[len(moves)-1]
}
