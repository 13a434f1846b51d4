// Copyright the corechess authors.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package perft counts leaf nodes of the legal move tree to a fixed depth,
// the standard correctness check for a from-scratch move generator.
// Grounded on zurichess's perft/perft.go, adapted into a library (rather
// than a standalone binary) since this port's board package already
// filters to legal moves and has no separate pseudo-legal GenerateMoves
// entry point for callers outside the package.
package perft

import "github.com/corechess/corechess/board"

// Counters tallies leaf-node categories the way zurichess's perft does, so
// results can be checked against published perft tables move type by move
// type, not just by total node count.
type Counters struct {
	Nodes      uint64
	Captures   uint64
	EnPassant  uint64
	Castles    uint64
	Promotions uint64
}

func (c *Counters) add(o Counters) {
	c.Nodes += o.Nodes
	c.Captures += o.Captures
	c.EnPassant += o.EnPassant
	c.Castles += o.Castles
	c.Promotions += o.Promotions
}

// Count walks pos's legal move tree to depth and returns leaf counters.
func Count(pos *board.Position, depth int) Counters {
	if depth == 0 {
		return Counters{Nodes: 1}
	}

	var total Counters
	for _, m := range pos.LegalMoves() {
		if depth == 1 {
			if m.IsCapture() {
				total.Captures++
			}
			if m.MoveType == board.EnPassant {
				total.EnPassant++
			}
			if m.MoveType == board.Castle {
				total.Castles++
			}
			if m.IsPromotion() {
				total.Promotions++
			}
		}
		pos.Push(m)
		total.add(Count(pos, depth-1))
		pos.Pop()
	}
	return total
}

// Nodes is a convenience wrapper returning only the leaf-node count.
func Nodes(pos *board.Position, depth int) uint64 {
	return Count(pos, depth).Nodes
}
