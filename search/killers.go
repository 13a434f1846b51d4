// Copyright the corechess authors.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package search

import "github.com/corechess/corechess/board"

// maxKillerDepth bounds the killer table; depths beyond it share the last
// slot (and negative depths share slot 0), which in practice is never
// reached since max_depth is far smaller than this.
const maxKillerDepth = 128

// killerTable holds, per search depth, at most two quiet moves that caused
// a beta cutoff during the current top-level iteration.
type killerTable struct {
	moves [maxKillerDepth][2]board.Move
}

func newKillerTable() *killerTable {
	return &killerTable{}
}

// Clear resets every depth's killers; the controller does this at the start
// of each top-level iteration.
func (k *killerTable) Clear() {
	for i := range k.moves {
		k.moves[i] = [2]board.Move{}
	}
}

func (k *killerTable) slot(depth int) int {
	if depth < 0 {
		return 0
	}
	if depth >= maxKillerDepth {
		return maxKillerDepth - 1
	}
	return depth
}

// At returns the two killer moves recorded at depth, in order.
func (k *killerTable) At(depth int) (board.Move, board.Move) {
	d := k.slot(depth)
	return k.moves[d][0], k.moves[d][1]
}

// Record inserts m at the head of depth's killer list, deduplicating and
// capping at two entries.
func (k *killerTable) Record(depth int, m board.Move) {
	d := k.slot(depth)
	if k.moves[d][0] == m {
		return
	}
	if k.moves[d][1] == m {
		k.moves[d][0], k.moves[d][1] = m, k.moves[d][0]
		return
	}
	k.moves[d][1] = k.moves[d][0]
	k.moves[d][0] = m
}
