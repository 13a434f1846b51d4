// Copyright the corechess authors.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// tt.go implements the transposition table: a fixed-size array indexed by
// key hash, always-replace, wholesale-cleared once it grows past a
// threshold between top-level moves. This mirrors the teacher's hash_table.go
// but drops its two-way lock/key0/key1 scheme in favor of storing the full
// 64-bit key per slot and comparing on probe, which is simpler to reason
// about at the cost of one extra word per entry.
package search

import "github.com/corechess/corechess/board"

// Flag records how a stored score relates to the window it was computed
// under.
type Flag uint8

const (
	// Exact means the stored score is the node's true minimax value.
	Exact Flag = iota
	// LowerBound means the node failed high: the true value is >= score.
	LowerBound
	// UpperBound means the node failed low: the true value is <= score.
	UpperBound
)

// Entry is one transposition table slot.
type Entry struct {
	Key   uint64
	Score int
	Move  board.Move
	Depth int
	Flag  Flag
	valid bool
}

// DefaultCapacity is the suggested fixed array size (2^20 entries).
const DefaultCapacity = 1 << 20

// ClearThreshold is the entry count past which the owning controller clears
// the table between top-level moves.
const ClearThreshold = 100000

// sideToMoveSalt distinguishes the maximizing and minimizing views of the
// same position_key, per the contract's "Key is (position_key,
// side_to_move_flag)".
const sideToMoveSalt uint64 = 0x9E3779B97F4A7C15

// Table is a fixed-capacity, always-replace transposition table.
type Table struct {
	entries []Entry
	mask    uint64
	stored  int
}

// NewTable allocates a table with the given capacity, rounded up to the next
// power of two.
func NewTable(capacity int) *Table {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	n := 1
	for n < capacity {
		n <<= 1
	}
	return &Table{entries: make([]Entry, n), mask: uint64(n - 1)}
}

// Key combines a position's Zobrist key with the maximizing flag for this
// search node, as required by the contract.
func Key(positionKey uint64, maximizing bool) uint64 {
	if maximizing {
		return positionKey ^ sideToMoveSalt
	}
	return positionKey
}

func (t *Table) index(key uint64) uint64 { return key & t.mask }

// Probe returns the stored entry for key, if any.
func (t *Table) Probe(key uint64) (Entry, bool) {
	e := t.entries[t.index(key)]
	if e.valid && e.Key == key {
		return e, true
	}
	return Entry{}, false
}

// Store unconditionally overwrites whatever occupies key's slot.
func (t *Table) Store(key uint64, score int, move board.Move, depth int, flag Flag) {
	idx := t.index(key)
	if !t.entries[idx].valid {
		t.stored++
	}
	t.entries[idx] = Entry{Key: key, Score: score, Move: move, Depth: depth, Flag: flag, valid: true}
}

// Clear empties the table.
func (t *Table) Clear() {
	for i := range t.entries {
		t.entries[i] = Entry{}
	}
	t.stored = 0
}

// Size returns the number of occupied slots.
func (t *Table) Size() int { return t.stored }

// ClearIfFull clears the table if its size has grown past ClearThreshold,
// as the controller is required to do between top-level moves.
func (t *Table) ClearIfFull() {
	if t.stored > ClearThreshold {
		t.Clear()
	}
}
