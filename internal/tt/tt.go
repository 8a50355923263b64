//
// corvid - a small Go chess engine core (search, TT, iterative deepening)
//
// MIT License
//
// Copyright (c) 2020-2026 corvid contributors
//

// Package tt implements the fixed-capacity transposition table spec.md §3
// and §4.2 describe: a power-of-2-sized array of entries keyed by the low
// bits of a Zobrist hash, storing a best move, score, depth and bound per
// entry, with mate scores stored as distance from the storing node (see
// types.ScoreToTT) so they compare correctly once read back at a different
// ply. Grounded on the teacher's
// internal/transpositiontable bit-packed-entry, always-writable-slot shape,
// renamed to spec.md's EXACT/LOWER/UPPER/NONE bound vocabulary.
package tt

import (
	"sync/atomic"

	. "github.com/frankkopp/corvid/internal/types"
)

// Entry is one transposition table slot. Zero value is an empty slot
// (Bound == BoundNone).
type Entry struct {
	Key   Key
	Move  Move
	Score Score
	Depth int8
	Bound Bound
	Age   uint8
}

// Table is a fixed-capacity, power-of-2-sized transposition table written
// by a single search worker. Entries are plain fields, not atomics, so
// Probe/Store are not safe to call concurrently with a writer; only the
// used-slot counter behind Hashfull() is read and written atomically.
type Table struct {
	entries []Entry
	mask    uint64
	age     uint8
	used    int64 // atomic: non-empty slot count, for Hashfull()
}

// New allocates a table sized to hold roughly sizeMB megabytes of entries,
// rounded down to the nearest power of two slot count.
func New(sizeMB int) *Table {
	if sizeMB < 1 {
		sizeMB = 1
	}
	entrySize := 24 // approximate in-memory footprint of Entry
	want := (sizeMB * 1024 * 1024) / entrySize
	n := uint64(1)
	for n*2 <= uint64(want) && n < 1<<26 {
		n *= 2
	}
	if n < 1024 {
		n = 1024
	}
	return &Table{entries: make([]Entry, n), mask: n - 1}
}

func (t *Table) index(key Key) uint64 { return uint64(key) & t.mask }

// Probe looks up key. The returned bool reports whether the slot held this
// exact key (a real hit, not just a populated-but-different-key collision).
func (t *Table) Probe(key Key) (Entry, bool) {
	e := t.entries[t.index(key)]
	return e, e.Bound != BoundNone && e.Key == key
}

// Store writes an entry, always overwriting whatever occupies that slot
// (spec.md §3's "always returns a writable slot" contract) except when the
// existing entry is from the same search generation, deeper, and for the
// same key, and the new result is not exact — shallow same-generation
// re-searches of a position should not discard a deeper result already
// recorded for it. An exact result always overwrites.
func (t *Table) Store(key Key, move Move, score Score, depth int8, bound Bound) {
	idx := t.index(key)
	old := &t.entries[idx]
	if old.Bound == BoundNone {
		atomic.AddInt64(&t.used, 1)
	} else if old.Key == key && old.Age == t.age && old.Depth > depth && bound != BoundExact {
		return
	}
	if move == MoveNone && old.Key == key {
		move = old.Move // keep a known best move when the caller has none
	}
	old.Key = key
	old.Move = move
	old.Score = score
	old.Depth = depth
	old.Bound = bound
	old.Age = t.age
}

// Clear empties every slot.
func (t *Table) Clear() {
	for i := range t.entries {
		t.entries[i] = Entry{}
	}
	atomic.StoreInt64(&t.used, 0)
	t.age = 0
}

// NewSearch advances the table's generation counter. Entries from older
// generations are treated as lower priority by Store but are not evicted
// outright, matching the teacher's aging scheme over a hard clear.
func (t *Table) NewSearch() { t.age++ }

// Size returns the number of slots.
func (t *Table) Size() int { return len(t.entries) }

// Hashfull returns fill level in permille (0-1000), the UCI convention the
// teacher's TtTable.Hashfull() also follows.
func (t *Table) Hashfull() int {
	used := atomic.LoadInt64(&t.used)
	if len(t.entries) == 0 {
		return 0
	}
	return int(used * 1000 / int64(len(t.entries)))
}
