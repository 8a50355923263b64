//
// corvid - a small Go chess engine core (search, TT, iterative deepening)
//
// MIT License
//
// Copyright (c) 2020-2026 corvid contributors
//

// Package moveslice provides a thin []Move wrapper used for move lists and
// principal variations, grounded on the teacher's internal/moveslice: plain
// slice operations plus the PV-specific "prepend and splice" helper.
package moveslice

import (
	"strings"

	. "github.com/frankkopp/corvid/internal/types"
)

// MoveSlice is an ordered, cheap-to-clear sequence of moves.
type MoveSlice []Move

// New creates an empty MoveSlice with the given capacity.
func New(capacity int) *MoveSlice {
	s := make(MoveSlice, 0, capacity)
	return &s
}

// Len returns the number of moves.
func (ms *MoveSlice) Len() int { return len(*ms) }

// Clear empties the slice while keeping its backing array.
func (ms *MoveSlice) Clear() { *ms = (*ms)[:0] }

// PushBack appends a move.
func (ms *MoveSlice) PushBack(m Move) { *ms = append(*ms, m) }

// At returns the move at index i, or MoveNone if out of range.
func (ms *MoveSlice) At(i int) Move {
	if i < 0 || i >= len(*ms) {
		return MoveNone
	}
	return (*ms)[i]
}

// Contains reports whether m is present.
func (ms *MoveSlice) Contains(m Move) bool {
	for _, x := range *ms {
		if x == m {
			return true
		}
	}
	return false
}

// SetPV replaces dest with [move] followed by all of src's moves — the
// triangular-PV-table splice used by every PV-updating cutoff in the
// search kernel. dest and src must be distinct slices (typically pv[ply]
// and pv[ply+1]).
func SetPV(dest *MoveSlice, move Move, src *MoveSlice) {
	dest.Clear()
	dest.PushBack(move)
	*dest = append(*dest, *src...)
}

// StringUci renders the slice as a space separated list of UCI move strings.
func (ms MoveSlice) StringUci() string {
	var b strings.Builder
	for i, m := range ms {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(m.String())
	}
	return b.String()
}

// Clone returns an independent copy of the slice's contents.
func (ms MoveSlice) Clone() MoveSlice {
	out := make(MoveSlice, len(ms))
	copy(out, ms)
	return out
}
