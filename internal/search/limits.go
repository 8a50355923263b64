//
// corvid - a small Go chess engine core (search, TT, iterative deepening)
//
// MIT License
//
// Copyright (c) 2020-2026 corvid contributors
//

// Package search implements the alpha-beta/PVS search core: the
// pvSearch/qSearch kernel, the iterative deepening driver, and the
// SearchData the two share. Grounded on the teacher's internal/search
// package shape (Search struct, SearchLimits, iterative deepening loop)
// but with the kernel pared down to exactly what spec.md §4.4/§4.5
// specify — no null-move pruning, late-move reductions, internal
// iterative deepening or futility pruning, none of which spec.md's
// pvSearch/qSearch mention.
package search

import (
	"time"

	. "github.com/frankkopp/corvid/internal/types"
)

// Limits bounds a search the way spec.md §3/§4.1/§6 describes: any subset
// of a fixed depth, a time budget, a node budget, or a game clock may be
// set; zero/false/empty means "unbounded in that dimension". Infinite
// disables the time and node bounds until Stop() is called; a non-zero
// MaxDepth still caps the search.
type Limits struct {
	MaxDepth int
	MoveTime time.Duration
	MaxNodes uint64
	Infinite bool

	// TimeLeft, Increment and MovesToGo describe a game clock, indexed by
	// Color (spec.md §3's SearchLimits). initAllocatedTime derives a
	// per-move budget from these when MoveTime isn't set directly.
	TimeLeft  [ColorLength]time.Duration
	Increment [ColorLength]time.Duration
	MovesToGo int

	// SearchMoves, if non-empty, restricts the root move loop to this
	// subset (spec.md §4.4 step 7); ignored at all other nodes.
	SearchMoves []Move
}

// containsMove reports whether m appears in moves, or is vacuously true
// when moves is empty (an empty SearchMoves means "no restriction").
func containsMove(moves []Move, m Move) bool {
	if len(moves) == 0 {
		return true
	}
	for _, candidate := range moves {
		if candidate == m {
			return true
		}
	}
	return false
}
