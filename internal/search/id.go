//
// corvid - a small Go chess engine core (search, TT, iterative deepening)
//
// MIT License
//
// Copyright (c) 2020-2026 corvid contributors
//

package search

import (
	"github.com/frankkopp/corvid/internal/moveslice"
	. "github.com/frankkopp/corvid/internal/types"
)

// Result is what one completed (or aborted-but-already-had-a-result)
// search produces for the Engine facade to report.
type Result struct {
	BestMove Move
	Score    Score
	Depth    int
	SelDepth int
	Nodes    uint64
	PV       moveslice.MoveSlice
}

// maxSearchDepth caps iterative deepening the way spec.md §9 notes: MaxPly
// also bounds PV/qsearch ply indices, so depth can never usefully exceed it.
const maxSearchDepth = MaxPly - 1

// IterativeDeepening runs pvSearch at depth 1, 2, 3, ... with the full
// (-ScoreInfinite, ScoreInfinite) window each time, stopping when Limits.MaxDepth is reached, shouldStop()
// fires, or maxSearchDepth is hit. Every pvSearch call returns a genuine
// score: once d.stopped is set mid-iteration, nodes still in flight
// short-circuit to a static evaluation rather than propagating an abort
// sentinel, so a depth's Result is always "bestScore so far" (spec.md
// §4.4 step 8). Per spec.md §4.3's abort-acceptance guard, an aborted
// iteration's result is only adopted at depth 1: deeper aborted iterations
// are discarded in favor of the previous, fully-completed one. OnIteration,
// if set, is invoked once per adopted iteration (spec.md §4.3 step 4).
func (d *Data) IterativeDeepening() Result {
	limit := maxSearchDepth
	if d.limits.MaxDepth > 0 && d.limits.MaxDepth < limit {
		limit = d.limits.MaxDepth
	}

	var last Result
	for depth := 1; depth <= limit; depth++ {
		d.stopped = false
		score := d.pvSearch(Root, depth, 0, -ScoreInfinite, ScoreInfinite)

		if d.stopped && depth > 1 {
			break // keep the previous, fully-completed iteration's result
		}

		pv := d.pv[0]
		last = Result{
			BestMove: pv.At(0),
			Score:    score,
			Depth:    depth,
			SelDepth: d.seldepth,
			Nodes:    d.nodes,
			PV:       pv.Clone(),
		}
		if d.OnIteration != nil {
			d.OnIteration(last)
		}

		if d.stopped || d.shouldStop() {
			break
		}
	}
	return last
}
