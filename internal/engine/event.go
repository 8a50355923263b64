//
// corvid - a small Go chess engine core (search, TT, iterative deepening)
//
// MIT License
//
// Copyright (c) 2020-2026 corvid contributors
//

// Package engine implements the Engine facade of spec.md §4.1/§6: the
// single entry point embedding applications use to drive a search, hiding
// the worker-goroutine lifecycle and transposition table behind
// SetPosition/Search/Stop/IsSearching and a pair of event sinks. Grounded
// on the teacher's internal/search Search struct: a semaphore-gated
// reentry guard and a detached worker goroutine signaling completion
// through callbacks rather than a blocking return.
package engine

import (
	"time"

	"github.com/frankkopp/corvid/internal/moveslice"
	"github.com/frankkopp/corvid/internal/search"
	. "github.com/frankkopp/corvid/internal/types"
)

// SearchEvent reports search progress (OnProgress, once per completed
// iterative-deepening iteration) or a finished search (OnFinish).
type SearchEvent struct {
	BestMove        Move
	Score           Score
	Depth           int
	SelDepth        int
	Nodes           uint64
	Nps             uint64
	Elapsed         time.Duration
	PV              moveslice.MoveSlice
	TTFillPerMille  int
}

func newEvent(d *search.Data, r search.Result) SearchEvent {
	elapsed := d.Elapsed()
	var nps uint64
	if ms := elapsed.Milliseconds(); ms > 0 {
		nps = r.Nodes * 1000 / uint64(ms)
	}
	return SearchEvent{
		BestMove:       r.BestMove,
		Score:          r.Score,
		Depth:          r.Depth,
		SelDepth:       r.SelDepth,
		Nodes:          r.Nodes,
		Nps:            nps,
		Elapsed:        elapsed,
		PV:             r.PV,
		TTFillPerMille: d.TTFillPerMille(),
	}
}
