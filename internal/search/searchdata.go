//
// corvid - a small Go chess engine core (search, TT, iterative deepening)
//
// MIT License
//
// Copyright (c) 2020-2026 corvid contributors
//

package search

import (
	"sync/atomic"
	"time"

	"github.com/frankkopp/corvid/internal/moveslice"
	"github.com/frankkopp/corvid/internal/position"
	"github.com/frankkopp/corvid/internal/tt"
	. "github.com/frankkopp/corvid/internal/types"
)

// checkEvery is how many nodes pass between shouldStop polls. Checking the
// clock on every node would dominate node throughput; checking too rarely
// makes Stop() and MoveTime sluggish. The teacher polls on the same order
// of magnitude.
const checkEvery = 2047 // power-of-2 minus one, so "&checkEvery == 0" is cheap

// Data is the exclusively-owned, per-search state pvSearch/qSearch thread
// through recursion: spec.md §3 requires the worker to hold its own
// Position clone so a concurrent SetPosition on the Engine facade can't
// race with an in-flight search.
type Data struct {
	Pos   *position.Position
	TT    *tt.Table
	Stats Statistics

	// OnIteration, if set, is invoked once per completed iterative
	// deepening iteration (spec.md §4.3 step 4) with that iteration's
	// result, before the driver decides whether to start the next depth.
	OnIteration func(Result)

	limits    Limits
	startedAt time.Time
	allocated time.Duration

	nodes    uint64 // read/written only by the search goroutine
	abort    *int32 // shared with the Engine facade; 1 means "stop now"
	rootPly  int
	pv       [MaxPly + 1]moveslice.MoveSlice
	seldepth int
	// stopped is set once any node in the current iteration observes an
	// abort condition (external Stop(), or a time/node budget exceeded).
	// It is sticky for the rest of that iteration: every node still in
	// flight returns its best-so-far/static score instead of continuing
	// to search, and the iterative deepening driver uses it to decide
	// whether this depth's result is trustworthy (spec.md §4.4 step 8,
	// §4.3 step 3).
	stopped bool
}

// NewData builds search state over pos (which Data takes ownership of —
// callers must pass a Clone(), never the Engine's live position) and a
// shared abort flag the Engine facade's Stop() sets to 1.
func NewData(pos *position.Position, table *tt.Table, limits Limits, abort *int32) *Data {
	d := &Data{Pos: pos, TT: table, limits: limits, abort: abort}
	for i := range d.pv {
		d.pv[i] = *moveslice.New(MaxPly)
	}
	d.initAllocatedTime()
	return d
}

// defaultMovesToGo is the planning horizon used when the caller gives a
// clock (TimeLeft/Increment) but no MovesToGo — the same fallback UCI
// engines commonly use when a GUI doesn't report moves to the next
// time control.
const defaultMovesToGo = 30

// initAllocatedTime computes the wall-clock budget for this search from
// its Limits, per spec.md §4.7: a fixed MoveTime is used directly;
// otherwise, given a clock, the budget is
// timeLeft[sideToMove]/movesToGo + increment[sideToMove]. Depth- or
// node-limited searches (and Infinite) get no time cap here — shouldStop
// still honors MaxNodes and external Stop() in those cases.
func (d *Data) initAllocatedTime() {
	d.startedAt = time.Now()
	if d.limits.Infinite {
		d.allocated = 0
		return
	}
	if d.limits.MoveTime > 0 {
		d.allocated = d.limits.MoveTime
		return
	}
	stm := d.Pos.NextPlayer()
	timeLeft := d.limits.TimeLeft[stm]
	if timeLeft <= 0 {
		d.allocated = 0
		return
	}
	moves := d.limits.MovesToGo
	if moves <= 0 {
		moves = defaultMovesToGo
	}
	d.allocated = timeLeft/time.Duration(moves) + d.limits.Increment[stm]
}

// shouldStop reports whether the current iteration must abandon its
// search: an external Stop() was requested, or a time/node budget was
// exceeded. Called by pollAbort at `checkEvery`-node intervals and by the
// iterative deepening driver after each adopted iteration. An iteration
// it interrupts is discarded only once depth > 1 (spec.md §4.3's
// abort-acceptance guard) so a search always has at least one iteration
// to report.
func (d *Data) shouldStop() bool {
	if atomic.LoadInt32(d.abort) != 0 {
		return true
	}
	if d.limits.Infinite {
		return false
	}
	if d.allocated > 0 && time.Since(d.startedAt) >= d.allocated {
		return true
	}
	if d.limits.MaxNodes > 0 && d.nodes >= d.limits.MaxNodes {
		return true
	}
	return false
}

// pollAbort is called on every node; it only performs the (comparatively
// expensive) shouldStop check every checkEvery nodes.
func (d *Data) pollAbort() bool {
	if d.nodes&checkEvery != 0 {
		return false
	}
	return d.shouldStop()
}

// Elapsed returns time spent in the current search so far.
func (d *Data) Elapsed() time.Duration { return time.Since(d.startedAt) }

// Nodes returns the number of nodes visited so far.
func (d *Data) Nodes() uint64 { return d.nodes }

// SelDepth returns the deepest ply reached by quiescence search so far in
// this search (it is not reset between iterations).
func (d *Data) SelDepth() int { return d.seldepth }

// PV returns the principal variation found at the root.
func (d *Data) PV() moveslice.MoveSlice { return d.pv[0] }

func (d *Data) noteSelDepth(ply int) {
	if ply > d.seldepth {
		d.seldepth = ply
	}
}
