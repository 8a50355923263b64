//
// corvid - a small Go chess engine core (search, TT, iterative deepening)
//
// MIT License
//
// Copyright (c) 2020-2026 corvid contributors
//

package engine

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/op/go-logging"
	"golang.org/x/sync/semaphore"

	"github.com/frankkopp/corvid/internal/position"
	"github.com/frankkopp/corvid/internal/search"
	"github.com/frankkopp/corvid/internal/tt"
)

var log = logging.MustGetLogger("engine")

// Engine is the facade spec.md §4.1/§6 describes: callers drive it with
// SetPosition/Search/Stop and observe it through OnProgress/OnFinish,
// never touching Data, pvSearch, or the transposition table directly.
type Engine struct {
	mu  sync.Mutex
	pos *position.Position
	tt  *tt.Table

	// sem is held (weight 1) for the duration of a search; Search()
	// fails fast with TryAcquire instead of queuing a second search, and
	// AwaitIdle blocks on Acquire/Release to wait for the current one.
	sem       *semaphore.Weighted
	searching int32
	abort     int32

	onProgress func(SearchEvent)
	onFinish   func(SearchEvent)
}

// New builds an Engine with a transposition table sized to ttSizeMB
// megabytes, starting from the standard chess position.
func New(ttSizeMB int) *Engine {
	return &Engine{
		pos: position.New(),
		tt:  tt.New(ttSizeMB),
		sem: semaphore.NewWeighted(1),
	}
}

// SetPosition replaces the position a future Search() will search from.
// Returns an error while a search is in progress (spec.md §7: mutating
// shared state concurrently with a worker reading it is a programming
// error this facade refuses to allow, not something it silently races on).
func (e *Engine) SetPosition(fen string) error {
	p, err := position.FromFEN(fen)
	if err != nil {
		return fmt.Errorf("engine: %w", err)
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.IsSearching() {
		return fmt.Errorf("engine: cannot set position while searching")
	}
	e.pos = p
	return nil
}

// Position returns a clone of the position a Search() will search from,
// for callers (such as a UCI-ish front end) that need to resolve move
// strings against the current legal moves before calling Search.
func (e *Engine) Position() *position.Position {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.pos.Clone()
}

// OnProgress registers a sink invoked once per completed iterative
// deepening iteration. Not safe to call concurrently with Search.
func (e *Engine) OnProgress(fn func(SearchEvent)) { e.onProgress = fn }

// OnFinish registers a sink invoked exactly once when a search ends,
// whether by exhausting its limits or by Stop(). Not safe to call
// concurrently with Search.
func (e *Engine) OnFinish(fn func(SearchEvent)) { e.onFinish = fn }

// IsSearching reports whether a search is currently running.
func (e *Engine) IsSearching() bool { return atomic.LoadInt32(&e.searching) != 0 }

// Search starts a search in a detached background worker and returns
// immediately (spec.md §4.1/§5: one worker goroutine per search, the
// caller observes progress through the registered sinks). Returns an
// error if a search is already in progress.
func (e *Engine) Search(limits search.Limits) error {
	if !e.sem.TryAcquire(1) {
		return fmt.Errorf("engine: search already in progress")
	}
	e.mu.Lock()
	pos := e.pos.Clone()
	table := e.tt
	e.mu.Unlock()

	atomic.StoreInt32(&e.abort, 0)
	atomic.StoreInt32(&e.searching, 1)
	table.NewSearch()

	data := search.NewData(pos, table, limits, &e.abort)
	data.OnIteration = func(r search.Result) {
		if e.onProgress != nil {
			e.onProgress(newEvent(data, r))
		}
	}

	go func() {
		defer func() {
			atomic.StoreInt32(&e.searching, 0)
			e.sem.Release(1)
		}()
		log.Debugf("search starting: depth=%d movetime=%s infinite=%t", limits.MaxDepth, limits.MoveTime, limits.Infinite)
		result := data.IterativeDeepening()
		if e.onFinish != nil {
			e.onFinish(newEvent(data, result))
		}
		log.Debugf("search finished: depth=%d score=%s nodes=%d", result.Depth, result.Score, result.Nodes)
	}()
	return nil
}

// Stop requests cancellation of the in-progress search, if any. The
// worker honors it at its next poll point (spec.md §4.3's cooperative
// cancellation) rather than being forcibly killed.
func (e *Engine) Stop() { atomic.StoreInt32(&e.abort, 1) }

// AwaitIdle blocks until no search is in progress. Used by tests that need
// a deterministic "search has finished" point instead of polling
// IsSearching (spec.md §9's design note).
func (e *Engine) AwaitIdle() {
	_ = e.sem.Acquire(context.Background(), 1)
	e.sem.Release(1)
}

// TTSize returns the transposition table's slot count, mostly for tests.
func (e *Engine) TTSize() int { return e.tt.Size() }
