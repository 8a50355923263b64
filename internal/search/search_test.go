//
// corvid - a small Go chess engine core (search, TT, iterative deepening)
//
// MIT License
//
// Copyright (c) 2020-2026 corvid contributors
//

package search

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/frankkopp/corvid/internal/position"
	"github.com/frankkopp/corvid/internal/tt"
	. "github.com/frankkopp/corvid/internal/types"
)

func newData(t *testing.T, fen string, limits Limits) *Data {
	t.Helper()
	pos, err := position.FromFEN(fen)
	require.NoError(t, err)
	table := tt.New(1)
	var abort int32
	return NewData(pos, table, limits, &abort)
}

func TestIterativeDeepening_FindsMateInOne(t *testing.T) {
	// White back-rank mate: Ra1-a8# — black's king is boxed in by its own
	// pawns and the rook check along the empty 8th rank can't be blocked
	// or captured.
	d := newData(t, "6k1/5ppp/8/8/8/8/5PPP/R5K1 w - - 0 1", Limits{MaxDepth: 3})
	result := d.IterativeDeepening()
	require.NotEqual(t, MoveNone, result.BestMove)
	assert.True(t, result.Score.IsMate())
	assert.Greater(t, result.Score, ScoreZero)
}

func TestIterativeDeepening_StalemateIsNotMistakenForMate(t *testing.T) {
	pos, err := position.FromFEN("7k/5Q2/6K1/8/8/8/8/8 b - - 0 1")
	require.NoError(t, err)
	assert.False(t, pos.InCheck())
	assert.Equal(t, 0, pos.LegalMoves(position.GenAll).Len())

	var abort int32
	d := NewData(pos, tt.New(1), Limits{MaxDepth: 2}, &abort)
	result := d.IterativeDeepening()
	assert.Equal(t, ScoreDraw, result.Score)
}

func TestIterativeDeepening_AlreadyMatedPosition(t *testing.T) {
	pos, err := position.FromFEN("R6k/6pp/8/8/8/8/8/6K1 b - - 0 1")
	require.NoError(t, err)
	assert.True(t, pos.InCheck())
	assert.Equal(t, 0, pos.LegalMoves(position.GenAll).Len())

	var abort int32
	d := NewData(pos, tt.New(1), Limits{MaxDepth: 2}, &abort)
	result := d.IterativeDeepening()
	assert.True(t, result.Score.IsMate())
	assert.Less(t, result.Score, ScoreZero)
}

func TestIterativeDeepening_RespectsMaxNodes(t *testing.T) {
	d := newData(t, position.StartFEN, Limits{MaxDepth: maxSearchDepth, MaxNodes: 500})
	result := d.IterativeDeepening()
	assert.LessOrEqual(t, result.Nodes, uint64(10000), "node budget of 500 should keep the search shallow")
}

func TestIterativeDeepening_ExternalAbortStopsSearch(t *testing.T) {
	pos, err := position.FromFEN(position.StartFEN)
	require.NoError(t, err)
	var abort int32 = 1 // pre-aborted
	d := NewData(pos, tt.New(1), Limits{MaxDepth: maxSearchDepth}, &abort)
	result := d.IterativeDeepening()
	assert.NotEqual(t, MoveNone, result.BestMove, "depth 1 always completes before abort is honored")
}

func TestBoundFor(t *testing.T) {
	assert.Equal(t, BoundUpper, BoundFor(Score(10), Score(20), Score(50)))
	assert.Equal(t, BoundLower, BoundFor(Score(60), Score(20), Score(50)))
	assert.Equal(t, BoundExact, BoundFor(Score(30), Score(20), Score(50)))
}

func TestIterativeDeepening_BareKingsIsDraw(t *testing.T) {
	// Bare kings: every root move leads to a ply-1 node whose draw check
	// reports the material draw, so the root score is a draw rather than
	// a static eval.
	d := newData(t, "4k3/8/8/8/8/8/8/4K3 w - - 0 1", Limits{MaxDepth: 3})
	result := d.IterativeDeepening()
	assert.Equal(t, ScoreDraw, result.Score)
}

func TestPvSearch_RootHonorsSearchMoves(t *testing.T) {
	// From the start position, restrict the root to 1. e4 only and confirm
	// the move actually played is the one in SearchMoves.
	pos, err := position.FromFEN(position.StartFEN)
	require.NoError(t, err)
	var e4 Move
	legal := pos.LegalMoves(position.GenAll)
	for i := 0; i < legal.Len(); i++ {
		if legal.At(i).String() == "e2e4" {
			e4 = legal.At(i)
		}
	}
	require.NotEqual(t, MoveNone, e4)

	var abort int32
	d := NewData(pos, tt.New(1), Limits{MaxDepth: 2, SearchMoves: []Move{e4}}, &abort)
	result := d.IterativeDeepening()
	assert.Equal(t, e4, result.BestMove)
}

func TestIterativeDeepening_FiresOnIterationPerDepth(t *testing.T) {
	d := newData(t, position.StartFEN, Limits{MaxDepth: 3})
	var depths []int
	d.OnIteration = func(r Result) { depths = append(depths, r.Depth) }
	d.IterativeDeepening()
	assert.Equal(t, []int{1, 2, 3}, depths)
}

func TestInitAllocatedTime_UsesClockFormula(t *testing.T) {
	pos, err := position.FromFEN(position.StartFEN)
	require.NoError(t, err)
	limits := Limits{MovesToGo: 20, TimeLeft: [ColorLength]time.Duration{White: 10 * time.Second}, Increment: [ColorLength]time.Duration{White: 100 * time.Millisecond}}
	var abort int32
	d := NewData(pos, tt.New(1), limits, &abort)
	assert.Equal(t, 10*time.Second/20+100*time.Millisecond, d.allocated)
}

func TestInitAllocatedTime_DefaultsMovesToGoWhenUnset(t *testing.T) {
	pos, err := position.FromFEN(position.StartFEN)
	require.NoError(t, err)
	limits := Limits{TimeLeft: [ColorLength]time.Duration{White: 30 * time.Second}}
	var abort int32
	d := NewData(pos, tt.New(1), limits, &abort)
	assert.Equal(t, 30*time.Second/defaultMovesToGo, d.allocated)
}

func TestIterativeDeepening_NonPVTTCutoffPreservesPV(t *testing.T) {
	// Earlier iterations store TT entries along the PV; the Root/PV nodes
	// re-searching those positions must not cut off from them, so the PV
	// still gets populated at depth 4.
	pos, err := position.FromFEN(position.StartFEN)
	require.NoError(t, err)
	table := tt.New(1)
	var abort int32
	d := NewData(pos, table, Limits{MaxDepth: 4}, &abort)
	result := d.IterativeDeepening()
	assert.NotEqual(t, MoveNone, result.BestMove)
	assert.Greater(t, result.PV.Len(), 0, "PV must be populated even when TT entries exist along it")
}
