//
// corvid - a small Go chess engine core (search, TT, iterative deepening)
//
// MIT License
//
// Copyright (c) 2020-2026 corvid contributors
//

package engine

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/frankkopp/corvid/internal/search"
	. "github.com/frankkopp/corvid/internal/types"
)

func TestSetPosition_RejectsBadFEN(t *testing.T) {
	e := New(1)
	err := e.SetPosition("not a fen")
	assert.Error(t, err)
}

func TestSearch_ReportsBestMoveOnFinish(t *testing.T) {
	e := New(1)
	require.NoError(t, e.SetPosition("6k1/5ppp/8/8/8/8/5PPP/R5K1 w - - 0 1"))

	var mu sync.Mutex
	var finished SearchEvent
	done := make(chan struct{})
	e.OnFinish(func(ev SearchEvent) {
		mu.Lock()
		finished = ev
		mu.Unlock()
		close(done)
	})

	require.NoError(t, e.Search(search.Limits{MaxDepth: 3}))
	<-done
	e.AwaitIdle()

	mu.Lock()
	defer mu.Unlock()
	assert.NotEqual(t, MoveNone, finished.BestMove)
	assert.True(t, finished.Score.IsMate())
}

func TestSearch_RejectsReentry(t *testing.T) {
	e := New(1)
	require.NoError(t, e.SetPosition("6k1/5ppp/8/8/8/8/5PPP/R5K1 w - - 0 1"))
	e.OnFinish(func(SearchEvent) {})

	require.NoError(t, e.Search(search.Limits{Infinite: true}))
	defer func() {
		e.Stop()
		e.AwaitIdle()
	}()

	err := e.Search(search.Limits{MaxDepth: 1})
	assert.Error(t, err)
}

func TestStop_EndsInfiniteSearch(t *testing.T) {
	e := New(1)
	require.NoError(t, e.SetPosition("6k1/5ppp/8/8/8/8/5PPP/R5K1 w - - 0 1"))

	done := make(chan struct{})
	e.OnFinish(func(SearchEvent) { close(done) })

	require.NoError(t, e.Search(search.Limits{Infinite: true}))
	assert.True(t, e.IsSearching())
	e.Stop()
	<-done
	e.AwaitIdle()
	assert.False(t, e.IsSearching())
}

func TestSetPosition_FailsWhileSearching(t *testing.T) {
	e := New(1)
	require.NoError(t, e.SetPosition("6k1/5ppp/8/8/8/8/5PPP/R5K1 w - - 0 1"))
	e.OnFinish(func(SearchEvent) {})
	require.NoError(t, e.Search(search.Limits{Infinite: true}))
	defer func() {
		e.Stop()
		e.AwaitIdle()
	}()

	err := e.SetPosition("8/8/8/8/8/8/8/k1K4R w - - 0 1")
	assert.Error(t, err)
}
