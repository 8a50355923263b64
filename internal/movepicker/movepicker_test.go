//
// corvid - a small Go chess engine core (search, TT, iterative deepening)
//
// MIT License
//
// Copyright (c) 2020-2026 corvid contributors
//

package movepicker

import (
	"testing"

	"github.com/stretchr/testify/assert"

	. "github.com/frankkopp/corvid/internal/types"
)

type fakePosition struct {
	inCheck  bool
	captures map[Move]bool
}

func (p *fakePosition) InCheck() bool        { return p.inCheck }
func (p *fakePosition) PieceAt(Square) Piece { return PieceNone }
func (p *fakePosition) IsCapture(m Move) bool { return p.captures[m] }

type fakeMoves []Move

func (m fakeMoves) At(i int) Move { return m[i] }
func (m fakeMoves) Len() int      { return len(m) }

func mv(from, to Square) Move { return NewMove(from, to, Normal) }

func TestNext_YieldsTTMoveFirstWhenLegal(t *testing.T) {
	a, b, c := mv(SqE2, SqE4), mv(SqD2, SqD4), mv(SqG1, SqF3)
	pos := &fakePosition{captures: map[Move]bool{}}
	mp := New(pos, fakeMoves{a, b, c}, b, ModeMain)

	assert.Equal(t, b, mp.Next())
	rest := []Move{mp.Next(), mp.Next()}
	assert.ElementsMatch(t, []Move{a, c}, rest)
	assert.Equal(t, MoveNone, mp.Next())
}

func TestNext_DropsUnverifiedTTMove(t *testing.T) {
	a, b := mv(SqE2, SqE4), mv(SqD2, SqD4)
	ttMove := mv(SqG1, SqF3) // not among the generated legal moves
	pos := &fakePosition{captures: map[Move]bool{}}
	mp := New(pos, fakeMoves{a, b}, ttMove, ModeMain)

	first := mp.Next()
	assert.NotEqual(t, ttMove, first, "an unverified ttMove hint must never be yielded")
	all := []Move{first, mp.Next()}
	assert.ElementsMatch(t, []Move{a, b}, all)
	assert.Equal(t, MoveNone, mp.Next())
}
