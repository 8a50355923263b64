//
// corvid - a small Go chess engine core (search, TT, iterative deepening)
//
// MIT License
//
// Copyright (c) 2020-2026 corvid contributors
//

// Package movepicker implements the MovePicker contract of spec.md §4.6:
// an iterator over a position's moves in a search-friendly order, seeded
// with the transposition table's best move when one is known. Grounded on
// the teacher's internal/moveGenerator staged generation, simplified since
// spec.md only requires two modes (ModeMain, ModeQuiescence) rather than
// the teacher's full staged pseudo-legal/legal/killer/history pipeline.
package movepicker

import (
	. "github.com/frankkopp/corvid/internal/types"
)

// Mode selects which moves a MovePicker enumerates.
type Mode uint8

const (
	// ModeMain enumerates all legal moves, for use by the main search.
	ModeMain Mode = iota
	// ModeQuiescence enumerates only non-quiet moves (captures and
	// promotions) when the side to move is not in check, or all legal
	// evasions when it is — spec.md §4.6.
	ModeQuiescence
)

// position is the subset of internal/position.Position MovePicker needs,
// kept narrow so the package doesn't import position directly (avoiding an
// import cycle with any future position-side use of move ordering hints).
type position interface {
	InCheck() bool
	PieceAt(sq Square) Piece
	IsCapture(m Move) bool
}

// legalMoves abstracts move enumeration so callers can hand in whichever
// generation mode they already computed.
type legalMoves interface {
	At(i int) Move
	Len() int
}

// MovePicker yields a position's moves one at a time in an order intended
// to cause alpha-beta cutoffs as early as possible: the transposition
// table's move first (it was good enough for someone to store last time),
// then promotions (by promoted piece value), then captures ordered by
// MVV-LVA, then the remaining quiet moves in generation order.
type MovePicker struct {
	moves   []Move
	scores  []int32
	idx     int
	ttMove  Move
	ttTried bool
}

// New builds a MovePicker over pos's moves in mode, preferring ttMove first
// when it is present among the generated moves.
func New(pos position, moves legalMoves, ttMove Move, mode Mode) *MovePicker {
	n := moves.Len()
	mp := &MovePicker{moves: make([]Move, 0, n), scores: make([]int32, 0, n), ttMove: ttMove}

	inCheck := mode == ModeQuiescence && pos.InCheck()
	ttFound := false
	for i := 0; i < n; i++ {
		m := moves.At(i)
		if mode == ModeQuiescence && !inCheck && !pos.IsCapture(m) && m.MoveType() != Promotion {
			continue
		}
		if m == ttMove {
			ttFound = true
			continue // surfaced separately, first
		}
		mp.moves = append(mp.moves, m)
		mp.scores = append(mp.scores, scoreMove(pos, m))
	}
	if !ttFound {
		// ttMove wasn't among the legal moves generated for this position
		// (possible on a Zobrist key collision) — don't yield it.
		mp.ttMove = MoveNone
	}
	sortByScoreDesc(mp.moves, mp.scores)
	return mp
}

// Next returns the next move in order, or MoveNone when exhausted.
func (mp *MovePicker) Next() Move {
	if !mp.ttTried {
		mp.ttTried = true
		if mp.ttMove != MoveNone {
			return mp.ttMove
		}
	}
	if mp.idx >= len(mp.moves) {
		return MoveNone
	}
	m := mp.moves[mp.idx]
	mp.idx++
	return m
}

// scoreMove ranks captures via MVV-LVA (victim value first, minus a
// fraction of the attacker's value) and leaves quiet moves at zero so they
// sort after every capture but keep generation order among themselves.
func scoreMove(pos position, m Move) int32 {
	if m.MoveType() == Promotion {
		return 20000 + int32(m.PromotionType().Value())
	}
	if !pos.IsCapture(m) {
		return 0
	}
	victim := pos.PieceAt(m.To())
	attacker := pos.PieceAt(m.From())
	victimValue := 0
	if victim != PieceNone {
		victimValue = victim.TypeOf().Value()
	}
	return int32(10000 + victimValue*16 - attacker.TypeOf().Value())
}

func sortByScoreDesc(moves []Move, scores []int32) {
	// insertion sort: move lists are short (legal moves rarely exceed ~40),
	// so this beats the constant overhead of sort.Slice's interface calls.
	for i := 1; i < len(moves); i++ {
		mv, sc := moves[i], scores[i]
		j := i - 1
		for j >= 0 && scores[j] < sc {
			moves[j+1] = moves[j]
			scores[j+1] = scores[j]
			j--
		}
		moves[j+1] = mv
		scores[j+1] = sc
	}
}
