//
// corvid - a small Go chess engine core (search, TT, iterative deepening)
//
// MIT License
//
// Copyright (c) 2020-2026 corvid contributors
//

// Package evaluator provides a static position evaluation: material plus
// one fixed piece-square table per piece (no game-phase interpolation),
// returned relative to the side to move (Score.IsMate-free, per spec.md §3's Score contract).
// Grounded on the teacher's internal/types/posValues.go tables, trimmed to
// a single blended table per piece instead of the teacher's separate
// midgame/endgame tapering — evaluation quality is explicitly out of scope
// for the core (spec.md §1), so only determinism and side-relativity are
// required.
package evaluator

import . "github.com/frankkopp/corvid/internal/types"

type position interface {
	PieceAt(sq Square) Piece
	NextPlayer() Color
}

// pst[piece][sq] holds each table as laid out from White's perspective
// (index 0 = a1); Black's entries are read from the rank-mirrored square
// (rank r -> 7-r, file unchanged).
var pst = [PieceLength][64]int16{}

func init() {
	pawn := [64]int16{
		0, 0, 0, 0, 0, 0, 0, 0,
		5, 10, 10, -20, -20, 10, 10, 5,
		5, -5, -10, 0, 0, -10, -5, 5,
		0, 0, 0, 20, 20, 0, 0, 0,
		5, 5, 10, 25, 25, 10, 5, 5,
		10, 10, 20, 30, 30, 20, 10, 10,
		50, 50, 50, 50, 50, 50, 50, 50,
		0, 0, 0, 0, 0, 0, 0, 0,
	}
	knight := [64]int16{
		-50, -40, -30, -30, -30, -30, -40, -50,
		-40, -20, 0, 5, 5, 0, -20, -40,
		-30, 5, 10, 15, 15, 10, 5, -30,
		-30, 0, 15, 20, 20, 15, 0, -30,
		-30, 5, 15, 20, 20, 15, 5, -30,
		-30, 0, 10, 15, 15, 10, 0, -30,
		-40, -20, 0, 0, 0, 0, -20, -40,
		-50, -40, -30, -30, -30, -30, -40, -50,
	}
	bishop := [64]int16{
		-20, -10, -10, -10, -10, -10, -10, -20,
		-10, 5, 0, 0, 0, 0, 5, -10,
		-10, 10, 10, 10, 10, 10, 10, -10,
		-10, 0, 10, 10, 10, 10, 0, -10,
		-10, 5, 5, 10, 10, 5, 5, -10,
		-10, 0, 5, 10, 10, 5, 0, -10,
		-10, 0, 0, 0, 0, 0, 0, -10,
		-20, -10, -10, -10, -10, -10, -10, -20,
	}
	rook := [64]int16{
		0, 0, 0, 5, 5, 0, 0, 0,
		-5, 0, 0, 0, 0, 0, 0, -5,
		-5, 0, 0, 0, 0, 0, 0, -5,
		-5, 0, 0, 0, 0, 0, 0, -5,
		-5, 0, 0, 0, 0, 0, 0, -5,
		-5, 0, 0, 0, 0, 0, 0, -5,
		5, 10, 10, 10, 10, 10, 10, 5,
		0, 0, 0, 0, 0, 0, 0, 0,
	}
	queen := [64]int16{
		-20, -10, -10, -5, -5, -10, -10, -20,
		-10, 0, 0, 0, 0, 0, 0, -10,
		-10, 0, 5, 5, 5, 5, 0, -10,
		-5, 0, 5, 5, 5, 5, 0, -5,
		0, 0, 5, 5, 5, 5, 0, -5,
		-10, 5, 5, 5, 5, 5, 0, -10,
		-10, 0, 5, 0, 0, 0, 0, -10,
		-20, -10, -10, -5, -5, -10, -10, -20,
	}
	king := [64]int16{
		20, 30, 10, 0, 0, 10, 30, 20,
		20, 20, 0, 0, 0, 0, 20, 20,
		-10, -20, -20, -20, -20, -20, -20, -10,
		-20, -30, -30, -40, -40, -30, -30, -20,
		-30, -40, -40, -50, -50, -40, -40, -30,
		-30, -40, -40, -50, -50, -40, -40, -30,
		-30, -40, -40, -50, -50, -40, -40, -30,
		-30, -40, -40, -50, -50, -40, -40, -30,
	}

	tables := map[PieceType][64]int16{Pawn: pawn, Knight: knight, Bishop: bishop, Rook: rook, Queen: queen, King: king}
	for pt, table := range tables {
		for sq := 0; sq < 64; sq++ {
			white := MakePiece(White, pt)
			black := MakePiece(Black, pt)
			pst[white][sq] = table[sq]
			// mirror rank for black: sq's file stays, rank flips
			mirrored := (7-sq/8)*8 + sq%8
			pst[black][sq] = table[mirrored]
		}
	}
}

// Evaluate returns a static score for pos from the side-to-move's
// perspective: positive favors the side to move.
func Evaluate(pos position) Score {
	var total int32
	for sq := SqA1; sq < SqLength; sq++ {
		pc := pos.PieceAt(sq)
		if pc == PieceNone {
			continue
		}
		value := int32(pc.TypeOf().Value()) + int32(pst[pc][sq])
		if pc.ColorOf() == White {
			total += value
		} else {
			total -= value
		}
	}
	if pos.NextPlayer() == Black {
		total = -total
	}
	return Score(total)
}
