//
// corvid - a small Go chess engine core (search, TT, iterative deepening)
//
// MIT License
//
// Copyright (c) 2020-2026 corvid contributors
//

package position

import (
	"github.com/frankkopp/corvid/internal/moveslice"
	. "github.com/frankkopp/corvid/internal/types"
)

// GenMode selects which subset of legal moves LegalMoves should enumerate.
type GenMode uint8

const (
	// GenAll enumerates every legal move.
	GenAll GenMode = iota
	// GenNonQuiet enumerates only captures and promotions — the set
	// quiescence search widens from when the side to move is not in check
	// (spec.md §4.6).
	GenNonQuiet
)

// LegalMoves enumerates legal moves for the side to move in the given mode.
// Implemented as pseudo-legal generation followed by a make/unmake legality
// filter (own king must not be left in check) — simple to verify by hand
// and adequate given move generation is an out-of-scope collaborator whose
// only hard requirement is correctness (spec.md §1, §4.6).
func (p *Position) LegalMoves(mode GenMode) *moveslice.MoveSlice {
	out := moveslice.New(64)
	pseudo := p.pseudoLegalMoves(mode)
	for _, m := range pseudo {
		p.DoMove(m)
		illegal := p.IsAttacked(p.kingSquare[p.sideToMove.Flip()], p.sideToMove)
		p.UndoMove()
		if !illegal {
			out.PushBack(m)
		}
	}
	return out
}

// pseudoLegalMoves generates moves without checking whether they leave the
// mover's own king in check.
func (p *Position) pseudoLegalMoves(mode GenMode) []Move {
	us := p.sideToMove
	moves := make([]Move, 0, 48)

	for sq := SqA1; sq < SqLength; sq++ {
		pc := p.board[sq]
		if pc == PieceNone || pc.ColorOf() != us {
			continue
		}
		switch pc.TypeOf() {
		case Pawn:
			p.genPawnMoves(sq, mode, &moves)
		case Knight:
			p.genOffsetMoves(sq, knightOffsets, mode, &moves)
		case Bishop:
			p.genSlidingMoves(sq, bishopDirs, mode, &moves)
		case Rook:
			p.genSlidingMoves(sq, rookDirs, mode, &moves)
		case Queen:
			p.genSlidingMoves(sq, bishopDirs, mode, &moves)
			p.genSlidingMoves(sq, rookDirs, mode, &moves)
		case King:
			p.genOffsetMoves(sq, kingOffsets, mode, &moves)
			if mode == GenAll {
				p.genCastling(sq, &moves)
			}
		}
	}
	return moves
}

func (p *Position) genOffsetMoves(from Square, offsets [8][2]int, mode GenMode, moves *[]Move) {
	us := p.sideToMove
	f, r := FileOf(from), RankOf(from)
	for _, o := range offsets {
		nf, nr := f+o[0], r+o[1]
		if !onBoard(nf, nr) {
			continue
		}
		to := SquareOf(nf, nr)
		target := p.board[to]
		if target != PieceNone && target.ColorOf() == us {
			continue
		}
		if mode == GenNonQuiet && target == PieceNone {
			continue
		}
		*moves = append(*moves, NewMove(from, to, Normal))
	}
}

func (p *Position) genSlidingMoves(from Square, dirs [4][2]int, mode GenMode, moves *[]Move) {
	us := p.sideToMove
	f, r := FileOf(from), RankOf(from)
	for _, d := range dirs {
		nf, nr := f+d[0], r+d[1]
		for onBoard(nf, nr) {
			to := SquareOf(nf, nr)
			target := p.board[to]
			if target != PieceNone {
				if target.ColorOf() != us {
					*moves = append(*moves, NewMove(from, to, Normal))
				}
				break
			}
			if mode == GenAll {
				*moves = append(*moves, NewMove(from, to, Normal))
			}
			nf += d[0]
			nr += d[1]
		}
	}
}

var promotionTypes = [4]PieceType{Queen, Rook, Bishop, Knight}

func (p *Position) genPawnMoves(from Square, mode GenMode, moves *[]Move) {
	us := p.sideToMove
	f, r := FileOf(from), RankOf(from)
	forward := 1
	startRank, promoRank := 1, 7
	if us == Black {
		forward = -1
		startRank, promoRank = 6, 0
	}

	// single/double push; in GenNonQuiet only a push that promotes
	if onBoard(f, r+forward) {
		to1 := SquareOf(f, r+forward)
		if p.board[to1] == PieceNone {
			if mode == GenAll || r+forward == promoRank {
				addPawnMove(from, to1, promoRank, moves)
			}
			if mode == GenAll && r == startRank {
				to2 := SquareOf(f, r+2*forward)
				if p.board[to2] == PieceNone {
					*moves = append(*moves, NewMove(from, to2, Normal))
				}
			}
		}
	}

	// captures (incl. en passant) — always generated, quiet or not
	for _, df := range [2]int{-1, 1} {
		nf, nr := f+df, r+forward
		if !onBoard(nf, nr) {
			continue
		}
		to := SquareOf(nf, nr)
		if p.board[to] != PieceNone && p.board[to].ColorOf() != us {
			addPawnMove(from, to, promoRank, moves)
			continue
		}
		if to == p.epSquare {
			*moves = append(*moves, NewMove(from, to, EnPassant))
		}
	}
}

func addPawnMove(from, to Square, promoRank int, moves *[]Move) {
	if RankOf(to) == promoRank {
		for _, pt := range promotionTypes {
			*moves = append(*moves, NewPromotion(from, to, pt))
		}
		return
	}
	*moves = append(*moves, NewMove(from, to, Normal))
}

func (p *Position) genCastling(kingSq Square, moves *[]Move) {
	us := p.sideToMove
	them := us.Flip()
	if p.IsAttacked(kingSq, them) {
		return
	}
	if us == White {
		if p.castling.Has(CastlingWhiteKing) && p.board[SqF1] == PieceNone && p.board[SqG1] == PieceNone &&
			!p.IsAttacked(SqF1, them) && !p.IsAttacked(SqG1, them) {
			*moves = append(*moves, NewMove(kingSq, SqG1, Castling))
		}
		if p.castling.Has(CastlingWhiteQueen) && p.board[SqD1] == PieceNone && p.board[SqC1] == PieceNone && p.board[SqB1] == PieceNone &&
			!p.IsAttacked(SqD1, them) && !p.IsAttacked(SqC1, them) {
			*moves = append(*moves, NewMove(kingSq, SqC1, Castling))
		}
	} else {
		if p.castling.Has(CastlingBlackKing) && p.board[SqF8] == PieceNone && p.board[SqG8] == PieceNone &&
			!p.IsAttacked(SqF8, them) && !p.IsAttacked(SqG8, them) {
			*moves = append(*moves, NewMove(kingSq, SqG8, Castling))
		}
		if p.castling.Has(CastlingBlackQueen) && p.board[SqD8] == PieceNone && p.board[SqC8] == PieceNone && p.board[SqB8] == PieceNone &&
			!p.IsAttacked(SqD8, them) && !p.IsAttacked(SqC8, them) {
			*moves = append(*moves, NewMove(kingSq, SqC8, Castling))
		}
	}
}
