//
// corvid - a small Go chess engine core (search, TT, iterative deepening)
//
// MIT License
//
// Copyright (c) 2020-2026 corvid contributors
//

package position

import . "github.com/frankkopp/corvid/internal/types"

var knightOffsets = [8][2]int{{1, 2}, {2, 1}, {2, -1}, {1, -2}, {-1, -2}, {-2, -1}, {-2, 1}, {-1, 2}}
var kingOffsets = [8][2]int{{1, 0}, {1, 1}, {0, 1}, {-1, 1}, {-1, 0}, {-1, -1}, {0, -1}, {1, -1}}
var bishopDirs = [4][2]int{{1, 1}, {1, -1}, {-1, 1}, {-1, -1}}
var rookDirs = [4][2]int{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}

// IsAttacked reports whether sq is attacked by any piece of color by.
func (p *Position) IsAttacked(sq Square, by Color) bool {
	// Pawns: a pawn of color `by` attacks diagonally "forward" from its own
	// perspective, so we look one rank behind sq from by's point of view.
	pawnRankDelta := -1
	if by == Black {
		pawnRankDelta = 1
	}
	f, r := FileOf(sq), RankOf(sq)
	for _, df := range [2]int{-1, 1} {
		nf, nr := f+df, r+pawnRankDelta
		if onBoard(nf, nr) {
			if pc := p.board[SquareOf(nf, nr)]; pc == MakePiece(by, Pawn) {
				return true
			}
		}
	}

	for _, o := range knightOffsets {
		nf, nr := f+o[0], r+o[1]
		if onBoard(nf, nr) && p.board[SquareOf(nf, nr)] == MakePiece(by, Knight) {
			return true
		}
	}

	for _, o := range kingOffsets {
		nf, nr := f+o[0], r+o[1]
		if onBoard(nf, nr) && p.board[SquareOf(nf, nr)] == MakePiece(by, King) {
			return true
		}
	}

	if p.slidingAttack(sq, by, bishopDirs, Bishop, Queen) {
		return true
	}
	if p.slidingAttack(sq, by, rookDirs, Rook, Queen) {
		return true
	}
	return false
}

func (p *Position) slidingAttack(sq Square, by Color, dirs [4][2]int, ptA, ptB PieceType) bool {
	f, r := FileOf(sq), RankOf(sq)
	for _, d := range dirs {
		nf, nr := f+d[0], r+d[1]
		for onBoard(nf, nr) {
			pc := p.board[SquareOf(nf, nr)]
			if pc != PieceNone {
				if pc.ColorOf() == by && (pc.TypeOf() == ptA || pc.TypeOf() == ptB) {
					return true
				}
				break
			}
			nf += d[0]
			nr += d[1]
		}
	}
	return false
}

func onBoard(file, rank int) bool {
	return file >= 0 && file <= 7 && rank >= 0 && rank <= 7
}

// InCheck reports whether the side to move's king is attacked.
func (p *Position) InCheck() bool {
	return p.IsAttacked(p.kingSquare[p.sideToMove], p.sideToMove.Flip())
}

// GivesCheck reports whether playing m would leave the opponent in check.
// Only used by search extensions; not required for legality.
func (p *Position) GivesCheck(m Move) bool {
	p.DoMove(m)
	check := p.InCheck()
	p.UndoMove()
	return check
}
