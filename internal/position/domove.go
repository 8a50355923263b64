//
// corvid - a small Go chess engine core (search, TT, iterative deepening)
//
// MIT License
//
// Copyright (c) 2020-2026 corvid contributors
//

package position

import . "github.com/frankkopp/corvid/internal/types"

// rookCastleFrom and rookCastleTo map a king's castling destination square
// to the rook's from and to squares for that side.
var rookCastleFrom = map[Square]Square{SqG1: SqH1, SqC1: SqA1, SqG8: SqH8, SqC8: SqA8}
var rookCastleTo = map[Square]Square{SqG1: SqF1, SqC1: SqD1, SqG8: SqF8, SqC8: SqD8}

// castlingRightsLost maps a square to the castling rights voided when a
// piece leaves or arrives there (king start squares, rook start squares).
var castlingRightsLost = map[Square]CastlingRights{
	SqE1: CastlingWhiteKing | CastlingWhiteQueen,
	SqA1: CastlingWhiteQueen,
	SqH1: CastlingWhiteKing,
	SqE8: CastlingBlackKing | CastlingBlackQueen,
	SqA8: CastlingBlackQueen,
	SqH8: CastlingBlackKing,
}

// DoMove applies m to the position. The caller is responsible for only
// applying moves produced by the legal move generator (spec.md §7 treats a
// collaborator producing an illegal move as a fatal bug, not a recoverable
// error).
func (p *Position) DoMove(m Move) {
	from, to := m.From(), m.To()
	moving := p.board[from]
	us := p.sideToMove

	u := undoInfo{
		move:          m,
		captured:      PieceNone,
		capturedSq:    to,
		castling:      p.castling,
		epSquare:      p.epSquare,
		halfMoveClock: p.halfMoveClock,
		key:           p.key,
	}

	// en passant captures a pawn not on the destination square
	if m.MoveType() == EnPassant {
		capSq := SquareOf(FileOf(to), RankOf(from))
		u.captured = p.board[capSq]
		u.capturedSq = capSq
		p.removePiece(capSq)
	} else if p.board[to] != PieceNone {
		u.captured = p.board[to]
		p.removePiece(to)
	}

	p.removePiece(from)
	p.placePiece(moving, to)

	if moving.TypeOf() == King {
		p.kingSquare[us] = to
	}

	switch m.MoveType() {
	case Promotion:
		p.removePiece(to)
		p.placePiece(MakePiece(us, m.PromotionType()), to)
	case Castling:
		rFrom, rTo := rookCastleFrom[to], rookCastleTo[to]
		rook := p.board[rFrom]
		p.removePiece(rFrom)
		p.placePiece(rook, rTo)
	}

	// update castling rights for anything moving off / landing on a
	// king/rook home square, including captures on a rook's home square
	p.castling &^= castlingRightsLost[from]
	p.castling &^= castlingRightsLost[to]

	// reset / advance the en passant square
	p.epSquare = SqNone
	if moving.TypeOf() == Pawn {
		df := RankOf(to) - RankOf(from)
		if df == 2 || df == -2 {
			p.epSquare = SquareOf(FileOf(from), (RankOf(from)+RankOf(to))/2)
		}
	}

	// fifty-move counter
	if moving.TypeOf() == Pawn || u.captured != PieceNone {
		p.halfMoveClock = 0
	} else {
		p.halfMoveClock++
	}

	if us == Black {
		p.fullMoveNo++
	}
	p.sideToMove = us.Flip()

	p.key = p.computeKey()
	p.undo = append(p.undo, u)
	p.keyHist = append(p.keyHist, p.key)
}

// UndoMove reverses the most recent DoMove. Panics if there is nothing to
// undo — a collaborator-desync bug per spec.md §7.
func (p *Position) UndoMove() {
	n := len(p.undo)
	if n == 0 {
		panic("position: UndoMove called with empty history")
	}
	u := p.undo[n-1]
	p.undo = p.undo[:n-1]
	p.keyHist = p.keyHist[:len(p.keyHist)-1]

	p.sideToMove = p.sideToMove.Flip()
	us := p.sideToMove
	if us == Black {
		p.fullMoveNo--
	}

	m := u.move
	from, to := m.From(), m.To()

	switch m.MoveType() {
	case Promotion:
		p.removePiece(to)
		p.placePiece(MakePiece(us, Pawn), from)
	case Castling:
		rFrom, rTo := rookCastleFrom[to], rookCastleTo[to]
		rook := p.board[rTo]
		p.removePiece(rTo)
		p.placePiece(rook, rFrom)
		moved := p.board[to]
		p.removePiece(to)
		p.placePiece(moved, from)
	default:
		moved := p.board[to]
		p.removePiece(to)
		p.placePiece(moved, from)
	}

	if p.board[from].TypeOf() == King {
		p.kingSquare[us] = from
	}

	if u.captured != PieceNone {
		p.placePiece(u.captured, u.capturedSq)
	}

	p.castling = u.castling
	p.epSquare = u.epSquare
	p.halfMoveClock = u.halfMoveClock
	p.key = u.key
}

// DoNullMove passes the turn without moving a piece. Used only by search
// extensions that need a "no move" probe; not part of spec.md's core but a
// common collaborator extension listed for completeness in SPEC_FULL.md.
func (p *Position) DoNullMove() {
	u := undoInfo{move: MoveNone, captured: PieceNone, castling: p.castling, epSquare: p.epSquare, halfMoveClock: p.halfMoveClock, key: p.key}
	p.epSquare = SqNone
	p.sideToMove = p.sideToMove.Flip()
	p.halfMoveClock++
	p.key = p.computeKey()
	p.undo = append(p.undo, u)
	p.keyHist = append(p.keyHist, p.key)
}

// UndoNullMove reverses DoNullMove.
func (p *Position) UndoNullMove() {
	n := len(p.undo)
	u := p.undo[n-1]
	p.undo = p.undo[:n-1]
	p.keyHist = p.keyHist[:len(p.keyHist)-1]
	p.sideToMove = p.sideToMove.Flip()
	p.castling = u.castling
	p.epSquare = u.epSquare
	p.halfMoveClock = u.halfMoveClock
	p.key = u.key
}

func (p *Position) removePiece(sq Square) { p.board[sq] = PieceNone }

func (p *Position) placePiece(pc Piece, sq Square) { p.board[sq] = pc }
