//
// corvid - a small Go chess engine core (search, TT, iterative deepening)
//
// MIT License
//
// Copyright (c) 2020-2026 corvid contributors
//

// Package position implements the Position collaborator spec.md treats as
// external to the core: legal move enumeration, make/unmake, Zobrist
// hashing and the three draw predicates. Grounded on the teacher's
// internal/position in shape (owned board state, a Zobrist key, a
// reversible DoMove/UndoMove pair) but using a mailbox (array-of-64)
// board instead of the teacher's bitboard/magic-table representation — see
// DESIGN.md for why.
package position

import (
	"fmt"
	"strconv"
	"strings"

	. "github.com/frankkopp/corvid/internal/types"
)

// StartFEN is the standard chess starting position.
const StartFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// undoInfo captures everything DoMove mutates so UndoMove can reverse it
// without recomputing anything.
type undoInfo struct {
	move          Move
	captured      Piece
	capturedSq    Square // differs from move.To() only for en passant
	castling      CastlingRights
	epSquare      Square
	halfMoveClock int
	key           Key
}

// Position is a single chess position plus enough history to undo moves
// and detect repetition draws.
type Position struct {
	board         [64]Piece
	sideToMove    Color
	castling      CastlingRights
	epSquare      Square
	halfMoveClock int
	fullMoveNo    int
	kingSquare    [ColorLength]Square
	key           Key

	undo    []undoInfo
	keyHist []Key // the initial key, then one entry per ply played since creation
}

// New returns the standard starting position.
func New() *Position {
	p, err := FromFEN(StartFEN)
	if err != nil {
		panic("position: invalid built-in start FEN: " + err.Error())
	}
	return p
}

// FromFEN parses Forsyth-Edwards Notation into a Position.
func FromFEN(fen string) (*Position, error) {
	fields := strings.Fields(strings.TrimSpace(fen))
	if len(fields) < 4 {
		return nil, fmt.Errorf("position: malformed FEN %q", fen)
	}

	p := &Position{epSquare: SqNone}
	for i := range p.board {
		p.board[i] = PieceNone
	}

	ranks := strings.Split(fields[0], "/")
	if len(ranks) != 8 {
		return nil, fmt.Errorf("position: FEN needs 8 ranks, got %d", len(ranks))
	}
	for i, rankStr := range ranks {
		rank := 7 - i
		file := 0
		for _, c := range rankStr {
			switch {
			case c >= '1' && c <= '8':
				file += int(c - '0')
			default:
				pc, err := pieceFromChar(c)
				if err != nil {
					return nil, err
				}
				if file > 7 {
					return nil, fmt.Errorf("position: rank %d overflows", i)
				}
				sq := SquareOf(file, rank)
				p.board[sq] = pc
				if pc.TypeOf() == King {
					p.kingSquare[pc.ColorOf()] = sq
				}
				file++
			}
		}
	}

	switch fields[1] {
	case "w":
		p.sideToMove = White
	case "b":
		p.sideToMove = Black
	default:
		return nil, fmt.Errorf("position: bad side to move %q", fields[1])
	}

	p.castling = CastlingNone
	if fields[2] != "-" {
		for _, c := range fields[2] {
			switch c {
			case 'K':
				p.castling |= CastlingWhiteKing
			case 'Q':
				p.castling |= CastlingWhiteQueen
			case 'k':
				p.castling |= CastlingBlackKing
			case 'q':
				p.castling |= CastlingBlackQueen
			}
		}
	}

	p.epSquare = SqNone
	if fields[3] != "-" {
		p.epSquare = ParseSquare(fields[3])
	}

	p.halfMoveClock = 0
	p.fullMoveNo = 1
	if len(fields) >= 5 {
		if n, err := strconv.Atoi(fields[4]); err == nil {
			p.halfMoveClock = n
		}
	}
	if len(fields) >= 6 {
		if n, err := strconv.Atoi(fields[5]); err == nil {
			p.fullMoveNo = n
		}
	}

	p.key = p.computeKey()
	p.keyHist = append(p.keyHist, p.key)
	return p, nil
}

func pieceFromChar(c rune) (Piece, error) {
	var color Color
	lower := c
	if c >= 'A' && c <= 'Z' {
		color = White
		lower = c + 32
	} else {
		color = Black
	}
	var pt PieceType
	switch lower {
	case 'p':
		pt = Pawn
	case 'n':
		pt = Knight
	case 'b':
		pt = Bishop
	case 'r':
		pt = Rook
	case 'q':
		pt = Queen
	case 'k':
		pt = King
	default:
		return PieceNone, fmt.Errorf("position: bad piece char %q", c)
	}
	return MakePiece(color, pt), nil
}

func (p *Position) computeKey() Key {
	var k Key
	for sq := SqA1; sq < SqLength; sq++ {
		if pc := p.board[sq]; pc != PieceNone {
			k ^= zobrist.piece[pc][sq]
		}
	}
	k ^= zobristCastling(p.castling)
	if p.epSquare != SqNone {
		k ^= zobrist.epFile[FileOf(p.epSquare)]
	}
	if p.sideToMove == Black {
		k ^= zobrist.side
	}
	return k
}

// Clone returns an independent deep copy, suitable for handing to a search
// worker as its exclusively-owned SearchData.Position (spec.md §3).
func (p *Position) Clone() *Position {
	c := *p
	c.undo = append([]undoInfo(nil), p.undo...)
	c.keyHist = append([]Key(nil), p.keyHist...)
	return &c
}

// NextPlayer returns the side to move.
func (p *Position) NextPlayer() Color { return p.sideToMove }

// Hash returns the Zobrist key of the current position. DoMove recomputes
// it from the whole board and UndoMove restores the saved value; it is not
// updated incrementally.
func (p *Position) Hash() Key { return p.key }

// PieceAt returns the piece on sq, or PieceNone.
func (p *Position) PieceAt(sq Square) Piece { return p.board[sq] }

// KingSquare returns the square of c's king.
func (p *Position) KingSquare(c Color) Square { return p.kingSquare[c] }

// HalfMoveClock returns the number of plies since the last capture or pawn move.
func (p *Position) HalfMoveClock() int { return p.halfMoveClock }

// LastMove returns the most recently played move, or MoveNone at the root.
func (p *Position) LastMove() Move {
	if len(p.undo) == 0 {
		return MoveNone
	}
	return p.undo[len(p.undo)-1].move
}

// IsCapture reports whether m captures a piece (including en passant) in
// the current position. Must be called before DoMove(m).
func (p *Position) IsCapture(m Move) bool {
	if p.board[m.To()] != PieceNone {
		return true
	}
	return m.MoveType() == EnPassant
}

// StringFEN renders the position back to Forsyth-Edwards Notation.
func (p *Position) StringFEN() string {
	var b strings.Builder
	for rank := 7; rank >= 0; rank-- {
		empty := 0
		for file := 0; file < 8; file++ {
			pc := p.board[SquareOf(file, rank)]
			if pc == PieceNone {
				empty++
				continue
			}
			if empty > 0 {
				b.WriteString(strconv.Itoa(empty))
				empty = 0
			}
			b.WriteString(pc.String())
		}
		if empty > 0 {
			b.WriteString(strconv.Itoa(empty))
		}
		if rank > 0 {
			b.WriteByte('/')
		}
	}
	b.WriteByte(' ')
	b.WriteString(p.sideToMove.String())
	b.WriteByte(' ')
	if p.castling == CastlingNone {
		b.WriteByte('-')
	} else {
		if p.castling.Has(CastlingWhiteKing) {
			b.WriteByte('K')
		}
		if p.castling.Has(CastlingWhiteQueen) {
			b.WriteByte('Q')
		}
		if p.castling.Has(CastlingBlackKing) {
			b.WriteByte('k')
		}
		if p.castling.Has(CastlingBlackQueen) {
			b.WriteByte('q')
		}
	}
	b.WriteByte(' ')
	if p.epSquare == SqNone {
		b.WriteByte('-')
	} else {
		b.WriteString(p.epSquare.String())
	}
	b.WriteString(fmt.Sprintf(" %d %d", p.halfMoveClock, p.fullMoveNo))
	return b.String()
}

func (p *Position) String() string { return p.StringFEN() }
