//
// corvid - a small Go chess engine core (search, TT, iterative deepening)
//
// MIT License
//
// Copyright (c) 2020-2026 corvid contributors
//

package types

import "fmt"

// MoveType distinguishes the few move shapes that need special handling
// during make/unmake (en passant capture, castling rook shuffle, promotion).
type MoveType uint8

const (
	Normal MoveType = iota
	Promotion
	EnPassant
	Castling
)

// Move packs from/to/type/promotion into a single value, the way the
// teacher's pkg/types.Move does it, minus the sort-value high bits
// (ordering is MovePicker's job here, not the move encoding's).
//
//	bits 0-5   to square
//	bits 6-11  from square
//	bits 12-13 promotion piece type offset from Knight (0=N,1=B,2=R,3=Q)
//	bits 14-15 move type
type Move uint16

// MoveNone is the zero value / sentinel "no move".
const MoveNone Move = 0

const (
	toShift       = 0
	fromShift     = 6
	promTypeShift = 12
	typeShift     = 14

	sqMask       Move = 0x3F
	promTypeMask Move = 0x3 << promTypeShift
	typeMask     Move = 0x3 << typeShift
)

// NewMove creates a Normal or EnPassant/Castling move (no promotion).
func NewMove(from, to Square, t MoveType) Move {
	return Move(to)<<toShift | Move(from)<<fromShift | Move(t)<<typeShift
}

// NewPromotion creates a promotion move to the given piece type (Knight..Queen).
func NewPromotion(from, to Square, promType PieceType) Move {
	if promType < Knight {
		promType = Queen
	}
	return Move(to)<<toShift | Move(from)<<fromShift |
		Move(promType-Knight)<<promTypeShift | Move(Promotion)<<typeShift
}

// To returns the destination square.
func (m Move) To() Square { return Square((m >> toShift) & sqMask) }

// From returns the origin square.
func (m Move) From() Square { return Square((m >> fromShift) & sqMask) }

// MoveType returns the move's shape.
func (m Move) MoveType() MoveType { return MoveType((m & typeMask) >> typeShift) }

// PromotionType returns the promotion piece type; only meaningful when
// MoveType() == Promotion.
func (m Move) PromotionType() PieceType {
	return PieceType((m&promTypeMask)>>promTypeShift) + Knight
}

// IsValid reports whether m has legal-looking squares (not whether it is
// legal in any particular position).
func (m Move) IsValid() bool {
	return m != MoveNone && m.From().IsValid() && m.To().IsValid()
}

// String is a UCI-compatible string, e.g. "e2e4" or "e7e8q".
func (m Move) String() string {
	if m == MoveNone {
		return "0000"
	}
	s := m.From().String() + m.To().String()
	if m.MoveType() == Promotion {
		s += m.PromotionType().Char()
	}
	return s
}

func (m Move) GoString() string {
	return fmt.Sprintf("Move(%s)", m.String())
}
