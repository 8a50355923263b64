//
// corvid - a small Go chess engine core (search, TT, iterative deepening)
//
// MIT License
//
// Copyright (c) 2020-2026 corvid contributors
//

package position

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	. "github.com/frankkopp/corvid/internal/types"
)

func TestFromFEN_StartPosition(t *testing.T) {
	p, err := FromFEN(StartFEN)
	require.NoError(t, err)
	assert.Equal(t, White, p.NextPlayer())
	assert.Equal(t, WhiteKing, p.PieceAt(SqE1))
	assert.Equal(t, BlackKing, p.PieceAt(SqE8))
	assert.Equal(t, SqE1, p.KingSquare(White))
	assert.Equal(t, StartFEN, p.StringFEN())
}

func TestFromFEN_RoundTrip(t *testing.T) {
	fens := []string{
		StartFEN,
		"rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq e3 0 1",
		"4k3/8/8/8/8/8/4Q3/4K3 w - - 0 1",
		"r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1",
	}
	for _, fen := range fens {
		p, err := FromFEN(fen)
		require.NoError(t, err)
		assert.Equal(t, fen, p.StringFEN())
	}
}

func TestStartPosition_HasTwentyLegalMoves(t *testing.T) {
	p := New()
	moves := p.LegalMoves(GenAll)
	assert.Equal(t, 20, moves.Len())
}

func TestDoMove_UndoMove_RestoresState(t *testing.T) {
	p := New()
	before := p.StringFEN()
	beforeKey := p.Hash()

	moves := p.LegalMoves(GenAll)
	require.Greater(t, moves.Len(), 0)

	for i := 0; i < moves.Len(); i++ {
		m := moves.At(i)
		p.DoMove(m)
		p.UndoMove()
		assert.Equal(t, before, p.StringFEN(), "move %s should be fully reversible", m)
		assert.Equal(t, beforeKey, p.Hash())
	}
}

func TestDoMove_EnPassantCapture(t *testing.T) {
	p, err := FromFEN("rnbqkbnr/ppp1pppp/8/8/3pP3/8/PPPP1PPP/RNBQKBNR b KQkq e3 0 1")
	require.NoError(t, err)

	epCapture := NewMove(SqD4, SqE3, EnPassant)
	p.DoMove(epCapture)

	assert.Equal(t, PieceNone, p.PieceAt(SqE4), "captured pawn must be removed")
	assert.Equal(t, BlackPawn, p.PieceAt(SqE3))

	p.UndoMove()
	assert.Equal(t, WhitePawn, p.PieceAt(SqE4))
	assert.Equal(t, PieceNone, p.PieceAt(SqE3))
	assert.Equal(t, BlackPawn, p.PieceAt(SqD4))
}

func TestDoMove_CastlingMovesRook(t *testing.T) {
	p, err := FromFEN("r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1")
	require.NoError(t, err)

	p.DoMove(NewMove(SqE1, SqG1, Castling))
	assert.Equal(t, WhiteKing, p.PieceAt(SqG1))
	assert.Equal(t, WhiteRook, p.PieceAt(SqF1))
	assert.Equal(t, PieceNone, p.PieceAt(SqH1))
	assert.Equal(t, PieceNone, p.PieceAt(SqE1))

	p.UndoMove()
	assert.Equal(t, WhiteKing, p.PieceAt(SqE1))
	assert.Equal(t, WhiteRook, p.PieceAt(SqH1))
}

func TestDoMove_PromotionReplacesPiece(t *testing.T) {
	p, err := FromFEN("8/4P3/8/8/8/8/4k3/4K3 w - - 0 1")
	require.NoError(t, err)

	m := NewPromotion(SqE7, SqE8, Queen)
	p.DoMove(m)
	assert.Equal(t, WhiteQueen, p.PieceAt(SqE8))

	p.UndoMove()
	assert.Equal(t, WhitePawn, p.PieceAt(SqE7))
	assert.Equal(t, PieceNone, p.PieceAt(SqE8))
}

func TestInCheck(t *testing.T) {
	p, err := FromFEN("4k3/8/8/8/8/8/4Q3/4K3 b - - 0 1")
	require.NoError(t, err)
	assert.True(t, p.InCheck())
}

func TestIsFiftyMoveDraw(t *testing.T) {
	p, err := FromFEN("4k3/8/8/8/8/8/4Q3/4K3 w - - 100 60")
	require.NoError(t, err)
	assert.True(t, p.IsFiftyMoveDraw())
}

func TestIsMaterialDraw_BareKings(t *testing.T) {
	p, err := FromFEN("4k3/8/8/8/8/8/8/4K3 w - - 0 1")
	require.NoError(t, err)
	assert.True(t, p.IsMaterialDraw())
}

func TestIsMaterialDraw_FalseWithRook(t *testing.T) {
	p, err := FromFEN("R3k3/8/8/8/8/8/8/4K3 w - - 0 1")
	require.NoError(t, err)
	assert.False(t, p.IsMaterialDraw())
}

func TestClone_IsIndependent(t *testing.T) {
	p := New()
	clone := p.Clone()
	m := p.LegalMoves(GenAll).At(0)
	clone.DoMove(m)
	assert.NotEqual(t, p.Hash(), clone.Hash())
	assert.Equal(t, StartFEN, p.StringFEN())
}
