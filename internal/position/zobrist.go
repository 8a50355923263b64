//
// corvid - a small Go chess engine core (search, TT, iterative deepening)
//
// MIT License
//
// Copyright (c) 2020-2026 corvid contributors
//

package position

import . "github.com/frankkopp/corvid/internal/types"

// zobristTable holds the random numbers XORed together by computeKey to
// build a position's hash. Grounded on the teacher's position/zobrist.go: one key
// per (piece, square), one per castling-rights bit, one per en-passant file,
// and one toggled on side-to-move.
type zobristTable struct {
	piece    [PieceLength][SqLength]Key
	castling [4]Key // one per individual right bit, XORed in/out independently
	epFile   [8]Key
	side     Key
}

var zobrist zobristTable

// splitmix64 is a small, fast, deterministic PRNG used only to seed the
// Zobrist tables at package init — no cryptographic properties required,
// just good bit dispersion and a fixed seed so hashes are reproducible
// across runs (useful for test fixtures and replaying TT dumps).
type splitmix64 struct{ state uint64 }

func (s *splitmix64) next() uint64 {
	s.state += 0x9E3779B97F4A7C15
	z := s.state
	z = (z ^ (z >> 30)) * 0xBF58476D1CE4E5B9
	z = (z ^ (z >> 27)) * 0x94D049BB133111EB
	return z ^ (z >> 31)
}

func init() {
	r := &splitmix64{state: 1070372}
	for pc := Piece(0); pc < PieceLength; pc++ {
		for sq := SqA1; sq < SqLength; sq++ {
			zobrist.piece[pc][sq] = Key(r.next())
		}
	}
	for i := range zobrist.castling {
		zobrist.castling[i] = Key(r.next())
	}
	for f := 0; f < 8; f++ {
		zobrist.epFile[f] = Key(r.next())
	}
	zobrist.side = Key(r.next())
}

func zobristCastling(cr CastlingRights) Key {
	var k Key
	bits := []CastlingRights{CastlingWhiteKing, CastlingWhiteQueen, CastlingBlackKing, CastlingBlackQueen}
	for i, b := range bits {
		if cr&b != 0 {
			k ^= zobrist.castling[i]
		}
	}
	return k
}
