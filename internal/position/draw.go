//
// corvid - a small Go chess engine core (search, TT, iterative deepening)
//
// MIT License
//
// Copyright (c) 2020-2026 corvid contributors
//

package position

import . "github.com/frankkopp/corvid/internal/types"

// IsFiftyMoveDraw reports the fifty-move rule: no capture or pawn move in
// the last 100 plies.
func (p *Position) IsFiftyMoveDraw() bool {
	return p.halfMoveClock >= 100
}

// IsMaterialDraw reports the common insufficient-material cases: bare
// kings, king+minor vs king, and king+bishop vs king+bishop with
// same-colored bishops. Anything else (even if drawish in practice) is left
// to the search to discover, matching the teacher's conservative draw
// detector.
func (p *Position) IsMaterialDraw() bool {
	var minors, others int
	var bishopSquares []Square
	for sq := SqA1; sq < SqLength; sq++ {
		pc := p.board[sq]
		if pc == PieceNone {
			continue
		}
		switch pc.TypeOf() {
		case King:
			// ignored
		case Knight:
			minors++
		case Bishop:
			minors++
			bishopSquares = append(bishopSquares, sq)
		default:
			others++
		}
	}
	if others > 0 {
		return false
	}
	switch minors {
	case 0:
		return true
	case 1:
		return true
	case 2:
		if len(bishopSquares) == 2 && squareColor(bishopSquares[0]) == squareColor(bishopSquares[1]) {
			return true
		}
		return false
	default:
		return false
	}
}

func squareColor(sq Square) int {
	return (int(FileOf(sq)) + int(RankOf(sq))) % 2
}

// CountRepetitions returns how many times the current Zobrist key has
// occurred earlier in this position's history (the position reachable only
// by moves played via DoMove since creation/Clone, not the full game).
func (p *Position) CountRepetitions() int {
	count := 0
	cur := p.key
	// the halfmove clock bounds how far back a repetition can reach: any
	// capture or pawn move resets it and makes the position irreversible.
	limit := len(p.keyHist) - 1 - p.halfMoveClock
	if limit < 0 {
		limit = 0
	}
	for i := len(p.keyHist) - 3; i >= limit; i -= 2 {
		if p.keyHist[i] == cur {
			count++
		}
	}
	return count
}

// IsRepetitionDraw reports strict threefold repetition (the current
// position, counting the current occurrence, has appeared three times),
// i.e. CountRepetitions() >= 2. Search's draw check uses the same test
// (see DESIGN.md).
func (p *Position) IsRepetitionDraw() bool {
	return p.CountRepetitions() >= 2
}
