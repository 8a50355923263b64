//
// corvid - a small Go chess engine core (search, TT, iterative deepening)
//
// MIT License
//
// Copyright (c) 2020-2026 corvid contributors
//

package search

import (
	"github.com/frankkopp/corvid/internal/evaluator"
	"github.com/frankkopp/corvid/internal/movepicker"
	"github.com/frankkopp/corvid/internal/moveslice"
	"github.com/frankkopp/corvid/internal/position"
	. "github.com/frankkopp/corvid/internal/types"
)

// pvSearch is the negamax/PVS kernel: the first move at a node is searched
// with a full (alpha, beta) window, every later move gets a cheap
// zero-window scout search first and is only re-searched with the full
// window when the scout reports it might raise alpha (spec.md §4.4).
func (d *Data) pvSearch(nodeType NodeType, depth, ply int, alpha, beta Score) Score {
	d.pv[ply].Clear()

	if d.stopped {
		return evaluator.Evaluate(d.Pos)
	}

	if ply > 0 && isDraw(d.Pos) {
		return ScoreDraw
	}

	if ply >= MaxPly {
		return evaluator.Evaluate(d.Pos)
	}

	if depth <= 0 {
		return d.qSearch(ply, alpha, beta)
	}

	d.nodes++
	if ply > 0 && d.pollAbort() {
		d.stopped = true
		return evaluator.Evaluate(d.Pos)
	}

	origAlpha := alpha
	var ttMove Move
	if entry, hit := d.TT.Probe(d.Pos.Hash()); hit {
		d.Stats.TTHits++
		ttMove = entry.Move
		// Only NonPV (scout) nodes may cut off from the TT; PV and Root
		// nodes must keep searching so d.pv[ply] gets populated (spec.md
		// §4.4 step 6).
		if nodeType == NonPV && int(entry.Depth) >= depth {
			score := ScoreFromTT(entry.Score, ply)
			if BoundMatch(entry.Bound, score, alpha, beta) {
				d.Stats.TTCuts++
				return score
			}
		}
	} else {
		d.Stats.TTMisses++
	}

	inCheck := d.Pos.InCheck()
	legal := d.Pos.LegalMoves(position.GenAll)
	if legal.Len() == 0 {
		if inCheck {
			return -ScoreMate + Score(ply)
		}
		return ScoreDraw
	}

	picker := movepicker.New(d.Pos, legal, ttMove, movepicker.ModeMain)
	best := -ScoreInfinite
	bestMove := MoveNone
	moveNumber := 0

	for {
		m := picker.Next()
		if m == MoveNone {
			break
		}
		if nodeType == Root && !containsMove(d.limits.SearchMoves, m) {
			continue
		}
		moveNumber++

		d.Pos.DoMove(m)
		var score Score
		if moveNumber == 1 {
			score = -d.pvSearch(childType(nodeType), depth-1, ply+1, -beta, -alpha)
		} else {
			score = -d.pvSearch(NonPV, depth-1, ply+1, -alpha-1, -alpha)
			if score > alpha && score < beta && nodeType != NonPV {
				score = -d.pvSearch(childType(nodeType), depth-1, ply+1, -beta, -alpha)
			}
		}
		d.Pos.UndoMove()

		if score > best {
			best = score
			bestMove = m
			if score > alpha {
				alpha = score
				moveslice.SetPV(&d.pv[ply], m, &d.pv[ply+1])
				if alpha >= beta {
					d.Stats.recordBetaCutoff(moveNumber)
					break
				}
			}
		}

		if d.stopped {
			break // finish scoring the in-flight move, then stop trying more
		}
	}

	if !d.stopped {
		bound := BoundFor(best, origAlpha, beta)
		d.TT.Store(d.Pos.Hash(), bestMove, ScoreToTT(best, ply), int8(depth), bound)
	}
	return best
}

// qSearch extends the search along capture/promotion/evasion lines past
// the nominal horizon to avoid the horizon effect, per spec.md §4.5: a
// standing-pat evaluation bounds the score from below, and only non-quiet
// moves (or all evasions in check) are explored.
func (d *Data) qSearch(ply int, alpha, beta Score) Score {
	if d.stopped {
		return evaluator.Evaluate(d.Pos)
	}

	if isDraw(d.Pos) {
		return ScoreDraw
	}

	d.nodes++
	d.noteSelDepth(ply)
	if d.pollAbort() {
		d.stopped = true
		return evaluator.Evaluate(d.Pos)
	}
	if ply >= MaxPly {
		return evaluator.Evaluate(d.Pos)
	}

	origAlpha := alpha
	var ttMove Move
	if entry, hit := d.TT.Probe(d.Pos.Hash()); hit {
		d.Stats.TTHits++
		ttMove = entry.Move
		score := ScoreFromTT(entry.Score, ply)
		if BoundMatch(entry.Bound, score, alpha, beta) {
			d.Stats.TTCuts++
			return score
		}
	} else {
		d.Stats.TTMisses++
	}

	inCheck := d.Pos.InCheck()
	var standPat Score
	if !inCheck {
		standPat = evaluator.Evaluate(d.Pos)
		if standPat >= beta {
			return standPat
		}
		if standPat > alpha {
			alpha = standPat
		}
	}

	mode := movepicker.ModeQuiescence
	var legal = d.Pos.LegalMoves(position.GenAll)
	if !inCheck {
		legal = d.Pos.LegalMoves(position.GenNonQuiet)
	}
	if legal.Len() == 0 {
		if inCheck {
			return -ScoreMate + Score(ply)
		}
		return standPat
	}

	picker := movepicker.New(d.Pos, legal, ttMove, mode)
	best := standPat
	bestMove := MoveNone
	if inCheck {
		best = -ScoreInfinite
	}

	for {
		m := picker.Next()
		if m == MoveNone {
			break
		}
		d.Pos.DoMove(m)
		score := -d.qSearch(ply+1, -beta, -alpha)
		d.Pos.UndoMove()

		if score > best {
			best = score
			bestMove = m
			if score > alpha {
				alpha = score
				if alpha >= beta {
					break
				}
			}
		}

		if d.stopped {
			break
		}
	}

	if !d.stopped {
		qDepth := int8(0)
		if inCheck {
			qDepth = 1
		}
		bound := BoundFor(best, origAlpha, beta)
		d.TT.Store(d.Pos.Hash(), bestMove, ScoreToTT(best, ply), qDepth, bound)
	}
	return best
}

func childType(parent NodeType) NodeType {
	if parent == Root {
		return PV
	}
	return parent
}

// BoundFor derives the bound tag a completed pvSearch node should store:
// EXACT when the best score landed strictly inside the window that was
// searched, UPPER when nothing beat alpha (a fail-low), LOWER when beta
// was reached (a fail-high) — spec.md §4.2.
func BoundFor(best, origAlpha, beta Score) Bound {
	switch {
	case best <= origAlpha:
		return BoundUpper
	case best >= beta:
		return BoundLower
	default:
		return BoundExact
	}
}

func isDraw(pos *position.Position) bool {
	return pos.IsFiftyMoveDraw() || pos.IsMaterialDraw() || pos.CountRepetitions() >= 2
}
