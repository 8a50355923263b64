//
// corvid - a small Go chess engine core (search, TT, iterative deepening)
//
// MIT License
//
// Copyright (c) 2020-2026 corvid contributors
//

package search

// TTFillPerMille reports the transposition table's fill level, used by the
// Engine facade to populate SearchEvent.TTFillPerMille (spec.md §9 /
// SPEC_FULL.md §12, mirroring the teacher's UCI hashfull field).
func (d *Data) TTFillPerMille() int { return d.TT.Hashfull() }
