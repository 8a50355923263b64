//
// corvid - a small Go chess engine core (search, TT, iterative deepening)
//
// MIT License
//
// Copyright (c) 2020-2026 corvid contributors
//

package search

// Statistics accumulates ambient counters over one search (spec.md §9's
// design note: observability the kernel's return values don't need to
// carry). Grounded on the teacher's Statistics struct and the TT hit/miss
// counters AdamGriffiths31-ChessEngine's search package also keeps.
type Statistics struct {
	Nodes       uint64
	QNodes      uint64
	TTHits      uint64
	TTMisses    uint64
	TTCuts      uint64
	BetaCutoffs uint64
	// BetaCutoffsFirst counts beta cutoffs produced by the first move
	// tried at a node — a high ratio against BetaCutoffs is evidence move
	// ordering is doing its job.
	BetaCutoffsFirst uint64
}

func (s *Statistics) recordBetaCutoff(moveNumber int) {
	s.BetaCutoffs++
	if moveNumber == 1 {
		s.BetaCutoffsFirst++
	}
}
