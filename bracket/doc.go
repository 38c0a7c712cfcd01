// Package bracket computes the topology of a double-elimination bracket.
//
// A bracket over S entrants (S a power of two) has three segments: the top
// (winners) segment with S-1 matches, the bottom (losers) segment with S-2
// matches, and the champion segment holding the grand final and the reset
// match. Matches are numbered 1..2S-1 in build order; the zero-based
// placement of a match is its ID minus one and is what the Router works on.
//
//	topo, err := bracket.BuildTopology(8)
//	if err != nil {
//		return err
//	}
//	next, ok, err := topo.NextPosition(6, bracket.Winner) // 12, true, nil
//
// Nothing here performs I/O or keeps global state; topologies built
// concurrently never share numbering.
package bracket
