package bracket

import "math/bits"

// Elimination is the single-elimination generator the double-elimination
// builder composes for its top segment and for routing top bracket winners.
type Elimination interface {
	// BuildRoundsAndMatches allocates the rounds and matches of a
	// single-elimination tree over slots entrants.
	BuildRoundsAndMatches(a Allocator, slots int) *Bracket
	// WinnerRoute maps a placement inside the tree to the placement of the
	// match its winner plays next. It is not defined for the final.
	WinnerRoute(slots, place int) int
}

// SingleElimination is the standard halving tree: round r of a bracket with
// slots entrants holds slots/2^r matches and placements are numbered round
// by round.
type SingleElimination struct{}

var _ Elimination = SingleElimination{}

func (SingleElimination) BuildRoundsAndMatches(a Allocator, slots int) *Bracket {
	b := &Bracket{Segment: Top}
	rounds := calculateRounds(slots)
	for r := 1; r <= rounds; r++ {
		round := a.NewRound(Top, r)
		for m := 1; m <= slots>>r; m++ {
			a.NewMatch(round, m)
		}
		b.Rounds = append(b.Rounds, round)
	}
	return b
}

// WinnerRoute pairs placements 2k and 2k+1 into the same next match. The
// first round holds slots/2 matches, so parent k sits at slots/2 + k.
func (SingleElimination) WinnerRoute(slots, place int) int {
	return slots/2 + place/2
}

func calculateRounds(players int) int {
	rounds := 0
	for players > 1 {
		rounds++
		players = (players + 1) / 2
	}
	return rounds
}

// log2 is floor(log2(n)) for n > 0.
func log2(n int) int {
	return bits.Len(uint(n)) - 1
}

// MaxSlots is the largest entrant count a topology or router is built for.
// A topology holds 2*slots-1 matches, so the bound keeps a single build in
// the low megabytes.
const MaxSlots = 1 << 16

// isValidSlotCount reports whether n is a power of two in [2, MaxSlots].
func isValidSlotCount(n int) bool {
	return n >= 2 && n <= MaxSlots && n&(n-1) == 0
}
