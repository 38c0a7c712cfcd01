package bracket

import "fmt"

// Allocator hands out rounds and matches with sequential global IDs.
type Allocator interface {
	NewRound(seg Segment, number int) *Round
	NewMatch(r *Round, roundMatch int) *Match
}

// Builder owns the round and match counters of one topology build. Every
// build gets its own Builder, so concurrent builds never share numbering.
type Builder struct {
	slots    int
	elim     Elimination
	round    int
	match    int
	rounds   []*Round
	matches  []*Match
	brackets map[Segment]*Bracket
}

var _ Allocator = (*Builder)(nil)

// NewBuilder validates slots before anything is allocated.
func NewBuilder(slots int, elim Elimination) (*Builder, error) {
	if !isValidSlotCount(slots) {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidSlotCount, slots)
	}
	if elim == nil {
		elim = SingleElimination{}
	}
	return &Builder{
		slots:    slots,
		elim:     elim,
		brackets: make(map[Segment]*Bracket, len(Segments)),
	}, nil
}

func (b *Builder) NewRound(seg Segment, number int) *Round {
	b.round++
	r := &Round{ID: b.round, Segment: seg, Number: number}
	b.rounds = append(b.rounds, r)
	return r
}

func (b *Builder) NewMatch(r *Round, roundMatch int) *Match {
	b.match++
	m := &Match{
		ID:         b.match,
		Segment:    r.Segment,
		Round:      r.Number,
		RoundMatch: roundMatch,
	}
	r.Matches = append(r.Matches, m.ID)
	b.matches = append(b.matches, m)
	return m
}

func (b *Builder) buildBracket(seg Segment) *Bracket {
	br := &Bracket{Segment: seg}
	b.brackets[seg] = br
	return br
}

// buildMatches fills the segments in the fixed order top, bottom, champion.
func (b *Builder) buildMatches() {
	b.brackets[Top] = b.elim.BuildRoundsAndMatches(b, b.slots)
	b.buildBottomMatches(b.buildBracket(Bottom))
	b.buildChampionMatches(b.buildBracket(Champion))
}

// buildBottomMatches lays out the losers bracket. Consecutive rounds share a
// match count, halving every two rounds: 4 4 2 2 1 1 for 16 slots.
func (b *Builder) buildBottomMatches(br *Bracket) {
	numRounds := (log2(b.slots) - 1) * 2
	for roundNum := 1; roundNum <= numRounds; roundNum++ {
		round := b.NewRound(Bottom, roundNum)
		roundGroup := (roundNum + 1) / 2
		numMatches := b.slots >> (roundGroup + 1)
		for m := 1; m <= numMatches; m++ {
			b.NewMatch(round, m)
		}
		br.Rounds = append(br.Rounds, round)
	}
}

// buildChampionMatches allocates the grand final and the reset match. The
// reset is always allocated; whether it is played is up to the caller.
func (b *Builder) buildChampionMatches(br *Bracket) {
	for _, roundNum := range []int{1, 2} {
		round := b.NewRound(Champion, roundNum)
		b.NewMatch(round, 1)
		br.Rounds = append(br.Rounds, round)
	}
}
