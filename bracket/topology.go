package bracket

import "fmt"

// Topology is the complete structure of a double-elimination bracket for a
// fixed number of slots. It is read-only after BuildTopology returns and
// safe for concurrent readers.
type Topology struct {
	slots    int
	router   *Router
	rounds   []*Round
	matches  []*Match
	brackets map[Segment]*Bracket
}

// Edge is the routing of one match in global match IDs.
type Edge struct {
	Match    int
	WinnerTo Destination
	LoserTo  Destination
}

// BuildTopology builds the top, bottom and champion segments for slots
// entrants and routes every match.
func BuildTopology(slots int) (*Topology, error) {
	return BuildTopologyWith(slots, SingleElimination{})
}

// BuildTopologyWith is BuildTopology with a custom single-elimination
// generator for the top segment.
func BuildTopologyWith(slots int, elim Elimination) (*Topology, error) {
	b, err := NewBuilder(slots, elim)
	if err != nil {
		return nil, err
	}
	b.buildMatches()

	bottom := b.brackets[Bottom]
	fold := len(bottom.Rounds) == 0 || len(bottom.Rounds[0].Matches) == 0

	t := &Topology{
		slots:    slots,
		router:   newRouter(slots, b.elim, fold),
		rounds:   b.rounds,
		matches:  b.matches,
		brackets: b.brackets,
	}
	if err := t.populatePositions(); err != nil {
		return nil, err
	}
	return t, nil
}

func (t *Topology) populatePositions() error {
	for _, m := range t.matches {
		var err error
		if m.WinnerTo, err = t.router.Destination(m.Placement(), Winner); err != nil {
			return fmt.Errorf("routing winner of match %d: %w", m.ID, err)
		}
		if m.LoserTo, err = t.router.Destination(m.Placement(), Loser); err != nil {
			return fmt.Errorf("routing loser of match %d: %w", m.ID, err)
		}
	}
	return nil
}

func (t *Topology) Slots() int {
	return t.slots
}

// NextPosition routes a placement, see Router.NextPosition.
func (t *Topology) NextPosition(place int, dir Direction) (int, bool, error) {
	return t.router.NextPosition(place, dir)
}

// Router exposes the topology's router for callers that only need routing.
func (t *Topology) Router() *Router {
	return t.router
}

// Segments returns a copy of every segment keyed by its tag.
func (t *Topology) Segments() map[Segment]*Bracket {
	out := make(map[Segment]*Bracket, len(t.brackets))
	for seg, b := range t.brackets {
		out[seg] = copyBracket(b)
	}
	return out
}

// Segment returns a copy of one segment.
func (t *Topology) Segment(seg Segment) (*Bracket, bool) {
	b, ok := t.brackets[seg]
	if !ok {
		return nil, false
	}
	return copyBracket(b), true
}

// Rounds returns every round in build order.
func (t *Topology) Rounds() []Round {
	out := make([]Round, len(t.rounds))
	for i, r := range t.rounds {
		out[i] = copyRound(r)
	}
	return out
}

// Matches returns every match in placement order.
func (t *Topology) Matches() []Match {
	out := make([]Match, len(t.matches))
	for i, m := range t.matches {
		out[i] = *m
	}
	return out
}

// SegmentMatches returns the matches of one segment in placement order.
func (t *Topology) SegmentMatches(seg Segment) []Match {
	var out []Match
	for _, m := range t.matches {
		if m.Segment == seg {
			out = append(out, *m)
		}
	}
	return out
}

// Match looks up a match by its global ID.
func (t *Topology) Match(id int) (Match, error) {
	if id < 1 || id > len(t.matches) {
		return Match{}, fmt.Errorf("%w: %d", ErrMatchNotFound, id)
	}
	return *t.matches[id-1], nil
}

// Edges lists the routing of every match in placement order.
func (t *Topology) Edges() []Edge {
	edges := make([]Edge, len(t.matches))
	for i, m := range t.matches {
		edges[i] = Edge{Match: m.ID, WinnerTo: m.WinnerTo, LoserTo: m.LoserTo}
	}
	return edges
}

func copyBracket(b *Bracket) *Bracket {
	c := &Bracket{Segment: b.Segment, Rounds: make([]*Round, len(b.Rounds))}
	for i, r := range b.Rounds {
		rc := copyRound(r)
		c.Rounds[i] = &rc
	}
	return c
}

func copyRound(r *Round) Round {
	c := *r
	c.Matches = append([]int(nil), r.Matches...)
	return c
}
