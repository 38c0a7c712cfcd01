package bracket

import "fmt"

// Segment tags which part of a double-elimination bracket a round or match
// belongs to.
type Segment int

const (
	// Top is the winners bracket: a single-elimination tree over every entrant.
	Top Segment = iota
	// Bottom is the losers bracket for entrants with exactly one loss.
	Bottom
	// Champion holds the grand final and the reset match.
	Champion
)

// Segments lists every segment in build order.
var Segments = []Segment{Top, Bottom, Champion}

func (s Segment) String() string {
	switch s {
	case Top:
		return "top"
	case Bottom:
		return "bottom"
	case Champion:
		return "champion"
	default:
		return fmt.Sprintf("segment(%d)", int(s))
	}
}

// ParseSegment is the inverse of Segment.String.
func ParseSegment(s string) (Segment, error) {
	for _, seg := range Segments {
		if seg.String() == s {
			return seg, nil
		}
	}
	return 0, fmt.Errorf("bracket: unknown segment %q", s)
}

// Direction selects which entrant of a match is being routed.
type Direction int

const (
	Winner Direction = iota + 1
	Loser
)

func (d Direction) String() string {
	switch d {
	case Winner:
		return "winner"
	case Loser:
		return "loser"
	default:
		return fmt.Sprintf("direction(%d)", int(d))
	}
}

// ParseDirection accepts "winner" or "loser".
func ParseDirection(s string) (Direction, error) {
	switch s {
	case "winner":
		return Winner, nil
	case "loser":
		return Loser, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrInvalidDirection, s)
	}
}

// DestinationKind says what happens to an entrant after a match.
type DestinationKind int

const (
	// Advance means the entrant plays again in Destination.Match.
	Advance DestinationKind = iota
	// Terminal means the entrant won the last match of the bracket.
	Terminal
	// Eliminated means the entrant is out of the bracket.
	Eliminated
)

func (k DestinationKind) String() string {
	switch k {
	case Advance:
		return "advance"
	case Terminal:
		return "terminal"
	case Eliminated:
		return "eliminated"
	default:
		return fmt.Sprintf("destination(%d)", int(k))
	}
}

// Destination is where one entrant of a match goes next.
type Destination struct {
	Kind  DestinationKind
	Match int // global match ID, only set when Kind is Advance
}

func (d Destination) String() string {
	if d.Kind == Advance {
		return fmt.Sprintf("match %d", d.Match)
	}
	return d.Kind.String()
}

// Match is a single game inside a round.
type Match struct {
	ID         int
	Segment    Segment
	Round      int // segment-local round number, 1-based
	RoundMatch int // position within the round, 1-based
	WinnerTo   Destination
	LoserTo    Destination
}

// Placement is the zero-based routing index of the match.
func (m Match) Placement() int {
	return m.ID - 1
}

// Round groups the matches played at the same stage of one segment.
type Round struct {
	ID      int
	Segment Segment
	Number  int
	Matches []int // global match IDs, in round-match order
}

// Bracket is the ordered round container of a single segment.
type Bracket struct {
	Segment Segment
	Rounds  []*Round
}

// MatchCount sums the matches of every round in the segment.
func (b *Bracket) MatchCount() int {
	n := 0
	for _, r := range b.Rounds {
		n += len(r.Matches)
	}
	return n
}
