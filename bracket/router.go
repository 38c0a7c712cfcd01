package bracket

import "fmt"

// Router maps a match placement to the placement of the match its winner or
// loser plays next. Placements are zero-based over the whole bracket: the
// top segment first, then the bottom segment, then the champion segment.
//
// A Router is immutable once built and safe for concurrent use.
type Router struct {
	slots     int
	elim      Elimination
	topRounds int
	series    []int

	// foldFirstLoserRounds is set when the bottom segment has no first
	// round matches, in which case the first two loser rounds fold together.
	foldFirstLoserRounds bool
}

// NewRouter returns a router for a bracket with slots entrants.
func NewRouter(slots int, elim Elimination) (*Router, error) {
	if !isValidSlotCount(slots) {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidSlotCount, slots)
	}
	if elim == nil {
		elim = SingleElimination{}
	}
	return newRouter(slots, elim, slots>>2 == 0), nil
}

func newRouter(slots int, elim Elimination, fold bool) *Router {
	top := slots - 1
	return &Router{
		slots:                slots,
		elim:                 elim,
		topRounds:            log2(slots),
		series:               MagicSeries(top - 1),
		foldFirstLoserRounds: fold,
	}
}

// Slots is the entrant count the router was built for.
func (r *Router) Slots() int {
	return r.slots
}

// NextPosition returns the placement that the winner or loser of place moves
// to. ok is false when there is no further match: the winner of the reset
// match, or a loser who is eliminated. Placement and direction faults are
// reported as errors and never as a missing match.
func (r *Router) NextPosition(place int, dir Direction) (next int, ok bool, err error) {
	matches := r.slots*2 - 1
	if place < 0 || place >= matches {
		return 0, false, fmt.Errorf("%w: %d not in [0, %d]", ErrPlacementOutOfRange, place, matches-1)
	}
	if dir != Winner && dir != Loser {
		return 0, false, fmt.Errorf("%w: %v", ErrInvalidDirection, dir)
	}

	topMatches := r.slots - 1
	bottomMatches := topMatches - 1

	// champion segment
	if place >= matches-2 {
		if place == matches-1 {
			return 0, false, nil
		}
		return place + 1, true, nil
	}

	if dir == Winner {
		if place < topMatches {
			if place == topMatches-1 {
				return matches - 2, true, nil
			}
			return r.elim.WinnerRoute(r.slots, place), true, nil
		}
		return place + r.series[place-topMatches], true, nil
	}

	// Losers of bottom matches are out.
	if place >= topMatches {
		return 0, false, nil
	}

	if place < r.slots/2 {
		return r.elim.WinnerRoute(r.slots, place) + bottomMatches/2, true, nil
	}

	// revRound counts the halvings between this round and the top final.
	// Rounds at an even distance from the first round drop into the bottom
	// bracket with their halves swapped:
	//
	//	1 2 3 4 5 6 7 8  ->  5 6 7 8 1 2 3 4
	//
	// and, when the first loser rounds fold, with neighbours swapped too:
	//
	//	1 2 3 4 5 6 7 8  ->  6 5 8 7 2 1 4 3
	revRound := log2(topMatches - place)
	if (revRound-r.topRounds)%2 != 0 {
		return place + topMatches - 1<<revRound, true, nil
	}

	roundMatches := 1 << revRound
	firstMatch := topMatches - roundMatches*2 + 1
	thisMatch := place - firstMatch
	halfMatches := roundMatches / 2

	adj := 0
	if 4*place < 3*r.slots && r.foldFirstLoserRounds {
		if thisMatch%2 != 0 {
			adj = -1
		} else {
			adj = 1
		}
	}

	offset := topMatches - roundMatches
	if thisMatch < halfMatches {
		offset += halfMatches
	} else {
		offset -= halfMatches
	}
	return place + offset + adj, true, nil
}

// Destination wraps NextPosition as a Destination of global match IDs.
func (r *Router) Destination(place int, dir Direction) (Destination, error) {
	next, ok, err := r.NextPosition(place, dir)
	if err != nil {
		return Destination{}, err
	}
	if ok {
		return Destination{Kind: Advance, Match: next + 1}, nil
	}
	if dir == Winner {
		return Destination{Kind: Terminal}, nil
	}
	return Destination{Kind: Eliminated}, nil
}
