package httpapi

import "github.com/dimfu/bracketeer/bracket"

type destinationJSON struct {
	Kind  string `json:"kind"`
	Match *int   `json:"match,omitempty"`
}

type matchJSON struct {
	ID         int             `json:"id"`
	Segment    string          `json:"segment"`
	Round      int             `json:"round"`
	RoundMatch int             `json:"round_match"`
	WinnerTo   destinationJSON `json:"winner_to"`
	LoserTo    destinationJSON `json:"loser_to"`
}

type roundJSON struct {
	ID      int   `json:"id"`
	Number  int   `json:"number"`
	Matches []int `json:"matches"`
}

type segmentJSON struct {
	Segment string      `json:"segment"`
	Rounds  []roundJSON `json:"rounds"`
}

type topologyJSON struct {
	Slots    int           `json:"slots"`
	Segments []segmentJSON `json:"segments"`
	Matches  []matchJSON   `json:"matches"`
}

type tournamentJSON struct {
	ID        string      `json:"id"`
	Name      string      `json:"name"`
	Slots     int         `json:"slots"`
	CreatedAt int64       `json:"created_at"`
	Matches   []matchJSON `json:"matches"`
}

type nextJSON struct {
	Place     int    `json:"place"`
	Direction string `json:"direction"`
	Next      *int   `json:"next"`
}

type payloadJSON struct {
	Match   int    `json:"match"`
	Payload string `json:"payload"`
}

type createTournamentRequest struct {
	Name  string `json:"name"`
	Slots int    `json:"slots"`
}

func toDestination(d bracket.Destination) destinationJSON {
	out := destinationJSON{Kind: d.Kind.String()}
	if d.Kind == bracket.Advance {
		id := d.Match
		out.Match = &id
	}
	return out
}

func toMatches(matches []bracket.Match) []matchJSON {
	out := make([]matchJSON, len(matches))
	for i, m := range matches {
		out[i] = matchJSON{
			ID:         m.ID,
			Segment:    m.Segment.String(),
			Round:      m.Round,
			RoundMatch: m.RoundMatch,
			WinnerTo:   toDestination(m.WinnerTo),
			LoserTo:    toDestination(m.LoserTo),
		}
	}
	return out
}

func toTopology(t *bracket.Topology) topologyJSON {
	out := topologyJSON{Slots: t.Slots(), Matches: toMatches(t.Matches())}
	for _, seg := range bracket.Segments {
		b, _ := t.Segment(seg)
		sj := segmentJSON{Segment: seg.String(), Rounds: []roundJSON{}}
		for _, r := range b.Rounds {
			sj.Rounds = append(sj.Rounds, roundJSON{ID: r.ID, Number: r.Number, Matches: r.Matches})
		}
		out.Segments = append(out.Segments, sj)
	}
	return out
}
