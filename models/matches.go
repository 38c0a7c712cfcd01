package models

import (
	"database/sql"
	"fmt"

	"github.com/dimfu/bracketeer/bracket"
)

type MatchesModel struct {
	DB *sql.DB
}

func NewMatchesModel(db *sql.DB) *MatchesModel {
	return &MatchesModel{
		DB: db,
	}
}

// InsertTopology stores every match of topo, routing included, under the
// tournament.
func (m *MatchesModel) InsertTopology(tx *sql.Tx, tournamentID string, topo *bracket.Topology) error {
	q := `INSERT INTO matches
		(tournament_id, match_id, segment, round, round_match, winner_kind, winner_to, loser_kind, loser_to)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`

	stmt, err := tx.Prepare(q)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for _, match := range topo.Matches() {
		_, err := stmt.Exec(
			tournamentID, match.ID, match.Segment.String(), match.Round, match.RoundMatch,
			match.WinnerTo.Kind.String(), destinationTo(match.WinnerTo),
			match.LoserTo.Kind.String(), destinationTo(match.LoserTo),
		)
		if err != nil {
			return fmt.Errorf("inserting match %d: %w", match.ID, err)
		}
	}
	return nil
}

func (m *MatchesModel) ListByTournament(tournamentID string) ([]bracket.Match, error) {
	q := `SELECT match_id, segment, round, round_match, winner_kind, winner_to, loser_kind, loser_to
		FROM matches WHERE tournament_id = ? ORDER BY match_id`

	rows, err := m.DB.Query(q, tournamentID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	matches := []bracket.Match{}
	for rows.Next() {
		var (
			match                 bracket.Match
			segment               string
			winnerKind, loserKind string
			winnerTo, loserTo     sql.NullInt64
		)
		if err := rows.Scan(
			&match.ID, &segment, &match.Round, &match.RoundMatch,
			&winnerKind, &winnerTo, &loserKind, &loserTo,
		); err != nil {
			return nil, fmt.Errorf("failed to scan row: %w", err)
		}

		if match.Segment, err = bracket.ParseSegment(segment); err != nil {
			return nil, err
		}
		if match.WinnerTo, err = parseDestination(winnerKind, winnerTo); err != nil {
			return nil, err
		}
		if match.LoserTo, err = parseDestination(loserKind, loserTo); err != nil {
			return nil, err
		}
		matches = append(matches, match)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error during rows iteration: %w", err)
	}
	return matches, nil
}

func destinationTo(d bracket.Destination) sql.NullInt64 {
	if d.Kind != bracket.Advance {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: int64(d.Match), Valid: true}
}

func parseDestination(kind string, to sql.NullInt64) (bracket.Destination, error) {
	switch kind {
	case bracket.Advance.String():
		if !to.Valid {
			return bracket.Destination{}, fmt.Errorf("advance destination without a match")
		}
		return bracket.Destination{Kind: bracket.Advance, Match: int(to.Int64)}, nil
	case bracket.Terminal.String():
		return bracket.Destination{Kind: bracket.Terminal}, nil
	case bracket.Eliminated.String():
		return bracket.Destination{Kind: bracket.Eliminated}, nil
	default:
		return bracket.Destination{}, fmt.Errorf("unknown destination kind %q", kind)
	}
}
