package models

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/dimfu/bracketeer/bracket"
	"github.com/google/uuid"
)

// Store ties the models together for callers that work on whole
// tournaments.
type Store struct {
	DB          *sql.DB
	Tournaments *TournamentsModel
	Matches     *MatchesModel
	Payloads    *PayloadsModel
}

func NewStore(db *sql.DB) *Store {
	return &Store{
		DB:          db,
		Tournaments: NewTournamentsModel(db),
		Matches:     NewMatchesModel(db),
		Payloads:    NewPayloadsModel(db),
	}
}

// CreateTournament builds the topology for slots and stores it with a new
// tournament. Nothing is written when slots is invalid.
func (s *Store) CreateTournament(name string, slots int) (*Tournament, *bracket.Topology, error) {
	topo, err := bracket.BuildTopology(slots)
	if err != nil {
		return nil, nil, err
	}

	t := &Tournament{
		ID:         uuid.New().String(),
		Name:       name,
		Slots:      slots,
		Created_At: time.Now().Unix(),
	}

	tx, err := s.DB.Begin()
	if err != nil {
		return nil, nil, err
	}
	defer tx.Rollback()

	if err := s.Tournaments.Insert(tx, t); err != nil {
		return nil, nil, err
	}
	if err := s.Matches.InsertTopology(tx, t.ID, topo); err != nil {
		return nil, nil, err
	}
	if err := tx.Commit(); err != nil {
		return nil, nil, err
	}
	return t, topo, nil
}

// GetTournament loads a tournament and its stored matches.
func (s *Store) GetTournament(id string) (*Tournament, []bracket.Match, error) {
	t, err := s.Tournaments.GetById(id)
	if err != nil {
		return nil, nil, err
	}
	matches, err := s.Matches.ListByTournament(id)
	if err != nil {
		return nil, nil, err
	}
	return t, matches, nil
}

func (s *Store) DeleteTournament(id string) error {
	return s.Tournaments.Delete(id)
}

// SetMatchPayload attaches payload to a match of a stored tournament,
// replacing what was there.
func (s *Store) SetMatchPayload(tournamentID string, matchID int, payload string) error {
	t, err := s.Tournaments.GetById(tournamentID)
	if err != nil {
		return err
	}
	if matchID < 1 || matchID > 2*t.Slots-1 {
		return fmt.Errorf("%w: %d", bracket.ErrMatchNotFound, matchID)
	}
	return s.Payloads.Set(tournamentID, matchID, payload)
}

func (s *Store) GetMatchPayload(tournamentID string, matchID int) (string, error) {
	return s.Payloads.Get(tournamentID, matchID)
}

// TournamentTree rebuilds the winner-path tree of a stored tournament with
// each node carrying its match payload, if any.
func (s *Store) TournamentTree(id string) (*Tournament, *bracket.Tree, error) {
	t, err := s.Tournaments.GetById(id)
	if err != nil {
		return nil, nil, err
	}
	topo, err := bracket.BuildTopology(t.Slots)
	if err != nil {
		return nil, nil, err
	}
	payloads, err := s.Payloads.ListByTournament(id)
	if err != nil {
		return nil, nil, err
	}

	tree := topo.Tree()
	for matchID, payload := range payloads {
		node, err := tree.Search(matchID)
		if err != nil {
			continue
		}
		node.Payload = payload
	}
	return t, tree, nil
}
