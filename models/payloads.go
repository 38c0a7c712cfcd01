package models

import (
	"database/sql"
	"errors"
	"fmt"
	"time"
)

// PayloadsModel stores whatever a caller wants to attach to a match, keyed
// by tournament and match ID. The bracket never reads it.
type PayloadsModel struct {
	DB *sql.DB
}

func NewPayloadsModel(db *sql.DB) *PayloadsModel {
	return &PayloadsModel{
		DB: db,
	}
}

func (m *PayloadsModel) Set(tournamentID string, matchID int, payload string) error {
	q := `INSERT INTO match_payloads (tournament_id, match_id, payload, updated_at)
		VALUES (?, ?, ?, ?)
		ON DUPLICATE KEY UPDATE payload = VALUES(payload), updated_at = VALUES(updated_at)`

	_, err := m.DB.Exec(q, tournamentID, matchID, payload, time.Now().Unix())
	return err
}

func (m *PayloadsModel) Get(tournamentID string, matchID int) (string, error) {
	var payload string
	q := `SELECT payload FROM match_payloads WHERE tournament_id = ? AND match_id = ?`

	err := m.DB.QueryRow(q, tournamentID, matchID).Scan(&payload)
	if errors.Is(err, sql.ErrNoRows) {
		return "", fmt.Errorf("%w: match %d of %s", ErrPayloadNotFound, matchID, tournamentID)
	}
	return payload, err
}

// ListByTournament returns every payload of a tournament keyed by match ID.
func (m *PayloadsModel) ListByTournament(tournamentID string) (map[int]string, error) {
	q := `SELECT match_id, payload FROM match_payloads WHERE tournament_id = ?`

	rows, err := m.DB.Query(q, tournamentID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	payloads := map[int]string{}
	for rows.Next() {
		var (
			matchID int
			payload string
		)
		if err := rows.Scan(&matchID, &payload); err != nil {
			return nil, fmt.Errorf("failed to scan row: %w", err)
		}
		payloads[matchID] = payload
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error during rows iteration: %w", err)
	}
	return payloads, nil
}
