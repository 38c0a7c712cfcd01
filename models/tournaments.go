package models

import (
	"database/sql"
	"errors"
	"fmt"
)

type Tournament struct {
	ID         string
	Name       string
	Slots      int
	Created_At int64
}

type TournamentsModel struct {
	DB *sql.DB
}

func NewTournamentsModel(db *sql.DB) *TournamentsModel {
	return &TournamentsModel{
		DB: db,
	}
}

func (tm *TournamentsModel) Insert(tx *sql.Tx, t *Tournament) error {
	q := `INSERT INTO tournaments (id, name, slots, created_at) VALUES (?, ?, ?, ?)`

	stmt, err := tx.Prepare(q)
	if err != nil {
		return err
	}
	defer stmt.Close()

	_, err = stmt.Exec(t.ID, t.Name, t.Slots, t.Created_At)
	return err
}

func (tm *TournamentsModel) GetById(id string) (*Tournament, error) {
	t := &Tournament{}
	q := `SELECT id, name, slots, created_at FROM tournaments WHERE id = ?`

	err := tm.DB.QueryRow(q, id).Scan(&t.ID, &t.Name, &t.Slots, &t.Created_At)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: could not find any record that have id of %s", ErrTournamentNotFound, id)
	}
	if err != nil {
		return nil, err
	}
	return t, nil
}

func (tm *TournamentsModel) List() ([]Tournament, error) {
	tournaments := []Tournament{}
	q := `SELECT id, name, slots, created_at FROM tournaments ORDER BY created_at DESC`
	rows, err := tm.DB.Query(q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var t Tournament
		if err := rows.Scan(&t.ID, &t.Name, &t.Slots, &t.Created_At); err != nil {
			return nil, err
		}
		tournaments = append(tournaments, t)
	}

	return tournaments, rows.Err()
}

// Delete removes the tournament; its matches and payloads cascade.
func (tm *TournamentsModel) Delete(id string) error {
	_, err := tm.GetById(id)
	if err != nil {
		return err
	}

	q := "DELETE FROM tournaments WHERE id = ?"
	_, err = tm.DB.Exec(q, id)
	return err
}
