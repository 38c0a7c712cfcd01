package models

import "errors"

var (
	ErrTournamentNotFound = errors.New("tournament not found")
	ErrPayloadNotFound    = errors.New("match payload not found")
)
