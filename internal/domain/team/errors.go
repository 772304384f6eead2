package team

import "errors"

// Team domain errors
var (
	ErrTeamNotFound = errors.New("team not found")
	ErrNameExists   = errors.New("a team with this name already exists")
)
