package services

import "errors"

// Validation errors shared across services and the HTTP mapping. All of
// them are caught before any backend request is issued.
var (
	// Scoring console
	ErrScoreGameRequired   = errors.New("select a game before submitting a score")
	ErrScoreTeamRequired   = errors.New("select a team before submitting a team score")
	ErrScorePlayerRequired = errors.New("select a player before submitting a player score")
	ErrScoreValueInvalid   = errors.New("score must be a whole number")
	ErrScoreModeInvalid    = errors.New("scoring mode must be team or player")

	// Game code entry
	ErrGameCodeEmpty = errors.New("game code is required")

	// Login form
	ErrCredentialsRequired = errors.New("username and password are required")

	// Toggle / lookup
	ErrTournamentUnknown = errors.New("tournament is not in the current list")
)
