package models

// GameStatus mirrors the status enum the backend attaches to a game.
type GameStatus string

const (
	GameStatusActive   GameStatus = "active"
	GameStatusInactive GameStatus = "inactive"
	GameStatusArchived GameStatus = "archived"
)

// Game is a party game template as the backend returns it. Fields the
// gateway never reads (rules, scoring metadata) are carried verbatim so
// view models can round-trip them without understanding them.
type Game struct {
	ID           string        `json:"id"`
	Code         string        `json:"code,omitempty"`
	Name         string        `json:"name"`
	Description  *string       `json:"description,omitempty"`
	Status       GameStatus    `json:"status"`
	Participants []Participant `json:"participants,omitempty"`
	Rules        *GameRules    `json:"rules,omitempty"`
	CreatedAt    string        `json:"createdAt,omitempty"`
}

// GameRules is scoring metadata owned by the backend. Rendered, never evaluated.
type GameRules struct {
	MaxPoints     *int    `json:"maxPoints,omitempty"`
	RoundsPerTeam *int    `json:"roundsPerTeam,omitempty"`
	ScoringNotes  *string `json:"scoringNotes,omitempty"`
}

// Participant is an entry in a game's bulk participant list.
type Participant struct {
	ID     string  `json:"id,omitempty"`
	Name   string  `json:"name"`
	TeamID *string `json:"teamId,omitempty"`
}

// CreateGameInput is the POST /games request body.
type CreateGameInput struct {
	Name         string        `json:"name"`
	Description  string        `json:"description,omitempty"`
	Participants []Participant `json:"participants,omitempty"`
	Rules        *GameRules    `json:"rules,omitempty"`
}
