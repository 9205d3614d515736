package models

// TournamentStatus mirrors the status enum the backend uses for a
// tournament (game session). The client convention is that at most one
// tournament is active at a time; the server is still the authority.
type TournamentStatus string

const (
	TournamentStatusActive   TournamentStatus = "active"
	TournamentStatusInactive TournamentStatus = "inactive"
)

// Tournament is a game session: a named competitive event bundling teams,
// players and a set of selected games. Fetched as a whole on every mutation.
type Tournament struct {
	ID          string           `json:"id"`
	Name        string           `json:"name"`
	Description *string          `json:"description,omitempty"`
	Status      TournamentStatus `json:"status"`
	Games       []Game           `json:"games,omitempty"`
	Teams       []Team           `json:"teams,omitempty"`
	TeamCount   int              `json:"teamCount"`
	PlayerCount int              `json:"playerCount"`
	GameCount   int              `json:"gameCount"`
	CreatedAt   string           `json:"createdAt,omitempty"`
	UpdatedAt   string           `json:"updatedAt,omitempty"`
}

// Active reports whether the tournament is the currently running session.
func (t Tournament) Active() bool {
	return t.Status == TournamentStatusActive
}

// CreateTournamentInput is the POST /tournaments request body, assembled
// by the creation wizard's review step.
type CreateTournamentInput struct {
	Name        string            `json:"name"`
	Description string            `json:"description,omitempty"`
	Teams       []CreateTeamInput `json:"teams"`
	GameIDs     []string          `json:"gameIds"`
}

// CreateTeamInput is one team entry inside CreateTournamentInput.
type CreateTeamInput struct {
	Name    string              `json:"name"`
	Players []CreatePlayerInput `json:"players"`
}

// CreatePlayerInput is one player entry inside CreateTeamInput.
type CreatePlayerInput struct {
	Name   string `json:"name"`
	Avatar string `json:"avatar"`
}

// UpdateTournamentStatusInput is the PUT /tournaments/{id}/status request body.
type UpdateTournamentStatusInput struct {
	Status TournamentStatus `json:"status"`
}
