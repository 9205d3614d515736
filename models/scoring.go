package models

// ScoreType selects whether a point delta targets a team aggregate or an
// individual player.
type ScoreType string

const (
	ScoreTypeTeam   ScoreType = "team"
	ScoreTypePlayer ScoreType = "player"
)

// TeamScoreEntry is one team/score/reason triple in a team-mode submission.
type TeamScoreEntry struct {
	TeamID string `json:"teamId"`
	Score  int    `json:"score"`
	Reason string `json:"reason,omitempty"`
}

// PlayerScoreEntry is one player/team/score triple in a player-mode submission.
type PlayerScoreEntry struct {
	PlayerID string `json:"playerId"`
	TeamID   string `json:"teamId"`
	Score    int    `json:"score"`
}

// ScoreSubmission is the POST body for
// /leaderboardScoring/{tournamentId}/games/{gameId}/scores. Exactly one of
// TeamScores or PlayerScores is populated, matching ScoreType.
type ScoreSubmission struct {
	ScoreType    ScoreType          `json:"scoreType"`
	TeamScores   []TeamScoreEntry   `json:"teamScores,omitempty"`
	PlayerScores []PlayerScoreEntry `json:"playerScores,omitempty"`
}
