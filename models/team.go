package models

// Team groups players inside a tournament. All aggregate score fields are
// computed server-side; the gateway renders them as-is.
type Team struct {
	ID              string   `json:"id"`
	Name            string   `json:"name"`
	Players         []Player `json:"players,omitempty"`
	IndividualTotal int      `json:"individualTotal"`
	BonusTotal      int      `json:"bonusTotal"`
	CombinedTotal   int      `json:"combinedTotal"`
}

// Player belongs to exactly one team within a tournament. Rank fields and
// the per-game breakdown come from the server and are never derived here.
type Player struct {
	ID         string      `json:"id"`
	Name       string      `json:"name"`
	Avatar     string      `json:"avatar,omitempty"`
	TeamID     string      `json:"teamId,omitempty"`
	TotalScore int         `json:"totalScore"`
	TeamRank   int         `json:"teamRank,omitempty"`
	GlobalRank int         `json:"globalRank,omitempty"`
	GameScores []GameScore `json:"gameScores,omitempty"`
}

// GameScore is one entry of a player's per-game score breakdown.
type GameScore struct {
	GameID   string `json:"gameId"`
	GameName string `json:"gameName,omitempty"`
	Score    int    `json:"score"`
	Rank     int    `json:"rank,omitempty"`
}
