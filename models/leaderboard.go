package models

// LeaderboardSnapshot is the server-computed, point-in-time ranking of a
// tournament. It is treated as fully replaceable: every fetch swaps the
// whole snapshot, there is no incremental merge.
type LeaderboardSnapshot struct {
	TournamentID   string          `json:"tournamentId"`
	TournamentName string          `json:"tournamentName,omitempty"`
	TeamRankings   []TeamRanking   `json:"teamRankings"`
	PlayerRankings []PlayerRanking `json:"playerRankings"`
	GameBreakdowns []GameBreakdown `json:"gameBreakdowns,omitempty"`
	GeneratedAt    string          `json:"generatedAt,omitempty"`
}

// TeamRanking is one row of the team leaderboard.
type TeamRanking struct {
	Rank            int      `json:"rank"`
	TeamID          string   `json:"teamId"`
	TeamName        string   `json:"teamName"`
	IndividualTotal int      `json:"individualTotal"`
	BonusTotal      int      `json:"bonusTotal"`
	CombinedTotal   int      `json:"combinedTotal"`
	Players         []Player `json:"players,omitempty"`
}

// PlayerRanking is one row of the individual leaderboard.
type PlayerRanking struct {
	Rank       int    `json:"rank"`
	PlayerID   string `json:"playerId"`
	PlayerName string `json:"playerName"`
	TeamName   string `json:"teamName,omitempty"`
	Avatar     string `json:"avatar,omitempty"`
	TotalScore int    `json:"totalScore"`
}

// GameBreakdown lists per-game results inside a snapshot.
type GameBreakdown struct {
	GameID   string      `json:"gameId"`
	GameName string      `json:"gameName"`
	Scores   []GameScore `json:"scores,omitempty"`
}
