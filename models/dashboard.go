package models

// DashboardStats feeds the summary cards at the top of the admin
// dashboard. The two extremes are the only values the client computes
// itself; everything else is counted from the fetched lists.
type DashboardStats struct {
	GamesTotal        int `json:"games_total"`
	TournamentsTotal  int `json:"tournaments_total"`
	ActiveTournaments int `json:"active_tournaments"`
	TeamsTotal        int `json:"teams_total"`
	PlayersTotal      int `json:"players_total"`
	HighestTeamScore  int `json:"highest_team_score"`
	HighestIndividual int `json:"highest_individual_score"`
}
