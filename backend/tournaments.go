package backend

import (
	"context"
	"net/http"
	"net/url"

	"partyboard/models"
)

func (c *client) ListTournaments(ctx context.Context) ([]models.Tournament, error) {
	var out struct {
		Tournaments []models.Tournament `json:"tournaments"`
	}
	if err := c.do(ctx, http.MethodGet, "/tournaments", "", nil, &out); err != nil {
		return nil, err
	}
	return out.Tournaments, nil
}

func (c *client) CreateTournament(ctx context.Context, token string, input models.CreateTournamentInput) (*models.Tournament, error) {
	var out struct {
		Tournament models.Tournament `json:"tournament"`
	}
	if err := c.do(ctx, http.MethodPost, "/tournaments", token, input, &out); err != nil {
		return nil, err
	}
	return &out.Tournament, nil
}

func (c *client) UpdateTournamentStatus(ctx context.Context, token, tournamentID string, status models.TournamentStatus) (*models.Tournament, error) {
	var out struct {
		Tournament models.Tournament `json:"tournament"`
	}
	path := "/tournaments/" + url.PathEscape(tournamentID) + "/status"
	input := models.UpdateTournamentStatusInput{Status: status}
	if err := c.do(ctx, http.MethodPut, path, token, input, &out); err != nil {
		return nil, err
	}
	return &out.Tournament, nil
}

func (c *client) GetTournament(ctx context.Context, tournamentID string) (*models.Tournament, error) {
	var out struct {
		Tournament models.Tournament `json:"tournament"`
	}
	if err := c.do(ctx, http.MethodGet, "/tournaments/"+url.PathEscape(tournamentID), "", nil, &out); err != nil {
		return nil, err
	}
	return &out.Tournament, nil
}

func (c *client) TournamentsLeaderboard(ctx context.Context) (*models.LeaderboardSnapshot, error) {
	var out struct {
		Leaderboard models.LeaderboardSnapshot `json:"leaderboard"`
	}
	if err := c.do(ctx, http.MethodGet, "/tournaments/leaderboard", "", nil, &out); err != nil {
		return nil, err
	}
	return &out.Leaderboard, nil
}
