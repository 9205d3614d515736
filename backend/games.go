package backend

import (
	"context"
	"net/http"
	"net/url"

	"partyboard/models"
)

func (c *client) ListGames(ctx context.Context) ([]models.Game, error) {
	var out struct {
		Games []models.Game `json:"games"`
	}
	if err := c.do(ctx, http.MethodGet, "/games", "", nil, &out); err != nil {
		return nil, err
	}
	return out.Games, nil
}

func (c *client) CreateGame(ctx context.Context, token string, input models.CreateGameInput) (*models.Game, error) {
	var out struct {
		Game models.Game `json:"game"`
	}
	if err := c.do(ctx, http.MethodPost, "/games", token, input, &out); err != nil {
		return nil, err
	}
	return &out.Game, nil
}

func (c *client) DeleteGame(ctx context.Context, token, gameID string) error {
	return c.do(ctx, http.MethodDelete, "/games/"+url.PathEscape(gameID), token, nil, nil)
}

func (c *client) GetGame(ctx context.Context, gameID string) (*models.Game, error) {
	var out struct {
		Game models.Game `json:"game"`
	}
	if err := c.do(ctx, http.MethodGet, "/games/"+url.PathEscape(gameID), "", nil, &out); err != nil {
		return nil, err
	}
	return &out.Game, nil
}

func (c *client) GetGameByCode(ctx context.Context, code string) (*models.Game, error) {
	var out struct {
		Game models.Game `json:"game"`
	}
	if err := c.do(ctx, http.MethodGet, "/games/code/"+url.PathEscape(code), "", nil, &out); err != nil {
		return nil, err
	}
	return &out.Game, nil
}

func (c *client) GameLeaderboard(ctx context.Context, gameID string) (*models.LeaderboardSnapshot, error) {
	var out struct {
		Leaderboard models.LeaderboardSnapshot `json:"leaderboard"`
	}
	if err := c.do(ctx, http.MethodGet, "/games/"+url.PathEscape(gameID)+"/leaderboard", "", nil, &out); err != nil {
		return nil, err
	}
	return &out.Leaderboard, nil
}
