// Package mockbackend provides a testify mock of backend.Client for
// service and handler tests.
package mockbackend

import (
	"context"

	"github.com/stretchr/testify/mock"

	"partyboard/models"
)

type Client struct {
	mock.Mock
}

func (c *Client) ListGames(ctx context.Context) ([]models.Game, error) {
	args := c.Called(ctx)

	var res []models.Game
	if args.Get(0) != nil {
		res = args.Get(0).([]models.Game)
	}
	return res, args.Error(1)
}

func (c *Client) CreateGame(ctx context.Context, token string, input models.CreateGameInput) (*models.Game, error) {
	args := c.Called(ctx, token, input)

	var res *models.Game
	if args.Get(0) != nil {
		res = args.Get(0).(*models.Game)
	}
	return res, args.Error(1)
}

func (c *Client) DeleteGame(ctx context.Context, token, gameID string) error {
	args := c.Called(ctx, token, gameID)
	return args.Error(0)
}

func (c *Client) GetGame(ctx context.Context, gameID string) (*models.Game, error) {
	args := c.Called(ctx, gameID)

	var res *models.Game
	if args.Get(0) != nil {
		res = args.Get(0).(*models.Game)
	}
	return res, args.Error(1)
}

func (c *Client) GetGameByCode(ctx context.Context, code string) (*models.Game, error) {
	args := c.Called(ctx, code)

	var res *models.Game
	if args.Get(0) != nil {
		res = args.Get(0).(*models.Game)
	}
	return res, args.Error(1)
}

func (c *Client) GameLeaderboard(ctx context.Context, gameID string) (*models.LeaderboardSnapshot, error) {
	args := c.Called(ctx, gameID)

	var res *models.LeaderboardSnapshot
	if args.Get(0) != nil {
		res = args.Get(0).(*models.LeaderboardSnapshot)
	}
	return res, args.Error(1)
}

func (c *Client) Login(ctx context.Context, username, password string) (string, error) {
	args := c.Called(ctx, username, password)
	return args.String(0), args.Error(1)
}

func (c *Client) VerifyToken(ctx context.Context, token string) error {
	args := c.Called(ctx, token)
	return args.Error(0)
}

func (c *Client) ListTournaments(ctx context.Context) ([]models.Tournament, error) {
	args := c.Called(ctx)

	var res []models.Tournament
	if args.Get(0) != nil {
		res = args.Get(0).([]models.Tournament)
	}
	return res, args.Error(1)
}

func (c *Client) CreateTournament(ctx context.Context, token string, input models.CreateTournamentInput) (*models.Tournament, error) {
	args := c.Called(ctx, token, input)

	var res *models.Tournament
	if args.Get(0) != nil {
		res = args.Get(0).(*models.Tournament)
	}
	return res, args.Error(1)
}

func (c *Client) UpdateTournamentStatus(ctx context.Context, token, tournamentID string, status models.TournamentStatus) (*models.Tournament, error) {
	args := c.Called(ctx, token, tournamentID, status)

	var res *models.Tournament
	if args.Get(0) != nil {
		res = args.Get(0).(*models.Tournament)
	}
	return res, args.Error(1)
}

func (c *Client) GetTournament(ctx context.Context, tournamentID string) (*models.Tournament, error) {
	args := c.Called(ctx, tournamentID)

	var res *models.Tournament
	if args.Get(0) != nil {
		res = args.Get(0).(*models.Tournament)
	}
	return res, args.Error(1)
}

func (c *Client) TournamentsLeaderboard(ctx context.Context) (*models.LeaderboardSnapshot, error) {
	args := c.Called(ctx)

	var res *models.LeaderboardSnapshot
	if args.Get(0) != nil {
		res = args.Get(0).(*models.LeaderboardSnapshot)
	}
	return res, args.Error(1)
}

func (c *Client) SubmitScores(ctx context.Context, token, tournamentID, gameID string, sub models.ScoreSubmission) error {
	args := c.Called(ctx, token, tournamentID, gameID, sub)
	return args.Error(0)
}
